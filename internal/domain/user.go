package domain

// User is a workspace member or the authenticated account.
type User struct {
	ID                 int64
	Email              string
	FullName           string
	DefaultWorkspaceID int64
}

func (u User) EntityID() int64    { return u.ID }
func (u User) EntityName() string { return u.FullName }
