package domain

// Profile is the subscription tier of a workspace.
type Profile string

const (
	ProfileFree     Profile = "Free"
	ProfilePro      Profile = "Pro"
	ProfileBusiness Profile = "Business"
)

// Workspace represents a Toggl workspace.
type Workspace struct {
	ID      int64
	Name    string
	Profile Profile
	Admin   bool
}

func (w Workspace) EntityID() int64    { return w.ID }
func (w Workspace) EntityName() string { return w.Name }
