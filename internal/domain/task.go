package domain

// Task represents a Toggl task. Tasks are a paid-plan feature scoped to a project.
type Task struct {
	ID               int64
	Name             string
	Active           bool
	EstimatedSeconds int64
	ProjectID        int64
	WorkspaceID      int64
	UserID           *int64

	Project   *Project
	Workspace *Workspace
	User      *User
}

func (t Task) EntityID() int64    { return t.ID }
func (t Task) EntityName() string { return t.Name }
