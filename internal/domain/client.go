package domain

// Client represents a Toggl client (the customer a project is billed to).
type Client struct {
	ID          int64
	WorkspaceID int64
	Name        string
	Currency    string
	HourlyRate  float64

	Workspace *Workspace
}

func (c Client) EntityID() int64    { return c.ID }
func (c Client) EntityName() string { return c.Name }
