package cli

import (
	"fmt"
	"io"

	"toggl-cli/internal/domain"
	"toggl-cli/internal/resolve"
)

func idPrefix(id int64, verbose bool) string {
	if !verbose {
		return ""
	}
	return fmt.Sprintf("[%d] ", id)
}

func nameOr(name string, ok bool) string {
	if !ok {
		return "None"
	}
	return name
}

func workspaceName(w *domain.Workspace) string {
	if w == nil {
		return "None"
	}
	return w.Name
}

func projectLine(p domain.Project, aliases resolve.Aliases, verbose bool) string {
	mark := "-"
	if p.Active {
		mark = "*"
	}
	alias := ""
	if k, ok := aliases.KeyFor(p.Name); ok {
		alias = "(" + k + ")"
	}
	return fmt.Sprintf("%s %s%-10s %s [Workspace: (%s)]", mark, idPrefix(p.ID, verbose), alias, p.Name, workspaceName(p.Workspace))
}

func workspaceLine(w domain.Workspace, verbose bool) string {
	return "* " + idPrefix(w.ID, verbose) + w.Name
}

func clientLine(c domain.Client, verbose bool) string {
	return fmt.Sprintf("* %s%s [Workspace: (%s) Hourly Rate: (%g) Currency: (%s)]",
		idPrefix(c.ID, verbose), c.Name, workspaceName(c.Workspace), c.HourlyRate, c.Currency)
}

func taskLine(t domain.Task, verbose bool) string {
	return "* " + idPrefix(t.ID, verbose) + t.Name
}

func userLine(u domain.User, verbose bool) string {
	return fmt.Sprintf("* %s%s <%s>", idPrefix(u.ID, verbose), u.FullName, u.Email)
}

type field struct {
	label string
	value any
}

func show(w io.Writer, fields ...field) {
	for _, f := range fields {
		fmt.Fprintf(w, "%-30s: %v\n", f.label, f.value)
	}
}

func showProject(w io.Writer, p domain.Project) {
	var client string
	if p.Client != nil {
		client = p.Client.Name
	}
	show(w,
		field{"Project ID", p.ID},
		field{"Name", p.Name},
		field{"Workspace", workspaceName(p.Workspace)},
		field{"Client", nameOr(client, p.Client != nil)},
		field{"Billable", p.Billable},
		field{"Est. Work Hours", p.EstimatedHours},
		field{"Auto-calc Est. Work Hours", p.AutoEstimates},
		field{"Active", p.Active},
	)
}

func showWorkspace(w io.Writer, ws domain.Workspace) {
	show(w,
		field{"Workspace ID", ws.ID},
		field{"Name", ws.Name},
		field{"Profile Name", ws.Profile},
		field{"Admin", ws.Admin},
	)
}

func showClient(w io.Writer, c domain.Client) {
	show(w,
		field{"Client ID", c.ID},
		field{"Name", c.Name},
		field{"Workspace", workspaceName(c.Workspace)},
		field{"Currency", c.Currency},
		field{"Hourly Rate", c.HourlyRate},
	)
}

func showTask(w io.Writer, t domain.Task) {
	var project, user string
	if t.Project != nil {
		project = t.Project.Name
	}
	if t.User != nil {
		user = t.User.FullName
	}
	show(w,
		field{"Task ID", t.ID},
		field{"Name", t.Name},
		field{"Workspace", workspaceName(t.Workspace)},
		field{"Project", nameOr(project, t.Project != nil)},
		field{"User", nameOr(user, t.User != nil)},
		field{"Estimated Seconds", t.EstimatedSeconds},
		field{"Active", t.Active},
	)
}
