package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"toggl-cli/internal/domain"
	"toggl-cli/internal/usecase"
)

func projCmd(e *env) *cobra.Command {
	var (
		add, update, showArchived, refresh, verbose, billable, autoCalc bool
		archive, reopen, id, name, client, workspace                    string
		estimate                                                        float64
	)
	cmd := &cobra.Command{
		Use:   "proj",
		Short: "List, show and manage projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, out, f := cmd.Context(), cmd.OutOrStdout(), cmd.Flags()
			uc := e.app.Projects
			params := usecase.ProjectParams{
				Name:           changed(f, "name", name),
				Workspace:      changed(f, "workspace", workspace),
				Client:         changed(f, "client", client),
				Billable:       changed(f, "billable", billable),
				EstimatedHours: changed(f, "estimated-workhours", estimate),
				AutoEstimates:  changed(f, "auto-calc", autoCalc),
			}

			switch {
			case add:
				p, err := uc.Add(ctx, params)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Project %q created with id %d\n", p.Name, p.ID)
			case update:
				if id == "" {
					return fmt.Errorf("%w: -i is required when updating a project", domain.ErrInvalidInput)
				}
				p, err := uc.Update(ctx, id, params)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Project %d updated\n", p.ID)
			case archive != "" || reopen != "":
				keys, active := splitList(archive), false
				if reopen != "" {
					keys, active = splitList(reopen), true
				}
				updated, err := uc.SetActive(ctx, keys, active)
				for _, p := range updated {
					fmt.Fprintln(out, projectLine(p, e.app.Catalog.Aliases(), verbose))
				}
				return err
			case id != "":
				p, err := uc.Show(ctx, id)
				if err != nil {
					return err
				}
				showProject(out, p)
			default:
				projects, err := uc.List(ctx, usecase.ListProjectsParams{
					ShowArchived: changed(f, "show-archived", showArchived),
					Workspace:    workspace,
					Refresh:      refresh,
				})
				if err != nil {
					return err
				}
				for _, p := range projects {
					fmt.Fprintln(out, projectLine(p, e.app.Catalog.Aliases(), verbose))
				}
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.BoolP("list", "l", false, "List projects (default action)")
	f.BoolVarP(&showArchived, "show-archived", "A", false, "Override the show_archived_projects setting")
	f.BoolVarP(&add, "add", "a", false, "Add a new project")
	f.BoolVarP(&update, "update", "u", false, "Update an existing project")
	f.StringVarP(&archive, "archive", "r", "", "Archive the comma separated projects")
	f.StringVarP(&reopen, "reopen", "o", "", "Reopen the comma separated projects")
	f.BoolVarP(&billable, "billable", "b", false, "Set the project's billable flag")
	f.StringVarP(&name, "name", "n", "", "Set the project's name")
	f.StringVarP(&id, "id", "i", "", "Project id, name or @alias")
	f.StringVarP(&client, "client", "c", "", "Set the project's client")
	f.StringVarP(&workspace, "workspace", "w", "", "Set the project's workspace, or filter the listing")
	f.Float64VarP(&estimate, "estimated-workhours", "e", 0, "Set the project's estimated work hours")
	f.BoolVarP(&autoCalc, "auto-calc", "C", false, "Automatically calculate estimated work hours")
	f.BoolVarP(&refresh, "update-cache", "U", false, "Refresh the project cache")
	f.BoolVarP(&verbose, "verbose-list", "V", false, "Show project ids")
	return cmd
}

func wkspCmd(e *env) *cobra.Command {
	var (
		id                      string
		users, refresh, verbose bool
	)
	cmd := &cobra.Command{
		Use:   "wksp",
		Short: "List and show workspaces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, out := cmd.Context(), cmd.OutOrStdout()
			uc := e.app.Workspaces
			switch {
			case users:
				if id == "" {
					return fmt.Errorf("%w: a workspace is required to list users", domain.ErrInvalidInput)
				}
				list, err := uc.Users(ctx, id)
				if err != nil {
					return err
				}
				for _, u := range list {
					fmt.Fprintln(out, userLine(u, verbose))
				}
				fmt.Fprintf(out, "Total Users: %d\n", len(list))
			case id != "":
				w, err := uc.Show(ctx, id)
				if err != nil {
					return err
				}
				showWorkspace(out, w)
			default:
				list, err := uc.List(ctx, refresh)
				if err != nil {
					return err
				}
				for _, w := range list {
					fmt.Fprintln(out, workspaceLine(w, verbose))
				}
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&id, "id", "i", "", "Workspace id, name or @alias")
	f.BoolP("list", "l", false, "List workspaces (default action)")
	f.BoolVarP(&users, "user-list", "u", false, "List the workspace's users")
	f.BoolVarP(&refresh, "update-cache", "U", false, "Refresh the workspace cache")
	f.BoolVarP(&verbose, "verbose-list", "V", false, "Show workspace ids")
	return cmd
}

func clientCmd(e *env) *cobra.Command {
	var (
		add, update, del, refresh, verbose bool
		id, name, currency, workspace      string
		rate                               float64
	)
	cmd := &cobra.Command{
		Use:   "client",
		Short: "List, show and manage clients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, out, f := cmd.Context(), cmd.OutOrStdout(), cmd.Flags()
			uc := e.app.Clients
			params := usecase.ClientParams{
				Name:      changed(f, "name", name),
				Currency:  changed(f, "currency", currency),
				Rate:      changed(f, "rate", rate),
				Workspace: changed(f, "workspace", workspace),
			}
			switch {
			case add:
				c, err := uc.Add(ctx, params)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Client %q created with id %d\n", c.Name, c.ID)
			case update || del:
				if id == "" {
					return fmt.Errorf("%w: the client id is required", domain.ErrInvalidInput)
				}
				if del {
					return uc.Delete(ctx, id)
				}
				c, err := uc.Update(ctx, id, params)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Client %d updated\n", c.ID)
			case id != "":
				c, err := uc.Show(ctx, id)
				if err != nil {
					return err
				}
				showClient(out, c)
			default:
				list, err := uc.List(ctx, refresh)
				if err != nil {
					return err
				}
				for _, c := range list {
					fmt.Fprintln(out, clientLine(c, verbose))
				}
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.BoolP("list", "l", false, "List clients (default action)")
	f.BoolVarP(&add, "add", "a", false, "Add a new client")
	f.BoolVarP(&update, "update", "u", false, "Update an existing client")
	f.BoolVarP(&del, "delete", "D", false, "Delete a client")
	f.StringVarP(&id, "id", "i", "", "Client id, name or @alias")
	f.StringVarP(&name, "name", "n", "", "Set the client's name")
	f.StringVarP(&currency, "currency", "c", "", "Set the currency")
	f.Float64VarP(&rate, "rate", "r", 0, "Set the hourly rate")
	f.StringVarP(&workspace, "workspace", "w", "", "Set the client's workspace")
	f.BoolVarP(&refresh, "update-cache", "U", false, "Refresh the client cache")
	f.BoolVarP(&verbose, "verbose-list", "V", false, "Show client ids")
	return cmd
}

func taskCmd(e *env) *cobra.Command {
	var (
		add, update, del, inactive, active, verbose bool
		id, name, proj, user, estimate              string
	)
	cmd := &cobra.Command{
		Use:   "task",
		Short: "List, show and manage tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, out, f := cmd.Context(), cmd.OutOrStdout(), cmd.Flags()
			uc := e.app.Tasks
			params := usecase.TaskParams{
				Name:     changed(f, "name", name),
				Project:  changed(f, "proj", proj),
				Active:   changed(f, "active", active),
				Estimate: changed(f, "estimate", estimate),
				User:     changed(f, "user", user),
			}
			switch {
			case add:
				t, err := uc.Add(ctx, params)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Task %q created with id %d\n", t.Name, t.ID)
			case update || del:
				if id == "" {
					return fmt.Errorf("%w: the task id is required", domain.ErrInvalidInput)
				}
				if del {
					return uc.Delete(ctx, id)
				}
				t, err := uc.Update(ctx, id, params)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Task %d updated\n", t.ID)
			case id != "":
				t, err := uc.Show(ctx, id)
				if err != nil {
					return err
				}
				showTask(out, t)
			default:
				list, err := uc.List(ctx, inactive)
				if err != nil {
					return err
				}
				for _, t := range list {
					fmt.Fprintln(out, taskLine(t, verbose))
				}
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.BoolP("list", "l", false, "List tasks (default action)")
	f.BoolVarP(&inactive, "list-inactive", "I", false, "Include inactive tasks in the list")
	f.BoolVarP(&add, "add", "a", false, "Add a new task")
	f.BoolVarP(&update, "update", "u", false, "Update an existing task")
	f.BoolVarP(&del, "delete", "D", false, "Delete a task")
	f.StringVarP(&id, "id", "i", "", "Task id, name or @alias")
	f.StringVarP(&name, "name", "n", "", "Set the task name")
	f.StringVarP(&proj, "proj", "p", "", "Project for the task")
	f.StringVarP(&user, "user", "U", "", "Assign the task to a workspace user")
	f.StringVarP(&estimate, "estimate", "e", "", "Set the estimate (integer, suffix s, m or h)")
	f.BoolVarP(&active, "active", "A", true, "Set the task's active status")
	f.BoolVarP(&verbose, "verbose-list", "V", false, "Show task ids")
	return cmd
}
