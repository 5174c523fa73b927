package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xeonx/timeago"

	"toggl-cli/internal/domain"
	"toggl-cli/internal/usecase"
)

func lsCmd(e *env) *cobra.Command {
	var (
		p                   usecase.ListParams
		verbose, quiet, sum bool
	)
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List time entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rep, err := e.app.Entries.List(cmd.Context(), p)
			if err != nil {
				return err
			}
			r := e.renderer(verbose)
			r.Quiet, r.Sum = quiet, sum
			return r.Render(cmd.OutOrStdout(), rep)
		},
	}
	f := cmd.Flags()
	f.BoolVarP(&p.ByProject, "proj", "p", false, "Group entries by project")
	f.StringVarP(&p.Start, "start", "s", "", "Start date (default: Monday of this week)")
	f.StringVarP(&p.End, "end", "e", "", "End date (default: end of today)")
	f.StringVarP(&p.Grep, "grep", "g", "", "Only entries whose description matches this regex")
	f.BoolVarP(&verbose, "verbose-list", "V", false, "Show entry ids and start/stop times")
	f.BoolVarP(&quiet, "quiet", "q", false, "Do not show entries, only sums")
	f.BoolVarP(&sum, "sum", "S", false, "Show the total time")
	return cmd
}

func addCmd(e *env) *cobra.Command {
	var p usecase.AddParams
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a completed time entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entry, err := e.app.Entries.Add(cmd.Context(), p)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "New entry added with id %d\n", entry.ID)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&p.Description, "msg", "m", "", "Entry description")
	f.StringVarP(&p.Project, "proj", "p", "", "Project id, name or @alias")
	f.StringVarP(&p.Start, "start", "s", "", "Start date/time")
	f.StringVarP(&p.End, "end", "e", "", "End date/time")
	f.StringVarP(&p.Duration, "duration", "d", "", "Duration as [[H:]M:]S")
	_ = cmd.MarkFlagRequired("msg")
	return cmd
}

func editCmd(e *env) *cobra.Command {
	var (
		p                                  usecase.EditParams
		msg, proj, start, end, durationArg string
	)
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit an existing time entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := cmd.Flags()
			p.Description = changed(f, "msg", msg)
			p.Project = changed(f, "proj", proj)
			p.Start = changed(f, "start", start)
			p.End = changed(f, "end", end)
			p.Duration = changed(f, "duration", durationArg)
			entry, err := e.app.Entries.Edit(cmd.Context(), p)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Entry %d updated\n", entry.ID)
			return nil
		},
	}
	f := cmd.Flags()
	f.Int64VarP(&p.ID, "id", "i", 0, "Time entry id")
	f.StringVarP(&msg, "msg", "m", "", "Entry description")
	f.StringVarP(&proj, "proj", "p", "", "Project id, name or @alias")
	f.StringVarP(&durationArg, "duration", "d", "", "Duration as [[H:]M:]S")
	f.StringVarP(&start, "start", "s", "", "Start date/time")
	f.StringVarP(&end, "end", "e", "", "End date/time")
	f.BoolVarP(&p.CalcDuration, "calc-duration", "c", false, "Recompute the duration from start and end")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func nowCmd(e *env) *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "now",
		Short: "Show the running time entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			cur, err := e.app.Entries.Current(cmd.Context())
			if errors.Is(err, domain.ErrNoRunningEntry) {
				fmt.Fprintln(out, "You're not working on anything right now.")
				return nil
			}
			if err != nil {
				return err
			}
			now := e.now()
			fmt.Fprintf(out, "%s (started %s)\n",
				e.renderer(verbose).Entry(cur, true, now),
				timeago.English.FormatReference(cur.Start, now))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose-list", "V", false, "Show the entry id and start time")
	return cmd
}

func startCmd(e *env) *cobra.Command {
	var msg, proj, at string
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a new running time entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entry, err := e.app.Entries.Start(cmd.Context(), msg, proj, at)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "New entry started with id %d\n", entry.ID)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&msg, "msg", "m", "", "Entry description")
	f.StringVarP(&proj, "proj", "p", "", "Project id, name or @alias")
	f.StringVarP(&at, "time", "t", "", "Start date and/or time (default: now)")
	_ = cmd.MarkFlagRequired("msg")
	return cmd
}

func stopCmd(e *env) *cobra.Command {
	var at string
	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop the running time entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entry, err := e.app.Entries.Stop(cmd.Context(), at)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Stopped: %s\n", e.renderer(false).Entry(entry, true, e.now()))
			return nil
		},
	}
	cmd.Flags().StringVarP(&at, "time", "t", "", "Stop time (default: now)")
	return cmd
}

func rmCmd(e *env) *cobra.Command {
	var id int64
	cmd := &cobra.Command{
		Use:   "rm",
		Short: "Remove a time entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Deleting entry %d\n", id)
			return e.app.Entries.Delete(cmd.Context(), id)
		},
	}
	cmd.Flags().Int64VarP(&id, "id", "i", 0, "Time entry id")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}
