package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"toggl-cli/internal/timeparse"
)

func updateCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Refresh the project, workspace and client caches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := e.app.UpdateCache(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Caches updated!")
			return nil
		},
	}
}

func wwwCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "www",
		Short: "Open Toggl in the configured web browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			browser := e.cfg.Options.WebBrowserCmd
			if browser == "" {
				return errors.New("set web_browser_cmd in the [options] section of your config")
			}
			e.log.Debug("opening browser", slog.String("cmd", browser), slog.String("url", wwwAddress))
			return e.openURL(browser, wwwAddress)
		},
	}
}

func exportCmd(e *env) *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Copy time entries and projects into MySQL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			now := e.now()
			loc := e.cfg.Options.Location
			end, start := now, now.Add(-24*time.Hour)
			var err error
			if to != "" {
				if end, err = timeparse.Parse(to, loc, now); err != nil {
					return err
				}
			}
			if from != "" {
				if start, err = timeparse.Parse(from, loc, now); err != nil {
					return err
				}
			}
			if err := e.app.Export(cmd.Context(), start, end); err != nil {
				return fmt.Errorf("export failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Export completed")
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Start of the range (default: 24h ago)")
	cmd.Flags().StringVar(&to, "to", "", "End of the range (default: now)")
	return cmd
}
