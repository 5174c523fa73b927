// Package cli implements the toggl command line on top of the use cases.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"toggl-cli/internal/app"
	"toggl-cli/internal/config"
	"toggl-cli/internal/report"
)

const wwwAddress = "https://track.toggl.com/timer"

var version = "dev"

// env carries per-invocation state shared by the subcommands.
type env struct {
	configPath string
	verbose    bool

	log *slog.Logger
	cfg config.Config
	app *app.App

	now     func() time.Time
	openURL func(browser, url string) error
}

// New returns the root command.
func New() *cobra.Command {
	return newRoot(&env{now: time.Now, openURL: runBrowser})
}

func newRoot(e *env) *cobra.Command {
	root := &cobra.Command{
		Use:           "toggl",
		Short:         "Command line client for Toggl Track",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.setup(cmd)
		},
	}
	root.PersistentFlags().BoolVarP(&e.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&e.configPath, "config", os.Getenv("TOGGL_CONFIG"), "Config file (default ~/.togglrc)")

	root.AddCommand(
		lsCmd(e),
		addCmd(e),
		editCmd(e),
		nowCmd(e),
		startCmd(e),
		stopCmd(e),
		rmCmd(e),
		projCmd(e),
		wkspCmd(e),
		clientCmd(e),
		taskCmd(e),
		updateCmd(e),
		wwwCmd(e),
		exportCmd(e),
	)
	return root
}

func (e *env) setup(cmd *cobra.Command) error {
	level := slog.LevelInfo
	if e.verbose {
		level = slog.LevelDebug
	}
	e.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load(e.configPath)
	if err != nil {
		return err
	}
	a, err := app.New(e.log, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}
	a.Entries.Now = e.now
	e.cfg, e.app = cfg, a
	return nil
}

func (e *env) renderer(verbose bool) report.Renderer {
	return report.Renderer{
		ManDays:     e.cfg.Options.UseManDays,
		Location:    e.cfg.Options.Location,
		EntryLayout: e.cfg.Options.EntryLayout,
		Verbose:     verbose,
	}
}

// Execute runs the command line with args and returns the exit status.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	return run(ctx, New(), args, stdout, stderr)
}

func run(ctx context.Context, root *cobra.Command, args []string, stdout, stderr io.Writer) int {
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}

func runBrowser(browser, url string) error {
	parts := strings.Fields(browser)
	c := exec.Command(parts[0], append(parts[1:], url)...)
	c.Stdin, c.Stdout, c.Stderr = os.Stdin, os.Stdout, os.Stderr
	return c.Run()
}
