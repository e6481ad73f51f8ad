// Package cli wires configuration, logging and storage into the cobra
// command tree. Without a subcommand it starts the TUI.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/nhle/devdesign-studio/internal/app"
	"github.com/nhle/devdesign-studio/internal/logging"
	"github.com/nhle/devdesign-studio/internal/model"
	"github.com/nhle/devdesign-studio/internal/store"
	"github.com/nhle/devdesign-studio/internal/tracker"
)

// Version is set via ldflags at build time.
var Version = "dev"

// App carries the state shared by every command.
type App struct {
	ConfigPath string

	cfg     *model.AppConfig
	logger  *log.Logger
	store   store.Store
	tracker *tracker.Tracker
	closers []io.Closer
}

// Execute runs the command tree and releases storage afterwards.
func Execute(ctx context.Context) error {
	a := &App{}
	defer a.Close()
	return NewRootCmd(a).ExecuteContext(ctx)
}

// NewRootCmd builds the command tree around a.
func NewRootCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "studio",
		Short:         "DevDesign Studio: client projects, checklists and to-dos",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  studio

  # Scriptable commands
  studio list
  studio new "Acme GmbH" --website https://acme.example
  studio export --out ~/backups`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.load(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			return runTUI(a, t)
		},
	}

	cmd.PersistentFlags().StringVar(&a.ConfigPath, "config", model.DefaultConfigPath(), "Path to config file")

	cmd.AddCommand(newListCmd(a))
	cmd.AddCommand(newNewCmd(a))
	cmd.AddCommand(newArchiveCmd(a))
	cmd.AddCommand(newDeleteCmd(a))
	cmd.AddCommand(newLinksCmd(a))
	cmd.AddCommand(newImageCmd(a))
	cmd.AddCommand(newProgressCmd(a))
	cmd.AddCommand(newCalendarCmd(a))
	cmd.AddCommand(newExportCmd(a))
	cmd.AddCommand(newImportCmd(a))
	cmd.AddCommand(newConfigCmd(a))
	cmd.AddCommand(newAuthCmd())

	return cmd
}

// config loads the configuration once.
func (a *App) config() (*model.AppConfig, error) {
	if a.cfg != nil {
		return a.cfg, nil
	}
	cfg, err := model.LoadConfig(a.ConfigPath)
	if err != nil {
		return nil, err
	}
	a.cfg = cfg
	return cfg, nil
}

// load opens logging and storage and restores the saved project list.
func (a *App) load(ctx context.Context) (*tracker.Tracker, error) {
	if a.tracker != nil {
		return a.tracker, nil
	}
	cfg, err := a.config()
	if err != nil {
		return nil, err
	}

	logger, closer, err := logging.Open(logging.Options{Level: cfg.Log.Level, File: cfg.Log.File})
	if err != nil {
		return nil, err
	}
	a.logger = logger
	a.closers = append(a.closers, closer)

	s, err := store.Open(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("opening %s storage: %w", cfg.Storage.Driver, err)
	}
	a.store = s
	a.closers = append(a.closers, s)

	t := tracker.New(s, tracker.WithKey(cfg.Storage.Key), tracker.WithLogger(logger))
	t.Restore(ctx)
	a.tracker = t
	return t, nil
}

// Close releases the store and the log file, newest first.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	a.tracker = nil
	return errors.Join(errs...)
}

func runTUI(a *App, t *tracker.Tracker) error {
	m := app.New(t, app.Options{ExportDir: a.cfg.Export.Dir, Logger: a.logger})
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
