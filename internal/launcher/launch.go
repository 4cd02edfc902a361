package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/asta/internal/cli"
	"github.com/thenoetrevino/asta/internal/cli/styles"
	"github.com/thenoetrevino/asta/internal/config"
	"github.com/thenoetrevino/asta/internal/export"
	"github.com/thenoetrevino/asta/internal/journal"
	"github.com/thenoetrevino/asta/internal/logging"
	"github.com/thenoetrevino/asta/internal/roster"
	"github.com/thenoetrevino/asta/internal/session"
	"github.com/thenoetrevino/asta/internal/tui"
	"github.com/thenoetrevino/asta/internal/user"
)

// ProgramRunner drives the interactive program until it exits
type ProgramRunner func(ctx context.Context, model tea.Model) error

// Launcher wires configuration, loading, the journal and the TUI together
// for one session.
type Launcher struct {
	Out *cli.Output
	Run ProgramRunner
}

// Launch starts a session over the roster at path with the terminal UI
func Launch(ctx context.Context, path string) error {
	l := &Launcher{Out: cli.NewOutput(), Run: RunProgram}
	return l.Launch(ctx, path)
}

// RunProgram runs model as a Bubble Tea program bound to ctx
func RunProgram(ctx context.Context, model tea.Model) error {
	p := tea.NewProgram(model, tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// Launch loads the roster at path, runs the session, and reports where the
// results were saved. A session the program left open (interrupt, signal,
// terminal failure) is still ended, so the results are always written.
func (l *Launcher) Launch(ctx context.Context, path string) error {
	// A missing input is reported before any setup can fail
	l.Out.Field("Reading entities from", path)
	if err := roster.CheckExists(path); err != nil {
		return err
	}

	if err := logging.Init(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	styles.Init(cfg.ColorScheme)

	entities, err := roster.Load(path, RosterOptions(cfg))
	if err != nil {
		return err
	}
	l.Out.Line("Found %d entities", len(entities))
	slog.Info("roster loaded", "path", path, "entities", len(entities))

	opts := []session.Option{
		session.WithSkipWords(cfg.Session.SkipWords...),
		session.WithLogger(slog.Default()),
	}

	if j := openJournal(ctx, cfg, path, len(entities)); j != nil {
		defer func() {
			if err := j.Close(); err != nil {
				slog.Error("error closing journal", "error", err)
			}
		}()
		opts = append(opts, session.WithObserver(j))
	}

	controller, err := session.New(entities, export.NewWriter(path, ExportOptions(cfg)), opts...)
	if err != nil {
		return err
	}

	runErr := l.Run(ctx, tui.New(controller, cfg, filepath.Base(path)))
	interrupted := ctx.Err() != nil || errors.Is(runErr, tea.ErrProgramKilled)
	if runErr != nil && !interrupted {
		slog.Error("error running program", "error", runErr)
	}

	if !controller.Ended() {
		slog.Info("session left open, saving results", "interrupted", interrupted)
		// the error is kept on the controller
		_ = controller.Quit()
	}
	if err := controller.ExportErr(); err != nil {
		return err
	}

	l.Out.Field("Results saved to", controller.ExportPath())
	l.Out.Field("Summary", fmt.Sprintf("%d/%d assigned", controller.AssignedCount(), controller.Len()))

	if runErr != nil && !interrupted {
		return fmt.Errorf("error running program: %w", runErr)
	}
	return nil
}

// RosterOptions maps the roster and output sections of cfg to loader options
func RosterOptions(cfg *config.Config) roster.Options {
	return roster.Options{
		SurnameColumn:   cfg.Roster.SurnameColumn,
		FirstNameColumn: cfg.Roster.FirstNameColumn,
		ValueColumn:     cfg.Roster.ValueColumn,
		HeaderRows:      cfg.Roster.HeaderRows,
		Header:          cfg.Output.Header,
	}
}

// ExportOptions maps the output section of cfg to writer options
func ExportOptions(cfg *config.Config) export.Options {
	return export.Options{
		Dir:    cfg.Output.Dir,
		Suffix: cfg.Output.Suffix,
		Header: cfg.Output.Header,
	}
}

// openJournal opens the session journal, or returns nil when it is disabled
// or unavailable. The session never depends on it.
func openJournal(ctx context.Context, cfg *config.Config, inputPath string, entityCount int) *journal.Journal {
	if !cfg.Journal.Enabled {
		return nil
	}

	if abs, err := filepath.Abs(inputPath); err == nil {
		inputPath = abs
	}

	// entries are still written while shutting down after a signal
	j, err := journal.Open(context.WithoutCancel(ctx), cfg.Journal.Path, journal.SessionInfo{
		InputPath:   inputPath,
		EntityCount: entityCount,
		Operator:    user.Operator(),
	})
	if err != nil {
		slog.Warn("failed to open session journal", "path", cfg.Journal.Path, "error", err)
		slog.Info("continuing without a journal")
		return nil
	}
	slog.Info("journal opened", "path", cfg.Journal.Path, "session_id", j.SessionID())
	return j
}
