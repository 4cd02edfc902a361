package launcher

import (
	"bytes"
	"context"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/asta/internal/cli"
	"github.com/thenoetrevino/asta/internal/roster"
	"github.com/thenoetrevino/asta/internal/testutil"
	"github.com/thenoetrevino/asta/internal/tui"
)

// isolate points HOME, the config lookup, the output dir and the journal
// at temp dirs, and returns the output dir and journal path.
func isolate(t *testing.T) (string, string) {
	t.Helper()

	previous := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(previous)
		log.SetOutput(os.Stderr)
	})

	home := t.TempDir()
	outDir := t.TempDir()
	journalPath := filepath.Join(t.TempDir(), "journal.db")

	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("ASTA_CONFIG", "")
	t.Setenv("ASTA_THEME_FILE", "")
	t.Setenv("ASTA_OUTPUT__DIR", outDir)
	t.Setenv("ASTA_JOURNAL__PATH", journalPath)
	return outDir, journalPath
}

func newLauncher(run ProgramRunner) (*Launcher, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &Launcher{Out: &cli.Output{Out: &out, Err: &errOut}, Run: run}, &out
}

func twoRiders(t *testing.T) string {
	t.Helper()
	return testutil.WriteDelimited(t, "riders.csv", ',', [][]string{
		{"Tadej POGACAR"},
		{"Jonas VINGEGAARD"},
	})
}

func TestLaunch_FullSession(t *testing.T) {
	outDir, journalPath := isolate(t)
	input := twoRiders(t)

	l, out := newLauncher(func(_ context.Context, model tea.Model) error {
		m := model.(tui.Model)
		if err := m.Session.Assign("TeamA", "500"); err != nil {
			return err
		}
		if err := m.Session.Assign("", ""); err != nil {
			return err
		}
		return m.Session.Quit()
	})

	require.NoError(t, l.Launch(context.Background(), input))

	data, err := os.ReadFile(filepath.Join(outDir, "riders_auction_results.csv"))
	require.NoError(t, err, "results file not written")
	assert.Equal(t, "Rider,Team,Price\nTadej POGACAR,TeamA,500\nJonas VINGEGAARD,,\n", string(data))

	for _, line := range []string{"Reading entities from:", input, "Found 2 entities", "Results saved to:", "riders_auction_results.csv", "Summary:", "1/2 assigned"} {
		assert.Contains(t, out.String(), line)
	}

	db := testutil.OpenRawDB(t, journalPath)
	var entries int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM journal_entries`).Scan(&entries))
	// assigned, cleared, ended
	assert.Equal(t, 3, entries)
}

func TestLaunch_InterruptedSessionIsSaved(t *testing.T) {
	outDir, _ := isolate(t)
	input := twoRiders(t)

	l, out := newLauncher(func(_ context.Context, model tea.Model) error {
		m := model.(tui.Model)
		if err := m.Session.Assign("TeamB", "12"); err != nil {
			return err
		}
		return tea.ErrProgramKilled
	})

	require.NoError(t, l.Launch(context.Background(), input))

	data, err := os.ReadFile(filepath.Join(outDir, "riders_auction_results.csv"))
	require.NoError(t, err, "results file not written")
	assert.Contains(t, string(data), "Tadej POGACAR,TeamB,12")
	assert.Contains(t, out.String(), "1/2 assigned")
}

func TestLaunch_MissingFile(t *testing.T) {
	isolate(t)

	ran := false
	l, _ := newLauncher(func(context.Context, tea.Model) error {
		ran = true
		return nil
	})

	err := l.Launch(context.Background(), filepath.Join(t.TempDir(), "missing.xlsx"))
	require.ErrorIs(t, err, roster.ErrFileNotFound)
	assert.False(t, ran, "program ran without a roster")
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
}

func TestLaunch_MissingFileBeforeConfig(t *testing.T) {
	isolate(t)
	broken := testutil.WriteFile(t, "config.yaml", "output: [\n")
	t.Setenv("ASTA_CONFIG", broken)

	l, out := newLauncher(func(context.Context, tea.Model) error {
		t.Error("program ran without a roster")
		return nil
	})

	err := l.Launch(context.Background(), filepath.Join(t.TempDir(), "missing.csv"))
	require.ErrorIs(t, err, roster.ErrFileNotFound)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	assert.Contains(t, out.String(), "Reading entities from:")
}

func TestLaunch_EmptyRoster(t *testing.T) {
	isolate(t)
	input := testutil.WriteFile(t, "empty.csv", "\n\n")

	l, _ := newLauncher(func(context.Context, tea.Model) error {
		t.Error("program ran for an empty roster")
		return nil
	})

	err := l.Launch(context.Background(), input)
	assert.ErrorIs(t, err, roster.ErrEmptyResult)
	assert.Equal(t, cli.ExitDataErr, cli.ExitCode(err))
}

func TestLaunch_ExportFailure(t *testing.T) {
	isolate(t)
	t.Setenv("ASTA_OUTPUT__DIR", filepath.Join(t.TempDir(), "does", "not", "exist"))
	input := twoRiders(t)

	l, out := newLauncher(func(_ context.Context, model tea.Model) error {
		_ = model.(tui.Model).Session.Quit()
		return nil
	})

	err := l.Launch(context.Background(), input)
	require.Error(t, err, "Launch() succeeded with an unwritable output dir")
	assert.Equal(t, cli.ExitError, cli.ExitCode(err))
	assert.NotContains(t, out.String(), "Results saved to")
}

func TestLaunch_JournalUnavailable(t *testing.T) {
	outDir, _ := isolate(t)
	// a directory where the database file should be
	t.Setenv("ASTA_JOURNAL__PATH", t.TempDir())
	input := twoRiders(t)

	l, _ := newLauncher(func(_ context.Context, model tea.Model) error {
		return model.(tui.Model).Session.Quit()
	})

	require.NoError(t, l.Launch(context.Background(), input), "session must not depend on the journal")
	assert.FileExists(t, filepath.Join(outDir, "riders_auction_results.csv"))
}

func TestLaunch_JournalDisabled(t *testing.T) {
	_, journalPath := isolate(t)
	t.Setenv("ASTA_JOURNAL__ENABLED", "false")
	input := twoRiders(t)

	l, _ := newLauncher(func(_ context.Context, model tea.Model) error {
		return model.(tui.Model).Session.Quit()
	})

	require.NoError(t, l.Launch(context.Background(), input))
	assert.NoFileExists(t, journalPath)
}
