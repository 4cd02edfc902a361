package export

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thenoetrevino/asta/internal/models"
	"github.com/thenoetrevino/asta/internal/roster"
	"github.com/thenoetrevino/asta/internal/session"
	"github.com/thenoetrevino/asta/internal/testutil"
)

var _ session.Exporter = (*Writer)(nil)

func testWriter(t *testing.T, input string) (*Writer, string) {
	t.Helper()
	dir := t.TempDir()
	opts := DefaultOptions()
	opts.Dir = dir
	return NewWriter(input, opts), dir
}

func TestBaseName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"input.csv", "input_auction_results"},
		{"/data/riders/Giro 2026.xlsx", "Giro 2026_auction_results"},
		{"riders", "riders_auction_results"},
		{"archive.v2.csv", "archive.v2_auction_results"},
	}

	for _, tt := range tests {
		if got := BaseName(tt.input, "_auction_results"); got != tt.want {
			t.Errorf("BaseName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestExport_TwoRiderScenario(t *testing.T) {
	w, dir := testWriter(t, "input.csv")

	path, err := w.Export([]models.Row{
		{Name: "Tadej POGACAR", Label: "TeamA", Value: "500"},
		{Name: "Jonas VINGEGAARD"},
	})
	if err != nil {
		t.Fatalf("Export() failed: %v", err)
	}
	if path != filepath.Join(dir, "input_auction_results.csv") {
		t.Errorf("Export() path = %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	want := "Rider,Team,Price\nTadej POGACAR,TeamA,500\nJonas VINGEGAARD,,\n"
	if string(data) != want {
		t.Errorf("output = %q, want %q", string(data), want)
	}
}

func TestExport_AvoidsOverwrite(t *testing.T) {
	w, dir := testWriter(t, "input.csv")

	existing := filepath.Join(dir, "input_auction_results.csv")
	if err := os.WriteFile(existing, []byte("keep me"), 0o644); err != nil {
		t.Fatalf("Failed to seed existing file: %v", err)
	}

	rows := []models.Row{{Name: "Tadej POGACAR", Label: "TeamA", Value: "500"}}

	path, err := w.Export(rows)
	if err != nil {
		t.Fatalf("Export() failed: %v", err)
	}
	if path != filepath.Join(dir, "input_auction_results_1.csv") {
		t.Errorf("first collision path = %q, want _1 suffix", path)
	}

	path, err = w.Export(rows)
	if err != nil {
		t.Fatalf("second Export() failed: %v", err)
	}
	if path != filepath.Join(dir, "input_auction_results_2.csv") {
		t.Errorf("second collision path = %q, want _2 suffix", path)
	}

	data, _ := os.ReadFile(existing)
	if string(data) != "keep me" {
		t.Errorf("existing file was modified: %q", string(data))
	}
}

func TestExport_QuotesFields(t *testing.T) {
	w, _ := testWriter(t, "input.csv")

	path, err := w.Export([]models.Row{{Name: "Rider, Jr.", Label: `Team "A"`, Value: "10"}})
	if err != nil {
		t.Fatalf("Export() failed: %v", err)
	}

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), `"Rider, Jr.","Team ""A""",10`) {
		t.Errorf("fields not quoted: %q", string(data))
	}
}

func TestExport_NoRows(t *testing.T) {
	w, dir := testWriter(t, "input.csv")

	if _, err := w.Export(nil); !errors.Is(err, ErrNoRows) {
		t.Errorf("Export(nil) error = %v, want ErrNoRows", err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("Export(nil) created %d files", len(entries))
	}
}

func TestExport_MissingDirectory(t *testing.T) {
	opts := DefaultOptions()
	opts.Dir = filepath.Join(t.TempDir(), "does", "not", "exist")
	w := NewWriter("input.csv", opts)

	if _, err := w.Export([]models.Row{{Name: "A"}}); err == nil {
		t.Error("Export() into a missing directory should fail")
	}
}

func TestExport_RoundTripThroughLoader(t *testing.T) {
	w, _ := testWriter(t, "riders.csv")

	names := []string{"Tadej POGACAR", "Jonas VINGEGAARD", "Tadej POGACAR"}
	rows := make([]models.Row, len(names))
	for i, n := range names {
		rows[i] = models.Row{Name: n, Label: "Team", Value: "1"}
	}

	path, err := w.Export(rows)
	if err != nil {
		t.Fatalf("Export() failed: %v", err)
	}

	entities, err := roster.Load(path, roster.DefaultOptions())
	if err != nil {
		t.Fatalf("roster.Load() failed: %v", err)
	}
	got := testutil.EntityNames(entities)
	if len(got) != len(names) {
		t.Fatalf("round trip returned %d names, want %d: %v", len(got), len(names), got)
	}
	for i := range names {
		if got[i] != names[i] {
			t.Errorf("round trip name[%d] = %q, want %q", i, got[i], names[i])
		}
		if entities[i].HasReference() {
			t.Errorf("round trip entity[%d] should carry no reference", i)
		}
	}
}
