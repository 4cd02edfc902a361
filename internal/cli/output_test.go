package cli

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/thenoetrevino/asta/internal/roster"
)

func newTestOutput() (*Output, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &Output{Out: &out, Err: &errOut}, &out, &errOut
}

func TestOutput_Field(t *testing.T) {
	o, out, errOut := newTestOutput()

	o.Field("Reading entities from", "riders.xlsx")

	if !strings.Contains(out.String(), "Reading entities from:") {
		t.Errorf("expected label in output, got %q", out.String())
	}
	if !strings.Contains(out.String(), "riders.xlsx") {
		t.Errorf("expected value in output, got %q", out.String())
	}
	if errOut.Len() != 0 {
		t.Errorf("expected nothing on the error stream, got %q", errOut.String())
	}
}

func TestOutput_Line(t *testing.T) {
	o, out, _ := newTestOutput()

	o.Line("Found %d entities", 12)

	if !strings.Contains(out.String(), "Found 12 entities") {
		t.Errorf("expected formatted line, got %q", out.String())
	}
	if !strings.HasSuffix(out.String(), "\n") {
		t.Error("expected output to end with a newline")
	}
}

func TestOutput_Error(t *testing.T) {
	t.Run("with suggestion", func(t *testing.T) {
		o, out, errOut := newTestOutput()

		o.Error(fmt.Errorf("load missing.xlsx: %w", roster.ErrFileNotFound))

		got := errOut.String()
		if !strings.Contains(got, "load missing.xlsx") {
			t.Errorf("expected message on error stream, got %q", got)
		}
		if !strings.Contains(got, Suggestion(roster.ErrFileNotFound)) {
			t.Errorf("expected suggestion on error stream, got %q", got)
		}
		if out.Len() != 0 {
			t.Errorf("expected nothing on stdout, got %q", out.String())
		}
	})

	t.Run("without suggestion", func(t *testing.T) {
		o, _, errOut := newTestOutput()

		o.Error(errors.New("terminal went away"))

		lines := strings.Split(strings.TrimSpace(errOut.String()), "\n")
		if len(lines) != 1 {
			t.Errorf("expected a single line, got %d: %q", len(lines), errOut.String())
		}
	})
}
