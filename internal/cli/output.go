package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/thenoetrevino/asta/internal/cli/styles"
)

// Output writes the messages printed around the interactive session.
// Progress goes to Out, failures to Err.
type Output struct {
	Out io.Writer
	Err io.Writer
}

// NewOutput returns an Output bound to the process's stdout and stderr
func NewOutput() *Output {
	return &Output{Out: os.Stdout, Err: os.Stderr}
}

// Field prints a "Label: value" line
func (o *Output) Field(label, value string) {
	fmt.Fprintf(o.Out, "%s %s\n", styles.LabelStyle.Render(label+":"), styles.ValueStyle.Render(value))
}

// Line prints a plain progress message
func (o *Output) Line(format string, args ...any) {
	fmt.Fprintln(o.Out, styles.SubtitleStyle.Render(fmt.Sprintf(format, args...)))
}

// Error prints err with a suggestion when one is known
func (o *Output) Error(err error) {
	o.ErrorWithSuggestion(err.Error(), Suggestion(err))
}

// ErrorWithSuggestion prints a message with an optional suggestion
func (o *Output) ErrorWithSuggestion(message, suggestion string) {
	fmt.Fprintf(o.Err, "%s %s\n", styles.ErrorStyle.Render("Error"), message)
	if suggestion != "" {
		fmt.Fprintf(o.Err, "%s %s\n", styles.WarningStyle.Render("Hint"), suggestion)
	}
}
