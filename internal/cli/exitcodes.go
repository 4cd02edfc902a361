package cli

import (
	"errors"

	"github.com/thenoetrevino/asta/internal/config"
	"github.com/thenoetrevino/asta/internal/roster"
)

// Exit codes for the asta command.
// These codes follow Unix conventions and keep failures distinguishable
// in scripts that wrap the tool.
const (
	// ExitSuccess indicates the session ran and its results were saved.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: export failures, terminal errors, or anything that doesn't
	// fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: a missing input path or extra positional arguments.
	ExitUsage = 2

	// ExitNotFound indicates the input file does not exist.
	ExitNotFound = 3

	// ExitDataErr indicates input that cannot be turned into a session.
	// Use for: unsupported file types, files with no entities, bad column
	// letters, or an invalid configuration file.
	ExitDataErr = 4
)

// ErrUsage marks errors caused by how the command was invoked.
var ErrUsage = errors.New("usage error")

// ExitCode maps an error returned by the command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrUsage):
		return ExitUsage
	case errors.Is(err, roster.ErrFileNotFound):
		return ExitNotFound
	case errors.Is(err, roster.ErrUnsupportedFormat),
		errors.Is(err, roster.ErrEmptyResult),
		errors.Is(err, roster.ErrInvalidColumn),
		errors.Is(err, config.ErrInvalidConfig):
		return ExitDataErr
	default:
		return ExitError
	}
}

// Suggestion returns a hint for fixing err, or "" when there is none.
func Suggestion(err error) string {
	switch {
	case errors.Is(err, ErrUsage):
		return "Run 'asta <file>' with the path to a .xlsx, .xlsm, .csv or .tsv roster"
	case errors.Is(err, roster.ErrFileNotFound):
		return "Check the path and try again"
	case errors.Is(err, roster.ErrUnsupportedFormat):
		return "Save the roster as .xlsx or .csv"
	case errors.Is(err, roster.ErrEmptyResult):
		return "Check roster.surname_column and roster.first_name_column in your config"
	case errors.Is(err, roster.ErrInvalidColumn):
		return "Column settings take spreadsheet letters such as B or AA"
	case errors.Is(err, config.ErrInvalidConfig), errors.Is(err, config.ErrLoadConfig):
		return "Fix the config file named by ASTA_CONFIG or ~/.config/asta/config.yaml"
	default:
		return ""
	}
}
