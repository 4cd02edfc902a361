package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/asta/internal/cli"
	"github.com/thenoetrevino/asta/internal/launcher"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "asta <file>",
		Short: "Asta - record auction results for a rider roster",
		Long: `Asta walks through the riders of a roster spreadsheet (.xlsx, .xlsm, .csv, .tsv)
and records which team bought each one and for how much. Results are saved to
<file>_auction_results.csv when you quit.`,
		Args:          exactlyOneFile,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return launcher.Launch(cmd.Context(), args[0])
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	})
	return cmd
}

func exactlyOneFile(_ *cobra.Command, args []string) error {
	switch len(args) {
	case 1:
		return nil
	case 0:
		return fmt.Errorf("%w: missing input file", cli.ErrUsage)
	default:
		return fmt.Errorf("%w: expected one input file, got %d arguments", cli.ErrUsage, len(args))
	}
}

// Execute runs the root command and reports any failure on stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		out := cli.NewOutput()
		out.Error(err)
		if errors.Is(err, cli.ErrUsage) {
			fmt.Fprint(out.Err, "\n"+rootCmd.UsageString())
		}
	}
	return err
}
