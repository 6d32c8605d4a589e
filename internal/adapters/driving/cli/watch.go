package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kimushu/altera-bootloader/internal/adapters/driven/stream"
	"github.com/kimushu/altera-bootloader/internal/adapters/driving/watch"
	"github.com/kimushu/altera-bootloader/internal/core/domain"
)

var watchInterval time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Reconvert the input file whenever it changes",
	Long: `Converts --input to --output, then keeps watching the input and converts
again after every change until interrupted. A failed conversion is reported
and leaves the previous output in place.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", watch.DefaultInterval, "minimum time between conversions")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if converter == nil {
		return errors.New("converter not configured")
	}
	if stream.IsStdio(inputPath) || stream.IsStdio(outputPath) {
		return fmt.Errorf("%w: watch needs both --input and --output files", domain.ErrMissingPath)
	}

	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	rebuild := func(ctx context.Context) error {
		report, err := convertFile(ctx, cmd, opts)
		if err != nil {
			return err
		}
		cmd.PrintErrf("converted %s -> %s (%d words", inputPath, outputPath, report.Words)
		if report.PaddingWords > 0 {
			cmd.PrintErrf(", %d padding", report.PaddingWords)
		}
		cmd.PrintErrln(")")
		return nil
	}
	onError := func(err error) {
		cmd.PrintErrf("Error: %v\n", err)
	}

	w, err := watch.New(inputPath, watchInterval, rebuild, onError)
	if err != nil {
		return err
	}

	cmd.PrintErrf("Watching %s (press Ctrl-C to stop)\n", w.Path())
	return w.Run(cmd.Context())
}
