// Package cli implements the convert-hex command line.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kimushu/altera-bootloader/internal/adapters/driven/stream"
	"github.com/kimushu/altera-bootloader/internal/core/domain"
	"github.com/kimushu/altera-bootloader/internal/core/ports/driving"
	"github.com/kimushu/altera-bootloader/internal/logger"
)

// SettingsLoader opens the settings stored at configPath. An empty path
// selects the default location.
type SettingsLoader func(configPath string) (driving.SettingsService, error)

var version = "dev"

// Services wired by Execute and replaced by tests.
var (
	converter      driving.Converter
	settingsLoader SettingsLoader
)

// Flags shared by every conversion command.
var (
	configPath   string
	verbose      bool
	inputPath    string
	outputPath   string
	endianFlag   string
	depthFlag    int
	trimChecksum bool
	joinRecords  bool
)

var rootCmd = &cobra.Command{
	Use:   "convert-hex",
	Short: "Convert Intel HEX to a 32-bit word-addressed image",
	Long: `Reads byte-addressed Intel HEX records, packs the data of each record into
32-bit words and writes a new Intel HEX stream with one word per record, addressed by
word index. Input is read until the first end-of-file record.

Records are read from stdin and written to stdout unless --input or
--output name a file. Inputs ending in .xz are decompressed.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runConvert,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/convert-hex/config.toml)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "log parse and emit details to stderr")
	pf.StringVarP(&inputPath, "input", "i", "", "input HEX file (default stdin)")
	pf.StringVarP(&outputPath, "output", "o", "", "output HEX file (default stdout)")
	pf.StringVarP(&endianFlag, "endian", "e", "little", "byte order of input words: little or big")
	pf.IntVarP(&depthFlag, "depth", "d", 0, "minimum output depth in words, 0 for none")
	pf.BoolVar(&trimChecksum, "trim-checksum", false, "take only the declared byte count from each record")
	pf.BoolVar(&joinRecords, "join-records", false, "assemble words across record boundaries instead of per record")
}

// Execute runs the root command with the given services.
func Execute(ctx context.Context, c driving.Converter, loader SettingsLoader) error {
	converter = c
	settingsLoader = loader
	return rootCmd.ExecuteContext(ctx)
}

// loadSettings opens the configured settings. A default location that
// cannot be resolved falls back to built-in defaults; an explicit one is
// an error.
func loadSettings() (driving.SettingsService, error) {
	if settingsLoader == nil {
		return nil, nil
	}
	svc, err := settingsLoader(configPath)
	if err != nil {
		if configPath == "" {
			logger.Debug("no usable default config: %v", err)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return svc, nil
}

// resolveOptions merges built-in defaults, stored settings and flags, in
// increasing priority.
func resolveOptions(cmd *cobra.Command) (domain.ConvertOptions, error) {
	opts := domain.DefaultConvertOptions()

	svc, err := loadSettings()
	if err != nil {
		return opts, err
	}
	if svc != nil {
		if opts, err = svc.Get(); err != nil {
			return opts, fmt.Errorf("failed to get settings: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("endian") {
		e, err := domain.ParseEndianness(endianFlag)
		if err != nil {
			return opts, err
		}
		opts.Endianness = e
	}
	if flags.Changed("depth") {
		opts.Depth = depthFlag
	}
	if flags.Changed("trim-checksum") {
		opts.TrimChecksum = trimChecksum
	}
	if flags.Changed("join-records") {
		opts.JoinRecords = joinRecords
	}

	if err := opts.Validate(); err != nil {
		return opts, err
	}
	logger.Debug("options: endian=%s depth=%d trim_checksum=%t join_records=%t",
		opts.Endianness, opts.Depth, opts.TrimChecksum, opts.JoinRecords)
	return opts, nil
}

func runConvert(cmd *cobra.Command, _ []string) error {
	if converter == nil {
		return errors.New("converter not configured")
	}

	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	_, err = convertFile(cmd.Context(), cmd, opts)
	return err
}

// convertFile runs one conversion from inputPath to outputPath. The output
// file is only replaced when the conversion succeeds.
func convertFile(ctx context.Context, cmd *cobra.Command, opts domain.ConvertOptions) (*driving.ConversionReport, error) {
	in, err := stream.OpenInput(inputPath, cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	defer in.Close()

	if stream.IsStdio(inputPath) && isTerminal(cmd.InOrStdin()) {
		logger.Info("reading records from the terminal, end input with Ctrl-D")
	}

	out, err := stream.CreateOutput(outputPath, cmd.OutOrStdout())
	if err != nil {
		return nil, err
	}

	report, err := converter.Convert(ctx, in, out, opts)
	if err != nil {
		out.Discard()
		return nil, fmt.Errorf("conversion failed: %w", err)
	}

	if report.Warning != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), report.Warning.String())
	}

	if err := out.Commit(); err != nil {
		return nil, err
	}
	return report, nil
}

// isTerminal reports whether r is a terminal device.
func isTerminal(r any) bool {
	f, ok := r.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

