package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kimushu/altera-bootloader/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage stored conversion defaults",
	Long: `Shows or updates the defaults applied when --endian, --depth,
--trim-checksum or --join-records are not given on the command line.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective defaults",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store the given flags as defaults",
	Long: `Stores any of --endian, --depth, --trim-checksum and --join-records given
with this command in the config file. Flags not given keep their stored value.

Example:
  convert-hex config set --endian big --depth 4096`,
	Args: cobra.NoArgs,
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	cmd.Println("Conversion Defaults")
	cmd.Println("===================")
	cmd.Printf("  Endianness:    %s\n", opts.Endianness)
	if opts.Depth > 0 {
		cmd.Printf("  Depth:         %d words\n", opts.Depth)
	} else {
		cmd.Printf("  Depth:         none\n")
	}
	cmd.Printf("  Trim checksum: %t\n", opts.TrimChecksum)
	cmd.Printf("  Join records:  %t\n", opts.JoinRecords)
	return nil
}

func runConfigSet(cmd *cobra.Command, _ []string) error {
	svc, err := loadSettings()
	if err != nil {
		return err
	}
	if svc == nil {
		return errors.New("settings service not configured")
	}

	flags := cmd.Flags()
	changed := false
	for _, name := range []string{"endian", "depth", "trim-checksum", "join-records"} {
		changed = changed || flags.Changed(name)
	}
	if !changed {
		return fmt.Errorf("%w: nothing to set, give --endian, --depth, --trim-checksum or --join-records", domain.ErrInvalidOption)
	}

	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}
	if err := svc.Save(opts); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Println("Defaults saved.")
	return nil
}
