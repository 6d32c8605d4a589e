// convert-hex converts byte-addressed Intel HEX into a 32-bit word-addressed
// Intel HEX image.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kimushu/altera-bootloader/internal/adapters/driven/config/file"
	"github.com/kimushu/altera-bootloader/internal/adapters/driven/digest"
	"github.com/kimushu/altera-bootloader/internal/adapters/driven/intelhex"
	"github.com/kimushu/altera-bootloader/internal/adapters/driving/cli"
	"github.com/kimushu/altera-bootloader/internal/core/ports/driving"
	"github.com/kimushu/altera-bootloader/internal/core/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	converter := services.NewConverterService(
		intelhex.NewParser(),
		intelhex.NewEmitter(),
		digest.NewBlake3Hasher(),
	)

	loadSettings := func(path string) (driving.SettingsService, error) {
		store, err := file.NewConfigStore(path)
		if err != nil {
			return nil, err
		}
		return services.NewSettingsService(store), nil
	}

	return cli.Execute(ctx, converter, loadSettings)
}
