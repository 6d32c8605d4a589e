package driving

import "github.com/kimushu/altera-bootloader/internal/core/domain"

// SettingsService manages stored conversion defaults.
type SettingsService interface {
	// Get retrieves the stored defaults, falling back to built-in values.
	Get() (domain.ConvertOptions, error)

	// Save persists conversion defaults.
	Save(opts domain.ConvertOptions) error

	// GetDefaults returns built-in defaults.
	GetDefaults() domain.ConvertOptions
}
