package services

import (
	"fmt"

	"github.com/kimushu/altera-bootloader/internal/core/domain"
	"github.com/kimushu/altera-bootloader/internal/core/ports/driven"
	"github.com/kimushu/altera-bootloader/internal/core/ports/driving"
	"github.com/kimushu/altera-bootloader/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for conversion defaults.
const (
	keyEndianness   = "convert.endianness"
	keyDepth        = "convert.depth"
	keyTrimChecksum = "convert.trim_checksum"
	keyJoinRecords  = "convert.join_records"
)

// SettingsService manages conversion defaults stored in a ConfigStore.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service. A nil store yields
// built-in defaults and refuses to save.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves stored defaults. Invalid stored values are ignored in
// favour of the built-in ones.
func (s *SettingsService) Get() (domain.ConvertOptions, error) {
	opts := s.GetDefaults()
	if s.configStore == nil {
		return opts, nil
	}

	opts.Endianness = s.getEndianness(opts.Endianness)
	opts.Depth = s.getDepth(opts.Depth)
	opts.TrimChecksum = s.getBool(keyTrimChecksum, opts.TrimChecksum)
	opts.JoinRecords = s.getBool(keyJoinRecords, opts.JoinRecords)

	return opts, nil
}

// Save persists conversion defaults.
func (s *SettingsService) Save(opts domain.ConvertOptions) error {
	if s.configStore == nil {
		return fmt.Errorf("settings: no config store")
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	if err := s.configStore.Set(keyEndianness, opts.Endianness.String()); err != nil {
		return fmt.Errorf("failed to save endianness: %w", err)
	}
	if err := s.configStore.Set(keyDepth, opts.Depth); err != nil {
		return fmt.Errorf("failed to save depth: %w", err)
	}
	if err := s.configStore.Set(keyTrimChecksum, opts.TrimChecksum); err != nil {
		return fmt.Errorf("failed to save trim_checksum: %w", err)
	}
	if err := s.configStore.Set(keyJoinRecords, opts.JoinRecords); err != nil {
		return fmt.Errorf("failed to save join_records: %w", err)
	}
	return nil
}

// GetDefaults returns built-in defaults.
func (s *SettingsService) GetDefaults() domain.ConvertOptions {
	return domain.DefaultConvertOptions()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getEndianness(defaultVal domain.Endianness) domain.Endianness {
	val := s.configStore.GetString(keyEndianness)
	if val == "" {
		return defaultVal
	}
	e, err := domain.ParseEndianness(val)
	if err != nil {
		logger.Warn("%s: ignoring %q in %s", keyEndianness, val, s.configStore.Path())
		return defaultVal
	}
	return e
}

func (s *SettingsService) getDepth(defaultVal int) int {
	if _, exists := s.configStore.Get(keyDepth); !exists {
		return defaultVal
	}
	depth := s.configStore.GetInt(keyDepth)
	if depth < 0 {
		logger.Warn("%s: ignoring negative depth %d in %s", keyDepth, depth, s.configStore.Path())
		return defaultVal
	}
	return depth
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
