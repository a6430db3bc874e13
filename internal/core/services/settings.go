package services

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/custodia-labs/creational/internal/core/domain"
	"github.com/custodia-labs/creational/internal/core/ports/driven"
	"github.com/custodia-labs/creational/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// SettingsService reads and writes typed settings through a ConfigStore.
type SettingsService struct {
	store driven.ConfigStore
}

// NewSettingsService creates a settings service backed by the given store.
func NewSettingsService(store driven.ConfigStore) *SettingsService {
	return &SettingsService{store: store}
}

// Get returns the current settings, falling back to defaults for unset keys.
func (s *SettingsService) Get() domain.Settings {
	settings := domain.DefaultSettings()
	if s.store == nil {
		return settings
	}

	if _, ok := s.store.Get(domain.SettingVerbose); ok {
		settings.Verbose = s.store.GetBool(domain.SettingVerbose)
	}
	if v := s.store.GetString(domain.SettingDefaultDrink); v != "" {
		settings.DefaultDrink = v
	}
	if _, ok := s.store.Get(domain.SettingJSONOutput); ok {
		settings.JSONOutput = s.store.GetBool(domain.SettingJSONOutput)
	}

	return settings
}

// Set parses raw according to the key's kind and persists it.
// Unknown keys and unparsable values return domain.ErrInvalidInput.
func (s *SettingsService) Set(key, raw string) error {
	if s.store == nil {
		return errors.New("config store not configured")
	}

	kind, ok := domain.KnownSettings[key]
	if !ok {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	var value any
	switch kind {
	case domain.SettingKindBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%w: %s expects true or false, got %q", domain.ErrInvalidInput, key, raw)
		}
		value = b
	default:
		if raw == "" {
			return fmt.Errorf("%w: %s must not be empty", domain.ErrInvalidInput, key)
		}
		value = raw
	}

	if err := s.store.Set(key, value); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}

// Lookup returns the stored value for a key.
// Returns domain.ErrNotFound if the key is not set.
func (s *SettingsService) Lookup(key string) (any, error) {
	if s.store == nil {
		return nil, domain.ErrNotFound
	}
	val, ok := s.store.Get(key)
	if !ok {
		return nil, fmt.Errorf("%s: %w", key, domain.ErrNotFound)
	}
	return val, nil
}

// Path returns where settings are persisted.
func (s *SettingsService) Path() string {
	if s.store == nil {
		return ""
	}
	return s.store.Path()
}
