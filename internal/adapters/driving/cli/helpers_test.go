package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/creational/internal/core/domain"
	"github.com/custodia-labs/creational/internal/core/ports/driven"
)

// mockDrink implements driven.HotDrink for testing.
type mockDrink struct {
	id       string
	kind     string
	consumed int
}

func (d *mockDrink) ID() string   { return d.id }
func (d *mockDrink) Kind() string { return d.kind }
func (d *mockDrink) Consume()     { d.consumed++ }

// mockMachine implements driving.DrinkMachine for testing.
type mockMachine struct {
	names []string
	made  []*mockDrink
	err   error
}

func (m *mockMachine) MakeDrink(name string) (driven.HotDrink, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, n := range m.names {
		if n == name {
			d := &mockDrink{id: fmt.Sprintf("%s-%d", name, len(m.made)+1), kind: name}
			m.made = append(m.made, d)
			return d, nil
		}
	}
	return nil, fmt.Errorf("make drink %q: %w", name, domain.ErrNoSuchProduct)
}

func (m *mockMachine) Available() []string { return m.names }

// mockSettings implements driving.SettingsService for testing.
type mockSettings struct {
	settings domain.Settings
	stored   map[string]any
}

func newMockSettings() *mockSettings {
	return &mockSettings{settings: domain.DefaultSettings(), stored: map[string]any{}}
}

func (s *mockSettings) Get() domain.Settings { return s.settings }

func (s *mockSettings) Set(key, raw string) error {
	kind, ok := domain.KnownSettings[key]
	if !ok {
		return fmt.Errorf("unknown setting %q: %w", key, domain.ErrInvalidInput)
	}
	switch kind {
	case domain.SettingKindBool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", key, domain.ErrInvalidInput)
		}
		s.stored[key] = v
	default:
		s.stored[key] = raw
	}
	return nil
}

func (s *mockSettings) Lookup(key string) (any, error) {
	v, ok := s.stored[key]
	if !ok {
		return nil, fmt.Errorf("%s: %w", key, domain.ErrNotFound)
	}
	return v, nil
}

func (s *mockSettings) Path() string { return "/tmp/creational/config.toml" }

// setupTestServices installs mocks and returns a cleanup function.
func setupTestServices() (*mockMachine, *mockSettings, func()) {
	origMachine, origSettings := drinkMachine, settingsService

	machine := &mockMachine{names: []string{"Tea", "Coffee"}}
	settings := newMockSettings()
	SetServices(machine, settings)

	return machine, settings, func() {
		SetServices(origMachine, origSettings)
		resetFlags(rootCmd)
	}
}

// resetFlags restores every flag in the tree so state does not leak
// between Execute calls.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
