package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.False(t, s.Verbose)
	assert.False(t, s.JSONOutput)
	assert.Equal(t, "Tea", s.DefaultDrink)
}

func TestKnownSettings(t *testing.T) {
	tests := []struct {
		key  string
		kind SettingKind
	}{
		{SettingVerbose, SettingKindBool},
		{SettingDefaultDrink, SettingKindString},
		{SettingJSONOutput, SettingKindBool},
	}

	assert.Len(t, KnownSettings, len(tests))
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			kind, ok := KnownSettings[tt.key]
			assert.True(t, ok)
			assert.Equal(t, tt.kind, kind)
		})
	}
}
