package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()
	assert.Equal(t, 25, settings.SessionMinutes)
	assert.Equal(t, 5, settings.BreakMinutes)
	assert.Equal(t, 25*time.Minute, settings.SessionDuration())
	assert.Equal(t, 5*time.Minute, settings.BreakDuration())
}

func TestSettingsClamped(t *testing.T) {
	tests := []struct {
		name string
		in   Settings
		want Settings
	}{
		{"in range", Settings{SessionMinutes: 30, BreakMinutes: 10}, Settings{SessionMinutes: 30, BreakMinutes: 10}},
		{"zero", Settings{}, Settings{SessionMinutes: 1, BreakMinutes: 1}},
		{"negative", Settings{SessionMinutes: -4, BreakMinutes: -1}, Settings{SessionMinutes: 1, BreakMinutes: 1}},
		{"too large", Settings{SessionMinutes: 61, BreakMinutes: 600}, Settings{SessionMinutes: 60, BreakMinutes: 60}},
		{"bounds", Settings{SessionMinutes: 1, BreakMinutes: 60}, Settings{SessionMinutes: 1, BreakMinutes: 60}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Clamped())
		})
	}
}
