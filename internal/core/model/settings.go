package model

import "time"

const (
	// MinMinutes is the smallest accepted session or break length.
	MinMinutes = 1
	// MaxMinutes is the largest accepted session or break length.
	MaxMinutes = 60

	// DefaultSessionMinutes is the focus length used when nothing is configured.
	DefaultSessionMinutes = 25

	// DefaultBreakMinutes is the break length used when nothing is configured.
	DefaultBreakMinutes = 5
)

// Settings holds the user adjustable lengths, in minutes.
type Settings struct {
	SessionMinutes int
	BreakMinutes   int
}

// DefaultSettings returns the classic 25/5 pomodoro split.
func DefaultSettings() Settings {
	return Settings{
		SessionMinutes: DefaultSessionMinutes,
		BreakMinutes:   DefaultBreakMinutes,
	}
}

// Clamped returns a copy with both lengths forced into [MinMinutes, MaxMinutes].
func (settings Settings) Clamped() Settings {
	settings.SessionMinutes = clampMinutes(settings.SessionMinutes)
	settings.BreakMinutes = clampMinutes(settings.BreakMinutes)
	return settings
}

// SessionDuration returns the session length as a duration.
func (settings Settings) SessionDuration() time.Duration {
	return time.Duration(settings.SessionMinutes) * time.Minute
}

// BreakDuration returns the break length as a duration.
func (settings Settings) BreakDuration() time.Duration {
	return time.Duration(settings.BreakMinutes) * time.Minute
}

func clampMinutes(minutes int) int {
	if minutes < MinMinutes {
		return MinMinutes
	}
	if minutes > MaxMinutes {
		return MaxMinutes
	}
	return minutes
}
