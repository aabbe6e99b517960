package timer

import "time"

// Mode is the active phase of the pomodoro cycle.
type Mode string

const (
	ModeSession Mode = "session"
	ModeBreak   Mode = "break"
)

// Other returns the mode that follows this one.
func (mode Mode) Other() Mode {
	if mode == ModeSession {
		return ModeBreak
	}
	return ModeSession
}

// Headline returns the user facing title for the mode.
func (mode Mode) Headline() string {
	if mode == ModeBreak {
		return "Break Time Remaining"
	}
	return "Focus Time Remaining"
}

// ShortName returns a compact name used in status lines.
func (mode Mode) ShortName() string {
	if mode == ModeBreak {
		return "Break"
	}
	return "Focus"
}

// EventType defines the type of Engine event.
type EventType string

const (
	EventTick           EventType = "tick"
	EventModeChange     EventType = "mode_change"
	EventRunningChange  EventType = "running_change"
	EventReset          EventType = "reset"
	EventSettingsChange EventType = "settings_change"
)

// Event represents an Engine update for observers.
type Event struct {
	Type     EventType
	Snapshot Snapshot
	At       time.Time
}
