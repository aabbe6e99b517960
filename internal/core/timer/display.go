package timer

import (
	"fmt"
	"math"
)

// Snapshot is an immutable view of the engine with derived display values.
type Snapshot struct {
	Mode             Mode
	RemainingSeconds int
	TotalSeconds     int
	Running          bool
	Percentage       int
	Display          string
}

// Percentage returns round(remaining/total*100) limited to [0, 100].
// A non-positive total yields 0.
func Percentage(remaining, total int) int {
	if total <= 0 {
		return 0
	}
	value := int(math.Round(float64(remaining) / float64(total) * 100))
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}

// FormatClock renders seconds as zero padded MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func newSnapshot(state State, totalSeconds int) Snapshot {
	return Snapshot{
		Mode:             state.Mode,
		RemainingSeconds: state.RemainingSeconds,
		TotalSeconds:     totalSeconds,
		Running:          state.Running,
		Percentage:       Percentage(state.RemainingSeconds, totalSeconds),
		Display:          FormatClock(state.RemainingSeconds),
	}
}
