package timer

// AudioCue is the sound played when the countdown switches mode.
// Both calls are best effort; the engine never surfaces their errors.
type AudioCue interface {
	Play() error
	StopAndRewind() error
}

// SilentCue is an AudioCue that does nothing.
type SilentCue struct{}

// Play implements AudioCue.
func (SilentCue) Play() error { return nil }

// StopAndRewind implements AudioCue.
func (SilentCue) StopAndRewind() error { return nil }
