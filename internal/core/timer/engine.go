// Package timer implements the pomodoro countdown state machine.
package timer

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"pomodoro/internal/core/model"
)

// SettingsSource provides the lengths the engine counts down from.
type SettingsSource interface {
	Settings() model.Settings
	OnChange(func(model.Settings))
}

// Config contains runtime options for Engine.
type Config struct {
	TickInterval time.Duration
	Logger       *slog.Logger
}

// State is the authoritative countdown state.
type State struct {
	Mode             Mode
	RemainingSeconds int
	Running          bool
}

// Engine alternates between session and break countdowns.
type Engine struct {
	mu      sync.Mutex
	source  SettingsSource
	cue     AudioCue
	options Config
	logger  *slog.Logger
	state   State
	events  []chan Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	rearmCh chan struct{}
	looping bool
	stopped bool
}

// New creates an Engine paused at the start of a session.
func New(source SettingsSource, cue AudioCue, options Config) *Engine {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Logger == nil {
		options.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cue == nil {
		cue = SilentCue{}
	}

	engine := &Engine{
		source:  source,
		cue:     cue,
		options: options,
		logger:  options.Logger.With("component", "timer"),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
		rearmCh: make(chan struct{}, 1),
	}
	engine.state = State{
		Mode:             ModeSession,
		RemainingSeconds: seconds(source.Settings().SessionDuration()),
	}
	source.OnChange(engine.applySettings)
	return engine
}

// Subscribe registers a new observer channel.
func (engine *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	engine.mu.Lock()
	if engine.stopped {
		engine.mu.Unlock()
		close(ch)
		return ch
	}
	engine.events = append(engine.events, ch)
	engine.mu.Unlock()
	return ch
}

// Start launches the ticking loop. It is a no-op once started or stopped.
func (engine *Engine) Start() {
	engine.mu.Lock()
	if engine.looping || engine.stopped {
		engine.mu.Unlock()
		return
	}
	engine.looping = true
	engine.mu.Unlock()

	go engine.run()
}

// Stop terminates the ticking loop, waits for it to exit and closes observers.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	if engine.stopped {
		engine.mu.Unlock()
		return
	}
	engine.stopped = true
	looping := engine.looping
	close(engine.stopCh)
	events := engine.events
	engine.events = nil
	engine.mu.Unlock()

	if looping {
		<-engine.doneCh
	}
	for _, ch := range events {
		close(ch)
	}
}

// Snapshot returns the current state with derived display values.
func (engine *Engine) Snapshot() Snapshot {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.snapshotLocked()
}

// ToggleRunning flips between running and paused and returns the new flag.
func (engine *Engine) ToggleRunning() bool {
	engine.mu.Lock()
	running := !engine.state.Running
	engine.setRunningLocked(running)
	engine.mu.Unlock()
	return running
}

// SetRunning starts or pauses the countdown. Mode and remaining time are kept.
func (engine *Engine) SetRunning(running bool) {
	engine.mu.Lock()
	engine.setRunningLocked(running)
	engine.mu.Unlock()
}

// Reset pauses the engine, returns to a full session and silences the cue.
func (engine *Engine) Reset() {
	engine.mu.Lock()
	engine.state = State{
		Mode:             ModeSession,
		RemainingSeconds: seconds(engine.source.Settings().SessionDuration()),
		Running:          false,
	}
	engine.emitLocked(EventReset, time.Now())
	engine.mu.Unlock()

	if err := engine.cue.StopAndRewind(); err != nil {
		engine.logger.Debug("stop audio cue", "error", err)
	}
}

// Tick advances the countdown by one second. It does nothing while paused.
func (engine *Engine) Tick() {
	engine.tick(time.Now())
}

func (engine *Engine) run() {
	defer close(engine.doneCh)

	ticker := time.NewTicker(engine.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-engine.stopCh:
			return
		case <-engine.rearmCh:
			ticker.Reset(engine.options.TickInterval)
		case tickTime := <-ticker.C:
			engine.tick(tickTime)
		}
	}
}

func (engine *Engine) tick(tickTime time.Time) {
	engine.mu.Lock()
	if !engine.state.Running {
		engine.mu.Unlock()
		return
	}

	if engine.state.RemainingSeconds > 0 {
		engine.state.RemainingSeconds--
		engine.emitLocked(EventTick, tickTime)
		engine.mu.Unlock()
		return
	}

	next := engine.state.Mode.Other()
	engine.state.Mode = next
	engine.state.RemainingSeconds = engine.modeSecondsLocked(next)
	engine.emitLocked(EventModeChange, tickTime)
	engine.mu.Unlock()

	engine.logger.Info("mode changed", "mode", string(next))
	if err := engine.cue.Play(); err != nil {
		engine.logger.Debug("play audio cue", "error", err)
	}
}

// applySettings re-arms the countdown at the start of a session whenever
// a length changes, regardless of the active mode.
func (engine *Engine) applySettings(settings model.Settings) {
	engine.mu.Lock()
	engine.state.Mode = ModeSession
	engine.state.RemainingSeconds = seconds(settings.SessionDuration())
	engine.emitLocked(EventSettingsChange, time.Now())
	engine.mu.Unlock()

	select {
	case engine.rearmCh <- struct{}{}:
	default:
	}

	engine.logger.Debug("settings applied",
		"session_minutes", settings.SessionMinutes,
		"break_minutes", settings.BreakMinutes)
}

func (engine *Engine) setRunningLocked(running bool) {
	if engine.state.Running == running {
		return
	}
	engine.state.Running = running
	engine.emitLocked(EventRunningChange, time.Now())
}

func (engine *Engine) modeSecondsLocked(mode Mode) int {
	settings := engine.source.Settings()
	if mode == ModeBreak {
		return seconds(settings.BreakDuration())
	}
	return seconds(settings.SessionDuration())
}

func seconds(duration time.Duration) int {
	return int(duration / time.Second)
}

func (engine *Engine) snapshotLocked() Snapshot {
	return newSnapshot(engine.state, engine.modeSecondsLocked(engine.state.Mode))
}

func (engine *Engine) emitLocked(eventType EventType, at time.Time) {
	if len(engine.events) == 0 {
		return
	}
	event := Event{
		Type:     eventType,
		Snapshot: engine.snapshotLocked(),
		At:       at,
	}
	for _, ch := range engine.events {
		select {
		case ch <- event:
		default:
		}
	}
}
