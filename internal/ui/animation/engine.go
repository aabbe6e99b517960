// Package animation drives short cosmetic effects on the timer view.
package animation

import (
	"context"
	"sync"
	"time"
)

// Config contains flash timing values.
type Config struct {
	Flashes int
	On      time.Duration
	Off     time.Duration
}

// DefaultConfig returns the flash used on mode changes.
func DefaultConfig() Config {
	return Config{
		Flashes: 3,
		On:      250 * time.Millisecond,
		Off:     250 * time.Millisecond,
	}
}

// Engine toggles a highlight on and off a fixed number of times.
type Engine struct {
	mu         sync.Mutex
	config     Config
	apply      func(highlighted bool)
	cancel     context.CancelFunc
	generation uint64
}

// New creates a flash engine. apply is called from a background goroutine.
func New(config Config, apply func(highlighted bool)) *Engine {
	return &Engine{config: config, apply: apply}
}

// StartFlash cancels any running flash and starts a new one.
// The returned channel is closed once the flash has finished. A flash that
// was replaced by a newer one leaves the highlight to its successor.
func (engine *Engine) StartFlash(ctx context.Context) <-chan struct{} {
	engine.mu.Lock()
	if engine.cancel != nil {
		engine.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	engine.cancel = cancel
	engine.generation++
	generation := engine.generation
	engine.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer engine.applyCurrent(generation, false)
		for i := 0; i < engine.config.Flashes; i++ {
			if !engine.applyCurrent(generation, true) || !sleepWithContext(runCtx, engine.config.On) {
				return
			}
			if !engine.applyCurrent(generation, false) || !sleepWithContext(runCtx, engine.config.Off) {
				return
			}
		}
	}()
	return done
}

// Stop terminates any active flash.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.cancel != nil {
		engine.cancel()
		engine.cancel = nil
	}
}

// applyCurrent calls apply only while generation is the latest flash.
func (engine *Engine) applyCurrent(generation uint64, highlighted bool) bool {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.generation != generation {
		return false
	}
	engine.apply(highlighted)
	return true
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
