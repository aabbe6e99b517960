// Package settings holds the shared session and break lengths.
package settings

import (
	"slices"
	"sync"

	"pomodoro/internal/core/model"
)

// Store owns the current Settings and notifies observers on change.
// Notifications are delivered in the order the changes were applied.
type Store struct {
	notifyMu  sync.Mutex
	mu        sync.Mutex
	current   model.Settings
	listeners []func(model.Settings)
}

// NewStore creates a store seeded with initial, clamped into range.
func NewStore(initial model.Settings) *Store {
	return &Store{current: initial.Clamped()}
}

// Settings returns a snapshot of the current values.
func (store *Store) Settings() model.Settings {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.current
}

// SessionMinutes returns the current session length.
func (store *Store) SessionMinutes() int {
	return store.Settings().SessionMinutes
}

// BreakMinutes returns the current break length.
func (store *Store) BreakMinutes() int {
	return store.Settings().BreakMinutes
}

// OnChange registers an observer called after every applied change.
// Observers may read the store but must not mutate it.
func (store *Store) OnChange(listener func(model.Settings)) {
	if listener == nil {
		return
	}
	store.mu.Lock()
	store.listeners = append(store.listeners, listener)
	store.mu.Unlock()
}

// IncrementSession adds one minute to the session length.
func (store *Store) IncrementSession() bool {
	return store.update(func(settings *model.Settings) *int { return &settings.SessionMinutes }, 1)
}

// DecrementSession removes one minute from the session length.
func (store *Store) DecrementSession() bool {
	return store.update(func(settings *model.Settings) *int { return &settings.SessionMinutes }, -1)
}

// IncrementBreak adds one minute to the break length.
func (store *Store) IncrementBreak() bool {
	return store.update(func(settings *model.Settings) *int { return &settings.BreakMinutes }, 1)
}

// DecrementBreak removes one minute from the break length.
func (store *Store) DecrementBreak() bool {
	return store.update(func(settings *model.Settings) *int { return &settings.BreakMinutes }, -1)
}

// update applies delta to the selected field. Results outside
// [model.MinMinutes, model.MaxMinutes] are dropped without notifying.
// notifyMu spans the change and its notification so observers never see
// an older value after a newer one.
func (store *Store) update(field func(*model.Settings) *int, delta int) bool {
	store.notifyMu.Lock()
	defer store.notifyMu.Unlock()

	store.mu.Lock()
	next := store.current
	value := field(&next)
	*value += delta
	if *value < model.MinMinutes || *value > model.MaxMinutes {
		store.mu.Unlock()
		return false
	}
	store.current = next
	listeners := slices.Clone(store.listeners)
	store.mu.Unlock()

	for _, listener := range listeners {
		listener(next)
	}
	return true
}
