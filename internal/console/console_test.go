package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/settings"
	"pomodoro/internal/core/timer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConsole(t *testing.T, initial model.Settings) (*Console, *timer.Engine, *settings.Store, *bytes.Buffer) {
	t.Helper()
	store := settings.NewStore(initial)
	engine := timer.New(store, timer.SilentCue{}, timer.Config{TickInterval: time.Hour})
	t.Cleanup(engine.Stop)
	out := &bytes.Buffer{}
	return New(engine, store, out), engine, store, out
}

func (console *Console) output(out *bytes.Buffer) string {
	console.mu.Lock()
	defer console.mu.Unlock()
	return out.String()
}

func TestStatusLine(t *testing.T) {
	line := StatusLine(timer.Snapshot{Mode: timer.ModeSession, Display: "24:59", Percentage: 100, Running: true})
	assert.Equal(t, "[Focus] 24:59 100% running", line)

	line = StatusLine(timer.Snapshot{Mode: timer.ModeBreak, Display: "00:05", Percentage: 2})
	assert.Equal(t, "[Break] 00:05   2% paused", line)
}

func TestExecuteControlsEngine(t *testing.T) {
	console, engine, _, out := newTestConsole(t, model.DefaultSettings())

	quit, err := console.Execute("s")
	require.NoError(t, err)
	assert.False(t, quit)
	assert.True(t, engine.Snapshot().Running)
	assert.Contains(t, out.String(), "[Focus] 25:00 100% running")

	engine.Tick()
	_, err = console.Execute(" STOP ")
	require.NoError(t, err)
	assert.False(t, engine.Snapshot().Running)
	assert.Contains(t, out.String(), "[Focus] 24:59 100% paused")

	_, err = console.Execute("start")
	require.NoError(t, err)
	assert.True(t, engine.Snapshot().Running)

	_, err = console.Execute("reset")
	require.NoError(t, err)
	snapshot := engine.Snapshot()
	assert.False(t, snapshot.Running)
	assert.Equal(t, 1500, snapshot.RemainingSeconds)
}

func TestExecuteEditsSettings(t *testing.T) {
	console, engine, store, out := newTestConsole(t, model.Settings{SessionMinutes: 60, BreakMinutes: 5})

	_, err := console.Execute("session+")
	require.NoError(t, err)
	assert.Equal(t, 60, store.SessionMinutes())

	_, err = console.Execute("session-")
	require.NoError(t, err)
	_, err = console.Execute("break+")
	require.NoError(t, err)
	_, err = console.Execute("break-")
	require.NoError(t, err)
	_, err = console.Execute("break-")
	require.NoError(t, err)

	assert.Equal(t, model.Settings{SessionMinutes: 59, BreakMinutes: 4}, store.Settings())
	assert.Equal(t, 59*60, engine.Snapshot().RemainingSeconds)
	assert.Contains(t, out.String(), "session 59 min, break 4 min")
}

func TestExecuteUnknownAndQuit(t *testing.T) {
	console, _, _, out := newTestConsole(t, model.DefaultSettings())

	_, err := console.Execute("pause please")
	assert.ErrorIs(t, err, ErrUnknownCommand)

	quit, err := console.Execute("")
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Empty(t, out.String())

	quit, err = console.Execute("help")
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Contains(t, out.String(), "commands:")

	quit, err = console.Execute("q")
	require.NoError(t, err)
	assert.True(t, quit)
}

func TestRunProcessesInputUntilQuit(t *testing.T) {
	console, engine, _, out := newTestConsole(t, model.DefaultSettings())

	in := strings.NewReader("s\nbogus\nstatus\nquit\ns\n")
	require.NoError(t, console.Run(context.Background(), in, nil))

	assert.True(t, engine.Snapshot().Running)
	assert.Contains(t, out.String(), "error: unknown command: \"bogus\"")
	assert.Equal(t, 2, strings.Count(out.String(), "running"))
}

func TestRunStopsAtEOF(t *testing.T) {
	console, _, _, out := newTestConsole(t, model.DefaultSettings())

	require.NoError(t, console.Run(context.Background(), strings.NewReader(""), nil))
	assert.Contains(t, out.String(), "[Focus] 25:00 100% paused")
}

func TestRunAnnouncesModeChanges(t *testing.T) {
	console, _, _, out := newTestConsole(t, model.DefaultSettings())

	events := make(chan timer.Event, 2)
	events <- timer.Event{Type: timer.EventTick, Snapshot: timer.Snapshot{Mode: timer.ModeSession, Display: "00:01"}}
	events <- timer.Event{Type: timer.EventModeChange, Snapshot: timer.Snapshot{Mode: timer.ModeBreak, Display: "05:00", Percentage: 100, Running: true}}
	close(events)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reader, writer := io.Pipe()
	defer writer.Close()

	done := make(chan error, 1)
	go func() { done <- console.Run(ctx, reader, events) }()

	require.Eventually(t, func() bool {
		return strings.Contains(console.output(out), "Break started")
	}, time.Second, 5*time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	assert.Contains(t, console.output(out), "[Break] 05:00 100% running")
	assert.NotContains(t, console.output(out), "00:01")
}
