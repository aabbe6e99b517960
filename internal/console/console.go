// Package console is a line oriented front-end for terminals.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timer"
)

// ErrUnknownCommand is returned for input that matches no command.
var ErrUnknownCommand = errors.New("unknown command")

const helpText = `commands:
  s, toggle        start or stop the countdown
  start, stop      start or stop explicitly
  r, reset         back to a full, paused session
  session+ / session-  change the session length by one minute
  break+ / break-      change the break length by one minute
  status           print the current state
  q, quit          exit
`

// Timer is the engine surface the console drives.
type Timer interface {
	Snapshot() timer.Snapshot
	SetRunning(running bool)
	ToggleRunning() bool
	Reset()
}

// Store is the settings surface the console edits.
type Store interface {
	Settings() model.Settings
	IncrementSession() bool
	DecrementSession() bool
	IncrementBreak() bool
	DecrementBreak() bool
}

// Console executes commands against a timer and prints its state.
type Console struct {
	mu    sync.Mutex
	timer Timer
	store Store
	out   io.Writer
}

// New creates a console writing to out.
func New(engine Timer, store Store, out io.Writer) *Console {
	return &Console{timer: engine, store: store, out: out}
}

// Run reads commands from in until EOF, quit or ctx is done.
// Mode changes received on events are announced as they happen.
func (console *Console) Run(ctx context.Context, in io.Reader, events <-chan timer.Event) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-stop:
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	console.printf("%s", helpText)
	console.PrintStatus()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if event.Type == timer.EventModeChange {
				console.printf("%s started\n", event.Snapshot.Mode.ShortName())
				console.printStatus(event.Snapshot)
			}
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					if err != nil {
						return fmt.Errorf("read commands: %w", err)
					}
				default:
				}
				return nil
			}
			quit, err := console.Execute(line)
			if err != nil {
				console.printf("error: %v\n", err)
				continue
			}
			if quit {
				return nil
			}
		}
	}
}

// Execute runs a single command line. It reports whether the console should exit.
func (console *Console) Execute(line string) (bool, error) {
	command := strings.ToLower(strings.TrimSpace(line))
	switch command {
	case "":
		return false, nil
	case "s", "toggle":
		console.timer.ToggleRunning()
	case "start":
		console.timer.SetRunning(true)
	case "stop":
		console.timer.SetRunning(false)
	case "r", "reset":
		console.timer.Reset()
	case "session+":
		console.store.IncrementSession()
		console.printLengths()
	case "session-":
		console.store.DecrementSession()
		console.printLengths()
	case "break+":
		console.store.IncrementBreak()
		console.printLengths()
	case "break-":
		console.store.DecrementBreak()
		console.printLengths()
	case "status":
	case "h", "help", "?":
		console.printf("%s", helpText)
		return false, nil
	case "q", "quit", "exit":
		return true, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
	console.PrintStatus()
	return false, nil
}

// PrintStatus writes the current state as one line.
func (console *Console) PrintStatus() {
	console.printStatus(console.timer.Snapshot())
}

// StatusLine formats a snapshot, e.g. "[Focus] 24:59 100% running".
func StatusLine(snapshot timer.Snapshot) string {
	state := "paused"
	if snapshot.Running {
		state = "running"
	}
	return fmt.Sprintf("[%s] %s %3d%% %s", snapshot.Mode.ShortName(), snapshot.Display, snapshot.Percentage, state)
}

func (console *Console) printStatus(snapshot timer.Snapshot) {
	console.printf("%s\n", StatusLine(snapshot))
}

func (console *Console) printLengths() {
	settings := console.store.Settings()
	console.printf("session %d min, break %d min\n", settings.SessionMinutes, settings.BreakMinutes)
}

func (console *Console) printf(format string, args ...any) {
	console.mu.Lock()
	defer console.mu.Unlock()
	fmt.Fprintf(console.out, format, args...)
}
