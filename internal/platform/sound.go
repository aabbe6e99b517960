package platform

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
)

// ErrSoundUnsupported indicates no audio player is available on this system.
var ErrSoundUnsupported = errors.New("sound playback unsupported")

// CommandFactory builds the process that plays the WAV file at path.
type CommandFactory func(path string) (*exec.Cmd, error)

// CuePlayer plays a WAV clip through the system audio player.
// Each Play starts from the beginning; StopAndRewind cuts the clip short.
type CuePlayer struct {
	mu      sync.Mutex
	data    []byte
	dir     string
	path    string
	command CommandFactory
	current *exec.Cmd
}

// NewCuePlayer returns a player for the given WAV data.
func NewCuePlayer(data []byte) *CuePlayer {
	return NewCuePlayerWithCommand(data, soundCommand)
}

// NewCuePlayerWithCommand returns a player using a custom process factory.
func NewCuePlayerWithCommand(data []byte, command CommandFactory) *CuePlayer {
	return &CuePlayer{data: data, command: command}
}

// Play starts the clip, restarting it if it is already playing.
func (player *CuePlayer) Play() error {
	player.mu.Lock()
	defer player.mu.Unlock()

	player.stopLocked()

	path, err := player.ensureFileLocked()
	if err != nil {
		return err
	}
	cmd, err := player.command(path)
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start audio player: %w", err)
	}
	player.current = cmd

	go func() {
		_ = cmd.Wait()
		player.mu.Lock()
		if player.current == cmd {
			player.current = nil
		}
		player.mu.Unlock()
	}()
	return nil
}

// StopAndRewind stops playback. The next Play starts from the beginning.
func (player *CuePlayer) StopAndRewind() error {
	player.mu.Lock()
	defer player.mu.Unlock()
	return player.stopLocked()
}

// Close stops playback and removes the temporary clip.
func (player *CuePlayer) Close() error {
	player.mu.Lock()
	defer player.mu.Unlock()
	_ = player.stopLocked()
	if player.dir == "" {
		return nil
	}
	dir := player.dir
	player.dir = ""
	player.path = ""
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("remove audio cue: %w", err)
	}
	return nil
}

func (player *CuePlayer) stopLocked() error {
	if player.current == nil {
		return nil
	}
	cmd := player.current
	player.current = nil
	if cmd.Process == nil {
		return nil
	}
	if err := cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("stop audio player: %w", err)
	}
	return nil
}

func (player *CuePlayer) ensureFileLocked() (string, error) {
	if player.path != "" {
		return player.path, nil
	}
	dir, err := os.MkdirTemp("", "pomodoro-cue-")
	if err != nil {
		return "", fmt.Errorf("create audio cue dir: %w", err)
	}
	path := filepath.Join(dir, "beep.wav")
	if err := os.WriteFile(path, player.data, 0o600); err != nil {
		_ = os.RemoveAll(dir)
		return "", fmt.Errorf("write audio cue: %w", err)
	}
	player.dir = dir
	player.path = path
	return path, nil
}
