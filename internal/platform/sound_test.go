package platform

import (
	"errors"
	"os"
	"os/exec"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sleepCommand(t *testing.T, paths *[]string) CommandFactory {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a unix sleep binary")
	}
	sleep, err := exec.LookPath("sleep")
	if err != nil {
		t.Skip("sleep binary not found")
	}
	return func(path string) (*exec.Cmd, error) {
		*paths = append(*paths, path)
		return exec.Command(sleep, "5"), nil
	}
}

func playing(player *CuePlayer) bool {
	player.mu.Lock()
	defer player.mu.Unlock()
	return player.current != nil
}

func TestCuePlayerPlayAndStop(t *testing.T) {
	var paths []string
	player := NewCuePlayerWithCommand([]byte("RIFF"), sleepCommand(t, &paths))
	defer player.Close()

	require.NoError(t, player.Play())
	assert.True(t, playing(player))

	require.Len(t, paths, 1)
	data, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Equal(t, []byte("RIFF"), data)

	require.NoError(t, player.StopAndRewind())
	assert.False(t, playing(player))
	require.NoError(t, player.StopAndRewind())
}

func TestCuePlayerReplayRestarts(t *testing.T) {
	var paths []string
	player := NewCuePlayerWithCommand([]byte("RIFF"), sleepCommand(t, &paths))
	defer player.Close()

	require.NoError(t, player.Play())
	require.NoError(t, player.Play())

	require.Len(t, paths, 2)
	assert.Equal(t, paths[0], paths[1])
	assert.True(t, playing(player))
}

func TestCuePlayerClearsFinishedClip(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a unix true binary")
	}
	binary, err := exec.LookPath("true")
	if err != nil {
		t.Skip("true binary not found")
	}
	player := NewCuePlayerWithCommand([]byte("RIFF"), func(string) (*exec.Cmd, error) {
		return exec.Command(binary), nil
	})
	defer player.Close()

	require.NoError(t, player.Play())
	assert.Eventually(t, func() bool { return !playing(player) }, 2*time.Second, 10*time.Millisecond)
}

func TestCuePlayerUnsupported(t *testing.T) {
	player := NewCuePlayerWithCommand([]byte("RIFF"), func(string) (*exec.Cmd, error) {
		return nil, ErrSoundUnsupported
	})
	defer player.Close()

	err := player.Play()
	assert.True(t, errors.Is(err, ErrSoundUnsupported))
	assert.False(t, playing(player))
}

func TestCuePlayerCloseRemovesClip(t *testing.T) {
	var paths []string
	player := NewCuePlayerWithCommand([]byte("RIFF"), sleepCommand(t, &paths))

	require.NoError(t, player.Play())
	require.NoError(t, player.Close())

	require.Len(t, paths, 1)
	_, err := os.Stat(paths[0])
	assert.True(t, os.IsNotExist(err))
	require.NoError(t, player.Close())
}
