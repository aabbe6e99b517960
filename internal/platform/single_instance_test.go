package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstanceLockExcludesSecondHolder(t *testing.T) {
	name := "pomodoro-test-" + t.Name()

	first, err := AcquireInstanceLock(name)
	require.NoError(t, err)
	defer first.Release()

	second, err := AcquireInstanceLock(name)
	assert.Nil(t, second)
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, first.Release())
	require.NoError(t, first.Release())

	third, err := AcquireInstanceLock(name)
	require.NoError(t, err)
	assert.Equal(t, first.Address(), third.Address())
	require.NoError(t, third.Release())
}

func TestInstanceLockNil(t *testing.T) {
	var lock *InstanceLock
	assert.NoError(t, lock.Release())
	assert.Empty(t, lock.Address())
}

func TestLockPortRange(t *testing.T) {
	for _, name := range []string{"", "Pomodoro", "another app"} {
		port := lockPort(name)
		assert.GreaterOrEqual(t, port, 20000)
		assert.LessOrEqual(t, port, 39999)
		assert.Equal(t, port, lockPort(name))
	}
}
