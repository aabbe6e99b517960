package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
)

// ErrAlreadyRunning indicates another timer already holds the lock.
var ErrAlreadyRunning = errors.New("timer already running")

// InstanceLock keeps a second timer process from starting.
type InstanceLock struct {
	listener net.Listener
	address  string
}

// AcquireInstanceLock binds a localhost port derived from appName.
func AcquireInstanceLock(appName string) (*InstanceLock, error) {
	address := fmt.Sprintf("127.0.0.1:%d", lockPort(appName))
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", ErrAlreadyRunning, address)
	}
	return &InstanceLock{listener: listener, address: address}, nil
}

// Release frees the lock. It is safe to call on a nil lock.
func (lock *InstanceLock) Release() error {
	if lock == nil || lock.listener == nil {
		return nil
	}
	listener := lock.listener
	lock.listener = nil
	return listener.Close()
}

// Address returns the bound address.
func (lock *InstanceLock) Address() string {
	if lock == nil {
		return ""
	}
	return lock.address
}

func lockPort(appName string) int {
	const (
		minPort = 20000
		maxPort = 39999
	)
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	rangeSize := maxPort - minPort + 1
	return minPort + int(hash.Sum32()%uint32(rangeSize))
}
