package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
)

// ErrAlreadyRunning indicates another process already holds the app lock.
var ErrAlreadyRunning = errors.New("instance already running")

// Port window for instance locks: above the well-known range, below the
// common ephemeral range.
const (
	guardPortMin = 20000
	guardPortMax = 39999
)

// InstanceGuard is a localhost listener on a port derived from the app
// name. Two processes of the same app contend for the same port; the loser
// gets ErrAlreadyRunning.
type InstanceGuard struct {
	listener net.Listener
}

// AcquireSingleInstance binds the app's deterministic port.
func AcquireSingleInstance(appName string) (*InstanceGuard, error) {
	port := guardPort(appName)
	listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	if err != nil {
		return nil, fmt.Errorf("%w (port %d)", ErrAlreadyRunning, port)
	}
	return &InstanceGuard{listener: listener}, nil
}

// Release frees the lock.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	return guard.listener.Close()
}

// Address returns the bound address, or "" for a nil guard.
func (guard *InstanceGuard) Address() string {
	if guard == nil || guard.listener == nil {
		return ""
	}
	return guard.listener.Addr().String()
}

// guardPort hashes the app name into the guard port window.
func guardPort(appName string) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	window := uint32(guardPortMax - guardPortMin + 1)
	return guardPortMin + int(hash.Sum32()%window)
}
