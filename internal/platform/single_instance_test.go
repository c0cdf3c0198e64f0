package platform

import (
	"errors"
	"strings"
	"testing"
)

func TestGuardPortIsStableAndInRange(t *testing.T) {
	first := guardPort("focusdeck-test")
	second := guardPort("focusdeck-test")
	if first != second {
		t.Fatalf("port not deterministic: %d vs %d", first, second)
	}
	if first < guardPortMin || first > guardPortMax {
		t.Fatalf("port %d outside guard window", first)
	}
}

func TestSingleInstanceExclusion(t *testing.T) {
	const name = "focusdeck-guard-test"

	guard, err := AcquireSingleInstance(name)
	if err != nil {
		t.Fatalf("first acquire: %v", err)
	}
	defer func() {
		_ = guard.Release()
	}()

	if !strings.HasPrefix(guard.Address(), "127.0.0.1:") {
		t.Fatalf("guard address = %q, want a loopback address", guard.Address())
	}

	if _, err := AcquireSingleInstance(name); !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("second acquire err = %v, want ErrAlreadyRunning", err)
	}

	if err := guard.Release(); err != nil {
		t.Fatalf("release: %v", err)
	}
	reacquired, err := AcquireSingleInstance(name)
	if err != nil {
		t.Fatalf("acquire after release: %v", err)
	}
	_ = reacquired.Release()
}

func TestReleaseNilGuard(t *testing.T) {
	var guard *InstanceGuard
	if err := guard.Release(); err != nil {
		t.Fatalf("nil guard release: %v", err)
	}
	if guard.Address() != "" {
		t.Fatal("nil guard has an address")
	}
}
