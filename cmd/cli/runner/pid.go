package runner

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"
)

var ErrAlreadyRunning = errors.New("pidfile: a lock is already running")

// CreatePidFile refuses to overwrite the pid file of a live process, so only
// one lock policy is active at a time.
func CreatePidFile(path string) error {
	pid, alive, err := ReadPidFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if alive {
		return fmt.Errorf("%w: pid %d", ErrAlreadyRunning, pid)
	}

	if err := os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0o644); err != nil {
		return fmt.Errorf("pidfile: could not write pid file: %w", err)
	}

	return nil
}

// ReadPidFile returns the recorded pid and whether that process still exists.
func ReadPidFile(path string) (int, bool, error) {
	pidBytes, err := os.ReadFile(path)
	if err != nil {
		return 0, false, fmt.Errorf("pidfile: could not read pid file: %w", err)
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(pidBytes)))
	if err != nil {
		return 0, false, fmt.Errorf("pidfile: could not parse pid: %w", err)
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		return pid, false, nil
	}

	// Signal 0 checks for existence without delivering anything.
	return pid, process.Signal(syscall.Signal(0)) == nil, nil
}

func RemovePidFile(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("pidfile: could not remove pid file: %w", err)
	}
	return nil
}
