package macos

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// QuitRefusedError reports a quit request that osascript delivered but the
// target application could not be addressed. Callers treat it as non-fatal.
type QuitRefusedError struct {
	Name   string
	Detail string
}

func (e *QuitRefusedError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("quit request for %s refused: %s", e.Name, e.Detail)
	}
	return fmt.Sprintf("quit request for %s refused", e.Name)
}

// Open asks the OS to launch an application by display name. The launch is
// fire-and-forget: only a failure to issue the request reports an error, and
// whether the application actually starts is never observed.
func (s System) Open(name string) error {
	cmd := exec.Command("open", "-a", name)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open application %s: %w", name, err)
	}
	// reap the short-lived open process
	go func() { _ = cmd.Wait() }()
	return nil
}

// Quit synchronously asks the named application to quit. An inability to run
// the script at all is a hard error; the script running but reporting
// failure comes back as a QuitRefusedError.
func (s System) Quit(name string) error {
	script := fmt.Sprintf("tell application %q to quit", name)
	output, err := exec.Command("osascript", "-e", script).CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &QuitRefusedError{Name: name, Detail: strings.TrimSpace(string(output))}
		}
		return fmt.Errorf("failed to kill application %s: %w", name, err)
	}
	return nil
}
