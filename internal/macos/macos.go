// Package macos wraps the OS facilities behind the UI: enumerating visible
// applications, scanning installed bundles, and issuing launch or quit
// requests.
package macos

import (
	"fmt"
	"os/exec"
	"strings"
)

// DefaultAppsDir is the root scanned for installed application bundles.
const DefaultAppsDir = "/Applications"

// System is the production collaborator. The zero value targets the default
// applications directory.
type System struct {
	AppsDir string
}

const processListScript = `tell application "System Events" to get name of (processes where background only is false)`

// RunningApps returns the display names of applications currently visible to
// the user. Zero results yield an empty list, not an error.
func (s System) RunningApps() ([]string, error) {
	output, err := exec.Command("osascript", "-e", processListScript).Output()
	if err != nil {
		return nil, fmt.Errorf("failed to list running applications: %w", err)
	}
	return ParseProcessList(string(output)), nil
}

// ParseProcessList splits osascript's comma-separated process list into
// names, trimming an optional braced wrapper and per-name quotes. Empty
// fields are dropped so blank output means no applications.
func ParseProcessList(raw string) []string {
	trimmed := strings.TrimSpace(raw)
	trimmed = strings.TrimPrefix(trimmed, "{")
	trimmed = strings.TrimSuffix(trimmed, "}")
	if strings.TrimSpace(trimmed) == "" {
		return nil
	}
	parts := strings.Split(trimmed, ", ")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		name := strings.Trim(strings.TrimSpace(part), `"`)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names
}
