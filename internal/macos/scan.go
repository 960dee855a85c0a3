package macos

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const bundleSuffix = ".app"

// InstalledApps walks the applications root two levels deep and returns the
// bundle names with the root prefix and .app suffix stripped. Nested bundles
// keep their subdirectory, e.g. Utilities/Terminal. The result follows the
// lexical directory order, so repeated scans are deterministic.
func (s System) InstalledApps() ([]string, error) {
	root := s.AppsDir
	if root == "" {
		root = DefaultAppsDir
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to list installed applications: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, bundleSuffix) {
			names = append(names, strings.TrimSuffix(name, bundleSuffix))
			continue
		}
		if !entry.IsDir() {
			continue
		}
		children, err := os.ReadDir(filepath.Join(root, name))
		if err != nil {
			continue
		}
		for _, child := range children {
			childName := child.Name()
			if strings.HasSuffix(childName, bundleSuffix) {
				names = append(names, name+"/"+strings.TrimSuffix(childName, bundleSuffix))
			}
		}
	}
	return names, nil
}
