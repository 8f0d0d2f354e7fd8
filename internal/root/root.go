package root

import (
	"fmt"
	"os"
	"path/filepath"
)

// ProjectMarker is the mystmd project file that identifies a project root.
const ProjectMarker = "myst.yml"

// FindProjectRoot walks up from the current directory looking for myst.yml or .git/.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}
	return findProjectRootFrom(dir)
}

func findProjectRootFrom(dir string) (string, error) {
	for {
		if isFile(filepath.Join(dir, ProjectMarker)) || isDir(filepath.Join(dir, ".git")) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find project root (no %s or .git/ found)", ProjectMarker)
		}
		dir = parent
	}
}

// Resolve returns override when set, otherwise the discovered project root.
func Resolve(override string) (string, error) {
	if override != "" {
		if !isDir(override) {
			return "", fmt.Errorf("project root %s is not a directory", override)
		}
		return override, nil
	}
	return FindProjectRoot()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
