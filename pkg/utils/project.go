package utils

import (
	"os"
	"path/filepath"
)

// maxParentLookups bounds the walk towards the filesystem root
const maxParentLookups = 20

// FindUp looks for the first of names in the directory of filePath and its
// parents, and returns its path. It returns "" when none exists.
func FindUp(filePath string, names ...string) string {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return ""
	}

	dir := filepath.Dir(absPath)
	if info, err := os.Stat(absPath); err == nil && info.IsDir() {
		dir = absPath
	}

	for i := 0; i < maxParentLookups; i++ {
		for _, name := range names {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}
