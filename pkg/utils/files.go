package utils

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// SourceExtensions are the file extensions whose imports are organized
var SourceExtensions = []string{".js", ".jsx", ".mjs", ".cjs", ".ts", ".tsx", ".mts", ".cts"}

// skippedDirs are never descended into
var skippedDirs = []string{"node_modules", "vendor", "bower_components"}

// IsSourceFile checks if a file is a JavaScript or TypeScript source file
func IsSourceFile(filename string) bool {
	return slices.Contains(SourceExtensions, filepath.Ext(filename))
}

// IsExcluded reports whether path matches one of the doublestar patterns.
// Patterns are matched against the slash separated path and its base name.
func IsExcluded(path string, patterns []string) bool {
	path = filepath.ToSlash(path)
	for _, p := range patterns {
		if p == "" {
			continue
		}
		if ok, _ := doublestar.Match(p, path); ok {
			return true
		}
		if ok, _ := doublestar.Match(p, filepath.Base(path)); ok {
			return true
		}
	}
	return false
}

// skipDir reports whether a directory below the walk root must not be visited
func skipDir(root, path string, excludes []string) bool {
	name := filepath.Base(path)
	if slices.Contains(skippedDirs, name) || strings.HasPrefix(name, ".") {
		return true
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return IsExcluded(rel, excludes)
}

// FindSourceFiles recursively finds all source files in a directory, skipping
// dependency and hidden directories and anything matching excludes
func FindSourceFiles(root string, excludes []string) ([]string, error) {
	var files []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if path != root && skipDir(root, path, excludes) {
				return filepath.SkipDir
			}
			return nil
		}

		if !IsSourceFile(path) {
			return nil
		}
		if rel, err := filepath.Rel(root, path); err == nil && IsExcluded(rel, excludes) {
			return nil
		}
		files = append(files, path)
		return nil
	})

	return files, err
}

// FindSourceDirs returns root and every directory below it that is not skipped
func FindSourceDirs(root string, excludes []string) ([]string, error) {
	return FindSourceDirsIn(root, root, excludes)
}

// FindSourceDirsIn returns dir and every directory below it that is not
// skipped. Exclude patterns are matched against paths relative to root.
func FindSourceDirsIn(root, dir string, excludes []string) ([]string, error) {
	var dirs []string

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		if path != dir && skipDir(root, path, excludes) {
			return filepath.SkipDir
		}
		dirs = append(dirs, path)
		return nil
	})

	return dirs, err
}

// IsDirectory checks if the given path is a directory
func IsDirectory(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
