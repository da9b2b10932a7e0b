// Package utils contains general helper functions used across the promptpack tool.
package utils

import (
	"path/filepath"
)

// Ignore file constants used across the project.
const (
	// IgnoreFileName is the name of the project's ignore file.
	IgnoreFileName = ".ignore"
	// GitIgnoreFileName is the name of the Git ignore file.
	GitIgnoreFileName = ".gitignore"
	// GitDirectoryName is the name of the Git repository directory.
	GitDirectoryName = ".git"
)

// Configuration file constants.
const (
	// ConfigFileName is the local configuration file consulted in the working directory.
	ConfigFileName = ".promptpack.yaml"
	// GlobalConfigDirectoryName is the directory under the user home holding global configuration.
	GlobalConfigDirectoryName = ".promptpack"
	// GlobalConfigFileName is the configuration file inside the global directory.
	GlobalConfigFileName = "config.yaml"
)

// DeduplicatePatterns removes duplicate patterns from a slice while preserving order.
// The first occurrence of each unique pattern is kept.
func DeduplicatePatterns(patterns []string) []string {
	encounteredPatterns := make(map[string]struct{})
	result := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		if _, exists := encounteredPatterns[pattern]; !exists {
			encounteredPatterns[pattern] = struct{}{}
			result = append(result, pattern)
		}
	}
	return result
}

// NormalizeExtension strips at most one leading dot from a user-supplied
// extension value so that both ".go" and "go" select the same files.
func NormalizeExtension(extension string) string {
	if len(extension) > 0 && extension[0] == '.' {
		return extension[1:]
	}
	return extension
}

// ExtensionOf returns the suffix of the base name after the final dot, or an
// empty string when the name contains no dot. Dotfile names such as ".env"
// yield the part after the leading dot.
func ExtensionOf(name string) string {
	baseName := filepath.Base(name)
	for index := len(baseName) - 1; index >= 0; index-- {
		if baseName[index] == '.' {
			return baseName[index+1:]
		}
	}
	return ""
}
