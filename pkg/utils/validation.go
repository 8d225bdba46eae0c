package utils

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// MaxPresetNameLength is the maximum length for a preset name.
	MaxPresetNameLength = 50
)

// validPresetNamePattern matches alphanumeric, hyphens and underscores.
var validPresetNamePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9\-_]*$`)

// ValidatePresetName validates a preset name as used with --preset.
// Returns an error if the name is invalid.
func ValidatePresetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("preset name cannot be empty")
	}

	if utf8.RuneCountInString(name) > MaxPresetNameLength {
		return fmt.Errorf("preset name cannot exceed %d characters", MaxPresetNameLength)
	}

	if !validPresetNamePattern.MatchString(name) {
		return fmt.Errorf("preset name can only contain letters, numbers, hyphens, and underscores")
	}

	return nil
}
