package domain

import (
	"fmt"
	"regexp"
)

// fontNamePattern restricts font names to an opaque identifier alphabet.
// Anything outside it could be interpreted as a path or shell construct by
// the invoked process, so it is rejected before any invocation happens.
var fontNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ValidateFont rejects font names that could be read as anything other
// than an opaque name (path traversal, option injection, shell metachars).
func ValidateFont(font string) error {
	if !fontNamePattern.MatchString(font) {
		return fmt.Errorf("%w: invalid font name %q, only letters, digits, hyphens and underscores allowed", ErrValidation, font)
	}
	return nil
}

// ValidateText rejects empty text and text above MaxTextLength.
func ValidateText(text string) error {
	if text == "" {
		return fmt.Errorf("%w: text cannot be empty", ErrValidation)
	}
	if len(text) > MaxTextLength {
		return fmt.Errorf("%w: text exceeds maximum length of %d characters", ErrValidation, MaxTextLength)
	}
	return nil
}
