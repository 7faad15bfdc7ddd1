package errors

import (
	"math"
	"strings"
	"unicode"
)

// maxIDLength bounds box identifiers accepted from board files and the API.
const maxIDLength = 128

// ValidateBoxID validates a box identifier for safety and correctness.
//
// The validation rules are intentionally conservative:
//   - No empty IDs
//   - No control characters or whitespace
//   - No path separators (IDs appear in URL paths)
//   - Maximum length of 128 characters
func ValidateBoxID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "box id cannot be empty")
	}

	if len(id) > maxIDLength {
		return New(ErrCodeInvalidInput, "box id too long (max %d characters)", maxIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "box id contains invalid characters")
		}
	}

	if strings.ContainsAny(id, "/\\?#") {
		return New(ErrCodeInvalidInput, "box id cannot contain path or query separators")
	}

	return nil
}

// ValidateDimension validates a declared width or height.
// Dimensions must be finite, positive and must fit inside the container extent.
func ValidateDimension(name string, value, limit float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return New(ErrCodeInvalidConfig, "%s must be a finite number, got %v", name, value)
	}
	if value <= 0 {
		return New(ErrCodeInvalidConfig, "%s must be positive, got %v", name, value)
	}
	if limit > 0 && value > limit {
		return New(ErrCodeInvalidConfig, "%s %v exceeds container extent %v", name, value, limit)
	}
	return nil
}
