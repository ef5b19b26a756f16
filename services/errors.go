package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when the addressed record does not exist or is not
	// visible in the requested scope.
	ErrNotFound = errors.New("record not found")
	// ErrSlugTaken is returned when another record already uses the slug.
	ErrSlugTaken = errors.New("slug already exists")
)

// ValidationError reports a rejected payload. Its message is safe to show to clients.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}

// IsValidation reports whether err is a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// optional turns an empty form value into NULL.
func optional(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
