package domain

import "errors"

var (
	ErrDuplicateEmail     = errors.New("an account with that email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotFound           = errors.New("record not found")
)

// ValidationError carries a message safe to show back to the user.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// AsValidation returns the ValidationError wrapped in err, if any.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
