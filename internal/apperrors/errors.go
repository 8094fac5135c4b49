package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidState indicates that the operation would violate a lifecycle or balance invariant.
var ErrInvalidState = errors.New("invalid state")

// ErrMissingConfiguration indicates that master data (GL mappings) is incomplete.
var ErrMissingConfiguration = errors.New("missing configuration")

// ErrInternal is the opaque class for anything unexpected.
var ErrInternal = errors.New("internal error")

// Lifecycle and posting errors. Each wraps its class so handlers only need errors.Is on the class.
var (
	ErrAlreadyPosted            = fmt.Errorf("%w: document is already posted", ErrInvalidState)
	ErrNotPosted                = fmt.Errorf("%w: journal entry is not posted", ErrInvalidState)
	ErrCannotDeletePosted       = fmt.Errorf("%w: only draft documents can be deleted", ErrInvalidState)
	ErrUnbalancedEntry          = fmt.Errorf("%w: journal entry is not balanced", ErrInvalidState)
	ErrUnbalancedGeneratedEntry = fmt.Errorf("%w: generated journal entry is not balanced", ErrInternal)
	ErrDuplicateEntryNumber     = fmt.Errorf("%w: journal entry number", ErrDuplicate)
	ErrMissingGLConfiguration   = fmt.Errorf("%w: GL account mapping", ErrMissingConfiguration)
)

// AppError carries an HTTP-ish code alongside the underlying error.
// Repositories use it to wrap driver failures.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError returns an error wrapping ErrNotFound with the entity and key that was looked up.
func NewNotFoundError(entity, key string) error {
	return fmt.Errorf("%w: %s %s", ErrNotFound, entity, key)
}

// NewValidationError returns an error wrapping ErrValidation.
func NewValidationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NewMissingGLError reports which owner/role combination has no GL account mapped.
func NewMissingGLError(owner, role string) error {
	return fmt.Errorf("%w: %s has no %s account", ErrMissingGLConfiguration, owner, role)
}
