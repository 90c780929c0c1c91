// internal/catalog/errors.go
package catalog

import "fmt"

// ErrorKind classifies engine failures so callers can branch without
// string matching, while Error keeps the single readable message the
// rest of the system surfaces to users.
type ErrorKind string

const (
	KindNotFound          ErrorKind = "not_found"
	KindCollision         ErrorKind = "collision"
	KindInvalidInput      ErrorKind = "invalid_input"
	KindInvalidTransition ErrorKind = "invalid_transition"
)

type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func NotFoundError(id interface{}) *Error {
	return newError(KindNotFound, "product not found: %v", id)
}

func CollisionError(id interface{}) *Error {
	return newError(KindCollision, "product already exists: %v", id)
}

func InvalidInputError(format string, args ...interface{}) *Error {
	return newError(KindInvalidInput, format, args...)
}

func InvalidTransitionError(format string, args ...interface{}) *Error {
	return newError(KindInvalidTransition, format, args...)
}

func kindOf(err error) ErrorKind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return ""
}

func IsNotFound(err error) bool          { return kindOf(err) == KindNotFound }
func IsCollision(err error) bool         { return kindOf(err) == KindCollision }
func IsInvalidInput(err error) bool      { return kindOf(err) == KindInvalidInput }
func IsInvalidTransition(err error) bool { return kindOf(err) == KindInvalidTransition }
