package fields

import "fmt"

// Validation error codes surfaced to callers. These are the only codes a
// field reports for malformed or unresolvable input; everything else is a
// programmer error and panics at construction or bind time.
const (
	CodeInvalid       = "invalid"
	CodeInvalidChoice = "invalid_choice"
	CodeDoesNotExist  = "does_not_exist"
	CodeIncorrectType = "incorrect_type"
	CodeReadOnly      = "read_only"
)

// ValidationError is a failed inbound conversion. Code is one of the Code*
// constants; Message is human readable and safe to return to API clients.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func validationErrorf(code, format string, args ...any) *ValidationError {
	return &ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// errReadOnly is returned when InternalValue is called on a read-only field.
// The Serializer never does this; it guards direct callers.
var errReadOnly = &ValidationError{Code: CodeReadOnly, Message: "This field is read-only."}
