package ordantic

// Fixed runtime error messages.
const (
	MsgNotImplemented = "not implemented"
	MsgSerialize      = "failed to serialize"
	MsgDeserialize    = "failed to deserialize"
)

// Sentinels for errors.Is. Every runtime failure of a generated model is an
// *Error carrying one of these messages.
var (
	ErrNotImplemented = &Error{Message: MsgNotImplemented}
	ErrSerialize      = &Error{Message: MsgSerialize}
	ErrDeserialize    = &Error{Message: MsgDeserialize}
)

// Error is the error kind raised by generated model methods.
type Error struct {
	Message string
	Err     error
}

// Error implements error.
func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}

	return e.Message
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error with the same message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.Message == e.Message
}

func newError(msg string, cause error) *Error {
	return &Error{Message: msg, Err: cause}
}
