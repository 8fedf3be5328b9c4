package web

// Error carries the HTTP status a request-level failure should be reported
// with. Anything that is not an *Error is treated as an internal fault.
type Error struct {
	Err    error
	Status int
}

func NewRequestError(err error, status int) error {
	return &Error{Err: err, Status: status}
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
