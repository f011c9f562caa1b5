package commands

import "errors"

// loggedError marks an error the command has already written to the log.
type loggedError struct {
	err error
}

func (e *loggedError) Error() string { return e.err.Error() }
func (e *loggedError) Unwrap() error { return e.err }

// Logged wraps err so that Execute does not report it a second time.
func Logged(err error) error {
	if err == nil {
		return nil
	}
	return &loggedError{err: err}
}

// IsLogged reports whether err was already logged by the command that
// returned it.
func IsLogged(err error) bool {
	var l *loggedError
	return errors.As(err, &l)
}
