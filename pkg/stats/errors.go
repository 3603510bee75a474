package stats

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceUnreadable is the kind of error returned when a source cannot be opened or a read fails
	ErrSourceUnreadable = errors.New("source unreadable")
	// ErrDecodeFailure is the kind of error returned when bytes are not valid text in the selected encoding
	ErrDecodeFailure = errors.New("decode failure")
)

// Error describes a failed computation
type Error struct {
	Kind   error  // ErrSourceUnreadable or ErrDecodeFailure
	Path   string // source name, empty for anonymous readers
	Offset int64  // byte offset of the failure in the source, -1 when unknown
	Err    error
}

// Error formats the failure as "<kind> at byte <offset>: <cause>".
// Path is left to the caller, which usually already names the source.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}

	msg := e.Kind.Error()
	if e.Offset >= 0 {
		msg = fmt.Sprintf("%s at byte %d", msg, e.Offset)
	}
	if e.Err != nil {
		msg = msg + ": " + e.Err.Error()
	}
	return msg
}

// Is reports whether target is the kind of this error
func (e *Error) Is(target error) bool {
	return e != nil && target == e.Kind
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Unreadable builds a SourceUnreadable error for path
func Unreadable(path string, err error) *Error {
	return &Error{Kind: ErrSourceUnreadable, Path: path, Offset: -1, Err: err}
}

func decodeFailure(offset int64, err error) *Error {
	return &Error{Kind: ErrDecodeFailure, Offset: offset, Err: err}
}
