package apperr

import (
	"errors"
	"fmt"
)

// Kind categorizes a failure that aborts a run.
type Kind string

const (
	// KindConfiguration marks a missing or invalid configuration source.
	KindConfiguration Kind = "configuration"
	// KindDataFormat marks an unexpected API or file shape.
	KindDataFormat Kind = "data_format"
	// KindNotFound marks a missing persisted resource.
	KindNotFound Kind = "not_found"
)

// Error is a classified error with an optional cause and field name.
type Error struct {
	Kind    Kind
	Message string
	Field   string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func Configurationf(format string, args ...any) *Error {
	return &Error{Kind: KindConfiguration, Message: fmt.Sprintf(format, args...)}
}

func DataFormatf(format string, args ...any) *Error {
	return &Error{Kind: KindDataFormat, Message: fmt.Sprintf(format, args...)}
}

// MissingField reports a required field absent from a decoded object.
func MissingField(object, field string) *Error {
	return &Error{
		Kind:    KindDataFormat,
		Message: fmt.Sprintf("%s: missing required field %q", object, field),
		Field:   field,
	}
}

func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Wrapf classifies err under kind. It returns nil for a nil err.
func Wrapf(err error, kind Kind, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: err}
}

// KindOf returns the kind of the first classified error in err's chain.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

func IsConfiguration(err error) bool { return KindOf(err) == KindConfiguration }

func IsDataFormat(err error) bool { return KindOf(err) == KindDataFormat }

func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }
