// Package fault defines the errors an attack attempt can end with.
//
// Rejections are recoverable: the attempt is abandoned before any state
// changes and the actor keeps its turn. Internal faults mean the data
// tables disagree with the code and are raised as panics.
package fault

import (
	"errors"
	"fmt"
)

// Code classifies an Error.
type Code uint8

const (
	Internal Code = iota
	NoItem
	ItemGone
	ItemEquipped
	InvalidTarget
	Declined
	Berserk
	Held
	Form
	Confused
)

var codeNames = [...]string{
	Internal:      "internal",
	NoItem:        "no_item",
	ItemGone:      "item_gone",
	ItemEquipped:  "item_equipped",
	InvalidTarget: "invalid_target",
	Declined:      "declined",
	Berserk:       "berserk",
	Held:          "held",
	Form:          "form",
	Confused:      "confused",
}

func (c Code) String() string {
	if int(c) >= len(codeNames) {
		return "unknown"
	}
	return codeNames[c]
}

// Error is a coded attack failure with a user-facing message.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is matches another *Error with the same code.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// New returns an Error with the given code and message.
func New(code Code, msg string) *Error {
	return &Error{Code: code, Message: msg}
}

// Wrap returns an Error that carries cause.
func Wrap(code Code, msg string, cause error) *Error {
	return &Error{Code: code, Message: msg, Cause: cause}
}

// Reject returns a rejection with a formatted message.
func Reject(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// IsRejection reports whether err is a recoverable, turn-free rejection.
func IsRejection(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Code != Internal
}

// CodeOf returns the code of err, or Internal when err is not an *Error.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return Internal
}

// Message returns the user-facing text of err.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

// Internalf returns an Internal error for a broken invariant. Callers
// panic with it where the data tables make a case unreachable.
func Internalf(format string, args ...any) *Error {
	return &Error{Code: Internal, Message: fmt.Sprintf(format, args...)}
}

// Invariant panics with an Internal error.
func Invariant(format string, args ...any) {
	panic(Internalf(format, args...))
}
