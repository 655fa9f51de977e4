package game

import (
	"errors"
	"fmt"
)

// ErrorKind is the closed set of failures the orchestrator reports.
type ErrorKind string

const (
	KindSessionNotFound   ErrorKind = "session_not_found"
	KindInvalidAction     ErrorKind = "invalid_action"
	KindConflict          ErrorKind = "conflict"
	KindEngineFault       ErrorKind = "engine_fault"
	KindValidation        ErrorKind = "validation_error"
	KindSessionTerminated ErrorKind = "session_terminated"
)

// Sentinels for errors.Is; they match any *Error of the same kind.
var (
	ErrSessionNotFound   = &Error{Kind: KindSessionNotFound}
	ErrInvalidAction     = &Error{Kind: KindInvalidAction}
	ErrConflict          = &Error{Kind: KindConflict}
	ErrEngineFault       = &Error{Kind: KindEngineFault}
	ErrValidation        = &Error{Kind: KindValidation}
	ErrSessionTerminated = &Error{Kind: KindSessionTerminated}
)

// Error carries the kind plus context for one failure.
type Error struct {
	Kind      ErrorKind
	Reason    string
	SessionID string
	Cause     error
}

func (e *Error) Error() string {
	msg := string(e.Kind)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.SessionID != "" {
		msg += " (session " + e.SessionID + ")"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Cause }

// Is matches by kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Retryable reports whether reloading and reapplying may succeed.
func (e *Error) Retryable() bool { return e.Kind == KindConflict }

func NotFound(sessionID string) *Error {
	return &Error{Kind: KindSessionNotFound, SessionID: sessionID, Reason: "battle session not found"}
}

func InvalidAction(sessionID, format string, args ...any) *Error {
	return &Error{Kind: KindInvalidAction, SessionID: sessionID, Reason: fmt.Sprintf(format, args...)}
}

func Conflict(sessionID string, expected int64) *Error {
	return &Error{Kind: KindConflict, SessionID: sessionID, Reason: fmt.Sprintf("version %d is stale", expected)}
}

func EngineFault(sessionID string, cause error) *Error {
	return &Error{Kind: KindEngineFault, SessionID: sessionID, Reason: "mechanics engine rejected battle state", Cause: cause}
}

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Reason: fmt.Sprintf(format, args...)}
}

func Terminated(sessionID string) *Error {
	return &Error{Kind: KindSessionTerminated, SessionID: sessionID, Reason: "battle has ended"}
}

// KindOf returns the kind of err, or "" when err is not an *Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
