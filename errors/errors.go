package errors

import (
	stderrors "errors"
	"fmt"
)

var (
	ErrWorkerPanic      = fmt.Errorf("worker panic")
	ErrEmptyWords       = fmt.Errorf("no words have been found")
	ErrSessionExists    = fmt.Errorf("session already exists")
	ErrSessionNotFound  = fmt.Errorf("session not found")
	ErrUnauthorized     = fmt.Errorf("admin access required")
	ErrRecipientOffline = fmt.Errorf("recipient is not connected")
	ErrEmptyCompletion  = fmt.Errorf("completion returned no content")
	ErrInvalidToken     = fmt.Errorf("invalid or expired token")
	ErrInvalidAddress   = fmt.Errorf("invalid channel address")
	ErrInvalidPrefix    = fmt.Errorf("command prefix must be a single character")
	ErrTransportClosed  = fmt.Errorf("transport is closed")
)

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}
