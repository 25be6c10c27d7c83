package binding

import (
	"errors"
	"fmt"
)

// Wiring errors. They are raised with panic: each one is a bug at the call
// site, not a condition to recover from.
var (
	ErrControlType      = errors.New("binding: unsupported control type")
	ErrUseConnectAll    = errors.New("binding: multi-target binding, use ConnectAll")
	ErrNoScope          = errors.New("binding: binder has no default scope")
	ErrNoListSource     = errors.New("binding: list binding has no list source")
	ErrTwoListSources   = errors.New("binding: list binding has both an observable and a read-only source")
	ErrReadOnlyGestures = errors.New("binding: gestures need an observable list source")
	ErrModeUnsupported  = errors.New("binding: mode not supported by this binding")
	ErrConnected        = errors.New("binding: already connected")
)

func wiringError(err error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...))
}

// mustControl asserts control is a C or panics with ErrControlType.
func mustControl[C any](kind string, control any) C {
	c, ok := control.(C)
	if !ok || control == nil {
		panic(wiringError(ErrControlType, "%s cannot drive %T", kind, control))
	}
	return c
}
