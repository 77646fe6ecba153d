package main

import (
	"context"
	"errors"
	"time"

	"github.com/frudas24/pointerhook/internal/inputhook"
)

// Status codes returned by start_hook and stop_hook.
const (
	statusOK             int32 = 0
	statusAlreadyRunning int32 = 1
	statusInstallFailed  int32 = 2
	statusUnsupported    int32 = 3
	statusNotRunning     int32 = 4
	statusTimeout        int32 = 5
	statusFailed         int32 = 6
)

// stopTimeout bounds how long stop_hook waits for the message loop to exit.
const stopTimeout = 2 * time.Second

// statusOf maps runner errors to the integer codes seen by C callers.
func statusOf(err error) int32 {
	switch {
	case err == nil:
		return statusOK
	case errors.Is(err, inputhook.ErrAlreadyRunning):
		return statusAlreadyRunning
	case errors.Is(err, inputhook.ErrInstallFailed):
		return statusInstallFailed
	case errors.Is(err, inputhook.ErrUnsupported):
		return statusUnsupported
	case errors.Is(err, inputhook.ErrNotRunning):
		return statusNotRunning
	case errors.Is(err, context.DeadlineExceeded):
		return statusTimeout
	default:
		return statusFailed
	}
}
