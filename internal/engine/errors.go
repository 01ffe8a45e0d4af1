package engine

import "errors"

var (
	// ErrAlreadyRunning is returned by Start on a running engine.
	ErrAlreadyRunning = errors.New("engine: render loop already running")

	// ErrNotRunning is returned by Stop on an idle engine.
	ErrNotRunning = errors.New("engine: render loop not running")
)
