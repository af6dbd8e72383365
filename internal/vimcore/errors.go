package vimcore

import "errors"

// ErrRecursiveMapping is returned (wrapped, where context helps) when a
// key-map expansion cycles back on itself; see (*InputEngine).Process.
var ErrRecursiveMapping = errors.New("vimcore: recursive key mapping")

// ErrAlreadyClosed is returned by any InputEngine operation attempted
// after Close has already succeeded once.
var ErrAlreadyClosed = errors.New("vimcore: engine already closed")

// ErrNoSuchMode is returned by ModeRegistry.Switch (and anything that
// calls it) when asked to switch to a ModeKind nothing was registered
// for.
var ErrNoSuchMode = errors.New("vimcore: no mode registered for kind")
