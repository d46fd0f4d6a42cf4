package gateway

import (
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/fission/engine"
	"github.com/wippyai/fission/errors"
)

type libraryState uint8

const (
	stateUninitialized libraryState = iota
	stateReady
	stateFailed
)

func (s libraryState) String() string {
	switch s {
	case stateUninitialized:
		return "uninitialized"
	case stateReady:
		return "ready"
	case stateFailed:
		return "failed"
	}
	return "unknown"
}

// library is the process-wide engine setup. It is never torn down.
type library struct {
	lib   *engine.Library
	err   error
	mu    sync.Mutex
	state libraryState
}

var global library

// startLibrary is replaced in tests.
var startLibrary = engine.StartLibrary

// ensureInitialized runs the one-time engine setup on first use. After a
// success every later call returns the same library without doing work.
// A failed setup is attempted again by the next caller.
func ensureInitialized(specPath string) (*engine.Library, error) {
	global.mu.Lock()
	defer global.mu.Unlock()

	if global.state == stateReady {
		return global.lib, nil
	}

	lib, err := runStart(specPath)
	if err != nil {
		global.state = stateFailed
		global.err = err
		Logger().Debug("library initialization failed", zap.String("spec_dir", specPath), zap.Error(err))
		return nil, err
	}

	global.lib = lib
	global.err = nil
	global.state = stateReady
	Logger().Debug("library initialized", zap.String("spec_dir", specPath))
	return lib, nil
}

func runStart(specPath string) (lib *engine.Library, err error) {
	defer func() {
		if r := recover(); r != nil {
			lib = nil
			err = errors.Engine(errors.PhaseInit, "Failed to initialize library", errors.Recovered(errors.PhaseInit, r))
		}
	}()

	lib, err = startLibrary(specPath)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseInit, errors.KindSpec, err, "Failed to initialize library")
	}
	return lib, nil
}

// IsAvailable reports whether the one-time library setup has completed.
// Once true it stays true for the life of the process.
func IsAvailable() bool {
	global.mu.Lock()
	defer global.mu.Unlock()
	return global.state == stateReady
}
