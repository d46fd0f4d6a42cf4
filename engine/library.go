package engine

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/fission/errors"
	"github.com/wippyai/fission/spec"
)

// Library is the process-wide engine state: the registered decoder backends
// and the specification paths validated at start.
type Library struct {
	backends map[string]Backend
	paths    []string
	mu       sync.RWMutex
}

// StartLibrary registers the built-in decoder backends and validates every
// specification path. Each path must be a loadable specification directory.
func StartLibrary(paths ...string) (*Library, error) {
	lib := &Library{backends: make(map[string]Backend)}
	lib.Register("x86", newX86)
	lib.Register("arm64", newARM64)
	lib.Register("arm", newARM)

	for _, p := range paths {
		if _, err := spec.LoadDir(p); err != nil {
			return nil, errors.Wrap(errors.PhaseInit, errors.KindSpec, err, "start library")
		}
		lib.paths = append(lib.paths, p)
	}

	Logger().Debug("engine library started",
		zap.Strings("paths", lib.paths),
		zap.Strings("backends", lib.Backends()))
	return lib, nil
}

// Register installs or replaces a decoder backend.
func (l *Library) Register(name string, b Backend) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.backends[name] = b
}

// Backends returns the registered backend names in sorted order.
func (l *Library) Backends() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	names := make([]string, 0, len(l.backends))
	for n := range l.backends {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Paths returns the specification paths validated at start.
func (l *Library) Paths() []string {
	return append([]string(nil), l.paths...)
}

// NewDecoder builds the decoder named by a compiled specification.
func (l *Library) NewDecoder(sla *spec.Sla) (Decoder, error) {
	l.mu.RLock()
	b, ok := l.backends[sla.Decoder]
	l.mu.RUnlock()
	if !ok {
		return nil, errors.Unsupported(errors.PhaseCreate, fmt.Sprintf("decoder %q", sla.Decoder))
	}
	d, err := b(sla)
	if err != nil {
		return nil, errors.Spec(errors.PhaseCreate, "", "build decoder", err)
	}
	return d, nil
}

// NewArchitecture resolves a language in the catalog and prepares an
// architecture for it. An empty id selects spec.DefaultLanguage.
func (l *Library) NewArchitecture(cat *spec.Catalog, id string, opts Options) (*Architecture, error) {
	lang, sla, err := cat.LoadSla(id)
	if err != nil {
		return nil, err
	}
	dec, err := l.NewDecoder(sla)
	if err != nil {
		return nil, err
	}
	return newArchitecture(lang, sla, dec, opts), nil
}
