// Package errslot keeps the most recent error message per calling context.
//
// A context is whatever identifies a caller across a foreign boundary: an OS
// thread id for the C library, a module instance for WebAssembly guests.
// Reads never take a lock, and each context only ever sees its own message.
package errslot

import (
	"sync"

	"github.com/wippyai/fission/errors"
)

// Slots maps calling contexts to their last error message.
// The zero value is ready to use.
type Slots struct {
	m sync.Map
}

// Set records err for ctx, replacing any earlier message. A nil err is
// ignored so a success never hides the last failure.
func (s *Slots) Set(ctx any, err error) {
	if err == nil {
		return
	}
	s.m.Store(ctx, errors.Message(err))
}

// Get returns the last message recorded for ctx.
func (s *Slots) Get(ctx any) (string, bool) {
	v, ok := s.m.Load(ctx)
	if !ok {
		return "", false
	}
	msg := v.(string)
	return msg, msg != ""
}

// Clear removes the message for ctx.
func (s *Slots) Clear(ctx any) {
	s.m.Delete(ctx)
}

// Len returns the number of contexts holding a message.
func (s *Slots) Len() int {
	n := 0
	s.m.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
