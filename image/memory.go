package image

import (
	"fmt"

	"github.com/wippyai/fission"
)

var (
	_ fission.Bounded = (*Memory)(nil)
	_ fission.Bounded = (*Map)(nil)
)

// Translate maps an absolute address to an offset into a buffer of the given
// length mapped at base. ok is false for every address outside
// [base, base+length), including ranges that would wrap past 2^64.
func Translate(addr, base uint64, length int) (offset int, ok bool) {
	if length <= 0 || addr < base {
		return 0, false
	}
	rel := addr - base
	if rel >= uint64(length) {
		return 0, false
	}
	return int(rel), true
}

// Memory presents a borrowed byte buffer as addressable memory starting at a
// base address. It never copies or retains ownership of the buffer.
type Memory struct {
	buf  []byte
	base uint64
	name string
}

// NewMemory maps buf at base.
func NewMemory(buf []byte, base uint64) *Memory {
	return &Memory{buf: buf, base: base, name: "buffer"}
}

// Named sets the name reported by ArchType.
func (m *Memory) Named(name string) *Memory {
	m.name = name
	return m
}

// LoadFill copies the backed bytes for [addr, addr+len(dst)) into dst and
// zero fills every position the buffer does not cover.
func (m *Memory) LoadFill(dst []byte, addr uint64) {
	clear(dst)
	m.fillInto(dst, addr)
}

// fillInto copies the backed bytes without touching the rest of dst.
func (m *Memory) fillInto(dst []byte, addr uint64) {
	if len(m.buf) == 0 {
		return
	}

	var di, si uint64
	if addr >= m.base {
		si = addr - m.base
		if si >= uint64(len(m.buf)) {
			return
		}
	} else {
		di = m.base - addr
		if di >= uint64(len(dst)) {
			return
		}
	}
	copy(dst[di:], m.buf[si:])
}

// ArchType implements fission.Image.
func (m *Memory) ArchType() string { return m.name }

// AdjustVMA implements fission.Image. Adjustments that would move the base
// below zero or past the top of the address space are clamped.
func (m *Memory) AdjustVMA(adjust int64) {
	if adjust < 0 {
		d := uint64(-adjust)
		if d > m.base {
			m.base = 0
			return
		}
		m.base -= d
		return
	}
	next := m.base + uint64(adjust)
	if next < m.base {
		next = ^uint64(0)
	}
	m.base = next
}

// Contains reports whether addr is backed by the buffer.
func (m *Memory) Contains(addr uint64) bool {
	_, ok := Translate(addr, m.base, len(m.buf))
	return ok
}

// Base returns the address of byte 0.
func (m *Memory) Base() uint64 { return m.base }

// Len returns the buffer length.
func (m *Memory) Len() int { return len(m.buf) }

func (m *Memory) String() string {
	return fmt.Sprintf("%s[%#x, %#x)", m.name, m.base, m.base+uint64(len(m.buf)))
}
