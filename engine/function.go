package engine

import (
	"fmt"
	"sort"
)

// Block is a basic block: a straight-line run of instructions with a single
// entry at Start.
type Block struct {
	Instructions []Instruction
	Succs        []uint64
	ID           uint64
	Start        uint64
	End          uint64
}

// Function holds the analysis state of one function. It is created by a
// Scope and reset by ClearAnalysis before each run. The state only lives for
// the duration of one Decompile call; afterwards the scope keeps the symbol.
type Function struct {
	insts    map[uint64]Instruction
	bad      map[uint64]error
	exits    map[uint64]bool
	callees  map[uint64]bool
	tr       *Translator
	body     []statement
	Name     string
	blocks   []*Block
	warnings []string
	Entry    uint64
	started  bool
}

// IsProcStarted reports whether an analysis has run on the function.
func (f *Function) IsProcStarted() bool { return f.started }

// Callees returns the direct call destinations in address order.
func (f *Function) Callees() []uint64 {
	out := make([]uint64, 0, len(f.callees))
	for a := range f.callees {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (f *Function) warnf(format string, args ...any) {
	f.warnings = append(f.warnings, fmt.Sprintf(format, args...))
}

func (f *Function) begin(tr *Translator) {
	f.tr = tr
	f.started = true
	f.insts = make(map[uint64]Instruction)
	f.bad = make(map[uint64]error)
	f.exits = make(map[uint64]bool)
	f.callees = make(map[uint64]bool)
}

// end releases the per-run state once the result has been copied out, so
// neither the request's image nor its instructions outlive the call.
func (f *Function) end() {
	*f = Function{Name: f.Name, Entry: f.Entry, started: true}
}

func (f *Function) sortedAddrs() []uint64 {
	addrs := make([]uint64, 0, len(f.insts))
	for a := range f.insts {
		addrs = append(addrs, a)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })
	return addrs
}

// Scope is the global symbol table of an architecture.
type Scope struct {
	funcs map[uint64]*Function
}

// NewScope returns an empty scope.
func NewScope() *Scope {
	return &Scope{funcs: make(map[uint64]*Function)}
}

// FindFunction returns the function starting at addr, or nil.
func (s *Scope) FindFunction(addr uint64) *Function { return s.funcs[addr] }

// AddFunction registers a function at addr and returns it. An existing
// function at the same address is returned unchanged.
func (s *Scope) AddFunction(addr uint64, name string) *Function {
	if f, ok := s.funcs[addr]; ok {
		return f
	}
	f := &Function{Name: name, Entry: addr}
	s.funcs[addr] = f
	return f
}

// Functions returns the number of registered functions.
func (s *Scope) Functions() int { return len(s.funcs) }

// ClearAnalysis discards a function's analysis state but keeps its symbol.
func (s *Scope) ClearAnalysis(f *Function) {
	*f = Function{Name: f.Name, Entry: f.Entry}
}
