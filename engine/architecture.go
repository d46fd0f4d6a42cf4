package engine

import (
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/fission"
	"github.com/wippyai/fission/spec"
)

const (
	// DefaultMaxSteps bounds the decode attempts of one flow recovery.
	DefaultMaxSteps = 10000
	// DefaultMaxInstructions bounds the instructions recovered per function.
	DefaultMaxInstructions = 200
)

// Options tunes the analysis budget. Zero values select the defaults.
type Options struct {
	MaxSteps        int
	MaxInstructions int
}

func (o Options) withDefaults() Options {
	if o.MaxSteps <= 0 {
		o.MaxSteps = DefaultMaxSteps
	}
	if o.MaxInstructions <= 0 {
		o.MaxInstructions = DefaultMaxInstructions
	}
	return o
}

// Architecture ties a language to its decoder, symbol scope, analysis
// pipeline and printer. It is not safe for concurrent use; callers serialize
// access to it.
type Architecture struct {
	lang    spec.Language
	sla     *spec.Sla
	dec     Decoder
	scope   *Scope
	actions *ActionGroup
	print   *PrintC
	opts    Options
}

func newArchitecture(lang spec.Language, sla *spec.Sla, dec Decoder, opts Options) *Architecture {
	opts = opts.withDefaults()
	return &Architecture{
		lang:  lang,
		sla:   sla,
		dec:   dec,
		scope: NewScope(),
		actions: NewActionGroup("decompile",
			&actionFlow{maxSteps: opts.MaxSteps, maxInstructions: opts.MaxInstructions},
			actionBlocks{},
			&actionLift{lift: newLifter(sla)},
		),
		print: NewPrintC(),
		opts:  opts,
	}
}

// Language returns the language the architecture was built for.
func (a *Architecture) Language() spec.Language { return a.lang }

// Scope returns the global symbol scope.
func (a *Architecture) Scope() *Scope { return a.scope }

// Options returns the effective analysis budget.
func (a *Architecture) Options() Options { return a.opts }

// Translator binds the architecture's decoder to an image.
func (a *Architecture) Translator(img fission.Image) *Translator {
	return NewTranslator(img, a.dec)
}

// Analysis is the result of decompiling one function.
type Analysis struct {
	Name      string
	Language  string
	Signature string
	C         string
	Blocks    []Block
	Callees   []uint64
	Warnings  []string
	Entry     uint64
	Complete  bool
}

// Decompile finds or creates the function at entry, runs the analysis
// pipeline over img and prints the result. A pipeline breakpoint is not an
// error: the analysis is returned with Complete set to false.
func (a *Architecture) Decompile(img fission.Image, entry uint64) (*Analysis, error) {
	fd := a.scope.FindFunction(entry)
	if fd == nil {
		fd = a.scope.AddFunction(entry, FunctionName(entry))
	}
	if fd.IsProcStarted() {
		a.scope.ClearAnalysis(fd)
	}

	fd.begin(a.Translator(img))
	defer fd.end()

	res, err := a.actions.Perform(fd)
	if err != nil {
		return nil, err
	}
	complete := res >= 0
	if !complete {
		Logger().Debug("decompilation incomplete",
			zap.String("function", fd.Name),
			zap.Int("instructions", len(fd.insts)))
	}

	var c strings.Builder
	if err := a.print.DocFunction(&c, fd, a.lang.ID, complete); err != nil {
		return nil, err
	}

	out := &Analysis{
		Name:      fd.Name,
		Language:  a.lang.ID,
		Signature: a.print.Signature(fd),
		C:         c.String(),
		Callees:   fd.Callees(),
		Warnings:  append([]string(nil), fd.warnings...),
		Entry:     fd.Entry,
		Complete:  complete,
	}
	for _, b := range fd.blocks {
		out.Blocks = append(out.Blocks, *b)
	}
	return out, nil
}
