package engine

import (
	"fmt"
	"io"
	"strings"
)

// PrintC renders a function's lifted statements as C-like source.
type PrintC struct {
	indent string
}

// NewPrintC returns a printer with two-space indentation.
func NewPrintC() *PrintC { return &PrintC{indent: "  "} }

// DocFunction writes the function header, warnings and body to w.
func (p *PrintC) DocFunction(w io.Writer, fd *Function, language string, complete bool) error {
	var b strings.Builder

	fmt.Fprintf(&b, "// Decompiled by fission (%s)\n", language)
	fmt.Fprintf(&b, "// Address: %#x\n", fd.Entry)
	if !complete {
		b.WriteString("/* WARNING: Analysis incomplete, output is partial */\n")
	}
	for _, msg := range fd.warnings {
		fmt.Fprintf(&b, "/* WARNING: %s */\n", msg)
	}
	b.WriteByte('\n')

	fmt.Fprintf(&b, "void %s(void)\n\n{\n", fd.Name)

	refs := make(map[uint64]bool)
	for _, st := range fd.body {
		if st.hasRef {
			refs[st.ref] = true
		}
	}
	for _, st := range fd.body {
		if st.isLabel {
			if refs[st.label] {
				fmt.Fprintf(&b, "%s:\n", labelName(st.label))
			}
			continue
		}
		b.WriteString(p.indent)
		b.WriteString(st.text)
		b.WriteByte('\n')
	}
	if len(fd.body) == 0 {
		b.WriteString(p.indent)
		b.WriteString("halt_baddata();\n")
	}
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// Signature returns the printed prototype of a function.
func (p *PrintC) Signature(fd *Function) string { return fd.Name + "()" }
