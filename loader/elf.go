package loader

import (
	"bytes"
	"debug/elf"
	"math"

	"github.com/wippyai/fission/errors"
)

var elfLanguages = map[elf.Machine]string{
	elf.EM_X86_64:  "x86:LE:64:default",
	elf.EM_386:     "x86:LE:32:default",
	elf.EM_ARM:     "ARM:LE:32:v7",
	elf.EM_AARCH64: "AARCH64:LE:64:v8A",
}

func parseELF(data []byte) (*Binary, error) {
	f, err := elf.NewFile(bytes.NewReader(data))
	if err != nil {
		return nil, errors.InvalidData(errors.PhaseLoad, "malformed ELF", err)
	}
	defer f.Close()

	b := &Binary{
		Format: FormatELF,
		Entry:  f.Entry,
		Is64:   f.Class == elf.ELFCLASS64,
	}
	lang, ok := elfLanguages[f.Machine]
	if !ok {
		lang = "x86:LE:64:default"
	}
	b.Language = lang

	base := uint64(math.MaxUint64)
	for _, p := range f.Progs {
		if p.Type == elf.PT_LOAD && p.Vaddr < base {
			base = p.Vaddr
		}
	}
	if base == math.MaxUint64 {
		base = 0
	}
	b.ImageBase = base

	for _, s := range f.Sections {
		if s.Type == elf.SHT_NULL {
			continue
		}
		fileSize := s.FileSize
		if s.Type == elf.SHT_NOBITS {
			fileSize = 0
		}
		b.Sections = append(b.Sections, Section{
			Name:     s.Name,
			Addr:     s.Addr,
			Size:     s.Size,
			Offset:   s.Offset,
			FileSize: fileSize,
			Exec:     s.Flags&elf.SHF_EXECINSTR != 0,
			Read:     s.Flags&elf.SHF_ALLOC != 0,
			Write:    s.Flags&elf.SHF_WRITE != 0,
		})
	}

	seen := make(map[uint64]bool)
	add := func(syms []elf.Symbol) {
		for _, sym := range syms {
			if elf.ST_TYPE(sym.Info) != elf.STT_FUNC || sym.Value == 0 || seen[sym.Value] {
				continue
			}
			seen[sym.Value] = true
			b.Functions = append(b.Functions, Function{
				Name:   sym.Name,
				Addr:   sym.Value,
				Size:   sym.Size,
				Export: elf.ST_BIND(sym.Info) == elf.STB_GLOBAL,
				Import: sym.Section == elf.SHN_UNDEF,
			})
		}
	}
	// Stripped binaries have neither table; that is not an error.
	if syms, err := f.Symbols(); err == nil {
		add(syms)
	}
	if syms, err := f.DynamicSymbols(); err == nil {
		add(syms)
	}
	return b, nil
}
