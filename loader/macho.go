package loader

import (
	"bytes"
	"debug/macho"

	"github.com/wippyai/fission/errors"
)

const (
	lcMain = 0x80000028

	nStab = 0xe0
	nType = 0x0e
	nSect = 0x0e
	nExt  = 0x01

	sAttrPureInstructions = 0x80000000

	vmProtRead    = 0x1
	vmProtWrite   = 0x2
	vmProtExecute = 0x4
)

var machoLanguages = map[macho.Cpu]string{
	macho.CpuAmd64: "x86:LE:64:default",
	macho.Cpu386:   "x86:LE:32:default",
	macho.CpuArm64: "AARCH64:LE:64:v8A",
	macho.CpuArm:   "ARM:LE:32:v7",
}

func parseMachO(data []byte) (*Binary, error) {
	f, err := macho.NewFile(bytes.NewReader(data))
	if err != nil {
		return nil, errors.InvalidData(errors.PhaseLoad, "malformed Mach-O", err)
	}
	defer f.Close()

	b := &Binary{
		Format: FormatMachO,
		Is64:   f.Magic == macho.Magic64,
	}
	lang, ok := machoLanguages[f.Cpu]
	if !ok {
		lang = "x86:LE:64:default"
	}
	b.Language = lang

	if text := f.Segment("__TEXT"); text != nil {
		b.ImageBase = text.Addr
	}

	prot := make(map[string]uint32)
	for _, l := range f.Loads {
		switch l := l.(type) {
		case *macho.Segment:
			prot[l.Name] = l.Prot
		default:
			raw := l.Raw()
			if len(raw) >= 16 && f.ByteOrder.Uint32(raw) == lcMain {
				b.Entry = b.ImageBase + f.ByteOrder.Uint64(raw[8:])
			}
		}
	}

	for _, s := range f.Sections {
		p := prot[s.Seg]
		fileSize := s.Size
		if s.Offset == 0 {
			fileSize = 0
		}
		b.Sections = append(b.Sections, Section{
			Name:     s.Seg + "," + s.Name,
			Addr:     s.Addr,
			Size:     s.Size,
			Offset:   uint64(s.Offset),
			FileSize: fileSize,
			Exec:     p&vmProtExecute != 0 || s.Flags&sAttrPureInstructions != 0,
			Read:     p&vmProtRead != 0,
			Write:    p&vmProtWrite != 0,
		})
	}

	if f.Symtab != nil {
		for _, sym := range f.Symtab.Syms {
			if sym.Type&nStab != 0 || sym.Type&nType != nSect || sym.Sect == 0 {
				continue
			}
			if int(sym.Sect) > len(b.Sections) || !b.Sections[sym.Sect-1].Exec {
				continue
			}
			b.Functions = append(b.Functions, Function{
				Name:   sym.Name,
				Addr:   sym.Value,
				Export: sym.Type&nExt != 0,
			})
		}
	}
	return b, nil
}
