package loader

import (
	"bytes"
	"debug/pe"
	"encoding/binary"

	"github.com/wippyai/fission/errors"
)

var peLanguages = map[uint16]string{
	pe.IMAGE_FILE_MACHINE_AMD64: "x86:LE:64:default",
	pe.IMAGE_FILE_MACHINE_I386:  "x86:LE:32:default",
	pe.IMAGE_FILE_MACHINE_ARM64: "AARCH64:LE:64:v8A",
	pe.IMAGE_FILE_MACHINE_ARMNT: "ARM:LE:32:v7",
}

func parsePE(data []byte) (*Binary, error) {
	f, err := pe.NewFile(bytes.NewReader(data))
	if err != nil {
		return nil, errors.InvalidData(errors.PhaseLoad, "malformed PE", err)
	}
	defer f.Close()

	b := &Binary{Format: FormatPE}
	var (
		entry   uint32
		exports pe.DataDirectory
	)
	switch oh := f.OptionalHeader.(type) {
	case *pe.OptionalHeader64:
		b.Is64 = true
		b.ImageBase = oh.ImageBase
		entry = oh.AddressOfEntryPoint
		if oh.NumberOfRvaAndSizes > pe.IMAGE_DIRECTORY_ENTRY_EXPORT {
			exports = oh.DataDirectory[pe.IMAGE_DIRECTORY_ENTRY_EXPORT]
		}
	case *pe.OptionalHeader32:
		b.ImageBase = uint64(oh.ImageBase)
		entry = oh.AddressOfEntryPoint
		if oh.NumberOfRvaAndSizes > pe.IMAGE_DIRECTORY_ENTRY_EXPORT {
			exports = oh.DataDirectory[pe.IMAGE_DIRECTORY_ENTRY_EXPORT]
		}
	default:
		return nil, errors.InvalidData(errors.PhaseLoad, "PE without optional header", nil)
	}
	if entry != 0 {
		b.Entry = b.ImageBase + uint64(entry)
	}

	lang, ok := peLanguages[f.FileHeader.Machine]
	if !ok {
		lang = "x86:LE:32:default"
		if b.Is64 {
			lang = "x86:LE:64:default"
		}
	}
	b.Language = lang

	for _, s := range f.Sections {
		c := s.Characteristics
		b.Sections = append(b.Sections, Section{
			Name:     s.Name,
			Addr:     b.ImageBase + uint64(s.VirtualAddress),
			Size:     uint64(max(s.VirtualSize, s.Size)),
			Offset:   uint64(s.Offset),
			FileSize: uint64(s.Size),
			Exec:     c&pe.IMAGE_SCN_MEM_EXECUTE != 0,
			Read:     c&pe.IMAGE_SCN_MEM_READ != 0,
			Write:    c&pe.IMAGE_SCN_MEM_WRITE != 0,
		})
	}

	b.data = data
	b.Functions = append(b.Functions, b.peExports(exports)...)

	// debug/pe reports imports as "name:dll" without their thunk address.
	if imports, err := f.ImportedSymbols(); err == nil {
		for _, imp := range imports {
			name, _, _ := bytes.Cut([]byte(imp), []byte{':'})
			b.Functions = append(b.Functions, Function{Name: string(name), Import: true})
		}
	}
	return b, nil
}

// peExports walks the export directory. Forwarded exports, whose address
// lies inside the directory itself, are skipped.
func (b *Binary) peExports(dir pe.DataDirectory) []Function {
	if dir.VirtualAddress == 0 || dir.Size < 40 {
		return nil
	}
	hdr, ok := b.rva(dir.VirtualAddress, 40)
	if !ok {
		return nil
	}
	le := binary.LittleEndian
	nFuncs := le.Uint32(hdr[20:])
	nNames := le.Uint32(hdr[24:])
	funcs, ok1 := b.rva(le.Uint32(hdr[28:]), int(nFuncs)*4)
	names, ok2 := b.rva(le.Uint32(hdr[32:]), int(nNames)*4)
	ords, ok3 := b.rva(le.Uint32(hdr[36:]), int(nNames)*2)
	if !ok1 || !ok2 || !ok3 {
		return nil
	}

	var out []Function
	for i := uint32(0); i < nNames; i++ {
		ord := uint32(le.Uint16(ords[2*i:]))
		if ord >= nFuncs {
			continue
		}
		addr := le.Uint32(funcs[4*ord:])
		if addr >= dir.VirtualAddress && addr < dir.VirtualAddress+dir.Size {
			continue
		}
		name, ok := b.cstring(le.Uint32(names[4*i:]))
		if !ok {
			continue
		}
		out = append(out, Function{Name: name, Addr: b.ImageBase + uint64(addr), Export: true})
	}
	return out
}

func (b *Binary) rva(rva uint32, n int) ([]byte, bool) {
	data, ok := b.Bytes(b.ImageBase+uint64(rva), n)
	if !ok || len(data) < n {
		return nil, false
	}
	return data, true
}

func (b *Binary) cstring(rva uint32) (string, bool) {
	data, ok := b.Bytes(b.ImageBase+uint64(rva), -1)
	if !ok {
		return "", false
	}
	end := bytes.IndexByte(data, 0)
	if end < 0 {
		return "", false
	}
	return string(data[:end]), true
}
