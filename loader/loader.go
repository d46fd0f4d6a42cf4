package loader

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/wippyai/fission/errors"
	"github.com/wippyai/fission/image"
)

// Format names a container format.
type Format string

const (
	FormatELF   Format = "ELF"
	FormatPE    Format = "PE"
	FormatMachO Format = "Mach-O"
)

// Section is one section of a loaded binary.
type Section struct {
	Name     string
	Addr     uint64
	Size     uint64
	Offset   uint64
	FileSize uint64
	Exec     bool
	Read     bool
	Write    bool
}

// End returns the first address past the section.
func (s Section) End() uint64 { return s.Addr + s.Size }

// Function is a function known from symbols, exports, imports or the entry
// point. Size is zero when unknown.
type Function struct {
	Name   string
	Addr   uint64
	Size   uint64
	Export bool
	Import bool
}

// Binary is a parsed executable. It keeps the file bytes; section contents
// are slices of them.
type Binary struct {
	Path      string
	Format    Format
	Language  string
	Entry     uint64
	ImageBase uint64
	Is64      bool
	Sections  []Section
	Functions []Function
	data      []byte
}

// Open reads and parses the file at path.
func Open(path string) (*Binary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseLoad, errors.KindNotFound, err, "cannot read "+path)
	}
	b, err := Parse(data)
	if err != nil {
		return nil, err
	}
	b.Path = path
	return b, nil
}

var (
	machoMagics = []uint32{0xfeedface, 0xfeedfacf, 0xcefaedfe, 0xcffaedfe}
	fatMagic    = []byte{0xca, 0xfe, 0xba, 0xbe}
)

// Detect returns the container format of data, or "" when the magic bytes
// match none of the supported formats.
func Detect(data []byte) Format {
	switch {
	case len(data) < 4:
		return ""
	case data[0] == 'M' && data[1] == 'Z':
		return FormatPE
	case bytes.HasPrefix(data, []byte("\x7fELF")):
		return FormatELF
	case isMachO(data):
		return FormatMachO
	}
	return ""
}

// Parse detects the container format from its magic bytes and parses data.
func Parse(data []byte) (*Binary, error) {
	if len(data) < 4 {
		return nil, errors.InvalidData(errors.PhaseLoad, "file too small", nil)
	}

	var (
		b   *Binary
		err error
	)
	switch Detect(data) {
	case FormatPE:
		b, err = parsePE(data)
	case FormatELF:
		b, err = parseELF(data)
	case FormatMachO:
		b, err = parseMachO(data)
	default:
		if bytes.HasPrefix(data, fatMagic) {
			return nil, errors.Unsupported(errors.PhaseLoad, "fat Mach-O binaries")
		}
		return nil, errors.InvalidData(errors.PhaseLoad, "unknown binary format", nil)
	}
	if err != nil {
		return nil, err
	}

	b.data = data
	b.addEntry()
	return b, nil
}

func isMachO(data []byte) bool {
	magic := binary.LittleEndian.Uint32(data)
	for _, m := range machoMagics {
		if magic == m {
			return true
		}
	}
	return false
}

func (b *Binary) addEntry() {
	if b.Entry == 0 {
		return
	}
	for _, f := range b.Functions {
		if f.Addr == b.Entry {
			return
		}
	}
	name := "_start"
	if b.Format == FormatMachO {
		name = "_main"
	}
	b.Functions = append(b.Functions, Function{Name: name, Addr: b.Entry})
}

// Bytes returns up to n file bytes starting at addr. The result is cut at
// the end of the containing section's file data.
func (b *Binary) Bytes(addr uint64, n int) ([]byte, bool) {
	for _, s := range b.Sections {
		if addr < s.Addr || addr >= s.End() {
			continue
		}
		data := b.sectionData(s)
		rel := addr - s.Addr
		if rel >= uint64(len(data)) {
			continue
		}
		data = data[rel:]
		if n >= 0 && n < len(data) {
			data = data[:n]
		}
		return data, true
	}
	return nil, false
}

func (b *Binary) sectionData(s Section) []byte {
	if s.FileSize == 0 || s.Offset >= uint64(len(b.data)) {
		return nil
	}
	end := min(s.Offset+min(s.FileSize, s.Size), uint64(len(b.data)))
	return b.data[s.Offset:end]
}

// ExecutableSections returns the sections marked executable.
func (b *Binary) ExecutableSections() []Section {
	var out []Section
	for _, s := range b.Sections {
		if s.Exec {
			out = append(out, s)
		}
	}
	return out
}

// Code returns the file bytes of the executable section holding the entry
// point, or of the first executable section with data, and its address.
func (b *Binary) Code() ([]byte, uint64, error) {
	var first *Section
	for i, s := range b.Sections {
		if !s.Exec || len(b.sectionData(s)) == 0 {
			continue
		}
		if b.Entry >= s.Addr && b.Entry < s.End() {
			return b.sectionData(s), s.Addr, nil
		}
		if first == nil {
			first = &b.Sections[i]
		}
	}
	if first == nil {
		return nil, 0, errors.New(errors.PhaseLoad, errors.KindNotFound).Detail("no executable section").Build()
	}
	return b.sectionData(*first), first.Addr, nil
}

// Image maps every readable section with file data at its address. Gaps and
// bss read as zero.
func (b *Binary) Image() *image.Map {
	var regions []image.Region
	for _, s := range b.Sections {
		if !s.Read && !s.Exec {
			continue
		}
		if data := b.sectionData(s); len(data) > 0 {
			regions = append(regions, image.Region{Name: s.Name, Addr: s.Addr, Data: data})
		}
	}
	return image.NewMap(b.Language, regions...)
}

// SortedFunctions returns the functions ordered by address.
func (b *Binary) SortedFunctions() []Function {
	out := append([]Function(nil), b.Functions...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Addr < out[j].Addr })
	return out
}

// FindFunction looks a function up by name.
func (b *Binary) FindFunction(name string) (Function, bool) {
	for _, f := range b.Functions {
		if f.Name == name {
			return f, true
		}
	}
	return Function{}, false
}

// FunctionAt returns the function containing addr. Functions of unknown size
// only match their start address.
func (b *Binary) FunctionAt(addr uint64) (Function, bool) {
	for _, f := range b.Functions {
		if f.Import {
			continue
		}
		if f.Size > 0 && addr >= f.Addr && addr < f.Addr+f.Size {
			return f, true
		}
		if f.Size == 0 && addr == f.Addr {
			return f, true
		}
	}
	return Function{}, false
}

// Summary describes the binary in a few lines.
func (b *Binary) Summary() string {
	bits := "32-bit"
	if b.Is64 {
		bits = "64-bit"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s binary\n", bits, b.Format)
	fmt.Fprintf(&sb, "Language: %s\n", b.Language)
	fmt.Fprintf(&sb, "Entry: 0x%x\n", b.Entry)
	fmt.Fprintf(&sb, "Image Base: 0x%x\n", b.ImageBase)
	fmt.Fprintf(&sb, "Sections: %d\n", len(b.Sections))
	fmt.Fprintf(&sb, "Functions: %d", len(b.Functions))
	return sb.String()
}
