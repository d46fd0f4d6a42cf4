package spec

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/wippyai/fission/errors"
)

// DefaultLanguage is used when a caller does not name a language.
const DefaultLanguage = "x86:LE:64:default"

// Endian is the byte order of a language.
type Endian string

const (
	Little Endian = "little"
	Big    Endian = "big"
)

// Language describes one instruction set variant found in a specification
// directory.
type Language struct {
	ID          string `xml:"id,attr"`
	Processor   string `xml:"processor,attr"`
	Endian      Endian `xml:"endian,attr"`
	Size        int    `xml:"size,attr"`
	Variant     string `xml:"variant,attr"`
	Version     string `xml:"version,attr"`
	SlaFile     string `xml:"slafile,attr"`
	Description string `xml:"description"`
}

type definitions struct {
	XMLName   xml.Name   `xml:"language_definitions"`
	Languages []Language `xml:"language"`
}

// ID is a parsed language identifier: processor:endian:size:variant.
type ID struct {
	Processor string
	Endian    Endian
	Size      int
	Variant   string
}

// ParseID splits a language identifier such as "x86:LE:64:default".
func ParseID(s string) (ID, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 4 {
		return ID{}, errors.InvalidInput(errors.PhaseSpec, fmt.Sprintf("language id %q: want processor:endian:size:variant", s))
	}
	var e Endian
	switch strings.ToUpper(parts[1]) {
	case "LE":
		e = Little
	case "BE":
		e = Big
	default:
		return ID{}, errors.InvalidInput(errors.PhaseSpec, fmt.Sprintf("language id %q: bad endian %q", s, parts[1]))
	}
	size, err := strconv.Atoi(parts[2])
	if err != nil || size <= 0 {
		return ID{}, errors.InvalidInput(errors.PhaseSpec, fmt.Sprintf("language id %q: bad size %q", s, parts[2]))
	}
	return ID{Processor: parts[0], Endian: e, Size: size, Variant: parts[3]}, nil
}

// String formats the identifier back to its canonical form.
func (id ID) String() string {
	e := "LE"
	if id.Endian == Big {
		e = "BE"
	}
	return fmt.Sprintf("%s:%s:%d:%s", id.Processor, e, id.Size, id.Variant)
}

// Catalog is the set of languages loaded from one specification directory.
type Catalog struct {
	dir       string
	languages []Language
	byID      map[string]int
}

// LoadDir reads every *.ldefs file in dir. It fails when the directory is
// missing, holds no language definitions, or a definition file is malformed.
func LoadDir(dir string) (*Catalog, error) {
	if dir == "" {
		return nil, errors.InvalidInput(errors.PhaseSpec, "specification directory is empty")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.Spec(errors.PhaseSpec, dir, "cannot open specification directory", err)
	}
	if !info.IsDir() {
		return nil, errors.Spec(errors.PhaseSpec, dir, "not a directory", nil)
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.ldefs"))
	if err != nil {
		return nil, errors.Spec(errors.PhaseSpec, dir, "list language definitions", err)
	}
	if len(files) == 0 {
		return nil, errors.Spec(errors.PhaseSpec, dir, "no .ldefs language definitions found", nil)
	}
	sort.Strings(files)

	c := &Catalog{dir: dir, byID: make(map[string]int)}
	for _, f := range files {
		if err := c.readDefs(f); err != nil {
			return nil, err
		}
	}
	if len(c.languages) == 0 {
		return nil, errors.Spec(errors.PhaseSpec, dir, "language definitions declare no languages", nil)
	}
	return c, nil
}

func (c *Catalog) readDefs(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Spec(errors.PhaseSpec, path, "read language definitions", err)
	}
	var defs definitions
	if err := xml.Unmarshal(data, &defs); err != nil {
		return errors.Spec(errors.PhaseSpec, path, "malformed language definitions", err)
	}
	for _, l := range defs.Languages {
		if l.ID == "" || l.SlaFile == "" {
			return errors.Spec(errors.PhaseSpec, path, "language entry without id or slafile", nil)
		}
		if _, dup := c.byID[l.ID]; dup {
			continue
		}
		l.Description = strings.TrimSpace(l.Description)
		c.byID[l.ID] = len(c.languages)
		c.languages = append(c.languages, l)
	}
	return nil
}

// Dir returns the directory the catalog was loaded from.
func (c *Catalog) Dir() string { return c.dir }

// Languages returns all languages in load order.
func (c *Catalog) Languages() []Language {
	out := make([]Language, len(c.languages))
	copy(out, c.languages)
	return out
}

// Find looks a language up by id.
func (c *Catalog) Find(id string) (Language, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Language{}, false
	}
	return c.languages[i], true
}

// Resolve finds a language and checks that its compiled specification file
// is present and non-empty. An empty id selects DefaultLanguage.
func (c *Catalog) Resolve(id string) (Language, error) {
	if id == "" {
		id = DefaultLanguage
	}
	l, ok := c.Find(id)
	if !ok {
		return Language{}, errors.NotFound(errors.PhaseSpec, "language", id)
	}
	path := c.SlaPath(l)
	info, err := os.Stat(path)
	if err != nil {
		return Language{}, errors.Spec(errors.PhaseSpec, path, "missing specification file for "+id, err)
	}
	if !info.Mode().IsRegular() || info.Size() == 0 {
		return Language{}, errors.Spec(errors.PhaseSpec, path, "specification file is empty or not a regular file", nil)
	}
	return l, nil
}

// SlaPath returns the absolute location of a language's specification file.
func (c *Catalog) SlaPath(l Language) string {
	if filepath.IsAbs(l.SlaFile) {
		return l.SlaFile
	}
	return filepath.Join(c.dir, l.SlaFile)
}
