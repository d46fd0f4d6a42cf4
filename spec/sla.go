package spec

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/fission/errors"
)

// SlaFormat is the only compiled specification format understood.
const SlaFormat = "fission-sla/1"

// Registers names the conventional registers the printer uses.
type Registers struct {
	Stack  string `yaml:"stack"`
	Frame  string `yaml:"frame"`
	Return string `yaml:"return"`
}

// Sla is the decoded compiled specification of one language.
type Sla struct {
	Format    string    `yaml:"format"`
	Decoder   string    `yaml:"decoder"`
	Mode      int       `yaml:"mode"`
	MaxLength int       `yaml:"max_length"`
	Alignment int       `yaml:"alignment"`
	Registers Registers `yaml:"registers"`
}

// LoadSla resolves a language and decodes its specification file.
func (c *Catalog) LoadSla(id string) (Language, *Sla, error) {
	l, err := c.Resolve(id)
	if err != nil {
		return Language{}, nil, err
	}
	path := c.SlaPath(l)
	data, err := os.ReadFile(path)
	if err != nil {
		return Language{}, nil, errors.Spec(errors.PhaseSpec, path, "read specification file", err)
	}
	sla, err := ParseSla(data)
	if err != nil {
		return Language{}, nil, errors.Spec(errors.PhaseSpec, path, "malformed specification file", err)
	}
	return l, sla, nil
}

// ParseSla decodes and validates a compiled specification.
func ParseSla(data []byte) (*Sla, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Sla
	if err := dec.Decode(&s); err != nil {
		return nil, err
	}
	if s.Format != SlaFormat {
		return nil, fmt.Errorf("unsupported format %q", s.Format)
	}
	if s.Decoder == "" {
		return nil, fmt.Errorf("decoder not set")
	}
	if s.MaxLength <= 0 {
		return nil, fmt.Errorf("max_length must be positive, got %d", s.MaxLength)
	}
	if s.Alignment <= 0 {
		s.Alignment = 1
	}
	return &s, nil
}
