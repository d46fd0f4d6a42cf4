package config

import (
	"bytes"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/wippyai/fission/engine"
	"github.com/wippyai/fission/errors"
	"github.com/wippyai/fission/gateway"
	"github.com/wippyai/fission/spec"
)

const (
	DefaultListen         = "127.0.0.1:50051"
	DefaultOutputCapacity = 64 << 10
)

// Log configures the process logger.
type Log struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Config holds every setting of the CLI and the service.
type Config struct {
	Listen            string `yaml:"listen"`
	SpecDir           string `yaml:"spec_dir"`
	Language          string `yaml:"language"`
	MaxInstructions   int    `yaml:"max_instructions"`
	BlockInstructions int    `yaml:"block_instructions"`
	DecompileSteps    int    `yaml:"decompile_steps"`
	OutputCapacity    int    `yaml:"output_capacity"`
	Log               Log    `yaml:"log"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Listen:            DefaultListen,
		SpecDir:           "languages",
		Language:          spec.DefaultLanguage,
		MaxInstructions:   gateway.DefaultMaxInstructions,
		BlockInstructions: engine.DefaultMaxInstructions,
		DecompileSteps:    engine.DefaultMaxSteps,
		OutputCapacity:    DefaultOutputCapacity,
		Log:               Log{Level: "info"},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(errors.PhaseConfig, errors.KindNotFound, err, "cannot read "+path)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result. Unknown
// keys are rejected.
func Parse(data []byte) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && err != io.EOF {
		return Config{}, errors.InvalidData(errors.PhaseConfig, "malformed config", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	invalid := func(detail string) error {
		return errors.InvalidInput(errors.PhaseConfig, detail)
	}
	switch {
	case c.SpecDir == "":
		return invalid("spec_dir must be set")
	case c.Language == "":
		return invalid("language must be set")
	case c.MaxInstructions <= 0:
		return invalid("max_instructions must be positive")
	case c.BlockInstructions <= 0:
		return invalid("block_instructions must be positive")
	case c.DecompileSteps <= 0:
		return invalid("decompile_steps must be positive")
	case c.OutputCapacity < 1:
		return invalid("output_capacity must be at least 1")
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return errors.InvalidData(errors.PhaseConfig, "log.level", err)
	}
	return nil
}

// GatewayOptions returns the handle options the settings select.
func (c Config) GatewayOptions() []gateway.Option {
	return []gateway.Option{
		gateway.WithLanguage(c.Language),
		gateway.WithMaxInstructions(c.MaxInstructions),
		gateway.WithAnalysis(engine.Options{
			MaxSteps:        c.DecompileSteps,
			MaxInstructions: c.BlockInstructions,
		}),
	}
}

// Logger builds the process logger. Development mode logs to the console at
// debug granularity with caller info; otherwise JSON is written to stderr.
func (c Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, errors.InvalidData(errors.PhaseConfig, "log.level", err)
	}
	zc := zap.NewProductionConfig()
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

// InstallLogger builds the process logger and hands named children of it to
// the gateway and engine packages.
func (c Config) InstallLogger() (*zap.Logger, error) {
	log, err := c.Logger()
	if err != nil {
		return nil, err
	}
	gateway.SetLogger(log.Named("gateway"))
	engine.SetLogger(log.Named("engine"))
	return log, nil
}
