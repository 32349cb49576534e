package logger

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/conlog/conlog/formatter"
	"github.com/conlog/conlog/handler"
	"github.com/conlog/conlog/hostenv"
	"github.com/conlog/conlog/inspect"
)

// Config describes a logger in YAML. Pointer fields distinguish "absent"
// from an explicit zero so the inspector defaults survive partial files.
type Config struct {
	Level           string `yaml:"level"`
	Format          string `yaml:"format"` // "text" or "json"
	IncludeCaller   bool   `yaml:"include_caller"`
	Async           bool   `yaml:"async"`
	BufferSize      int    `yaml:"buffer_size"`
	TimestampFormat string `yaml:"timestamp_format"`

	MaxDepth         *int   `yaml:"max_depth"`
	MaxStringLength  *int   `yaml:"max_string_length"`
	CircularHandling *bool  `yaml:"circular_handling"`
	ElementFormat    string `yaml:"element_format"` // "summary", "inspect" or "disabled"
	PrettyPrint      bool   `yaml:"pretty_print"`
	IndentSize       int    `yaml:"indent_size"`
	Colors           *bool  `yaml:"colors"`
}

// LoadConfig reads a YAML logger configuration from path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses a YAML logger configuration.
func ParseConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// InspectOptions resolves the inspector options the config describes for
// the given execution context.
func (c *Config) InspectOptions(ctx hostenv.Context) inspect.Options {
	opts := inspect.DefaultOptions()
	opts.Context = ctx
	if c.MaxDepth != nil {
		opts.MaxDepth = *c.MaxDepth
	}
	if c.MaxStringLength != nil {
		opts.MaxStringLength = *c.MaxStringLength
	}
	if c.CircularHandling != nil {
		opts.CircularHandling = *c.CircularHandling
	}
	if c.ElementFormat != "" {
		opts.ElementFormat = inspect.ParseElementFormat(c.ElementFormat)
	}
	opts.PrettyPrint = c.PrettyPrint
	if c.IndentSize > 0 {
		opts.IndentSize = c.IndentSize
	}
	if c.Colors != nil {
		opts.Colors = *c.Colors
	} else {
		opts.Colors = ctx.ANSIColor
	}
	return opts
}

// Build assembles a logger for the detected execution context.
func (c *Config) Build() (*Logger, error) {
	return c.BuildFor(hostenv.Detect(), os.Stdout)
}

// BuildFor assembles a logger for an explicit execution context and sink.
func (c *Config) BuildFor(ctx hostenv.Context, w io.Writer) (*Logger, error) {
	fcfg := formatter.Config{
		IncludeCaller:   c.IncludeCaller,
		TimestampFormat: c.TimestampFormat,
		Inspector:       inspect.New(c.InspectOptions(ctx)),
	}

	var f formatter.Formatter
	switch c.Format {
	case "", "text":
		f = formatter.NewTextFormatter(fcfg)
	case "json":
		f = formatter.NewJSONFormatter(fcfg)
	default:
		return nil, fmt.Errorf("unknown format %q", c.Format)
	}

	h := handler.NewConsoleHandler(handler.ConsoleConfig{
		Writer:     w,
		Formatter:  f,
		Async:      c.Async,
		BufferSize: c.BufferSize,
	})

	return NewBuilder().
		WithHandler(h).
		WithLevel(ParseLevel(c.Level)).
		WithCaller(c.IncludeCaller).
		Build(), nil
}
