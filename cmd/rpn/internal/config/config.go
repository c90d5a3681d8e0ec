package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/caarlos0/env/v10"
)

// Value types understood by the command.
const (
	TypeInt     = "int"
	TypeFloat   = "float"
	TypeComplex = "complex"
)

// ErrHelp is returned by Load when -h was given.
var ErrHelp = errors.New("help requested")

// Usage describes the command line.
const Usage = `usage: rpn [-t int|float|complex] [-o operators.yaml] [-s] [-n] [-v] [expression ...]

Evaluates each expression argument, or each line of standard input when none
are given, and prints one result per line. Put -- before an expression that
starts with a minus sign.

  -t type   value type (env RPN_TYPE, default int)
  -o file   YAML file of Starlark operators (env RPN_OPERATORS)
  -s        strict: fail when more than one value remains (env RPN_STRICT)
  -n        natural operand order for operators (env RPN_NATURAL_ORDER)
  -v        debug logging (env RPN_LOG_LEVEL, default warn)
  -h        show this help
`

// Config holds the command configuration.
type Config struct {
	Type         string `env:"RPN_TYPE"          envDefault:"int"`
	OperatorFile string `env:"RPN_OPERATORS"`
	Strict       bool   `env:"RPN_STRICT"        envDefault:"false"`
	NaturalOrder bool   `env:"RPN_NATURAL_ORDER" envDefault:"false"`
	LogLevel     string `env:"RPN_LOG_LEVEL"     envDefault:"warn"`

	// Expressions are the operands left after flag parsing.
	Expressions []string
}

// Load reads the environment, then applies flags from argv, where argv[0] is
// the program name.
func Load(argv []string) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	opts, optind, err := getopt.Getopts(argv, "t:o:snvh")
	if err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	for _, opt := range opts {
		switch opt.Option {
		case 't':
			cfg.Type = opt.Value
		case 'o':
			cfg.OperatorFile = opt.Value
		case 's':
			cfg.Strict = true
		case 'n':
			cfg.NaturalOrder = true
		case 'v':
			cfg.LogLevel = "debug"
		case 'h':
			return nil, ErrHelp
		}
	}
	if optind < len(argv) {
		cfg.Expressions = argv[optind:]
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Type {
	case TypeInt, TypeFloat, TypeComplex:
	default:
		return fmt.Errorf("type must be one of: int, float, complex; got %q", c.Type)
	}

	if c.Type == TypeComplex && c.OperatorFile != "" {
		return fmt.Errorf("operator files are not supported for complex values")
	}

	if _, err := c.Level(); err != nil {
		return fmt.Errorf("RPN_LOG_LEVEL must be one of: debug, info, warn, error")
	}
	return nil
}

// Level returns the configured log level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(strings.ToLower(c.LogLevel)))
	return level, err
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Type=%s, OperatorFile=%s, Strict=%v, NaturalOrder=%v, LogLevel=%s, Expressions=%d}",
		c.Type,
		c.OperatorFile,
		c.Strict,
		c.NaturalOrder,
		c.LogLevel,
		len(c.Expressions),
	)
}
