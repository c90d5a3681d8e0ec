package starlark

import (
	"fmt"
	"log/slog"

	"github.com/robbyt/go-rpn/internal/helpers"
)

const defaultMaxSteps = 100_000

// FunctionalOption configures how a Starlark operator is compiled and run.
type FunctionalOption func(*config) error

type config struct {
	name     string
	arity    int
	maxSteps uint64

	logHandler slog.Handler
	logger     *slog.Logger
}

// WithName sets the name used for the compiled file and the execution thread,
// which shows up in Starlark backtraces.
func WithName(name string) FunctionalOption {
	return func(c *config) error {
		if name == "" {
			return fmt.Errorf("name cannot be empty")
		}
		c.name = name
		return nil
	}
}

// WithArity fixes the operand count instead of reading it from the function's
// parameters. It is required for builtins such as math.sqrt and for functions
// taking *args.
func WithArity(n int) FunctionalOption {
	return func(c *config) error {
		if n < 1 {
			return fmt.Errorf("%w: %d", ErrInvalidArity, n)
		}
		c.arity = n
		return nil
	}
}

// WithMaxSteps bounds the number of Starlark execution steps per call.
func WithMaxSteps(n uint64) FunctionalOption {
	return func(c *config) error {
		if n == 0 {
			return fmt.Errorf("max steps must be positive")
		}
		c.maxSteps = n
		return nil
	}
}

// WithLogHandler sets the handler that receives output of the Starlark print
// builtin. This is the preferred option: any slog.Handler can be supplied and
// its records are grouped under "starlark". Setting it clears any logger set
// earlier with WithLogger.
func WithLogHandler(handler slog.Handler) FunctionalOption {
	return func(c *config) error {
		if handler == nil {
			return fmt.Errorf("log handler cannot be nil")
		}
		c.logHandler = handler
		c.logger = nil
		return nil
	}
}

// WithLogger sets the logger that receives output of the Starlark print builtin.
// The logger is used as given, without extra grouping, for callers that want
// their own group layout. Setting it clears any handler set earlier with
// WithLogHandler.
func WithLogger(logger *slog.Logger) FunctionalOption {
	return func(c *config) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		c.logger = logger
		c.logHandler = nil
		return nil
	}
}

func (c *config) setupLogger() {
	if c.logger != nil {
		c.logHandler = c.logger.Handler()
		return
	}
	c.logHandler, c.logger = helpers.SetupLogger(c.logHandler, "starlark", "Operator")
}

func (c *config) applyDefaults() {
	if c.name == "" {
		c.name = "operator"
	}
	if c.maxSteps == 0 {
		c.maxSteps = defaultMaxSteps
	}
}
