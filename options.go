package rpn

import (
	"fmt"
	"log/slog"
	"maps"

	"github.com/robbyt/go-rpn/internal/helpers"
)

// Converter turns a non-operator token into a value.
type Converter[T any] func(token string) (T, error)

// Option configures an Evaluator during construction.
type Option[T any] func(*config[T]) error

type config[T any] struct {
	converter    Converter[T]
	defaults     Table[T]
	operators    Table[T]
	overwrite    bool
	strict       bool
	naturalOrder bool

	logHandler slog.Handler
	logger     *slog.Logger
}

// WithConverter replaces the function used to convert operand tokens.
func WithConverter[T any](conv Converter[T]) Option[T] {
	return func(c *config[T]) error {
		if conv == nil {
			return ErrNilConverter
		}
		c.converter = conv
		return nil
	}
}

// WithDefaults sets the built-in table that caller operators are merged into.
// NewNumeric installs DefaultOperators; New starts with an empty table.
func WithDefaults[T any](table Table[T]) Option[T] {
	return func(c *config[T]) error {
		c.defaults = table.Clone()
		return nil
	}
}

// WithOperators registers caller operators. Repeated use accumulates, and the
// last registration for a token wins.
func WithOperators[T any](table Table[T]) Option[T] {
	return func(c *config[T]) error {
		if c.operators == nil {
			c.operators = make(Table[T], len(table))
		}
		maps.Copy(c.operators, table)
		return nil
	}
}

// WithOperator registers a single caller operator.
func WithOperator[T any](token string, op Operator[T]) Option[T] {
	return WithOperators(Table[T]{token: op})
}

// WithOverwrite controls how caller operators combine with the defaults. When
// true the caller operators replace the default table entirely. It has no
// effect if no caller operators were registered.
func WithOverwrite[T any](overwrite bool) Option[T] {
	return func(c *config[T]) error {
		c.overwrite = overwrite
		return nil
	}
}

// WithStrict makes Evaluate fail with a StackNotSingletonError when more than
// one value remains after the last token, instead of returning the top value.
func WithStrict[T any]() Option[T] {
	return func(c *config[T]) error {
		c.strict = true
		return nil
	}
}

// WithNaturalOrder reverses each operator's arguments before the call, so that
// args[0] is the operand written first. With the default table "4 2 -" then
// yields 2 rather than -2.
func WithNaturalOrder[T any]() Option[T] {
	return func(c *config[T]) error {
		c.naturalOrder = true
		return nil
	}
}

// WithLogHandler sets the slog handler used for debug tracing.
func WithLogHandler[T any](handler slog.Handler) Option[T] {
	return func(c *config[T]) error {
		if handler == nil {
			return fmt.Errorf("log handler cannot be nil")
		}
		c.logHandler = handler
		c.logger = nil
		return nil
	}
}

// WithLogger sets a specific logger, taking precedence over any handler.
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(c *config[T]) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		c.logger = logger
		c.logHandler = nil
		return nil
	}
}

func (c *config[T]) setupLogger() {
	if c.logger != nil {
		c.logHandler = c.logger.Handler()
		return
	}
	c.logHandler, c.logger = helpers.SetupLogger(c.logHandler, "rpn", "Evaluator")
}

// table builds the operator table the evaluator will own.
func (c *config[T]) table() Table[T] {
	if c.operators != nil && c.overwrite {
		return c.operators.Clone()
	}
	out := c.defaults.Clone()
	maps.Copy(out, c.operators)
	return out
}

func (c *config[T]) validate(table Table[T]) error {
	if c.converter == nil {
		return ErrNilConverter
	}
	for _, token := range table.Tokens() {
		if err := table[token].validate(token); err != nil {
			return err
		}
	}
	return nil
}
