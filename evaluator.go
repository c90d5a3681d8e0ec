package rpn

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

// Evaluator evaluates whitespace separated postfix expressions over values of
// type T. Its operator table and converter are fixed at construction, and each
// call to Evaluate works on its own stack, so one Evaluator may be shared
// between goroutines as long as its operators and converter are themselves
// safe for concurrent use.
type Evaluator[T any] struct {
	operators    Table[T]
	convert      Converter[T]
	strict       bool
	naturalOrder bool

	logger *slog.Logger
}

// New creates an Evaluator that converts operands with conv. No operators are
// installed unless given through WithDefaults, WithOperators or WithOperator.
func New[T any](conv Converter[T], opts ...Option[T]) (*Evaluator[T], error) {
	cfg := &config[T]{converter: conv}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("error applying option: %w", err)
		}
	}

	table := cfg.table()
	if err := cfg.validate(table); err != nil {
		return nil, err
	}
	cfg.setupLogger()

	return &Evaluator[T]{
		operators:    table,
		convert:      cfg.converter,
		strict:       cfg.strict,
		naturalOrder: cfg.naturalOrder,
		logger:       cfg.logger,
	}, nil
}

// NewNumeric creates an Evaluator for a numeric type with DefaultOperators and
// NumericConverter installed. Options may replace either.
func NewNumeric[T Numeric](opts ...Option[T]) (*Evaluator[T], error) {
	base := []Option[T]{WithDefaults(DefaultOperators[T]())}
	return New(NumericConverter[T](), append(base, opts...)...)
}

func (e *Evaluator[T]) String() string {
	return "rpn.Evaluator"
}

// Operators returns the sorted operator tokens this evaluator recognizes.
func (e *Evaluator[T]) Operators() []string {
	return e.operators.Tokens()
}

// Arity reports the operand count of the operator bound to token.
func (e *Evaluator[T]) Arity(token string) (int, bool) {
	op, ok := e.operators[token]
	return op.Arity, ok
}

// Evaluate runs expr left to right. Operand tokens are converted and pushed;
// operator tokens pop their arity worth of values, most recent first, and push
// the result. The value on top of the stack is returned once the tokens are
// exhausted. Anything beneath it is dropped unless the evaluator is strict.
//
// Failures are returned as *ConversionError, *StackUnderflowError,
// *OperatorError or, in strict mode, *StackNotSingletonError.
func (e *Evaluator[T]) Evaluate(expr string) (T, error) {
	var zero T
	tokens := strings.Fields(expr)
	stack := make([]T, 0, len(tokens))

	for pos, token := range tokens {
		op, ok := e.operators[token]
		if !ok {
			v, err := e.convert(token)
			if err != nil {
				return zero, &ConversionError{Token: token, Position: pos, Err: err}
			}
			stack = append(stack, v)
			continue
		}

		if len(stack) < op.Arity {
			return zero, &StackUnderflowError{
				Token:    token,
				Position: pos,
				Need:     op.Arity,
				Have:     len(stack),
			}
		}

		args := make([]T, op.Arity)
		for i := range args {
			args[i] = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		}
		if e.naturalOrder {
			slices.Reverse(args)
		}

		v, err := apply(op, args)
		if err != nil {
			return zero, &OperatorError{Token: token, Position: pos, Err: err}
		}
		e.logger.Debug("operator applied", "token", token, "position", pos, "depth", len(stack)+1)
		stack = append(stack, v)
	}

	if len(stack) == 0 {
		return zero, &StackUnderflowError{Position: len(tokens), Need: 1}
	}
	if e.strict && len(stack) != 1 {
		return zero, &StackNotSingletonError{Depth: len(stack)}
	}
	if len(stack) > 1 {
		e.logger.Debug("discarding values beneath result", "discarded", len(stack)-1)
	}
	return stack[len(stack)-1], nil
}

// apply calls the operator and reports a panic as ErrOperatorPanic.
func apply[T any](op Operator[T], args []T) (result T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrOperatorPanic, r)
		}
	}()
	return op.Fn(args...)
}
