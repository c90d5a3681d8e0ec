package rpn

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"unicode"
)

// Operator pairs a function with the number of operands it consumes.
//
// Fn receives its arguments in pop order: args[0] is the value that was on top
// of the stack, args[1] the one below it, and so on. For "6 3 /" the default
// divide therefore sees args = [3, 6].
type Operator[T any] struct {
	Arity int
	Fn    func(args ...T) (T, error)
}

// Unary wraps a single-operand function that cannot fail.
func Unary[T any](fn func(a T) T) Operator[T] {
	if fn == nil {
		return Operator[T]{Arity: 1}
	}
	return Operator[T]{
		Arity: 1,
		Fn: func(args ...T) (T, error) {
			return fn(args[0]), nil
		},
	}
}

// Binary wraps a two-operand function that cannot fail. a is the top of the
// stack, b the value beneath it.
func Binary[T any](fn func(a, b T) T) Operator[T] {
	if fn == nil {
		return Operator[T]{Arity: 2}
	}
	return Operator[T]{
		Arity: 2,
		Fn: func(args ...T) (T, error) {
			return fn(args[0], args[1]), nil
		},
	}
}

// Nary builds an operator of any arity from a fallible function.
func Nary[T any](arity int, fn func(args ...T) (T, error)) Operator[T] {
	return Operator[T]{Arity: arity, Fn: fn}
}

func (o Operator[T]) validate(token string) error {
	if token == "" || strings.IndexFunc(token, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: %q", ErrInvalidToken, token)
	}
	if o.Fn == nil {
		return fmt.Errorf("%w: %q", ErrNilOperator, token)
	}
	if o.Arity < 1 {
		return fmt.Errorf("%w: %q has arity %d", ErrInvalidArity, token, o.Arity)
	}
	return nil
}

// Table maps operator tokens to operators.
type Table[T any] map[string]Operator[T]

// Clone returns an independent copy of the table.
func (t Table[T]) Clone() Table[T] {
	out := make(Table[T], len(t))
	maps.Copy(out, t)
	return out
}

// Tokens returns the table's keys in sorted order.
func (t Table[T]) Tokens() []string {
	return slices.Sorted(maps.Keys(t))
}
