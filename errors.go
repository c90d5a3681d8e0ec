package rpn

import (
	"errors"
	"fmt"
)

var (
	ErrConversion        = errors.New("token conversion failed")
	ErrStackUnderflow    = errors.New("stack underflow")
	ErrOperator          = errors.New("operator failed")
	ErrOperatorPanic     = errors.New("operator panicked")
	ErrStackNotSingleton = errors.New("stack does not hold exactly one value")
	ErrDivisionByZero    = errors.New("division by zero")

	ErrNilConverter = errors.New("converter cannot be nil")
	ErrNilOperator  = errors.New("operator function cannot be nil")
	ErrInvalidArity = errors.New("operator arity must be at least 1")
	ErrInvalidToken = errors.New("operator token must be non-empty and contain no whitespace")
)

// ConversionError is returned when a token is not a known operator and the
// converter rejects it.
type ConversionError struct {
	Token    string
	Position int
	Err      error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s: token %q at position %d: %v", ErrConversion, e.Token, e.Position, e.Err)
}

// Unwrap exposes both ErrConversion and the converter's own error.
func (e *ConversionError) Unwrap() []error {
	return []error{ErrConversion, e.Err}
}

// StackUnderflowError is returned when an operator needs more operands than
// the stack holds, or when the expression leaves nothing to return. In the
// latter case Token is empty and Position is the number of tokens.
type StackUnderflowError struct {
	Token    string
	Position int
	Need     int
	Have     int
}

func (e *StackUnderflowError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%s: no result on stack after %d tokens", ErrStackUnderflow, e.Position)
	}
	return fmt.Sprintf(
		"%s: operator %q at position %d needs %d operands, have %d",
		ErrStackUnderflow, e.Token, e.Position, e.Need, e.Have,
	)
}

func (e *StackUnderflowError) Unwrap() error {
	return ErrStackUnderflow
}

// OperatorError wraps a failure returned (or panicked) by an operator function.
type OperatorError struct {
	Token    string
	Position int
	Err      error
}

func (e *OperatorError) Error() string {
	return fmt.Sprintf("%s: operator %q at position %d: %v", ErrOperator, e.Token, e.Position, e.Err)
}

func (e *OperatorError) Unwrap() []error {
	return []error{ErrOperator, e.Err}
}

// StackNotSingletonError is only returned by evaluators built WithStrict.
type StackNotSingletonError struct {
	Depth int
}

func (e *StackNotSingletonError) Error() string {
	return fmt.Sprintf("%s: %d values remain", ErrStackNotSingleton, e.Depth)
}

func (e *StackNotSingletonError) Unwrap() error {
	return ErrStackNotSingleton
}
