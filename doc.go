// Package rpn evaluates arithmetic expressions written in Reverse Polish
// Notation.
//
// An Evaluator is generic over its value type. Tokens are separated by
// whitespace; a token that names an operator in the evaluator's table is
// applied to the stack, and any other token is turned into a value by the
// evaluator's Converter and pushed.
//
// The quickest start is a numeric evaluator with the default operators
// (+, -, *, x, /):
//
//	e, err := rpn.NewNumeric[float64]()
//	if err != nil {
//	    return err
//	}
//	v, err := e.Evaluate("2 3 *") // 6
//
// Operators receive their arguments in pop order. A binary operator sees the
// most recently pushed operand first, so with the defaults "2 3 -" is 3-2.
// WithNaturalOrder flips this for evaluators that prefer written order.
//
// Custom operators carry an explicit arity:
//
//	e, err := rpn.NewNumeric(
//	    rpn.WithOperator("C", rpn.Unary(cmplx.Conj)),
//	)
//
// By default caller operators are merged over the defaults; WithOverwrite(true)
// replaces them. When more than one value remains after the last token the top
// one is returned, unless the evaluator was built WithStrict.
package rpn
