// Package starlark builds rpn operators from Starlark lambdas.
//
// An operator's arity is taken from the lambda's parameter list, so a source
// such as "lambda top, below: below - top" yields a binary operator without
// any extra bookkeeping. Callables without a parameter list, such as the
// builtins of the predeclared math module, need WithArity.
//
//	e, err := rpn.NewNumeric(
//	    rpn.WithOperator("hyp", starlark.MustNew[float64]("lambda a, b: math.hypot(a, b)")),
//	)
package starlark
