package starlark

import "errors"

var (
	ErrCompileFailed = errors.New("failed to compile starlark operator")
	ErrNotCallable   = errors.New("starlark operator source must evaluate to a callable")
	ErrInvalidArity  = errors.New("starlark operator arity cannot be determined")
	ErrCallFailed    = errors.New("starlark operator call failed")
	ErrResultType    = errors.New("starlark operator returned an unsupported value")
)
