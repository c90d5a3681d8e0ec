package starlark

import (
	"errors"
	"fmt"

	starlarkLib "go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/robbyt/go-rpn"
)

// New compiles source, a Starlark expression that evaluates to a callable, into
// an operator over T. The usual form is a lambda:
//
//	op, err := starlark.New[float64]("lambda top, below: below - top")
//
// The operator's arity is the lambda's parameter count unless WithArity is
// given. Arguments arrive in the evaluator's pop order. The math module is
// predeclared. The compiled function is frozen, so the operator may be called
// from several goroutines at once.
func New[T Real](source string, opts ...FunctionalOption) (rpn.Operator[T], error) {
	cfg := &config{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return rpn.Operator[T]{}, fmt.Errorf("error applying option: %w", err)
		}
	}
	cfg.applyDefaults()
	cfg.setupLogger()

	callable, arity, err := compile(cfg, source)
	if err != nil {
		return rpn.Operator[T]{}, err
	}
	logger := cfg.logger.With("name", cfg.name)
	logger.Debug("compiled operator", "arity", arity)

	fn := func(args ...T) (T, error) {
		var zero T
		thread := &starlarkLib.Thread{
			Name: cfg.name,
			Print: func(_ *starlarkLib.Thread, msg string) {
				logger.Info(msg)
			},
		}
		thread.SetMaxExecutionSteps(cfg.maxSteps)

		sargs := make(starlarkLib.Tuple, len(args))
		for i, a := range args {
			sargs[i] = convertToStarlarkValue(a)
		}

		result, err := starlarkLib.Call(thread, callable, sargs, nil)
		if err != nil {
			var evalErr *starlarkLib.EvalError
			if errors.As(err, &evalErr) {
				logger.Debug("call failed", "backtrace", evalErr.Backtrace())
			}
			return zero, fmt.Errorf("%w: %w", ErrCallFailed, err)
		}
		return convertFromStarlarkValue[T](result)
	}

	return rpn.Nary(arity, fn), nil
}

// MustNew is like New but panics on error. It suits package-level operator
// tables built from constant sources.
func MustNew[T Real](source string, opts ...FunctionalOption) rpn.Operator[T] {
	op, err := New[T](source, opts...)
	if err != nil {
		panic(err)
	}
	return op
}

func compile(cfg *config, source string) (starlarkLib.Callable, int, error) {
	thread := &starlarkLib.Thread{Name: cfg.name}
	thread.SetMaxExecutionSteps(cfg.maxSteps)

	v, err := starlarkLib.EvalOptions(&syntax.FileOptions{}, thread, cfg.name, source, predeclared())
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrCompileFailed, err)
	}
	v.Freeze()

	callable, ok := v.(starlarkLib.Callable)
	if !ok {
		return nil, 0, fmt.Errorf("%w: got %s", ErrNotCallable, v.Type())
	}
	if cfg.arity > 0 {
		return callable, cfg.arity, nil
	}

	fn, ok := callable.(*starlarkLib.Function)
	if !ok {
		return nil, 0, fmt.Errorf("%w: %s is not a def or lambda, use WithArity", ErrInvalidArity, callable.Name())
	}
	if fn.HasVarargs() || fn.HasKwargs() || fn.NumKwonlyParams() > 0 {
		return nil, 0, fmt.Errorf("%w: %s has variadic or keyword-only parameters, use WithArity", ErrInvalidArity, fn.Name())
	}
	if fn.NumParams() < 1 {
		return nil, 0, fmt.Errorf("%w: %s takes no parameters", ErrInvalidArity, fn.Name())
	}
	return fn, fn.NumParams(), nil
}
