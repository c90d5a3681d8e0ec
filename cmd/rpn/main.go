// Command rpn evaluates Reverse Polish Notation expressions.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/robbyt/go-rpn"
	"github.com/robbyt/go-rpn/cmd/rpn/internal/config"
	"github.com/robbyt/go-rpn/operators/starlark"
)

var errFailed = errors.New("one or more expressions failed")

// maxLineSize bounds a single stdin expression.
const maxLineSize = 64 << 20

// evalFunc evaluates one expression and formats the result.
type evalFunc func(expr string) (string, error)

type realNumber interface {
	starlark.Real
	rpn.Numeric
}

func newEvalFunc(cfg *config.Config, ops *config.OperatorFile, handler slog.Handler) (evalFunc, error) {
	switch cfg.Type {
	case config.TypeFloat:
		return realEvalFunc[float64](cfg, ops, handler)
	case config.TypeComplex:
		e, err := rpn.NewNumeric(commonOptions[complex128](cfg, handler)...)
		if err != nil {
			return nil, err
		}
		return format(e), nil
	default:
		return realEvalFunc[int](cfg, ops, handler)
	}
}

func commonOptions[T any](cfg *config.Config, handler slog.Handler) []rpn.Option[T] {
	opts := []rpn.Option[T]{rpn.WithLogHandler[T](handler)}
	if cfg.Strict {
		opts = append(opts, rpn.WithStrict[T]())
	}
	if cfg.NaturalOrder {
		opts = append(opts, rpn.WithNaturalOrder[T]())
	}
	return opts
}

func realEvalFunc[T realNumber](cfg *config.Config, ops *config.OperatorFile, handler slog.Handler) (evalFunc, error) {
	opts := commonOptions[T](cfg, handler)

	if ops != nil {
		table := make(rpn.Table[T], len(ops.Operators))
		for _, def := range ops.Operators {
			sopts := []starlark.FunctionalOption{
				starlark.WithName(def.Token),
				starlark.WithLogHandler(handler),
			}
			if def.Arity > 0 {
				sopts = append(sopts, starlark.WithArity(def.Arity))
			}
			op, err := starlark.New[T](def.Starlark, sopts...)
			if err != nil {
				return nil, fmt.Errorf("operator %q: %w", def.Token, err)
			}
			table[def.Token] = op
		}
		opts = append(opts, rpn.WithOperators(table), rpn.WithOverwrite[T](ops.Overwrite))
	}

	e, err := rpn.NewNumeric(opts...)
	if err != nil {
		return nil, err
	}
	return format(e), nil
}

func format[T any](e *rpn.Evaluator[T]) evalFunc {
	return func(expr string) (string, error) {
		v, err := e.Evaluate(expr)
		if err != nil {
			return "", err
		}
		return fmt.Sprint(v), nil
	}
}

func colorEnabled(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// run evaluates the configured expressions, or each non-blank line of stdin
// when there are none. Results go to stdout and failures to stderr.
func run(argv []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := config.Load(argv)
	if errors.Is(err, config.ErrHelp) {
		fmt.Fprint(stdout, config.Usage)
		return nil
	}
	if err != nil {
		fmt.Fprint(stderr, config.Usage)
		return err
	}

	level, _ := cfg.Level()
	handler := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler.WithGroup("rpn-cli"))
	logger.Debug("config loaded", "config", cfg.String())

	var ops *config.OperatorFile
	if cfg.OperatorFile != "" {
		ops, err = config.LoadOperatorFile(cfg.OperatorFile)
		if err != nil {
			return err
		}
	}

	eval, err := newEvalFunc(cfg, ops, handler)
	if err != nil {
		return fmt.Errorf("failed to create evaluator: %w", err)
	}

	red := color.New(color.FgRed)
	if colorEnabled(stderr) {
		red.EnableColor()
	} else {
		red.DisableColor()
	}

	failed := false
	evaluate := func(expr string) {
		result, err := eval(expr)
		if err != nil {
			failed = true
			red.Fprintf(stderr, "%s: %v\n", expr, err)
			return
		}
		fmt.Fprintln(stdout, result)
	}

	if len(cfg.Expressions) > 0 {
		for _, expr := range cfg.Expressions {
			evaluate(expr)
		}
	} else {
		scanner := bufio.NewScanner(stdin)
		scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
		for scanner.Scan() {
			line := scanner.Text()
			if strings.TrimSpace(line) == "" {
				continue
			}
			evaluate(line)
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
	}

	if failed {
		return errFailed
	}
	return nil
}

func main() {
	if err := run(os.Args, os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
