package rpn_test

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/robbyt/go-rpn"
)

func ExampleNewNumeric() {
	e, err := rpn.NewNumeric[float64]()
	if err != nil {
		panic(err)
	}

	v, err := e.Evaluate("2 3 *")
	if err != nil {
		panic(err)
	}
	fmt.Println(v)
	// Output: 6
}

func ExampleWithOperator() {
	e, err := rpn.NewNumeric(rpn.WithOperator("C", rpn.Unary(cmplx.Conj)))
	if err != nil {
		panic(err)
	}

	v, err := e.Evaluate("2+1j 7j * C")
	if err != nil {
		panic(err)
	}
	fmt.Println(v)
	// Output: (-7-14i)
}

func ExampleWithOverwrite() {
	pow := rpn.Binary(func(exp, base float64) float64 { return math.Pow(base, exp) })
	e, err := rpn.NewNumeric(
		rpn.WithOperators(rpn.Table[float64]{"^": pow}),
		rpn.WithOverwrite[float64](true),
	)
	if err != nil {
		panic(err)
	}

	fmt.Println(e.Operators())
	v, _ := e.Evaluate("2 10 ^")
	fmt.Println(v)

	_, err = e.Evaluate("2 10 +")
	fmt.Println(errors.Is(err, rpn.ErrConversion))
	// Output:
	// [^]
	// 1024
	// true
}

func ExampleEvaluator_Evaluate_errors() {
	e, err := rpn.NewNumeric[int]()
	if err != nil {
		panic(err)
	}

	_, err = e.Evaluate("4 +")
	var underflow *rpn.StackUnderflowError
	if errors.As(err, &underflow) {
		fmt.Println(underflow.Token, underflow.Position)
	}

	_, err = e.Evaluate("0 1 /")
	fmt.Println(errors.Is(err, rpn.ErrDivisionByZero))

	v, _ := e.Evaluate("1 2")
	fmt.Println(v)
	// Output:
	// + 1
	// true
	// 2
}
