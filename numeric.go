package rpn

import (
	"reflect"
	"strconv"
	"strings"
)

// Numeric is satisfied by every Go integer, floating point and complex type.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

// DefaultOperators returns a new table holding the built-in operators:
//
//	"+"  add
//	"-"  subtract
//	"*"  multiply
//	"x"  multiply
//	"/"  divide
//
// Each is binary and receives its operands in pop order, so "2 3 -" is 3-2
// and "6 3 /" is 3/6. Dividing by a zero second operand returns
// ErrDivisionByZero instead of panicking or producing Inf/NaN.
func DefaultOperators[T Numeric]() Table[T] {
	mul := Binary(func(a, b T) T { return a * b })
	return Table[T]{
		"+": Binary(func(a, b T) T { return a + b }),
		"-": Binary(func(a, b T) T { return a - b }),
		"*": mul,
		"x": mul,
		"/": Nary(2, func(args ...T) (T, error) {
			var zero T
			if args[1] == zero {
				return zero, ErrDivisionByZero
			}
			return args[0] / args[1], nil
		}),
	}
}

// ParseInt converts a base 10 integer token. It is the converter used when no
// other is configured for int evaluators.
func ParseInt(token string) (int, error) {
	return strconv.Atoi(token)
}

// ParseFloat converts a float64 token.
func ParseFloat(token string) (float64, error) {
	return strconv.ParseFloat(token, 64)
}

// ParseComplex converts a complex128 token. Besides Go's own syntax ("2+1i",
// "(0+4i)") it accepts Python's j or J for the imaginary unit ("2+1j", "7J",
// "-j").
func ParseComplex(token string) (complex128, error) {
	return strconv.ParseComplex(imaginaryJ(token), 128)
}

// imaginaryJ rewrites a Python style imaginary suffix (j or J, optionally
// inside parentheses) to Go's i. A unit with no coefficient ("j", "-j",
// "2+J") gets an explicit 1.
func imaginaryJ(token string) string {
	body, closing := token, ""
	if s, ok := strings.CutSuffix(body, ")"); ok {
		body, closing = s, ")"
	}
	if !strings.HasSuffix(body, "j") && !strings.HasSuffix(body, "J") {
		return token
	}
	body = body[:len(body)-1]

	coefficient := strings.TrimPrefix(body, "(")
	if coefficient == "" {
		body += "1"
	} else if last := coefficient[len(coefficient)-1]; last == '+' || last == '-' {
		if len(coefficient) < 2 || (coefficient[len(coefficient)-2] != 'e' && coefficient[len(coefficient)-2] != 'E') {
			body += "1"
		}
	}
	return body + "i" + closing
}

// NumericConverter returns a converter for T chosen by its kind: base 10
// integers for signed and unsigned kinds, ParseFloat for floats and
// ParseComplex (with j support) for complex kinds. Values that overflow T are
// rejected.
func NumericConverter[T Numeric]() Converter[T] {
	var zero T
	typ := reflect.TypeOf(zero)
	bits := typ.Bits()

	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(token string) (T, error) {
			var v T
			n, err := strconv.ParseInt(token, 10, bits)
			if err != nil {
				return v, err
			}
			reflect.ValueOf(&v).Elem().SetInt(n)
			return v, nil
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(token string) (T, error) {
			var v T
			n, err := strconv.ParseUint(token, 10, bits)
			if err != nil {
				return v, err
			}
			reflect.ValueOf(&v).Elem().SetUint(n)
			return v, nil
		}
	case reflect.Float32, reflect.Float64:
		return func(token string) (T, error) {
			var v T
			f, err := strconv.ParseFloat(token, bits)
			if err != nil {
				return v, err
			}
			reflect.ValueOf(&v).Elem().SetFloat(f)
			return v, nil
		}
	default:
		return func(token string) (T, error) {
			var v T
			c, err := strconv.ParseComplex(imaginaryJ(token), bits)
			if err != nil {
				return v, err
			}
			reflect.ValueOf(&v).Elem().SetComplex(c)
			return v, nil
		}
	}
}
