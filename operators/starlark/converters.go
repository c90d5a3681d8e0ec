package starlark

import (
	"fmt"
	"reflect"

	starlarkLib "go.starlark.net/starlark"
)

// Real is satisfied by the Go integer and float types that map onto Starlark's
// int and float.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

func convertToStarlarkValue[T Real](v T) starlarkLib.Value {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return starlarkLib.MakeInt64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return starlarkLib.MakeUint64(rv.Uint())
	default:
		return starlarkLib.Float(rv.Float())
	}
}

// convertFromStarlarkValue converts a call result back to T. Starlark ints fit
// any T they do not overflow; floats are only accepted for float kinds, since
// Starlark's / always yields a float and silently truncating it would hide
// that.
func convertFromStarlarkValue[T Real](v starlarkLib.Value) (T, error) {
	var out T
	rv := reflect.ValueOf(&out).Elem()

	switch val := v.(type) {
	case starlarkLib.Int:
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			n, ok := val.Int64()
			if !ok || rv.OverflowInt(n) {
				return out, fmt.Errorf("%w: %s overflows %T", ErrResultType, val, out)
			}
			rv.SetInt(n)
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			n, ok := val.Uint64()
			if !ok || rv.OverflowUint(n) {
				return out, fmt.Errorf("%w: %s overflows %T", ErrResultType, val, out)
			}
			rv.SetUint(n)
		default:
			rv.SetFloat(float64(val.Float()))
		}
		return out, nil
	case starlarkLib.Float:
		if k := rv.Kind(); k != reflect.Float32 && k != reflect.Float64 {
			return out, fmt.Errorf("%w: float %s for %T operand", ErrResultType, val, out)
		}
		rv.SetFloat(float64(val))
		return out, nil
	case nil:
		return out, fmt.Errorf("%w: nil", ErrResultType)
	default:
		return out, fmt.Errorf("%w: %s", ErrResultType, v.Type())
	}
}
