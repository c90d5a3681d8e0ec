package starlark

import (
	"maps"

	starlarkMath "go.starlark.net/lib/math"
	starlarkLib "go.starlark.net/starlark"
)

const namespaceMath = "math"

// predeclared returns a copy of the Starlark universe plus the math module.
func predeclared() starlarkLib.StringDict {
	universe := maps.Clone(starlarkLib.Universe)
	universe[namespaceMath] = starlarkMath.Module
	return universe
}
