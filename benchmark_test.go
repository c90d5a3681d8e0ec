package rpn

import (
	"strings"
	"testing"
)

func BenchmarkEvaluate(b *testing.B) {
	e, err := NewNumeric[float64]()
	if err != nil {
		b.Fatal(err)
	}

	b.Run("short", func(b *testing.B) {
		for b.Loop() {
			if _, err := e.Evaluate("4 2 5 * + 1 3 2 * + /"); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("long", func(b *testing.B) {
		expr := "1" + strings.Repeat(" 1 +", 1000)
		for b.Loop() {
			if _, err := e.Evaluate(expr); err != nil {
				b.Fatal(err)
			}
		}
	})
}
