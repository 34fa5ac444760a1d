package solver

import (
	"math"

	"github.com/clp-framework/clp/pkg/clp"
)

// Checked 64-bit arithmetic over NaN-extended integers. Any operand
// that is NaN, any division or modulo by zero, and any result outside
// the representable range yields NaN.

func addInt(a, b clp.IntegerNumber) clp.IntegerNumber {
	if a.IsNaN() || b.IsNaN() {
		return clp.NaN()
	}
	x, y := a.Int64(), b.Int64()
	sum := x + y
	if (x > 0 && y > 0 && sum < 0) || (x < 0 && y < 0 && sum >= 0) {
		return clp.NaN()
	}
	return clp.NewInt(sum)
}

func subInt(a, b clp.IntegerNumber) clp.IntegerNumber {
	if a.IsNaN() || b.IsNaN() {
		return clp.NaN()
	}
	x, y := a.Int64(), b.Int64()
	if (y > 0 && x < math.MinInt64+y) || (y < 0 && x > math.MaxInt64+y) {
		return clp.NaN()
	}
	return clp.NewInt(x - y)
}

func mulInt(a, b clp.IntegerNumber) clp.IntegerNumber {
	if a.IsNaN() || b.IsNaN() {
		return clp.NaN()
	}
	x, y := a.Int64(), b.Int64()
	if x == 0 || y == 0 {
		return clp.NewInt(0)
	}
	p := x * y
	if p/y != x || (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64) {
		return clp.NaN()
	}
	return clp.NewInt(p)
}

func divInt(a, b clp.IntegerNumber) clp.IntegerNumber {
	if a.IsNaN() || b.IsNaN() || b.Int64() == 0 {
		return clp.NaN()
	}
	if a.Int64() == math.MinInt64 && b.Int64() == -1 {
		return clp.NaN()
	}
	return clp.NewInt(a.Int64() / b.Int64())
}

func modInt(a, b clp.IntegerNumber) clp.IntegerNumber {
	if a.IsNaN() || b.IsNaN() || b.Int64() == 0 {
		return clp.NaN()
	}
	if a.Int64() == math.MinInt64 && b.Int64() == -1 {
		return clp.NewInt(0)
	}
	return clp.NewInt(a.Int64() % b.Int64())
}

func negInt(a clp.IntegerNumber) clp.IntegerNumber {
	if a.IsNaN() || a.Int64() == math.MinInt64 {
		return clp.NaN()
	}
	return clp.NewInt(-a.Int64())
}

// Ordered comparisons. NaN is never ordered, so every comparison
// against it is false.

func ltInt(a, b clp.IntegerNumber) bool {
	if a.IsNaN() || b.IsNaN() {
		return false
	}
	return a.Int64() < b.Int64()
}

func leInt(a, b clp.IntegerNumber) bool {
	if a.IsNaN() || b.IsNaN() {
		return false
	}
	return a.Int64() <= b.Int64()
}

func gtInt(a, b clp.IntegerNumber) bool {
	return ltInt(b, a)
}
