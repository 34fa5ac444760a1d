package solver

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clp-framework/clp/pkg/clp"
)

func lit(v int64) clp.IntExpr {
	return clp.IntLit{Value: clp.NewInt(v)}
}

func TestSampleBoolDomains(t *testing.T) {
	type tc struct {
		Name     string
		Domain   clp.Domain
		Expected clp.AssignedValue
		OK       bool
	}

	for _, tt := range []tc{
		{Name: "universe picks false", Domain: clp.BoolUniverse{}, Expected: clp.False, OK: true},
		{Name: "empty has no value", Domain: clp.BoolEmpty{}},
		{Name: "single true", Domain: clp.BoolSingle{Value: clp.True}, Expected: clp.True, OK: true},
		{Name: "single false", Domain: clp.BoolSingle{Value: clp.False}, Expected: clp.False, OK: true},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			v, ok := sampleDomain(tt.Domain)
			assert.Equal(t, tt.OK, ok)
			if tt.OK {
				assert.Equal(t, tt.Expected, v)
			}
		})
	}
}

func TestSampleIntDomains(t *testing.T) {
	type tc struct {
		Name     string
		Domain   clp.IntDomain
		Expected int64
		Fail     bool
	}

	for _, tt := range []tc{
		{Name: "universe picks zero", Domain: clp.IntUniverse{}},
		{Name: "empty fails", Domain: clp.IntEmpty{}, Fail: true},
		{Name: "closed range picks low", Domain: clp.ClosedRange{Low: lit(3), High: lit(9)}, Expected: 3},
		{Name: "closed range single point", Domain: clp.ClosedRange{Low: lit(4), High: lit(4)}, Expected: 4},
		{Name: "closed range inverted fails", Domain: clp.ClosedRange{Low: lit(9), High: lit(3)}, Fail: true},
		{Name: "open range skips low bound", Domain: clp.OpenRange{Low: lit(3), High: lit(9)}, Expected: 4},
		{Name: "open range empty interior fails", Domain: clp.OpenRange{Low: lit(3), High: lit(4)}, Fail: true},
		{Name: "open closed range", Domain: clp.OpenClosedRange{Low: lit(3), High: lit(4)}, Expected: 4},
		{Name: "closed open range", Domain: clp.ClosedOpenRange{Low: lit(3), High: lit(4)}, Expected: 3},
		{Name: "closed open empty fails", Domain: clp.ClosedOpenRange{Low: lit(3), High: lit(3)}, Fail: true},
		{Name: "bounds are expressions", Domain: clp.ClosedRange{Low: clp.IntAdd{A: lit(2), B: lit(3)}, High: lit(9)}, Expected: 5},
		{Name: "nan bound fails", Domain: clp.ClosedRange{Low: clp.IntDivide{A: lit(1), B: lit(0)}, High: lit(9)}, Fail: true},
		{Name: "free variable bound fails", Domain: clp.ClosedRange{Low: clp.IntVar{Name: "x"}, High: lit(9)}, Fail: true},
		{Name: "explicit set picks first", Domain: clp.ExplicitSet{Elements: []clp.IntExpr{lit(7), lit(2)}}, Expected: 7},
		{Name: "explicit set skips nan element", Domain: clp.ExplicitSet{Elements: []clp.IntExpr{clp.IntModulo{A: lit(1), B: lit(0)}, lit(2)}}, Expected: 2},
		{Name: "explicit set all nan fails", Domain: clp.ExplicitSet{Elements: []clp.IntExpr{clp.IntDivide{A: lit(1), B: lit(0)}}}, Fail: true},
		{Name: "union prefers left", Domain: clp.Union{A: clp.ClosedRange{Low: lit(8), High: lit(9)}, B: lit0Set()}, Expected: 8},
		{Name: "union falls back to right", Domain: clp.Union{A: clp.IntEmpty{}, B: lit0Set()}, Expected: 0},
		{Name: "intersection keeps left sample", Domain: clp.Intersection{A: clp.ClosedRange{Low: lit(3), High: lit(9)}, B: clp.ClosedRange{Low: lit(1), High: lit(5)}}, Expected: 3},
		{Name: "intersection resamples right", Domain: clp.Intersection{A: clp.ClosedRange{Low: lit(1), High: lit(9)}, B: clp.ClosedRange{Low: lit(5), High: lit(6)}}, Expected: 5},
		{Name: "intersection disjoint fails", Domain: clp.Intersection{A: clp.ClosedRange{Low: lit(1), High: lit(2)}, B: clp.ClosedRange{Low: lit(5), High: lit(6)}}, Fail: true},
		{Name: "difference keeps survivor", Domain: clp.Difference{A: clp.ClosedRange{Low: lit(3), High: lit(9)}, B: clp.ClosedRange{Low: lit(5), High: lit(9)}}, Expected: 3},
		{Name: "difference rejects member", Domain: clp.Difference{A: clp.ClosedRange{Low: lit(3), High: lit(9)}, B: clp.ClosedRange{Low: lit(3), High: lit(5)}}, Fail: true},
		{Name: "complement probes past excluded prefix", Domain: clp.Complement{X: clp.ClosedRange{Low: lit(math.MinInt64), High: lit(math.MinInt64 + 9)}}, Expected: math.MinInt64 + 10},
		{Name: "complement of point set", Domain: clp.Complement{X: clp.ExplicitSet{Elements: []clp.IntExpr{lit(0)}}}, Expected: math.MinInt64},
		{Name: "complement exhausts probe budget", Domain: clp.Complement{X: clp.IntUniverse{}}, Fail: true},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			v, ok := sampleInt(tt.Domain)
			if tt.Fail {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, clp.NewInt(tt.Expected), v)
		})
	}
}

func lit0Set() clp.IntDomain {
	return clp.ExplicitSet{Elements: []clp.IntExpr{lit(0)}}
}

// Every successful sample must be a member of the sampled domain.
func TestSampleMembership(t *testing.T) {
	domains := []clp.IntDomain{
		clp.IntUniverse{},
		clp.ClosedRange{Low: lit(-4), High: lit(4)},
		clp.OpenRange{Low: lit(-4), High: lit(4)},
		clp.OpenClosedRange{Low: lit(-4), High: lit(4)},
		clp.ClosedOpenRange{Low: lit(-4), High: lit(4)},
		clp.ExplicitSet{Elements: []clp.IntExpr{lit(2), lit(3)}},
		clp.Union{A: clp.ClosedRange{Low: lit(1), High: lit(2)}, B: clp.ClosedRange{Low: lit(8), High: lit(9)}},
		clp.Intersection{A: clp.ClosedRange{Low: lit(0), High: lit(9)}, B: clp.ClosedRange{Low: lit(5), High: lit(20)}},
		clp.Difference{A: clp.ClosedRange{Low: lit(0), High: lit(9)}, B: clp.ClosedRange{Low: lit(5), High: lit(9)}},
		clp.Complement{X: clp.ClosedRange{Low: lit(math.MinInt64), High: lit(0)}},
	}
	for _, d := range domains {
		v, ok := sampleInt(d)
		require.True(t, ok, "domain %#v should sample", d)
		m, mok := member(v, d)
		require.True(t, mok)
		assert.True(t, m, "sample %s of %#v must be a member", v, d)
	}
}

// Union accepts exactly the values of either side, Intersection
// exactly both, and double Complement restores membership, over a
// finite probing window.
func TestSetAlgebraLaws(t *testing.T) {
	a := clp.ClosedRange{Low: lit(-3), High: lit(4)}
	b := clp.ExplicitSet{Elements: []clp.IntExpr{lit(2), lit(6)}}
	for v := int64(-10); v <= 10; v++ {
		n := clp.NewInt(v)
		inA, _ := member(n, a)
		inB, _ := member(n, b)

		got, _ := member(n, clp.Union{A: a, B: b})
		assert.Equal(t, inA || inB, got, "union at %d", v)

		got, _ = member(n, clp.Intersection{A: a, B: b})
		assert.Equal(t, inA && inB, got, "intersection at %d", v)

		got, _ = member(n, clp.Difference{A: a, B: b})
		assert.Equal(t, inA && !inB, got, "difference at %d", v)

		got, _ = member(n, clp.Complement{X: clp.Complement{X: a}})
		assert.Equal(t, inA, got, "double complement at %d", v)
	}
}

func TestNaNIsMemberOfNothing(t *testing.T) {
	domains := []clp.IntDomain{
		clp.IntUniverse{},
		clp.ClosedRange{Low: lit(math.MinInt64), High: lit(math.MaxInt64)},
		clp.Complement{X: clp.IntEmpty{}},
		clp.Complement{X: clp.ExplicitSet{Elements: []clp.IntExpr{lit(0)}}},
	}
	for _, d := range domains {
		m, ok := member(clp.NaN(), d)
		assert.True(t, ok)
		assert.False(t, m, "NaN must not inhabit %#v", d)
	}
}
