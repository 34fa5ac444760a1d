package solver

import (
	"math"

	"github.com/clp-framework/clp/pkg/clp"
)

// probeBudget bounds upward probing when sampling a complement, so
// every sample terminates within the representable integer width.
const probeBudget = 4096

// sampleDomain deterministically picks one representative value of a
// domain, or reports that none is reachable: the domain is empty, a
// bound did not reduce to a concrete number, or the probe budget ran
// out.
func sampleDomain(d clp.Domain) (clp.AssignedValue, bool) {
	switch d := d.(type) {
	case clp.BoolDomain:
		return sampleBool(d)
	case clp.IntDomain:
		v, ok := sampleInt(d)
		if !ok {
			return nil, false
		}
		return v, true
	}
	return nil, false
}

func sampleBool(d clp.BoolDomain) (clp.AssignedValue, bool) {
	switch d := d.(type) {
	case clp.BoolUniverse:
		return clp.False, true
	case clp.BoolEmpty:
		return nil, false
	case clp.BoolSingle:
		return d.Value, true
	}
	return nil, false
}

// evalBound evaluates a range bound. Bounds that keep a free variable
// or evaluate to NaN fail the sample.
func evalBound(e clp.IntExpr) (clp.IntegerNumber, bool) {
	v, ok := evalInt(e)
	if !ok || v.IsNaN() {
		return clp.NaN(), false
	}
	return v, true
}

func sampleInt(d clp.IntDomain) (clp.IntegerNumber, bool) {
	switch d := d.(type) {
	case clp.IntUniverse:
		return clp.NewInt(0), true
	case clp.IntEmpty:
		return clp.NaN(), false
	case clp.ClosedRange:
		lo, lok := evalBound(d.Low)
		hi, hok := evalBound(d.High)
		if !lok || !hok || !leInt(lo, hi) {
			return clp.NaN(), false
		}
		return lo, true
	case clp.OpenRange:
		lo, lok := evalBound(d.Low)
		hi, hok := evalBound(d.High)
		next := addInt(lo, clp.NewInt(1))
		if !lok || !hok || !ltInt(next, hi) {
			return clp.NaN(), false
		}
		return next, true
	case clp.OpenClosedRange:
		lo, lok := evalBound(d.Low)
		hi, hok := evalBound(d.High)
		next := addInt(lo, clp.NewInt(1))
		if !lok || !hok || !leInt(next, hi) {
			return clp.NaN(), false
		}
		return next, true
	case clp.ClosedOpenRange:
		lo, lok := evalBound(d.Low)
		hi, hok := evalBound(d.High)
		if !lok || !hok || !ltInt(lo, hi) {
			return clp.NaN(), false
		}
		return lo, true
	case clp.ExplicitSet:
		for _, e := range d.Elements {
			v, ok := evalInt(e)
			if !ok {
				return clp.NaN(), false
			}
			if !v.IsNaN() {
				return v, true
			}
		}
		return clp.NaN(), false
	case clp.Union:
		if v, ok := sampleInt(d.A); ok {
			return v, true
		}
		return sampleInt(d.B)
	case clp.Intersection:
		if v, ok := sampleInt(d.A); ok {
			if m, mok := member(v, d.B); mok && m {
				return v, true
			}
		}
		if v, ok := sampleInt(d.B); ok {
			if m, mok := member(v, d.A); mok && m {
				return v, true
			}
		}
		return clp.NaN(), false
	case clp.Difference:
		v, ok := sampleInt(d.A)
		if !ok {
			return clp.NaN(), false
		}
		if m, mok := member(v, d.B); !mok || m {
			return clp.NaN(), false
		}
		return v, true
	case clp.Complement:
		probe := int64(math.MinInt64)
		for i := 0; i < probeBudget; i++ {
			v := clp.NewInt(probe)
			m, ok := member(v, d.X)
			if !ok {
				return clp.NaN(), false
			}
			if !m {
				return v, true
			}
			if probe == math.MaxInt64 {
				break
			}
			probe++
		}
		return clp.NaN(), false
	}
	return clp.NaN(), false
}
