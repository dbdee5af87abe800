// Package rattrig implements rational trigonometry: planar and
// spatial geometric relationships computed with the four arithmetic
// operations only. Instead of distances and angles it works with
// their squares — quadrance and spread — so no square roots or
// transcendental functions are ever involved and results are exact
// over exact numeric domains.
//
// The formulas in this package are constraint generics over the
// machine scalar types. The field subpackage defines the same
// formulas once against an algebraic capability interface for exact
// rationals, exact decimals, and any other caller-supplied numeric
// type.
//
// Every function is pure and safe for unrestricted concurrent use.
package rattrig

import "golang.org/x/exp/constraints"

// Scalar is a constraint for the types that rattrig types and
// functions can handle.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Signed is a constraint for the scalar types that can represent
// orientation. The orientation-sensitive formulas, such as [Cross]
// and [Twist], require it; unsigned domains are excluded from them at
// compile time instead of silently losing the sign, and use
// [AbsCross] instead.
type Signed interface {
	constraints.Signed | constraints.Float
}

// Integer is a constraint for any integer type, signed or unsigned.
type Integer interface {
	constraints.Integer
}

// Float is a constraint for the floating point types.
type Float interface {
	constraints.Float
}

// absDiff returns |a-b|. Subtracting the smaller operand from the
// larger keeps the result well-defined for unsigned types, and every
// use in this package squares it, so the lost sign never matters.
func absDiff[T Scalar](a, b T) T {
	if a < b {
		return b - a
	}
	return a - b
}
