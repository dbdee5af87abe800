package field

import "math/big"

// Rat is an immutable exact rational implementing [Exact]. Unlike
// *big.Rat it has value semantics: every operation returns a fresh
// value and never mutates an operand, so results of the formulas over
// Rat are bit-exact and safe to share. The zero value is 0.
type Rat struct {
	r *big.Rat
}

// NewRat returns the rational num/den. It panics if den is zero, like
// big.NewRat.
func NewRat(num, den int64) Rat {
	return Rat{big.NewRat(num, den)}
}

// RatFromInt returns the rational n/1.
func RatFromInt(n int64) Rat {
	return Rat{big.NewRat(n, 1)}
}

func (x Rat) rat() *big.Rat {
	if x.r == nil {
		return new(big.Rat)
	}
	return x.r
}

// Add returns x + y.
func (x Rat) Add(y Rat) Rat {
	return Rat{new(big.Rat).Add(x.rat(), y.rat())}
}

// Sub returns x - y.
func (x Rat) Sub(y Rat) Rat {
	return Rat{new(big.Rat).Sub(x.rat(), y.rat())}
}

// Mul returns x * y.
func (x Rat) Mul(y Rat) Rat {
	return Rat{new(big.Rat).Mul(x.rat(), y.rat())}
}

// Div returns x / y. It panics if y is zero, which is the type's own
// division semantics surfacing through the unchecked formulas.
func (x Rat) Div(y Rat) Rat {
	return Rat{new(big.Rat).Quo(x.rat(), y.rat())}
}

// Zero returns 0.
func (Rat) Zero() Rat { return Rat{} }

// One returns 1.
func (Rat) One() Rat { return Rat{big.NewRat(1, 1)} }

// Eq reports whether x and y denote the same rational.
func (x Rat) Eq(y Rat) bool {
	return x.rat().Cmp(y.rat()) == 0
}

// Cmp compares x and y, returning -1, 0, or +1.
func (x Rat) Cmp(y Rat) int {
	return x.rat().Cmp(y.rat())
}

// String returns the rational as num/den, or as an integer when the
// denominator is 1.
func (x Rat) String() string {
	return x.rat().RatString()
}
