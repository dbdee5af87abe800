package field

import "github.com/cockroachdb/apd/v3"

// decCtx is the arithmetic context the Dec operations run under.
// 34 digits matches IEEE decimal128.
var decCtx = apd.BaseContext.WithPrecision(34)

// Dec is an immutable decimal implementing [Exact], backed by
// cockroachdb/apd. Results are exact as long as they fit the context
// precision of 34 digits; beyond that the context rounds, so for
// bit-exact guarantees over unbounded values use [Rat]. The zero
// value is 0.
type Dec struct {
	d *apd.Decimal
}

// NewDec returns the decimal coeff × 10^exp.
func NewDec(coeff int64, exp int32) Dec {
	return Dec{apd.New(coeff, exp)}
}

// DecFromInt returns the decimal n.
func DecFromInt(n int64) Dec {
	return Dec{apd.New(n, 0)}
}

// ParseDec parses a decimal from its string form.
func ParseDec(s string) (Dec, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return Dec{}, err
	}
	return Dec{d}, nil
}

func (x Dec) dec() *apd.Decimal {
	if x.d == nil {
		return new(apd.Decimal)
	}
	return x.d
}

// Add returns x + y.
func (x Dec) Add(y Dec) Dec {
	var out apd.Decimal
	_, _ = decCtx.Add(&out, x.dec(), y.dec())
	return Dec{&out}
}

// Sub returns x - y.
func (x Dec) Sub(y Dec) Dec {
	var out apd.Decimal
	_, _ = decCtx.Sub(&out, x.dec(), y.dec())
	return Dec{&out}
}

// Mul returns x * y.
func (x Dec) Mul(y Dec) Dec {
	var out apd.Decimal
	_, _ = decCtx.Mul(&out, x.dec(), y.dec())
	return Dec{&out}
}

// Div returns x / y rounded to the context precision. Division by
// zero yields the context's NaN-like result rather than a panic; the
// Safe variants check first and never reach it.
func (x Dec) Div(y Dec) Dec {
	var out apd.Decimal
	_, _ = decCtx.Quo(&out, x.dec(), y.dec())
	return Dec{&out}
}

// Zero returns 0.
func (Dec) Zero() Dec { return Dec{} }

// One returns 1.
func (Dec) One() Dec { return Dec{apd.New(1, 0)} }

// Eq reports whether x and y denote the same number, regardless of
// exponent representation.
func (x Dec) Eq(y Dec) bool {
	return x.dec().Cmp(y.dec()) == 0
}

// String returns the decimal in its standard string form.
func (x Dec) String() string {
	return x.dec().String()
}
