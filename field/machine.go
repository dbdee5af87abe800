package field

// Int64 adapts int64 to the capability interfaces. It exists mainly
// so the capability path can be held numerically equivalent to the
// root package's constraint generics; plain integer callers are
// better served by the root package directly.
type Int64 int64

// Add returns x + y.
func (x Int64) Add(y Int64) Int64 { return x + y }

// Sub returns x - y.
func (x Int64) Sub(y Int64) Int64 { return x - y }

// Mul returns x * y.
func (x Int64) Mul(y Int64) Int64 { return x * y }

// Div returns x / y with Go's truncating integer division, panicking
// on a zero divisor.
func (x Int64) Div(y Int64) Int64 { return x / y }

// Zero returns 0.
func (Int64) Zero() Int64 { return 0 }

// One returns 1.
func (Int64) One() Int64 { return 1 }

// Eq reports whether x == y.
func (x Int64) Eq(y Int64) bool { return x == y }

// Float64 adapts float64 to the capability interfaces.
type Float64 float64

// Add returns x + y.
func (x Float64) Add(y Float64) Float64 { return x + y }

// Sub returns x - y.
func (x Float64) Sub(y Float64) Float64 { return x - y }

// Mul returns x * y.
func (x Float64) Mul(y Float64) Float64 { return x * y }

// Div returns x / y with IEEE semantics: a zero divisor produces an
// infinity or NaN.
func (x Float64) Div(y Float64) Float64 { return x / y }

// Zero returns 0.
func (Float64) Zero() Float64 { return 0 }

// One returns 1.
func (Float64) One() Float64 { return 1 }

// Eq reports whether x == y.
func (x Float64) Eq(y Float64) bool { return x == y }
