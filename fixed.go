package rattrig

// Fixed-width entry points. Each is a mechanical instantiation of the
// generic formula for one concrete scalar width, so callers that pin
// a representation get a monomorphic function, and so the tests can
// hold every width to the same regression anchors.
//
// SpreadInt is the one exception: the integer widths share a
// deliberately divergent spread, documented below.

// SpreadInt is the integer rendition of [Spread]. It evaluates
// q1·q2 - dot²/(q1·q2) with the type's truncating division, which is
// not the unit-bounded spread: for the vectors (1, 1) and (1, 0) it
// returns 2 where the exact spread is 1/2. The divergence is kept for
// compatibility; integer callers wanting the exact value should go
// through the field subpackage's rationals.
func SpreadInt[T Integer](v1, v2 Vector[T]) T {
	d := Dot(v1, v2)
	q := v1.Quadrance() * v2.Quadrance()
	return q - d*d/q
}

// QuadranceI32 is [Quadrance] pinned to int32.
func QuadranceI32(p1, p2 Point[int32]) int32 { return Quadrance(p1, p2) }

// QuadranceI64 is [Quadrance] pinned to int64.
func QuadranceI64(p1, p2 Point[int64]) int64 { return Quadrance(p1, p2) }

// QuadranceU32 is [Quadrance] pinned to uint32.
func QuadranceU32(p1, p2 Point[uint32]) uint32 { return Quadrance(p1, p2) }

// QuadranceU64 is [Quadrance] pinned to uint64.
func QuadranceU64(p1, p2 Point[uint64]) uint64 { return Quadrance(p1, p2) }

// QuadranceF64 is [Quadrance] pinned to float64.
func QuadranceF64(p1, p2 Point[float64]) float64 { return Quadrance(p1, p2) }

// CrossI32 is [Cross] pinned to int32.
func CrossI32(v1, v2 Vector[int32]) int32 { return Cross(v1, v2) }

// CrossI64 is [Cross] pinned to int64.
func CrossI64(v1, v2 Vector[int64]) int64 { return Cross(v1, v2) }

// CrossF64 is [Cross] pinned to float64.
func CrossF64(v1, v2 Vector[float64]) float64 { return Cross(v1, v2) }

// AbsCrossU32 is [AbsCross] pinned to uint32.
func AbsCrossU32(v1, v2 Vector[uint32]) uint32 { return AbsCross(v1, v2) }

// AbsCrossU64 is [AbsCross] pinned to uint64.
func AbsCrossU64(v1, v2 Vector[uint64]) uint64 { return AbsCross(v1, v2) }

// SpreadF64 is [Spread] pinned to float64.
func SpreadF64(v1, v2 Vector[float64]) float64 { return Spread(v1, v2) }

// SpreadI32 is [SpreadInt] pinned to int32.
func SpreadI32(v1, v2 Vector[int32]) int32 { return SpreadInt(v1, v2) }

// SpreadI64 is [SpreadInt] pinned to int64.
func SpreadI64(v1, v2 Vector[int64]) int64 { return SpreadInt(v1, v2) }

// SpreadU32 is [SpreadInt] pinned to uint32.
func SpreadU32(v1, v2 Vector[uint32]) uint32 { return SpreadInt(v1, v2) }

// SpreadU64 is [SpreadInt] pinned to uint64.
func SpreadU64(v1, v2 Vector[uint64]) uint64 { return SpreadInt(v1, v2) }

// ArchimedesI32 is [Archimedes] pinned to int32.
func ArchimedesI32(q1, q2, q3 int32) int32 { return Archimedes(q1, q2, q3) }

// ArchimedesI64 is [Archimedes] pinned to int64.
func ArchimedesI64(q1, q2, q3 int64) int64 { return Archimedes(q1, q2, q3) }

// ArchimedesU32 is [Archimedes] pinned to uint32.
func ArchimedesU32(q1, q2, q3 uint32) uint32 { return Archimedes(q1, q2, q3) }

// ArchimedesU64 is [Archimedes] pinned to uint64.
func ArchimedesU64(q1, q2, q3 uint64) uint64 { return Archimedes(q1, q2, q3) }

// ArchimedesF64 is [Archimedes] pinned to float64.
func ArchimedesF64(q1, q2, q3 float64) float64 { return Archimedes(q1, q2, q3) }
