package rattrig

import (
	"iter"

	"deedles.dev/xiter"
)

// EdgeQuadrances yields the quadrance of each consecutive pair of
// points in the sequence: a polyline of n points yields n-1
// quadrances.
func EdgeQuadrances[T Scalar](points iter.Seq[Point[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		var prev Point[T]
		first := true
		for p := range points {
			if !first && !yield(Quadrance(prev, p)) {
				return
			}
			prev, first = p, false
		}
	}
}

// VertexQuadrances yields the quadrance from the fixed point to each
// point of the sequence.
func VertexQuadrances[T Scalar](to Point[T], points iter.Seq[Point[T]]) iter.Seq[T] {
	return xiter.Map(points, func(p Point[T]) T {
		return Quadrance(to, p)
	})
}

// FanTwists yields the twist of each triangle in the fan spanned from
// origin over consecutive pairs of points. Summing the yielded values
// gives twice the signed area swept by the polyline as seen from
// origin; a zero element marks a degenerate fan triangle.
func FanTwists[T Signed](origin Point[T], points iter.Seq[Point[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		var prev Point[T]
		first := true
		for p := range points {
			if !first && !yield(Twist(origin, prev, p)) {
				return
			}
			prev, first = p, false
		}
	}
}

// PathQuadrance returns the sum of the edge quadrances of the
// polyline. Note that this is not the quadrance between the
// endpoints; quadrance is not additive along a path.
func PathQuadrance[T Scalar](points iter.Seq[Point[T]]) T {
	var total T
	for q := range EdgeQuadrances(points) {
		total += q
	}
	return total
}

// FillEdgeQuadrances fills qs with the leading edge quadrances of the
// polyline, stopping at whichever of the slice or the sequence runs
// out first, and returns the number of elements filled.
func FillEdgeQuadrances[T Scalar](qs []T, points iter.Seq[Point[T]]) int {
	n := 0
	for i, q := range xiter.Enumerate(EdgeQuadrances(points)) {
		if i >= len(qs) {
			break
		}
		qs[i] = q
		n++
	}
	return n
}
