//go:build go1.24

package rattrig_test

import (
	"testing"

	"deedles.dev/rattrig"
)

func BenchmarkQuadrance(b *testing.B) {
	p1, p2 := rattrig.Pt(1.0, 2.0), rattrig.Pt(4.0, 6.0)
	var q float64
	for b.Loop() {
		q = rattrig.Quadrance(p1, p2)
	}
	_ = q
}

func BenchmarkSpread(b *testing.B) {
	v1, v2 := rattrig.Vec(1.0, 2.0), rattrig.Vec(4.0, 6.0)
	var s float64
	for b.Loop() {
		s = rattrig.Spread(v1, v2)
	}
	_ = s
}

func BenchmarkArchimedes(b *testing.B) {
	var q float64
	for b.Loop() {
		q = rattrig.Archimedes(25.0, 16.0, 9.0)
	}
	_ = q
}
