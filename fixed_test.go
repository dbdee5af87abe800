package rattrig_test

import (
	"testing"

	"deedles.dev/rattrig"
	"github.com/stretchr/testify/require"
)

func TestArchimedesAnchorAllWidths(t *testing.T) {
	require.EqualValues(t, 8, rattrig.ArchimedesI32(1, 2, 3))
	require.EqualValues(t, 8, rattrig.ArchimedesI64(1, 2, 3))
	require.EqualValues(t, 8, rattrig.ArchimedesU32(1, 2, 3))
	require.EqualValues(t, 8, rattrig.ArchimedesU64(1, 2, 3))
	require.EqualValues(t, 8.0, rattrig.ArchimedesF64(1, 2, 3))
}

func TestQuadranceWidths(t *testing.T) {
	require.EqualValues(t, 25, rattrig.QuadranceI32(rattrig.Pt[int32](1, 1), rattrig.Pt[int32](4, 5)))
	require.EqualValues(t, 25, rattrig.QuadranceI64(rattrig.Pt[int64](1, 1), rattrig.Pt[int64](4, 5)))
	require.EqualValues(t, 25, rattrig.QuadranceU32(rattrig.Pt[uint32](1, 1), rattrig.Pt[uint32](4, 5)))
	require.EqualValues(t, 25, rattrig.QuadranceU64(rattrig.Pt[uint64](1, 1), rattrig.Pt[uint64](4, 5)))
	require.EqualValues(t, 25.0, rattrig.QuadranceF64(rattrig.Pt(1.0, 1.0), rattrig.Pt(4.0, 5.0)))
}

func TestCrossWidths(t *testing.T) {
	require.EqualValues(t, -1, rattrig.CrossI32(rattrig.Vec[int32](1, 1), rattrig.Vec[int32](1, 0)))
	require.EqualValues(t, -1, rattrig.CrossI64(rattrig.Vec[int64](1, 1), rattrig.Vec[int64](1, 0)))
	require.EqualValues(t, -1.0, rattrig.CrossF64(rattrig.Vec(1.0, 1.0), rattrig.Vec(1.0, 0.0)))
	require.EqualValues(t, 1, rattrig.AbsCrossU32(rattrig.Vec[uint32](1, 1), rattrig.Vec[uint32](1, 0)))
	require.EqualValues(t, 1, rattrig.AbsCrossU64(rattrig.Vec[uint64](1, 1), rattrig.Vec[uint64](1, 0)))
}

func TestSpreadWidths(t *testing.T) {
	require.Equal(t, 0.5, rattrig.SpreadF64(rattrig.Vec(1.0, 1.0), rattrig.Vec(1.0, 0.0)))

	// The integer widths keep the divergent truncating form.
	require.EqualValues(t, 2, rattrig.SpreadI32(rattrig.Vec[int32](1, 1), rattrig.Vec[int32](1, 0)))
	require.EqualValues(t, 2, rattrig.SpreadI64(rattrig.Vec[int64](1, 1), rattrig.Vec[int64](1, 0)))
	require.EqualValues(t, 2, rattrig.SpreadU32(rattrig.Vec[uint32](1, 1), rattrig.Vec[uint32](1, 0)))
	require.EqualValues(t, 2, rattrig.SpreadU64(rattrig.Vec[uint64](1, 1), rattrig.Vec[uint64](1, 0)))
}

func TestFixedMatchesGeneric(t *testing.T) {
	// The fixed-width entry points are instantiations of the generic
	// formulas; hold them to that.
	coords := [][4]int64{
		{1, 2, 3, 4},
		{1, 1, 4, 5},
		{-7, 2, 9, -3},
		{100, -250, -75, 80},
	}
	for _, c := range coords {
		p1 := rattrig.Pt(c[0], c[1])
		p2 := rattrig.Pt(c[2], c[3])
		require.Equal(t, rattrig.Quadrance(p1, p2), rattrig.QuadranceI64(p1, p2))

		v1, v2 := p1.Vec(), p2.Vec()
		require.Equal(t, rattrig.Cross(v1, v2), rattrig.CrossI64(v1, v2))
		require.Equal(t, rattrig.SpreadInt(v1, v2), rattrig.SpreadI64(v1, v2))
		require.Equal(t, rattrig.Archimedes(c[0], c[1], c[2]), rattrig.ArchimedesI64(c[0], c[1], c[2]))
	}
}
