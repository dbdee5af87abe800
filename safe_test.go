package rattrig_test

import (
	"testing"

	"deedles.dev/rattrig"
	"github.com/stretchr/testify/require"
)

func TestSafeSpread(t *testing.T) {
	s, err := rattrig.SafeSpread(rattrig.Vec(1.0, 1.0), rattrig.Vec(1.0, 0.0))
	require.NoError(t, err)
	require.Equal(t, 0.5, s)

	// A zero vector is a fault, never a silent zero.
	_, err = rattrig.SafeSpread(rattrig.Vec(0.0, 0.0), rattrig.Vec(1.0, 0.0))
	require.ErrorIs(t, err, rattrig.ErrDivisionByZero)
	_, err = rattrig.SafeSpread(rattrig.Vec(1.0, 0.0), rattrig.Vec(0.0, 0.0))
	require.ErrorIs(t, err, rattrig.ErrDivisionByZero)

	// Integer domains get the fault too, where the unchecked
	// variant would panic.
	_, err = rattrig.SafeSpread(rattrig.Vec(0, 0), rattrig.Vec(1, 2))
	require.ErrorIs(t, err, rattrig.ErrDivisionByZero)
}

func TestSafeSpread3(t *testing.T) {
	s, err := rattrig.SafeSpread3(rattrig.V3(1.0, 1.0, 0.0), rattrig.V3(1.0, 0.0, 0.0))
	require.NoError(t, err)
	require.Equal(t, 0.5, s)

	_, err = rattrig.SafeSpread3(rattrig.V3(0.0, 0.0, 0.0), rattrig.V3(1.0, 0.0, 0.0))
	require.ErrorIs(t, err, rattrig.ErrDivisionByZero)
}

func TestSafeSpreads(t *testing.T) {
	s1, s2, s3, err := rattrig.SafeSpreads(rattrig.Pt(0.0, 0.0), rattrig.Pt(3.0, 0.0), rattrig.Pt(0.0, 4.0))
	require.NoError(t, err)
	e1, e2, e3 := rattrig.Spreads(rattrig.Pt(0.0, 0.0), rattrig.Pt(3.0, 0.0), rattrig.Pt(0.0, 4.0))
	require.Equal(t, e1, s1)
	require.Equal(t, e2, s2)
	require.Equal(t, e3, s3)

	// Coincident points give a zero side quadrance.
	_, _, _, err = rattrig.SafeSpreads(rattrig.Pt(1.0, 1.0), rattrig.Pt(1.0, 1.0), rattrig.Pt(0.0, 4.0))
	require.ErrorIs(t, err, rattrig.ErrDivisionByZero)
}

func TestSafeLineQuadrance(t *testing.T) {
	q, err := rattrig.SafeLineQuadrance(rattrig.Pt(1.0, 1.0), rattrig.Ln(1.0, 1.0, 1.0))
	require.NoError(t, err)
	require.Equal(t, 4.5, q)

	_, err = rattrig.SafeLineQuadrance(rattrig.Pt(1.0, 1.0), rattrig.Ln(0.0, 0.0, 1.0))
	require.ErrorIs(t, err, rattrig.ErrDivisionByZero)
}

func TestSafeLineSpread(t *testing.T) {
	s, err := rattrig.SafeLineSpread(rattrig.Ln(1.0, 1.0, 1.0), rattrig.Ln(1.0, 0.0, 0.0))
	require.NoError(t, err)
	require.Equal(t, 0.5, s)

	_, err = rattrig.SafeLineSpread(rattrig.Ln(0.0, 0.0, 3.0), rattrig.Ln(1.0, 0.0, 0.0))
	require.ErrorIs(t, err, rattrig.ErrDivisionByZero)
}

func TestSafeDilatation(t *testing.T) {
	d, err := rattrig.SafeDilatation(rattrig.Vec(1.0, 2.0), rattrig.Vec(2.0, 4.0))
	require.NoError(t, err)
	require.Equal(t, 4.0, d)

	// The unchecked variant returns zero here; the checked one
	// reports the fault.
	_, err = rattrig.SafeDilatation(rattrig.Vec(0.0, 0.0), rattrig.Vec(3.0, 4.0))
	require.ErrorIs(t, err, rattrig.ErrDivisionByZero)
}

func TestSafeCosineLaw(t *testing.T) {
	s, err := rattrig.SafeCosineLaw(25.0, 16.0, 9.0)
	require.NoError(t, err)
	require.Equal(t, 1.0, s)

	_, err = rattrig.SafeCosineLaw(25.0, 0.0, 9.0)
	require.ErrorIs(t, err, rattrig.ErrDivisionByZero)
	_, err = rattrig.SafeCosineLaw(25.0, 16.0, 0.0)
	require.ErrorIs(t, err, rattrig.ErrDivisionByZero)
}
