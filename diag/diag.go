// Package diag is an optional diagnostics capability for embedding
// applications that want visibility into formula faults. Nothing in
// this module depends on it: the formulas are pure and return
// identical results whether or not a Sink is attached, so attaching
// one is purely observational.
package diag

import "log/slog"

// A Sink receives fault reports from checked computations. A nil Sink
// is valid everywhere and means no diagnostics.
type Sink interface {
	Fault(op string, err error)
}

// Check runs a fault-checked computation and forwards its result
// unchanged, reporting the fault, if any, to s under the given
// operation name. Wrap any of the Safe variants with it:
//
//	s, err := diag.Check(sink, "spread", func() (float64, error) {
//		return rattrig.SafeSpread(v1, v2)
//	})
func Check[T any](s Sink, op string, f func() (T, error)) (T, error) {
	v, err := f()
	if err != nil && s != nil {
		s.Fault(op, err)
	}
	return v, err
}

// Discard is a Sink that drops every report.
var Discard Sink = discard{}

type discard struct{}

func (discard) Fault(string, error) {}

// SlogSink reports faults to a slog logger at warn level.
type SlogSink struct {
	Logger *slog.Logger
}

// Fault implements Sink.
func (s SlogSink) Fault(op string, err error) {
	s.Logger.Warn("formula fault", "op", op, "err", err)
}
