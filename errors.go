package rattrig

import "errors"

// Faults reported by the fault-checked formula variants. Every fault
// is an ordinary return value; nothing in this package retries,
// corrects, or escalates one.
//
// Only ErrDivisionByZero is ever returned by the formulas here.
// ErrInvalidInput and ErrOverflow are reserved for callers and
// extensions building on the same taxonomy.
var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrInvalidInput   = errors.New("invalid input provided")
	ErrOverflow       = errors.New("calculation overflow")
)
