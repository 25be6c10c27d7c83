// Package binding connects observable state to interactive controls and keeps
// both sides in sync for as long as a lifecycle scope is alive.
//
// Every binding follows the same lifecycle: Connect subscribes to the data
// (unless the mode is OneWayToSource), attaches a view listener (unless the
// mode is OneWay), registers itself with the scope and pushes the current
// value into the control once. Dispose releases all of it and is safe to call
// any number of times.
//
// Bindings are not safe for concurrent use; connect and mutate them from the
// UI thread.
package binding

import "fmt"

// Mode is the direction policy of a binding.
type Mode int

const (
	// OneWay propagates data to the view only.
	OneWay Mode = iota
	// OneWayToSource propagates view changes to the data only. On connect
	// the view's current value is pushed into the data once.
	OneWayToSource
	// TwoWay propagates in both directions.
	TwoWay
)

// FromData reports whether data changes reach the view.
func (m Mode) FromData() bool {
	return m != OneWayToSource
}

// ToData reports whether view changes reach the data.
func (m Mode) ToData() bool {
	return m != OneWay
}

func (m Mode) String() string {
	switch m {
	case OneWay:
		return "one-way"
	case OneWayToSource:
		return "one-way-to-source"
	case TwoWay:
		return "two-way"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// BoolConvert maps a bool value before it reaches a control.
type BoolConvert int

const (
	// Straight passes the value through.
	Straight BoolConvert = iota
	// Inverse negates the value.
	Inverse
)

// Apply converts v.
func (c BoolConvert) Apply(v bool) bool {
	if c == Inverse {
		return !v
	}
	return v
}
