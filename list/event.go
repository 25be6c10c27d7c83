package list

import "fmt"

// Kind identifies the shape of a mutation.
type Kind int

const (
	// Refresh invalidates the whole list.
	Refresh Kind = iota
	// Insert adds Range elements starting at Position.
	Insert
	// Remove drops Range elements that started at Position before removal.
	Remove
	// Move relocates one element from From to To.
	Move
	// Change replaces Range elements starting at Position in place.
	Change
)

func (k Kind) String() string {
	switch k {
	case Refresh:
		return "refresh"
	case Insert:
		return "insert"
	case Remove:
		return "remove"
	case Move:
		return "move"
	case Change:
		return "change"
	default:
		return "unknown"
	}
}

// Event describes one structural change to an ObservableList.
// Insert and Change positions index the post-mutation list; Remove
// positions index the pre-mutation list.
type Event[T any] struct {
	List     *ObservableList[T]
	Kind     Kind
	Position int
	Range    int
	From     int
	To       int
}

func (e Event[T]) String() string {
	switch e.Kind {
	case Move:
		return fmt.Sprintf("move(%d->%d)", e.From, e.To)
	case Refresh:
		return "refresh"
	default:
		return fmt.Sprintf("%s(%d,%d)", e.Kind, e.Position, e.Range)
	}
}

func refreshEvent[T any](l *ObservableList[T]) Event[T] {
	return Event[T]{List: l, Kind: Refresh}
}

func rangeEvent[T any](l *ObservableList[T], kind Kind, position, count int) Event[T] {
	return Event[T]{List: l, Kind: kind, Position: position, Range: count}
}

func moveEvent[T any](l *ObservableList[T], from, to int) Event[T] {
	return Event[T]{List: l, Kind: Move, From: from, To: to, Range: 1}
}
