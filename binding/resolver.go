package binding

// NoID identifies "no selection" in group controls.
const NoID = -1

// Resolver maps control identifiers to domain values and back.
// IDToValue reports false for identifiers it does not know; bindings
// ignore such events.
type Resolver[T any] interface {
	IDToValue(id int) (T, bool)
	ValueToID(v T) int
}

// MapResolver is a Resolver backed by a pair of maps.
type MapResolver[T comparable] struct {
	values map[int]T
	ids    map[T]int
}

// NewMapResolver creates an empty resolver.
func NewMapResolver[T comparable]() *MapResolver[T] {
	return &MapResolver[T]{values: map[int]T{}, ids: map[T]int{}}
}

// Map records that id stands for v and returns the resolver.
func (r *MapResolver[T]) Map(id int, v T) *MapResolver[T] {
	r.values[id] = v
	r.ids[v] = id
	return r
}

// IDToValue returns the value for id.
func (r *MapResolver[T]) IDToValue(id int) (T, bool) {
	v, ok := r.values[id]
	return v, ok
}

// ValueToID returns the identifier for v, or NoID.
func (r *MapResolver[T]) ValueToID(v T) int {
	if id, ok := r.ids[v]; ok {
		return id
	}
	return NoID
}

// ResolverFuncs adapts a pair of functions into a Resolver.
type ResolverFuncs[T any] struct {
	ToValue func(id int) (T, bool)
	ToID    func(v T) int
}

func (r ResolverFuncs[T]) IDToValue(id int) (T, bool) {
	return r.ToValue(id)
}

func (r ResolverFuncs[T]) ValueToID(v T) int {
	return r.ToID(v)
}
