package widgets

// listeners keeps callbacks in registration order. Removing one during
// dispatch takes effect from the next dispatch.
type listeners[F any] struct {
	next  int
	items []listener[F]
}

type listener[F any] struct {
	id int
	fn F
}

func (l *listeners[F]) add(fn F) (remove func()) {
	l.next++
	id := l.next
	l.items = append(l.items, listener[F]{id: id, fn: fn})
	return func() {
		for i, item := range l.items {
			if item.id == id {
				l.items = append(l.items[:i:i], l.items[i+1:]...)
				return
			}
		}
	}
}

func (l *listeners[F]) each(call func(F)) {
	for _, item := range l.items {
		call(item.fn)
	}
}

func (l *listeners[F]) len() int {
	return len(l.items)
}
