// Package selectlist implements an ordered list of owned values with an
// optional cursor.
//
// Entries carry a stable ID assigned on insertion. The cursor is stored as an
// ID and resolved to a position on demand, so inserting or removing entries
// never leaves it pointing at the wrong value.
package selectlist

// ID identifies an entry for the lifetime of its list. The zero ID means "none".
type ID uint64

type entry[T any] struct {
	id    ID
	value T
}

// List is not safe for concurrent use.
type List[T any] struct {
	entries []entry[T]
	cursor  ID
	lastID  ID
}

// New returns a list holding items in order, with no cursor set.
func New[T any](items ...T) *List[T] {
	l := &List[T]{entries: make([]entry[T], 0, len(items))}
	for _, v := range items {
		l.Append(v)
	}
	return l
}

func (l *List[T]) Len() int { return len(l.entries) }

// Next moves the cursor one position forward, wrapping to the first entry
// after the last. With no cursor it selects the first entry.
func (l *List[T]) Next() {
	n := len(l.entries)
	if n == 0 {
		return
	}
	i, ok := l.Selected()
	if !ok {
		l.cursor = l.entries[0].id
		return
	}
	l.cursor = l.entries[(i+1)%n].id
}

// Previous moves the cursor one position back, wrapping to the last entry
// before the first. With no cursor it selects the first entry.
func (l *List[T]) Previous() {
	n := len(l.entries)
	if n == 0 {
		return
	}
	i, ok := l.Selected()
	if !ok {
		l.cursor = l.entries[0].id
		return
	}
	l.cursor = l.entries[(i-1+n)%n].id
}

func (l *List[T]) Unselect() { l.cursor = 0 }

// Selected returns the cursor position.
func (l *List[T]) Selected() (int, bool) {
	if l.cursor == 0 {
		return 0, false
	}
	return l.IndexOf(l.cursor)
}

func (l *List[T]) SelectedID() (ID, bool) {
	if _, ok := l.Selected(); !ok {
		return 0, false
	}
	return l.cursor, true
}

func (l *List[T]) SelectedValue() (T, bool) {
	i, ok := l.Selected()
	if !ok {
		var zero T
		return zero, false
	}
	return l.entries[i].value, true
}

// Select moves the cursor to position i. Out of range positions are rejected
// and leave the cursor unchanged.
func (l *List[T]) Select(i int) bool {
	if i < 0 || i >= len(l.entries) {
		return false
	}
	l.cursor = l.entries[i].id
	return true
}

func (l *List[T]) SelectID(id ID) bool {
	if _, ok := l.IndexOf(id); !ok {
		return false
	}
	l.cursor = id
	return true
}

func (l *List[T]) IndexOf(id ID) (int, bool) {
	if id == 0 {
		return 0, false
	}
	for i, e := range l.entries {
		if e.id == id {
			return i, true
		}
	}
	return 0, false
}

// Append adds v at the end and returns its ID. The cursor is not moved.
func (l *List[T]) Append(v T) ID {
	l.lastID++
	l.entries = append(l.entries, entry[T]{id: l.lastID, value: v})
	return l.lastID
}

// Remove deletes the entry with the given ID.
//
// If that entry held the cursor, the cursor moves to the entry that now
// occupies the same position, or to the new last entry, or is cleared when
// the list became empty.
func (l *List[T]) Remove(id ID) bool {
	i, ok := l.IndexOf(id)
	if !ok {
		return false
	}
	l.entries = append(l.entries[:i], l.entries[i+1:]...)
	if l.cursor != id {
		return true
	}
	switch {
	case len(l.entries) == 0:
		l.cursor = 0
	case i < len(l.entries):
		l.cursor = l.entries[i].id
	default:
		l.cursor = l.entries[len(l.entries)-1].id
	}
	return true
}

func (l *List[T]) Get(id ID) (T, bool) {
	i, ok := l.IndexOf(id)
	if !ok {
		var zero T
		return zero, false
	}
	return l.entries[i].value, true
}

func (l *List[T]) Set(id ID, v T) bool {
	i, ok := l.IndexOf(id)
	if !ok {
		return false
	}
	l.entries[i].value = v
	return true
}

// Update replaces the value stored under id with fn(value).
func (l *List[T]) Update(id ID, fn func(T) T) bool {
	i, ok := l.IndexOf(id)
	if !ok {
		return false
	}
	l.entries[i].value = fn(l.entries[i].value)
	return true
}

// Items returns a copy of the values in order.
func (l *List[T]) Items() []T {
	out := make([]T, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.value
	}
	return out
}

func (l *List[T]) IDs() []ID {
	out := make([]ID, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.id
	}
	return out
}
