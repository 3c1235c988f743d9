package identity

import "fmt"

// DuplicateError is returned by Collect when two objects share an id.
type DuplicateError struct {
	ID ID
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("identity: duplicate id %s", e.ID)
}

// Store is an immutable id-keyed object map. Every operation that changes
// the contents returns a new Store; the receiver is never modified.
type Store[T Identified] struct {
	objects map[ID]T
	order   []ID
}

// NewStore creates a store holding objs. Later duplicates replace earlier ones.
func NewStore[T Identified](objs ...T) Store[T] {
	return Store[T]{}.Add(objs...)
}

// Collect creates a store holding objs, failing on the first id that is
// already present.
func Collect[T Identified](objs ...T) (Store[T], error) {
	s := Store[T]{
		objects: make(map[ID]T, len(objs)),
		order:   make([]ID, 0, len(objs)),
	}
	for _, o := range objs {
		id := o.ID()
		if s.Contains(id) {
			return Store[T]{}, &DuplicateError{ID: id}
		}
		s.objects[id] = o
		s.order = append(s.order, id)
	}
	return s, nil
}

// Add returns a store with objs added or replaced.
func (s Store[T]) Add(objs ...T) Store[T] {
	next := Store[T]{
		objects: make(map[ID]T, len(s.objects)+len(objs)),
		order:   make([]ID, len(s.order), len(s.order)+len(objs)),
	}
	copy(next.order, s.order)
	for id, o := range s.objects {
		next.objects[id] = o
	}
	for _, o := range objs {
		id := o.ID()
		if _, ok := next.objects[id]; !ok {
			next.order = append(next.order, id)
		}
		next.objects[id] = o
	}
	return next
}

// Get returns the object with the given id.
func (s Store[T]) Get(id ID) (T, bool) {
	o, ok := s.objects[id]
	return o, ok
}

// Contains reports whether id is present.
func (s Store[T]) Contains(id ID) bool {
	_, ok := s.objects[id]
	return ok
}

// Len returns the number of objects.
func (s Store[T]) Len() int {
	return len(s.order)
}

// Objects returns the objects in insertion order.
func (s Store[T]) Objects() []T {
	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.objects[id])
	}
	return out
}
