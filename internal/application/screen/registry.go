package screen

import "sort"

// Registry holds the known screens keyed by id. Screens are never removed.
type Registry struct {
	screens map[int]Screen
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{screens: make(map[int]Screen)}
}

// Register stores s under s.ID().
func (r *Registry) Register(s Screen) error {
	id := s.ID()
	if id < 0 {
		return &InvalidIDError{ID: id}
	}
	if _, ok := r.screens[id]; ok {
		return &DuplicateIDError{ID: id}
	}
	r.screens[id] = s
	return nil
}

// Lookup returns the screen registered under id.
func (r *Registry) Lookup(id int) (Screen, error) {
	s, ok := r.screens[id]
	if !ok {
		return nil, &UnknownScreenError{ID: id}
	}
	return s, nil
}

// Len returns the number of registered screens
func (r *Registry) Len() int {
	return len(r.screens)
}

// IDs returns the registered ids in ascending order
func (r *Registry) IDs() []int {
	ids := make([]int, 0, len(r.screens))
	for id := range r.screens {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
