package person

import "sync"

// Store exposes person persistence for HTTP handlers.
type Store interface {
	Create(draft Person) Person
	List() []Person
	Get(id uint64) (Person, bool)
	Update(id uint64, patch Person) (Person, bool)
	Delete(id uint64) bool
}

// MemoryStore implements Store with a mutex-guarded map. State lives for the process lifetime.
type MemoryStore struct {
	mu    sync.Mutex
	items map[uint64]Person
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[uint64]Person)}
}

// Create assigns the next identifier to draft and stores it.
// The next identifier is one past the largest key currently held, or 1 when empty.
func (s *MemoryStore) Create(draft Person) Person {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft.ID = s.nextIDLocked()
	s.items[draft.ID] = draft
	return draft
}

func (s *MemoryStore) nextIDLocked() uint64 {
	var max uint64
	for id := range s.items {
		if id > max {
			max = id
		}
	}
	return max + 1
}

// List returns a snapshot of all records in no particular order.
func (s *MemoryStore) List() []Person {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Person, 0, len(s.items))
	for _, p := range s.items {
		out = append(out, p)
	}
	return out
}

// Get looks up a record by identifier.
func (s *MemoryStore) Get(id uint64) (Person, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.items[id]
	return p, ok
}

// Update replaces name and age of an existing record. The identifier never changes.
func (s *MemoryStore) Update(id uint64, patch Person) (Person, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.items[id]
	if !ok {
		return Person{}, false
	}
	p.Name = patch.Name
	p.Age = patch.Age
	s.items[id] = p
	return p, true
}

// Delete removes a record and reports whether it existed.
func (s *MemoryStore) Delete(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	return true
}

// Len reports the number of stored records.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
