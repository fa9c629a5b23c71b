package store

// Store is a generational sparse set keyed by Identifier. It supports O(1)
// insert, remove, lookup, enable/disable, and dense iteration of active
// (enabled) entities.
//
// Layout: dense holds the values, entities is the reverse map (dense index
// -> id), sparse maps id -> dense index or InvalidID. freeIDs is a LIFO
// stack of recycled ids. activeCount splits dense into a prefix of enabled
// entries and a suffix of disabled ones.
//
// T should be a trivially-copyable, fixed-size value (no pointers, slices,
// maps, strings, or platform-sized int/uint) so the raw-byte snapshot in
// snapshot.go is sound; Marshal returns an error for any other T. Every
// primitive and entity record in this engine satisfies that.
type Store[T any] struct {
	dense       []T
	entities    []Identifier
	sparse      []Identifier
	freeIDs     []Identifier
	activeCount int
	nextID      Identifier
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{}
}

// Insert assigns an id (recycled from freeIDs if any, else the next unused
// id), appends the value, and swaps it into the enabled prefix. Returns
// InvalidID if the identifier space is exhausted.
func (s *Store[T]) Insert(value T) Identifier {
	var id Identifier
	if n := len(s.freeIDs); n > 0 {
		id = s.freeIDs[n-1]
		s.freeIDs = s.freeIDs[:n-1]
	} else {
		// nextID wraps negative once maxLiveIDs has been handed out.
		if s.nextID < 0 {
			return InvalidID
		}
		id = s.nextID
		s.nextID++
	}

	idx := len(s.dense)
	s.dense = append(s.dense, value)
	s.entities = append(s.entities, id)
	s.growSparse(id)
	s.sparse[id] = Identifier(idx)

	s.swap(idx, s.activeCount)
	s.activeCount++
	return id
}

// Remove is tolerant of invalid ids (silent no-op). Otherwise it adjusts
// activeCount if the victim was enabled, swaps the victim to the tail,
// pops it, and recycles the id.
func (s *Store[T]) Remove(id Identifier) {
	idx := s.indexOf(id)
	if idx < 0 {
		return
	}
	if idx < s.activeCount {
		s.swap(idx, s.activeCount-1)
		idx = s.activeCount - 1
		s.activeCount--
	}
	last := len(s.dense) - 1
	s.swap(idx, last)

	var zero T
	s.dense[last] = zero
	s.dense = s.dense[:last]
	s.entities = s.entities[:last]
	s.sparse[id] = InvalidID
	s.freeIDs = append(s.freeIDs, id)
}

// Get returns a pointer into stable storage, valid until the next mutating
// call on this store (Insert, Remove, Disable, Enable, or Load).
func (s *Store[T]) Get(id Identifier) (*T, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return nil, ErrOutOfRange
	}
	return &s.dense[idx], nil
}

// Disable moves id into the disabled suffix. No-op if already disabled or
// unknown.
func (s *Store[T]) Disable(id Identifier) {
	idx := s.indexOf(id)
	if idx < 0 || idx >= s.activeCount {
		return
	}
	s.swap(idx, s.activeCount-1)
	s.activeCount--
}

// Enable moves id into the enabled prefix. No-op if already enabled or
// unknown.
func (s *Store[T]) Enable(id Identifier) {
	idx := s.indexOf(id)
	if idx < 0 || idx < s.activeCount {
		return
	}
	s.swap(idx, s.activeCount)
	s.activeCount++
}

func (s *Store[T]) IsEnabled(id Identifier) bool {
	idx := s.indexOf(id)
	return idx >= 0 && idx < s.activeCount
}

func (s *Store[T]) IsLive(id Identifier) bool {
	return s.indexOf(id) >= 0
}

// Active returns the enabled prefix as a live view into the backing array;
// mutating elements through it mutates the store.
func (s *Store[T]) Active() []T { return s.dense[:s.activeCount] }

// All returns every live entry, enabled and disabled.
func (s *Store[T]) All() []T { return s.dense }

func (s *Store[T]) ActiveIDs() []Identifier { return s.entities[:s.activeCount] }
func (s *Store[T]) AllIDs() []Identifier    { return s.entities }

func (s *Store[T]) Len() int         { return len(s.dense) }
func (s *Store[T]) ActiveLen() int   { return s.activeCount }

func (s *Store[T]) indexOf(id Identifier) int {
	if id < 0 || int(id) >= len(s.sparse) {
		return -1
	}
	idx := s.sparse[id]
	if idx == InvalidID {
		return -1
	}
	return int(idx)
}

func (s *Store[T]) growSparse(id Identifier) {
	if int(id) < len(s.sparse) {
		return
	}
	grown := make([]Identifier, id+1)
	copy(grown, s.sparse)
	for i := len(s.sparse); i < len(grown); i++ {
		grown[i] = InvalidID
	}
	s.sparse = grown
}

// swap exchanges the dense/entities slots at i and j, keeping sparse in
// sync. A no-op when i == j.
func (s *Store[T]) swap(i, j int) {
	if i == j {
		return
	}
	s.dense[i], s.dense[j] = s.dense[j], s.dense[i]
	s.entities[i], s.entities[j] = s.entities[j], s.entities[i]
	s.sparse[s.entities[i]] = Identifier(i)
	s.sparse[s.entities[j]] = Identifier(j)
}
