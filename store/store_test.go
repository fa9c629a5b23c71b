package store

import "testing"

func TestInsertGetRoundTrip(t *testing.T) {
	s := NewStore[int]()
	id := s.Insert(42)
	v, err := s.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if *v != 42 {
		t.Fatalf("Get(%v) = %d, want 42", id, *v)
	}
}

func TestGetOutOfRange(t *testing.T) {
	s := NewStore[int]()
	if _, err := s.Get(InvalidID); err != ErrOutOfRange {
		t.Fatalf("Get(InvalidID) err = %v, want ErrOutOfRange", err)
	}
	if _, err := s.Get(7); err != ErrOutOfRange {
		t.Fatalf("Get(7) on empty store err = %v, want ErrOutOfRange", err)
	}
}

func TestRemoveRecyclesLIFO(t *testing.T) {
	s := NewStore[int]()
	a := s.Insert(1)
	b := s.Insert(2)
	s.Remove(b)
	s.Remove(a)

	c := s.Insert(3)
	if c != a {
		t.Fatalf("Insert after removing a,b = %v, want %v (LIFO reuse)", c, a)
	}
	d := s.Insert(4)
	if d != b {
		t.Fatalf("second Insert = %v, want %v (LIFO reuse)", d, b)
	}
}

func TestRemoveIsIdempotentAndToleratesInvalid(t *testing.T) {
	s := NewStore[int]()
	id := s.Insert(1)
	s.Remove(id)
	s.Remove(id) // no panic
	s.Remove(InvalidID)
	s.Remove(999)
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", s.Len())
	}
	if _, err := s.Get(id); err != ErrOutOfRange {
		t.Fatalf("Get after remove err = %v, want ErrOutOfRange", err)
	}
}

func TestRemoveMiddlePreservesOthers(t *testing.T) {
	s := NewStore[int]()
	ids := make([]Identifier, 5)
	for i := range ids {
		ids[i] = s.Insert(i * 10)
	}
	s.Remove(ids[2])

	for i, id := range ids {
		if i == 2 {
			continue
		}
		v, err := s.Get(id)
		if err != nil {
			t.Fatalf("Get(%v): %v", id, err)
		}
		if *v != i*10 {
			t.Fatalf("Get(%v) = %d, want %d", id, *v, i*10)
		}
	}
	if s.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", s.Len())
	}
}

func TestActiveExcludesDisabled(t *testing.T) {
	s := NewStore[int]()
	a := s.Insert(1)
	b := s.Insert(2)
	c := s.Insert(3)
	s.Disable(b)

	if got := s.ActiveLen(); got != 2 {
		t.Fatalf("ActiveLen() = %d, want 2", got)
	}
	if got := s.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}
	for _, v := range s.Active() {
		if v == 2 {
			t.Fatal("Active() should not include disabled value 2")
		}
	}
	all := s.All()
	if len(all) != 3 {
		t.Fatalf("All() len = %d, want 3", len(all))
	}
	_ = a
	_ = c
}

func TestEnableDisableIdempotentAndInvolutive(t *testing.T) {
	s := NewStore[int]()
	id := s.Insert(1)

	s.Disable(id)
	s.Disable(id) // idempotent
	if s.IsEnabled(id) {
		t.Fatal("expected disabled")
	}
	if s.ActiveLen() != 0 {
		t.Fatalf("ActiveLen() = %d, want 0", s.ActiveLen())
	}

	s.Enable(id)
	s.Enable(id) // idempotent
	if !s.IsEnabled(id) {
		t.Fatal("expected enabled")
	}
	if s.ActiveLen() != 1 {
		t.Fatalf("ActiveLen() = %d, want 1", s.ActiveLen())
	}
}

func TestDisableEnableUnknownIsNoop(t *testing.T) {
	s := NewStore[int]()
	s.Disable(5)
	s.Enable(5)
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", s.Len())
	}
}

func TestIsLive(t *testing.T) {
	s := NewStore[int]()
	id := s.Insert(1)
	if !s.IsLive(id) {
		t.Fatal("expected live")
	}
	s.Remove(id)
	if s.IsLive(id) {
		t.Fatal("expected not live after remove")
	}
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	s := NewStore[int32]()
	a := s.Insert(10)
	s.Insert(20)
	c := s.Insert(30)
	s.Remove(a)
	s.Disable(c)

	data, err := s.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	restored := NewStore[int32]()
	if err := restored.Unmarshal(data); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if restored.Len() != s.Len() || restored.ActiveLen() != s.ActiveLen() {
		t.Fatalf("restored Len/ActiveLen = %d/%d, want %d/%d",
			restored.Len(), restored.ActiveLen(), s.Len(), s.ActiveLen())
	}
	if restored.IsEnabled(c) != s.IsEnabled(c) {
		t.Fatalf("disabled state mismatch for id %v", c)
	}
	for i, want := range s.All() {
		if got := restored.All()[i]; got != want {
			t.Fatalf("All()[%d] = %d, want %d", i, got, want)
		}
	}

	// nextID/freeIDs preserved: next insert must not collide with a live id.
	newID := restored.Insert(99)
	if restored.IsLive(newID) == false {
		t.Fatal("newly inserted id should be live")
	}
}
