package multiset

import "testing"

func TestMultisetIsOrderIndependent(t *testing.T) {
	first := New()
	first.Add([]byte("alice:100:0"))
	first.Add([]byte("bob:50:0"))

	second := New()
	second.Add([]byte("bob:50:0"))
	second.Add([]byte("alice:100:0"))

	if !first.Hash().Equal(second.Hash()) {
		t.Fatalf("multiset hash depends on insertion order: %s != %s", first.Hash(), second.Hash())
	}
}

func TestMultisetHashDependsOnElements(t *testing.T) {
	m := New()
	m.Add([]byte("alice:100:0"))
	m.Add([]byte("bob:50:0"))

	changed := New()
	changed.Add([]byte("alice:90:1"))
	changed.Add([]byte("bob:50:0"))
	if m.Hash().Equal(changed.Hash()) {
		t.Fatalf("multisets with different elements have the same hash %s", m.Hash())
	}

	if New().Hash().Equal(m.Hash()) {
		t.Fatalf("an empty multiset has the hash of a non-empty one")
	}
}
