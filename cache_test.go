package motion

import "testing"

func TestCacheStoreLoadDelete(t *testing.T) {
	c := NewCache()
	n := NewNode("n", 10, 10)

	if _, _, ok := c.Load(n); ok {
		t.Fatal("empty cache should have no entry")
	}

	m := NewMatrix()
	m.X = 12
	m.UpdateMatrix()
	rev := c.Store(n, m)
	if rev == 0 {
		t.Error("revisions should start at 1")
	}

	got, gotRev, ok := c.Load(n)
	if !ok || gotRev != rev {
		t.Fatalf("Load = (%v, %v), want revision %d", gotRev, ok, rev)
	}
	assertNear(t, "X", got.X, 12)

	c.Delete(n)
	if c.Len() != 0 {
		t.Errorf("Len() = %d after Delete, want 0", c.Len())
	}
	c.Delete(n) // no-op
}

func TestCacheStoresCopies(t *testing.T) {
	c := NewCache()
	n := NewNode("n", 10, 10)
	m := NewMatrix()
	m.X = 1
	c.Store(n, m)

	m.X = 2
	got, _, _ := c.Load(n)
	if got.X != 1 {
		t.Errorf("cached X = %v, want 1 (store should copy)", got.X)
	}

	got.X = 3
	again, _, _ := c.Load(n)
	if again.X != 1 {
		t.Errorf("cached X = %v, want 1 (load should copy)", again.X)
	}
}

func TestCacheRevisionsAreUniqueAcrossTargets(t *testing.T) {
	c := NewCache()
	a := NewNode("a", 10, 10)
	b := NewNode("b", 10, 10)
	m := NewMatrix()

	r1 := c.Store(a, m)
	c.Delete(a)
	r2 := c.Store(b, m)
	r3 := c.Store(a, m)
	if r1 == r3 || r2 == r3 || r1 == r2 {
		t.Errorf("revisions %d, %d, %d should all differ", r1, r2, r3)
	}

	rev, ok := c.Revision(a)
	if !ok || rev != r3 {
		t.Errorf("Revision(a) = (%d, %v), want (%d, true)", rev, ok, r3)
	}
}

func TestCacheKeysByIdentity(t *testing.T) {
	c := NewCache()
	a := NewNode("same", 10, 10)
	b := NewNode("same", 10, 10)
	b.ID = a.ID
	c.Store(a, NewMatrix())

	if _, _, ok := c.Load(b); ok {
		t.Error("distinct nodes with equal fields must not share an entry")
	}
}

func TestDefaultCacheIsShared(t *testing.T) {
	if DefaultCache() != DefaultCache() {
		t.Error("DefaultCache should return the same cache")
	}
}
