package motion

import "sync"

// Cache maps animation targets to the transform most recently committed for
// them by an Updater. Updaters on the same target chain through it: Init
// starts from the cached matrix instead of re-reading the target, and Update
// composes on top of whatever another updater committed since.
//
// Every Store stamps the entry with a fresh revision taken from a counter
// shared by all targets, so an Updater can tell whether the entry changed since
// it last looked without comparing matrices.
//
// Targets are used as map keys and must be comparable (pointer types are).
type Cache struct {
	mu       sync.Mutex
	slots    map[Target]cacheSlot
	revision uint64
}

// cacheSlot is one committed transform and the revision it was stored at.
type cacheSlot struct {
	matrix   Matrix
	revision uint64
}

var (
	defaultCache     *Cache
	defaultCacheOnce sync.Once
)

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{slots: make(map[Target]cacheSlot)}
}

// DefaultCache returns the process-wide Cache used by NewUpdater. It is
// created on first use and never torn down; entries leave it through
// Updater.Complete.
func DefaultCache() *Cache {
	defaultCacheOnce.Do(func() {
		defaultCache = NewCache()
	})
	return defaultCache
}

// Load returns a copy of the matrix committed for t and the revision it was
// stored at. ok is false when t has no entry.
func (c *Cache) Load(t Target) (m Matrix, revision uint64, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.slots[t]
	return s.matrix, s.revision, ok
}

// Revision returns the revision of t's entry without copying the matrix.
func (c *Cache) Revision(t Target) (uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.slots[t]
	return s.revision, ok
}

// Store commits a copy of m as t's entry, replacing any previous one, and
// returns the new revision. Revisions start at 1.
func (c *Cache) Store(t Target, m *Matrix) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.revision++
	c.slots[t] = cacheSlot{matrix: *m, revision: c.revision}
	return c.revision
}

// Delete removes t's entry. No-op if there is none.
func (c *Cache) Delete(t Target) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.slots, t)
}

// Len returns the number of targets with a committed transform.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.slots)
}
