package motion

import (
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Target is a visual element whose 2D affine transform can be animated.
// Implementations must be comparable by identity (pointer types), since
// targets key the Cache and are compared by Overwrite. NewUpdater panics on a
// non-comparable implementation, such as a struct value holding a slice or map.
type Target interface {
	// TransformMatrix returns the current flat [a, b, c, d, tx, ty] transform.
	// ok is false for a target that has no transform yet.
	TransformMatrix() (flat []float64, ok bool)
	// SetTransformMatrix applies a matrix() transform function string.
	SetTransformMatrix(transform string)
	// Extent returns the target's size, used to resolve percentage offsets.
	Extent() (width, height float64)
}

// componentSlot is the per-component state of an Updater.
type componentSlot struct {
	param Param
	armed bool
}

// Updater animates the decomposed transform of one Target. Register the
// components to animate with AddProp or AddPropStr, call Init once, then
// Update with progress from 0 to 1, and Complete when finished.
//
// An Updater writes only the components it is armed for. Init arms every
// registered component; Overwrite disarms those claimed by a newer updater on
// the same target. Schedulers must call Overwrite on the older updaters after
// the newer one's Init and before its first Update (Animator does this).
//
// Updater is not safe for concurrent use.
type Updater struct {
	target Target
	cache  *Cache
	matrix Matrix
	slots  [componentCount]componentSlot

	// percent holds the raw "NN%" literal for x and y so Clone can resolve
	// it against another target's extent.
	percent [2]string

	ease        EaseFunc
	revision    uint64
	initialized bool
}

// NewUpdater creates an Updater for target that chains through DefaultCache.
func NewUpdater(target Target) *Updater {
	return DefaultCache().NewUpdater(target)
}

// NewUpdater creates an Updater for target that chains through c.
func (c *Cache) NewUpdater(target Target) *Updater {
	if target == nil {
		panic("motion: nil Target")
	}
	if t := reflect.TypeOf(target); !t.Comparable() {
		panic("motion: Target " + t.String() + " is not comparable")
	}
	u := &Updater{target: target, cache: c, ease: Linear}
	u.matrix.Reset()
	return u
}

// Target returns the animated target.
func (u *Updater) Target() Target { return u.target }

// Cache returns the cache the updater commits to.
func (u *Updater) Cache() *Cache { return u.cache }

// SetEase sets the easing curve used by params registered after this call.
// A nil fn means Linear.
func (u *Updater) SetEase(fn EaseFunc) {
	if fn == nil {
		fn = Linear
	}
	u.ease = fn
}

// AddProp registers an absolute target value for the component named key,
// replacing any earlier registration for it. Unrecognized keys and NaN or
// infinite values are ignored.
func (u *Updater) AddProp(key string, value float64) {
	c, ok := ParseComponent(key)
	if !ok {
		debugWarn("AddProp: ignoring unknown component %q on %s", key, targetName(u.target))
		return
	}
	if !finite(value) {
		debugWarn("AddProp: ignoring %s=%v on %s", key, value, targetName(u.target))
		return
	}
	if c == ComponentX || c == ComponentY {
		u.percent[c] = ""
	}
	u.slots[c].param = NewEaseParam(key, value, u.ease)
}

// AddPropStr registers x or y from a literal: either an absolute number
// ("12.5") or a percentage of the target's width (x) or height (y) ("50%").
// Percentages are resolved immediately; the literal is kept for Clone.
// Other keys and unparsable or non-finite literals are ignored.
func (u *Updater) AddPropStr(key, value string) {
	c, ok := ParseComponent(key)
	if !ok || (c != ComponentX && c != ComponentY) {
		debugWarn("AddPropStr: ignoring component %q on %s", key, targetName(u.target))
		return
	}

	literal := strings.TrimSpace(value)
	if pct, isPct := strings.CutSuffix(literal, "%"); isPct {
		f, err := strconv.ParseFloat(strings.TrimSpace(pct), 64)
		if err != nil {
			debugWarn("AddPropStr: ignoring %s=%q: %v", key, value, err)
			return
		}
		w, h := u.target.Extent()
		extent := w
		if c == ComponentY {
			extent = h
		}
		v := extent * f / 100
		if !finite(v) {
			debugWarn("AddPropStr: ignoring %s=%q on %s", key, value, targetName(u.target))
			return
		}
		u.slots[c].param = NewEaseParam(key, v, u.ease)
		u.percent[c] = literal
		return
	}

	f, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		debugWarn("AddPropStr: ignoring %s=%q: %v", key, value, err)
		return
	}
	u.AddProp(key, f)
}

// SetParam registers a custom interpolator for c, replacing any earlier
// registration. A nil p unregisters c.
func (u *Updater) SetParam(c Component, p Param) {
	if c >= componentCount {
		return
	}
	if c == ComponentX || c == ComponentY {
		u.percent[c] = ""
	}
	u.slots[c].param = p
}

// Param returns the interpolator registered for c, or nil.
func (u *Updater) Param(c Component) Param {
	if c >= componentCount {
		return nil
	}
	return u.slots[c].param
}

// Armed reports whether u currently has authority to write c.
func (u *Updater) Armed(c Component) bool {
	if c >= componentCount {
		return false
	}
	return u.slots[c].armed
}

// Matrix returns a copy of the working matrix.
func (u *Updater) Matrix() Matrix {
	return u.matrix
}

// Init resolves the start values. If the cache holds a committed transform
// for the target it is adopted; otherwise the target's own transform is
// decomposed (identity if it has none or it is malformed). Every registered
// component is armed and its param initialized from the start matrix.
func (u *Updater) Init() {
	if m, rev, ok := u.cache.Load(u.target); ok {
		CopyMatrix(&u.matrix, &m)
		u.revision = rev
	} else {
		flat, present := u.target.TransformMatrix()
		if !u.matrix.SetAffine(flat) && present {
			debugWarn("Init: malformed transform on %s, using identity", targetName(u.target))
		}
		u.revision = 0
	}

	for i := range u.slots {
		s := &u.slots[i]
		s.armed = s.param != nil
		if s.armed {
			s.param.Init(u.matrix.Component(Component(i)))
		}
	}
	u.initialized = true
}

// Update writes the armed components at progress into the working matrix,
// applies it to the target and commits it to the cache.
//
// If another updater committed to the cache since u last did, its matrix is
// adopted first so the components u does not own keep their latest values.
// If the target has no entry, because none was written yet or another updater
// released it with Complete, the target's transform is read again instead.
// Update before Init is a no-op.
func (u *Updater) Update(progress float64) {
	if !u.initialized {
		debugWarn("Update before Init on %s", targetName(u.target))
		return
	}

	if rev, ok := u.cache.Revision(u.target); !ok {
		// The target holds the last write, possibly a completed updater's.
		flat, _ := u.target.TransformMatrix()
		u.matrix.SetAffine(flat)
	} else if rev != u.revision {
		if m, _, ok := u.cache.Load(u.target); ok {
			CopyMatrix(&u.matrix, &m)
		}
	}

	for i := range u.slots {
		s := &u.slots[i]
		if s.armed && s.param != nil {
			u.matrix.SetComponent(Component(i), s.param.Update(progress))
		}
	}

	u.matrix.UpdateMatrix()
	u.target.SetTransformMatrix(u.matrix.String())
	u.revision = u.cache.Store(u.target, &u.matrix)
}

// Overwrite cedes to other every component other is armed for, provided both
// animate the same target. Disarmed params stay registered but no longer
// write. Updaters on different targets are left alone.
func (u *Updater) Overwrite(other *Updater) {
	if other == nil || other == u || u.target != other.target {
		return
	}
	for i := range u.slots {
		if other.slots[i].armed {
			u.slots[i].armed = false
		}
	}
}

// Complete releases the target's cache entry so that the next Init on it
// reads the target's transform again.
func (u *Updater) Complete() {
	u.cache.Delete(u.target)
}

// MaxAbsDelta returns the largest change any registered component undergoes.
// x and y count together as the length of (dx, dy). Returns 0 when nothing is
// registered.
func (u *Updater) MaxAbsDelta() float64 {
	var dx, dy float64
	if p := u.slots[ComponentX].param; p != nil {
		dx = p.Delta()
	}
	if p := u.slots[ComponentY].param; p != nil {
		dy = p.Delta()
	}
	maxDelta := math.Hypot(dx, dy)

	for c := ComponentScaleX; c < componentCount; c++ {
		if p := u.slots[c].param; p != nil {
			maxDelta = math.Max(maxDelta, math.Abs(p.Delta()))
		}
	}
	return maxDelta
}

// Clone returns an independent Updater with the same registrations, bound to
// target, or to u's target when target is nil. Params are cloned with their
// start and target values; percentage x/y are resolved again against the new
// target's extent. The clone is not initialized or armed.
func (u *Updater) Clone(target Target) *Updater {
	if target == nil {
		target = u.target
	}
	cp := u.cache.NewUpdater(target)
	cp.ease = u.ease

	for i := range u.slots {
		c := Component(i)
		if c == ComponentX || c == ComponentY {
			if lit := u.percent[c]; lit != "" {
				cp.AddPropStr(c.String(), lit)
				continue
			}
		}
		if p := u.slots[i].param; p != nil {
			cp.slots[i].param = p.Clone()
		}
	}
	return cp
}

// String lists every registered param, armed or not, separated by spaces.
func (u *Updater) String() string {
	var sb strings.Builder
	for i := range u.slots {
		p := u.slots[i].param
		if p == nil {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(p.String())
	}
	return sb.String()
}
