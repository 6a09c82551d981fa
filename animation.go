package motion

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// disposable is implemented by targets that can go away mid-animation, such
// as *Node.
type disposable interface {
	IsDisposed() bool
}

// Animation drives one Updater over a duration in seconds. gween turns the
// elapsed time into progress in [0, 1] shaped by the timeline easing; each
// component then applies its own easing on top. Call Update(dt) each frame.
//
// When the duration elapses the updater receives progress 1 and is completed,
// and Done is set. If the target is disposed, the animation stops on its next
// Update without writing.
type Animation struct {
	updater  *Updater
	tween    *gween.Tween
	progress float64
	Done     bool
}

// NewAnimation creates an Animation for u. It does not Init u; Animator.Add
// does that, or call u.Init yourself when driving the animation by hand.
// A nil fn means ease.Linear.
func NewAnimation(u *Updater, duration float32, fn ease.TweenFunc) *Animation {
	if fn == nil {
		fn = ease.Linear
	}
	return &Animation{
		updater: u,
		tween:   gween.New(0, 1, duration, fn),
	}
}

// Updater returns the driven updater.
func (a *Animation) Updater() *Updater { return a.updater }

// Progress returns the progress applied by the last Update.
func (a *Animation) Progress() float64 { return a.progress }

// Update advances the animation by dt seconds and applies the resulting
// progress to the target.
func (a *Animation) Update(dt float32) {
	if a.Done {
		return
	}

	if d, ok := a.updater.target.(disposable); ok && d.IsDisposed() {
		a.Stop()
		return
	}

	p, finished := a.tween.Update(dt)
	a.progress = float64(p)
	if finished {
		a.progress = 1
	}
	a.updater.Update(a.progress)

	if finished {
		a.Done = true
		a.updater.Complete()
	}
}

// Stop ends the animation where it is and releases the target's cache entry.
func (a *Animation) Stop() {
	if a.Done {
		return
	}
	a.Done = true
	a.updater.Complete()
}

// AnimatorConfig configures an Animator.
type AnimatorConfig struct {
	// Cache that updaters created by the Animator chain through.
	// Defaults to DefaultCache.
	Cache *Cache
}

// Animator owns the set of running animations and enforces the conflict
// protocol between them: when a new animation is added on a target that is
// already animating, the new updater is initialized first and every older
// updater on that target cedes the components the new one is armed for, all
// before the new one writes anything.
//
// There is no global animation manager — users call Update themselves.
type Animator struct {
	cache  *Cache
	active []*Animation
}

// NewAnimator creates an Animator.
func NewAnimator(cfg AnimatorConfig) *Animator {
	c := cfg.Cache
	if c == nil {
		c = DefaultCache()
	}
	return &Animator{cache: c}
}

// Cache returns the cache used by NewUpdater.
func (am *Animator) Cache() *Cache { return am.cache }

// NewUpdater creates an Updater for target bound to the Animator's cache.
func (am *Animator) NewUpdater(target Target) *Updater {
	return am.cache.NewUpdater(target)
}

// Add initializes u, makes every running animation on the same target yield
// the components u is armed for, and starts u over duration seconds.
func (am *Animator) Add(u *Updater, duration float32, fn ease.TweenFunc) *Animation {
	u.Init()
	for _, a := range am.active {
		if !a.Done {
			a.updater.Overwrite(u)
		}
	}
	a := NewAnimation(u, duration, fn)
	am.active = append(am.active, a)
	return a
}

// Update advances every running animation by dt seconds, in the order they
// were added, and drops the ones that finished.
func (am *Animator) Update(dt float32) {
	n := 0
	for _, a := range am.active {
		a.Update(dt)
		if !a.Done {
			am.active[n] = a
			n++
		}
	}
	for i := n; i < len(am.active); i++ {
		am.active[i] = nil
	}
	am.active = am.active[:n]
}

// Stop stops every running animation on target.
func (am *Animator) Stop(target Target) {
	for _, a := range am.active {
		if a.updater.target == target {
			a.Stop()
		}
	}
}

// Len returns the number of animations that have not finished.
func (am *Animator) Len() int {
	n := 0
	for _, a := range am.active {
		if !a.Done {
			n++
		}
	}
	return n
}
