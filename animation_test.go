package motion

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestAnimationReachesTarget(t *testing.T) {
	n := NewNode("pos", 10, 10)
	n.SetPosition(10, 20)

	c := NewCache()
	u := c.NewUpdater(n)
	u.AddProp("x", 100)
	u.AddProp("y", 200)
	u.Init()
	a := NewAnimation(u, 1.0, ease.Linear)

	// Exact halves avoid float32 accumulation drift.
	a.Update(0.5)
	if a.Done {
		t.Fatal("should not be done at halfway")
	}
	assertNear(t, "Progress", a.Progress(), 0.5)
	assertNear(t, "X at halfway", n.X, 55)

	a.Update(0.5)
	if !a.Done {
		t.Fatal("expected Done after full duration")
	}
	assertNear(t, "X", n.X, 100)
	assertNear(t, "Y", n.Y, 200)
	if c.Len() != 0 {
		t.Error("finished animation should release its cache entry")
	}
}

func TestAnimationZeroDurationJumpsToEnd(t *testing.T) {
	n := NewNode("n", 10, 10)
	u := NewCache().NewUpdater(n)
	u.AddProp("scaleX", 4)
	u.Init()

	a := NewAnimation(u, 0, nil)
	a.Update(0)
	if !a.Done {
		t.Fatal("zero-duration animation should finish on first update")
	}
	assertNear(t, "ScaleX", n.ScaleX, 4)
}

func TestAnimationStopsOnDisposedTarget(t *testing.T) {
	n := NewNode("n", 10, 10)
	c := NewCache()
	u := c.NewUpdater(n)
	u.AddProp("x", 100)
	u.Init()
	a := NewAnimation(u, 1.0, ease.Linear)

	a.Update(0.5)
	n.Dispose()
	a.Update(0.25)

	if !a.Done {
		t.Fatal("animation should stop once its node is disposed")
	}
	assertNear(t, "X", n.X, 50)
	if c.Len() != 0 {
		t.Error("stopped animation should release its cache entry")
	}
}

func TestAnimationDoneIgnoresUpdates(t *testing.T) {
	n := NewNode("n", 10, 10)
	u := NewCache().NewUpdater(n)
	u.AddProp("x", 100)
	u.Init()
	a := NewAnimation(u, 1.0, ease.Linear)
	a.Stop()

	a.Update(1)
	if n.X != 0 {
		t.Errorf("X = %v, want untouched 0 after Stop", n.X)
	}
}

// --- Animator ---

func TestAnimatorOverlappingAnimations(t *testing.T) {
	n := NewNode("n", 10, 10)
	am := NewAnimator(AnimatorConfig{Cache: NewCache()})

	first := am.NewUpdater(n)
	first.AddProp("x", 100)
	first.AddProp("rotation", 1)
	am.Add(first, 1.0, ease.Linear)

	am.Update(0.5)
	assertNear(t, "X at 0.5", n.X, 50)
	assertNear(t, "Rotation at 0.5", n.Rotation, 0.5)

	second := am.NewUpdater(n)
	second.AddProp("x", -50)
	am.Add(second, 1.0, ease.Linear)

	// Authority is settled before the second animation writes anything.
	if first.Armed(ComponentX) {
		t.Error("first.x should yield to the newer animation")
	}
	if !first.Armed(ComponentRotation) {
		t.Error("first.rotation should stay armed")
	}
	assertNear(t, "second x start", paramStart(t, second, ComponentX), 50)

	am.Update(0.5)
	if am.Len() != 1 {
		t.Errorf("Len() = %d after first finished, want 1", am.Len())
	}
	assertNear(t, "X", n.X, 0)
	assertNear(t, "Rotation", n.Rotation, 1)

	am.Update(0.5)
	if am.Len() != 0 {
		t.Errorf("Len() = %d, want 0", am.Len())
	}
	assertNear(t, "X", n.X, -50)
	assertNear(t, "Rotation", n.Rotation, 1)
	if am.Cache().Len() != 0 {
		t.Error("cache should be empty once every animation finished")
	}
}

func TestAnimatorIndependentTargets(t *testing.T) {
	a := NewNode("a", 10, 10)
	b := NewNode("b", 10, 10)
	am := NewAnimator(AnimatorConfig{Cache: NewCache()})

	ua := am.NewUpdater(a)
	ua.AddProp("x", 10)
	am.Add(ua, 1.0, nil)

	ub := am.NewUpdater(b)
	ub.AddProp("x", 20)
	am.Add(ub, 1.0, nil)

	if !ua.Armed(ComponentX) {
		t.Error("animations on different targets must not disarm each other")
	}

	am.Update(0.5)
	am.Update(0.5)
	assertNear(t, "a.X", a.X, 10)
	assertNear(t, "b.X", b.X, 20)
}

func TestAnimatorStop(t *testing.T) {
	n := NewNode("n", 10, 10)
	am := NewAnimator(AnimatorConfig{Cache: NewCache()})

	u := am.NewUpdater(n)
	u.AddProp("x", 100)
	anim := am.Add(u, 1.0, nil)

	am.Update(0.5)
	am.Stop(n)
	if !anim.Done {
		t.Error("Stop should end the animation")
	}
	if am.Len() != 0 {
		t.Errorf("Len() = %d, want 0", am.Len())
	}

	am.Update(0.5)
	assertNear(t, "X", n.X, 50)
}

func TestNewAnimatorDefaultsToDefaultCache(t *testing.T) {
	am := NewAnimator(AnimatorConfig{})
	if am.Cache() != DefaultCache() {
		t.Error("Animator should default to DefaultCache")
	}
}
