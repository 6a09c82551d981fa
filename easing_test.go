package motion

import (
	"errors"
	"math"
	"sort"
	"testing"

	gease "github.com/tanema/gween/ease"
)

func TestLookupEase(t *testing.T) {
	fn, err := LookupEase("inQuad")
	if err != nil {
		t.Fatalf("LookupEase: %v", err)
	}
	assertNear(t, "inQuad(0.5)", fn(0.5), 0.25)

	fn, err = LookupEase("")
	if err != nil {
		t.Fatalf("LookupEase(\"\"): %v", err)
	}
	assertNear(t, "linear(0.3)", fn(0.3), 0.3)
}

func TestLookupEaseUnknown(t *testing.T) {
	if _, err := LookupEase("wobble"); !errors.Is(err, ErrUnknownEase) {
		t.Errorf("err = %v, want ErrUnknownEase", err)
	}
}

func TestEaseNamesSortedAndResolvable(t *testing.T) {
	names := EaseNames()
	if !sort.StringsAreSorted(names) {
		t.Error("EaseNames should be sorted")
	}
	for _, name := range names {
		if _, err := LookupEase(name); err != nil {
			t.Errorf("LookupEase(%q): %v", name, err)
		}
	}
}

func TestEaseTableEndpoints(t *testing.T) {
	for _, name := range []string{"linear", "inQuad", "outQuad", "inOutQuad", "inCubic", "outCubic", "inOutCubic", "inSine", "outSine", "inOutSine"} {
		fn, _ := LookupEase(name)
		if math.Abs(fn(0)) > 1e-9 || math.Abs(fn(1)-1) > 1e-9 {
			t.Errorf("%s: f(0)=%v f(1)=%v, want 0 and 1", name, fn(0), fn(1))
		}
	}
}

func TestFromTweenFunc(t *testing.T) {
	fn := FromTweenFunc(gease.Linear)
	if math.Abs(fn(0.5)-0.5) > 1e-6 {
		t.Errorf("linear(0.5) = %v, want 0.5", fn(0.5))
	}
	fn = FromTweenFunc(gease.InQuad)
	if math.Abs(fn(0.5)-0.25) > 1e-6 {
		t.Errorf("inQuad(0.5) = %v, want 0.25", fn(0.5))
	}
}
