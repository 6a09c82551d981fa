package motion

import (
	"errors"
	"fmt"
	"sort"

	"github.com/fogleman/ease"
	gease "github.com/tanema/gween/ease"
)

// ErrUnknownEase is returned by LookupEase for names not in the easing table.
var ErrUnknownEase = errors.New("motion: unknown ease")

// EaseFunc maps linear progress in [0, 1] to eased progress. Curves must map
// 0 to 0 and 1 to 1; overshooting curves (back, elastic) may leave [0, 1] in
// between.
type EaseFunc func(t float64) float64

// Linear is the identity easing curve.
func Linear(t float64) float64 { return t }

// FromTweenFunc adapts a gween easing function so it can drive a single
// transform component.
func FromTweenFunc(fn gease.TweenFunc) EaseFunc {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

// easeTable holds the named curves accepted by LookupEase and presets.
var easeTable = map[string]EaseFunc{
	"linear":       Linear,
	"inQuad":       ease.InQuad,
	"outQuad":      ease.OutQuad,
	"inOutQuad":    ease.InOutQuad,
	"inCubic":      ease.InCubic,
	"outCubic":     ease.OutCubic,
	"inOutCubic":   ease.InOutCubic,
	"inQuart":      ease.InQuart,
	"outQuart":     ease.OutQuart,
	"inOutQuart":   ease.InOutQuart,
	"inSine":       ease.InSine,
	"outSine":      ease.OutSine,
	"inOutSine":    ease.InOutSine,
	"inExpo":       ease.InExpo,
	"outExpo":      ease.OutExpo,
	"inOutExpo":    ease.InOutExpo,
	"inCirc":       ease.InCirc,
	"outCirc":      ease.OutCirc,
	"inOutCirc":    ease.InOutCirc,
	"inBack":       ease.InBack,
	"outBack":      ease.OutBack,
	"inOutBack":    ease.InOutBack,
	"inBounce":     ease.InBounce,
	"outBounce":    ease.OutBounce,
	"inOutBounce":  ease.InOutBounce,
	"inElastic":    ease.InElastic,
	"outElastic":   ease.OutElastic,
	"inOutElastic": ease.InOutElastic,
}

// LookupEase returns the easing curve registered under name. The empty name
// resolves to Linear.
func LookupEase(name string) (EaseFunc, error) {
	if name == "" {
		return Linear, nil
	}
	fn, ok := easeTable[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEase, name)
	}
	return fn, nil
}

// EaseNames returns the sorted names accepted by LookupEase.
func EaseNames() []string {
	names := make([]string, 0, len(easeTable))
	for name := range easeTable {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
