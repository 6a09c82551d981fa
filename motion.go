package motion

// Component identifies one decomposed parameter of a 2D affine transform.
// The set is closed: there is no extension mechanism.
type Component uint8

const (
	ComponentX        Component = iota // horizontal translation
	ComponentY                         // vertical translation
	ComponentScaleX                    // horizontal scale factor
	ComponentScaleY                    // vertical scale factor
	ComponentSkewX                     // horizontal skew angle (radians)
	ComponentSkewY                     // vertical skew angle (radians)
	ComponentRotation                  // rotation angle (radians)

	componentCount
)

// componentKeys holds the registration key of each component, indexed by Component.
var componentKeys = [componentCount]string{
	ComponentX:        "x",
	ComponentY:        "y",
	ComponentScaleX:   "scaleX",
	ComponentScaleY:   "scaleY",
	ComponentSkewX:    "skewX",
	ComponentSkewY:    "skewY",
	ComponentRotation: "rotation",
}

// Components returns every recognized component in registration order.
func Components() []Component {
	out := make([]Component, componentCount)
	for i := range out {
		out[i] = Component(i)
	}
	return out
}

// String returns the registration key for c ("x", "scaleX", "rotation", ...).
func (c Component) String() string {
	if c >= componentCount {
		return "unknown"
	}
	return componentKeys[c]
}

// IsAngle reports whether c is measured in radians.
func (c Component) IsAngle() bool {
	return c == ComponentSkewX || c == ComponentSkewY || c == ComponentRotation
}

// ParseComponent maps a registration key to its Component.
// Keys are case-sensitive; ok is false for anything unrecognized.
func ParseComponent(key string) (c Component, ok bool) {
	for i, k := range componentKeys {
		if k == key {
			return Component(i), true
		}
	}
	return 0, false
}
