package motion

import "strconv"

// Param interpolates a single scalar transform component from a start value,
// supplied at Init, toward a fixed target as progress advances from 0 to 1.
//
// Updater treats Param as a black box; custom implementations may be
// registered with Updater.SetParam.
type Param interface {
	// Key returns the component key the param was registered under.
	Key() string
	// Init records the start value.
	Init(start float64)
	// Update returns the interpolated value at progress.
	Update(progress float64) float64
	// Delta returns target minus start. Only meaningful after Init.
	Delta() float64
	// Clone returns an independent copy carrying the same start and target.
	Clone() Param
	// String returns a short "key:target" description.
	String() string
}

// EaseParam is the default Param: start + (target-start) * ease(progress).
// Progress outside [0, 1] is clamped, so Update(0) is exactly the start value
// and Update(1) is exactly the target.
type EaseParam struct {
	key  string
	from float64
	to   float64
	ease EaseFunc
}

// NewParam creates a linearly interpolated param with the given target.
func NewParam(key string, to float64) *EaseParam {
	return NewEaseParam(key, to, nil)
}

// NewEaseParam creates a param that follows fn toward the given target.
// A nil fn means Linear.
func NewEaseParam(key string, to float64, fn EaseFunc) *EaseParam {
	if fn == nil {
		fn = Linear
	}
	return &EaseParam{key: key, to: to, ease: fn}
}

// Key implements Param.
func (p *EaseParam) Key() string { return p.key }

// Target returns the value reached at progress 1.
func (p *EaseParam) Target() float64 { return p.to }

// Start returns the value recorded by the last Init.
func (p *EaseParam) Start() float64 { return p.from }

// Init implements Param.
func (p *EaseParam) Init(start float64) {
	p.from = start
}

// Update implements Param.
func (p *EaseParam) Update(progress float64) float64 {
	if progress <= 0 {
		return p.from
	}
	if progress >= 1 {
		return p.to
	}
	return p.from + (p.to-p.from)*p.ease(progress)
}

// Delta implements Param.
func (p *EaseParam) Delta() float64 {
	return p.to - p.from
}

// Clone implements Param.
func (p *EaseParam) Clone() Param {
	cp := *p
	return &cp
}

// String implements Param.
func (p *EaseParam) String() string {
	return p.key + ":" + strconv.FormatFloat(p.to, 'g', -1, 64)
}
