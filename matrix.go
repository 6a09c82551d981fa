package motion

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrMalformedTransform is returned by ParseTransform for input that is not a
// 2D matrix() transform function.
var ErrMalformedTransform = errors.New("motion: malformed transform")

// Matrix is a 2D affine transform held as seven decomposed components plus a
// flat [a, b, c, d, tx, ty] form derived from them.
//
// Component fields may be mutated freely. The flat form is only recomputed by
// UpdateMatrix; call it before reading Affine, String or GeoM.
//
// Angles are in radians. Composition order, applied to a point:
//
//	Scale -> Skew -> Rotate -> Translate(X, Y)
type Matrix struct {
	X, Y         float64
	ScaleX       float64
	ScaleY       float64
	SkewX, SkewY float64
	Rotation     float64

	flat [6]float64
}

// NewMatrix returns an identity Matrix.
func NewMatrix() *Matrix {
	m := &Matrix{}
	m.Reset()
	return m
}

// Reset sets m to the identity transform.
func (m *Matrix) Reset() {
	m.X, m.Y = 0, 0
	m.ScaleX, m.ScaleY = 1, 1
	m.SkewX, m.SkewY = 0, 0
	m.Rotation = 0
	m.flat = identityTransform
}

// SetAffine decomposes a flat [a, b, c, d, tx, ty] matrix into m's components
// and refreshes the flat form. A nil, short, or non-finite input resets m to
// identity; the return value reports whether the input was usable.
func (m *Matrix) SetAffine(flat []float64) bool {
	if len(flat) != 6 {
		m.Reset()
		return false
	}
	var f [6]float64
	copy(f[:], flat)
	if !finiteAffine(f) {
		m.Reset()
		return false
	}
	m.X, m.Y, m.ScaleX, m.ScaleY, m.SkewX, m.SkewY, m.Rotation = decomposeAffine(f)
	m.UpdateMatrix()
	return true
}

// SetTransform parses a transform function string (see ParseTransform) and
// decomposes it into m. Unparsable input resets m to identity and returns false.
func (m *Matrix) SetTransform(s string) bool {
	f, err := ParseTransform(s)
	if err != nil {
		m.Reset()
		return false
	}
	return m.SetAffine(f[:])
}

// CopyMatrix overwrites every component of dst with the values of src and
// returns dst. The flat form is copied as well. dst keeps its identity, so
// holders of dst observe the new values.
func CopyMatrix(dst, src *Matrix) *Matrix {
	*dst = *src
	return dst
}

// UpdateMatrix recomputes the flat form from the current components.
func (m *Matrix) UpdateMatrix() {
	m.flat = composeAffine(m.X, m.Y, m.ScaleX, m.ScaleY, m.SkewX, m.SkewY, m.Rotation)
}

// Affine returns the flat form as of the last UpdateMatrix.
func (m *Matrix) Affine() [6]float64 {
	return m.flat
}

// Component returns the value of a single decomposed component.
func (m *Matrix) Component(c Component) float64 {
	switch c {
	case ComponentX:
		return m.X
	case ComponentY:
		return m.Y
	case ComponentScaleX:
		return m.ScaleX
	case ComponentScaleY:
		return m.ScaleY
	case ComponentSkewX:
		return m.SkewX
	case ComponentSkewY:
		return m.SkewY
	case ComponentRotation:
		return m.Rotation
	}
	return 0
}

// SetComponent writes a single decomposed component. The flat form is not
// recomputed.
func (m *Matrix) SetComponent(c Component, v float64) {
	switch c {
	case ComponentX:
		m.X = v
	case ComponentY:
		m.Y = v
	case ComponentScaleX:
		m.ScaleX = v
	case ComponentScaleY:
		m.ScaleY = v
	case ComponentSkewX:
		m.SkewX = v
	case ComponentSkewY:
		m.SkewY = v
	case ComponentRotation:
		m.Rotation = v
	}
}

// String renders the flat form as a CSS matrix() transform function,
// e.g. "matrix(1, 0, 0, 1, 10, 20)".
func (m *Matrix) String() string {
	return formatTransform(m.flat)
}

// GeoM returns the flat form as an ebiten.GeoM, ready for DrawImageOptions.
func (m *Matrix) GeoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m.flat[0])
	g.SetElement(1, 0, m.flat[1])
	g.SetElement(0, 1, m.flat[2])
	g.SetElement(1, 1, m.flat[3])
	g.SetElement(0, 2, m.flat[4])
	g.SetElement(1, 2, m.flat[5])
	return g
}

// SetGeoM decomposes an ebiten.GeoM into m's components.
func (m *Matrix) SetGeoM(g ebiten.GeoM) {
	m.SetAffine([]float64{
		g.Element(0, 0), g.Element(1, 0),
		g.Element(0, 1), g.Element(1, 1),
		g.Element(0, 2), g.Element(1, 2),
	})
}

// formatTransform renders a flat matrix in matrix() syntax. Magnitudes below
// degenerateEpsilon print as 0 so recomposition noise never shows up as
// exponents or "-0".
func formatTransform(f [6]float64) string {
	var sb strings.Builder
	sb.WriteString("matrix(")
	for i, v := range f {
		if i > 0 {
			sb.WriteString(", ")
		}
		if math.Abs(v) < degenerateEpsilon {
			v = 0
		}
		sb.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	sb.WriteByte(')')
	return sb.String()
}

// ParseTransform parses a 2D transform function string into a flat
// [a, b, c, d, tx, ty] matrix. It accepts "matrix(a, b, c, d, tx, ty)" with
// comma or whitespace separators, and "none" or "" for identity.
func ParseTransform(s string) ([6]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "none" {
		return identityTransform, nil
	}
	if !strings.HasPrefix(s, "matrix(") || !strings.HasSuffix(s, ")") {
		return identityTransform, fmt.Errorf("%w: %q", ErrMalformedTransform, s)
	}
	body := s[len("matrix(") : len(s)-1]
	fields := strings.FieldsFunc(body, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	if len(fields) != 6 {
		return identityTransform, fmt.Errorf("%w: want 6 values, got %d", ErrMalformedTransform, len(fields))
	}
	var out [6]float64
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return identityTransform, fmt.Errorf("%w: value %d: %w", ErrMalformedTransform, i, err)
		}
		out[i] = v
	}
	if !finiteAffine(out) {
		return identityTransform, fmt.Errorf("%w: non-finite value", ErrMalformedTransform)
	}
	return out, nil
}
