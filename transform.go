package motion

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// degenerateEpsilon bounds the magnitudes treated as zero by the decomposition
// and inversion helpers.
const degenerateEpsilon = 1e-12

// composeAffine builds an affine matrix from decomposed components.
// Returns [a, b, c, d, tx, ty].
//
// Composition order, applied to a point:
//
//	Scale -> Skew -> Rotate -> Translate(X, Y)
func composeAffine(x, y, sx, sy, skewX, skewY, rotation float64) [6]float64 {
	sin, cos := math.Sincos(rotation)

	var tanSkewX, tanSkewY float64
	if skewX != 0 {
		tanSkewX = math.Tan(skewX)
	}
	if skewY != 0 {
		tanSkewY = math.Tan(skewY)
	}

	// After Scale then Skew:
	a := sx
	b := tanSkewY * sx
	c := tanSkewX * sy
	d := sy

	// After Rotate:
	ra := cos*a - sin*b
	rb := sin*a + cos*b
	rc := cos*c - sin*d
	rd := sin*c + cos*d

	// After Translate(X, Y):
	return [6]float64{ra, rb, rc, rd, x, y}
}

// decomposeAffine splits m into the components accepted by composeAffine.
//
// The split is QR-style: the first column fixes rotation and scaleX, what
// remains is an upper-triangular shear+scale, so skewY is always 0, scaleX is
// never negative and a reflection shows up as a negative scaleY. A zero first
// column is decomposed through the second column instead.
func decomposeAffine(m [6]float64) (x, y, sx, sy, skewX, skewY, rotation float64) {
	a, b, c, d := m[0], m[1], m[2], m[3]
	x, y = m[4], m[5]

	sx = math.Hypot(a, b)
	if sx < degenerateEpsilon {
		// Only the second column carries information: rotate it onto +Y.
		sy = math.Hypot(c, d)
		if sy < degenerateEpsilon {
			return x, y, 0, 0, 0, 0, 0
		}
		return x, y, 0, sy, 0, 0, math.Atan2(-c, d)
	}

	rotation = math.Atan2(b, a)
	sin, cos := math.Sincos(rotation)

	// R(-rotation) * second column.
	shear := cos*c + sin*d
	sy = -sin*c + cos*d
	if math.Abs(sy) >= degenerateEpsilon {
		skewX = math.Atan(shear / sy)
	}
	return x, y, sx, sy, skewX, 0, rotation
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ≈ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -degenerateEpsilon && det < degenerateEpsilon {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// finiteAffine reports whether every element of m is a finite number.
func finiteAffine(m [6]float64) bool {
	for _, v := range m {
		if !finite(v) {
			return false
		}
	}
	return true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
