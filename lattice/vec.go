// SPDX-License-Identifier: MIT
package lattice

import "math"

// Vec3 is a 3-vector, either Cartesian or reduced depending on context.
type Vec3 [3]float64

// Mat3 is a row-major 3×3 real matrix.
type Mat3 [3][3]float64

// Identity3 returns the 3×3 identity.
func Identity3() Mat3 {
	return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]} }

// Sub returns v − w.
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v[0] - w[0], v[1] - w[1], v[2] - w[2]} }

// Scale returns s·v.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{s * v[0], s * v[1], s * v[2]} }

// Neg returns −v.
func (v Vec3) Neg() Vec3 { return Vec3{-v[0], -v[1], -v[2]} }

// Dot returns v·w.
func (v Vec3) Dot(w Vec3) float64 { return v[0]*w[0] + v[1]*w[1] + v[2]*w[2] }

// Norm returns the Euclidean length of v.
func (v Vec3) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// Cross returns v × w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v[1]*w[2] - v[2]*w[1],
		v[2]*w[0] - v[0]*w[2],
		v[0]*w[1] - v[1]*w[0],
	}
}

// Equal reports |v_i − w_i| <= tol for every component.
func (v Vec3) Equal(w Vec3, tol float64) bool {
	for i := 0; i < 3; i++ {
		if math.Abs(v[i]-w[i]) > tol {
			return false
		}
	}

	return true
}

// IsIntegral reports whether every component lies within tol of an integer.
func (v Vec3) IsIntegral(tol float64) bool {
	for _, x := range v {
		if math.Abs(x-math.Round(x)) > tol {
			return false
		}
	}

	return true
}

// Mul returns m·n.
func (m Mat3) Mul(n Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j] + m[i][2]*n[2][j]
		}
	}

	return out
}

// MulVec returns m·v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// Transpose returns mᵀ.
func (m Mat3) Transpose() Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[j][i]
		}
	}

	return out
}

// Det returns det(m) by cofactor expansion along the first row.
func (m Mat3) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Inverse returns m⁻¹ via the adjugate. ErrSingularBasis when |det| < 1e-12.
func (m Mat3) Inverse() (Mat3, error) {
	det := m.Det()
	if math.Abs(det) < 1e-12 {
		return Mat3{}, ErrSingularBasis
	}
	var adj Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			// Cofactor of (j,i) gives the adjugate entry (i,j).
			r0, r1 := (j+1)%3, (j+2)%3
			c0, c1 := (i+1)%3, (i+2)%3
			adj[i][j] = (m[r0][c0]*m[r1][c1] - m[r0][c1]*m[r1][c0]) / det
		}
	}

	return adj, nil
}

// Equal reports |m_ij − n_ij| <= tol for every entry.
func (m Mat3) Equal(n Mat3, tol float64) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(m[i][j]-n[i][j]) > tol {
				return false
			}
		}
	}

	return true
}

// IsIntegral reports whether every entry lies within tol of an integer.
func (m Mat3) IsIntegral(tol float64) bool {
	for i := 0; i < 3; i++ {
		if !Vec3(m[i]).IsIntegral(tol) {
			return false
		}
	}

	return true
}

// Round returns m with every entry rounded to the nearest integer.
func (m Mat3) Round() Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = math.Round(m[i][j])
			if out[i][j] == 0 {
				out[i][j] = 0 // drop -0
			}
		}
	}

	return out
}
