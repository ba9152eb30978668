// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Q is a quaternion of float64.
// R is the scalar part (w) and V is the vector part
// (x, y, z).
//
// The zero value is the zero quaternion. Assigning a Q
// copies all of its components.
//
// No constraint is placed on the length of a Q. In
// particular, only the Norm method produces a unit
// quaternion.
type Q struct {
	V V3
	R float64
}

// ErrZeroLen is returned by the strict variants of Inv
// and Norm when the quaternion's length is zero.
var ErrZeroLen = errors.New("linear: zero-length quaternion")

// NewQ returns the quaternion w + xi + yj + zk.
func NewQ(w, x, y, z float64) Q { return Q{V: V3{x, y, z}, R: w} }

// AxisAngle returns a quaternion that represents a rotation
// of angle radians about the axis [x, y, z].
// The axis need not be normalized.
// If the axis is the zero vector, the vector part of the
// result is zero, so it will not be a unit quaternion
// unless cos(angle/2) is ±1.
func AxisAngle(angle, x, y, z float64) Q {
	var q Q
	a := angle / 2
	q.R = math.Cos(a)
	if x != 0 || y != 0 || z != 0 {
		axis := V3{x, y, z}
		n := LenV3(axis)
		s := math.Sin(a)
		for i := range axis {
			q.V[i] = axis[i] / n * s
		}
	}
	return q
}

// W returns the scalar component.
func (q Q) W() float64 { return q.R }

// X returns the i component.
func (q Q) X() float64 { return q.V[0] }

// Y returns the j component.
func (q Q) Y() float64 { return q.V[1] }

// Z returns the k component.
func (q Q) Z() float64 { return q.V[2] }

// Get returns the components of q as [w, x, y, z].
func (q Q) Get() V4 { return V4{q.R, q.V[0], q.V[1], q.V[2]} }

// Scalar returns the scalar part of q.
func (q Q) Scalar() float64 { return q.R }

// Vector returns the vector part of q.
func (q Q) Vector() V3 { return q.V }

// Angle returns the rotation angle that q represents,
// computed as 2 ⋅ acos(w).
// It is in the range [0, 2π] when w is in [-1, 1] and
// NaN otherwise.
func (q Q) Angle() float64 { return 2 * math.Acos(q.R) }

// VectorString formats the vector part of q as ±xi±yj±zk.
func (q Q) VectorString() string {
	return fmt.Sprintf("%+fi%+fj%+fk", q.V[0], q.V[1], q.V[2])
}

// String formats q as w±xi±yj±zk.
func (q Q) String() string {
	return fmt.Sprintf("%f%+fi%+fj%+fk", q.R, q.V[0], q.V[1], q.V[2])
}

// SetW sets the scalar component of q.
func (q *Q) SetW(w float64) { q.R = w }

// SetX sets the i component of q.
func (q *Q) SetX(x float64) { q.V[0] = x }

// SetY sets the j component of q.
func (q *Q) SetY(y float64) { q.V[1] = y }

// SetZ sets the k component of q.
func (q *Q) SetZ(z float64) { q.V[2] = z }

// SetAngle sets the scalar component of q to cos(angle/2).
// The vector part is left as is, thus the result will
// only represent a rotation of angle radians if q.V is
// already the axis scaled by sin(angle/2).
func (q *Q) SetAngle(angle float64) { q.R = math.Cos(angle / 2) }

// WithW returns a copy of q whose scalar component is w.
func (q Q) WithW(w float64) Q { q.SetW(w); return q }

// WithX returns a copy of q whose i component is x.
func (q Q) WithX(x float64) Q { q.SetX(x); return q }

// WithY returns a copy of q whose j component is y.
func (q Q) WithY(y float64) Q { q.SetY(y); return q }

// WithZ returns a copy of q whose k component is z.
func (q Q) WithZ(z float64) Q { q.SetZ(z); return q }

// WithAngle is the non-mutating form of SetAngle.
func (q Q) WithAngle(angle float64) Q { q.SetAngle(angle); return q }

// Conj returns the conjugate of q.
func (q Q) Conj() Q { return NewQ(q.R, -q.V[0], -q.V[1], -q.V[2]) }

// Len returns the length (modulus) of q.
// It does not overflow nor underflow for components whose
// magnitudes are representable.
func (q Q) Len() float64 { return quat.Abs(q.Number()) }

// fromV4 is the inverse of Q.Get.
func fromV4(v V4) Q { return NewQ(v[0], v[1], v[2], v[3]) }

// Add returns q + p.
func (q Q) Add(p Q) Q { return fromV4(AddV4(q.Get(), p.Get())) }

// Sub returns q - p.
func (q Q) Sub(p Q) Q { return fromV4(SubV4(q.Get(), p.Get())) }

// Scale returns s ⋅ q.
func (q Q) Scale(s float64) Q { return fromV4(ScaleV4(s, q.Get())) }

// Mul returns q ⋅ p (the Hamilton product).
// Note that it is not commutative.
func (q Q) Mul(p Q) Q {
	v := AddV3(ScaleV3(p.R, q.V), ScaleV3(q.R, p.V))
	v = AddV3(v, Cross(q.V, p.V))
	return NewQ(q.R*p.R-DotV3(q.V, p.V), v[0], v[1], v[2])
}

// Inv returns the inverse of q.
// If q has zero length, it returns q itself.
func (q Q) Inv() Q {
	n := q.Len()
	if n == 0 {
		return q
	}
	return q.inv(n)
}

// InvStrict is like Inv but fails with ErrZeroLen
// instead of returning a zero-length q.
func (q Q) InvStrict() (Q, error) {
	n := q.Len()
	if n == 0 {
		return q, ErrZeroLen
	}
	return q.inv(n), nil
}

// inv computes the inverse of q given its length n.
// It divides by n twice rather than by n², which could
// overflow or underflow.
func (q Q) inv(n float64) Q {
	u := q.norm(n)
	return NewQ(u.R/n, -u.V[0]/n, -u.V[1]/n, -u.V[2]/n)
}

// Norm returns q normalized.
// If q has zero length, it returns q itself.
func (q Q) Norm() Q {
	n := q.Len()
	if n == 0 {
		return q
	}
	return q.norm(n)
}

// NormStrict is like Norm but fails with ErrZeroLen
// instead of returning a zero-length q.
func (q Q) NormStrict() (Q, error) {
	n := q.Len()
	if n == 0 {
		return q, ErrZeroLen
	}
	return q.norm(n), nil
}

// norm computes q normalized given its length n.
func (q Q) norm(n float64) Q {
	return NewQ(q.R/n, q.V[0]/n, q.V[1]/n, q.V[2]/n)
}

// Rotate returns v rotated by q, computed as
// q ⋅ v ⋅ q⁻¹ with v taken as a pure quaternion.
// q need not be a unit quaternion, but if it has
// zero length the result is the zero vector.
func (q Q) Rotate(v V3) V3 {
	return q.Mul(Q{V: v}).Mul(q.Inv()).V
}
