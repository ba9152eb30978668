// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package linear implements quaternion math for 3D rotations.
package linear

import (
	"gonum.org/v1/gonum/floats"
)

// V3 is a 3-component vector of float64.
// It holds the vector part of a Q.
type V3 [3]float64

// AddV3 returns v + w.
func AddV3(v, w V3) (u V3) {
	for i := range u {
		u[i] = v[i] + w[i]
	}
	return
}

// ScaleV3 returns s ⋅ v.
func ScaleV3(s float64, v V3) (u V3) {
	for i := range u {
		u[i] = s * v[i]
	}
	return
}

// DotV3 returns v ⋅ w.
func DotV3(v, w V3) (d float64) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

// LenV3 returns the length of v.
// Components are scaled before squaring, so it does not
// overflow for large v nor vanish for tiny v.
func LenV3(v V3) float64 { return floats.Norm(v[:], 2) }

// Cross returns v × w.
func Cross(v, w V3) (u V3) {
	u[0] = v[1]*w[2] - v[2]*w[1]
	u[1] = v[2]*w[0] - v[0]*w[2]
	u[2] = v[0]*w[1] - v[1]*w[0]
	return
}

// V4 holds the components of a Q as w, x, y, z.
// Componentwise quaternion arithmetic is done on V4s.
type V4 [4]float64

// AddV4 returns v + w.
func AddV4(v, w V4) (u V4) {
	for i := range u {
		u[i] = v[i] + w[i]
	}
	return
}

// SubV4 returns v - w.
func SubV4(v, w V4) (u V4) {
	for i := range u {
		u[i] = v[i] - w[i]
	}
	return
}

// ScaleV4 returns s ⋅ v.
func ScaleV4(s float64, v V4) (u V4) {
	for i := range u {
		u[i] = s * v[i]
	}
	return
}
