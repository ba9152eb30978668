// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"gonum.org/v1/gonum/floats/scalar"
)

// Equal reports whether q and p have the same components.
// It compares with ==, so -0 equals +0 and a NaN component
// is never equal to anything.
func (q Q) Equal(p Q) bool { return q == p }

// EqualTol reports whether every component of q is within
// eps of the respective component of p.
func (q Q) EqualTol(p Q, eps float64) bool {
	u, v := q.Get(), p.Get()
	for i := range u {
		if !scalar.EqualWithinAbs(u[i], v[i], eps) {
			return false
		}
	}
	return true
}

// Hash returns a hash of q's components, taken in the
// order w, x, y, z.
// Quaternions for which Equal reports true have the
// same hash.
func (q Q) Hash() uint64 {
	var b [32]byte
	for i, c := range q.Get() {
		// Fold -0 into +0.
		if c == 0 {
			c = 0
		}
		binary.LittleEndian.PutUint64(b[i*8:], math.Float64bits(c))
	}
	return xxhash.Sum64(b[:])
}
