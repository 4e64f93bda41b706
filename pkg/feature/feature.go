// Package feature implements the structural geology data types: axial
// lineations and foliations, correlated plane/line pairs, faults with shear
// sense, and homogeneous ordered collections of each with orientation
// statistics.
//
// Axial data has no intrinsic polarity: a fold axis plunging 30 degrees
// toward 110 is the same feature as one plunging 30 toward 290. Equality,
// addition and subtraction of Lineation and Foliation therefore operate up
// to sign, which is what makes summing a set of axial measurements
// approximate a true directional average.
package feature

import (
	"errors"

	"github.com/geofabric/geofabric/pkg/geom"
)

var (
	// ErrEmptySet is returned by statistics that need at least one feature.
	ErrEmptySet = errors.New("feature: empty set")
	// ErrLengthMismatch is returned by element-wise operations on sets of
	// different lengths.
	ErrLengthMismatch = errors.New("feature: sets differ in length")
	// ErrSense is returned when a fault sense is not -1 or +1.
	ErrSense = errors.New("feature: fault sense must be -1 or +1")
	// ErrUnknownType is returned when deserializing an unrecognized
	// feature type tag.
	ErrUnknownType = errors.New("feature: unknown feature type tag")
)

// axialFix returns b flipped into the hemisphere of a, so that combining
// axial data is insensitive to the arbitrary polarity of the measurement.
// This is the single place the axial combination rule lives.
func axialFix(a, b geom.Vec3) geom.Vec3 {
	if a.Dot(b) < 0 {
		return b.Neg()
	}
	return b
}

// axialAngle returns the angle between two axial directions in [0, 90].
func axialAngle(a, b geom.Vec3) float64 {
	ua := mustUnit(a)
	ub := mustUnit(b)
	d := ua.Dot(ub)
	if d < 0 {
		d = -d
	}
	return geom.Acosd(d)
}

// axialEqual reports whether a and b are parallel or antiparallel within
// tol.
func axialEqual(a, b geom.Vec3, tol float64) bool {
	return a.Sub(b).Abs() < tol || a.Add(b).Abs() < tol
}

// mustUnit normalizes a vector that is non-zero by construction.
func mustUnit(v geom.Vec3) geom.Vec3 {
	u, err := v.Normalized()
	if err != nil {
		return v
	}
	return u
}
