// Package proj projects lower-hemisphere orientation data onto the unit
// disc for stereonet plotting, and bins planar directions for rose
// diagrams.
package proj

import (
	"errors"
	"math"

	"github.com/geofabric/geofabric/pkg/feature"
	"github.com/geofabric/geofabric/pkg/geom"
)

// ErrOutsideDisc reports an inverse projection of a point outside the
// unit disc.
var ErrOutsideDisc = errors.New("proj: point outside the projection disc")

// Point is a stereonet coordinate. X grows east, Y grows north, and the
// outer primitive circle has radius 1.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Projection maps lower-hemisphere unit vectors onto the unit disc.
type Projection interface {
	// Project maps a direction to disc coordinates. Upper-hemisphere
	// vectors are flipped first, consistent with axial data.
	Project(v geom.Vec3) Point
	// Inverse maps disc coordinates back to a lower-hemisphere unit
	// vector.
	Inverse(p Point) (geom.Vec3, error)
	// Name reports the projection identifier used in output.
	Name() string
}

// EqualArea is the Lambert azimuthal equal-area (Schmidt net)
// projection, r = sqrt(2)*sin(theta/2).
type EqualArea struct{}

// EqualAngle is the stereographic equal-angle (Wulff net) projection,
// r = tan(theta/2).
type EqualAngle struct{}

// project shares the azimuthal layout between the two nets.
func project(v geom.Vec3, radial func(theta float64) float64) Point {
	u := v.Scale(1 / v.Abs())
	if u.Z < 0 {
		u = u.Neg()
	}
	theta := geom.Acosd(geom.Clamp(u.Z))
	r := radial(theta)
	azi := geom.Atan2d(u.Y, u.X)
	return Point{X: r * geom.Sind(azi), Y: r * geom.Cosd(azi)}
}

// Project maps a direction onto the Schmidt net.
func (EqualArea) Project(v geom.Vec3) Point {
	return project(v, func(theta float64) float64 {
		return math.Sqrt2 * geom.Sind(theta/2)
	})
}

// Inverse maps Schmidt net coordinates back to a direction.
func (EqualArea) Inverse(p Point) (geom.Vec3, error) {
	r := math.Hypot(p.X, p.Y)
	if r > 1+1e-12 {
		return geom.Vec3{}, ErrOutsideDisc
	}
	theta := 2 * geom.Asind(math.Min(1, r/math.Sqrt2))
	azi := geom.Atan2d(p.X, p.Y)
	return dirVec(azi, theta), nil
}

// Name reports the projection identifier.
func (EqualArea) Name() string { return "equal-area" }

// Project maps a direction onto the Wulff net.
func (EqualAngle) Project(v geom.Vec3) Point {
	return project(v, func(theta float64) float64 {
		return geom.Tand(theta / 2)
	})
}

// Inverse maps Wulff net coordinates back to a direction.
func (EqualAngle) Inverse(p Point) (geom.Vec3, error) {
	r := math.Hypot(p.X, p.Y)
	if r > 1+1e-12 {
		return geom.Vec3{}, ErrOutsideDisc
	}
	theta := 2 * geom.Atand(r)
	azi := geom.Atan2d(p.X, p.Y)
	return dirVec(azi, theta), nil
}

// Name reports the projection identifier.
func (EqualAngle) Name() string { return "equal-angle" }

// dirVec rebuilds a unit vector from azimuth and polar distance from
// the vertical.
func dirVec(azi, theta float64) geom.Vec3 {
	return geom.V3(
		geom.Sind(theta)*geom.Cosd(azi),
		geom.Sind(theta)*geom.Sind(azi),
		geom.Cosd(theta),
	)
}

// ByName returns the projection matching the given identifier, or
// EqualArea for anything unrecognized.
func ByName(name string) Projection {
	if name == "equal-angle" {
		return EqualAngle{}
	}
	return EqualArea{}
}

// ProjectVecs projects a vector sample, one point per vector.
func ProjectVecs(p Projection, vs []geom.Vec3) []Point {
	out := make([]Point, len(vs))
	for i, v := range vs {
		out[i] = p.Project(v)
	}
	return out
}

// GreatCircle traces the projected great circle of a plane with n
// points, sweeping the rake from 0 to 180 degrees.
func GreatCircle(p Projection, f feature.Foliation, n int) []Point {
	out := make([]Point, n)
	for i := 0; i < n; i++ {
		rake := 180 * float64(i) / float64(n-1)
		out[i] = p.Project(f.Rake(rake).Vec())
	}
	return out
}

// SmallCircle traces the projected cone of half-apex angle around axis
// with n points. Segments dipping into the upper hemisphere are flipped
// by Project, which shows as the usual re-entering arc.
func SmallCircle(p Projection, axis geom.Vec3, angle float64, n int) []Point {
	u := axis.Scale(1 / axis.Abs())
	// A vector at the cone angle from the axis, swept around it.
	perp := u.Cross(geom.V3(u.Y, -u.X, 0))
	if perp.IsZero() {
		perp = geom.V3(1, 0, 0)
	}
	start := u.Rotate(perp, angle)
	out := make([]Point, n)
	for i := 0; i < n; i++ {
		sweep := 360 * float64(i) / float64(n-1)
		out[i] = p.Project(start.Rotate(u, sweep))
	}
	return out
}
