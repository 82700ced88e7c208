package spirograph

import "math"

// Vec is a 2D displacement between two points.
type Vec struct {
	X, Y float64
}

// Length returns the Euclidean length of the vector.
func (v Vec) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Point is a mutable 2D position.
//
// The kinematic model keeps a fixed set of Points alive for the lifetime of
// a Session and only ever overwrites their coordinates, so most methods take
// a pointer receiver and mutate in place.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// SetPosition overwrites the position of p.
func (p *Point) SetPosition(x, y float64) {
	p.X = x
	p.Y = y
}

// DeltaTo returns the vector from p to q.
func (p Point) DeltaTo(q Point) Vec {
	return Vec{X: q.X - p.X, Y: q.Y - p.Y}
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return p.DeltaTo(q).Length()
}

// AngleTo returns the direction from p to q in radians.
//
// The angle is measured from the positive Y axis towards the positive X
// axis, which is the convention RotateAbout expects (x uses sin, y uses
// cos). It is built from atan(dx/dy) folded into [0, π) and shifted by π
// for the left half-plane, not from math.Atan2; the phase of every drawn
// curve depends on this exact construction.
//
// It agrees with atan2(dx, dy) folded into [0, 2π) except just right of
// the -Y axis: for dy < 0 and dx > 0 small enough that atan(dx/dy)+π
// rounds to π, the result is 0 instead of about π.
//
// When p and q coincide the result is NaN.
func (p Point) AngleTo(q Point) float64 {
	d := p.DeltaTo(q)
	angle := math.Mod(math.Atan(d.X/d.Y)+math.Pi, math.Pi)
	if d.X < 0 || (d.X == 0 && d.Y < 0) {
		angle += math.Pi
	}
	return angle
}

// RotateAbout rotates p about pivot by delta radians, keeping its distance
// to pivot. It mutates p and returns it for chaining.
//
// Rotating a point that coincides with pivot yields a NaN position.
func (p *Point) RotateAbout(pivot Point, delta float64) *Point {
	distance := p.DistanceTo(pivot)
	angle := pivot.AngleTo(*p) + delta
	p.X = pivot.X + distance*math.Sin(angle)
	p.Y = pivot.Y + distance*math.Cos(angle)
	return p
}

// IsNaN reports whether either coordinate of p is NaN.
func (p Point) IsNaN() bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y)
}
