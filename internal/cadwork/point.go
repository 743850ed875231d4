package cadwork

import (
	"encoding/json"
	"fmt"
	"math"
)

// Point is a 3D coordinate or direction vector in model space
// (millimetres). On the wire it travels as a [x, y, z] array.
type Point struct {
	X, Y, Z float64
}

// ParsePoint converts a decoded JSON value ([x,y,z] array of numbers)
// into a Point.
func ParsePoint(v any) (Point, error) {
	raw, ok := v.([]any)
	if !ok || len(raw) != 3 {
		return Point{}, fmt.Errorf("invalid point %v: expected [x, y, z]", v)
	}
	var p Point
	coords := [3]*float64{&p.X, &p.Y, &p.Z}
	for i, c := range raw {
		f, ok := toFloat(c)
		if !ok {
			return Point{}, fmt.Errorf("invalid coordinate %v in point %v", c, v)
		}
		*coords[i] = f
	}
	return p, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// Slice returns the wire representation [x, y, z].
func (p Point) Slice() []float64 {
	return []float64{p.X, p.Y, p.Z}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Scale returns p scaled by f.
func (p Point) Scale(f float64) Point {
	return Point{p.X * f, p.Y * f, p.Z * f}
}

// Length returns the vector magnitude.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// Distance returns the distance between p and q.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Normalized returns the unit vector in p's direction, or the zero
// point when p has no magnitude.
func (p Point) Normalized() Point {
	l := p.Length()
	if l == 0 {
		return Point{}
	}
	return p.Scale(1 / l)
}

// Cross returns the cross product p x q.
func (p Point) Cross(q Point) Point {
	return Point{
		X: p.Y*q.Z - p.Z*q.Y,
		Y: p.Z*q.X - p.X*q.Z,
		Z: p.X*q.Y - p.Y*q.X,
	}
}

// Dot returns the dot product p . q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// PointSlices converts points to their wire representation.
func PointSlices(pts []Point) [][]float64 {
	out := make([][]float64, len(pts))
	for i, p := range pts {
		out[i] = p.Slice()
	}
	return out
}
