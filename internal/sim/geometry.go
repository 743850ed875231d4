package sim

import (
	"fmt"
	"math"

	"github.com/framehaus/cadbridge/internal/cadwork"
)

// Local axis system of an element. xl runs along p1->p2, zl is the
// height direction derived from p3, yl completes the right-handed frame.
func (e *element) axes() (xl, yl, zl cadwork.Point) {
	xl = e.p2.Sub(e.p1).Normalized()
	up := e.p3.Sub(e.p1)
	// Remove the axial component so zl is orthogonal to xl.
	zl = up.Sub(xl.Scale(up.Dot(xl)))
	if zl.Length() == 0 {
		zl = perpendicular(xl)
	}
	zl = zl.Normalized()
	yl = zl.Cross(xl).Normalized()
	return xl, yl, zl
}

func perpendicular(v cadwork.Point) cadwork.Point {
	ref := cadwork.Point{Z: 1}
	if math.Abs(v.Dot(ref)) > 0.999*v.Length() {
		ref = cadwork.Point{X: 1}
	}
	return v.Cross(ref)
}

func (e *element) length() float64 {
	return e.p1.Distance(e.p2)
}

func (e *element) volume() float64 {
	l := e.length()
	if e.typ == cadwork.TypeDrilling {
		r := e.width / 2
		return math.Pi * r * r * l
	}
	return e.width * e.height * l
}

func (e *element) corners() []cadwork.Point {
	_, yl, zl := e.axes()
	halfW := yl.Scale(e.width / 2)
	halfH := zl.Scale(e.height / 2)
	out := make([]cadwork.Point, 0, 8)
	for _, end := range []cadwork.Point{e.p1, e.p2} {
		out = append(out,
			end.Sub(halfW).Sub(halfH),
			end.Add(halfW).Sub(halfH),
			end.Add(halfW).Add(halfH),
			end.Sub(halfW).Add(halfH),
		)
	}
	return out
}

func (m *Model) geometryValue(id int, f func(*element) float64) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, err := m.get(id)
	if err != nil {
		return 0, err
	}
	return f(e), nil
}

func (m *Model) geometryPoint(id int, f func(*element) cadwork.Point) (cadwork.Point, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, err := m.get(id)
	if err != nil {
		return cadwork.Point{}, err
	}
	return f(e), nil
}

func (m *Model) Width(id int) (float64, error) {
	return m.geometryValue(id, func(e *element) float64 { return e.width })
}

func (m *Model) Height(id int) (float64, error) {
	return m.geometryValue(id, func(e *element) float64 { return e.height })
}

func (m *Model) Length(id int) (float64, error) {
	return m.geometryValue(id, (*element).length)
}

func (m *Model) Volume(id int) (float64, error) {
	return m.geometryValue(id, (*element).volume)
}

// Weight derives from the material density table; volume is mm3 and
// densities are kg/m3, hence the 1e9 factor.
func (m *Model) Weight(id int) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, err := m.get(id)
	if err != nil {
		return 0, err
	}
	return e.volume() * m.density(e.material) / 1e9, nil
}

func (m *Model) XL(id int) (cadwork.Point, error) {
	return m.geometryPoint(id, func(e *element) cadwork.Point { xl, _, _ := e.axes(); return xl })
}

func (m *Model) YL(id int) (cadwork.Point, error) {
	return m.geometryPoint(id, func(e *element) cadwork.Point { _, yl, _ := e.axes(); return yl })
}

func (m *Model) ZL(id int) (cadwork.Point, error) {
	return m.geometryPoint(id, func(e *element) cadwork.Point { _, _, zl := e.axes(); return zl })
}

func (m *Model) P1(id int) (cadwork.Point, error) {
	return m.geometryPoint(id, func(e *element) cadwork.Point { return e.p1 })
}

func (m *Model) P2(id int) (cadwork.Point, error) {
	return m.geometryPoint(id, func(e *element) cadwork.Point { return e.p2 })
}

func (m *Model) P3(id int) (cadwork.Point, error) {
	return m.geometryPoint(id, func(e *element) cadwork.Point { return e.p3 })
}

func (m *Model) CenterOfGravity(id int) (cadwork.Point, error) {
	return m.geometryPoint(id, func(e *element) cadwork.Point {
		return e.p1.Add(e.p2).Scale(0.5)
	})
}

func (m *Model) CenterOfGravityForList(ids []int) (cadwork.Point, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	elems, err := m.getAll(ids)
	if err != nil {
		return cadwork.Point{}, err
	}
	var sum cadwork.Point
	total := 0.0
	for _, e := range elems {
		v := e.volume()
		sum = sum.Add(e.p1.Add(e.p2).Scale(0.5).Scale(v))
		total += v
	}
	if total == 0 {
		return cadwork.Point{}, fmt.Errorf("elements have no volume")
	}
	return sum.Scale(1 / total), nil
}

func (m *Model) Vertices(id int) ([]cadwork.Point, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, err := m.get(id)
	if err != nil {
		return nil, err
	}
	if len(e.vertices) > 0 {
		return append([]cadwork.Point(nil), e.vertices...), nil
	}
	return e.corners(), nil
}

// MinimumDistance is the closest approach of the two element axes.
func (m *Model) MinimumDistance(firstID, secondID int) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, err := m.get(firstID)
	if err != nil {
		return 0, err
	}
	b, err := m.get(secondID)
	if err != nil {
		return 0, err
	}
	return segmentDistance(a.p1, a.p2, b.p1, b.p2), nil
}

// segmentDistance computes the minimum distance between segments
// [p1,p2] and [q1,q2] by clamping the closest-point parameters.
func segmentDistance(p1, p2, q1, q2 cadwork.Point) float64 {
	d1 := p2.Sub(p1)
	d2 := q2.Sub(q1)
	r := p1.Sub(q1)

	a := d1.Dot(d1)
	e := d2.Dot(d2)
	f := d2.Dot(r)

	var s, t float64
	switch {
	case a == 0 && e == 0:
		return p1.Distance(q1)
	case a == 0:
		t = clamp01(f / e)
	default:
		c := d1.Dot(r)
		if e == 0 {
			s = clamp01(-c / a)
		} else {
			b := d1.Dot(d2)
			denom := a*e - b*b
			if denom != 0 {
				s = clamp01((b*f - c*e) / denom)
			}
			t = clamp01((b*s + f) / e)
			s = clamp01((b*t - c) / a)
		}
	}
	cp1 := p1.Add(d1.Scale(s))
	cp2 := q1.Add(d2.Scale(t))
	return cp1.Distance(cp2)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Facets returns the six bounding faces of the element box.
func (m *Model) Facets(id int) ([][]cadwork.Point, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, err := m.get(id)
	if err != nil {
		return nil, err
	}
	c := e.corners()
	quads := [][4]int{
		{0, 1, 2, 3}, // p1 end cap
		{4, 5, 6, 7}, // p2 end cap
		{0, 1, 5, 4},
		{1, 2, 6, 5},
		{2, 3, 7, 6},
		{3, 0, 4, 7},
	}
	facets := make([][]cadwork.Point, 0, len(quads))
	for _, q := range quads {
		facets = append(facets, []cadwork.Point{c[q[0]], c[q[1]], c[q[2]], c[q[3]]})
	}
	return facets, nil
}

func (m *Model) ReferenceFaceArea(id int) (float64, error) {
	return m.geometryValue(id, func(e *element) float64 {
		return e.length() * e.height
	})
}

func (m *Model) TotalFaceArea(id int) (float64, error) {
	return m.geometryValue(id, func(e *element) float64 {
		l, w, h := e.length(), e.width, e.height
		return 2 * (w*h + w*l + h*l)
	})
}

// rotateAround rotates point p around the axis through origin with unit
// direction u by angle rad (Rodrigues' formula).
func rotateAround(p, origin, u cadwork.Point, rad float64) cadwork.Point {
	v := p.Sub(origin)
	cos, sin := math.Cos(rad), math.Sin(rad)
	rotated := v.Scale(cos).
		Add(u.Cross(v).Scale(sin)).
		Add(u.Scale(u.Dot(v) * (1 - cos)))
	return origin.Add(rotated)
}

func (m *Model) RotateElements(ids []int, origin, axis cadwork.Point, angleDeg float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if axis.Length() == 0 {
		return fmt.Errorf("rotation axis must be a non-zero vector")
	}
	elems, err := m.getAll(ids)
	if err != nil {
		return err
	}
	u := axis.Normalized()
	rad := angleDeg * math.Pi / 180
	for _, e := range elems {
		e.p1 = rotateAround(e.p1, origin, u, rad)
		e.p2 = rotateAround(e.p2, origin, u, rad)
		e.p3 = rotateAround(e.p3, origin, u, rad)
		for i := range e.vertices {
			e.vertices[i] = rotateAround(e.vertices[i], origin, u, rad)
		}
	}
	return nil
}

func (m *Model) ApplyGlobalScale(ids []int, factor float64, origin cadwork.Point) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if factor <= 0 {
		return fmt.Errorf("scale factor must be positive, got %g", factor)
	}
	elems, err := m.getAll(ids)
	if err != nil {
		return err
	}
	scale := func(p cadwork.Point) cadwork.Point {
		return origin.Add(p.Sub(origin).Scale(factor))
	}
	for _, e := range elems {
		e.p1 = scale(e.p1)
		e.p2 = scale(e.p2)
		e.p3 = scale(e.p3)
		for i := range e.vertices {
			e.vertices[i] = scale(e.vertices[i])
		}
		e.width *= factor
		e.height *= factor
	}
	return nil
}

// InvertModel flips the element axes (p1 and p2 swap).
func (m *Model) InvertModel(ids []int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	elems, err := m.getAll(ids)
	if err != nil {
		return err
	}
	for _, e := range elems {
		e.p1, e.p2 = e.p2, e.p1
	}
	return nil
}

// RotateHeightAxis90 spins the cross-section a quarter turn around the
// length axis.
func (m *Model) RotateHeightAxis90(ids []int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	elems, err := m.getAll(ids)
	if err != nil {
		return err
	}
	for _, e := range elems {
		u := e.p2.Sub(e.p1).Normalized()
		e.p3 = rotateAround(e.p3, e.p1, u, math.Pi/2)
		e.width, e.height = e.height, e.width
	}
	return nil
}

// RotateLengthAxis90 turns the element a quarter turn around its height
// axis through p1.
func (m *Model) RotateLengthAxis90(ids []int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	elems, err := m.getAll(ids)
	if err != nil {
		return err
	}
	for _, e := range elems {
		_, _, zl := e.axes()
		e.p2 = rotateAround(e.p2, e.p1, zl, math.Pi/2)
		for i := range e.vertices {
			e.vertices[i] = rotateAround(e.vertices[i], e.p1, zl, math.Pi/2)
		}
	}
	return nil
}
