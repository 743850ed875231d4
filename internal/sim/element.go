package sim

import (
	"fmt"
	"math"

	"github.com/framehaus/cadbridge/internal/cadwork"
)

// defaultP3 mirrors the vendor default when no orientation point is
// given: p1 shifted by one unit in z.
func defaultP3(p1 cadwork.Point) cadwork.Point {
	return cadwork.Point{X: p1.X, Y: p1.Y, Z: p1.Z + 1}
}

func orientation(p3 *cadwork.Point, p1 cadwork.Point) cadwork.Point {
	if p3 != nil {
		return *p3
	}
	return defaultP3(p1)
}

func (m *Model) CreateRectangularBeam(width, height float64, p1, p2, p3 cadwork.Point) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := validAxis(p1, p2); err != nil {
		return 0, err
	}
	return m.insert(&element{
		typ: cadwork.TypeBeam,
		p1:  p1, p2: p2, p3: p3,
		width: width, height: height,
	}), nil
}

func (m *Model) CreateRectangularPanel(width, thickness float64, p1, p2, p3 cadwork.Point) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := validAxis(p1, p2); err != nil {
		return 0, err
	}
	return m.insert(&element{
		typ: cadwork.TypePanel,
		p1:  p1, p2: p2, p3: p3,
		width: width, height: thickness,
	}), nil
}

func (m *Model) CreateCircularBeam(diameter float64, p1, p2 cadwork.Point, p3 *cadwork.Point) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := validAxis(p1, p2); err != nil {
		return 0, err
	}
	return m.insert(&element{
		typ: cadwork.TypeBeam,
		p1:  p1, p2: p2, p3: orientation(p3, p1),
		width: diameter, height: diameter,
	}), nil
}

func (m *Model) CreateSquareBeam(width float64, p1, p2 cadwork.Point, p3 *cadwork.Point) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := validAxis(p1, p2); err != nil {
		return 0, err
	}
	return m.insert(&element{
		typ: cadwork.TypeBeam,
		p1:  p1, p2: p2, p3: orientation(p3, p1),
		width: width, height: width,
	}), nil
}

// Standard element catalogs ship with the vendor install; the simulator
// accepts any non-empty name and records it.
func (m *Model) CreateStandardBeam(standardName string, p1, p2 cadwork.Point, p3 *cadwork.Point) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if standardName == "" {
		return 0, fmt.Errorf("standard element name is empty")
	}
	if err := validAxis(p1, p2); err != nil {
		return 0, err
	}
	return m.insert(&element{
		typ: cadwork.TypeBeam,
		p1:  p1, p2: p2, p3: orientation(p3, p1),
		width: 120, height: 120,
		standardName: standardName,
	}), nil
}

func (m *Model) CreateStandardPanel(standardName string, p1, p2 cadwork.Point, p3 *cadwork.Point) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if standardName == "" {
		return 0, fmt.Errorf("standard element name is empty")
	}
	if err := validAxis(p1, p2); err != nil {
		return 0, err
	}
	return m.insert(&element{
		typ: cadwork.TypePanel,
		p1:  p1, p2: p2, p3: orientation(p3, p1),
		width: 600, height: 20,
		standardName: standardName,
	}), nil
}

func (m *Model) CreateDrilling(diameter float64, p1, p2 cadwork.Point) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := validAxis(p1, p2); err != nil {
		return 0, err
	}
	return m.insert(&element{
		typ: cadwork.TypeDrilling,
		p1:  p1, p2: p2, p3: defaultP3(p1),
		width: diameter, height: diameter,
	}), nil
}

func (m *Model) CreatePolygonBeam(vertices []cadwork.Point, thickness float64, xl, zl cadwork.Point) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(vertices) < 3 {
		return 0, fmt.Errorf("polygon needs at least 3 vertices, got %d", len(vertices))
	}
	if xl.Length() == 0 || zl.Length() == 0 {
		return 0, fmt.Errorf("polygon axes must be non-zero vectors")
	}
	p1 := vertices[0]
	p2 := p1.Add(xl.Normalized().Scale(thickness))
	return m.insert(&element{
		typ: cadwork.TypeBeam,
		p1:  p1, p2: p2, p3: p1.Add(zl.Normalized()),
		width: polygonExtent(vertices), height: thickness,
		vertices: append([]cadwork.Point(nil), vertices...),
	}), nil
}

func validAxis(p1, p2 cadwork.Point) error {
	if p1.Distance(p2) == 0 {
		return fmt.Errorf("axis points coincide at [%g, %g, %g]", p1.X, p1.Y, p1.Z)
	}
	return nil
}

func polygonExtent(vertices []cadwork.Point) float64 {
	max := 0.0
	for _, v := range vertices[1:] {
		if d := vertices[0].Distance(v); d > max {
			max = d
		}
	}
	return math.Round(max)
}

func (m *Model) ActiveElementIDs() ([]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.collect(func(e *element) bool { return e.active }), nil
}

func (m *Model) AllElementIDs() ([]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.collect(func(e *element) bool { return true }), nil
}

func (m *Model) VisibleElementIDs() ([]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.collect(func(e *element) bool { return e.visible }), nil
}

func (m *Model) UserElementIDs(count int) ([]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := append([]int(nil), m.userSelection...)
	if count > 0 && len(ids) > count {
		ids = ids[:count]
	}
	return ids, nil
}

func (m *Model) collect(keep func(*element) bool) []int {
	ids := make([]int, 0, len(m.order))
	for _, id := range m.order {
		if keep(m.elements[id]) {
			ids = append(ids, id)
		}
	}
	return ids
}

func (m *Model) DeleteElements(ids []int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, err := m.getAll(ids); err != nil {
		return err
	}
	for _, id := range ids {
		m.remove(id)
	}
	return nil
}

func (m *Model) CopyElements(ids []int, vector cadwork.Point) ([]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	elems, err := m.getAll(ids)
	if err != nil {
		return nil, err
	}
	newIDs := make([]int, 0, len(elems))
	for _, e := range elems {
		c := e.clone()
		c.translate(vector)
		newIDs = append(newIDs, m.insert(c))
	}
	return newIDs, nil
}

func (m *Model) MoveElements(ids []int, vector cadwork.Point) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	elems, err := m.getAll(ids)
	if err != nil {
		return err
	}
	for _, e := range elems {
		e.translate(vector)
	}
	return nil
}

func (e *element) translate(v cadwork.Point) {
	e.p1 = e.p1.Add(v)
	e.p2 = e.p2.Add(v)
	e.p3 = e.p3.Add(v)
	for i := range e.vertices {
		e.vertices[i] = e.vertices[i].Add(v)
	}
}

func (m *Model) ElementType(id int) (cadwork.ElementType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, err := m.get(id)
	if err != nil {
		return cadwork.TypeNone, err
	}
	return e.typ, nil
}
