package sim

import (
	"fmt"

	"github.com/framehaus/cadbridge/internal/cadwork"
)

// CheckProductionList reports findings for a production list. The
// simulator has no production lists, so it only validates the id.
func (m *Model) CheckProductionList(listID int) ([]string, error) {
	if listID < 0 {
		return nil, fmt.Errorf("invalid production list id %d", listID)
	}
	return nil, nil
}

// AddWallSectionX adds a section view through the wall along x and
// returns the new section element id.
func (m *Model) AddWallSectionX(wallID int) (int, error) {
	return m.addWallSection(wallID, cadwork.Point{X: 1})
}

// AddWallSectionY adds a section view through the wall along y.
func (m *Model) AddWallSectionY(wallID int) (int, error) {
	return m.addWallSection(wallID, cadwork.Point{Y: 1})
}

func (m *Model) addWallSection(wallID int, direction cadwork.Point) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	wall, err := m.get(wallID)
	if err != nil {
		return 0, err
	}
	center := wall.p1.Add(wall.p2).Scale(0.5)
	return m.insert(&element{
		typ: cadwork.TypeDimension,
		p1:  center,
		p2:  center.Add(direction.Scale(wall.height + 1)),
		p3:  center.Add(cadwork.Point{Z: 1}),
	}), nil
}
