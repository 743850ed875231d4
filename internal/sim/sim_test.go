package sim

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/framehaus/cadbridge/internal/cadwork"
)

func newBeam(t *testing.T, m *Model, length float64) int {
	t.Helper()
	id, err := m.CreateRectangularBeam(120, 240,
		cadwork.Point{}, cadwork.Point{X: length}, cadwork.Point{Z: 1})
	require.NoError(t, err)
	return id
}

func TestCreateBeamGeometry(t *testing.T) {
	m := NewModel()
	id := newBeam(t, m, 3000)

	length, err := m.Length(id)
	require.NoError(t, err)
	require.InDelta(t, 3000, length, 1e-9)

	width, err := m.Width(id)
	require.NoError(t, err)
	require.InDelta(t, 120, width, 1e-9)

	volume, err := m.Volume(id)
	require.NoError(t, err)
	require.InDelta(t, 120*240*3000, volume, 1e-6)

	typ, err := m.ElementType(id)
	require.NoError(t, err)
	require.Equal(t, cadwork.TypeBeam, typ)
}

func TestCreateBeamRejectsDegenerateAxis(t *testing.T) {
	m := NewModel()
	p := cadwork.Point{X: 1, Y: 2, Z: 3}
	_, err := m.CreateRectangularBeam(120, 240, p, p, cadwork.Point{Z: 1})
	require.Error(t, err)
}

func TestWeightUsesMaterialDensity(t *testing.T) {
	m := NewModel()
	id := newBeam(t, m, 1000)
	require.NoError(t, m.SetAttributes(id, "post", "", "", "", "Fichte"))

	weight, err := m.Weight(id)
	require.NoError(t, err)
	// 120*240*1000 mm3 at 470 kg/m3.
	require.InDelta(t, 0.0288*470, weight, 1e-9)
}

func TestCopyMoveDelete(t *testing.T) {
	m := NewModel()
	id := newBeam(t, m, 2000)

	copies, err := m.CopyElements([]int{id}, cadwork.Point{Y: 500})
	require.NoError(t, err)
	require.Len(t, copies, 1)
	require.NotEqual(t, id, copies[0])

	p1, err := m.P1(copies[0])
	require.NoError(t, err)
	require.InDelta(t, 500, p1.Y, 1e-9)

	require.NoError(t, m.MoveElements([]int{id}, cadwork.Point{Z: 100}))
	p1, err = m.P1(id)
	require.NoError(t, err)
	require.InDelta(t, 100, p1.Z, 1e-9)

	require.NoError(t, m.DeleteElements([]int{id}))
	_, err = m.P1(id)
	require.ErrorIs(t, err, ErrElementNotFound)

	all, err := m.AllElementIDs()
	require.NoError(t, err)
	require.Equal(t, copies, all)
}

func TestCopyPreservesDisplayState(t *testing.T) {
	m := NewModel()
	id := newBeam(t, m, 1000)
	require.NoError(t, m.SetColor(id, 3))
	require.NoError(t, m.SetTransparency(id, 40))
	require.NoError(t, m.HideElement(id))

	copies, err := m.CopyElements([]int{id}, cadwork.Point{Y: 500})
	require.NoError(t, err)
	require.Len(t, copies, 1)

	color, err := m.Color(copies[0])
	require.NoError(t, err)
	require.Equal(t, 3, color)

	tr, err := m.Transparency(copies[0])
	require.NoError(t, err)
	require.Equal(t, 40, tr)

	visible, err := m.VisibleElementIDs()
	require.NoError(t, err)
	require.Empty(t, visible)
}

func TestCenterOfGravityForList(t *testing.T) {
	m := NewModel()
	a := newBeam(t, m, 1000)
	b, err := m.CreateRectangularBeam(120, 240,
		cadwork.Point{X: 1000}, cadwork.Point{X: 2000}, cadwork.Point{X: 1000, Z: 1})
	require.NoError(t, err)

	cog, err := m.CenterOfGravityForList([]int{a, b})
	require.NoError(t, err)
	require.InDelta(t, 1000, cog.X, 1e-6)

	_, err = m.CenterOfGravityForList(nil)
	require.Error(t, err)
}

func TestMinimumDistanceParallelBeams(t *testing.T) {
	m := NewModel()
	a := newBeam(t, m, 1000)
	b, err := m.CreateRectangularBeam(120, 240,
		cadwork.Point{Y: 800}, cadwork.Point{X: 1000, Y: 800}, cadwork.Point{Y: 800, Z: 1})
	require.NoError(t, err)

	dist, err := m.MinimumDistance(a, b)
	require.NoError(t, err)
	require.InDelta(t, 800, dist, 1e-9)
}

func TestRotateElements(t *testing.T) {
	m := NewModel()
	id := newBeam(t, m, 1000)

	// Quarter turn around Z through origin maps (1000,0,0) to (0,1000,0).
	err := m.RotateElements([]int{id}, cadwork.Point{}, cadwork.Point{Z: 1}, 90)
	require.NoError(t, err)

	p2, err := m.P2(id)
	require.NoError(t, err)
	require.InDelta(t, 0, p2.X, 1e-6)
	require.InDelta(t, 1000, p2.Y, 1e-6)

	err = m.RotateElements([]int{id}, cadwork.Point{}, cadwork.Point{}, 90)
	require.Error(t, err)
}

func TestApplyGlobalScale(t *testing.T) {
	m := NewModel()
	id := newBeam(t, m, 1000)

	require.NoError(t, m.ApplyGlobalScale([]int{id}, 2, cadwork.Point{}))
	length, err := m.Length(id)
	require.NoError(t, err)
	require.InDelta(t, 2000, length, 1e-9)

	width, err := m.Width(id)
	require.NoError(t, err)
	require.InDelta(t, 240, width, 1e-9)

	require.Error(t, m.ApplyGlobalScale([]int{id}, 0, cadwork.Point{}))
}

func TestInvertModelSwapsAxis(t *testing.T) {
	m := NewModel()
	id := newBeam(t, m, 1000)
	require.NoError(t, m.InvertModel([]int{id}))

	p1, err := m.P1(id)
	require.NoError(t, err)
	require.InDelta(t, 1000, p1.X, 1e-9)
}

func TestFacetsAndAreas(t *testing.T) {
	m := NewModel()
	id := newBeam(t, m, 1000)

	facets, err := m.Facets(id)
	require.NoError(t, err)
	require.Len(t, facets, 6)
	for _, facet := range facets {
		require.Len(t, facet, 4)
	}

	ref, err := m.ReferenceFaceArea(id)
	require.NoError(t, err)
	require.InDelta(t, 240*1000, ref, 1e-6)

	total, err := m.TotalFaceArea(id)
	require.NoError(t, err)
	require.InDelta(t, 2*(120*240+120*1000+240*1000), total, 1e-6)
}

func TestUserAttributes(t *testing.T) {
	m := NewModel()
	id := newBeam(t, m, 1000)
	m.DefineUserAttribute(1, "Charge")
	require.NoError(t, m.SetUserAttribute(id, 1, "A-17"))

	name, err := m.UserAttributeName(1)
	require.NoError(t, err)
	require.Equal(t, "Charge", name)

	value, err := m.UserAttribute(id, 1)
	require.NoError(t, err)
	require.Equal(t, "A-17", value)

	name, err = m.UserAttributeName(2)
	require.NoError(t, err)
	require.Empty(t, name)
}

func TestVisibilityAndColor(t *testing.T) {
	m := NewModel()
	id := newBeam(t, m, 1000)

	require.NoError(t, m.SetColor(id, 3))
	color, err := m.Color(id)
	require.NoError(t, err)
	require.Equal(t, 3, color)
	require.Error(t, m.SetColor(id, 0))

	require.NoError(t, m.HideElement(id))
	visible, err := m.VisibleElementIDs()
	require.NoError(t, err)
	require.Empty(t, visible)

	require.NoError(t, m.ShowElement(id))
	visible, err = m.VisibleElementIDs()
	require.NoError(t, err)
	require.Equal(t, []int{id}, visible)

	require.NoError(t, m.SetTransparency(id, 40))
	tr, err := m.Transparency(id)
	require.NoError(t, err)
	require.Equal(t, 40, tr)
	require.Error(t, m.SetTransparency(id, 120))
}

func TestExportWritesMarkerFile(t *testing.T) {
	m := NewModel()
	id := newBeam(t, m, 1000)
	path := filepath.Join(t.TempDir(), "out", "model.step")

	err := m.ExportSTEP([]int{id}, path, cadwork.STEPOptions{ScaleFactor: 1, Version: 214})
	require.NoError(t, err)

	_, err = os.Stat(path)
	require.NoError(t, err)

	records := m.Exports()
	require.Len(t, records, 1)
	require.Equal(t, "step", records[0].Format)

	err = m.ExportSTEP([]int{id}, path, cadwork.STEPOptions{ScaleFactor: 1, Version: 999})
	require.Error(t, err)
}

func TestImportCreatesPlaceholder(t *testing.T) {
	m := NewModel()
	path := filepath.Join(t.TempDir(), "frame.step")
	require.NoError(t, os.WriteFile(path, []byte("ISO-10303-21;"), 0o644))

	ids, err := m.ImportSTEP(path, 1.0, false)
	require.NoError(t, err)
	require.Len(t, ids, 1)

	name, err := m.Name(ids[0])
	require.NoError(t, err)
	require.Equal(t, "frame.step", name)

	_, err = m.ImportSTEP(filepath.Join(t.TempDir(), "missing.step"), 1.0, false)
	require.Error(t, err)
}

func TestUserSelection(t *testing.T) {
	m := NewModel()
	a := newBeam(t, m, 1000)
	b := newBeam(t, m, 2000)
	m.SetUserSelection([]int{a, b})

	ids, err := m.UserElementIDs(1)
	require.NoError(t, err)
	require.Equal(t, []int{a}, ids)

	ids, err = m.UserElementIDs(0)
	require.NoError(t, err)
	require.Equal(t, []int{a, b}, ids)

	active, err := m.ActiveElementIDs()
	require.NoError(t, err)
	require.Len(t, active, 2)
}

func TestDrillingVolumeIsCylindrical(t *testing.T) {
	m := NewModel()
	id, err := m.CreateDrilling(20, cadwork.Point{}, cadwork.Point{X: 500})
	require.NoError(t, err)

	volume, err := m.Volume(id)
	require.NoError(t, err)
	require.InDelta(t, math.Pi*10*10*500, volume, 1e-6)
}
