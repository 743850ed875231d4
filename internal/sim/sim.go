// Package sim is an in-memory implementation of the cadwork controller
// seam. It stands in for the vendor runtime when no Cadwork
// installation is attached, and backs the end-to-end tests.
package sim

import (
	"errors"
	"fmt"
	"sync"

	"github.com/framehaus/cadbridge/internal/cadwork"
)

// ErrElementNotFound is returned for ids that do not exist in the model.
var ErrElementNotFound = errors.New("element not found")

// Wood densities in kg/m3 keyed by the vendor's German material names.
var densities = map[string]float64{
	"Fichte": 470,
	"Kiefer": 520,
	"Eiche":  720,
	"Buche":  720,
	"Lärche": 590,
}

const defaultDensity = 470.0

type element struct {
	id           int
	typ          cadwork.ElementType
	p1, p2, p3   cadwork.Point
	width        float64 // cross-section x; diameter for circular sections
	height       float64 // cross-section y; thickness for panels
	vertices     []cadwork.Point // polygon beam outline
	standardName string

	name     string
	group    string
	subgroup string
	comment  string
	material string
	userAttr map[int]string

	colorID      int
	transparency int
	visible      bool
	active       bool
}

func (e *element) clone() *element {
	c := *e
	c.userAttr = make(map[int]string, len(e.userAttr))
	for k, v := range e.userAttr {
		c.userAttr[k] = v
	}
	c.vertices = append([]cadwork.Point(nil), e.vertices...)
	return &c
}

// Model holds the simulated application state: elements, display state,
// project metadata and the open file path.
type Model struct {
	mu       sync.Mutex
	nextID   int
	elements map[int]*element
	order    []int

	filePath      string
	projectData   map[string]string
	version       cadwork.VersionInfo
	userAttrNames map[int]string
	userSelection []int

	autoRefresh  bool
	refreshCount int
	messages     []string

	exports []ExportRecord
}

// ExportRecord captures one export call for inspection in tests.
type ExportRecord struct {
	Format   string
	Path     string
	Elements []int
}

// NewModel returns an empty model with plausible application metadata.
func NewModel() *Model {
	return &Model{
		nextID:   1,
		elements: make(map[int]*element),
		projectData: map[string]string{
			"project_name":   "Untitled",
			"project_number": "",
			"architect":      "",
		},
		version: cadwork.VersionInfo{
			Version:    "2025.2",
			Build:      "30.1.173",
			APIVersion: "30",
		},
		userAttrNames: make(map[int]string),
		autoRefresh:   true,
	}
}

// API returns the controller seam backed by this model.
func (m *Model) API() cadwork.API {
	return cadwork.API{
		Elements:      m,
		Geometry:      m,
		Attributes:    m,
		Utility:       m,
		Visualization: m,
		Files:         m,
		Machine:       m,
		ShopDrawings:  m,
	}
}

// SetFilePath sets the path of the "open" 3D file.
func (m *Model) SetFilePath(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.filePath = path
}

// SetProjectData replaces a project metadata field.
func (m *Model) SetProjectData(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.projectData[key] = value
}

// DefineUserAttribute assigns a label to a user attribute slot.
func (m *Model) DefineUserAttribute(number int, name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.userAttrNames[number] = name
}

// SetUserSelection fixes the ids returned by UserElementIDs.
func (m *Model) SetUserSelection(ids []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.userSelection = append([]int(nil), ids...)
}

// Messages returns the UI messages printed so far.
func (m *Model) Messages() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.messages...)
}

// Exports returns the export calls recorded so far.
func (m *Model) Exports() []ExportRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ExportRecord(nil), m.exports...)
}

// RefreshCount returns how many display refreshes were requested.
func (m *Model) RefreshCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.refreshCount
}

func (m *Model) get(id int) (*element, error) {
	e, ok := m.elements[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrElementNotFound, id)
	}
	return e, nil
}

func (m *Model) getAll(ids []int) ([]*element, error) {
	out := make([]*element, 0, len(ids))
	for _, id := range ids {
		e, err := m.get(id)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (m *Model) insert(e *element) int {
	e.id = m.nextID
	m.nextID++
	if e.userAttr == nil {
		e.userAttr = make(map[int]string)
	}
	if e.colorID == 0 {
		// Fresh element; clones keep the source display state.
		e.visible = true
		e.active = true
		e.colorID = 5 // vendor default palette blue
	}
	m.elements[e.id] = e
	m.order = append(m.order, e.id)
	return e.id
}

func (m *Model) remove(id int) {
	delete(m.elements, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

func (m *Model) density(material string) float64 {
	if d, ok := densities[material]; ok {
		return d
	}
	return defaultDensity
}
