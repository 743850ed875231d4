package cadwork

import "fmt"

// ElementType identifies the kind of a model element, matching the
// vendor's type enumeration.
type ElementType int

const (
	TypeNone ElementType = iota
	TypeBeam
	TypePanel
	TypeDrilling
	TypeNode
	TypeLine
	TypeSurface
	TypeVolume
	TypeContainer
	TypeAuxiliary
	TypeTextObject
	TypeDimension
	TypeArchitectural
)

var typeNames = map[ElementType]string{
	TypeNone:          "none",
	TypeBeam:          "beam",
	TypePanel:         "panel",
	TypeDrilling:      "drilling",
	TypeNode:          "node",
	TypeLine:          "line",
	TypeSurface:       "surface",
	TypeVolume:        "volume",
	TypeContainer:     "container",
	TypeAuxiliary:     "auxiliary",
	TypeTextObject:    "text_object",
	TypeDimension:     "dimension",
	TypeArchitectural: "architectural",
}

func (t ElementType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("unknown_type_%d", int(t))
}

// ColorName maps a Cadwork palette color id to its conventional name.
// IDs outside the named range keep a synthetic "Color_<id>" label.
func ColorName(id int) string {
	names := map[int]string{
		1:  "Black",
		2:  "White",
		3:  "Red",
		4:  "Green",
		5:  "Blue",
		6:  "Yellow",
		7:  "Magenta",
		8:  "Cyan",
		9:  "Orange",
		10: "Purple",
	}
	if name, ok := names[id]; ok {
		return name
	}
	return fmt.Sprintf("Color_%d", id)
}

// VersionInfo describes the running Cadwork installation.
type VersionInfo struct {
	Version    string `json:"version"`
	Build      string `json:"build"`
	APIVersion string `json:"api_version"`
}
