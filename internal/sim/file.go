package sim

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/framehaus/cadbridge/internal/cadwork"
)

// STEPOptions et al. are honored only as far as the simulator cares:
// exports validate their inputs, write a marker file at the target path
// and record the call so tests can assert on it.

func (m *Model) export(format string, ids []int, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if path == "" {
		return fmt.Errorf("%s export: file path is empty", format)
	}
	if _, err := m.getAll(ids); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%s export: %w", format, err)
	}
	body := fmt.Sprintf("cadbridge %s export: %d elements\n", format, len(ids))
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return fmt.Errorf("%s export: %w", format, err)
	}
	m.exports = append(m.exports, ExportRecord{
		Format:   format,
		Path:     path,
		Elements: append([]int(nil), ids...),
	})
	return nil
}

func (m *Model) ExportSTEP(ids []int, path string, opts cadwork.STEPOptions) error {
	if opts.ScaleFactor <= 0 {
		return fmt.Errorf("step export: scale factor must be positive, got %g", opts.ScaleFactor)
	}
	switch opts.Version {
	case 203, 214, 242:
	default:
		return fmt.Errorf("step export: unsupported AP version %d", opts.Version)
	}
	return m.export("step", ids, path)
}

func (m *Model) Export3DM(ids []int, path string, version int) error {
	return m.export("3dm", ids, path)
}

func (m *Model) ExportOBJ(ids []int, path string) error {
	return m.export("obj", ids, path)
}

func (m *Model) ExportPLY(ids []int, path string, binary bool) error {
	return m.export("ply", ids, path)
}

func (m *Model) ExportSTL(ids []int, path string, binary bool) error {
	return m.export("stl", ids, path)
}

func (m *Model) ExportGLTF(ids []int, path string, binaryGLB bool) error {
	return m.export("gltf", ids, path)
}

func (m *Model) ExportX3D(ids []int, path string) error {
	return m.export("x3d", ids, path)
}

func (m *Model) ExportFBX(ids []int, path string, format int) error {
	return m.export("fbx", ids, path)
}

func (m *Model) ExportWebGL(ids []int, path string) error {
	return m.export("webgl", ids, path)
}

func (m *Model) ExportSAT(ids []int, path string, scale float64, binary bool, version int) error {
	if scale <= 0 {
		return fmt.Errorf("sat export: scale factor must be positive, got %g", scale)
	}
	return m.export("sat", ids, path)
}

func (m *Model) ExportDSTV(path string) error {
	return m.export("dstv", nil, path)
}

func (m *Model) ExportProductionData(path string) error {
	return m.export("production_data", nil, path)
}

func (m *Model) ExportBTLNesting(path string) error {
	return m.export("btl_nesting", nil, path)
}

// importFile validates the source and inserts one placeholder volume
// element representing the imported body.
func (m *Model) importFile(format, path string) ([]int, error) {
	if path == "" {
		return nil, fmt.Errorf("%s import: file path is empty", format)
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%s import: %w", format, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.insert(&element{
		typ: cadwork.TypeVolume,
		p1:  cadwork.Point{},
		p2:  cadwork.Point{X: 1000},
		p3:  cadwork.Point{Z: 1},
		width: 1000, height: 1000,
		name: filepath.Base(path),
	})
	return []int{id}, nil
}

func (m *Model) ImportSTEP(path string, scale float64, hideMessages bool) ([]int, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("step import: scale factor must be positive, got %g", scale)
	}
	return m.importFile("step", path)
}

func (m *Model) ImportSAT(path string, scale float64, binary bool, silent bool) ([]int, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("sat import: scale factor must be positive, got %g", scale)
	}
	return m.importFile("sat", path)
}

func (m *Model) ImportRhino(path string, withoutDialog bool) ([]int, error) {
	return m.importFile("3dm", path)
}

func (m *Model) ImportBTL(path string) error {
	_, err := m.importFile("btl", path)
	return err
}

func (m *Model) ImportBTLNesting(path string) error {
	_, err := m.importFile("btl_nesting", path)
	return err
}
