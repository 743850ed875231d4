package sim

import (
	"fmt"

	"github.com/framehaus/cadbridge/internal/cadwork"
)

func (m *Model) FilePath() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.filePath, nil
}

func (m *Model) ProjectData() (map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]string, len(m.projectData))
	for k, v := range m.projectData {
		out[k] = v
	}
	return out, nil
}

func (m *Model) VersionInfo() (cadwork.VersionInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.version, nil
}

func (m *Model) PrintError(message string) error {
	return m.record("error: " + message)
}

func (m *Model) PrintWarning(message string) error {
	return m.record("warning: " + message)
}

func (m *Model) record(message string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, message)
	return nil
}

func (m *Model) DisableAutoDisplayRefresh() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.autoRefresh = false
	return nil
}

func (m *Model) EnableAutoDisplayRefresh() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.autoRefresh = true
	return nil
}

// AutoRefresh reports the current display refresh mode.
func (m *Model) AutoRefresh() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.autoRefresh
}

func (m *Model) RefreshDisplay() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshCount++
	return nil
}

func (m *Model) SetColor(id, colorID int) error {
	if colorID < 1 || colorID > 255 {
		return fmt.Errorf("color id %d outside palette range 1-255", colorID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	e, err := m.get(id)
	if err != nil {
		return err
	}
	e.colorID = colorID
	return nil
}

func (m *Model) Color(id int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, err := m.get(id)
	if err != nil {
		return 0, err
	}
	return e.colorID, nil
}

func (m *Model) ShowElement(id int) error {
	return m.setVisible(id, true)
}

func (m *Model) HideElement(id int) error {
	return m.setVisible(id, false)
}

func (m *Model) setVisible(id int, visible bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, err := m.get(id)
	if err != nil {
		return err
	}
	e.visible = visible
	return nil
}

func (m *Model) SetTransparency(id, percent int) error {
	if percent < 0 || percent > 100 {
		return fmt.Errorf("transparency %d outside range 0-100", percent)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	e, err := m.get(id)
	if err != nil {
		return err
	}
	e.transparency = percent
	return nil
}

func (m *Model) Transparency(id int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, err := m.get(id)
	if err != nil {
		return 0, err
	}
	return e.transparency, nil
}
