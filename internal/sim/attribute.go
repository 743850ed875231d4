package sim

func (m *Model) attributeValue(id int, f func(*element) string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, err := m.get(id)
	if err != nil {
		return "", err
	}
	return f(e), nil
}

func (m *Model) Name(id int) (string, error) {
	return m.attributeValue(id, func(e *element) string { return e.name })
}

func (m *Model) Group(id int) (string, error) {
	return m.attributeValue(id, func(e *element) string { return e.group })
}

func (m *Model) Subgroup(id int) (string, error) {
	return m.attributeValue(id, func(e *element) string { return e.subgroup })
}

func (m *Model) Comment(id int) (string, error) {
	return m.attributeValue(id, func(e *element) string { return e.comment })
}

func (m *Model) MaterialName(id int) (string, error) {
	return m.attributeValue(id, func(e *element) string { return e.material })
}

func (m *Model) UserAttribute(id, number int) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, err := m.get(id)
	if err != nil {
		return "", err
	}
	return e.userAttr[number], nil
}

func (m *Model) UserAttributeName(number int) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.userAttrNames[number], nil
}

// SetAttributes fills element attributes from outside the controller
// seam; the bridge has no attribute setters, but tests and seed data do.
func (m *Model) SetAttributes(id int, name, group, subgroup, comment, material string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, err := m.get(id)
	if err != nil {
		return err
	}
	e.name, e.group, e.subgroup, e.comment, e.material = name, group, subgroup, comment, material
	return nil
}

// SetUserAttribute stores a user attribute value on an element.
func (m *Model) SetUserAttribute(id, number int, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, err := m.get(id)
	if err != nil {
		return err
	}
	e.userAttr[number] = value
	return nil
}
