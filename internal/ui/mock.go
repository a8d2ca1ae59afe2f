package ui

// MockTerminal records everything written to it. Status holds every status
// line set, Output the printed lines.
type MockTerminal struct {
	Output []string
	Status []string

	// Err is returned by all methods when set.
	Err error
}

var _ Terminal = &MockTerminal{}

func (m *MockTerminal) Print(line string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Output = append(m.Output, line)
	return nil
}

func (m *MockTerminal) SetStatus(line string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Status = append(m.Status, line)
	return nil
}

func (m *MockTerminal) CanUpdateStatus() bool {
	return true
}
