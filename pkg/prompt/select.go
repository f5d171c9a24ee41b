package prompt

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// selectModel represents the Bubble Tea model for multi-file selection.
type selectModel struct {
	choices         []FileChoice
	filteredChoices []FileChoice
	filteredIndices []int // maps filtered index to original index
	cursor          int
	filter          string
	checked         map[int]bool // keyed by original index
	confirmed       bool
	quitting        bool
}

// initialSelectModel creates a new select model.
func initialSelectModel(choices []FileChoice) selectModel {
	return selectModel{
		choices:         choices,
		filteredChoices: choices,
		filteredIndices: makeRange(len(choices)),
		cursor:          0,
		filter:          "",
		checked:         make(map[int]bool),
		confirmed:       false,
		quitting:        false,
	}
}

// makeRange creates a slice of integers from 0 to n-1.
func makeRange(n int) []int {
	result := make([]int, n)
	for i := range result {
		result[i] = i
	}
	return result
}

// Init initializes the model.
func (m selectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeyInput(msg)
	}

	return m, nil
}

// handleKeyInput processes key input and returns the updated model and command.
func (m *selectModel) handleKeyInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Handle keys that end the program
	if m.handleSpecialKeys(key) {
		return *m, tea.Quit
	}

	switch key {
	case "up", "k", "down", "j":
		m.handleNavigationKeys(key)
	case " ":
		m.handleToggleKey(key)
	default:
		m.handleFilterKeys(key)
	}

	return *m, nil
}

// handleSpecialKeys handles keys that cause the program to quit.
func (m *selectModel) handleSpecialKeys(key string) bool {
	switch key {
	case "ctrl+c", "q":
		m.quitting = true
		return true
	case "enter":
		m.confirmed = true
		return true
	}
	return false
}

// handleNavigationKeys handles navigation keys (up/down).
func (m *selectModel) handleNavigationKeys(key string) {
	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.filteredChoices)-1 {
			m.cursor++
		}
	}
}

// handleToggleKey toggles the checkbox under the cursor.
func (m *selectModel) handleToggleKey(_ string) {
	if len(m.filteredChoices) == 0 || m.cursor >= len(m.filteredChoices) {
		return
	}
	original := m.filteredIndices[m.cursor]
	m.checked[original] = !m.checked[original]
}

// handleFilterKeys handles filter-related keys.
func (m *selectModel) handleFilterKeys(key string) {
	switch key {
	case "backspace":
		if len(m.filter) > 0 {
			m.filter = m.filter[:len(m.filter)-1]
			m.updateFilteredChoices()
		}
	case "esc":
		m.filter = ""
		m.updateFilteredChoices()
	default:
		// Handle regular character input for filtering
		if len(key) == 1 {
			m.filter += key
			m.updateFilteredChoices()
		}
	}
}

// updateFilteredChoices updates the filtered choices based on the current filter.
func (m *selectModel) updateFilteredChoices() {
	if m.filter == "" {
		m.filteredChoices = m.choices
		m.filteredIndices = makeRange(len(m.choices))
	} else {
		m.filteredChoices = []FileChoice{}
		m.filteredIndices = []int{}

		filterLower := strings.ToLower(m.filter)
		for i, choice := range m.choices {
			if strings.Contains(strings.ToLower(choice.Path), filterLower) {
				m.filteredChoices = append(m.filteredChoices, choice)
				m.filteredIndices = append(m.filteredIndices, i)
			}
		}
	}

	// Reset cursor if it's out of bounds
	if m.cursor >= len(m.filteredChoices) {
		m.cursor = 0
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the UI.
func (m selectModel) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	// Header
	s.WriteString("? Select files to clean up:  [Use arrows to move, space to toggle, type to filter]\n\n")

	// Show filter if active
	if m.filter != "" {
		s.WriteString(fmt.Sprintf("Filter: %s\n\n", m.filter))
	}

	// Show choices
	for i, choice := range m.filteredChoices {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}

		checkbox := "[ ]"
		if m.checked[m.filteredIndices[i]] {
			checkbox = "[x]"
		}

		s.WriteString(fmt.Sprintf("%s %s %s (%s)\n", cursor, checkbox, choice.Path, choice.Category))
	}

	// Footer
	s.WriteString("\nPress Enter to confirm, Ctrl+C or q to quit")
	if m.filter != "" {
		s.WriteString(", Esc to clear filter")
	}

	return s.String()
}

// selectedChoices returns the checked choices in their original order.
func (m selectModel) selectedChoices() []FileChoice {
	var selected []FileChoice
	for i, choice := range m.choices {
		if m.checked[i] {
			selected = append(selected, choice)
		}
	}
	return selected
}

// promptSelectFilesBubbleTea runs the Bubble Tea program for file selection.
func promptSelectFilesBubbleTea(choices []FileChoice) ([]FileChoice, error) {
	// Create and run the program
	p := tea.NewProgram(initialSelectModel(choices))

	// Run the program
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to run selection program: %w", err)
	}

	// Cast to our model type
	model, ok := finalModel.(selectModel)
	if !ok {
		return nil, ErrUnexpectedModelType
	}

	// Check if user quit without confirming
	if !model.confirmed {
		return nil, ErrNoSelectionMade
	}

	return model.selectedChoices(), nil
}
