package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AddFormData holds the book fields collected from the user.
type AddFormData struct {
	Title     string
	Author    string
	Year      string
	Genre     string
	Read      bool
	CoverPath string // local file to sideload, optional
}

const (
	addFieldTitle = iota
	addFieldAuthor
	addFieldYear
	addFieldGenre
	addFieldCover
)

type addFormModel struct {
	inputs     []textinput.Model
	focused    int
	read       bool
	result     *AddFormData
	err        error
	canceled   bool
	confirming bool
	activeCmd  string
	width      int
	height     int
}

func newAddForm() addFormModel {
	m := addFormModel{
		inputs: make([]textinput.Model, 5),
	}

	const fieldWidth = 42

	m.inputs[addFieldTitle] = textinput.New()
	m.inputs[addFieldTitle].Placeholder = "Enter book title"
	m.inputs[addFieldTitle].Focus()
	m.inputs[addFieldTitle].CharLimit = 200
	m.inputs[addFieldTitle].Width = fieldWidth
	m.inputs[addFieldTitle].Prompt = "│ "

	m.inputs[addFieldAuthor] = textinput.New()
	m.inputs[addFieldAuthor].Placeholder = "Enter author name"
	m.inputs[addFieldAuthor].CharLimit = 100
	m.inputs[addFieldAuthor].Width = fieldWidth
	m.inputs[addFieldAuthor].Prompt = "│ "

	m.inputs[addFieldYear] = textinput.New()
	m.inputs[addFieldYear].Placeholder = "Enter publication year"
	m.inputs[addFieldYear].CharLimit = 16
	m.inputs[addFieldYear].Width = 24
	m.inputs[addFieldYear].Prompt = "│ "

	m.inputs[addFieldGenre] = textinput.New()
	m.inputs[addFieldGenre].Placeholder = "Enter book genre"
	m.inputs[addFieldGenre].CharLimit = 100
	m.inputs[addFieldGenre].Width = fieldWidth
	m.inputs[addFieldGenre].Prompt = "│ "

	m.inputs[addFieldCover] = textinput.New()
	m.inputs[addFieldCover].Placeholder = "Path to cover image (optional)"
	m.inputs[addFieldCover].CharLimit = 400
	m.inputs[addFieldCover].Width = fieldWidth
	m.inputs[addFieldCover].Prompt = "│ "

	return m
}

func (m addFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m addFormModel) submit() (tea.Model, tea.Cmd) {
	for _, f := range []int{addFieldTitle, addFieldAuthor, addFieldYear, addFieldGenre} {
		if strings.TrimSpace(m.inputs[f].Value()) == "" {
			m.err = fmt.Errorf("please fill in all fields")
			m.confirming = false
			return m, nil
		}
	}
	m.result = &AddFormData{
		Title:     strings.TrimSpace(m.inputs[addFieldTitle].Value()),
		Author:    strings.TrimSpace(m.inputs[addFieldAuthor].Value()),
		Year:      strings.TrimSpace(m.inputs[addFieldYear].Value()),
		Genre:     strings.TrimSpace(m.inputs[addFieldGenre].Value()),
		Read:      m.read,
		CoverPath: strings.TrimSpace(m.inputs[addFieldCover].Value()),
	}
	return m, tea.Quit
}

func (m addFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ClearActiveCmdMsg:
		m.activeCmd = ""
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.canceled = true
			return m, tea.Quit

		case "ctrl+r":
			m.read = !m.read
			m.activeCmd = "ctrl+r"
			return m, HighlightCmd()

		case "enter":
			if m.confirming {
				return m.submit()
			}
			m.confirming = true
			return m, nil

		case "y", "Y":
			if m.confirming {
				return m.submit()
			}

		case "n", "N":
			if m.confirming {
				m.canceled = true
				return m, tea.Quit
			}

		case "tab", "shift+tab", "up", "down":
			if m.confirming {
				return m, nil
			}

			if msg.String() == "up" || msg.String() == "shift+tab" {
				m.focused--
			} else {
				m.focused++
			}

			if m.focused < 0 {
				m.focused = len(m.inputs) - 1
			} else if m.focused >= len(m.inputs) {
				m.focused = 0
			}

			cmds := make([]tea.Cmd, len(m.inputs)+1)
			for i := 0; i < len(m.inputs); i++ {
				if i == m.focused {
					cmds[i] = m.inputs[i].Focus()
				} else {
					m.inputs[i].Blur()
				}
			}
			m.activeCmd = "tab"
			cmds[len(m.inputs)] = HighlightCmd()
			return m, tea.Batch(cmds...)
		}
	}

	cmd := m.updateInputs(msg)
	return m, cmd
}

func (m *addFormModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return tea.Batch(cmds...)
}

func (m addFormModel) View() string {
	outerStyle := lipgloss.NewStyle().Padding(2, 4)

	sepStyle := lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#D0D0D0", Dark: "#444444"})
	formLabel := lipgloss.NewStyle().
		Foreground(ColorGray).
		Width(10).
		Align(lipgloss.Right).
		PaddingRight(1)
	formLabelActive := lipgloss.NewStyle().
		Foreground(ColorYellow).
		Bold(true).
		Width(10).
		Align(lipgloss.Right).
		PaddingRight(1)

	const w = 54
	sep := sepStyle.Render(strings.Repeat("─", w))

	var b strings.Builder

	b.WriteString(StyleHeader.Render("Add a New Book"))
	b.WriteString("\n\n")
	b.WriteString(sep)
	b.WriteString("\n\n")

	if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
		b.WriteString(errStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}

	fields := []string{"Title", "Author", "Year", "Genre", "Cover"}
	for i, label := range fields {
		if i == m.focused && !m.confirming {
			b.WriteString(formLabelActive.Render("› " + label))
		} else {
			b.WriteString(formLabel.Render(label))
		}
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n\n")
	}

	readState := StyleHelp.Render("no")
	if m.read {
		readState = StyleRead.Render("yes")
	}
	b.WriteString(formLabel.Render("Read"))
	b.WriteString(readState)
	b.WriteString("\n\n")

	b.WriteString(sep)
	b.WriteString("\n")

	if m.confirming {
		b.WriteString(StyleHighlight.Render("  Add this book? "))
		b.WriteString(StyleHelp.Render("Y/n"))
	} else {
		b.WriteString(RenderFooterBar([]ShortcutEntry{
			{Key: "tab", Label: "Tab/↑↓ navigate"},
			{Key: "ctrl+r", Label: "ctrl+r toggle read"},
			{Key: "enter", Label: "enter submit"},
			{Key: "", Label: "esc cancel"},
		}, m.activeCmd))
	}
	b.WriteString("\n")

	innerPadding := lipgloss.NewStyle().Padding(0, 2, 0, 1)
	return outerStyle.Render(StyleBorder.Render(innerPadding.Render(b.String())))
}

// RunAddForm launches an interactive form for entering a new book.
// Returns the filled form data, or error if canceled.
func RunAddForm() (*AddFormData, error) {
	m := newAddForm()
	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("running form: %w", err)
	}

	fm, ok := finalModel.(addFormModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}

	if fm.canceled {
		return nil, fmt.Errorf("canceled")
	}

	if fm.result == nil {
		return nil, fmt.Errorf("no data collected")
	}

	return fm.result, nil
}
