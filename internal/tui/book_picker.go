package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/umaima-fareed13/libman/internal/tui/delegate"
	"github.com/umaima-fareed13/libman/internal/tui/picker"
)

type bookPickerModel struct {
	base     *picker.Base
	selected *BookItem
}

func (m bookPickerModel) Init() tea.Cmd {
	return nil
}

func (m bookPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.base.Update(msg)

	// Extract selection when quitting without error
	if m.base.IsQuitting() && m.base.Error() == nil {
		if item, ok := m.base.SelectedItem().(BookItem); ok {
			m.selected = &item
		}
	}

	return m, cmd
}

func (m bookPickerModel) View() string {
	return m.base.View()
}

// RunBookPicker launches an interactive book picker over the working set.
// Returns the selected BookItem or error if canceled.
func RunBookPicker(books []BookItem, title string) (BookItem, error) {
	if len(books) == 0 {
		return BookItem{}, fmt.Errorf("no books to display")
	}

	items := make([]list.Item, len(books))
	for i, b := range books {
		items[i] = b
	}

	d := delegate.New(renderBookItem)
	l := list.New(items, d, 0, 0)
	if title != "" {
		l.Title = title
	} else {
		l.Title = "Select a book"
	}
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = StyleHeader
	l.Styles.PaginationStyle = StyleHelp
	l.Styles.HelpStyle = StyleHelp

	selectKey := key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{selectKey}
	}

	keys := NewPickerKeys()

	base := picker.New(picker.Config{
		List:        l,
		QuitKeys:    keys.Quit,
		SelectKeys:  keys.Select,
		ShowBorder:  true,
		BorderStyle: StyleBorder,
		OnSelect: func(item list.Item) bool {
			return true // Quit after selection
		},
	})

	m := bookPickerModel{base: base}

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return BookItem{}, fmt.Errorf("running TUI: %w", err)
	}

	if fm, ok := finalModel.(bookPickerModel); ok {
		if fm.base.Error() != nil {
			return BookItem{}, fm.base.Error()
		}
		if fm.selected != nil {
			return *fm.selected, nil
		}
	}

	return BookItem{}, fmt.Errorf("canceled")
}
