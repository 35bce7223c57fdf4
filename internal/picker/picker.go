// Package picker provides a small full-screen list for choosing one file.
package picker

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/chmouel/wikitodo/internal/theme"
)

// ErrCancelled is returned when the user leaves the picker without choosing.
var ErrCancelled = errors.New("selection cancelled")

const (
	minWidth  = 40
	minHeight = 10
)

// Item is one selectable entry.
type Item struct {
	ID    string
	Label string
}

// Model is the bubbletea model behind the picker.
type Model struct {
	Items    []Item
	Filtered []Item

	FilterInput  textinput.Model
	FilterActive bool
	Cursor       int
	ScrollOffset int
	Width        int
	Height       int
	Title        string
	Thm          *theme.Theme

	chosen    *Item
	cancelled bool
	done      bool
}

// New builds a picker over items.
func New(title string, items []Item, thm *theme.Theme) *Model {
	if thm == nil {
		thm = theme.GetTheme(theme.DefaultName())
	}

	ti := textinput.New()
	ti.Placeholder = "Filter files..."
	ti.CharLimit = 100
	ti.Prompt = "> "
	ti.Blur()

	cursor := 0
	if len(items) == 0 {
		cursor = -1
	}

	m := &Model{
		Items:       items,
		Filtered:    items,
		FilterInput: ti,
		Cursor:      cursor,
		Title:       title,
		Thm:         thm,
	}
	m.resize(80, 24)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	if !m.FilterActive {
		switch keyStr {
		case "f", "/":
			m.FilterActive = true
			m.FilterInput.Focus()
			return m, textinput.Blink
		case "enter":
			return m.choose()
		case "esc", "q", "ctrl+c":
			return m.cancel()
		case "up", "k", "ctrl+k":
			m.moveUp()
			return m, nil
		case "down", "j", "ctrl+j":
			m.moveDown()
			return m, nil
		}
		return m, nil
	}

	switch keyStr {
	case "esc":
		m.FilterActive = false
		m.FilterInput.Blur()
		return m, nil
	case "enter":
		return m.choose()
	case "ctrl+c":
		return m.cancel()
	case "up", "ctrl+k":
		m.moveUp()
		return m, nil
	case "down", "ctrl+j":
		m.moveDown()
		return m, nil
	}

	var cmd tea.Cmd
	m.FilterInput, cmd = m.FilterInput.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m *Model) choose() (tea.Model, tea.Cmd) {
	item, ok := m.Selected()
	if !ok {
		return m, nil
	}
	m.chosen = &item
	m.done = true
	return m, tea.Quit
}

func (m *Model) cancel() (tea.Model, tea.Cmd) {
	m.cancelled = true
	m.done = true
	return m, tea.Quit
}

func (m *Model) moveUp() {
	if m.Cursor > 0 {
		m.Cursor--
		if m.Cursor < m.ScrollOffset {
			m.ScrollOffset = m.Cursor
		}
	}
}

func (m *Model) moveDown() {
	if m.Cursor < len(m.Filtered)-1 {
		m.Cursor++
		if visible := m.maxVisible(); m.Cursor >= m.ScrollOffset+visible {
			m.ScrollOffset = m.Cursor - visible + 1
		}
	}
}

// Selected returns the item under the cursor, if any.
func (m *Model) Selected() (Item, bool) {
	if m.Cursor < 0 || m.Cursor >= len(m.Filtered) {
		return Item{}, false
	}
	return m.Filtered[m.Cursor], true
}

// Chosen returns the item confirmed with enter.
func (m *Model) Chosen() (Item, bool) {
	if m.chosen == nil {
		return Item{}, false
	}
	return *m.chosen, true
}

// Cancelled reports whether the user left without choosing.
func (m *Model) Cancelled() bool {
	return m.cancelled
}

func (m *Model) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(m.FilterInput.Value()))
	if query == "" {
		m.Filtered = m.Items
	} else {
		m.Filtered = []Item{}
		for _, item := range m.Items {
			if strings.Contains(strings.ToLower(item.Label), query) || strings.Contains(strings.ToLower(item.ID), query) {
				m.Filtered = append(m.Filtered, item)
			}
		}
	}

	if len(m.Filtered) == 0 {
		m.Cursor = -1
	} else if m.Cursor >= len(m.Filtered) || m.Cursor < 0 {
		m.Cursor = 0
	}
	m.ScrollOffset = 0
}

func (m *Model) resize(width, height int) {
	m.Width = max(width*8/10, minWidth)
	m.Height = max(height*8/10, minHeight)
	m.FilterInput.Width = m.Width - 4
}

func (m *Model) maxVisible() int {
	visible := m.Height - 6
	if !m.FilterActive {
		visible += 2
	}
	return max(visible, 1)
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.done {
		return ""
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.Thm.Accent).
		Width(m.Width)

	title := lipgloss.NewStyle().
		Foreground(m.Thm.Accent).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(m.Thm.Muted).
		Width(m.Width-2).
		Padding(0, 1).
		Render(m.Title)

	itemStyle := lipgloss.NewStyle().
		Padding(0, 1).
		Width(m.Width - 2).
		Foreground(m.Thm.Entry)

	selectedStyle := lipgloss.NewStyle().
		Padding(0, 1).
		Width(m.Width - 2).
		Background(m.Thm.Accent).
		Foreground(m.Thm.AccentFg).
		Bold(true)

	mutedStyle := lipgloss.NewStyle().
		Padding(0, 1).
		Width(m.Width - 2).
		Foreground(m.Thm.Muted)

	var rows []string
	end := min(m.ScrollOffset+m.maxVisible(), len(m.Filtered))
	start := min(m.ScrollOffset, end)
	for i := start; i < end; i++ {
		label := fmt.Sprintf("%d. %s", i+1, m.Filtered[i].Label)
		if i == m.Cursor {
			rows = append(rows, selectedStyle.Render(ansi.Strip(label)))
		} else {
			rows = append(rows, itemStyle.Render(label))
		}
	}
	if len(m.Filtered) == 0 {
		rows = append(rows, mutedStyle.Italic(true).Render("No matching files."))
	}

	footerText := "j/k to move • f to filter • Enter to select • Esc to cancel"
	if m.FilterActive {
		footerText = "Esc to return • Enter to select"
	}
	footer := mutedStyle.Align(lipgloss.Right).PaddingTop(1).Render(footerText)

	lines := []string{title}
	if m.FilterActive {
		lines = append(lines, lipgloss.NewStyle().Padding(0, 1).Render(m.FilterInput.View()))
	}
	lines = append(lines, strings.Join(rows, "\n"), footer)

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// Run shows the picker on out, reading keys from in, and returns the chosen item.
func Run(title string, items []Item, thm *theme.Theme, in io.Reader, out io.Writer) (Item, error) {
	m := New(title, items, thm)
	final, err := tea.NewProgram(m, tea.WithInput(in), tea.WithOutput(out)).Run()
	if err != nil {
		return Item{}, fmt.Errorf("picker failed: %w", err)
	}

	fm, ok := final.(*Model)
	if !ok {
		return Item{}, ErrCancelled
	}
	chosen, ok := fm.Chosen()
	if !ok {
		return Item{}, ErrCancelled
	}
	return chosen, nil
}
