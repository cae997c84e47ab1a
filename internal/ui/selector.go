package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	listHeight       = 8
	detailLabelWidth = 12
	minWidth         = 60
	maxWidth         = 120
)

// detail is one label/value line in a selector's details panel.
type detail struct {
	label string
	value string
	style lipgloss.Style
}

// selectorSpec tells the generic selector how to present one item kind:
// search matching, list row rendering, and the details panel.
type selectorSpec[T any] struct {
	noun    string // plural, for the status bar ("VPCs", "fleets")
	matches func(item T, query string) bool
	columns func(item T) []cell // fixed-width list columns, last one flexes
	widths  []int               // widths for all but the last column
	details func(item T) []detail
}

// selectorModel is the bubbletea model behind every interactive picker:
// a search box, a scrolling list, and a details panel for the cursor row.
type selectorModel[T any] struct {
	spec         selectorSpec[T]
	items        []T
	filtered     []T
	cursor       int
	offset       int
	search       string
	selected     *T
	quitting     bool
	cancelled    bool
	termWidth    int
	contentWidth int
}

func newSelectorModel[T any](spec selectorSpec[T], items []T) selectorModel[T] {
	m := selectorModel[T]{
		spec:      spec,
		items:     items,
		filtered:  items,
		termWidth: 80,
	}
	m.calculateWidths()
	return m
}

func (m *selectorModel[T]) calculateWidths() {
	m.contentWidth = m.termWidth - 2
	if m.contentWidth < minWidth {
		m.contentWidth = minWidth
	}
	if m.contentWidth > maxWidth {
		m.contentWidth = maxWidth
	}
}

// Init implements tea.Model
func (m selectorModel[T]) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update implements tea.Model
func (m selectorModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.calculateWidths()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			m.cancelled = true
			return m, tea.Quit

		case tea.KeyEnter:
			if len(m.filtered) > 0 {
				m.selected = &m.filtered[m.cursor]
				m.quitting = true
				return m, tea.Quit
			}

		case tea.KeyUp:
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}

		case tea.KeyDown:
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
				if m.cursor >= m.offset+listHeight {
					m.offset = m.cursor - listHeight + 1
				}
			}

		case tea.KeyBackspace:
			if len(m.search) > 0 {
				m.search = m.search[:len(m.search)-1]
				m.filter()
			}

		case tea.KeyRunes:
			m.search += string(msg.Runes)
			m.filter()
		}
	}

	return m, nil
}

func (m *selectorModel[T]) filter() {
	if m.search == "" {
		m.filtered = m.items
	} else {
		query := strings.ToLower(m.search)
		m.filtered = nil
		for _, item := range m.items {
			if m.spec.matches(item, query) {
				m.filtered = append(m.filtered, item)
			}
		}
	}
	if m.cursor >= len(m.filtered) {
		if len(m.filtered) > 0 {
			m.cursor = len(m.filtered) - 1
		} else {
			m.cursor = 0
		}
	}
	m.offset = 0
}

// View implements tea.Model
func (m selectorModel[T]) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	w := m.contentWidth

	boxLine := func(content string) {
		sb.WriteString(BorderStyle.Render(Vertical))
		sb.WriteString(content)
		sb.WriteString(BorderStyle.Render(Vertical))
		sb.WriteString("\n")
	}
	blank := func() { boxLine(strings.Repeat(" ", w)) }

	// Top border
	sb.WriteString(BorderStyle.Render(TopLeft))
	sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w)))
	sb.WriteString(BorderStyle.Render(TopRight))
	sb.WriteString("\n")

	// Search input
	boxLine(NameStyle.Render(padToWidth(" > "+m.search, w)))
	blank()

	// Item list
	visibleEnd := m.offset + listHeight
	if visibleEnd > len(m.filtered) {
		visibleEnd = len(m.filtered)
	}
	for i := m.offset; i < visibleEnd; i++ {
		boxLine(m.renderRow(i))
	}
	for i := len(m.filtered); i < m.offset+listHeight; i++ {
		blank()
	}
	blank()

	// Separator
	sb.WriteString(BorderStyle.Render(LeftT))
	sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w)))
	sb.WriteString(BorderStyle.Render(RightT))
	sb.WriteString("\n")

	// Details panel
	sb.WriteString(m.renderDetailsPanel())

	// Bottom border
	sb.WriteString(BorderStyle.Render(BottomLeft))
	sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w)))
	sb.WriteString(BorderStyle.Render(BottomRight))
	sb.WriteString("\n")

	// Status bar
	sb.WriteString(m.renderStatusBar())

	return sb.String()
}

func (m selectorModel[T]) renderRow(idx int) string {
	w := m.contentWidth
	var line strings.Builder
	plainWidth := 0

	// Cursor indicator
	if idx == m.cursor {
		line.WriteString(" > ")
	} else {
		line.WriteString("   ")
	}
	plainWidth += 3

	cells := m.spec.columns(m.filtered[idx])
	for i, c := range cells {
		width := 0
		if i < len(m.spec.widths) {
			width = m.spec.widths[i]
		} else {
			// Last column takes whatever is left.
			width = w - plainWidth
			if width < 10 {
				width = 10
			}
		}
		line.WriteString(c.style.Render(padRight(c.text, width)))
		plainWidth += width
		if i < len(cells)-1 {
			line.WriteString("  ")
			plainWidth += 2
		}
	}

	if plainWidth < w {
		line.WriteString(strings.Repeat(" ", w-plainWidth))
	}

	return line.String()
}

func (m selectorModel[T]) renderDetailsPanel() string {
	var sb strings.Builder
	w := m.contentWidth

	boxLine := func(content string) {
		sb.WriteString(BorderStyle.Render(Vertical))
		sb.WriteString(content)
		sb.WriteString(BorderStyle.Render(Vertical))
		sb.WriteString("\n")
	}

	boxLine(HeaderStyle.Render(padToWidth(" Details", w)))
	boxLine(MutedStyle.Render(padToWidth(" "+strings.Repeat(Horizontal, 20), w)))

	if len(m.filtered) == 0 {
		boxLine(MutedStyle.Render(padToWidth(fmt.Sprintf(" No %s found", m.spec.noun), w)))
		for i := 0; i < 4; i++ {
			boxLine(strings.Repeat(" ", w))
		}
	} else {
		for _, d := range m.spec.details(m.filtered[m.cursor]) {
			labelText := padRight(d.label, detailLabelWidth)
			valueText := d.value

			maxValueWidth := w - 1 - detailLabelWidth
			if runewidth.StringWidth(valueText) > maxValueWidth {
				valueText = runewidth.Truncate(valueText, maxValueWidth, "...")
			}

			plainWidth := 1 + detailLabelWidth + runewidth.StringWidth(valueText)
			line := MutedStyle.Render(" "+labelText) + d.style.Render(valueText)
			if plainWidth < w {
				line += strings.Repeat(" ", w-plainWidth)
			}
			boxLine(line)
		}
	}

	boxLine(strings.Repeat(" ", w))
	return sb.String()
}

func (m selectorModel[T]) renderStatusBar() string {
	var sb strings.Builder
	w := m.contentWidth + 2

	countInfo := fmt.Sprintf("  %d/%d %s", len(m.filtered), len(m.items), m.spec.noun)
	hintsPlain := "[Enter:select] [Esc:cancel]"

	countWidth := runewidth.StringWidth(countInfo)
	hintsWidth := runewidth.StringWidth(hintsPlain)
	padding := w - countWidth - hintsWidth

	sb.WriteString(countInfo)
	if padding > 0 {
		sb.WriteString(strings.Repeat(" ", padding))
	}
	sb.WriteString(HintStyle.Render(hintsPlain))
	sb.WriteString("\n")

	return sb.String()
}

// runSelector displays the selector and returns the chosen item.
func runSelector[T any](spec selectorSpec[T], items []T) (*T, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("no %s available", spec.noun)
	}

	p := tea.NewProgram(newSelectorModel(spec, items))
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("error running selector: %w", err)
	}

	result := finalModel.(selectorModel[T])
	if result.cancelled {
		return nil, fmt.Errorf("selection cancelled")
	}

	return result.selected, nil
}
