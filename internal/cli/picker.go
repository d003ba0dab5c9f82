package cli

import (
	"context"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/335g/clidoc/pkg/catalog"
	"github.com/335g/clidoc/pkg/errors"
)

const pickerPrompt = "Which Client documents do you want to access?"

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// serviceSource adapts a service list to fuzzy.Source. Both display and
// canonical names are searchable.
type serviceSource []catalog.Service

func (s serviceSource) String(i int) string { return s[i].String() + " " + s[i].Name() }
func (s serviceSource) Len() int            { return len(s) }

// pickerModel is the bubbletea model for interactive service selection.
// Typing filters the list; ↑/↓ move, enter selects, esc cancels.
type pickerModel struct {
	services  []catalog.Service
	visible   []catalog.Service
	filter    string
	cursor    int
	offset    int
	height    int
	selected  catalog.Service
	chosen    bool
	cancelled bool
}

func newPickerModel(services []catalog.Service) pickerModel {
	m := pickerModel{services: services, height: 10}
	m.applyFilter()
	return m
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			if len(m.visible) == 0 {
				return m, nil
			}
			m.selected = m.visible[m.cursor]
			m.chosen = true
			return m, tea.Quit
		case tea.KeyUp, tea.KeyCtrlP:
			m.moveUp()
		case tea.KeyDown, tea.KeyCtrlN:
			m.moveDown()
		case tea.KeyBackspace:
			if r := []rune(m.filter); len(r) > 0 {
				m.setFilter(string(r[:len(r)-1]))
			}
		case tea.KeyRunes, tea.KeySpace:
			m.setFilter(m.filter + string(msg.Runes))
		}
	case tea.WindowSizeMsg:
		m.height = max(msg.Height-5, 3)
		m.adjustScroll()
	}
	return m, nil
}

func (m pickerModel) View() string {
	if m.chosen || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render("? " + pickerPrompt))
	b.WriteString(" ")
	b.WriteString(StyleHighlight.Render(m.filter))
	b.WriteString("\n")

	if len(m.visible) == 0 {
		b.WriteString(listDimStyle.Render("  no matching services"))
		b.WriteString("\n")
	}
	end := min(m.offset+m.height, len(m.visible))
	for i := m.offset; i < end; i++ {
		s := m.visible[i]
		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render("▸ " + s.String()))
		} else {
			b.WriteString(listNormalStyle.Render("  " + s.String()))
		}
		b.WriteString("\n")
	}

	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  esc cancel  type to filter"))
	return b.String()
}

func (m *pickerModel) setFilter(f string) {
	m.filter = f
	m.cursor = 0
	m.offset = 0
	m.applyFilter()
}

func (m *pickerModel) applyFilter() {
	if m.filter == "" {
		m.visible = append([]catalog.Service(nil), m.services...)
		return
	}
	matches := fuzzy.FindFrom(m.filter, serviceSource(m.services))
	m.visible = make([]catalog.Service, len(matches))
	for i, match := range matches {
		m.visible[i] = m.services[match.Index]
	}
}

func (m *pickerModel) moveUp() {
	if m.cursor > 0 {
		m.cursor--
		m.adjustScroll()
	}
}

func (m *pickerModel) moveDown() {
	if m.cursor < len(m.visible)-1 {
		m.cursor++
		m.adjustScroll()
	}
}

func (m *pickerModel) adjustScroll() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
}

// pickService runs the picker on the terminal. The prompt is drawn on stderr
// so stdout carries only results.
func pickService(ctx context.Context) (catalog.Service, error) {
	p := tea.NewProgram(newPickerModel(catalog.All()),
		tea.WithContext(ctx),
		tea.WithOutput(os.Stderr),
	)
	final, err := p.Run()
	if ctx.Err() != nil {
		return 0, ctx.Err()
	}
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInternal, err, "service picker")
	}
	return pickerResult(final)
}

func pickerResult(final tea.Model) (catalog.Service, error) {
	m, ok := final.(pickerModel)
	if !ok || !m.chosen {
		return 0, errors.New(errors.ErrCodeCancelled, "no service selected")
	}
	return m.selected, nil
}
