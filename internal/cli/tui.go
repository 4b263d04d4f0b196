package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/citemill/citemill/pkg/pipeline"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	listFailedStyle   = lipgloss.NewStyle().Foreground(colorRed)
)

// referenceListModel is the bubbletea model for browsing a formatted
// reference list. Failed entries show dimmed with their citation key so
// problems are visible in place.
type referenceListModel struct {
	StyleName string
	Items     []pipeline.RenderedItem
	Problems  map[string]error
	Cursor    int
	Height    int
	Offset    int
}

// newReferenceListModel creates the preview model from a pipeline result.
func newReferenceListModel(result *pipeline.Result) referenceListModel {
	problems := make(map[string]error, len(result.Problems))
	for _, p := range result.Problems {
		problems[p.Key] = p.Err
	}
	return referenceListModel{
		StyleName: result.Style,
		Items:     result.Items,
		Problems:  problems,
		Height:    15,
	}
}

func (m referenceListModel) Init() tea.Cmd {
	return nil
}

func (m referenceListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Items)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor = 0
			m.Offset = 0
		case "end", "G":
			m.Cursor = len(m.Items) - 1
			if m.Cursor >= m.Height {
				m.Offset = m.Cursor - m.Height + 1
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m referenceListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("References (%s)", m.StyleName)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  g/G top/bottom  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Items) {
		end = len(m.Items)
	}

	for i := m.Offset; i < end; i++ {
		item := m.Items[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		label := item.Label.Text
		if label != "" {
			label += "  "
		}

		var line string
		if err, failed := m.Problems[item.Key]; failed {
			line = cursor + label + item.Key + "  " + listFailedStyle.Render(err.Error())
		} else {
			line = cursor + label + item.Text
		}

		switch {
		case i == m.Cursor:
			b.WriteString(listSelectedStyle.Render(line))
		case item.Text == "":
			b.WriteString(listDimStyle.Render(line))
		default:
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	status := fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Items))
	if n := len(m.Problems); n > 0 {
		status += fmt.Sprintf("  %d failed", n)
	}
	b.WriteString(listDimStyle.Render(status))

	return b.String()
}

// runPreviewTUI runs the interactive reference browser until the user
// quits or the context is canceled.
func runPreviewTUI(ctx context.Context, result *pipeline.Result) error {
	if len(result.Items) == 0 {
		printInfo("Nothing to preview: bibliography is empty")
		return nil
	}
	p := tea.NewProgram(newReferenceListModel(result), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
