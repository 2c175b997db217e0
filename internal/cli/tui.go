package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	listTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// resultRow is one dependency occurrence in the results browser.
type resultRow struct {
	name string
	path string
}

// resultsModel is the bubbletea model for browsing query results. Selecting
// a row prints its file path to stdout after the program exits, so the
// selection can be piped into an editor or cd.
type resultsModel struct {
	rows     []resultRow
	cursor   int
	offset   int
	height   int
	selected *resultRow
}

func newResultsModel(rows []resultRow) resultsModel {
	return resultsModel{rows: rows, height: 15}
}

func (m resultsModel) Init() tea.Cmd {
	return nil
}

func (m resultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "enter":
			row := m.rows[m.cursor]
			m.selected = &row
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 5
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m resultsModel) View() string {
	var b strings.Builder

	b.WriteString(listTitleStyle.Render("Dependency Occurrences"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.offset+m.height, len(m.rows))
	for i := m.offset; i < end; i++ {
		row := m.rows[i]
		cursor := "  "
		line := listNormalStyle.Render(row.name) + "  " + listDimStyle.Render(row.path)
		if i == m.cursor {
			cursor = "▸ "
			line = listSelectedStyle.Render(row.name) + "  " + listNormalStyle.Render(row.path)
		}
		b.WriteString(cursor + line + "\n")
	}

	if len(m.rows) > m.height {
		b.WriteString("\n")
		b.WriteString(listDimStyle.Render(fmt.Sprintf("%d/%d", m.cursor+1, len(m.rows))))
		b.WriteString("\n")
	}

	return b.String()
}

// browseResults opens the interactive results browser. The selected file
// path, if any, is printed to stdout on exit.
func browseResults(requested []string, matches map[string][]string) error {
	var rows []resultRow
	for _, name := range requested {
		for _, path := range matches[name] {
			rows = append(rows, resultRow{name: name, path: path})
		}
	}
	if len(rows) == 0 {
		printWarning("nothing to browse: no requested dependency was found")
		return nil
	}

	final, err := tea.NewProgram(newResultsModel(rows)).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(resultsModel); ok && m.selected != nil {
		fmt.Println(m.selected.path)
	}
	return nil
}
