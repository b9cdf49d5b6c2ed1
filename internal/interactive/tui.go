package interactive

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/swfz/courserepo/internal/formatter"
	"github.com/swfz/courserepo/internal/models"
)

// Styles
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Background(lipgloss.Color("235")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1)

	remainingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	completedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46"))
)

// model is the browser state
type model struct {
	title      string                  // Institution shown in the header
	students   []models.StudentSummary // All rows
	filtered   []models.StudentSummary // Rows matching query
	cursor     int                     // Index into filtered
	query      string                  // Search query
	searchMode bool                    // Typing into the search bar
	detail     bool                    // Detail panel open
	width      int                     // Terminal width
	height     int                     // Terminal height
	done       bool
}

func newModel(title string, students []models.StudentSummary) model {
	return model{
		title:    title,
		students: students,
		filtered: students,
		width:    80,
		height:   24,
	}
}

// Init initializes the model
func (m model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.done = true
			return m, tea.Quit

		case "q", "esc":
			if m.searchMode && msg.String() == "q" {
				m.query += "q"
				m.filterStudents()
				return m, nil
			}
			if m.detail {
				m.detail = false
				return m, nil
			}
			if m.searchMode {
				m.searchMode = false
				m.query = ""
				m.filterStudents()
				return m, nil
			}
			m.done = true
			return m, tea.Quit

		case "/":
			if !m.detail {
				m.searchMode = true
			}
			return m, nil

		case "enter":
			if m.searchMode {
				m.searchMode = false
				return m, nil
			}
			if len(m.filtered) > 0 {
				m.detail = !m.detail
			}
			return m, nil

		case "up", "k":
			if m.searchMode {
				m.appendQuery(msg.String())
			} else if !m.detail && m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.searchMode {
				m.appendQuery(msg.String())
			} else if !m.detail && m.cursor < len(m.filtered)-1 {
				m.cursor++
			}

		case "backspace":
			if m.searchMode && len(m.query) > 0 {
				m.query = m.query[:len(m.query)-1]
				m.filterStudents()
			}

		default:
			if m.searchMode {
				m.appendQuery(msg.String())
			}
		}
	}

	return m, nil
}

// appendQuery adds a typed character; named keys such as "up" are ignored
func (m *model) appendQuery(key string) {
	if len([]rune(key)) != 1 {
		return
	}
	m.query += key
	m.filterStudents()
}

// View renders the UI
func (m model) View() string {
	if m.done {
		return "Exiting...\n"
	}

	var b strings.Builder

	b.WriteString(headerStyle.Render(" "+m.title+" Student Summary ") + "\n")
	b.WriteString(dimStyle.Render("  Use ↑/↓ or j/k to navigate, / to search, Enter for details, q to quit") + "\n\n")

	if m.searchMode {
		b.WriteString(fmt.Sprintf("Search: %s█\n\n", m.query))
	} else if m.query != "" {
		b.WriteString(dimStyle.Render(fmt.Sprintf("Filter: %s (press / to edit, Esc to clear)", m.query)) + "\n\n")
	}

	if m.detail && m.cursor < len(m.filtered) {
		b.WriteString(renderDetail(m.filtered[m.cursor]) + "\n")
		b.WriteString(dimStyle.Render("  Esc to go back") + "\n")
		return b.String()
	}

	listHeader := fmt.Sprintf("%-8s %-20s %-6s %-5s %-5s %s", "CWID", "NAME", "MAJOR", "DONE", "REQ", "ELECTIVES")
	b.WriteString(dimStyle.Render(listHeader) + "\n")
	b.WriteString(strings.Repeat("─", m.width) + "\n")

	maxVisible := max(m.height-10, 5)
	startIdx := max(m.cursor-maxVisible/2, 0)
	endIdx := startIdx + maxVisible
	if endIdx > len(m.filtered) {
		endIdx = len(m.filtered)
		startIdx = max(endIdx-maxVisible, 0)
	}

	for i := startIdx; i < endIdx; i++ {
		line := formatStudentLine(m.filtered[i])
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("❯ "+line) + "\n")
		} else {
			b.WriteString(normalStyle.Render("  "+line) + "\n")
		}
	}

	if len(m.filtered) == 0 {
		b.WriteString("\n" + dimStyle.Render("  No students match your filter") + "\n")
	} else {
		b.WriteString("\n" + dimStyle.Render(fmt.Sprintf("  %d/%d students", m.cursor+1, len(m.filtered))) + "\n")
	}

	return b.String()
}

// formatStudentLine renders one list row with course counts
func formatStudentLine(s models.StudentSummary) string {
	electives := "done"
	if len(s.RemainingElectives) > 0 {
		electives = fmt.Sprintf("%d left", len(s.RemainingElectives))
	}
	return fmt.Sprintf("%-8s %-20s %-6s %-5d %-5d %s",
		formatter.TruncateWithEllipsis(s.CWID, 8),
		formatter.TruncateWithEllipsis(s.Name, 20),
		formatter.TruncateWithEllipsis(s.Major, 6),
		len(s.Completed), len(s.RemainingRequired), electives)
}

// renderDetail renders the progress panel of one student
func renderDetail(s models.StudentSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", s.CWID, s.Name)
	fmt.Fprintf(&b, "Major:               %s\n", s.Major)
	fmt.Fprintf(&b, "Completed:           %s\n", completedStyle.Render(formatter.JoinList(s.Completed)))
	fmt.Fprintf(&b, "Remaining required:  %s\n", remainingStyle.Render(formatter.JoinList(s.RemainingRequired)))
	fmt.Fprintf(&b, "Remaining electives: %s", remainingStyle.Render(formatter.JoinList(s.RemainingElectives)))
	return panelStyle.Render(b.String())
}

// filterStudents filters rows by CWID, name, major, or course
func (m *model) filterStudents() {
	if m.query == "" {
		m.filtered = m.students
		m.cursor = 0
		return
	}

	m.filtered = []models.StudentSummary{}
	query := strings.ToLower(m.query)

	for _, s := range m.students {
		searchText := strings.ToLower(strings.Join([]string{
			s.CWID, s.Name, s.Major,
			strings.Join(s.Completed, " "),
			strings.Join(s.RemainingRequired, " "),
			strings.Join(s.RemainingElectives, " "),
		}, " "))

		if strings.Contains(searchText, query) {
			m.filtered = append(m.filtered, s)
		}
	}

	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// RunBrowser starts the student browser and blocks until the user quits or ctx is cancelled
func RunBrowser(ctx context.Context, title string, students []models.StudentSummary) error {
	p := tea.NewProgram(newModel(title, students), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
