package interactive

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swfz/courserepo/internal/models"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m model, keys ...tea.KeyMsg) model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		var ok bool
		m, ok = next.(model)
		require.True(t, ok)
	}
	return m
}

func testStudents() []models.StudentSummary {
	return []models.StudentSummary{
		finder["10103"],
		finder["11461"],
		{CWID: "11658", Name: "Kelly, P", Major: "SYEN", RemainingRequired: []string{"SYS 671", "SYS 612", "SYS 800"}},
	}
}

func TestModel_Navigation(t *testing.T) {
	m := newModel("Stevens", testStudents())

	m = press(t, m, runes("j"), runes("j"), runes("j"))
	assert.Equal(t, 2, m.cursor, "cursor stops at the last row")

	m = press(t, m, runes("k"), tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor, "cursor stops at the first row")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.cursor)
}

func TestModel_Search(t *testing.T) {
	m := newModel("Stevens", testStudents())

	m = press(t, m, runes("/"))
	require.True(t, m.searchMode)

	m = press(t, m, runes("s"), runes("y"), runes("s"), runes(" "), runes("8"))
	assert.Equal(t, "sys 8", m.query)
	require.Len(t, m.filtered, 2)
	assert.Equal(t, "11461", m.filtered[0].CWID)
	assert.Equal(t, "11658", m.filtered[1].CWID)

	// j and q are typed into the query while searching
	m = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace}, runes("j"))
	assert.Equal(t, "sysj", m.query)
	assert.Empty(t, m.filtered)
	assert.Equal(t, 0, m.cursor)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.searchMode)
	assert.Empty(t, m.query)
	assert.Len(t, m.filtered, 3)
}

func TestModel_SearchConfirmKeepsFilter(t *testing.T) {
	m := newModel("Stevens", testStudents())
	m = press(t, m, runes("/"), runes("k"), runes("e"), runes("l"), tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.searchMode)
	assert.Equal(t, "kel", m.query)
	require.Len(t, m.filtered, 1)
	assert.Contains(t, m.View(), "Filter: kel")
}

func TestModel_DetailPanel(t *testing.T) {
	m := newModel("Stevens", testStudents())
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.detail)

	view := m.View()
	assert.Contains(t, view, "Baldwin, C")
	assert.Contains(t, view, "SSW 540, SSW 555")

	// Navigation is frozen while the panel is open
	m = press(t, m, runes("j"))
	assert.Equal(t, 0, m.cursor)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.detail)
}

func TestModel_Quit(t *testing.T) {
	m := newModel("Stevens", testStudents())
	next, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.True(t, next.(model).done)
	assert.Equal(t, "Exiting...\n", next.View())
}

func TestModel_ViewEmpty(t *testing.T) {
	m := newModel("Stevens", nil)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.detail)
	assert.Contains(t, m.View(), "No students match your filter")
}

func TestFormatStudentLine(t *testing.T) {
	line := formatStudentLine(testStudents()[2])
	assert.Contains(t, line, "Kelly, P")
	assert.Contains(t, line, "done")

	line = formatStudentLine(models.StudentSummary{CWID: "1", Name: "A", RemainingElectives: []string{"CS 501", "CS 513"}})
	assert.Contains(t, line, "2 left")
}
