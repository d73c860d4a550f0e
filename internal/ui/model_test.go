package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fenilsonani/macsweep/internal/engine"
	"github.com/fenilsonani/macsweep/internal/scanner"
)

func testEngine() *engine.Engine {
	return &engine.Engine{
		Categories: []*engine.Category{
			{
				Name: "trash", Label: "Trash", Selected: true, Scanned: true,
				Items: []engine.Item{
					{Entry: scanner.ScanEntry{Path: "/Users/u/.Trash/a.zip", SizeBytes: 1024}, Selected: true},
					{Entry: scanner.ScanEntry{Path: "/Users/u/.Trash/b.txt", SizeBytes: 512}, Selected: true},
				},
				TotalBytes: 1536,
			},
			{
				Name: "large-files", Label: "Large Files", ReportOnly: true, Scanned: true,
				Items: []engine.Item{
					{Entry: scanner.ScanEntry{Path: "/Users/u/movie.mkv", SizeBytes: 1 << 30}},
				},
				TotalBytes: 1 << 30,
			},
		},
	}
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMenuNavigationStaysInBounds(t *testing.T) {
	m := New(testEngine())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(Model)
	assert.Equal(t, 0, m.cursor)

	for i := 0; i < 10; i++ {
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(Model)
	}
	assert.Equal(t, len(menuItems)-1, m.cursor)
}

func TestDashboardToggleCategory(t *testing.T) {
	m := New(testEngine())
	m.view = viewDashboard
	m.cursor = 0

	next, _ := m.Update(key(" "))
	m = next.(Model)

	cat := m.engine.Categories[0]
	assert.False(t, cat.Selected)
	for _, item := range cat.Items {
		assert.False(t, item.Selected)
	}
}

func TestDashboardReportOnlyCannotBeSelected(t *testing.T) {
	m := New(testEngine())
	m.view = viewDashboard
	m.cursor = 1

	next, _ := m.Update(key(" "))
	m = next.(Model)
	assert.False(t, m.engine.Categories[1].Selected)
}

func TestCategoryItemToggleSyncsCheckbox(t *testing.T) {
	m := New(testEngine())
	m.view = viewCategory
	m.categoryIdx = 0

	// Deselect both items; the category checkbox follows.
	next, _ := m.Update(key(" "))
	m = next.(Model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)
	next, _ = m.Update(key(" "))
	m = next.(Model)

	cat := m.engine.Categories[0]
	assert.Equal(t, 0, cat.SelectedCount())
	assert.False(t, cat.Selected)

	// Reselecting one flips it back.
	next, _ = m.Update(key(" "))
	m = next.(Model)
	assert.True(t, m.engine.Categories[0].Selected)
}

func TestScanDoneMovesToDashboard(t *testing.T) {
	m := New(testEngine())
	m.view = viewScanning
	m.stream = make(chan engine.Msg)

	next, cmd := m.Update(engineMsg{msg: engine.ScanDone{}})
	m = next.(Model)

	assert.Equal(t, viewDashboard, m.view)
	assert.NotNil(t, cmd)
}

func TestSmartScanDoneOpensConfirm(t *testing.T) {
	m := New(testEngine())
	m.view = viewScanning
	m.stream = make(chan engine.Msg)

	next, _ := m.Update(engineMsg{msg: engine.ScanDone{Smart: true}})
	m = next.(Model)

	require.Equal(t, viewConfirm, m.view)
	assert.Equal(t, 2, m.batch.Count)
	assert.Equal(t, int64(1536), m.batch.TotalBytes)
}

func TestSmartScanDoneWithNothingFoundSkipsConfirm(t *testing.T) {
	e := testEngine()
	e.Categories[0].Items = nil
	m := New(e)
	m.view = viewScanning
	m.stream = make(chan engine.Msg)

	next, _ := m.Update(engineMsg{msg: engine.ScanDone{Smart: true}})
	m = next.(Model)
	assert.Equal(t, viewDashboard, m.view)
}

func TestCleanDoneShowsSummary(t *testing.T) {
	m := New(testEngine())
	m.view = viewCleaning
	m.stream = make(chan engine.Msg)

	next, _ := m.Update(engineMsg{msg: engine.ItemDeleted{
		Category: "trash", Path: "/Users/u/.Trash/a.zip", Freed: 1024}})
	m = next.(Model)
	next, _ = m.Update(engineMsg{msg: engine.CleanDone{}})
	m = next.(Model)

	assert.Equal(t, viewSummary, m.view)
	assert.Equal(t, int64(1024), m.engine.CleanedBytes)
	assert.Contains(t, m.View(), "1.00 KB")
}

func TestConfirmCancelReturnsToDashboard(t *testing.T) {
	m := New(testEngine())
	m.view = viewConfirm
	m.batch = m.engine.PrepareDelete()

	next, _ := m.Update(key("n"))
	m = next.(Model)
	assert.Equal(t, viewDashboard, m.view)
}

func TestConfirmViewShowsBatchTotals(t *testing.T) {
	m := New(testEngine())
	m.view = viewConfirm
	m.batch = m.engine.PrepareDelete()

	out := m.View()
	assert.Contains(t, out, "2 items")
	assert.Contains(t, out, "1.50 KB")
}

func TestDashboardViewFlagsReportOnly(t *testing.T) {
	m := New(testEngine())
	m.view = viewDashboard

	out := m.View()
	assert.Contains(t, out, "Large Files")
	assert.Contains(t, out, "(i)")
	// Report-only bytes never count toward the cleanup total.
	assert.Contains(t, out, "Selected for cleanup: 1.50 KB")
}

func TestStreamClosedClearsStream(t *testing.T) {
	m := New(testEngine())
	m.stream = make(chan engine.Msg)

	next, _ := m.Update(streamClosedMsg{})
	m = next.(Model)
	assert.Nil(t, m.stream)
}
