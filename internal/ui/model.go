// Package ui is the interactive terminal frontend. The Update loop is
// the engine's owning goroutine: worker messages arrive as bubbletea
// messages through a listen command and are folded in with Apply.
package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fenilsonani/macsweep/internal/diskinfo"
	"github.com/fenilsonani/macsweep/internal/engine"
	"github.com/fenilsonani/macsweep/internal/ui/styles"
)

type viewState int

const (
	viewMenu viewState = iota
	viewScanning
	viewDashboard
	viewCategory
	viewConfirm
	viewCleaning
	viewSummary
)

// menuItem represents a main menu option.
type menuItem struct {
	label       string
	description string
}

var menuItems = []menuItem{
	{"Full Scan", "Scan every category and review the results"},
	{"Smart Clean", "Scan the safe categories and clean in one pass"},
	{"Quit", "Exit without changes"},
}

// engineMsg wraps one worker message for the Update loop.
type engineMsg struct{ msg engine.Msg }

// streamClosedMsg means the current worker stream is exhausted.
type streamClosedMsg struct{}

type diskInfoMsg struct {
	info *diskinfo.Info
	ok   bool
}

// listen waits for the next worker message. Update re-issues it after
// applying each message, so the stream drains one message per cycle.
func listen(ch <-chan engine.Msg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return streamClosedMsg{}
		}
		return engineMsg{msg: msg}
	}
}

func loadDiskInfo() tea.Cmd {
	return func() tea.Msg {
		info, ok := diskinfo.Get()
		return diskInfoMsg{info: info, ok: ok}
	}
}

// Model is the root bubbletea model.
type Model struct {
	engine *engine.Engine
	stream <-chan engine.Msg

	view viewState

	disk *diskinfo.Info

	cursor       int
	categoryIdx  int
	itemCursor   int
	scrollOffset int

	batch  engine.Batch
	secure bool

	spinner spinner.Model

	width  int
	height int
}

// Run drives the TUI until the user quits.
func Run(e *engine.Engine) error {
	p := tea.NewProgram(New(e), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// New builds the TUI around an idle engine.
func New(e *engine.Engine) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	return Model{
		engine:  e,
		spinner: sp,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadDiskInfo())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.engine.Busy() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case diskInfoMsg:
		if msg.ok {
			m.disk = msg.info
		}
		return m, nil

	case engineMsg:
		return m.applyEngineMsg(msg.msg)

	case streamClosedMsg:
		m.stream = nil
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		// Everything else is inert while a scan or clean runs.
		if m.engine.Busy() {
			return m, nil
		}
		if msg.String() == "q" {
			return m, tea.Quit
		}

		switch m.view {
		case viewMenu:
			return m.updateMenu(msg)
		case viewDashboard:
			return m.updateDashboard(msg)
		case viewCategory:
			return m.updateCategory(msg)
		case viewConfirm:
			return m.updateConfirm(msg)
		case viewSummary:
			return m.updateSummary(msg)
		}
	}

	return m, nil
}

// applyEngineMsg folds one worker message into the engine, decides
// whether it ends a phase, and keeps listening on the stream.
func (m Model) applyEngineMsg(msg engine.Msg) (tea.Model, tea.Cmd) {
	m.engine.Apply(msg)

	switch msg.(type) {
	case engine.ScanDone:
		if m.engine.ConfirmPending {
			m.batch = m.engine.PrepareDelete()
			m.view = viewConfirm
		} else {
			m.cursor = 0
			m.view = viewDashboard
		}
		return m, tea.Batch(listen(m.stream), loadDiskInfo())

	case engine.CleanDone:
		m.view = viewSummary
		return m, tea.Batch(listen(m.stream), loadDiskInfo())
	}

	return m, listen(m.stream)
}

func (m Model) startScan(smart bool) (tea.Model, tea.Cmd) {
	ch, ok := m.engine.StartScan(smart)
	if !ok {
		return m, nil
	}
	m.stream = ch
	m.view = viewScanning
	return m, tea.Batch(listen(ch), m.spinner.Tick)
}

func (m Model) startDelete() (tea.Model, tea.Cmd) {
	ch, ok := m.engine.StartDelete(m.batch, m.secure)
	if !ok {
		return m, nil
	}
	m.stream = ch
	m.view = viewCleaning
	return m, tea.Batch(listen(ch), m.spinner.Tick)
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
	case "enter":
		switch m.cursor {
		case 0:
			return m.startScan(false)
		case 1:
			return m.startScan(true)
		case 2:
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cats := m.engine.Categories

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(cats)-1 {
			m.cursor++
		}
	case " ":
		if m.cursor < len(cats) && !cats[m.cursor].ReportOnly {
			cat := cats[m.cursor]
			cat.Selected = !cat.Selected
			cat.SetAllItems(cat.Selected)
		}
	case "enter":
		if m.cursor < len(cats) && len(cats[m.cursor].Items) > 0 {
			m.categoryIdx = m.cursor
			m.itemCursor = 0
			m.scrollOffset = 0
			m.view = viewCategory
		}
	case "s":
		m.secure = !m.secure
	case "c":
		batch := m.engine.PrepareDelete()
		if batch.Count > 0 {
			m.batch = batch
			m.view = viewConfirm
		}
	case "r":
		return m.startScan(false)
	case "esc", "backspace":
		m.view = viewMenu
		m.cursor = 0
	}
	return m, nil
}

func (m Model) updateCategory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cat := m.engine.Categories[m.categoryIdx]

	switch msg.String() {
	case "up", "k":
		if m.itemCursor > 0 {
			m.itemCursor--
			m.ensureCursorVisible()
		}
	case "down", "j":
		if m.itemCursor < len(cat.Items)-1 {
			m.itemCursor++
			m.ensureCursorVisible()
		}
	case " ":
		if !cat.ReportOnly && m.itemCursor < len(cat.Items) {
			cat.Items[m.itemCursor].Selected = !cat.Items[m.itemCursor].Selected
			cat.SyncFromItems()
		}
	case "a":
		if !cat.ReportOnly {
			cat.SetAllItems(cat.SelectedCount() != len(cat.Items))
			cat.SyncFromItems()
		}
	case "esc", "backspace":
		m.view = viewDashboard
		m.cursor = m.categoryIdx
	}
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		return m.startDelete()
	case "n", "esc", "backspace":
		m.view = viewDashboard
		m.cursor = 0
	}
	return m, nil
}

func (m Model) updateSummary(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r":
		return m.startScan(false)
	case "enter", "esc", "backspace":
		m.view = viewMenu
		m.cursor = 0
	}
	return m, nil
}

func (m *Model) ensureCursorVisible() {
	visible := m.visibleItemCount()
	if m.itemCursor < m.scrollOffset {
		m.scrollOffset = m.itemCursor
	}
	if m.itemCursor >= m.scrollOffset+visible {
		m.scrollOffset = m.itemCursor - visible + 1
	}
}

func (m Model) visibleItemCount() int {
	// Title, category header, totals and help lines take ~8 rows.
	available := m.height - 8
	if available < 5 {
		available = 5
	}
	return available
}
