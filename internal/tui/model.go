package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/threebell/threebell/internal/app"
	"github.com/threebell/threebell/internal/bar"
	"github.com/threebell/threebell/internal/display"
	"github.com/threebell/threebell/internal/models"
)

// Minimum usable terminal size.
const (
	minWidth  = 20
	minHeight = 2
)

// Model is the root Bubbletea model for the TUI.
type Model struct {
	ctl     *app.Controller
	screens *display.TerminalScreens
	raster  *bar.Raster
	tick    time.Duration
	now     func() time.Time
	logger  *log.Logger

	// UI state
	activeOverlay int // overlayNone, overlayHelp, overlayBellForm, overlayMenu
	width         int
	height        int

	// Status display
	err    error
	notice string

	// Child components
	bellForm *BellForm
	menu     *Menu

	// Program reference for goroutine Send()
	program *programRef
}

// NewModel creates the initial TUI model.
func NewModel(ctl *app.Controller, opts Options, program *programRef) Model {
	tick := opts.TickInterval
	if tick <= 0 {
		tick = models.DefaultTickInterval
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	screens := opts.Screens
	if screens == nil {
		screens = display.NewTerminalScreens(80, 24)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	m := Model{
		ctl:     ctl,
		screens: screens,
		raster:  bar.NewRaster(opts.Backdrop),
		tick:    tick,
		now:     now,
		logger:  logger,
		program: program,
	}
	m.width, m.height = screens.Cells()
	if opts.PromptTimes {
		m.openBellForm()
	}
	return m
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tick)
}

// Update processes messages and returns an updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// ── Window resize ──────────────────────────────────────────────
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screens.Resize(msg.Width, msg.Height)
		return m, nil

	// ── Input ──────────────────────────────────────────────────────
	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		return m, cmd

	case tea.MouseMsg:
		cmd := m.handleMouse(msg)
		return m, cmd

	// ── Redraw ─────────────────────────────────────────────────────
	case TickMsg:
		select {
		case <-m.ctl.Done():
			cmd := m.doQuit()
			return m, cmd
		default:
		}
		return m, tickCmd(m.tick)

	case StateChangedMsg:
		return m, nil

	// ── Requests from other surfaces ───────────────────────────────
	case OpenBellFormMsg:
		m.openBellForm()
		return m, nil

	case QuitMsg:
		cmd := m.doQuit()
		return m, cmd

	// ── Status ─────────────────────────────────────────────────────
	case ErrorMsg:
		m.err = msg.Err
		return m, clearErrorAfter(5 * time.Second)

	case ClearErrorMsg:
		m.err = nil
		return m, nil

	case NoticeMsg:
		cmd := m.showNotice(msg.Text)
		return m, cmd

	case ClearNoticeMsg:
		m.notice = ""
		return m, nil
	}

	return m, nil
}

// ── Key handling ─────────────────────────────────────────────────

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return m.doQuit()
	}
	if m.activeOverlay != overlayNone {
		return m.handleOverlayKey(msg)
	}

	switch {
	case key.Matches(msg, timerKeys.Quit):
		return m.doQuit()
	case key.Matches(msg, timerKeys.Toggle):
		m.ctl.TogglePause()
	case key.Matches(msg, timerKeys.Bells):
		m.openBellForm()
	case key.Matches(msg, timerKeys.Display):
		return m.showNotice(m.ctl.CycleDisplay())
	case key.Matches(msg, timerKeys.Top):
		m.ctl.Move(models.PositionTop)
	case key.Matches(msg, timerKeys.Bottom):
		m.ctl.Move(models.PositionBottom)
	case key.Matches(msg, timerKeys.Menu):
		m.openMenu()
	case key.Matches(msg, timerKeys.Help):
		m.activeOverlay = overlayHelp
	}
	return nil
}

func (m *Model) handleOverlayKey(msg tea.KeyMsg) tea.Cmd {
	switch m.activeOverlay {
	case overlayHelp:
		if key.Matches(msg, overlayKeys.Cancel) || key.Matches(msg, timerKeys.Help) {
			m.activeOverlay = overlayNone
		}
		return nil

	case overlayMenu:
		return m.handleMenuKey(msg)

	case overlayBellForm:
		return m.handleBellFormKey(msg)
	}
	return nil
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, overlayKeys.Cancel), key.Matches(msg, timerKeys.Menu):
		m.closeOverlay()
	case key.Matches(msg, menuKeys.Up):
		m.menu.MoveUp()
	case key.Matches(msg, menuKeys.Down):
		m.menu.MoveDown()
	case key.Matches(msg, menuKeys.Select):
		return m.runMenuAction(m.menu.Selected())
	}
	return nil
}

func (m *Model) handleBellFormKey(msg tea.KeyMsg) tea.Cmd {
	if m.bellForm == nil {
		return nil
	}

	switch {
	case key.Matches(msg, overlayKeys.Submit):
		return m.submitBellForm()
	case key.Matches(msg, overlayKeys.Cancel):
		m.closeOverlay()
		return nil
	case key.Matches(msg, overlayKeys.Next):
		m.bellForm.FocusNext()
		return nil
	case key.Matches(msg, overlayKeys.Prev):
		m.bellForm.FocusPrev()
		return nil
	}

	ti := m.bellForm.Input()
	newTI, cmd := ti.Update(msg)
	*ti = newTI
	return cmd
}

// ── Actions ──────────────────────────────────────────────────────

func (m *Model) openBellForm() {
	m.bellForm = NewBellForm(m.ctl.Bells(), m.width-10)
	m.menu = nil
	m.activeOverlay = overlayBellForm
}

func (m *Model) openMenu() {
	m.menu = NewMenu()
	m.bellForm = nil
	m.activeOverlay = overlayMenu
}

func (m *Model) closeOverlay() {
	m.activeOverlay = overlayNone
	m.bellForm = nil
	m.menu = nil
}

func (m *Model) submitBellForm() tea.Cmd {
	b, err := m.bellForm.BellTimes()
	if err == nil {
		err = m.ctl.Reconfigure(b)
	}
	if err != nil {
		m.logger.Warn("bell times rejected", "error", err)
		m.err = err
		return clearErrorAfter(3 * time.Second)
	}
	m.closeOverlay()
	m.err = nil
	return m.showNotice("bells " + m.ctl.Bells().String())
}

func (m *Model) runMenuAction(action menuAction) tea.Cmd {
	m.closeOverlay()
	switch action {
	case actionCycleDisplay:
		return m.showNotice(m.ctl.CycleDisplay())
	case actionToggle:
		m.ctl.TogglePause()
	case actionBells:
		m.openBellForm()
	case actionTop:
		m.ctl.Move(models.PositionTop)
	case actionBottom:
		m.ctl.Move(models.PositionBottom)
	case actionExit:
		return m.doQuit()
	}
	return nil
}

func (m *Model) showNotice(text string) tea.Cmd {
	m.notice = text
	return clearNoticeAfter(3 * time.Second)
}

// doQuit performs clean shutdown: record the session, clear program ref, quit.
func (m *Model) doQuit() tea.Cmd {
	m.ctl.Quit()
	m.program.Clear()
	return tea.Quit
}

// ── Mouse handling ───────────────────────────────────────────────

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress {
		return nil
	}

	switch m.activeOverlay {
	case overlayMenu:
		return m.handleMenuClick(msg)
	case overlayNone:
	default:
		return nil
	}

	lay, ok := m.barLayout()
	if !ok || !lay.contains(msg.X, msg.Y) {
		return nil
	}

	switch msg.Button {
	case tea.MouseButtonLeft:
		x := (msg.X - lay.col) * display.CellWidth
		if lay.window.InPlayArea(x, lay.paused) {
			m.ctl.Resume()
			return nil
		}
		m.openMenu()
	case tea.MouseButtonRight:
		m.openMenu()
	}
	return nil
}

func (m *Model) handleMenuClick(msg tea.MouseMsg) tea.Cmd {
	view := m.menu.View()
	top, left := overlayOrigin(view, m.width, m.height)
	inside := msg.X >= left && msg.X < left+lipgloss.Width(view) &&
		msg.Y >= top && msg.Y < top+lipgloss.Height(view)
	if !inside {
		m.closeOverlay()
		return nil
	}

	idx := m.menu.ItemAt(msg.Y - top)
	if idx < 0 || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	m.menu.Select(idx)
	return m.runMenuAction(m.menu.Selected())
}

// ── View ─────────────────────────────────────────────────────────

// View renders the TUI.
func (m Model) View() string {
	if m.width < minWidth || m.height < minHeight {
		sizeStr := fmt.Sprintf("%dx%d", m.width, m.height)
		return lipgloss.NewStyle().
			Foreground(colorYellow).
			Render("Terminal too small (" + sizeStr + ")")
	}

	lines := make([]string, m.height)
	m.renderBar(lines)
	lines[m.statusRow()] = renderStatusBar(&m, m.width)
	view := strings.Join(lines, "\n")

	// Overlay
	var overlayContent string
	switch m.activeOverlay {
	case overlayHelp:
		overlayContent = renderHelp(m.width)
	case overlayBellForm:
		if m.bellForm != nil {
			overlayContent = m.bellForm.View()
		}
	case overlayMenu:
		if m.menu != nil {
			overlayContent = m.menu.View()
		}
	}
	if overlayContent != "" {
		view = renderOverlay(view, overlayContent, m.width, m.height)
	}

	return view
}
