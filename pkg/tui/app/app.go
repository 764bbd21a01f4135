package teaui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/habit/pkg/app"
	"tableflip.dev/habit/pkg/habit"
	"tableflip.dev/habit/pkg/ledger"
	"tableflip.dev/habit/pkg/logging"
	"tableflip.dev/habit/pkg/store"
	"tableflip.dev/habit/pkg/tui/components/help"
	"tableflip.dev/habit/pkg/tui/theme"
	"tableflip.dev/habit/pkg/window"
)

// Model states
type mode int

const (
	modeNormal mode = iota
	modeCalendar
	modeInsert
	modeConfirm
	modeHelp
)

type action int

const (
	actionNone action = iota
	actionAdd
	actionRename
)

const (
	// MinWidth is the narrowest terminal the main screen fits in.
	MinWidth = 57
	// ChromeHeight is the number of lines the main screen needs besides one
	// per habit.
	ChromeHeight = 10
)

const otherYearMessage = "Only this year's days can be changed."

// storeChangedMsg reports that the store was written, possibly by another
// process.
type storeChangedMsg struct {
	Type store.EventType
}

// Model is the Bubble Tea model for the habit tracker. It owns the ledger and
// the view window; the service saves after every change.
type Model struct {
	svc    *app.Service
	ctx    context.Context
	cancel context.CancelFunc
	ledger *ledger.Ledger
	win    *window.Window
	theme  theme.Theme

	mode      mode
	action    action
	highlight int
	input     textinput.Model
	help      *help.Model

	events <-chan store.Event
	stale  bool

	termWidth  int
	termHeight int

	status  string
	saveErr error
}

// New creates a new UI model backed by the Service.
func New(svc *app.Service) *Model {
	ti := textinput.New()
	ti.Placeholder = "Habit name"
	ti.CharLimit = habit.NameMaxLength
	ti.Prompt = ""
	ti.VirtualCursor = true

	ctx, cancel := context.WithCancel(context.Background())
	m := &Model{
		svc:    svc,
		ctx:    ctx,
		cancel: cancel,
		win:    window.New(svc.Now),
		theme:  theme.Default(),
		mode:   modeNormal,
		input:  ti,
		help:   help.New(helpWidth, helpHeight),
	}
	l, err := svc.Ledger(m.ctx)
	if err != nil {
		m.setStatus("ERR: " + err.Error())
		l = ledger.New(svc.Capacity)
	}
	m.ledger = l
	return m
}

// Init starts watching the store so changes made elsewhere show up.
func (m *Model) Init() tea.Cmd {
	events, err := m.svc.Watch(m.ctx)
	if err != nil {
		logging.OrDiscard(m.svc.Logger).Warn("not watching store", "err", err)
		return nil
	}
	m.events = events
	return m.waitForChange()
}

func (m *Model) waitForChange() tea.Cmd {
	events := m.events
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return storeChangedMsg{Type: ev.Type}
	}
}

// refresh reloads the ledger after a store change once no prompt is open, so
// a pending add, rename or delete keeps its target.
func (m *Model) refresh() {
	if !m.stale || (m.mode != modeNormal && m.mode != modeCalendar && m.mode != modeHelp) {
		return
	}
	m.stale = false
	l, err := m.svc.Reload(m.ctx)
	if err != nil {
		m.reportErr(err)
		return
	}
	m.ledger = l
	if m.highlight >= l.Len() {
		m.highlight = max(l.Len()-1, 0)
	}
	if m.mode == modeCalendar && l.Len() == 0 {
		m.win.EnterWeek()
		m.mode = modeNormal
	}
}

// Update processes Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.help.SetSize(min(helpWidth, msg.Width-2), min(helpHeight, msg.Height-2))
	case tea.KeyPressMsg:
		cmd := m.handleKeyPress(msg)
		m.refresh()
		return m, cmd
	case storeChangedMsg:
		if msg.Type == store.EventRemoved {
			m.setStatus("The store was removed.")
		}
		m.stale = true
		m.refresh()
		return m, m.waitForChange()
	}
	if m.mode == modeInsert {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}
	if m.tooSmall() && m.mode == modeNormal {
		switch msg.String() {
		case "q", "esc":
			return m.quit()
		}
		return nil
	}

	switch m.mode {
	case modeCalendar:
		m.handleCalendarKey(msg)
	case modeInsert:
		return m.handleInsertKey(msg)
	case modeConfirm:
		m.handleConfirmKey(msg)
	case modeHelp:
		return m.handleHelpKey(msg)
	default:
		return m.handleNormalKey(msg)
	}
	return nil
}

func (m *Model) handleNormalKey(msg tea.KeyPressMsg) tea.Cmd {
	total := m.ledger.Len()
	m.setStatus("")

	switch msg.String() {
	case "k", "up":
		if total > 0 {
			m.highlight = (m.highlight - 1 + total) % total
		}
	case "j", "down":
		if total > 0 {
			m.highlight = (m.highlight + 1) % total
		}
	case "h", "left":
		m.win.Left()
	case "l", "right":
		m.win.Right()
	case "enter", "space", " ":
		if total > 0 {
			year, day := m.win.SelectedTarget()
			m.toggle(year, day)
		}
	case "1", "a":
		if m.ledger.Full() {
			m.setStatus(fullMessage(m.ledger.Cap()))
			return nil
		}
		return m.startInsert(actionAdd, "")
	case "2", "d":
		if total > 0 {
			m.mode = modeConfirm
		}
	case "3", "r":
		if h, err := m.ledger.Get(m.highlight); err == nil {
			return m.startInsert(actionRename, h.Name)
		}
	case "4", "c":
		if total > 0 {
			m.win.EnterCalendar()
			m.mode = modeCalendar
		}
	case "5", "q", "esc":
		return m.quit()
	case "?":
		m.mode = modeHelp
	}
	return nil
}

func (m *Model) handleHelpKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "?", "q", "esc":
		m.mode = modeNormal
		return nil
	}
	var cmd tea.Cmd
	m.help, cmd = m.help.Update(msg)
	return cmd
}

func (m *Model) handleCalendarKey(msg tea.KeyPressMsg) {
	switch msg.String() {
	case "k", "up":
		m.win.CalendarUp()
	case "j", "down":
		m.win.CalendarDown()
	case "h", "left":
		m.win.CalendarLeft()
	case "l", "right":
		m.win.CalendarRight()
	case "enter", "space", " ":
		m.toggle(m.win.Year(), m.win.CalendarDayOfYear())
	case "esc", "q":
		m.win.EnterWeek()
		m.mode = modeNormal
	}
}

func (m *Model) handleInsertKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.finishInsert()
		return nil
	case "enter":
		name, err := habit.CleanName(m.input.Value())
		if err != nil {
			// Keep prompting until a name is given or the prompt is cancelled.
			return nil
		}
		switch m.action {
		case actionAdd:
			if _, err := m.svc.Add(m.ctx, name); err != nil {
				m.reportErr(err)
			}
		case actionRename:
			if err := m.svc.Rename(m.ctx, m.highlight, name); err != nil {
				m.reportErr(err)
			}
		}
		m.finishInsert()
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) handleConfirmKey(msg tea.KeyPressMsg) {
	switch msg.String() {
	case "y", "Y":
		if err := m.svc.Remove(m.ctx, m.highlight); err != nil {
			m.reportErr(err)
		}
		if m.highlight >= m.ledger.Len() && m.highlight > 0 {
			m.highlight--
		}
		m.mode = modeNormal
	case "n", "N", "esc":
		m.mode = modeNormal
	}
}

func (m *Model) startInsert(a action, value string) tea.Cmd {
	m.mode = modeInsert
	m.action = a
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *Model) finishInsert() {
	m.input.Blur()
	m.input.SetValue("")
	m.action = actionNone
	m.mode = modeNormal
}

func (m *Model) toggle(year, day int) {
	if _, err := m.svc.Toggle(m.ctx, m.highlight, year, day); err != nil {
		m.reportErr(err)
	}
}

func (m *Model) reportErr(err error) {
	if errors.Is(err, app.ErrOtherYear) {
		m.setStatus(otherYearMessage)
		return
	}
	if errors.Is(err, ledger.ErrCapacityExceeded) {
		m.setStatus(fullMessage(m.ledger.Cap()))
		return
	}
	m.setStatus("ERR: " + err.Error())
}

func (m *Model) setStatus(s string) {
	m.status = s
}

// quit saves the ledger and ends the program. A failed save is kept for Run
// to report after the terminal is restored.
func (m *Model) quit() tea.Cmd {
	m.saveErr = m.svc.Save(m.ctx)
	m.cancel()
	return tea.Quit
}

func (m *Model) tooSmall() bool {
	if m.termWidth == 0 && m.termHeight == 0 {
		return false
	}
	return m.termWidth < MinWidth || m.termHeight < m.ledger.Len()+ChromeHeight
}

// Run launches the interactive TUI program.
func Run(svc *app.Service) error {
	p := tea.NewProgram(New(svc), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(*Model); ok && m.saveErr != nil {
		return m.saveErr
	}
	return nil
}
