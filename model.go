package main

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/spkommal/bankist-app/internal/bank"
	"github.com/spkommal/bankist-app/internal/config"
)

const appName = "Bankist"

// ---------------------------------------------------------------------------
// View and modal state
// ---------------------------------------------------------------------------

type viewState string

const (
	viewLogin viewState = "login"
	viewApp   viewState = "app"
)

type modalState string

const (
	modalNone     modalState = ""
	modalTransfer modalState = "transfer"
	modalLoan     modalState = "loan"
	modalClose    modalState = "close"
)

var modalTitles = map[modalState]string{
	modalTransfer: "Transfer money",
	modalLoan:     "Request loan",
	modalClose:    "Close account",
}

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

type model struct {
	store    *bank.Store
	session  *bank.Session
	currency string
	maxRows  int

	view  viewState
	modal modalState

	loginInputs []textinput.Model // username, PIN
	loginFocus  int

	formInputs []textinput.Model // current modal's fields
	formFocus  int

	keys keyMap

	status     string
	statusTone bank.Tone

	cursor   int
	topIndex int
	width    int
	height   int
}

func newModel(store *bank.Store, session *bank.Session, cfg config.Config) model {
	user := textinput.New()
	user.Placeholder = "user"
	user.Prompt = "user> "
	user.Focus()

	pin := textinput.New()
	pin.Placeholder = "PIN"
	pin.Prompt = "pin>  "
	pin.EchoMode = textinput.EchoPassword

	return model{
		store:       store,
		session:     session,
		currency:    cfg.UI.CurrencySymbol,
		maxRows:     cfg.UI.MaxRows,
		view:        viewLogin,
		loginInputs: []textinput.Model{user, pin},
		keys:        newKeyMap(),
		status:      "Log in to get started",
		statusTone:  bank.ToneNeutral,
	}
}

// ---------------------------------------------------------------------------
// Bubble Tea interface: Init / Update / View
// ---------------------------------------------------------------------------

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorInWindow()
		return m, nil
	case tea.KeyMsg:
		if m.modal != modalNone {
			return m.updateModal(msg)
		}
		if m.view == viewLogin {
			return m.updateLogin(msg)
		}
		return m.updateMain(msg)
	}
	// Blink and other component messages go to whichever input has focus.
	return m.updateFocusedInput(msg)
}

func (m model) View() string {
	header := renderHeader(appName, m.width)
	statusLine := m.renderStatus(m.status, m.statusTone)
	footer := m.renderFooter(m.footerBindings())

	var body string
	switch m.view {
	case viewApp:
		body = m.appView()
	default:
		body = m.loginView()
	}

	main := header + "\n\n" + body

	if m.modal != modalNone {
		return m.composeModal(main, statusLine, footer)
	}
	return m.placeWithFooter(main, statusLine, footer)
}

// ---------------------------------------------------------------------------
// Per-view bodies
// ---------------------------------------------------------------------------

func (m model) loginView() string {
	content := m.loginInputs[0].View() + "\n" + m.loginInputs[1].View()
	return m.renderSection("Log in", content)
}

func (m model) appView() string {
	cur := m.session.Current()
	if cur == nil {
		// Stale view after closure; nothing to render but the chrome.
		return m.renderSection("Account", "No account")
	}
	balance := m.renderSection("Balance", m.renderBalance(cur))
	rows := bank.DisplayMovements(cur.Movements, m.session.Sorted())
	movements := m.renderSection("Movements",
		renderMovements(rows, m.cursor, m.topIndex, m.visibleRows(), m.listContentWidth(), m.currency))
	summary := m.renderSection("Summary", m.renderSummary(cur))
	return balance + "\n" + movements + "\n" + summary
}

// ---------------------------------------------------------------------------
// Modal construction
// ---------------------------------------------------------------------------

func (m *model) openModal(kind modalState) {
	m.modal = kind
	m.formFocus = 0
	switch kind {
	case modalTransfer:
		to := textinput.New()
		to.Placeholder = "recipient user"
		to.Prompt = "to>     "
		to.Focus()
		amount := textinput.New()
		amount.Placeholder = "amount"
		amount.Prompt = "amount> "
		m.formInputs = []textinput.Model{to, amount}
	case modalLoan:
		amount := textinput.New()
		amount.Placeholder = "amount"
		amount.Prompt = "amount> "
		amount.Focus()
		m.formInputs = []textinput.Model{amount}
	case modalClose:
		user := textinput.New()
		user.Placeholder = "confirm user"
		user.Prompt = "user> "
		user.Focus()
		pin := textinput.New()
		pin.Placeholder = "confirm PIN"
		pin.Prompt = "pin>  "
		pin.EchoMode = textinput.EchoPassword
		m.formInputs = []textinput.Model{user, pin}
	}
}

func (m *model) closeModal() {
	m.modal = modalNone
	m.formInputs = nil
	m.formFocus = 0
}

// clearFormValues empties the modal fields. Runs before the gate check so a
// failure message never echoes the attempted values.
func (m *model) clearFormValues() {
	for i := range m.formInputs {
		m.formInputs[i].SetValue("")
	}
}

func (m *model) clearLoginValues() {
	for i := range m.loginInputs {
		m.loginInputs[i].SetValue("")
	}
}
