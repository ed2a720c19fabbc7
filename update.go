package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/spkommal/bankist-app/internal/bank"
)

// ---------------------------------------------------------------------------
// Login view
// ---------------------------------------------------------------------------

func (m model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab", "shift+tab", "up", "down":
		m.loginFocus = (m.loginFocus + 1) % len(m.loginInputs)
		for i := range m.loginInputs {
			if i == m.loginFocus {
				m.loginInputs[i].Focus()
			} else {
				m.loginInputs[i].Blur()
			}
		}
		return m, nil
	case "enter":
		return m.submitLogin()
	}

	var cmd tea.Cmd
	m.loginInputs[m.loginFocus], cmd = m.loginInputs[m.loginFocus].Update(msg)
	return m, cmd
}

func (m model) submitLogin() (tea.Model, tea.Cmd) {
	user := m.loginInputs[0].Value()
	pin := m.loginInputs[1].Value()
	// Fields are cleared on every attempt, success or not.
	m.clearLoginValues()
	m.focusLoginUser()

	out := m.session.Login(user, pin)
	m.setStatus(out)
	if out.OK {
		m.view = viewApp
		m.cursor = 0
		m.topIndex = 0
	} else {
		m.view = viewLogin
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// Logged-in view
// ---------------------------------------------------------------------------

func (m model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "t":
		m.openModal(modalTransfer)
		return m, nil
	case "l":
		m.openModal(modalLoan)
		return m, nil
	case "x":
		m.openModal(modalClose)
		return m, nil
	case "s":
		m.session.ToggleSort()
		m.ensureCursorInWindow()
		return m, nil
	case "o":
		m.view = viewLogin
		m.status = "Log in to get started"
		m.statusTone = bank.ToneNeutral
		m.clearLoginValues()
		m.focusLoginUser()
		return m, nil
	case "up", "k", "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
			if m.cursor < m.topIndex {
				m.topIndex--
			}
			if m.topIndex < 0 {
				m.topIndex = 0
			}
		}
		return m, nil
	case "down", "j", "ctrl+n":
		total := m.movementCount()
		if m.cursor < total-1 {
			m.cursor++
			visible := m.visibleRows()
			if visible <= 0 {
				visible = 1
			}
			if m.cursor >= m.topIndex+visible {
				m.topIndex++
			}
			maxTop := total - visible
			if maxTop < 0 {
				maxTop = 0
			}
			if m.topIndex > maxTop {
				m.topIndex = maxTop
			}
		}
		return m, nil
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// Form modals
// ---------------------------------------------------------------------------

func (m model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.closeModal()
		return m, nil
	case "tab", "shift+tab", "up", "down":
		if len(m.formInputs) > 1 {
			m.formFocus = (m.formFocus + 1) % len(m.formInputs)
			for i := range m.formInputs {
				if i == m.formFocus {
					m.formInputs[i].Focus()
				} else {
					m.formInputs[i].Blur()
				}
			}
		}
		return m, nil
	case "enter":
		return m.submitModal()
	}

	var cmd tea.Cmd
	m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(msg)
	return m, cmd
}

func (m model) submitModal() (tea.Model, tea.Cmd) {
	values := make([]string, len(m.formInputs))
	for i := range m.formInputs {
		values[i] = m.formInputs[i].Value()
	}
	kind := m.modal
	m.clearFormValues()
	m.closeModal()

	switch kind {
	case modalTransfer:
		out := m.session.Transfer(values[0], values[1])
		m.setStatus(out)
	case modalLoan:
		out := m.session.RequestLoan(values[0])
		m.setStatus(out)
	case modalClose:
		out := m.session.CloseAccount(values[0], values[1])
		if out.OK {
			m.setStatus(out)
			m.view = viewLogin
			m.clearLoginValues()
			m.focusLoginUser()
		}
		// Failed closure is a silent no-op: inputs cleared, nothing else.
	}
	m.ensureCursorInWindow()
	return m, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (m *model) setStatus(out bank.Outcome) {
	m.status = out.Message
	if out.Hint != "" {
		m.status += " — " + out.Hint
	}
	m.statusTone = out.Tone
}

func (m *model) focusLoginUser() {
	m.loginFocus = 0
	m.loginInputs[0].Focus()
	m.loginInputs[1].Blur()
}

func (m *model) movementCount() int {
	cur := m.session.Current()
	if cur == nil {
		return 0
	}
	return len(cur.Movements)
}

// updateFocusedInput forwards non-key messages (cursor blink) to whichever
// textinput currently has focus.
func (m model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.modal != modalNone && len(m.formInputs) > 0 {
		var cmd tea.Cmd
		m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(msg)
		return m, cmd
	}
	if m.view == viewLogin {
		var cmd tea.Cmd
		m.loginInputs[m.loginFocus], cmd = m.loginInputs[m.loginFocus].Update(msg)
		return m, cmd
	}
	return m, nil
}
