package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/spkommal/bankist-app/internal/bank"
)

// ---------------------------------------------------------------------------
// Styles — Catppuccin Mocha themed
// ---------------------------------------------------------------------------

var (
	// Section titles
	titleStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)

	// Header bar (spans full width)
	headerBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMantle).
			Padding(0, 2)

	// App name in header
	headerAppStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Bold(true)

	headerTaglineStyle = lipgloss.NewStyle().
				Foreground(colorSubtext1).
				Background(colorMantle)

	// Footer bar
	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle).
			Padding(0, 2)

	// Status bar (above footer) — foreground set per message tone
	statusBarStyle = lipgloss.NewStyle().
			Background(colorSurface0).
			Padding(0, 2)

	// Section containers
	listBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	// Modal overlay
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)

	// Help key styling
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0)

	// Table styles
	tableHeaderStyle = lipgloss.NewStyle().
				Foreground(colorSubtext0).
				Bold(true)

	depositStyle    = lipgloss.NewStyle().Foreground(colorSuccess)
	withdrawalStyle = lipgloss.NewStyle().Foreground(colorError)

	cursorStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	balanceValueStyle = lipgloss.NewStyle().Foreground(colorPeach).Bold(true)

	summaryLabelStyle = lipgloss.NewStyle().Foreground(colorSubtext0)
	sortedFlagStyle   = lipgloss.NewStyle().Foreground(colorInfo)

	// Scroll indicator
	scrollStyle = lipgloss.NewStyle().Foreground(colorOverlay1)
)

// ---------------------------------------------------------------------------
// Chrome
// ---------------------------------------------------------------------------

func renderHeader(appName string, width int) string {
	name := headerAppStyle.Render(appName)
	tagline := headerTaglineStyle.Render("  minimalist banking")
	content := name + tagline
	if width <= 0 {
		return headerBarStyle.Render(content)
	}
	return headerBarStyle.Width(width).Render(content)
}

func (m model) renderSection(title, content string) string {
	contentWidth := m.sectionContentWidth()
	header := padRight(titleStyle.Render(title), contentWidth)
	sepStyle := lipgloss.NewStyle().Foreground(colorSurface2)
	separator := sepStyle.Render(strings.Repeat("─", contentWidth))
	sectionContent := header + "\n" + separator + "\n" + content
	section := listBoxStyle.Width(m.sectionWidth()).Render(sectionContent)
	if m.width == 0 {
		return section
	}
	return lipgloss.Place(m.width, lipgloss.Height(section), lipgloss.Center, lipgloss.Top, section)
}

func (m model) renderFooter(bindings []key.Binding) string {
	// Build help text where every character carries the footer background.
	bg := colorMantle
	keyStyle := helpKeyStyle.Background(bg)
	descStyle := helpDescStyle.Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(help.Key)+space+descStyle.Render(help.Desc))
	}
	content := strings.Join(parts, sep)

	if m.width == 0 {
		return footerStyle.Render(content)
	}
	return footerStyle.Width(m.width).Render(content)
}

func (m model) renderStatus(text string, tone bank.Tone) string {
	flat := strings.ReplaceAll(text, "\n", " ")
	style := statusBarStyle.Foreground(toneColor(tone))
	if m.width == 0 {
		return style.Render(flat)
	}
	return style.Width(m.width).Render(flat)
}

// ---------------------------------------------------------------------------
// Modal overlay
// ---------------------------------------------------------------------------

func (m model) composeModal(base, statusLine, footer string) string {
	baseView := m.placeWithFooter(base, statusLine, footer)
	if m.height == 0 || m.width == 0 {
		return baseView + "\n\n" + m.modalView()
	}
	modalContent := lipgloss.NewStyle().Width(min(48, m.width-10)).Render(m.modalView())
	modal := modalStyle.Render(modalContent)
	lines := splitLines(modal)
	modalWidth := maxLineWidth(lines)
	modalHeight := len(lines)

	targetHeight := m.height - 2
	if targetHeight < 1 {
		targetHeight = 1
	}
	x := (m.width - modalWidth) / 2
	if x < 0 {
		x = 0
	}
	y := (targetHeight - modalHeight) / 2
	if y < 0 {
		y = 0
	}
	return overlayAt(baseView, modal, x, y, m.width, targetHeight)
}

func (m model) modalView() string {
	title := titleStyle.Render(modalTitles[m.modal])
	fields := make([]string, 0, len(m.formInputs))
	for i := range m.formInputs {
		fields = append(fields, m.formInputs[i].View())
	}
	return title + "\n\n" + strings.Join(fields, "\n")
}

// ---------------------------------------------------------------------------
// Data sections
// ---------------------------------------------------------------------------

func (m model) renderBalance(acc *bank.Account) string {
	label := summaryLabelStyle.Render(fmt.Sprintf("%-18s", acc.Owner))
	value := balanceValueStyle.Render(fmt.Sprintf("%.2f%s", bank.Balance(acc.Movements), m.currency))
	return label + " " + value
}

func renderMovements(rows []bank.DisplayMovement, cursor, topIndex, visible, width int, currency string) string {
	posWidth := 4
	kindWidth := 10
	amountWidth := 14

	header := fmt.Sprintf("  %-*s  %-*s  %*s", posWidth, "#", kindWidth, "Type", amountWidth, "Amount")
	headerLine := tableHeaderStyle.Render(header)
	lines := []string{headerLine}

	end := topIndex + visible
	if end > len(rows) {
		end = len(rows)
	}
	for i := topIndex; i < end; i++ {
		row := rows[i]
		amountText := fmt.Sprintf("%*s", amountWidth, fmt.Sprintf("%.2f%s", row.Amount, currency))
		kindField := padRight(string(row.Kind), kindWidth)
		if row.Kind == bank.MovementDeposit {
			kindField = depositStyle.Render(kindField)
			amountText = depositStyle.Render(amountText)
		} else {
			kindField = withdrawalStyle.Render(kindField)
			amountText = withdrawalStyle.Render(amountText)
		}
		prefix := "  "
		if i == cursor {
			prefix = cursorStyle.Render("> ")
		}
		posField := fmt.Sprintf("%-*d", posWidth, row.Position)
		line := prefix + posField + "  " + kindField + "  " + amountText
		lines = append(lines, padRight(line, width))
	}

	// Scroll indicator
	total := len(rows)
	if total > 0 && visible > 0 {
		start := topIndex + 1
		endIdx := topIndex + visible
		if endIdx > total {
			endIdx = total
		}
		indicator := scrollStyle.Render(fmt.Sprintf("── showing %d-%d of %d ──", start, endIdx, total))
		lines = append(lines, indicator)
	}

	return strings.Join(lines, "\n")
}

func (m model) renderSummary(acc *bank.Account) string {
	in := bank.Income(acc.Movements)
	out := bank.Expense(acc.Movements)
	interest := bank.QualifyingInterest(acc.Movements, acc.InterestRate)

	parts := []string{
		summaryLabelStyle.Render("In ") + depositStyle.Render(fmt.Sprintf("%.2f%s", in, m.currency)),
		summaryLabelStyle.Render("Out ") + withdrawalStyle.Render(fmt.Sprintf("%.2f%s", out, m.currency)),
		summaryLabelStyle.Render("Interest ") + balanceValueStyle.Render(fmt.Sprintf("%.2f%s", interest, m.currency)),
	}
	line := strings.Join(parts, "   ")
	if m.session.Sorted() {
		line += "   " + sortedFlagStyle.Render("sorted ↑")
	}
	return line
}
