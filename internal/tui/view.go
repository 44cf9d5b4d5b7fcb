package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the active screen.
func (m Model) View() string {
	var body string
	switch m.screen {
	case ScreenMenu:
		body = m.viewMenu()
	case ScreenGenerate:
		body = m.viewGenerate()
	case ScreenImport:
		body = m.viewInput("Import Wallet", "Paste a secret key in hex or base58 form.")
	case ScreenValidate:
		body = m.viewInput("Validate Address", "Enter a Mina address to check.")
	case ScreenWalletResult:
		body = m.viewWalletResult()
	case ScreenValidateResult:
		body = m.viewValidateResult()
	}

	header := titleStyle.Render("minawallet")
	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}

func (m Model) viewMenu() string {
	var b strings.Builder
	for i, item := range menuItems {
		cursor := "  "
		line := item
		if i == m.menuIndex {
			cursor = selectedStyle.Render("> ")
			line = selectedStyle.Render(item)
		}
		b.WriteString(cursor + line + "\n")
	}
	return boxStyle.Render(b.String()) +
		helpStyle.Render("up/down: move   enter: select   q: quit")
}

func (m Model) viewGenerate() string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("Network: "))
	b.WriteString(selectedStyle.Render(string(m.network)))
	b.WriteString("\n\n")
	if m.busy {
		b.WriteString(m.spinner.View() + " Generating keypair...")
	} else if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
	} else {
		b.WriteString(labelStyle.Render("Press enter to generate."))
	}
	return boxStyle.Render(b.String()) +
		helpStyle.Render("tab: switch network   enter: generate   esc: back")
}

func (m Model) viewInput(title, hint string) string {
	var b strings.Builder
	b.WriteString(valueStyle.Render(title) + "\n")
	b.WriteString(labelStyle.Render(hint) + "\n\n")
	if m.screen == ScreenImport {
		b.WriteString(labelStyle.Render("Network: "))
		b.WriteString(selectedStyle.Render(string(m.network)) + "\n\n")
	}
	b.WriteString(m.input.View())
	if m.err != nil {
		b.WriteString("\n\n" + errorStyle.Render("Error: "+m.err.Error()))
	}
	help := "enter: submit   esc: back"
	if m.screen == ScreenImport {
		help = "tab: switch network   " + help
	}
	return boxStyle.Render(b.String()) + helpStyle.Render(help)
}

func (m Model) viewWalletResult() string {
	w := m.result
	if w == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(successStyle.Render("Wallet ready") + "\n\n")
	b.WriteString(labelStyle.Render("Address:  ") + valueStyle.Render(w.Address()) + "\n")
	b.WriteString(labelStyle.Render("Network:  ") + valueStyle.Render(w.Network().Label()) + "\n")
	if m.revealed {
		b.WriteString(labelStyle.Render("Hex:      ") + valueStyle.Render(w.SecretKeyHex()) + "\n")
		b.WriteString(labelStyle.Render("Base58:   ") + valueStyle.Render(w.SecretKeyBase58()) + "\n")
		b.WriteString("\n" + warningStyle.Render("Store your secret key securely!"))
	} else {
		b.WriteString(labelStyle.Render("Secret:   ") + labelStyle.Render("(hidden - press s to reveal)") + "\n")
	}
	return boxStyle.Render(b.String()) +
		helpStyle.Render("s: reveal/hide secret   esc: back to menu")
}

func (m Model) viewValidateResult() string {
	var b strings.Builder
	if m.valid {
		b.WriteString(successStyle.Render("Address is valid") + "\n\n")
		b.WriteString(valueStyle.Render(m.validated))
	} else {
		b.WriteString(errorStyle.Render("Address is not valid") + "\n\n")
		b.WriteString(labelStyle.Render(m.validated))
	}
	return boxStyle.Render(b.String()) +
		helpStyle.Render("enter/esc: back to menu")
}
