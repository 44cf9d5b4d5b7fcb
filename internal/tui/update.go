package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/minaweb/mina-wallet/internal/wallet"
)

// Messages for async operations
type walletReadyMsg struct {
	w   *wallet.Wallet
	err error
}

// Init starts the spinner ticker.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case walletReadyMsg:
		if !m.busy {
			// The user left the generate screen while the keypair was
			// still being made; drop the stale result.
			return m, nil
		}
		m.busy = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.result = msg.w
		m.revealed = false
		m.err = nil
		m.screen = ScreenWalletResult
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.screen {
	case ScreenMenu:
		return m.handleMenuKey(key)
	case ScreenGenerate:
		return m.handleGenerateKey(key)
	case ScreenImport, ScreenValidate:
		return m.handleInputKey(msg)
	case ScreenWalletResult:
		return m.handleResultKey(key)
	case ScreenValidateResult:
		if key == "esc" || key == "enter" || key == "q" {
			m.reset()
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleMenuKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "up", "k":
		m.menuIndex = (m.menuIndex - 1 + len(menuItems)) % len(menuItems)
	case "down", "j":
		m.menuIndex = (m.menuIndex + 1) % len(menuItems)
	case "q", "esc":
		return m, tea.Quit
	case "enter":
		switch m.menuIndex {
		case 0:
			m.screen = ScreenGenerate
			m.err = nil
		case 1:
			m.screen = ScreenImport
			m.err = nil
			m.input.Placeholder = "secret key (hex or base58)"
			m.input.SetValue("")
			return m, m.input.Focus()
		case 2:
			m.screen = ScreenValidate
			m.err = nil
			m.input.Placeholder = "B62q..."
			m.input.SetValue("")
			return m, m.input.Focus()
		case 3:
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) handleGenerateKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "tab", "left", "right", "n":
		m.toggleNetwork()
	case "esc":
		m.reset()
	case "enter":
		if m.busy {
			return m, nil
		}
		m.busy = true
		m.err = nil
		return m, generateWallet(m.network)
	}
	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.reset()
		return m, nil
	case "tab":
		m.toggleNetwork()
		return m, nil
	case "enter":
		value := m.input.Value()
		if value == "" {
			return m, nil
		}
		if m.screen == ScreenImport {
			w, err := wallet.Import(value, m.network)
			if err != nil {
				m.err = err
				return m, nil
			}
			m.result = w
			m.revealed = false
			m.err = nil
			m.screen = ScreenWalletResult
			return m, nil
		}
		m.validated = value
		m.valid = wallet.ValidateAddress(value) == nil
		m.screen = ScreenValidateResult
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleResultKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "s":
		// Secrets stay hidden until explicitly revealed.
		m.revealed = !m.revealed
	case "esc", "q", "enter":
		m.reset()
	}
	return m, nil
}

// generateWallet runs keypair generation off the update loop.
func generateWallet(network wallet.NetworkID) tea.Cmd {
	return func() tea.Msg {
		w, err := wallet.New(network)
		return walletReadyMsg{w: w, err: err}
	}
}
