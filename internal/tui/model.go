package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/minaweb/mina-wallet/internal/wallet"
)

// Screen represents the active view.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenGenerate
	ScreenImport
	ScreenValidate
	ScreenWalletResult
	ScreenValidateResult
)

// menu entries, in display order
var menuItems = []string{
	"Generate a new wallet",
	"Import a wallet from a secret key",
	"Validate an address",
	"Quit",
}

// Model holds all TUI state.
type Model struct {
	screen Screen
	width  int
	height int

	menuIndex int
	network   wallet.NetworkID

	input   textinput.Model
	spinner spinner.Model
	busy    bool

	result   *wallet.Wallet
	revealed bool

	validated string
	valid     bool

	err error
}

// NewModel creates the initial TUI model.
func NewModel() Model {
	ti := textinput.New()
	ti.CharLimit = 128
	ti.Width = 64

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = selectedStyle

	return Model{
		screen:  ScreenMenu,
		network: wallet.Mainnet,
		input:   ti,
		spinner: sp,
	}
}

// toggleNetwork flips between mainnet and testnet.
func (m *Model) toggleNetwork() {
	if m.network == wallet.Mainnet {
		m.network = wallet.Testnet
	} else {
		m.network = wallet.Mainnet
	}
}

// reset clears transient state when returning to the menu. The generated
// wallet and its secrets are dropped here; the TUI never persists them.
func (m *Model) reset() {
	m.screen = ScreenMenu
	m.busy = false
	m.result = nil
	m.revealed = false
	m.validated = ""
	m.valid = false
	m.err = nil
	m.input.SetValue("")
	m.input.Blur()
}
