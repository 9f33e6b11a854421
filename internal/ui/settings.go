package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"etheroll-go/internal/etheroll"
	"etheroll-go/internal/storage"
)

// SettingsScreen lets the user pick the network.
type SettingsScreen struct {
	SubScreen
	pref *storage.NetworkPreference

	mainnetCheck *widget.Check
	testnetCheck *widget.Check
	chainLabel   *widget.Label
	content      fyne.CanvasObject

	// set while the checks are updated programmatically
	syncing bool
}

func NewSettingsScreen(nav *Navigation, pref *storage.NetworkPreference) *SettingsScreen {
	s := &SettingsScreen{
		SubScreen:  NewSubScreen(nav),
		pref:       pref,
		chainLabel: widget.NewLabel(""),
	}
	s.mainnetCheck = widget.NewCheck("Mainnet", func(on bool) {
		chain := etheroll.Ropsten
		if on {
			chain = etheroll.Mainnet
		}
		s.selectNetwork(chain)
	})
	s.testnetCheck = widget.NewCheck("Testnet (Ropsten)", func(on bool) {
		chain := etheroll.Mainnet
		if on {
			chain = etheroll.Ropsten
		}
		s.selectNetwork(chain)
	})

	s.content = container.NewVBox(
		widget.NewLabelWithStyle("Network", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		s.mainnetCheck,
		s.testnetCheck,
		s.chainLabel,
	)
	return s
}

func (s *SettingsScreen) Name() string {
	return SettingsScreenName
}

func (s *SettingsScreen) Content() fyne.CanvasObject {
	return s.content
}

// OnEnter installs the back button and shows the stored network.
func (s *SettingsScreen) OnEnter() {
	s.SubScreen.OnEnter()
	chain, err := s.pref.StoredNetwork()
	if err != nil {
		s.showError(fmt.Errorf("failed to load network: %w", err))
		return
	}
	s.setUINetwork(chain)
}

// UINetwork returns the network currently selected in the UI.
func (s *SettingsScreen) UINetwork() etheroll.ChainID {
	if s.IsUIMainnet() {
		return etheroll.Mainnet
	}
	return etheroll.Ropsten
}

func (s *SettingsScreen) IsUIMainnet() bool {
	return s.mainnetCheck.Checked
}

func (s *SettingsScreen) IsUITestnet() bool {
	return s.testnetCheck.Checked
}

// StoreNetwork saves the selected network to the store.
func (s *SettingsScreen) StoreNetwork() error {
	chain := s.UINetwork()
	if err := s.pref.StoreNetwork(chain); err != nil {
		return fmt.Errorf("failed to store network %s: %w", chain, err)
	}
	s.Navigation().Logger.Info("network stored", "network", chain.Name())
	return nil
}

func (s *SettingsScreen) selectNetwork(chain etheroll.ChainID) {
	if s.syncing {
		return
	}
	s.setUINetwork(chain)
	if err := s.StoreNetwork(); err != nil {
		s.showError(err)
	}
}

func (s *SettingsScreen) setUINetwork(chain etheroll.ChainID) {
	s.syncing = true
	defer func() { s.syncing = false }()

	s.mainnetCheck.SetChecked(chain == etheroll.Mainnet)
	s.testnetCheck.SetChecked(chain == etheroll.Ropsten)
	s.chainLabel.SetText(fmt.Sprintf("Chain ID: %s", chain.BigInt()))
}

func (s *SettingsScreen) showError(err error) {
	s.Navigation().Logger.Error("settings", "error", err)
	if s.Navigation().Window != nil {
		dialog.ShowError(err, s.Navigation().Window)
	}
}
