package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ethereum/go-ethereum/common"

	"etheroll-go/internal/etheroll"
)

type WalletConfigScreen struct {
	SubScreen
	pathEntry     *widget.Entry
	passwordEntry *widget.Entry
	addressLabel  *widget.Label
	content       fyne.CanvasObject
}

func NewWalletConfigScreen(nav *Navigation) *WalletConfigScreen {
	s := &WalletConfigScreen{
		SubScreen:     NewSubScreen(nav),
		pathEntry:     widget.NewEntry(),
		passwordEntry: widget.NewPasswordEntry(),
		addressLabel:  widget.NewLabel(""),
	}
	s.pathEntry.SetPlaceHolder("Path to the keystore file")
	s.passwordEntry.SetPlaceHolder("Keystore password")
	s.pathEntry.OnChanged = func(string) { s.updateAddress() }
	s.updateAddress()

	browseButton := widget.NewButton("Browse", s.browse)

	s.content = container.NewVBox(
		widget.NewLabelWithStyle("Wallet", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewForm(
			widget.NewFormItem("Keystore", container.NewBorder(nil, nil, nil, browseButton, s.pathEntry)),
			widget.NewFormItem("Password", s.passwordEntry),
		),
		s.addressLabel,
	)
	return s
}

func (s *WalletConfigScreen) Name() string {
	return WalletConfigScreenName
}

func (s *WalletConfigScreen) Content() fyne.CanvasObject {
	return s.content
}

// Config returns wallet path and encryption password user input values.
func (s *WalletConfigScreen) Config() etheroll.WalletConfig {
	return etheroll.WalletConfig{
		Path:    s.pathEntry.Text,
		Chances: s.passwordEntry.Text,
	}
}

// Address reads the account address from the selected keystore.
func (s *WalletConfigScreen) Address() (common.Address, error) {
	return etheroll.KeystoreAddress(s.pathEntry.Text)
}

// AddressText is the address line shown under the form.
func (s *WalletConfigScreen) AddressText() string {
	return s.addressLabel.Text
}

func (s *WalletConfigScreen) updateAddress() {
	if s.pathEntry.Text == "" {
		s.addressLabel.SetText("Address: -")
		return
	}
	addr, err := s.Address()
	if err != nil {
		s.Navigation().Logger.Debug("keystore address unavailable", "path", s.pathEntry.Text, "error", err)
		s.addressLabel.SetText("Address: -")
		return
	}
	s.addressLabel.SetText(fmt.Sprintf("Address: %s", addr.Hex()))
}

func (s *WalletConfigScreen) browse() {
	if s.Navigation().Window == nil {
		return
	}
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, s.Navigation().Window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()
		s.pathEntry.SetText(reader.URI().Path())
	}, s.Navigation().Window)
}
