package ui

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"

	"etheroll-go/internal/etheroll"
	"etheroll-go/internal/storage"
)

const appTitle = "EtherollApp"

// RollHandler receives the inputs gathered when the roll button is pressed.
type RollHandler func(etheroll.RollInput, etheroll.WalletConfig) error

// LogRoll returns a RollHandler that only logs the roll.
func LogRoll(logger *slog.Logger) RollHandler {
	return func(input etheroll.RollInput, config etheroll.WalletConfig) error {
		logger.Info("roll", "roll_input", input, "wallet_config", config)
		return nil
	}
}

// Controller is the root of the UI. It owns the navigation chrome and the
// screens, and hands roll requests off to the RollHandler.
type Controller struct {
	nav    *Navigation
	drawer *NavigationDrawer
	onRoll RollHandler

	rollScreen         *RollScreen
	rollResultsScreen  *RollResultsScreen
	walletConfigScreen *WalletConfigScreen
	settingsScreen     *SettingsScreen
	aboutScreen        *AboutScreen

	content fyne.CanvasObject
}

// NewController builds every screen and binds the roll button. A nil
// handler logs rolls.
func NewController(window fyne.Window, pref *storage.NetworkPreference, logger *slog.Logger, onRoll RollHandler) (*Controller, error) {
	if onRoll == nil {
		onRoll = LogRoll(logger)
	}
	drawer := NewNavigationDrawer(
		DrawerEntry{Screen: RollScreenName, Label: "Roll"},
		DrawerEntry{Screen: RollResultsScreenName, Label: "Roll results"},
		DrawerEntry{Screen: WalletConfigScreenName, Label: "Wallet"},
		DrawerEntry{Screen: SettingsScreenName, Label: "Settings"},
		DrawerEntry{Screen: AboutScreenName, Label: "About"},
	)
	nav := &Navigation{
		Window:  window,
		Toolbar: NewToolbar(appTitle, drawer),
		Manager: NewScreenManager(),
		Logger:  logger,
	}
	c := &Controller{
		nav:                nav,
		drawer:             drawer,
		onRoll:             onRoll,
		rollScreen:         NewRollScreen(),
		rollResultsScreen:  NewRollResultsScreen(nav),
		walletConfigScreen: NewWalletConfigScreen(nav),
		settingsScreen:     NewSettingsScreen(nav, pref),
		aboutScreen:        NewAboutScreen(nav),
	}

	// the home screen goes first so it is the one displayed
	screens := []Screen{
		c.rollScreen,
		c.rollResultsScreen,
		c.walletConfigScreen,
		c.settingsScreen,
		c.aboutScreen,
	}
	for _, screen := range screens {
		if err := nav.Manager.Add(screen); err != nil {
			return nil, err
		}
	}

	drawer.OnSelect = c.Navigate
	c.rollScreen.RollButton().OnTapped = c.onRollTapped

	c.content = container.NewBorder(nav.Toolbar.Content(), nil, drawer, nil, nav.Manager.Content())
	return c, nil
}

// Navigate moves forward to the named screen and closes the drawer.
func (c *Controller) Navigate(screen string) {
	c.nav.Manager.SetDirection(TransitionLeft)
	if err := c.nav.Manager.SetCurrent(screen); err != nil {
		c.nav.Logger.Error("navigation failed", "error", err)
	}
	c.drawer.Hide()
}

// Roll gathers the roll and wallet inputs and hands them to the RollHandler.
func (c *Controller) Roll() error {
	input, err := c.rollScreen.RollInput()
	if err != nil {
		return fmt.Errorf("invalid roll input: %w", err)
	}
	config := c.walletConfigScreen.Config()
	return c.onRoll(input, config)
}

func (c *Controller) onRollTapped() {
	if err := c.Roll(); err != nil {
		c.nav.Logger.Error("roll failed", "error", err)
		if c.nav.Window != nil {
			dialog.ShowError(err, c.nav.Window)
		}
	}
}

func (c *Controller) Content() fyne.CanvasObject {
	return c.content
}

func (c *Controller) Navigation() *Navigation {
	return c.nav
}

func (c *Controller) Drawer() *NavigationDrawer {
	return c.drawer
}

func (c *Controller) RollScreen() *RollScreen {
	return c.rollScreen
}

func (c *Controller) WalletConfigScreen() *WalletConfigScreen {
	return c.walletConfigScreen
}

func (c *Controller) SettingsScreen() *SettingsScreen {
	return c.settingsScreen
}

func (c *Controller) AboutScreen() *AboutScreen {
	return c.aboutScreen
}
