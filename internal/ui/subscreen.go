package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
)

// Navigation is the chrome shared by every screen: the window hosting
// dialogs, the toolbar and the screen manager.
type Navigation struct {
	Window  fyne.Window
	Toolbar *Toolbar
	Manager *ScreenManager
	Logger  *slog.Logger
}

// SubScreen gives a screen reached from the home screen a back button.
// Screens embed it to get OnEnter, OnLeave and OnBack.
type SubScreen struct {
	nav *Navigation
}

func NewSubScreen(nav *Navigation) SubScreen {
	return SubScreen{nav: nav}
}

// Navigation returns the chrome the screen was built with.
func (s SubScreen) Navigation() *Navigation {
	return s.nav
}

// OnBack returns to the home screen.
func (s SubScreen) OnBack() {
	s.nav.Manager.SetDirection(TransitionRight)
	if err := s.nav.Manager.SetCurrent(HomeScreenName); err != nil {
		s.nav.Logger.Error("back navigation failed", "error", err)
	}
}

// OnEnter loads the toolbar back button.
func (s SubScreen) OnEnter() {
	s.nav.Toolbar.LoadBackButton(s.OnBack)
}

// OnLeave loads the toolbar default buttons.
func (s SubScreen) OnLeave() {
	s.nav.Toolbar.LoadDefaultButtons()
}
