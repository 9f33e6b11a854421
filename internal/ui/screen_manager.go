package ui

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

var ErrUnknownScreen = errors.New("unknown screen")

// Screen names.
const (
	RollScreenName         = "roll_screen"
	RollResultsScreenName  = "roll_results_screen"
	WalletConfigScreenName = "wallet_config_screen"
	SettingsScreenName     = "settings_screen"
	AboutScreenName        = "about_screen"

	HomeScreenName = RollScreenName
)

// Direction is the way a screen change slides.
type Direction string

const (
	TransitionLeft  Direction = "left"
	TransitionRight Direction = "right"
)

// Screen is a page hosted by the ScreenManager.
type Screen interface {
	Name() string
	Content() fyne.CanvasObject
	OnEnter()
	OnLeave()
}

// ScreenManager shows one screen at a time. Switching screens calls OnLeave
// on the outgoing screen before OnEnter on the incoming one.
type ScreenManager struct {
	screens   map[string]Screen
	current   Screen
	direction Direction
	stack     *fyne.Container
}

func NewScreenManager() *ScreenManager {
	return &ScreenManager{
		screens:   make(map[string]Screen),
		direction: TransitionLeft,
		stack:     container.NewStack(),
	}
}

// Add registers a screen. The first screen added becomes current.
func (m *ScreenManager) Add(screen Screen) error {
	name := screen.Name()
	if _, ok := m.screens[name]; ok {
		return fmt.Errorf("screen %q already added", name)
	}
	m.screens[name] = screen
	if m.current == nil {
		m.show(screen)
	}
	return nil
}

// SetCurrent switches to the named screen.
func (m *ScreenManager) SetCurrent(name string) error {
	next, ok := m.screens[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownScreen, name)
	}
	if next == m.current {
		return nil
	}
	if m.current != nil {
		m.current.OnLeave()
	}
	m.show(next)
	return nil
}

func (m *ScreenManager) show(screen Screen) {
	m.current = screen
	m.stack.Objects = []fyne.CanvasObject{screen.Content()}
	m.stack.Refresh()
	screen.OnEnter()
}

// Current returns the name of the displayed screen.
func (m *ScreenManager) Current() string {
	if m.current == nil {
		return ""
	}
	return m.current.Name()
}

func (m *ScreenManager) Screen(name string) (Screen, bool) {
	s, ok := m.screens[name]
	return s, ok
}

func (m *ScreenManager) Direction() Direction {
	return m.direction
}

func (m *ScreenManager) SetDirection(d Direction) {
	m.direction = d
}

func (m *ScreenManager) Content() fyne.CanvasObject {
	return m.stack
}
