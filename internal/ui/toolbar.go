package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Icon identifiers understood by the toolbar.
const (
	IconMenu     = "menu"
	IconOverflow = "dots-vertical"
	IconBack     = "arrow-left"
)

type ToolbarState int

const (
	ToolbarDefault ToolbarState = iota
	ToolbarBack
)

func (s ToolbarState) String() string {
	if s == ToolbarBack {
		return "back"
	}
	return "default"
}

// ToolbarItem is one action button of the toolbar.
type ToolbarItem struct {
	Icon   string
	Action func()
}

// Toggler opens and closes the navigation drawer.
type Toggler interface {
	Toggle()
}

// Toolbar is the top bar of the app. Its buttons are replaced wholesale
// depending on whether the home screen or a sub-screen is displayed.
type Toolbar struct {
	drawer Toggler
	state  ToolbarState
	left   []ToolbarItem
	right  []ToolbarItem

	leftBar  *widget.Toolbar
	rightBar *widget.Toolbar
	title    *widget.Label
	content  *fyne.Container
}

// NewToolbar returns a toolbar showing the default buttons.
func NewToolbar(title string, drawer Toggler) *Toolbar {
	t := &Toolbar{
		drawer:   drawer,
		leftBar:  widget.NewToolbar(),
		rightBar: widget.NewToolbar(),
		title:    widget.NewLabelWithStyle(title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
	}
	t.content = container.NewBorder(nil, nil, t.leftBar, t.rightBar, t.title)
	t.LoadDefaultButtons()
	return t
}

// LoadDefaultButtons shows the menu and overflow buttons, both toggling the drawer.
func (t *Toolbar) LoadDefaultButtons() {
	t.state = ToolbarDefault
	t.left = []ToolbarItem{{Icon: IconMenu, Action: t.toggleDrawer}}
	t.right = []ToolbarItem{{Icon: IconOverflow, Action: t.toggleDrawer}}
	t.render()
}

// LoadBackButton shows a single back arrow calling back.
func (t *Toolbar) LoadBackButton(back func()) {
	t.state = ToolbarBack
	t.left = []ToolbarItem{{Icon: IconBack, Action: back}}
	t.right = nil
	t.render()
}

func (t *Toolbar) State() ToolbarState {
	return t.state
}

func (t *Toolbar) LeftItems() []ToolbarItem {
	return append([]ToolbarItem(nil), t.left...)
}

func (t *Toolbar) RightItems() []ToolbarItem {
	return append([]ToolbarItem(nil), t.right...)
}

func (t *Toolbar) SetTitle(title string) {
	t.title.SetText(title)
}

func (t *Toolbar) Content() fyne.CanvasObject {
	return t.content
}

func (t *Toolbar) toggleDrawer() {
	if t.drawer != nil {
		t.drawer.Toggle()
	}
}

func (t *Toolbar) render() {
	t.leftBar.Items = toolbarActions(t.left)
	t.rightBar.Items = toolbarActions(t.right)
	t.leftBar.Refresh()
	t.rightBar.Refresh()
}

func toolbarActions(items []ToolbarItem) []widget.ToolbarItem {
	actions := make([]widget.ToolbarItem, 0, len(items))
	for _, item := range items {
		actions = append(actions, widget.NewToolbarAction(toolbarIcon(item.Icon), item.Action))
	}
	return actions
}

func toolbarIcon(id string) fyne.Resource {
	switch id {
	case IconMenu:
		return theme.MenuIcon()
	case IconOverflow:
		return theme.MoreVerticalIcon()
	case IconBack:
		return theme.NavigateBackIcon()
	default:
		return theme.QuestionIcon()
	}
}
