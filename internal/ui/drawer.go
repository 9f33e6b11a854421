package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// DrawerEntry links a drawer button to a screen.
type DrawerEntry struct {
	Screen string
	Label  string
}

// NavigationDrawer lists the screens the user can jump to. It starts hidden.
type NavigationDrawer struct {
	widget.BaseWidget
	entries  []DrawerEntry
	OnSelect func(screen string)
}

func NewNavigationDrawer(entries ...DrawerEntry) *NavigationDrawer {
	d := &NavigationDrawer{entries: entries}
	d.ExtendBaseWidget(d)
	d.Hide()
	return d
}

// Toggle opens a closed drawer and closes an open one.
func (d *NavigationDrawer) Toggle() {
	if d.Visible() {
		d.Hide()
	} else {
		d.Show()
	}
}

// Select acts as if the entry for screen was tapped.
func (d *NavigationDrawer) Select(screen string) {
	if d.OnSelect != nil {
		d.OnSelect(screen)
	}
}

func (d *NavigationDrawer) Entries() []DrawerEntry {
	return append([]DrawerEntry(nil), d.entries...)
}

func (d *NavigationDrawer) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewVBox()
	for _, entry := range d.entries {
		content.Add(widget.NewButton(entry.Label, func() {
			d.Select(entry.Screen)
		}))
	}
	return widget.NewSimpleRenderer(content)
}
