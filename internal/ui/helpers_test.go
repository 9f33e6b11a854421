package ui

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/require"

	"etheroll-go/internal/etheroll"
	"etheroll-go/internal/storage"
)

type rollCall struct {
	input  etheroll.RollInput
	config etheroll.WalletConfig
}

type countingToggler struct {
	toggles int
}

func (c *countingToggler) Toggle() { c.toggles++ }

func newTestNavigation(t *testing.T) *Navigation {
	t.Helper()
	test.NewApp()
	return &Navigation{
		Window:  test.NewWindow(widget.NewLabel("")),
		Toolbar: NewToolbar(appTitle, &countingToggler{}),
		Manager: NewScreenManager(),
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func newTestController(t *testing.T) (*Controller, *storage.NetworkPreference, *[]rollCall) {
	t.Helper()
	a := test.NewApp()
	w := test.NewWindow(widget.NewLabel(""))
	t.Cleanup(w.Close)

	pref := storage.NewNetworkPreference(storage.NewPreferencesStore(a))
	calls := &[]rollCall{}
	handler := func(input etheroll.RollInput, config etheroll.WalletConfig) error {
		*calls = append(*calls, rollCall{input: input, config: config})
		return nil
	}

	c, err := NewController(w, pref, slog.New(slog.NewTextHandler(io.Discard, nil)), handler)
	require.NoError(t, err)
	w.SetContent(c.Content())
	return c, pref, calls
}

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func itemIcons(items []ToolbarItem) []string {
	icons := make([]string, 0, len(items))
	for _, item := range items {
		icons = append(icons, item.Icon)
	}
	return icons
}

// toolbarSnapshot captures everything observable about the toolbar buttons.
type toolbarSnapshot struct {
	state ToolbarState
	left  []string
	right []string
	bars  [2]int
}

func snapshot(tb *Toolbar) toolbarSnapshot {
	return toolbarSnapshot{
		state: tb.State(),
		left:  itemIcons(tb.LeftItems()),
		right: itemIcons(tb.RightItems()),
		bars:  [2]int{len(tb.leftBar.Items), len(tb.rightBar.Items)},
	}
}
