package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewToolbarLoadsDefaultButtons(t *testing.T) {
	test.NewApp()
	tb := NewToolbar("EtherollApp", &countingToggler{})

	assert.Equal(t, ToolbarDefault, tb.State())
	assert.Equal(t, []string{IconMenu}, itemIcons(tb.LeftItems()))
	assert.Equal(t, []string{IconOverflow}, itemIcons(tb.RightItems()))
	assert.Len(t, tb.leftBar.Items, 1)
	assert.Len(t, tb.rightBar.Items, 1)
}

func TestToolbarLoadBackButton(t *testing.T) {
	test.NewApp()
	tb := NewToolbar("EtherollApp", &countingToggler{})

	called := 0
	tb.LoadBackButton(func() { called++ })

	assert.Equal(t, ToolbarBack, tb.State())
	assert.Empty(t, tb.RightItems())
	assert.Empty(t, tb.rightBar.Items)

	left := tb.LeftItems()
	require.Len(t, left, 1)
	assert.Equal(t, IconBack, left[0].Icon)
	left[0].Action()
	assert.Equal(t, 1, called)
}

func TestToolbarDefaultButtonsToggleDrawer(t *testing.T) {
	test.NewApp()
	drawer := &countingToggler{}
	tb := NewToolbar("EtherollApp", drawer)
	tb.LoadBackButton(func() {})
	tb.LoadDefaultButtons()

	left, right := tb.LeftItems(), tb.RightItems()
	require.Len(t, left, 1)
	require.Len(t, right, 1)

	left[0].Action()
	assert.Equal(t, 1, drawer.toggles)
	right[0].Action()
	assert.Equal(t, 2, drawer.toggles)
}

func TestToolbarLastWriterWins(t *testing.T) {
	test.NewApp()
	tb := NewToolbar("EtherollApp", &countingToggler{})

	first, second := 0, 0
	tb.LoadBackButton(func() { first++ })
	tb.LoadBackButton(func() { second++ })

	left := tb.LeftItems()
	require.Len(t, left, 1)
	left[0].Action()
	assert.Zero(t, first)
	assert.Equal(t, 1, second)
}

func TestToolbarItemsAreCopies(t *testing.T) {
	test.NewApp()
	tb := NewToolbar("EtherollApp", &countingToggler{})

	left := tb.LeftItems()
	left[0].Icon = IconBack
	assert.Equal(t, IconMenu, tb.LeftItems()[0].Icon)
}

func TestToolbarStateString(t *testing.T) {
	assert.Equal(t, "default", ToolbarDefault.String())
	assert.Equal(t, "back", ToolbarBack.String())
}
