package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubScreenEnterLeaveRestoresDefault(t *testing.T) {
	nav := newTestNavigation(t)
	require.NoError(t, nav.Manager.Add(NewRollScreen()))
	about := NewAboutScreen(nav)

	before := snapshot(nav.Toolbar)

	about.OnEnter()
	assert.Equal(t, ToolbarBack, nav.Toolbar.State())
	assert.Equal(t, []string{IconBack}, itemIcons(nav.Toolbar.LeftItems()))

	about.OnLeave()
	assert.Equal(t, before, snapshot(nav.Toolbar))
}

func TestSubScreenBackButtonReturnsHome(t *testing.T) {
	nav := newTestNavigation(t)
	require.NoError(t, nav.Manager.Add(NewRollScreen()))
	require.NoError(t, nav.Manager.Add(NewRollResultsScreen(nav)))

	require.NoError(t, nav.Manager.SetCurrent(RollResultsScreenName))
	assert.Equal(t, ToolbarBack, nav.Toolbar.State())

	nav.Toolbar.LeftItems()[0].Action()

	assert.Equal(t, HomeScreenName, nav.Manager.Current())
	assert.Equal(t, TransitionRight, nav.Manager.Direction())
	assert.Equal(t, ToolbarDefault, nav.Toolbar.State())
}

func TestSubScreenToSubScreenKeepsBackButton(t *testing.T) {
	nav := newTestNavigation(t)
	require.NoError(t, nav.Manager.Add(NewRollScreen()))
	require.NoError(t, nav.Manager.Add(NewAboutScreen(nav)))
	require.NoError(t, nav.Manager.Add(NewWalletConfigScreen(nav)))

	require.NoError(t, nav.Manager.SetCurrent(AboutScreenName))
	require.NoError(t, nav.Manager.SetCurrent(WalletConfigScreenName))

	assert.Equal(t, ToolbarBack, nav.Toolbar.State())
	assert.Empty(t, nav.Toolbar.RightItems())
}
