package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type RollResultsScreen struct {
	SubScreen
	content fyne.CanvasObject
}

func NewRollResultsScreen(nav *Navigation) *RollResultsScreen {
	return &RollResultsScreen{
		SubScreen: NewSubScreen(nav),
		content: container.NewVBox(
			widget.NewLabel("Roll Results"),
			widget.NewLabel("No rolls yet"),
		),
	}
}

func (s *RollResultsScreen) Name() string {
	return RollResultsScreenName
}

func (s *RollResultsScreen) Content() fyne.CanvasObject {
	return s.content
}
