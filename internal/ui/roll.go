package ui

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"etheroll-go/internal/etheroll"
)

// RollScreen is the home screen where the bet is entered.
type RollScreen struct {
	betSizeEntry *widget.Entry
	chancesEntry *widget.Entry
	profitLabel  *widget.Label
	rollButton   *widget.Button
	content      fyne.CanvasObject
}

func NewRollScreen() *RollScreen {
	s := &RollScreen{
		betSizeEntry: widget.NewEntry(),
		chancesEntry: widget.NewEntry(),
		profitLabel:  widget.NewLabel(""),
		rollButton:   widget.NewButton("Roll", nil),
	}
	s.betSizeEntry.SetPlaceHolder("Bet size")
	s.chancesEntry.SetPlaceHolder(fmt.Sprintf("Chances of winning (%d-%d)", etheroll.MinChances, etheroll.MaxChances))
	s.betSizeEntry.OnChanged = func(string) { s.updateProfit() }
	s.chancesEntry.OnChanged = func(string) { s.updateProfit() }
	s.rollButton.Importance = widget.HighImportance
	s.updateProfit()

	s.content = container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Bet size", s.betSizeEntry),
			widget.NewFormItem("Chances", s.chancesEntry),
		),
		s.profitLabel,
		s.rollButton,
	)
	return s
}

func (s *RollScreen) Name() string {
	return RollScreenName
}

func (s *RollScreen) Content() fyne.CanvasObject {
	return s.content
}

func (s *RollScreen) OnEnter() {}

func (s *RollScreen) OnLeave() {}

func (s *RollScreen) RollButton() *widget.Button {
	return s.rollButton
}

// RollInput returns bet size and chance of winning user input values.
func (s *RollScreen) RollInput() (etheroll.RollInput, error) {
	betSize, err := strconv.Atoi(strings.TrimSpace(s.betSizeEntry.Text))
	if err != nil {
		return etheroll.RollInput{}, fmt.Errorf("bet size: %w", err)
	}
	chances, err := strconv.Atoi(strings.TrimSpace(s.chancesEntry.Text))
	if err != nil {
		return etheroll.RollInput{}, fmt.Errorf("chances of winning: %w", err)
	}
	return etheroll.RollInput{BetSize: betSize, Chances: chances}, nil
}

// ProfitText is the profit preview shown under the inputs.
func (s *RollScreen) ProfitText() string {
	return s.profitLabel.Text
}

func (s *RollScreen) updateProfit() {
	input, err := s.RollInput()
	if err != nil {
		s.profitLabel.SetText("Profit: -")
		return
	}
	profit, err := input.Profit()
	if err != nil {
		s.profitLabel.SetText("Profit: -")
		return
	}
	s.profitLabel.SetText("Profit: " + profit.String())
}
