package ui

import (
	"fmt"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Version is the application version, overridden at build time with -ldflags.
var Version = "0.1.0"

const ProjectPage = "https://github.com/AndreMiras/EtherollApp"

type AboutScreen struct {
	SubScreen
	aboutText string
	content   fyne.CanvasObject
}

func NewAboutScreen(nav *Navigation) *AboutScreen {
	s := &AboutScreen{
		SubScreen: NewSubScreen(nav),
		aboutText: fmt.Sprintf(
			"EtherollApp version: %s\nProject source code and info available on GitHub at:\n%s",
			Version, ProjectPage),
	}

	label := widget.NewLabel(s.aboutText)
	label.Wrapping = fyne.TextWrapWord

	content := container.NewVBox(label)
	if link, err := url.Parse(ProjectPage); err == nil {
		content.Add(widget.NewHyperlink("Open on GitHub", link))
	}
	s.content = content
	return s
}

func (s *AboutScreen) Name() string {
	return AboutScreenName
}

func (s *AboutScreen) Content() fyne.CanvasObject {
	return s.content
}

func (s *AboutScreen) AboutText() string {
	return s.aboutText
}
