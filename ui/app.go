// Package ui holds the fyne widgets and windows for every demo.
package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"widgetkit/internal/config"
	"widgetkit/internal/format"
)

// Gallery is the launcher window listing every demo.
type Gallery struct {
	app    fyne.App
	win    fyne.Window
	cfg    config.Config
	log    zerolog.Logger
	status *widget.Label
}

// BuildGalleryWindow creates the launcher window. Each demo opens in its own
// window and reports its result in the status line and the log.
func BuildGalleryWindow(a fyne.App, cfg config.Config, log zerolog.Logger) fyne.Window {
	g := &Gallery{
		app:    a,
		win:    a.NewWindow("Widget Gallery"),
		cfg:    cfg,
		log:    log,
		status: widget.NewLabel("Pick a demo."),
	}
	g.status.Wrapping = fyne.TextWrapWord

	hover := g.hoverButton()

	demos := container.NewVBox(
		widget.NewButton("Checkbox menu", g.openCheckbox),
		widget.NewButton("Radio menu", g.openRadio),
		widget.NewButton("Shift list", g.openShift),
		widget.NewButton("Two-button popup", g.openPopup),
		widget.NewButton("Text editor", g.openEditor),
		widget.NewButton("Color swatches", func() { ShowColorSwatches(a) }),
		widget.NewButton("Framed label", func() { ShowFramedLabel(a, cfg.TextSize, cfg.Padding) }),
		widget.NewButton("File name prompt", g.openPrompt),
		widget.NewSeparator(),
		hover,
	)

	g.win.SetContent(container.NewBorder(nil, g.status, nil, nil, container.NewVScroll(demos)))
	g.win.Resize(fyne.NewSize(GalleryWidth, GalleryHeight))
	g.win.SetMaster()
	return g.win
}

func (g *Gallery) report(demo, msg string) {
	g.status.SetText(demo + ": " + msg)
}

func (g *Gallery) openCheckbox() {
	ShowCheckboxMenu(g.app, "Checkbox menu", g.cfg.Labels, func(labels []string) {
		g.log.Info().Strs("choice", labels).Msg("checkbox menu closed")
		g.report("checkbox", format.List(labels))
	})
}

func (g *Gallery) openRadio() {
	ShowRadioMenu(g.app, "Radio menu", g.cfg.Labels, func(label string) {
		g.log.Info().Str("choice", label).Msg("radio menu closed")
		g.report("radio", label)
	})
}

func (g *Gallery) openShift() {
	ShowShiftMenu(g.app, "Shift list", g.cfg.Labels, func(labels []string) {
		g.log.Info().Strs("choice", labels).Msg("shift list closed")
		g.report("shift", format.List(labels))
	})
}

func (g *Gallery) openPopup() {
	ShowTwoButtonPopup(g.win,
		Choice{Label: "Button 1", Action: func() {
			g.log.Info().Msg("button 1 was clicked")
			g.report("popup", "button 1")
		}},
		Choice{Label: "Button 2", Action: func() {
			g.log.Info().Msg("button 2 was clicked")
			g.report("popup", "button 2")
		}},
	)
}

func (g *Gallery) openEditor() {
	ShowSimpleEditor(g.app, "Simple editor", "Edit me, then pick File > Finished.", func(text string) {
		g.log.Info().Int("runes", len([]rune(text))).Msg("editor finished")
		g.report("editor", text)
	})
}

func (g *Gallery) openPrompt() {
	ShowFilenamePrompt(g.win, func(name string) {
		g.log.Info().Str("file", name).Msg("file name entered")
		g.report("prompt", name)
	})
}

func (g *Gallery) hoverButton() *HoverButton {
	b := NewHoverButton("CLICK ME", func() {
		g.log.Info().Msg("the button was clicked")
	}, color.NRGBA{R: 30, G: 90, B: 200, A: 255}, color.NRGBA{R: 70, G: 140, B: 240, A: 255}, color.White)
	b.OnEnter = func() { g.log.Debug().Msg("entered hover over button") }
	b.OnLeave = func() { g.log.Debug().Msg("left hover over button") }
	return b
}
