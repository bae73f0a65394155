package cli

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"widgetkit/internal/config"
	"widgetkit/ui"
)

// Dialogs runs one demo to completion and returns its result. Every method
// blocks in the toolkit's event loop, so only one may run per process.
type Dialogs interface {
	Gallery()
	Checkbox(title string, labels []string) []string
	Radio(title string, labels []string) string
	Shift(title string, labels []string) []string
	Popup(first, second string) string
	Editor(title, text string) string
	Colors()
	Hover()
	Frame()
	Prompt() string
}

// fyneDialogs runs demos against a real fyne application.
type fyneDialogs struct {
	app fyne.App
	cfg config.Config
	log zerolog.Logger
}

// NewFyneDialogs returns the toolkit-backed Dialogs.
func NewFyneDialogs(a fyne.App, cfg config.Config, log zerolog.Logger) Dialogs {
	return &fyneDialogs{app: a, cfg: cfg, log: log}
}

func (d *fyneDialogs) Gallery() {
	ui.BuildGalleryWindow(d.app, d.cfg, d.log).ShowAndRun()
}

func (d *fyneDialogs) Checkbox(title string, labels []string) []string {
	return ui.RunCheckboxMenu(d.app, title, labels)
}

func (d *fyneDialogs) Radio(title string, labels []string) string {
	return ui.RunRadioMenu(d.app, title, labels)
}

func (d *fyneDialogs) Shift(title string, labels []string) []string {
	return ui.RunShiftMenu(d.app, title, labels)
}

func (d *fyneDialogs) Popup(first, second string) string {
	win := d.app.NewWindow("Two-button popup")
	win.SetContent(container.NewCenter(widget.NewLabel("Pick a button.")))
	win.Resize(ui.NewMenuWindowSize())
	win.SetMaster()
	win.Show()

	var clicked string
	choose := func(label string) func() {
		return func() {
			clicked = label
			d.log.Info().Str("button", label).Msg("popup button clicked")
			win.Close()
		}
	}
	ui.ShowTwoButtonPopup(win,
		ui.Choice{Label: first, Action: choose(first)},
		ui.Choice{Label: second, Action: choose(second)},
	)

	d.app.Run()
	return clicked
}

func (d *fyneDialogs) Editor(title, text string) string {
	return ui.RunSimpleEditor(d.app, title, text)
}

func (d *fyneDialogs) Colors() {
	win := ui.ShowColorSwatches(d.app)
	win.SetMaster()
	d.app.Run()
}

func (d *fyneDialogs) Hover() {
	btn := ui.NewHoverButton("CLICK ME", func() {
		d.log.Info().Msg("the button was clicked")
	}, color.NRGBA{R: 30, G: 90, B: 200, A: 255}, color.NRGBA{R: 70, G: 140, B: 240, A: 255}, color.White)
	btn.OnEnter = func() { d.log.Info().Msg("entered hover over button") }
	btn.OnLeave = func() { d.log.Info().Msg("left hover over button") }

	size := ui.NewMenuWindowSize()
	win := d.app.NewWindow("Hover")
	win.SetContent(ui.NewHoverDemo(btn, size))
	win.Resize(size)
	win.SetFixedSize(true)
	win.SetMaster()
	win.ShowAndRun()
}

func (d *fyneDialogs) Frame() {
	win := ui.ShowFramedLabel(d.app, d.cfg.TextSize, d.cfg.Padding)
	win.SetMaster()
	d.app.Run()
}

func (d *fyneDialogs) Prompt() string {
	win := d.app.NewWindow("File name")
	win.Resize(ui.NewMenuWindowSize())
	win.SetMaster()
	win.Show()

	var name string
	ui.ShowFilenamePrompt(win, func(n string) {
		name = n
		win.Close()
	})

	d.app.Run()
	return name
}
