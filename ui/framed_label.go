package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"widgetkit/internal/geometry"
)

const (
	minTextSize = 6
	maxTextSize = 96
)

// FramedLabel shows text inside a coloured frame whose size follows the
// text. The text size is typed into a field; bad input is reported inline.
type FramedLabel struct {
	frame   *canvas.Rectangle
	text    *canvas.Text
	padding float32

	sizeEntry *widget.Entry
	status    *widget.Label
	container *fyne.Container
}

// NewFramedLabel creates the demo with the given label, text size and padding.
func NewFramedLabel(label string, textSize, padding float32) *FramedLabel {
	fl := &FramedLabel{padding: padding}

	fl.frame = canvas.NewRectangle(color.NRGBA{G: 255, B: 255, A: 255})
	fl.frame.StrokeColor = color.NRGBA{R: 40, G: 40, B: 40, A: 255}
	fl.frame.StrokeWidth = 3

	fl.text = canvas.NewText(label, color.Black)
	fl.text.Alignment = fyne.TextAlignCenter
	fl.text.TextStyle = fyne.TextStyle{Italic: true}

	fl.sizeEntry = widget.NewEntry()
	fl.sizeEntry.OnSubmitted = func(s string) { _ = fl.SetTextSize(s) }
	fl.status = widget.NewLabel("")

	apply := widget.NewButton("Apply", func() { _ = fl.SetTextSize(fl.sizeEntry.Text) })
	controls := container.NewBorder(nil, nil, widget.NewLabel("Text size"), apply, fl.sizeEntry)

	framed := container.NewCenter(container.NewStack(fl.frame, container.NewCenter(fl.text)))
	fl.container = container.NewBorder(controls, fl.status, nil, nil, framed)

	fl.applySize(textSize)
	return fl
}

// Container returns the demo content.
func (fl *FramedLabel) Container() *fyne.Container {
	return fl.container
}

// TextSize returns the current text size.
func (fl *FramedLabel) TextSize() float32 {
	return fl.text.TextSize
}

// FrameSize returns the current minimum size of the frame.
func (fl *FramedLabel) FrameSize() fyne.Size {
	return fl.frame.MinSize()
}

// SetTextSize parses s and resizes the text and frame. Invalid input leaves
// the label unchanged and is shown in the status line.
func (fl *FramedLabel) SetTextSize(s string) error {
	size, err := parseFloatInRange(s, minTextSize, maxTextSize, "text size")
	if err != nil {
		fl.status.SetText(err.Error())
		return err
	}
	fl.status.SetText("")
	fl.applySize(size)
	return nil
}

func (fl *FramedLabel) applySize(size float32) {
	fl.text.TextSize = size
	fit, err := geometry.SizeToFitLabel(geometry.Label{
		Text:     fl.text.Text,
		TextSize: size,
		Style:    fl.text.TextStyle,
	}, fl.padding)
	if err == nil {
		fl.frame.SetMinSize(fit)
	}
	fl.sizeEntry.SetText(formatSize(size))
	fl.text.Refresh()
	fl.frame.Refresh()
}

// ShowFramedLabel opens the framed label demo in a new window.
func ShowFramedLabel(a fyne.App, textSize, padding float32) fyne.Window {
	win := a.NewWindow("Framed Label")
	win.SetContent(NewFramedLabel("Frame Label", textSize, padding).Container())
	win.Resize(NewMenuWindowSize())
	win.Show()
	return win
}
