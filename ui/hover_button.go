package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"widgetkit/internal/geometry"
)

// HoverButton is a coloured button that reports when the pointer enters or
// leaves it and lightens while hovered.
type HoverButton struct {
	widget.Button
	bgColor    color.Color
	hoverColor color.Color
	txtColor   color.Color
	hovered    bool

	OnEnter func()
	OnLeave func()
}

// NewHoverButton creates a button with custom colours.
func NewHoverButton(label string, tapped func(), bgColor, hoverColor, txtColor color.Color) *HoverButton {
	btn := &HoverButton{
		bgColor:    bgColor,
		hoverColor: hoverColor,
		txtColor:   txtColor,
	}
	btn.Text = label
	btn.OnTapped = tapped
	btn.ExtendBaseWidget(btn)
	return btn
}

// Hovered reports whether the pointer is over the button.
func (b *HoverButton) Hovered() bool {
	return b.hovered
}

// MouseIn is called when the pointer enters the button.
func (b *HoverButton) MouseIn(ev *desktop.MouseEvent) {
	b.Button.MouseIn(ev)
	b.hovered = true
	if b.OnEnter != nil {
		b.OnEnter()
	}
	b.Refresh()
}

// MouseOut is called when the pointer leaves the button.
func (b *HoverButton) MouseOut() {
	b.Button.MouseOut()
	b.hovered = false
	if b.OnLeave != nil {
		b.OnLeave()
	}
	b.Refresh()
}

// NewHoverDemo places b at its minimum size in the centre of an area of the
// given size.
func NewHoverDemo(b *HoverButton, area fyne.Size) *fyne.Container {
	size := b.MinSize()
	b.Resize(size)
	b.Move(geometry.CenterButtonIn(area, size))

	c := container.NewWithoutLayout(b)
	c.Resize(area)
	return c
}

// CreateRenderer returns a custom renderer.
func (b *HoverButton) CreateRenderer() fyne.WidgetRenderer {
	b.ExtendBaseWidget(b)

	bg := canvas.NewRectangle(b.bgColor)
	bg.CornerRadius = theme.InputRadiusSize()

	label := canvas.NewText(b.Text, b.txtColor)
	label.Alignment = fyne.TextAlignCenter
	label.TextStyle = fyne.TextStyle{Bold: true}

	return &hoverBtnRenderer{
		btn:     b,
		bg:      bg,
		label:   label,
		objects: []fyne.CanvasObject{bg, label},
	}
}

type hoverBtnRenderer struct {
	btn     *HoverButton
	bg      *canvas.Rectangle
	label   *canvas.Text
	objects []fyne.CanvasObject
}

func (r *hoverBtnRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	labelMin := r.label.MinSize()
	r.label.Move(fyne.NewPos(
		(size.Width-labelMin.Width)/2,
		(size.Height-labelMin.Height)/2,
	))
	r.label.Resize(labelMin)
}

func (r *hoverBtnRenderer) MinSize() fyne.Size {
	labelMin := r.label.MinSize()
	pad := theme.InnerPadding()
	return fyne.NewSize(labelMin.Width+pad*4, labelMin.Height+pad*2)
}

func (r *hoverBtnRenderer) Refresh() {
	r.label.Text = r.btn.Text

	switch {
	case r.btn.Disabled():
		r.bg.FillColor = color.NRGBA{R: 60, G: 60, B: 60, A: 255}
		r.label.Color = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	case r.btn.hovered:
		r.bg.FillColor = r.btn.hoverColor
		r.label.Color = r.btn.txtColor
	default:
		r.bg.FillColor = r.btn.bgColor
		r.label.Color = r.btn.txtColor
	}

	r.bg.Refresh()
	r.label.Refresh()
}

func (r *hoverBtnRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *hoverBtnRenderer) Destroy()                     {}
