package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
)

// NamedColor pairs a colour with the name printed on its swatch.
type NamedColor struct {
	Name  string
	Color color.Color
}

func gray(v uint8) color.Color { return color.NRGBA{R: v, G: v, B: v, A: 255} }

// Palette is the classic twenty-colour set shown by the swatch demo.
var Palette = []NamedColor{
	{"White", color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
	{"Black", color.NRGBA{A: 255}},
	{"Red", color.NRGBA{R: 255, A: 255}},
	{"Green", color.NRGBA{G: 255, A: 255}},
	{"Blue", color.NRGBA{B: 255, A: 255}},
	{"Yellow", color.NRGBA{R: 255, G: 255, A: 255}},
	{"Cyan", color.NRGBA{G: 255, B: 255, A: 255}},
	{"Magenta", color.NRGBA{R: 255, B: 255, A: 255}},
	{"DarkRed", color.NRGBA{R: 128, A: 255}},
	{"DarkGreen", color.NRGBA{G: 128, A: 255}},
	{"DarkBlue", color.NRGBA{B: 128, A: 255}},
	{"DarkYellow", color.NRGBA{R: 128, G: 128, A: 255}},
	{"DarkCyan", color.NRGBA{G: 128, B: 128, A: 255}},
	{"DarkMagenta", color.NRGBA{R: 128, B: 128, A: 255}},
	{"Dark1", gray(142)},
	{"Dark2", gray(113)},
	{"Dark3", gray(85)},
	{"Light1", gray(212)},
	{"Light2", gray(226)},
	{"Light3", gray(241)},
}

// ColorSwatches is a scrolling column of labelled colour rectangles.
type ColorSwatches struct {
	swatches []*fyne.Container
	scroll   *container.Scroll
}

// NewColorSwatches builds one swatch per colour, in order.
func NewColorSwatches(colors []NamedColor) *ColorSwatches {
	cs := &ColorSwatches{}

	column := container.NewVBox()
	for _, nc := range colors {
		sw := newSwatch(nc)
		cs.swatches = append(cs.swatches, sw)
		column.Add(sw)
	}

	cs.scroll = container.NewVScroll(container.NewPadded(column))
	return cs
}

// Container returns the scrolling view.
func (cs *ColorSwatches) Container() *container.Scroll {
	return cs.scroll
}

// Len returns the number of swatches.
func (cs *ColorSwatches) Len() int {
	return len(cs.swatches)
}

func newSwatch(nc NamedColor) *fyne.Container {
	rect := canvas.NewRectangle(nc.Color)
	rect.CornerRadius = theme.InputRadiusSize()
	rect.StrokeColor = color.NRGBA{A: 96}
	rect.StrokeWidth = 2
	rect.SetMinSize(fyne.NewSize(SwatchWidth, SwatchHeight))

	label := canvas.NewText(nc.Name, contrastText(nc.Color))
	label.Alignment = fyne.TextAlignCenter

	return container.NewHBox(container.NewStack(rect, container.NewCenter(label)))
}

// contrastText picks black or white, whichever reads better on c.
func contrastText(c color.Color) color.Color {
	r, g, b, _ := c.RGBA()
	// Rec. 601 luma on 16-bit channels.
	if (299*r+587*g+114*b)/1000 > 0x8000 {
		return color.Black
	}
	return color.White
}

// ShowColorSwatches opens the swatch demo in a new window.
func ShowColorSwatches(a fyne.App) fyne.Window {
	win := a.NewWindow("Background Colors")
	win.SetContent(NewColorSwatches(Palette).Container())
	win.Resize(fyne.NewSize(SwatchWidth+100, 700))
	win.Show()
	return win
}
