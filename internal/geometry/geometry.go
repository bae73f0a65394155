// Package geometry centres objects and sizes controls to fit their labels.
package geometry

import (
	"math"

	"fyne.io/fyne/v2"

	"widgetkit/internal/apperr"
)

// MeasureFunc reports the size a string occupies when rendered.
type MeasureFunc func(text string, size float32, style fyne.TextStyle) fyne.Size

// CenterOf returns the centre of an area of the given size in its own
// coordinate space.
func CenterOf(size fyne.Size) fyne.Position {
	return fyne.NewPos(size.Width/2, size.Height/2)
}

// CenterButtonIn returns the top-left position that puts the centre of an
// object of size obj on the centre of container.
func CenterButtonIn(container, obj fyne.Size) fyne.Position {
	c := CenterOf(container)
	return fyne.NewPos(c.X-obj.Width/2, c.Y-obj.Height/2)
}

// Label describes text to be fitted inside a control.
type Label struct {
	Text     string
	TextSize float32
	Style    fyne.TextStyle
}

// SizeToFitLabel returns the size needed to render label with padding on
// every side, measured by the toolkit's text shaper.
func SizeToFitLabel(label Label, padding float32) (fyne.Size, error) {
	return SizeToFitLabelWith(fyne.MeasureText, label, padding)
}

// SizeToFitLabelWith is SizeToFitLabel with an explicit measuring function.
func SizeToFitLabelWith(measure MeasureFunc, label Label, padding float32) (fyne.Size, error) {
	if padding < 0 || !finite(padding) {
		return fyne.Size{}, apperr.Invalid("size to fit label", "padding must be a non-negative number, got %.1f", padding)
	}
	if label.TextSize <= 0 || !finite(label.TextSize) {
		return fyne.Size{}, apperr.Invalid("size to fit label", "text size must be positive, got %.1f", label.TextSize)
	}

	text := measure(label.Text, label.TextSize, label.Style)
	return fyne.NewSize(text.Width+2*padding, text.Height+2*padding), nil
}

func finite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}
