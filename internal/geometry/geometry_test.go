package geometry

import (
	"errors"
	"math"
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"widgetkit/internal/apperr"
)

func TestCenterOf(t *testing.T) {
	got := CenterOf(fyne.NewSize(400, 300))
	if got != fyne.NewPos(200, 150) {
		t.Errorf("CenterOf() = %v, want (200, 150)", got)
	}
}

// The placed object's centre must coincide with the container's centre.
func TestCenterButtonIn(t *testing.T) {
	tests := []struct {
		container fyne.Size
		button    fyne.Size
	}{
		{fyne.NewSize(400, 300), fyne.NewSize(80, 30)},
		{fyne.NewSize(575, 100), fyne.NewSize(250, 40)},
		{fyne.NewSize(1, 1), fyne.NewSize(1, 1)},
		{fyne.NewSize(100, 50), fyne.NewSize(300, 90)},
		{fyne.NewSize(33, 17), fyne.NewSize(7, 3)},
	}

	for _, tt := range tests {
		pos := CenterButtonIn(tt.container, tt.button)
		btnCenter := fyne.NewPos(pos.X+tt.button.Width/2, pos.Y+tt.button.Height/2)
		if btnCenter != CenterOf(tt.container) {
			t.Errorf("CenterButtonIn(%v, %v): button centre %v, want %v",
				tt.container, tt.button, btnCenter, CenterOf(tt.container))
		}
	}
}

func TestCenterButtonInKnownValue(t *testing.T) {
	got := CenterButtonIn(fyne.NewSize(400, 300), fyne.NewSize(80, 30))
	if got != fyne.NewPos(160, 135) {
		t.Errorf("CenterButtonIn() = %v, want (160, 135)", got)
	}
}

func TestSizeToFitLabelAddsPadding(t *testing.T) {
	measure := func(text string, size float32, _ fyne.TextStyle) fyne.Size {
		return fyne.NewSize(float32(len(text))*size/2, size)
	}

	got, err := SizeToFitLabelWith(measure, Label{Text: "CLICK ME", TextSize: 10}, 5)
	if err != nil {
		t.Fatalf("SizeToFitLabelWith() error = %v", err)
	}
	if want := fyne.NewSize(50, 20); got != want {
		t.Errorf("SizeToFitLabelWith() = %v, want %v", got, want)
	}
}

func TestSizeToFitLabelRejectsBadInput(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	tests := []struct {
		name     string
		textSize float32
		padding  float32
	}{
		{"negative padding", 14, -1},
		{"NaN padding", 14, nan},
		{"infinite padding", 14, inf},
		{"zero text size", 0, 2},
		{"NaN text size", nan, 2},
		{"infinite text size", inf, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SizeToFitLabel(Label{Text: "x", TextSize: tt.textSize}, tt.padding)
			if !errors.Is(err, apperr.ErrInvalidInput) {
				t.Errorf("SizeToFitLabel() error = %v, want InvalidInput", err)
			}
		})
	}
}

// A longer label made by appending characters never measures narrower.
func TestSizeToFitLabelMonotonic(t *testing.T) {
	test.NewApp()

	styles := []fyne.TextStyle{{}, {Bold: true}, {Monospace: true}}
	base := "flamingo tiger lion"

	for _, style := range styles {
		prev := float32(-1)
		for i := 0; i <= len(base); i++ {
			label := Label{Text: base[:i], TextSize: 14, Style: style}
			size, err := SizeToFitLabel(label, 4)
			if err != nil {
				t.Fatalf("SizeToFitLabel(%q) error = %v", label.Text, err)
			}
			if size.Width < prev {
				t.Fatalf("style %+v: width of %q = %v, shorter prefix had %v",
					style, label.Text, size.Width, prev)
			}
			prev = size.Width
		}
	}

	short, _ := SizeToFitLabel(Label{Text: "OK", TextSize: 14}, 4)
	long, _ := SizeToFitLabel(Label{Text: strings.Repeat("OK", 10), TextSize: 14}, 4)
	if long.Width <= short.Width {
		t.Errorf("long label width %v not greater than short %v", long.Width, short.Width)
	}
}
