package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"widgetkit/internal/geometry"
)

// Choice is one button of a two-button popup.
type Choice struct {
	Label  string
	Action func()
}

// TwoButtonPopup is a modal popup with two buttons. Clicking either runs
// its action on the UI goroutine and then dismisses the popup.
type TwoButtonPopup struct {
	popup  *widget.PopUp
	first  *widget.Button
	second *widget.Button
}

// ShowTwoButtonPopup shows the popup over parent. A modal popup is laid out
// with its content centred on parent's canvas.
func ShowTwoButtonPopup(parent fyne.Window, first, second Choice) *TwoButtonPopup {
	p := &TwoButtonPopup{}
	p.first = widget.NewButton(first.Label, p.choose(first.Action))
	p.second = widget.NewButton(second.Label, p.choose(second.Action))

	btnSize := popupButtonSize(first.Label, second.Label)
	buttons := container.NewGridWrap(btnSize, p.first, p.second)

	p.popup = widget.NewModalPopUp(buttons, parent.Canvas())

	pad := theme.Padding()
	size := fyne.NewSize(
		max(PopupWidth, 2*btnSize.Width+4*pad),
		max(PopupHeight, btnSize.Height+4*pad),
	)
	p.popup.Resize(size)
	p.popup.Show()
	return p
}

// Hide dismisses the popup without running either action.
func (p *TwoButtonPopup) Hide() {
	p.popup.Hide()
}

// Visible reports whether the popup is still showing.
func (p *TwoButtonPopup) Visible() bool {
	return p.popup.Visible()
}

// Size returns the laid-out size of the popup's content.
func (p *TwoButtonPopup) Size() fyne.Size {
	return p.popup.Content.Size()
}

// Position returns where the popup's content sits on the parent canvas.
func (p *TwoButtonPopup) Position() fyne.Position {
	return p.popup.Content.Position()
}

func (p *TwoButtonPopup) choose(action func()) func() {
	return func() {
		if action != nil {
			action()
		}
		p.popup.Hide()
	}
}

// popupButtonSize fits the longer of the two labels, never smaller than the
// default popup button.
func popupButtonSize(labels ...string) fyne.Size {
	size := NewPopupButtonMinSize()
	for _, l := range labels {
		fit, err := geometry.SizeToFitLabel(geometry.Label{Text: l, TextSize: theme.TextSize()}, theme.InnerPadding())
		if err != nil {
			continue
		}
		size = size.Max(fit)
	}
	return size
}
