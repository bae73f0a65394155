package ui

import "fyne.io/fyne/v2/widget"

// checkToggle exposes a check box as a selection.Toggle.
type checkToggle struct {
	*widget.Check
}

func (c checkToggle) Label() string { return c.Text }
func (c checkToggle) Active() bool  { return c.Checked }

// lightButton is a button that stays lit while active, like a radio light.
type lightButton struct {
	*widget.Button
	active bool
}

func newLightButton(label string, tapped func()) *lightButton {
	return &lightButton{Button: widget.NewButton(label, tapped)}
}

func (b *lightButton) Label() string { return b.Text }
func (b *lightButton) Active() bool  { return b.active }

func (b *lightButton) setActive(on bool) {
	b.active = on
	if on {
		b.Importance = widget.HighImportance
	} else {
		b.Importance = widget.MediumImportance
	}
	b.Refresh()
}
