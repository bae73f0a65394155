package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"widgetkit/internal/selection"
)

// ShiftMenu lists check boxes on the left and copies the checked labels into
// a read-only pane on the right each time the shift button is pressed. The
// last shifted set becomes the result when Finish is called.
type ShiftMenu struct {
	checks  []checkToggle
	shift   *widget.Button
	output  *readOnlyEntry
	pending []string
	result  selection.Slot[[]string]

	container *fyne.Container
}

// NewShiftMenu builds the menu for labels.
func NewShiftMenu(labels []string) *ShiftMenu {
	m := &ShiftMenu{pending: []string{}}

	list := container.NewVBox()
	for _, label := range labels {
		c := widget.NewCheck(label, nil)
		m.checks = append(m.checks, checkToggle{c})
		list.Add(c)
	}
	scroll := container.NewVScroll(list)
	scroll.SetMinSize(fyne.NewSize(ShiftListWidth, 0))

	m.shift = widget.NewButtonWithIcon("", theme.NavigateNextIcon(), m.onShift)
	m.output = newReadOnlyEntry()

	left := container.NewBorder(nil, nil, nil, container.NewCenter(m.shift), scroll)
	m.container = container.NewBorder(nil, nil, left, nil, m.output)
	return m
}

// Container returns the menu's content.
func (m *ShiftMenu) Container() *fyne.Container {
	return m.container
}

// Output returns the text currently shown in the right-hand pane.
func (m *ShiftMenu) Output() string {
	return m.output.Text
}

// Finish freezes the last shifted set as the result. Later calls are no-ops.
func (m *ShiftMenu) Finish() {
	m.result.Set(m.pending)
}

// Selection returns the finished result, or an empty slice before Finish.
func (m *ShiftMenu) Selection() []string {
	if labels, ok := m.result.Get(); ok {
		return labels
	}
	return []string{}
}

// onShift replaces the pending set with what is checked now. Earlier
// presses do not accumulate, so a label shifted twice appears once.
func (m *ShiftMenu) onShift() {
	m.pending = selection.Checked(m.checks)
	m.output.SetLines(m.pending)
}

// RunShiftMenu shows the menu as the application's master window and blocks
// until the user closes it.
func RunShiftMenu(a fyne.App, title string, labels []string) []string {
	win := newMenuWindow(a, title)
	m := NewShiftMenu(labels)
	win.SetContent(m.Container())
	win.SetOnClosed(m.Finish)
	win.SetMaster()
	win.ShowAndRun()
	m.Finish()
	return m.Selection()
}

// ShowShiftMenu opens the menu in a new window without blocking.
// onResult runs once, when the window closes.
func ShowShiftMenu(a fyne.App, title string, labels []string, onResult func([]string)) fyne.Window {
	win := newMenuWindow(a, title)
	m := NewShiftMenu(labels)
	win.SetContent(m.Container())
	win.SetOnClosed(func() {
		m.Finish()
		onResult(m.Selection())
	})
	win.Show()
	return win
}
