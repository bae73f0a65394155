package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"widgetkit/internal/selection"
)

// CheckboxMenu shows one check box per label and a Submit button. Submitting
// records the checked labels, in the order given, exactly once.
type CheckboxMenu struct {
	checks []checkToggle
	submit *widget.Button
	result selection.Slot[[]string]
	onDone func([]string)

	container *fyne.Container
}

// NewCheckboxMenu builds the menu. onDone, if set, runs after a successful submit.
func NewCheckboxMenu(labels []string, onDone func([]string)) *CheckboxMenu {
	m := &CheckboxMenu{onDone: onDone}

	list := container.NewVBox()
	for _, label := range labels {
		c := widget.NewCheck(label, nil)
		m.checks = append(m.checks, checkToggle{c})
		list.Add(c)
	}

	m.submit = widget.NewButton("Submit", m.onSubmit)
	m.submit.Importance = widget.HighImportance

	m.container = container.NewBorder(nil, container.NewCenter(m.submit), nil, nil, container.NewVScroll(list))
	return m
}

// Container returns the menu's content.
func (m *CheckboxMenu) Container() *fyne.Container {
	return m.container
}

// Result returns the submitted labels. ok is false until Submit was pressed.
func (m *CheckboxMenu) Result() (labels []string, ok bool) {
	return m.result.Get()
}

// Selection returns the submitted labels, or an empty slice if the menu was
// never submitted.
func (m *CheckboxMenu) Selection() []string {
	if labels, ok := m.result.Get(); ok {
		return labels
	}
	return []string{}
}

func (m *CheckboxMenu) onSubmit() {
	if !m.result.Set(selection.Checked(m.checks)) {
		return
	}
	m.submit.Disable()
	if m.onDone != nil {
		m.onDone(m.Selection())
	}
}

// RunCheckboxMenu shows the menu as the application's master window and
// blocks in the event loop until it closes. Closing without submitting
// returns an empty slice.
func RunCheckboxMenu(a fyne.App, title string, labels []string) []string {
	win := newMenuWindow(a, title)
	m := NewCheckboxMenu(labels, func([]string) { win.Close() })
	win.SetContent(m.Container())
	win.SetMaster()
	win.ShowAndRun()
	return m.Selection()
}

// ShowCheckboxMenu opens the menu in a new window without blocking.
// onResult runs once, when the window closes.
func ShowCheckboxMenu(a fyne.App, title string, labels []string, onResult func([]string)) fyne.Window {
	win := newMenuWindow(a, title)
	m := NewCheckboxMenu(labels, func([]string) { win.Close() })
	win.SetContent(m.Container())
	win.SetOnClosed(func() { onResult(m.Selection()) })
	win.Show()
	return win
}

func newMenuWindow(a fyne.App, title string) fyne.Window {
	win := a.NewWindow(title)
	win.Resize(NewMenuWindowSize())
	return win
}
