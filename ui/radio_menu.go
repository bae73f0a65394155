package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"widgetkit/internal/selection"
)

// RadioMenu shows one light button per label, at most one lit at a time.
// Submitting records the lit label exactly once.
type RadioMenu struct {
	lights []*lightButton
	submit *widget.Button
	result selection.Slot[string]
	onDone func(string)

	container *fyne.Container
}

// NewRadioMenu builds the menu. onDone, if set, runs after a successful submit.
func NewRadioMenu(labels []string, onDone func(string)) *RadioMenu {
	m := &RadioMenu{onDone: onDone}

	list := container.NewVBox()
	for i, label := range labels {
		i := i
		b := newLightButton(label, func() { m.light(i) })
		m.lights = append(m.lights, b)
		list.Add(b.Button)
	}

	m.submit = widget.NewButton("Submit", m.onSubmit)

	scroll := container.NewVScroll(list)
	scroll.SetMinSize(fyne.NewSize(200, 200))
	m.container = container.NewBorder(nil, nil, nil, container.NewCenter(m.submit), scroll)
	return m
}

// Container returns the menu's content.
func (m *RadioMenu) Container() *fyne.Container {
	return m.container
}

// Result returns the submitted label. ok is false until Submit was pressed
// with a light on.
func (m *RadioMenu) Result() (label string, ok bool) {
	return m.result.Get()
}

// light turns on the i-th button and every other one off.
func (m *RadioMenu) light(i int) {
	for j, b := range m.lights {
		b.setActive(j == i)
	}
}

func (m *RadioMenu) onSubmit() {
	label, ok := selection.LastActive(m.lights)
	if ok {
		m.result.Set(label)
	}
	m.submit.Disable()
	if m.onDone != nil {
		m.onDone(label)
	}
}

// RunRadioMenu shows the menu as the application's master window and blocks
// until it closes. Closing without a lit choice returns "".
func RunRadioMenu(a fyne.App, title string, labels []string) string {
	win := newMenuWindow(a, title)
	m := NewRadioMenu(labels, func(string) { win.Close() })
	win.SetContent(m.Container())
	win.SetMaster()
	win.ShowAndRun()
	label, _ := m.Result()
	return label
}

// ShowRadioMenu opens the menu in a new window without blocking.
// onResult runs once, when the window closes.
func ShowRadioMenu(a fyne.App, title string, labels []string, onResult func(string)) fyne.Window {
	win := newMenuWindow(a, title)
	m := NewRadioMenu(labels, func(string) { win.Close() })
	win.SetContent(m.Container())
	win.SetOnClosed(func() {
		label, _ := m.Result()
		onResult(label)
	})
	win.Show()
	return win
}
