package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// readOnlyEntry is a multi-line Entry that can be selected and copied from
// but never edited by the user.
type readOnlyEntry struct {
	widget.Entry
}

func newReadOnlyEntry() *readOnlyEntry {
	e := &readOnlyEntry{}
	e.MultiLine = true
	e.Wrapping = fyne.TextWrapOff
	e.ExtendBaseWidget(e)
	return e
}

// SetLines replaces the contents with one line per item.
func (e *readOnlyEntry) SetLines(lines []string) {
	if len(lines) == 0 {
		e.SetText("")
		return
	}
	e.SetText(strings.Join(lines, "\n") + "\n")
}

// TypedRune blocks all character input.
func (e *readOnlyEntry) TypedRune(_ rune) {}

// TypedKey lets navigation through and drops keys that would edit.
func (e *readOnlyEntry) TypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyBackspace, fyne.KeyDelete, fyne.KeyReturn, fyne.KeyEnter, fyne.KeyTab:
		return
	}
	e.Entry.TypedKey(ev)
}

// TypedShortcut allows copy and select-all only.
func (e *readOnlyEntry) TypedShortcut(s fyne.Shortcut) {
	switch s.(type) {
	case *fyne.ShortcutCopy, *fyne.ShortcutSelectAll, *desktop.CustomShortcut:
		e.Entry.TypedShortcut(s)
	}
}
