package ui

import "fyne.io/fyne/v2"

// Menu windows
const (
	MenuWindowWidth  = 400
	MenuWindowHeight = 300
	ShiftListWidth   = 150
)

// Two-button popup
const (
	PopupWidth        = 575
	PopupHeight       = 100
	PopupButtonWidth  = 250
	PopupButtonHeight = 40
)

// Editor and demos
const (
	EditorWidth   = 800
	EditorHeight  = 300
	SwatchWidth   = 200
	SwatchHeight  = 75
	GalleryWidth  = 420
	GalleryHeight = 520
)

// NewMenuWindowSize returns the default size of a selection menu window
func NewMenuWindowSize() fyne.Size {
	return fyne.NewSize(MenuWindowWidth, MenuWindowHeight)
}

// NewPopupButtonMinSize returns the smallest size of a popup button
func NewPopupButtonMinSize() fyne.Size {
	return fyne.NewSize(PopupButtonWidth, PopupButtonHeight)
}

// NewEditorSize returns the default editor window size
func NewEditorSize() fyne.Size {
	return fyne.NewSize(EditorWidth, EditorHeight)
}
