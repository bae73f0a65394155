package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// FilenamePrompt is a modal form asking for a file name.
type FilenamePrompt struct {
	entry  *widget.Entry
	dialog dialog.Dialog
	onName func(string)
}

// ShowFilenamePrompt asks for a file name over parent. onName receives the
// trimmed name on confirm; cancelling calls nothing.
func ShowFilenamePrompt(parent fyne.Window, onName func(string)) *FilenamePrompt {
	p := &FilenamePrompt{onName: onName}

	p.entry = widget.NewEntry()
	p.entry.SetPlaceHolder("results.txt")
	p.entry.Validator = validateFilename

	p.dialog = dialog.NewForm("Please enter a file name", "OK", "Cancel",
		[]*widget.FormItem{widget.NewFormItem("File name", p.entry)},
		p.confirm, parent)
	p.dialog.Show()
	return p
}

func (p *FilenamePrompt) confirm(ok bool) {
	if !ok {
		return
	}
	if err := validateFilename(p.entry.Text); err != nil {
		return
	}
	if p.onName != nil {
		p.onName(strings.TrimSpace(p.entry.Text))
	}
}
