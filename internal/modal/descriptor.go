package modal

import (
	"fmt"

	"fyne-tool/internal/settings"
)

type Kind int

const (
	KindInfo Kind = iota
	KindAbout
	KindAddContent
	KindEditContent
)

func (k Kind) String() string {
	switch k {
	case KindInfo:
		return "info"
	case KindAbout:
		return "about"
	case KindAddContent:
		return "add_content"
	case KindEditContent:
		return "edit_content"
	default:
		return "unknown"
	}
}

type Choice int

const (
	ChoiceOK Choice = iota
	ChoiceCancel
	ChoiceDelete
)

func (c Choice) String() string {
	switch c {
	case ChoiceOK:
		return "ok"
	case ChoiceCancel:
		return "cancel"
	case ChoiceDelete:
		return "delete"
	default:
		return "unknown"
	}
}

const FileNotFoundTitle = "File Not Found"

// State is a snapshot of the pending dialog.
type State struct {
	Title     string
	Message   string
	Kind      Kind
	HasCancel bool
	HasDelete bool
}

// Offers reports whether the dialog shows a button for the choice.
func (s State) Offers(choice Choice) bool {
	switch choice {
	case ChoiceOK:
		return true
	case ChoiceCancel:
		return s.HasCancel
	case ChoiceDelete:
		return s.HasDelete
	default:
		return false
	}
}

// Descriptor holds at most one pending modal dialog. A setter called while a
// dialog is open replaces it. Only the UI goroutine may touch a Descriptor.
type Descriptor struct {
	open     bool
	state    State
	revision uint64
}

func NewDescriptor() *Descriptor {
	return &Descriptor{}
}

func (d *Descriptor) SetInfo(title, message string) {
	d.set(State{Title: title, Message: message, Kind: KindInfo})
}

func (d *Descriptor) SetAbout() {
	d.set(State{Title: settings.AboutTitle, Message: settings.AboutMessage, Kind: KindAbout})
}

func (d *Descriptor) SetFileNotFound(path, note string) {
	d.set(State{
		Title:   FileNotFoundTitle,
		Message: fmt.Sprintf("%s not found. %s", path, note),
		Kind:    KindInfo,
	})
}

func (d *Descriptor) SetAddContent(title, message string) {
	d.set(State{Title: title, Message: message, Kind: KindAddContent, HasCancel: true})
}

func (d *Descriptor) SetEditContent(title, message string) {
	d.set(State{Title: title, Message: message, Kind: KindEditContent, HasCancel: true})
}

func (d *Descriptor) SetDeleteConfirm(message string) {
	d.set(State{Title: "Delete", Message: message, Kind: KindInfo, HasCancel: true, HasDelete: true})
}

func (d *Descriptor) Reset() {
	d.open = false
	d.state = State{}
}

func (d *Descriptor) IsOpen() bool {
	return d.open
}

func (d *Descriptor) State() State {
	return d.state
}

// Revision increases on every setter call, so a replaced dialog can be told
// apart from the one already on screen.
func (d *Descriptor) Revision() uint64 {
	return d.revision
}

// Resolve dismisses the open dialog with the given choice and returns the state
// it had. It reports false when nothing is open or the choice is not offered.
func (d *Descriptor) Resolve(choice Choice) (State, bool) {
	if !d.open || !d.state.Offers(choice) {
		return State{}, false
	}

	resolved := d.state
	d.Reset()
	return resolved, true
}

func (d *Descriptor) set(state State) {
	d.state = state
	d.open = true
	d.revision++
}
