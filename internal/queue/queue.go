// Package queue holds the in-memory download queue and the add-link editor
// that together make up the application state of the TUI.
package queue

import (
	"log"
	"unicode/utf8"
)

// Status describes how far a queued download has progressed.
type Status int

const (
	StatusInProgress Status = iota
	// StatusDone is reserved; nothing marks a link as finished yet.
	StatusDone
)

func (s Status) String() string {
	switch s {
	case StatusDone:
		return "done"
	default:
		return "in progress"
	}
}

// Link is one queued download. URL is stored exactly as typed.
type Link struct {
	URL    string
	Status Status
}

// NewLink returns a link for url in the in-progress state.
func NewLink(url string) Link {
	return Link{URL: url, Status: StatusInProgress}
}

// Screen identifies the visible modal view.
type Screen int

const (
	ScreenMain Screen = iota
	ScreenAddDialog
)

func (s Screen) String() string {
	if s == ScreenAddDialog {
		return "add-dialog"
	}
	return "main"
}

// Mode tells the controller whether keys are commands or text.
type Mode int

const (
	ModeNormal Mode = iota
	ModeEditing
)

func (m Mode) String() string {
	if m == ModeEditing {
		return "EDITING"
	}
	return "NORMAL"
}

type editor struct {
	buffer string
	cursor int
}

// State is the single mutable application context. The zero value is not
// usable; construct it with New.
//
// A nil editor means the main screen in normal mode, a non-nil editor means
// the add dialog in editing mode. Screen and Mode are both derived from it so
// they can never disagree.
type State struct {
	links  []Link
	editor *editor
}

// New returns an empty queue on the main screen.
func New() *State {
	return &State{links: []Link{}}
}

// Screen reports the visible view.
func (s *State) Screen() Screen {
	if s.editor != nil {
		return ScreenAddDialog
	}
	return ScreenMain
}

// Mode reports the input mode.
func (s *State) Mode() Mode {
	if s.editor != nil {
		return ModeEditing
	}
	return ModeNormal
}

// Input returns the in-progress dialog text, empty outside editing.
func (s *State) Input() string {
	if s.editor == nil {
		return ""
	}
	return s.editor.buffer
}

// Cursor returns the caret position in runes within Input.
func (s *State) Cursor() int {
	if s.editor == nil {
		return 0
	}
	return s.editor.cursor
}

// Len returns the number of queued links.
func (s *State) Len() int {
	return len(s.links)
}

// Links returns a copy of the queue in insertion order.
func (s *State) Links() []Link {
	return append([]Link(nil), s.links...)
}

// BeginEditing opens the add dialog. Text already in an open editor is kept.
func (s *State) BeginEditing() {
	if s.editor != nil {
		return
	}
	s.editor = &editor{}
}

// AppendCharacter adds c to the end of the buffer.
func (s *State) AppendCharacter(c rune) {
	if s.editor == nil {
		return
	}
	s.editor.buffer += string(c)
	s.editor.cursor++
}

// PasteText appends text to the buffer in one step.
func (s *State) PasteText(text string) {
	if s.editor == nil || text == "" {
		return
	}
	s.editor.buffer += text
	s.editor.cursor += utf8.RuneCountInString(text)
}

// DeleteLastCharacter drops the final code point of the buffer. An empty
// buffer is left alone.
func (s *State) DeleteLastCharacter() {
	if s.editor == nil || s.editor.buffer == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(s.editor.buffer)
	s.editor.buffer = s.editor.buffer[:len(s.editor.buffer)-size]
	s.editor.cursor--
}

// CommitEntry queues the buffer verbatim, empty or not, and returns to the
// main screen. It does nothing outside editing mode.
func (s *State) CommitEntry() {
	if s.editor == nil {
		return
	}
	s.links = append(s.links, NewLink(s.editor.buffer))
	log.Printf("[queue] link added (total=%d)", len(s.links))
	s.ResetToMain()
}

// ResetToMain discards the buffer and closes the dialog.
func (s *State) ResetToMain() {
	s.editor = nil
}

// Snapshot is a read-only copy of State handed to the renderer.
type Snapshot struct {
	Links  []Link
	Screen Screen
	Mode   Mode
	Input  string
	Cursor int
}

// Snapshot copies the current state.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Links:  s.Links(),
		Screen: s.Screen(),
		Mode:   s.Mode(),
		Input:  s.Input(),
		Cursor: s.Cursor(),
	}
}
