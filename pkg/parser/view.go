package parser

import "fmt"

// InputKind identifies a form of inline command input.
type InputKind int

const (
	// KindHeredoc is a `<<MARKER` here-document.
	KindHeredoc InputKind = iota
	// KindDashHeredoc is a `<<-MARKER` here-document with tab stripping.
	KindDashHeredoc
	// KindHereString is a `<<<word` here-string.
	KindHereString
	// KindProcSubst is a `<(...)` or `>(...)` process substitution.
	KindProcSubst
)

// String returns the shell operator for the kind.
func (k InputKind) String() string {
	switch k {
	case KindHeredoc:
		return "<<"
	case KindDashHeredoc:
		return "<<-"
	case KindHereString:
		return "<<<"
	case KindProcSubst:
		return "<(...)"
	default:
		return "unknown"
	}
}

// Location represents position in source code.
type Location struct {
	Line   uint
	Column uint
}

// String formats the location as line:column.
func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// InlineInput is one piece of inline input found in a command.
type InlineInput struct {
	Kind InputKind
	// Command is the name of the command the input feeds, if it is a literal.
	Command string
	// Marker is the heredoc delimiter or the here-string word.
	Marker string
	// Quoted reports whether the marker was quoted ('EOF' or "EOF").
	Quoted bool
	// Lines is the number of body lines for heredocs.
	Lines    int
	Location Location
}

// ShellView is the parsed shape of a command relevant to inline input.
type ShellView struct {
	// Commands lists literal command names in source order.
	Commands []string
	Inputs   []InlineInput
}

// HasCommand checks if the view contains a command with the given name.
func (v *ShellView) HasCommand(name string) bool {
	for _, cmd := range v.Commands {
		if cmd == name {
			return true
		}
	}

	return false
}

// HasHeredoc returns true when any `<<` or `<<-` redirect is present.
func (v *ShellView) HasHeredoc() bool {
	for _, in := range v.Inputs {
		if in.Kind == KindHeredoc || in.Kind == KindDashHeredoc {
			return true
		}
	}

	return false
}

// HasInlineInput returns true when any inline input is present.
func (v *ShellView) HasInlineInput() bool {
	return len(v.Inputs) > 0
}
