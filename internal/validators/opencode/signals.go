// Package opencode guards opencode invocations against inline packet content.
package opencode

import (
	"regexp"

	"github.com/smykla-skalski/packetguard/pkg/stringutil"
)

// RemediationMessage is the fixed deny reason shown to the host.
const RemediationMessage = "Blocked: inline heredoc packet execution with opencode is disabled. " +
	"Write packet content to a .md file in thoughts/ and run " +
	"`opencode run --model openai/gpt-5.3-codex < \"<packet-file>\"`."

// Signal labels.
const (
	LabelHeredocInline = "heredoc-inline"
	LabelPacketMarker  = "packet-marker"
)

// Signal is one entry of the detection table.
type Signal struct {
	// Label names the signal in logs and reports.
	Label string

	// Matcher is tested against the full command text.
	Matcher *regexp.Regexp

	// Message is the deny reason for this signal.
	Message string
}

// Matches reports whether the signal fires for command.
func (s Signal) Matches(command string) bool {
	return s.Matcher.MatchString(command)
}

// ws is one whitespace rune. RE2's `\s` is ASCII only, so the wider class
// is spelled out.
const ws = stringutil.SpaceClass

// activationGate requires "opencode" as a whole word, bounded by whitespace
// or the edges of the command.
var activationGate = regexp.MustCompile(`(?i)(^|` + ws + `)opencode(` + ws + `|$)`)

// heredocInline matches "$( cat <<", "cat <<", or any "<<" followed by an
// optionally single-quoted marker. A lone "<" never matches. Marker letters
// are matched without case folding so U+017F and U+212A stay outside the
// ASCII range.
var heredocInline = regexp.MustCompile(
	`(?i)(\$\(` + ws + `*cat` + ws + `*<<)|(\bcat` + ws + `*<<)|(<<` + ws + `*'?(?-i:[A-Za-z0-9_\-])+'?)`,
)

// packetMarker is spelled out per letter for the same reason.
var packetMarker = regexp.MustCompile(`\b[Pp][Aa][Cc][Kk][Ee][Tt]_[Ee][Oo][Ff]\b`)

// DefaultSignals returns the detection table. Signals are independent and
// combined with logical OR.
func DefaultSignals() []Signal {
	return []Signal{
		{
			Label:   LabelHeredocInline,
			Matcher: heredocInline,
			Message: RemediationMessage,
		},
		{
			Label:   LabelPacketMarker,
			Matcher: packetMarker,
			Message: RemediationMessage,
		},
	}
}

// ActivationPattern returns the gate expression, for reporting.
func ActivationPattern() string {
	return activationGate.String()
}
