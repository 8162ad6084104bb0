// Package hookresponse builds structured JSON responses for Claude Code hooks.
package hookresponse

import (
	"encoding/json"
	"io"

	"github.com/cockroachdb/errors"
)

// PermissionDeny is the only decision the guard ever emits.
const PermissionDeny = "deny"

// HookResponse is the top-level JSON structure written to stdout.
type HookResponse struct {
	HookSpecificOutput *HookSpecificOutput `json:"hookSpecificOutput,omitempty"`
}

// HookSpecificOutput carries the permission decision for the host.
type HookSpecificOutput struct {
	HookEventName            string `json:"hookEventName"`
	PermissionDecision       string `json:"permissionDecision"`
	PermissionDecisionReason string `json:"permissionDecisionReason"`
}

// Write encodes resp as a single JSON line. The reason text is written
// verbatim: "<", ">" and "&" are not HTML-escaped.
func Write(w io.Writer, resp *HookResponse) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(resp); err != nil {
		return errors.Wrap(err, "encode hook response")
	}

	return nil
}
