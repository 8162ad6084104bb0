package hookresponse

import (
	"strings"

	"github.com/smykla-skalski/packetguard/internal/dispatcher"
)

// reasonSeparator joins reasons when more than one validator blocks.
const reasonSeparator = " | "

// Build constructs a deny HookResponse from validation errors.
// Returns nil when nothing blocks: allow is never written out.
func Build(eventName string, errs []*dispatcher.ValidationError) *HookResponse {
	reasons := make([]string, 0, len(errs))

	for _, e := range errs {
		if !e.ShouldBlock || e.Message == "" {
			continue
		}

		reasons = append(reasons, e.Message)
	}

	if len(reasons) == 0 {
		return nil
	}

	return &HookResponse{
		HookSpecificOutput: &HookSpecificOutput{
			HookEventName:            eventName,
			PermissionDecision:       PermissionDeny,
			PermissionDecisionReason: strings.Join(reasons, reasonSeparator),
		},
	}
}
