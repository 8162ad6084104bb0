package opencode

import (
	"context"
	"strings"

	"github.com/smykla-skalski/packetguard/internal/validator"
	"github.com/smykla-skalski/packetguard/pkg/hook"
	"github.com/smykla-skalski/packetguard/pkg/logger"
)

// ValidatorName is the registry name of the heredoc validator.
const ValidatorName = "validate-opencode-heredoc"

// HeredocValidator blocks opencode invocations fed by inline heredoc
// packets.
type HeredocValidator struct {
	validator.BaseValidator
	signals []Signal
}

// NewHeredocValidator creates a HeredocValidator with the default signals.
func NewHeredocValidator(log logger.Logger) *HeredocValidator {
	return &HeredocValidator{
		BaseValidator: *validator.NewBaseValidator(ValidatorName, log),
		signals:       DefaultSignals(),
	}
}

// Signals returns the validator's detection table.
func (v *HeredocValidator) Signals() []Signal {
	return v.signals
}

// Validate checks the Bash command of hookCtx.
func (v *HeredocValidator) Validate(_ context.Context, hookCtx *hook.Context) *validator.Result {
	log := v.Logger()

	if !hookCtx.IsBashTool() {
		log.Debug("not a Bash request, skipping validation", "tool", hookCtx.ToolName)

		return validator.Pass()
	}

	command := hookCtx.GetCommand()
	if command == "" {
		log.Debug("empty command, skipping validation")

		return validator.Pass()
	}

	eval := Evaluate(command, v.signals)

	if !eval.Activated {
		log.Debug("command does not invoke opencode")

		return validator.Pass()
	}

	if !eval.Denied() {
		log.Debug("opencode invocation without inline packet")

		return validator.Pass()
	}

	result := validator.FailWithCode(validator.ErrInlinePacket, eval.Reason).
		AddDetail("signals", strings.Join(eval.Matched, ","))

	v.LogValidation(hookCtx, result)

	return result
}

// Register adds the validator to registry for Bash PreToolUse events.
func Register(registry *validator.Registry, log logger.Logger) *HeredocValidator {
	v := NewHeredocValidator(log)

	registry.Register(v, validator.And(
		validator.EventTypeIs(hook.EventTypePreToolUse),
		validator.ToolTypeIs(hook.ToolTypeBash),
	))

	return v
}
