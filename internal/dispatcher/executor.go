package dispatcher

import (
	"context"

	"github.com/smykla-skalski/packetguard/internal/validator"
	"github.com/smykla-skalski/packetguard/pkg/hook"
	"github.com/smykla-skalski/packetguard/pkg/logger"
)

// Executor runs validators and collects their results.
type Executor interface {
	// Execute runs validators and returns validation errors.
	Execute(
		ctx context.Context,
		hookCtx *hook.Context,
		validators []validator.Validator,
	) []*ValidationError
}

// SequentialExecutor runs validators one at a time in order.
type SequentialExecutor struct {
	logger logger.Logger
}

// NewSequentialExecutor creates a new SequentialExecutor.
func NewSequentialExecutor(log logger.Logger) *SequentialExecutor {
	return &SequentialExecutor{logger: log}
}

// Execute runs validators sequentially. A nil result counts as a pass.
func (e *SequentialExecutor) Execute(
	ctx context.Context,
	hookCtx *hook.Context,
	validators []validator.Validator,
) []*ValidationError {
	errors := make([]*ValidationError, 0, len(validators))

	for _, v := range validators {
		select {
		case <-ctx.Done():
			e.logger.Info("validation cancelled", "error", ctx.Err())

			return errors
		default:
		}

		result := v.Validate(ctx, hookCtx)
		if result != nil && !result.Passed {
			errors = append(errors, toValidationError(v, result))
		}
	}

	return errors
}

func toValidationError(v validator.Validator, result *validator.Result) *ValidationError {
	return &ValidationError{
		Validator:   v.Name(),
		Message:     result.Message,
		Details:     result.Details,
		ShouldBlock: result.ShouldBlock,
		Code:        result.Code,
	}
}
