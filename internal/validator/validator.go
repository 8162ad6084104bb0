// Package validator defines the validator contract, results, and the
// predicate-based registry that selects validators for a hook context.
package validator

//go:generate mockgen -source=validator.go -destination=validator_mock.go -package=validator

import (
	"context"
	"maps"
	"slices"

	"github.com/smykla-skalski/packetguard/pkg/hook"
	"github.com/smykla-skalski/packetguard/pkg/logger"
)

// Validator validates a hook context.
type Validator interface {
	// Name returns the validator name.
	Name() string

	// Validate validates the given context and returns a result.
	Validate(ctx context.Context, hookCtx *hook.Context) *Result
}

// Result represents the validation result.
type Result struct {
	// Passed indicates whether the validation passed.
	Passed bool

	// Message is the human-readable message shown to the host on deny.
	Message string

	// Details contains additional details about the validation.
	Details map[string]string

	// ShouldBlock indicates whether this failure should block the operation.
	ShouldBlock bool

	// Code identifies the kind of failure.
	Code ErrorCode
}

// Pass creates a passing validation result.
func Pass() *Result {
	return &Result{
		Passed:      true,
		ShouldBlock: false,
	}
}

// Fail creates a failing validation result that blocks the operation.
func Fail(message string) *Result {
	return &Result{
		Passed:      false,
		Message:     message,
		ShouldBlock: true,
	}
}

// FailWithCode creates a blocking result tagged with an error code.
func FailWithCode(code ErrorCode, message string) *Result {
	return &Result{
		Passed:      false,
		Message:     message,
		ShouldBlock: true,
		Code:        code,
	}
}

// AddDetail adds a detail to the result.
func (r *Result) AddDetail(key, value string) *Result {
	if r.Details == nil {
		r.Details = make(map[string]string)
	}

	r.Details[key] = value

	return r
}

// String returns a string representation of the result.
func (r *Result) String() string {
	if r.Passed {
		return "PASS"
	}

	if r.ShouldBlock {
		return "BLOCK"
	}

	return "WARN"
}

// BaseValidator provides common validator functionality.
type BaseValidator struct {
	name   string
	logger logger.Logger
}

// NewBaseValidator creates a new BaseValidator.
func NewBaseValidator(name string, logger logger.Logger) *BaseValidator {
	return &BaseValidator{
		name:   name,
		logger: logger,
	}
}

// Name returns the validator name.
func (v *BaseValidator) Name() string {
	return v.name
}

// Logger returns the logger.
//
//nolint:ireturn // interface for polymorphism
func (v *BaseValidator) Logger() logger.Logger {
	return v.logger
}

// LogValidation logs the validation result.
func (v *BaseValidator) LogValidation(hookCtx *hook.Context, result *Result) {
	if result.Passed {
		v.logger.Info("validation passed",
			"validator", v.name,
			"tool", hookCtx.ToolName,
		)

		return
	}

	kvs := []any{
		"validator", v.name,
		"tool", hookCtx.ToolName,
		"code", result.Code,
	}

	for _, k := range slices.Sorted(maps.Keys(result.Details)) {
		kvs = append(kvs, k, result.Details[k])
	}

	if result.ShouldBlock {
		v.logger.Error("validation "+result.String(), kvs...)
	} else {
		v.logger.Info("validation "+result.String(), kvs...)
	}
}
