package config

import (
	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/packetguard/pkg/config"
	"github.com/smykla-skalski/packetguard/pkg/logger"
)

// ErrInvalidConfig is returned when the configuration is invalid.
var ErrInvalidConfig = errors.New("invalid configuration")

// Validator validates configuration semantics.
type Validator struct{}

// NewValidator creates a new Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate validates the entire configuration.
func (*Validator) Validate(cfg *config.Config) error {
	if cfg == nil {
		return errors.WithMessage(ErrInvalidConfig, "config is nil")
	}

	if _, err := logger.ParseLevel(string(cfg.GetLog().Level)); err != nil {
		return errors.Wrap(errors.CombineErrors(ErrInvalidConfig, err), "log.level")
	}

	return nil
}
