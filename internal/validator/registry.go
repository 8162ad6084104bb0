package validator

import "github.com/smykla-skalski/packetguard/pkg/hook"

// Predicate determines if a validator should be applied to a context.
type Predicate func(*hook.Context) bool

// Registration represents a validator registration with its predicate.
type Registration struct {
	Validator Validator
	Predicate Predicate
}

// Registry manages validator registrations and selection.
type Registry struct {
	registrations []Registration
}

// NewRegistry creates a new empty validator registry.
func NewRegistry() *Registry {
	return &Registry{
		registrations: make([]Registration, 0),
	}
}

// Register adds a validator with a predicate to the registry.
func (r *Registry) Register(validator Validator, predicate Predicate) {
	r.registrations = append(r.registrations, Registration{
		Validator: validator,
		Predicate: predicate,
	})
}

// FindValidators returns all validators whose predicates match the context,
// in registration order.
func (r *Registry) FindValidators(ctx *hook.Context) []Validator {
	validators := make([]Validator, 0)

	for _, reg := range r.registrations {
		if reg.Predicate(ctx) {
			validators = append(validators, reg.Validator)
		}
	}

	return validators
}

// Count returns the number of registered validators.
func (r *Registry) Count() int {
	return len(r.registrations)
}

// EventTypeIs returns a predicate that matches the given event type.
func EventTypeIs(eventType hook.EventType) Predicate {
	return func(ctx *hook.Context) bool {
		return ctx.EventType == eventType
	}
}

// ToolTypeIs returns a predicate that matches the given tool type.
func ToolTypeIs(toolType hook.ToolType) Predicate {
	return func(ctx *hook.Context) bool {
		return ctx.ToolName == toolType
	}
}

// And combines predicates with logical AND.
func And(predicates ...Predicate) Predicate {
	return func(ctx *hook.Context) bool {
		for _, p := range predicates {
			if !p(ctx) {
				return false
			}
		}

		return true
	}
}
