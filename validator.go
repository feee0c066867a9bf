package nodeconf

import (
	"fmt"

	"go.uber.org/zap"
)

// Validator runs a fixed, ordered rule set against a Config and reports
// every violation in one error. It holds no per-call state, so one Validator
// may serve concurrent calls as long as it is not reconfigured meanwhile.
type Validator struct {
	rules          []Rule
	newAccumulator func() Accumulator
	logger         *zap.Logger // nil means zap.L() at call time
}

// NewValidator creates a Validator with DefaultRules and the in-memory accumulator.
func NewValidator() *Validator {
	return &Validator{
		rules:          DefaultRules(),
		newAccumulator: func() Accumulator { return NewValidationErrors() },
	}
}

// WithRule appends a rule. It runs after the rules already registered.
func (v *Validator) WithRule(r Rule) *Validator {
	v.rules = append(v.rules, r)
	return v
}

// WithRules replaces the whole rule set, keeping the given order.
func (v *Validator) WithRules(rules ...Rule) *Validator {
	v.rules = append([]Rule(nil), rules...)
	return v
}

// WithAccumulator sets the factory used to create one accumulator per Validate call.
func (v *Validator) WithAccumulator(newAccumulator func() Accumulator) *Validator {
	v.newAccumulator = newAccumulator
	return v
}

// WithLogger sets the logger used for the start-of-validation event.
func (v *Validator) WithLogger(logger *zap.Logger) *Validator {
	v.logger = logger
	return v
}

// Validate evaluates every rule, in order, without stopping at the first failure.
// Returns nil when no rule fires, otherwise a *ValidationError of KindSemantics.
func (v *Validator) Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	logger := v.logger
	if logger == nil {
		logger = zap.L()
	}
	logger.Info("validating config", zap.Int("rules", len(v.rules)))

	acc := v.newAccumulator()
	var violations []Violation
	for _, rule := range v.rules {
		violation := rule.Check(cfg)
		if violation == nil {
			continue
		}
		if violation.Category == "" {
			violation.Category = CategorySemantics
		}
		acc.Push(violation.Message, violation.Category)
		violations = append(violations, *violation)
	}

	if acc.Empty() {
		return nil
	}

	return &ValidationError{
		Kind:       KindSemantics,
		Message:    acc.Render(),
		Violations: violations,
	}
}

// ValidateConfig checks cfg with the default rules and the global zap logger.
// Callers are expected to print the error and abort startup.
func ValidateConfig(cfg *Config) error {
	return NewValidator().Validate(cfg)
}
