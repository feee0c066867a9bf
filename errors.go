package nodeconf

import (
	"errors"
	"fmt"
	"strings"
)

// Category groups violations for rendering.
type Category string

// CategorySemantics marks cross-field and business-rule failures,
// as opposed to schema or type errors caught upstream.
const CategorySemantics Category = "semantics"

// Tag returns the prefix written in front of each rendered violation.
func (c Category) Tag() string {
	if c == CategorySemantics {
		return "config.json semantic issue"
	}
	return fmt.Sprintf("config.json %s issue", string(c))
}

// Violation is a single failed rule.
type Violation struct {
	Category Category `json:"category" yaml:"category" toml:"category"`
	Message  string   `json:"message" yaml:"message" toml:"message"`
}

// Kind identifies the variant of a ValidationError.
type Kind int

const (
	// KindSemantics wraps the combined text of semantic violations.
	KindSemantics Kind = iota + 1
)

func (k Kind) String() string {
	switch k {
	case KindSemantics:
		return "semantics"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ErrConfigSemantics matches any semantics ValidationError via errors.Is.
var ErrConfigSemantics = errors.New("nodeconf: config semantics violation")

// ValidationError aggregates every violation found in one pass.
type ValidationError struct {
	Kind       Kind
	Message    string      // Rendered by the accumulator, one line per violation
	Violations []Violation // Evaluation order
}

// Error returns the combined message unchanged.
func (e *ValidationError) Error() string {
	if e.Message == "" {
		return "config validation failed: no errors"
	}
	return e.Message
}

// Is reports whether target is the sentinel for this error's kind.
func (e *ValidationError) Is(target error) bool {
	return target == ErrConfigSemantics && e.Kind == KindSemantics
}

// Lines splits the combined message into its per-violation lines.
func (e *ValidationError) Lines() []string {
	if e.Message == "" {
		return nil
	}
	return strings.Split(e.Message, "\n")
}
