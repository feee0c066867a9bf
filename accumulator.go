package nodeconf

import "strings"

//go:generate mockgen -source=accumulator.go -destination=internal/mock/accumulator_mock.go -package=mock

// Accumulator collects violations for one validation pass.
type Accumulator interface {
	// Push appends a violation. Insertion order is rendering order within a category.
	Push(message string, category Category)

	// Empty reports whether nothing was pushed.
	Empty() bool

	// Render returns one line per violation, each prefixed with its category tag.
	Render() string
}

// ValidationErrors is the default in-memory Accumulator.
type ValidationErrors struct {
	violations []Violation
}

// NewValidationErrors returns an empty accumulator.
func NewValidationErrors() *ValidationErrors {
	return &ValidationErrors{}
}

func (e *ValidationErrors) Push(message string, category Category) {
	e.violations = append(e.violations, Violation{Category: category, Message: message})
}

// PushSemantics appends a semantics violation.
func (e *ValidationErrors) PushSemantics(message string) {
	e.Push(message, CategorySemantics)
}

func (e *ValidationErrors) Empty() bool {
	return len(e.violations) == 0
}

// Violations returns a copy of the collected violations in insertion order.
func (e *ValidationErrors) Violations() []Violation {
	out := make([]Violation, len(e.violations))
	copy(out, e.violations)
	return out
}

// Render groups violations by category (first-seen order) and joins them with newlines.
func (e *ValidationErrors) Render() string {
	var order []Category
	grouped := make(map[Category][]string)
	for _, v := range e.violations {
		if _, ok := grouped[v.Category]; !ok {
			order = append(order, v.Category)
		}
		grouped[v.Category] = append(grouped[v.Category], v.Message)
	}

	var lines []string
	for _, c := range order {
		for _, msg := range grouped[c] {
			lines = append(lines, c.Tag()+": "+msg)
		}
	}
	return strings.Join(lines, "\n")
}
