package schema

import (
	"iter"
	"slices"

	"github.com/dmitrymomot/forma/pkg/rules"
)

// StepKind tells the pipeline when a step runs.
type StepKind int

const (
	// KindSanitizer cleans a value (trim, strip tags).
	KindSanitizer StepKind = iota
	// KindFormatter reshapes a value (slug, case, email normalization).
	KindFormatter
	// KindValidator produces a verdict and never changes the value.
	KindValidator
)

func (k StepKind) String() string {
	switch k {
	case KindSanitizer:
		return "sanitizer"
	case KindFormatter:
		return "formatter"
	case KindValidator:
		return "validator"
	default:
		return "unknown"
	}
}

// Transforms reports whether steps of this kind change the value.
func (k StepKind) Transforms() bool {
	return k == KindSanitizer || k == KindFormatter
}

// Step binds a rule id and its options. Validator and Sanitizer are set only
// for inline steps; otherwise Rule is resolved in the engine registry.
type Step struct {
	Kind      StepKind
	Rule      string
	Options   rules.Options
	Validator rules.ValidatorFunc
	Sanitizer rules.SanitizerFunc
}

// Chain is an immutable ordered list of steps.
// The zero value is an empty chain.
type Chain struct {
	steps []Step
}

// NewChain builds a chain holding steps in order.
func NewChain(steps ...Step) Chain {
	var c Chain
	for _, s := range steps {
		c = c.Append(s)
	}
	return c
}

// Append returns a new chain with step added at the end. The receiver and
// every chain sharing its prefix are left untouched.
func (c Chain) Append(step Step) Chain {
	step.Options = step.Options.Clone()
	steps := make([]Step, len(c.steps), len(c.steps)+1)
	copy(steps, c.steps)
	return Chain{steps: append(steps, step)}
}

// Len returns the number of steps.
func (c Chain) Len() int {
	return len(c.steps)
}

// Steps returns a copy of the steps in chain order.
func (c Chain) Steps() []Step {
	return slices.Clone(c.steps)
}

// Transforms yields sanitizer and formatter steps in chain order.
func (c Chain) Transforms() iter.Seq[Step] {
	return c.filter(func(s Step) bool { return s.Kind.Transforms() })
}

// Validators yields validator steps in chain order.
func (c Chain) Validators() iter.Seq[Step] {
	return c.filter(func(s Step) bool { return s.Kind == KindValidator })
}

func (c Chain) filter(keep func(Step) bool) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		for _, s := range c.steps {
			if keep(s) && !yield(s) {
				return
			}
		}
	}
}
