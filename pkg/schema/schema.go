package schema

import (
	"context"

	"github.com/dmitrymomot/forma/pkg/rules"
)

// Schema validates a value and returns its transformed form.
// A non-nil error is a fault (failing rule operation, unknown rule,
// shape-changing transform); validation failures are reported in Result.
type Schema interface {
	Validate(ctx context.Context, value any) (Result, error)
}

// base is embedded by every schema: the shared runtime and the chain.
type base struct {
	rt    *Runtime
	chain Chain
}

// Chain returns the schema steps.
func (b base) Chain() Chain {
	return b.chain
}

func (b base) ready() error {
	if b.rt == nil || b.rt.engine == nil {
		return ErrNoRuntime
	}
	return nil
}

func sanitizerStep(rule string, opts []rules.Options) Step {
	return Step{Kind: KindSanitizer, Rule: rule, Options: rules.Merge(opts...)}
}

func formatterStep(rule string, opts []rules.Options) Step {
	return Step{Kind: KindFormatter, Rule: rule, Options: rules.Merge(opts...)}
}

func validatorStep(rule string, opts []rules.Options) Step {
	return Step{Kind: KindValidator, Rule: rule, Options: rules.Merge(opts...)}
}

func customStep(name string, fn rules.ValidatorFunc) Step {
	if name == "" || fn == nil {
		panic("schema: custom validator needs a name and a function")
	}
	return Step{Kind: KindValidator, Rule: name, Validator: fn}
}

func transformStep(name string, fn rules.SanitizerFunc) Step {
	if name == "" || fn == nil {
		panic("schema: transform needs a name and a function")
	}
	return Step{Kind: KindSanitizer, Rule: name, Sanitizer: fn}
}
