package rules

import "context"

// Verdict is the outcome of a validator rule.
// Rule is the id used for message lookup. Message, when set, is used verbatim.
type Verdict struct {
	Valid   bool
	Rule    string
	Message string
	Context map[string]any
}

// ValidatorFunc checks a value. A returned error is a fault, not a failed check.
type ValidatorFunc func(ctx context.Context, e *Engine, value any, opts Options) (Verdict, error)

// SanitizerFunc transforms a value. A returned error is a fault.
type SanitizerFunc func(ctx context.Context, e *Engine, value any, opts Options) (any, error)

// Pass returns a successful verdict.
func Pass(rule string) Verdict {
	return Verdict{Valid: true, Rule: rule}
}

// Fail returns a failed verdict carrying the message context.
func Fail(rule string, params map[string]any) Verdict {
	return Verdict{Rule: rule, Context: params}
}

// Check returns Pass or Fail depending on ok.
func Check(ok bool, rule string, params map[string]any) Verdict {
	if ok {
		return Pass(rule)
	}
	return Fail(rule, params)
}
