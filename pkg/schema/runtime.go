package schema

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/forma/pkg/rules"
)

// Synthetic rule ids reported by the schemas themselves.
const (
	RuleInvalidType = "invalidType"
	RuleRequired    = "required"
	RuleNumeric     = "validateNumeric"
)

// Runtime is shared by every schema of a factory: the engine reference and
// the subtree fan-out setting.
type Runtime struct {
	engine      *rules.Engine
	concurrency int
}

// RuntimeOption configures a Runtime.
type RuntimeOption func(*Runtime)

// WithConcurrency validates up to n array items or object fields at once.
// Values below 2 keep subtree validation sequential.
func WithConcurrency(n int) RuntimeOption {
	return func(r *Runtime) {
		r.concurrency = n
	}
}

// NewRuntime binds schemas to engine.
func NewRuntime(engine *rules.Engine, opts ...RuntimeOption) *Runtime {
	r := &Runtime{engine: engine, concurrency: 1}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Engine returns the bound rule engine.
func (r *Runtime) Engine() *rules.Engine {
	return r.engine
}

// Concurrency returns the subtree fan-out limit.
func (r *Runtime) Concurrency() int {
	return r.concurrency
}

// transform threads value through every sanitizer and formatter step.
func (r *Runtime) transform(ctx context.Context, chain Chain, value any) (any, error) {
	for step := range chain.Transforms() {
		var err error
		if step.Sanitizer != nil {
			value, err = r.engine.RunSanitizer(ctx, step.Rule, step.Sanitizer, value, step.Options)
		} else {
			value, err = r.engine.Sanitize(ctx, step.Rule, value, step.Options)
		}
		if err != nil {
			return nil, err
		}
	}
	return value, nil
}

// check runs every validator step against value and collects the failures.
func (r *Runtime) check(ctx context.Context, chain Chain, value any) ([]Issue, error) {
	var issues []Issue
	for step := range chain.Validators() {
		var (
			verdict rules.Verdict
			err     error
		)
		if step.Validator != nil {
			verdict, err = r.engine.RunValidator(ctx, step.Rule, step.Validator, value, step.Options)
		} else {
			verdict, err = r.engine.Validate(ctx, step.Rule, value, step.Options)
		}
		if err != nil {
			return nil, err
		}
		if !verdict.Valid {
			issues = append(issues, r.issue(RuleViolation, verdict))
		}
	}
	return issues, nil
}

// run is the scalar pipeline: transforms, then validators on the result.
func (r *Runtime) run(ctx context.Context, chain Chain, value any) (Result, error) {
	value, err := r.transform(ctx, chain, value)
	if err != nil {
		return Result{}, err
	}
	issues, err := r.check(ctx, chain, value)
	if err != nil {
		return Result{}, err
	}
	if len(issues) == 0 {
		return Result{Valid: true, Value: value}, nil
	}
	return Result{Errors: &ErrorTree{Issues: issues}, Value: value}, nil
}

// issue formats a failed verdict. A verdict message is kept verbatim;
// otherwise the rule template of the current locale is interpolated.
func (r *Runtime) issue(kind IssueKind, v rules.Verdict) Issue {
	msg := v.Message
	if msg == "" {
		msg = r.engine.Message(v.Rule, v.Context)
	}
	return Issue{Kind: kind, Rule: v.Rule, Message: msg, Context: v.Context}
}

// mismatch returns the single-issue result of input with the wrong shape.
func (r *Runtime) mismatch(rule string, params map[string]any, value any) Result {
	issue := r.issue(TypeMismatch, rules.Fail(rule, params))
	return Result{Errors: &ErrorTree{Issues: []Issue{issue}}, Value: value}
}

// each calls fn for indexes 0..n-1, sequentially or through an errgroup
// when concurrency allows. The first error cancels the rest.
func (r *Runtime) each(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	if r.concurrency < 2 || n < 2 {
		for i := range n {
			if err := fn(ctx, i); err != nil {
				return err
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i := range n {
		g.Go(func() error {
			return fn(gctx, i)
		})
	}
	return g.Wait()
}
