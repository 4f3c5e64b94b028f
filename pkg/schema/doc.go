// Package schema builds immutable validation chains and runs them.
//
// A schema holds a Chain of steps. Sanitizer and formatter steps run first,
// in order, each receiving the output of the previous one. Validator steps
// then run in order on the transformed value and every failure is
// collected. Steps name operations of a rules.Engine; the schema never
// implements a rule itself.
//
//	rt := schema.NewRuntime(engine)
//	signup := schema.NewObject(rt,
//	    schema.Field{Name: "name", Schema: schema.NewString(rt).Trim().ToSlug().ValidateNotEmpty()},
//	    schema.Field{Name: "age", Schema: schema.NewNumber(rt).ValidateInt().Min(18)},
//	)
//	res, err := signup.Validate(ctx, input)
//
// Every chain-building method returns a new schema, so schemas can be
// shared and extended freely.
//
// # Results and faults
//
// Validation failures are data: Result.Errors is an ErrorTree mirroring the
// value (issues for scalars, an item side channel for arrays, fields and
// object-level issues for objects) and is nil when the value is valid.
// Wrong input shapes produce exactly one TypeMismatch issue and return the
// input unchanged.
//
// A non-nil error from Validate is a fault: a rule operation failed, a rule
// id is not registered (rules.ErrUnknownRule) or a transform changed an
// array or object into something else (ErrShapeChanged).
//
// # Concurrency
//
// With WithConcurrency(n), array items and object fields are validated
// through an errgroup limited to n goroutines. Results are merged by index
// and field, never by completion order. Steps of one chain always run
// sequentially.
package schema
