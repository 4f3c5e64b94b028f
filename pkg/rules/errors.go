package rules

import "errors"

var (
	// ErrUnknownRule is returned when a rule id is not registered on the engine.
	ErrUnknownRule = errors.New("unknown rule")

	// ErrInvalidRule is returned when registering a rule with an empty name or nil func.
	ErrInvalidRule = errors.New("invalid rule definition")

	// ErrInvalidOption is returned by rules whose options cannot be used,
	// for example a pattern that does not compile.
	ErrInvalidOption = errors.New("invalid rule option")

	// ErrUnsupportedLocale is returned by locale-dependent rules that have
	// no definition for the requested country.
	ErrUnsupportedLocale = errors.New("unsupported locale for rule")
)
