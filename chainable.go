package proptypes

import "fmt"

// ChainableChecker decorates a TypeChecker with required, nullable and model
// modifiers plus an optional default value.
//
// Required, Nullable and Model return new checkers and never touch the
// receiver. Default is the exception: it sets the value on the receiver and
// returns it, so every holder of the same pointer observes the change.
// Finish configuring a checker before validating with it concurrently.
type ChainableChecker struct {
	checker      TypeChecker
	required     bool
	nullable     bool
	model        bool
	defaultValue any
	hasDefault   bool
}

// New wraps checker into a ChainableChecker that is optional, not nullable
// and not a model.
func New(checker TypeChecker) *ChainableChecker {
	return newChainable(checker, false, false, false)
}

func newChainable(checker TypeChecker, required, nullable, model bool) *ChainableChecker {
	return &ChainableChecker{
		checker:  checker,
		required: required,
		nullable: nullable,
		model:    model,
	}
}

// Validate checks absence first, then explicit null, and only then delegates
// to the wrapped checker. The wrapped checker's result is returned untouched.
// A typed nil value is not null and is delegated like any other value.
func (c *ChainableChecker) Validate(props Props, propName, propFullName string) error {
	value, ok := props[propName]
	if !ok {
		if c.required {
			return &PropTypeError{
				Prop:    propName,
				Message: fmt.Sprintf("The property `%s` is marked as required, but it's not defined.", propFullName),
				Err:     ErrMissingRequired,
			}
		}
		return nil
	}

	if value == nil {
		if !c.nullable {
			return &PropTypeError{
				Prop:    propName,
				Message: fmt.Sprintf("The property `%s` is marked as not-null, but its value is `null`.", propFullName),
				Err:     ErrNullNotAllowed,
			}
		}
		return nil
	}

	return c.checker.Validate(props, propName, propFullName)
}

// Required returns a copy of the checker that rejects absent properties.
func (c *ChainableChecker) Required() *ChainableChecker {
	return newChainable(c.checker, true, c.nullable, c.model)
}

// Nullable returns a copy of the checker that accepts explicit nulls.
func (c *ChainableChecker) Nullable() *ChainableChecker {
	return newChainable(c.checker, c.required, true, c.model)
}

// Model returns a copy of the checker flagged as a domain model.
// Validate ignores the flag.
func (c *ChainableChecker) Model() *ChainableChecker {
	return newChainable(c.checker, c.required, c.nullable, true)
}

// Default stores value on c itself and returns c.
// A nil value is a valid default and is distinct from having none.
func (c *ChainableChecker) Default(value any) *ChainableChecker {
	c.defaultValue = value
	c.hasDefault = true
	return c
}

// Fields returns the sub-field checkers when the wrapped checker is a shape.
func (c *ChainableChecker) Fields() (map[string]TypeChecker, bool) {
	if shape, ok := c.checker.(ShapeChecker); ok {
		return shape.ShapeFields(), true
	}
	return nil, false
}

// TypeChecker returns the wrapped checker.
func (c *ChainableChecker) TypeChecker() TypeChecker {
	return c.checker
}

// DefaultValue returns the stored default and whether one was ever set.
func (c *ChainableChecker) DefaultValue() (any, bool) {
	return c.defaultValue, c.hasDefault
}

func (c *ChainableChecker) IsNullable() bool {
	return c.nullable
}

func (c *ChainableChecker) IsRequired() bool {
	return c.required
}

func (c *ChainableChecker) IsModel() bool {
	return c.model
}
