package proptypes

// Props maps property names to arbitrary values.
// A key mapped to nil is an explicit null; a missing key is absent.
// Only an untyped nil counts as null. Typed nils such as (*int)(nil) or
// map[string]any(nil) are ordinary values handed to the wrapped checker,
// so a Shape sees a nil map as an empty object.
type Props map[string]any

// TypeChecker validates a single property within props.
// It returns nil when the property is valid.
type TypeChecker interface {
	Validate(props Props, propName, propFullName string) error
}

// ShapeChecker is a TypeChecker for objects with named sub-fields,
// each validated by its own checker.
type ShapeChecker interface {
	TypeChecker
	ShapeFields() map[string]TypeChecker
}

// CheckerFunc adapts an ordinary function to the TypeChecker interface.
type CheckerFunc func(props Props, propName, propFullName string) error

// Validate calls f(props, propName, propFullName).
func (f CheckerFunc) Validate(props Props, propName, propFullName string) error {
	return f(props, propName, propFullName)
}
