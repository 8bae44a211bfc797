package checkers

import (
	"fmt"
	"math"
	"reflect"

	"github.com/dmitrymomot/proptypes"
)

// Named is implemented by checkers that report the type they expect.
type Named interface {
	TypeName() string
}

// typeChecker validates the value of a property with a plain predicate.
type typeChecker struct {
	name  string
	match func(value any) bool
}

func (c *typeChecker) TypeName() string { return c.name }

func (c *typeChecker) Validate(props proptypes.Props, propName, propFullName string) error {
	value := props[propName]
	if c.match(value) {
		return nil
	}
	return invalidType(propName, propFullName, value, c.name)
}

// String accepts string values.
func String() proptypes.TypeChecker {
	return &typeChecker{name: "string", match: func(v any) bool {
		_, ok := v.(string)
		return ok
	}}
}

// Bool accepts boolean values.
func Bool() proptypes.TypeChecker {
	return &typeChecker{name: "bool", match: func(v any) bool {
		_, ok := v.(bool)
		return ok
	}}
}

// Int accepts integer kinds and whole floats, since JSON numbers decode to float64.
func Int() proptypes.TypeChecker {
	return &typeChecker{name: "int", match: func(v any) bool {
		switch n := v.(type) {
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			return true
		case float64:
			return isWhole(n)
		case float32:
			return isWhole(float64(n))
		}
		return false
	}}
}

// isWhole reports whether n is a finite integer within the int64 range.
func isWhole(n float64) bool {
	return math.Trunc(n) == n && n >= math.MinInt64 && n < math.MaxInt64
}

// Number accepts any integer or floating point value.
func Number() proptypes.TypeChecker {
	return &typeChecker{name: "number", match: func(v any) bool {
		switch v.(type) {
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
			return true
		}
		return false
	}}
}

// Any accepts every non-null value.
func Any() proptypes.TypeChecker {
	return &typeChecker{name: "any", match: func(v any) bool { return v != nil }}
}

func invalidType(propName, propFullName string, value any, expected string) error {
	return &proptypes.PropTypeError{
		Prop: propName,
		Message: fmt.Sprintf("Invalid property `%s` of type `%s` supplied, expected `%s`.",
			propFullName, typeOf(value), expected),
		Err: proptypes.ErrInvalidType,
	}
}

func invalidValue(propName, message string) error {
	return &proptypes.PropTypeError{
		Prop:    propName,
		Message: message,
		Err:     proptypes.ErrInvalidValue,
	}
}

// typeOf names the type of a decoded value the way error messages expect.
func typeOf(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "bool"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "int"
	case float32, float64:
		return "float"
	case proptypes.Props, map[string]any:
		return "object"
	}

	rt := reflect.TypeOf(value)
	switch rt.Kind() {
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map:
		if rt.Key().Kind() == reflect.String {
			return "object"
		}
	}
	return fmt.Sprintf("%T", value)
}

// asProps returns value as Props when it is a string-keyed object.
// Typed maps such as map[string]string are copied into a new Props.
func asProps(value any) (proptypes.Props, bool) {
	switch v := value.(type) {
	case proptypes.Props:
		return v, true
	case map[string]any:
		return proptypes.Props(v), true
	case nil:
		return nil, false
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	props := make(proptypes.Props, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		props[iter.Key().String()] = iter.Value().Interface()
	}
	return props, true
}
