package checkers

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrymomot/proptypes"
)

// Itemizer is implemented by checkers that validate every element of an array.
type Itemizer interface {
	Item() proptypes.TypeChecker
}

type oneOfChecker struct {
	values []any
}

// OneOf accepts values deeply equal to one of values.
// Note that JSON numbers decode to float64, so declare numeric options as floats.
func OneOf(values ...any) proptypes.TypeChecker {
	return &oneOfChecker{values: values}
}

func (c *oneOfChecker) TypeName() string { return "enum" }

// Values returns the accepted values.
func (c *oneOfChecker) Values() []any { return c.values }

func (c *oneOfChecker) Validate(props proptypes.Props, propName, propFullName string) error {
	value := props[propName]
	for _, v := range c.values {
		if reflect.DeepEqual(v, value) {
			return nil
		}
	}
	return invalidValue(propName, fmt.Sprintf("Invalid property `%s` of value `%v` supplied, expected one of %s.",
		propFullName, value, formatValues(c.values)))
}

func formatValues(values []any) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			parts = append(parts, strconv.Quote(s))
			continue
		}
		parts = append(parts, fmt.Sprint(v))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

type arrayOfChecker struct {
	item proptypes.TypeChecker
}

// ArrayOf accepts arrays whose every element satisfies item.
// Elements are reported as `name[i]`.
func ArrayOf(item proptypes.TypeChecker) proptypes.TypeChecker {
	return &arrayOfChecker{item: item}
}

func (c *arrayOfChecker) TypeName() string { return "array" }

func (c *arrayOfChecker) Item() proptypes.TypeChecker { return c.item }

func (c *arrayOfChecker) Validate(props proptypes.Props, propName, propFullName string) error {
	value := props[propName]

	var elems []any
	switch v := value.(type) {
	case []any:
		elems = v
	case nil:
		return invalidType(propName, propFullName, value, "array")
	default:
		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return invalidType(propName, propFullName, value, "array")
		}
		elems = make([]any, rv.Len())
		for i := range elems {
			elems[i] = rv.Index(i).Interface()
		}
	}

	for i, elem := range elems {
		key := strconv.Itoa(i)
		if err := c.item.Validate(proptypes.Props{key: elem}, key, fmt.Sprintf("%s[%d]", propFullName, i)); err != nil {
			return err
		}
	}
	return nil
}

// ShapeType validates objects with declared sub-fields.
// Undeclared keys are ignored unless the shape is exact.
type ShapeType struct {
	fields map[string]proptypes.TypeChecker
	exact  bool
}

// Shape accepts objects whose declared fields satisfy their checkers.
// Field errors are reported as `name.field`.
func Shape(fields map[string]proptypes.TypeChecker) *ShapeType {
	return &ShapeType{fields: fields}
}

// Exact is Shape that also rejects keys missing from fields.
func Exact(fields map[string]proptypes.TypeChecker) *ShapeType {
	return &ShapeType{fields: fields, exact: true}
}

func (s *ShapeType) TypeName() string {
	if s.exact {
		return "exact"
	}
	return "shape"
}

func (s *ShapeType) ShapeFields() map[string]proptypes.TypeChecker {
	return s.fields
}

func (s *ShapeType) Validate(props proptypes.Props, propName, propFullName string) error {
	value := props[propName]
	obj, ok := asProps(value)
	if !ok {
		return invalidType(propName, propFullName, value, "object")
	}

	if s.exact {
		for _, key := range slices.Sorted(maps.Keys(obj)) {
			if _, declared := s.fields[key]; !declared {
				return &proptypes.PropTypeError{
					Prop: propName,
					Message: fmt.Sprintf("Invalid property `%s` key `%s` supplied, valid keys: %s.",
						propFullName, key, strings.Join(slices.Sorted(maps.Keys(s.fields)), ", ")),
					Err: proptypes.ErrUnknownKey,
				}
			}
		}
	}

	for _, key := range slices.Sorted(maps.Keys(s.fields)) {
		checker := s.fields[key]
		if checker == nil {
			continue
		}
		if err := checker.Validate(obj, key, propFullName+"."+key); err != nil {
			return err
		}
	}
	return nil
}

type funcChecker struct {
	name string
	fn   func(value any) error
}

// Func accepts values for which fn returns nil. The returned error message
// becomes the property error message.
func Func(name string, fn func(value any) error) proptypes.TypeChecker {
	return &funcChecker{name: name, fn: fn}
}

func (c *funcChecker) TypeName() string { return c.name }

func (c *funcChecker) Validate(props proptypes.Props, propName, propFullName string) error {
	if err := c.fn(props[propName]); err != nil {
		return invalidValue(propName, fmt.Sprintf("Invalid property `%s` supplied: %s.", propFullName, err.Error()))
	}
	return nil
}
