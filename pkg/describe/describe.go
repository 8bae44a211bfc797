package describe

import (
	"fmt"

	"github.com/dmitrymomot/proptypes"
	"github.com/dmitrymomot/proptypes/pkg/checkers"
)

// Descriptor is a serializable view of a checker tree.
type Descriptor struct {
	Type       string                 `json:"type" yaml:"type"`
	Required   bool                   `json:"required,omitempty" yaml:"required,omitempty"`
	Nullable   bool                   `json:"nullable,omitempty" yaml:"nullable,omitempty"`
	Model      bool                   `json:"model,omitempty" yaml:"model,omitempty"`
	HasDefault bool                   `json:"has_default,omitempty" yaml:"has_default,omitempty"`
	Default    any                    `json:"default,omitempty" yaml:"default,omitempty"`
	Values     []any                  `json:"values,omitempty" yaml:"values,omitempty"`
	Fields     map[string]*Descriptor `json:"fields,omitempty" yaml:"fields,omitempty"`
	Items      *Descriptor            `json:"items,omitempty" yaml:"items,omitempty"`
}

// valuer is implemented by enumeration checkers such as checkers.OneOf.
type valuer interface {
	Values() []any
}

// Describe builds the descriptor of c, recursing into shapes and arrays.
// Flags of nested ChainableCheckers accumulate onto the same descriptor.
func Describe(c proptypes.TypeChecker) *Descriptor {
	if c == nil {
		return &Descriptor{Type: "unknown"}
	}

	if chain, ok := c.(*proptypes.ChainableChecker); ok {
		d := Describe(chain.TypeChecker())
		d.Required = d.Required || chain.IsRequired()
		d.Nullable = d.Nullable || chain.IsNullable()
		d.Model = d.Model || chain.IsModel()
		if def, ok := chain.DefaultValue(); ok {
			d.Default = def
			d.HasDefault = true
		}
		return d
	}

	d := &Descriptor{Type: typeName(c)}

	if shape, ok := c.(proptypes.ShapeChecker); ok {
		d.Fields = DescribeFields(shape.ShapeFields())
	}
	if arr, ok := c.(checkers.Itemizer); ok {
		d.Items = Describe(arr.Item())
	}
	if enum, ok := c.(valuer); ok {
		d.Values = enum.Values()
	}
	return d
}

// DescribeFields describes each checker of a field mapping.
func DescribeFields(fields map[string]proptypes.TypeChecker) map[string]*Descriptor {
	out := make(map[string]*Descriptor, len(fields))
	for name, c := range fields {
		out[name] = Describe(c)
	}
	return out
}

func typeName(c proptypes.TypeChecker) string {
	if named, ok := c.(checkers.Named); ok {
		return named.TypeName()
	}
	return fmt.Sprintf("%T", c)
}
