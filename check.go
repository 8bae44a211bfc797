package proptypes

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/mitchellh/mapstructure"
)

// Check validates every declared field of props and aggregates failures.
// Fields are visited in name order so the result is deterministic.
// It returns nil or a ValidationErrors value.
func Check(fields map[string]TypeChecker, props Props) error {
	var errs ValidationErrors

	for _, name := range slices.Sorted(maps.Keys(fields)) {
		checker := fields[name]
		if checker == nil {
			errs.Add(&PropTypeError{
				Prop:    name,
				Message: fmt.Sprintf("The property `%s` has no type checker.", name),
				Err:     ErrNilChecker,
			})
			continue
		}

		err := checker.Validate(props, name, name)
		if err == nil {
			continue
		}

		// Entries are keyed by the declared field; nested failures keep
		// their qualified name in the message only.
		msg := err.Error()
		var propErr *PropTypeError
		if errors.As(err, &propErr) {
			msg = propErr.Message
		}
		errs.Add(&PropTypeError{Prop: name, Message: msg, Err: err})
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// ApplyDefaults returns a copy of props where every absent field with a
// stored default receives it. Present values, including explicit nulls, are
// kept. Nested shapes are filled when their value is an object.
// The input map is never modified.
func ApplyDefaults(fields map[string]TypeChecker, props Props) Props {
	out := make(Props, len(props)+len(fields))
	maps.Copy(out, props)

	for name, checker := range fields {
		chain, ok := checker.(*ChainableChecker)
		if !ok {
			continue
		}

		value, present := out[name]
		if !present {
			if def, ok := chain.DefaultValue(); ok {
				out[name] = def
			}
			continue
		}

		nested, ok := chain.Fields()
		if !ok {
			continue
		}
		switch v := value.(type) {
		case Props:
			out[name] = ApplyDefaults(nested, v)
		case map[string]any:
			out[name] = map[string]any(ApplyDefaults(nested, Props(v)))
		}
	}

	return out
}

// Decode validates props, fills defaults and decodes the result into out,
// which must be a non-nil pointer. Struct fields are matched with the "prop"
// tag, falling back to case-insensitive field names.
func Decode(fields map[string]TypeChecker, props Props, out any) error {
	if err := Check(fields, props); err != nil {
		return err
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "prop",
		Result:  out,
	})
	if err != nil {
		return errors.Join(ErrDecode, err)
	}

	if err := decoder.Decode(map[string]any(ApplyDefaults(fields, props))); err != nil {
		return errors.Join(ErrDecode, err)
	}
	return nil
}
