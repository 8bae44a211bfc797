// Package proptypes validates property maps against declared type checkers.
//
// A TypeChecker validates one property of a Props map. ChainableChecker wraps
// any TypeChecker and decides what happens before the wrapped check runs:
//
//   - an absent key fails only when the checker is Required;
//   - an explicit nil value fails unless the checker is Nullable;
//   - any other value is handed to the wrapped checker, whose result is
//     returned as is.
//
// Wrapped checkers therefore never see absent or null values. Since a
// ChainableChecker is itself a TypeChecker, it can be nested inside shapes,
// arrays or even another ChainableChecker.
//
// # Usage
//
//	fields := map[string]proptypes.TypeChecker{
//	    "name": proptypes.New(checkers.String()).Required(),
//	    "bio":  proptypes.New(checkers.String()).Nullable().Default(nil),
//	    "team": proptypes.New(checkers.Shape(teamFields)).Model(),
//	}
//
//	if err := proptypes.Check(fields, props); err != nil {
//	    if verrs := proptypes.ExtractValidationErrors(err); verrs != nil {
//	        // verrs.Get("name"), verrs.Details(), ...
//	    }
//	}
//
// Required, Nullable and Model return copies, so a checker can be reused in
// several shapes safely. Default is different: it stores the value on the
// receiver and returns it, so every shape holding that pointer sees the new
// default. Configure checkers once, then validate concurrently.
//
// # Introspection
//
// TypeChecker, Fields, DefaultValue, IsRequired, IsNullable and IsModel expose
// the configuration to tooling such as pkg/describe and to ApplyDefaults.
//
// # Error Handling
//
// Validate returns errors as values. The chainable checker produces
// *PropTypeError values wrapping ErrMissingRequired or ErrNullNotAllowed;
// errors of wrapped checkers pass through untouched. Check collects the
// per-property errors into ValidationErrors keyed by the declared field
// name, which supports errors.Is and errors.As on the individual failures.
package proptypes
