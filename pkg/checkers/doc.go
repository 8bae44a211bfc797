// Package checkers provides primitive and composite type checkers that plug
// into proptypes.ChainableChecker.
//
// Every checker validates the value stored under a property name and assumes
// absence and null were already handled by the wrapping ChainableChecker;
// used bare, an absent or null value is reported as type `null`.
//
// # Usage
//
//	user := checkers.Shape(map[string]proptypes.TypeChecker{
//	    "id":    proptypes.New(checkers.UUID()).Required(),
//	    "email": proptypes.New(checkers.Email()).Required(),
//	    "tags":  proptypes.New(checkers.ArrayOf(checkers.String())),
//	})
//
//	err := proptypes.Check(map[string]proptypes.TypeChecker{
//	    "user": proptypes.New(user).Required().Model(),
//	}, props)
//
// # Error Handling
//
// Failures are *proptypes.PropTypeError values wrapping ErrInvalidType,
// ErrInvalidValue or ErrUnknownKey. Composite checkers return the first
// failure of their elements unchanged, with the fully qualified name
// (`user.tags[2]`) in the message.
package checkers
