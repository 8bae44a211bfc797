package checkers

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/proptypes"
)

// formatChecker validates a string against a format predicate.
type formatChecker struct {
	name  string
	valid func(s string) bool
}

func (c *formatChecker) TypeName() string { return c.name }

func (c *formatChecker) Validate(props proptypes.Props, propName, propFullName string) error {
	value := props[propName]
	s, ok := value.(string)
	if !ok {
		return invalidType(propName, propFullName, value, "string")
	}
	if !c.valid(s) {
		return invalidValue(propName,
			fmt.Sprintf("Invalid property `%s` supplied, expected a valid %s.", propFullName, c.name))
	}
	return nil
}

// UUID accepts strings holding a canonical, hyphenated UUID.
func UUID() proptypes.TypeChecker {
	return &formatChecker{name: "uuid", valid: func(s string) bool {
		// uuid.Parse also accepts urn and braced forms.
		if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
			return false
		}
		_, err := uuid.Parse(s)
		return err == nil
	}}
}

// Email accepts strings holding a single RFC 5322 address with a dotted domain.
func Email() proptypes.TypeChecker {
	return &formatChecker{name: "email", valid: validEmail}
}

func validEmail(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}

	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	return !strings.Contains(domain, "..")
}
