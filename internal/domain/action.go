package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAction is returned when text does not name an account action
var ErrUnknownAction = errors.New("unknown account action")

// AccountAction represents the activation category of an account
type AccountAction int

// Account actions. The zero value is not a valid action.
const (
	ActionCreate AccountAction = iota + 1
	ActionMigrate
	ActionPort

	// ActionUnknown is representable but claimed by no handler or strategy
	ActionUnknown
)

var actionNames = map[AccountAction]string{
	ActionCreate:  "create",
	ActionMigrate: "migrate",
	ActionPort:    "port",
	ActionUnknown: "unknown",
}

// String returns the lower-case category name
func (a AccountAction) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("AccountAction(%d)", int(a))
}

// Valid reports whether a is one of the declared categories
func (a AccountAction) Valid() bool {
	_, ok := actionNames[a]
	return ok
}

// ParseAccountAction parses a category name, ignoring case and surrounding spaces
func ParseAccountAction(s string) (AccountAction, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for action, n := range actionNames {
		if n == name {
			return action, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

// MarshalText encodes the action by name, used by the JSON and YAML reports
func (a AccountAction) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAction, int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText decodes an action by name
func (a *AccountAction) UnmarshalText(text []byte) error {
	action, err := ParseAccountAction(string(text))
	if err != nil {
		return err
	}
	*a = action
	return nil
}
