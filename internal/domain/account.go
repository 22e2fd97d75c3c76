package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Account represents an account waiting for activation.
// Accounts are values: dispatch never mutates them.
type Account struct {
	ID      int             `json:"id" yaml:"id"`
	Action  AccountAction   `json:"action" yaml:"action"`
	Balance decimal.Decimal `json:"balance" yaml:"balance"` // Carried for display, never inspected by dispatch
}

var noticeTemplates = map[AccountAction]string{
	ActionCreate:  "Creating an account with ID: %d",
	ActionMigrate: "Migrating an account with ID: %d",
	ActionPort:    "Porting an account with ID: %d",
}

// Notice returns the message emitted when an account with the given action is activated.
// It returns false for actions that have no activation behavior.
func Notice(action AccountAction, id int) (string, bool) {
	tmpl, ok := noticeTemplates[action]
	if !ok {
		return "", false
	}
	return fmt.Sprintf(tmpl, id), true
}
