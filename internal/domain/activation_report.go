package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DispatchMode names the dispatch variant that produced a report
type DispatchMode string

// Dispatch modes
const (
	ModeChain    DispatchMode = "chain"
	ModeStrategy DispatchMode = "strategy"
)

// ActivationRecord is the outcome of dispatching a single account
type ActivationRecord struct {
	Account Account `json:"account" yaml:"account"`
	Handled bool    `json:"handled" yaml:"handled"`
	Message string  `json:"message,omitempty" yaml:"message,omitempty"`
}

// ActivationReport contains the result of one pass over a batch of accounts
type ActivationReport struct {
	RunID         uuid.UUID          `json:"run_id" yaml:"run_id"`
	Mode          DispatchMode       `json:"mode" yaml:"mode"`
	TotalAccounts int                `json:"total_accounts" yaml:"total_accounts"`
	Handled       int                `json:"handled" yaml:"handled"`
	Unhandled     int                `json:"unhandled" yaml:"unhandled"`
	Records       []ActivationRecord `json:"records" yaml:"records"`
	TotalBalance  decimal.Decimal    `json:"total_balance" yaml:"total_balance"` // Sum over handled accounts only
}
