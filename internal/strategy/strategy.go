package strategy

import (
	"fmt"
	"io"

	"github.com/tirasundara/activation-service/internal/domain"
)

// ActivationStrategy defines a strategy for activating an account.
// A strategy does no matching of its own: it activates whatever account it is given.
type ActivationStrategy interface {
	domain.Activator

	// Dispatch activates account and returns the line it wrote
	Dispatch(account domain.Account) string

	Action() domain.AccountAction
}

// CreateStrategy activates accounts that must be created
type CreateStrategy struct {
	out io.Writer
}

// NewCreateStrategy creates a new CreateStrategy writing notices to out
func NewCreateStrategy(out io.Writer) *CreateStrategy {
	return &CreateStrategy{out: out}
}

// Activate implements the ActivationStrategy interface
func (s *CreateStrategy) Activate(account domain.Account) {
	s.Dispatch(account)
}

// Dispatch implements the ActivationStrategy interface
func (s *CreateStrategy) Dispatch(account domain.Account) string {
	return emit(s.out, domain.ActionCreate, account)
}

// Action implements the ActivationStrategy interface
func (s *CreateStrategy) Action() domain.AccountAction {
	return domain.ActionCreate
}

// MigrateStrategy activates accounts that must be migrated
type MigrateStrategy struct {
	out io.Writer
}

// NewMigrateStrategy creates a new MigrateStrategy writing notices to out
func NewMigrateStrategy(out io.Writer) *MigrateStrategy {
	return &MigrateStrategy{out: out}
}

// Activate implements the ActivationStrategy interface
func (s *MigrateStrategy) Activate(account domain.Account) {
	s.Dispatch(account)
}

// Dispatch implements the ActivationStrategy interface
func (s *MigrateStrategy) Dispatch(account domain.Account) string {
	return emit(s.out, domain.ActionMigrate, account)
}

// Action implements the ActivationStrategy interface
func (s *MigrateStrategy) Action() domain.AccountAction {
	return domain.ActionMigrate
}

// PortStrategy activates accounts that must be ported
type PortStrategy struct {
	out io.Writer
}

// NewPortStrategy creates a new PortStrategy writing notices to out
func NewPortStrategy(out io.Writer) *PortStrategy {
	return &PortStrategy{out: out}
}

// Activate implements the ActivationStrategy interface
func (s *PortStrategy) Activate(account domain.Account) {
	s.Dispatch(account)
}

// Dispatch implements the ActivationStrategy interface
func (s *PortStrategy) Dispatch(account domain.Account) string {
	return emit(s.out, domain.ActionPort, account)
}

// Action implements the ActivationStrategy interface
func (s *PortStrategy) Action() domain.AccountAction {
	return domain.ActionPort
}

// emit writes the notice of the strategy's own action, regardless of account.Action
func emit(out io.Writer, action domain.AccountAction, account domain.Account) string {
	msg, _ := domain.Notice(action, account.ID)
	fmt.Fprintln(out, msg)
	return msg
}
