package repository

import (
	"github.com/shopspring/decimal"

	"github.com/tirasundara/activation-service/internal/domain"
)

// StaticAccountRepository serves a fixed, in-memory batch of accounts
type StaticAccountRepository struct {
	accounts []domain.Account
}

// NewStaticAccountRepository creates a repository over the given accounts
func NewStaticAccountRepository(accounts ...domain.Account) *StaticAccountRepository {
	return &StaticAccountRepository{accounts: accounts}
}

// GetAccounts implements the AccountRepository interface.
// It returns a copy so callers cannot alter the batch.
func (r *StaticAccountRepository) GetAccounts() ([]domain.Account, error) {
	out := make([]domain.Account, len(r.accounts))
	copy(out, r.accounts)
	return out, nil
}

// ChainFixture returns the demo batch for the chain variant, including an account
// with the unknown action that no handler claims
func ChainFixture() *StaticAccountRepository {
	return NewStaticAccountRepository(append(strategyAccounts(),
		domain.Account{ID: 6, Action: domain.ActionUnknown, Balance: decimal.Zero},
	)...)
}

// StrategyFixture returns the demo batch for the strategy variant
func StrategyFixture() *StaticAccountRepository {
	return NewStaticAccountRepository(strategyAccounts()...)
}

func strategyAccounts() []domain.Account {
	return []domain.Account{
		{ID: 1, Action: domain.ActionCreate, Balance: decimal.RequireFromString("20000.00")},
		{ID: 2, Action: domain.ActionMigrate, Balance: decimal.RequireFromString("15000.00")},
		{ID: 3, Action: domain.ActionPort, Balance: decimal.RequireFromString("5000.00")},
		{ID: 4, Action: domain.ActionMigrate, Balance: decimal.RequireFromString("25000.00")},
		{ID: 5, Action: domain.ActionCreate, Balance: decimal.RequireFromString("30000.00")},
	}
}
