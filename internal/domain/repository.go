package domain

// AccountRepository defines the interface for accessing the batch of accounts to activate
type AccountRepository interface {
	// GetAccounts returns the accounts in the order they must be dispatched
	GetAccounts() ([]Account, error)
}
