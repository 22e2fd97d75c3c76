package domain

// Activator defines the single operation shared by both dispatch variants.
// An account nobody claims is a no-op, not an error.
type Activator interface {
	Activate(account Account)
}
