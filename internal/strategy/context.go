package strategy

import (
	"github.com/tirasundara/activation-service/internal/domain"
)

// Context holds the currently selected strategy and delegates to it.
// It never chooses a strategy itself; the caller assigns one before each call.
type Context struct {
	strategy ActivationStrategy
}

// NewContext creates a Context with no strategy assigned
func NewContext() *Context {
	return &Context{}
}

// SetStrategy assigns the strategy used by the next Activate call. Nil clears the slot.
func (c *Context) SetStrategy(s ActivationStrategy) {
	c.strategy = s
}

// Strategy returns the currently assigned strategy, or nil
func (c *Context) Strategy() ActivationStrategy {
	return c.strategy
}

// Activate implements the domain.Activator interface.
// It is a no-op while no strategy is assigned.
func (c *Context) Activate(account domain.Account) {
	c.Dispatch(account)
}

// Dispatch delegates to the assigned strategy and returns the line it wrote.
// It returns false while no strategy is assigned.
func (c *Context) Dispatch(account domain.Account) (string, bool) {
	if c.strategy == nil {
		return "", false
	}
	return c.strategy.Dispatch(account), true
}
