package strategy

import (
	"io"

	"github.com/tirasundara/activation-service/internal/domain"
)

// Selector maps an account action to the strategy that activates it.
// It is used by callers of Context; the context itself does no selection.
type Selector struct {
	strategies map[domain.AccountAction]ActivationStrategy
}

// NewSelector creates a Selector with the create, migrate and port strategies
func NewSelector(out io.Writer) *Selector {
	return NewSelectorWith(
		NewCreateStrategy(out),
		NewMigrateStrategy(out),
		NewPortStrategy(out),
	)
}

// NewSelectorWith creates a Selector from the given strategies.
// A later strategy replaces an earlier one claiming the same action.
func NewSelectorWith(strategies ...ActivationStrategy) *Selector {
	sel := &Selector{
		strategies: make(map[domain.AccountAction]ActivationStrategy, len(strategies)),
	}
	for _, s := range strategies {
		sel.strategies[s.Action()] = s
	}
	return sel
}

// Select returns the strategy for action, or false when none exists
func (s *Selector) Select(action domain.AccountAction) (ActivationStrategy, bool) {
	st, ok := s.strategies[action]
	return st, ok
}
