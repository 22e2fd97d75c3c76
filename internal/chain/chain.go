package chain

import (
	"errors"
	"fmt"
	"io"

	"github.com/tirasundara/activation-service/internal/domain"
)

var (
	// ErrDuplicateHandler is returned when two nodes in one chain claim the same action
	ErrDuplicateHandler = errors.New("action already claimed by another handler")

	// ErrUnclaimableAction is returned when a chain is configured with an action no handler can claim
	ErrUnclaimableAction = errors.New("no handler can claim action")
)

// DefaultOrder is the handler order used when none is configured
var DefaultOrder = []domain.AccountAction{
	domain.ActionCreate,
	domain.ActionMigrate,
	domain.ActionPort,
}

// NewChain links the given handlers in order and returns the head.
// It returns nil when no handlers are given.
func NewChain(handlers ...*Handler) *Handler {
	if len(handlers) == 0 {
		return nil
	}

	for i := 0; i < len(handlers)-1; i++ {
		handlers[i].SetNext(handlers[i+1])
	}
	handlers[len(handlers)-1].SetNext(nil)

	return handlers[0]
}

// NewChainFromActions builds a chain with one handler per action, in the given order
func NewChainFromActions(out io.Writer, actions []domain.AccountAction, opts ...Option) (*Handler, error) {
	if len(actions) == 0 {
		actions = DefaultOrder
	}

	if err := ValidateOrder(actions); err != nil {
		return nil, fmt.Errorf("building chain: %w", err)
	}

	handlers := make([]*Handler, 0, len(actions))
	for _, action := range actions {
		switch action {
		case domain.ActionCreate:
			handlers = append(handlers, NewCreateHandler(out, opts...))
		case domain.ActionMigrate:
			handlers = append(handlers, NewMigrateHandler(out, opts...))
		case domain.ActionPort:
			handlers = append(handlers, NewPortHandler(out, opts...))
		}
	}

	return NewChain(handlers...), nil
}

// ValidateOrder checks that every action can be claimed by a handler and is claimed only once
func ValidateOrder(actions []domain.AccountAction) error {
	claimed := make(map[domain.AccountAction]bool, len(actions))
	for _, action := range actions {
		if _, ok := domain.Notice(action, 0); !ok {
			return fmt.Errorf("%w: %s", ErrUnclaimableAction, action)
		}
		if claimed[action] {
			return fmt.Errorf("%w: %s", ErrDuplicateHandler, action)
		}
		claimed[action] = true
	}
	return nil
}

// ParseOrder converts configured action names to actions
func ParseOrder(names []string) ([]domain.AccountAction, error) {
	actions := make([]domain.AccountAction, 0, len(names))
	for _, name := range names {
		action, err := domain.ParseAccountAction(name)
		if err != nil {
			return nil, fmt.Errorf("parsing chain order: %w", err)
		}
		actions = append(actions, action)
	}
	return actions, nil
}
