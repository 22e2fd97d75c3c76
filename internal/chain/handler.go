package chain

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/tirasundara/activation-service/internal/domain"
)

// Handler is a node in an activation chain. It claims exactly one action
// and forwards every other account to its successor, if any.
type Handler struct {
	action domain.AccountAction
	out    io.Writer
	logger *zap.Logger
	next   *Handler
}

// Option configures a Handler
type Option func(*Handler)

// WithLogger sets the logger used to trace dispatch decisions
func WithLogger(logger *zap.Logger) Option {
	return func(h *Handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

func newHandler(action domain.AccountAction, out io.Writer, opts ...Option) *Handler {
	h := &Handler{
		action: action,
		out:    out,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// NewCreateHandler creates a handler for accounts that must be created
func NewCreateHandler(out io.Writer, opts ...Option) *Handler {
	return newHandler(domain.ActionCreate, out, opts...)
}

// NewMigrateHandler creates a handler for accounts that must be migrated
func NewMigrateHandler(out io.Writer, opts ...Option) *Handler {
	return newHandler(domain.ActionMigrate, out, opts...)
}

// NewPortHandler creates a handler for accounts that must be ported
func NewPortHandler(out io.Writer, opts ...Option) *Handler {
	return newHandler(domain.ActionPort, out, opts...)
}

// Action returns the action claimed by h
func (h *Handler) Action() domain.AccountAction {
	return h.action
}

// Next returns the successor of h, or nil for the last node
func (h *Handler) Next() *Handler {
	return h.next
}

// SetNext links next as the successor of h and returns next
func (h *Handler) SetNext(next *Handler) *Handler {
	h.next = next
	return next
}

// Activate implements the domain.Activator interface
func (h *Handler) Activate(account domain.Account) {
	h.Dispatch(account)
}

// Dispatch activates account through the chain starting at h and returns the
// line that was written. It returns false when no handler claimed the account.
func (h *Handler) Dispatch(account domain.Account) (string, bool) {
	if h == nil {
		return "", false
	}

	node := h.find(account)
	if node == nil {
		h.logger.Debug("no handler claimed account",
			zap.Int("account_id", account.ID),
			zap.Stringer("action", account.Action),
		)
		return "", false
	}

	msg, _ := domain.Notice(node.action, account.ID)
	fmt.Fprintln(node.out, msg)

	node.logger.Debug("account activated",
		zap.Int("account_id", account.ID),
		zap.Stringer("action", account.Action),
	)
	return msg, true
}

// find walks the chain until a node claims the account's action, logging every hop
func (h *Handler) find(account domain.Account) *Handler {
	for node := h; node != nil; node = node.next {
		if node.action == account.Action {
			return node
		}
		if node.next != nil {
			node.logger.Debug("forwarding account",
				zap.Int("account_id", account.ID),
				zap.Stringer("from", node.action),
				zap.Stringer("to", node.next.action),
			)
		}
	}
	return nil
}
