package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tirasundara/activation-service/internal/chain"
	"github.com/tirasundara/activation-service/internal/domain"
	"github.com/tirasundara/activation-service/internal/strategy"
)

// dispatcher activates one account and reports the message it produced
type dispatcher interface {
	dispatch(account domain.Account) (string, bool)
}

// ActivationService drives a batch of accounts through one dispatch variant
type ActivationService struct {
	repo       domain.AccountRepository
	mode       domain.DispatchMode
	dispatcher dispatcher
	logger     *zap.Logger
	newRunID   func() uuid.UUID
}

// Option configures an ActivationService
type Option func(*ActivationService)

// WithLogger sets the service logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *ActivationService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRunIDGenerator overrides how report run IDs are generated
func WithRunIDGenerator(fn func() uuid.UUID) Option {
	return func(s *ActivationService) {
		if fn != nil {
			s.newRunID = fn
		}
	}
}

func newActivationService(repo domain.AccountRepository, mode domain.DispatchMode, d dispatcher, opts ...Option) *ActivationService {
	s := &ActivationService{
		repo:       repo,
		mode:       mode,
		dispatcher: d,
		logger:     zap.NewNop(),
		newRunID:   uuid.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewChainActivationService creates a service that hands every account to the head of a chain
func NewChainActivationService(repo domain.AccountRepository, head *chain.Handler, opts ...Option) *ActivationService {
	return newActivationService(repo, domain.ModeChain, chainDispatcher{head: head}, opts...)
}

// NewStrategyActivationService creates a service that selects a strategy per account,
// assigns it to ctx and then activates through ctx
func NewStrategyActivationService(
	repo domain.AccountRepository,
	ctx *strategy.Context,
	selector *strategy.Selector,
	opts ...Option,
) *ActivationService {
	return newActivationService(repo, domain.ModeStrategy, strategyDispatcher{ctx: ctx, selector: selector}, opts...)
}

// Mode returns the dispatch variant used by the service
func (s *ActivationService) Mode() domain.DispatchMode {
	return s.mode
}

// Run activates every account in repository order and returns a report of the pass
func (s *ActivationService) Run() (domain.ActivationReport, error) {
	accounts, err := s.repo.GetAccounts()
	if err != nil {
		return domain.ActivationReport{}, fmt.Errorf("fetching accounts: %w", err)
	}

	report := domain.ActivationReport{
		RunID:         s.newRunID(),
		Mode:          s.mode,
		TotalAccounts: len(accounts),
		Records:       make([]domain.ActivationRecord, 0, len(accounts)),
		TotalBalance:  decimal.Zero,
	}

	logger := s.logger.With(zap.Stringer("run_id", report.RunID), zap.String("mode", string(s.mode)))
	logger.Info("activation started", zap.Int("accounts", len(accounts)))

	for _, account := range accounts {
		msg, handled := s.dispatcher.dispatch(account)

		logger.Debug("account dispatched",
			zap.Int("account_id", account.ID),
			zap.Stringer("action", account.Action),
			zap.Bool("handled", handled),
		)

		report.Records = append(report.Records, domain.ActivationRecord{
			Account: account,
			Handled: handled,
			Message: msg,
		})

		if handled {
			report.Handled++
			report.TotalBalance = report.TotalBalance.Add(account.Balance)
		} else {
			report.Unhandled++
		}
	}

	logger.Info("activation finished",
		zap.Int("handled", report.Handled),
		zap.Int("unhandled", report.Unhandled),
	)

	return report, nil
}

type chainDispatcher struct {
	head *chain.Handler
}

func (d chainDispatcher) dispatch(account domain.Account) (string, bool) {
	return d.head.Dispatch(account)
}

type strategyDispatcher struct {
	ctx      *strategy.Context
	selector *strategy.Selector
}

func (d strategyDispatcher) dispatch(account domain.Account) (string, bool) {
	// A nil strategy clears the slot so a previous account's strategy is never reused
	s, _ := d.selector.Select(account.Action)
	d.ctx.SetStrategy(s)
	return d.ctx.Dispatch(account)
}
