package repository

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tirasundara/activation-service/internal/domain"
	"github.com/tirasundara/activation-service/pkg/fileutil"
)

var accountHeaderFields = []string{"id", "action", "balance"}

// CSVAccountRepository implements the AccountRepository interface for CSV files
type CSVAccountRepository struct {
	FilePath string
	logger   *zap.Logger
}

// NewCSVAccountRepository creates a new CSVAccountRepository.
// A nil logger discards row warnings.
func NewCSVAccountRepository(filePath string, logger *zap.Logger) *CSVAccountRepository {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &CSVAccountRepository{
		FilePath: filePath,
		logger:   logger,
	}
}

// GetAccounts implements the AccountRepository interface.
// Rows that cannot be parsed are skipped with a warning; file order is preserved.
func (r *CSVAccountRepository) GetAccounts() ([]domain.Account, error) {
	reader := fileutil.NewCSVReader(r.FilePath)

	header, err := reader.ReadHeader()
	if err != nil {
		return nil, fmt.Errorf("reading accounts header: %w", err)
	}

	columnMap, err := createHeaderMap(header, accountHeaderFields)
	if err != nil {
		return nil, fmt.Errorf("mapping CSV columns: %w", err)
	}
	maxIndex := maxColumnIndex(columnMap)

	accounts := make([]domain.Account, 0)
	var rowProcessorFn = func(line int, row []string) error {
		// Skip if row doesn't have enough fields
		if len(row) <= maxIndex {
			r.logger.Warn("skipping short row", zap.String("file", r.FilePath), zap.Int("line", line))
			return nil
		}

		id, err := strconv.Atoi(strings.TrimSpace(row[columnMap["id"]]))
		if err != nil {
			r.logger.Warn("invalid account id", zap.Int("line", line), zap.Error(err))
			return nil
		}

		action, err := domain.ParseAccountAction(row[columnMap["action"]])
		if err != nil {
			r.logger.Warn("invalid account action", zap.Int("line", line), zap.Error(err))
			return nil
		}

		balance, err := decimal.NewFromString(strings.TrimSpace(row[columnMap["balance"]]))
		if err != nil {
			r.logger.Warn("invalid balance", zap.Int("line", line), zap.Error(err))
			return nil
		}

		accounts = append(accounts, domain.Account{
			ID:      id,
			Action:  action,
			Balance: balance,
		})
		return nil
	}

	if err := reader.ReadAndProcessByRow(rowProcessorFn); err != nil {
		return nil, fmt.Errorf("processing accounts: %w", err)
	}

	return accounts, nil
}
