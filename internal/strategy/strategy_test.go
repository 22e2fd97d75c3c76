package strategy_test

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/tirasundara/activation-service/internal/domain"
	"github.com/tirasundara/activation-service/internal/strategy"
)

func TestCreateStrategy(t *testing.T) {
	var buf bytes.Buffer
	s := strategy.NewCreateStrategy(&buf)

	s.Activate(domain.Account{ID: 1, Action: domain.ActionCreate, Balance: decimal.NewFromFloat(20000.00)})

	if buf.String() != "Creating an account with ID: 1\n" {
		t.Errorf("Expected create notice, got %q", buf.String())
	}

	if s.Action() != domain.ActionCreate {
		t.Errorf("Expected action create, got %s", s.Action())
	}
}

func TestMigrateStrategy(t *testing.T) {
	var buf bytes.Buffer
	s := strategy.NewMigrateStrategy(&buf)

	s.Activate(domain.Account{ID: 2, Action: domain.ActionMigrate, Balance: decimal.NewFromFloat(15000.00)})

	if buf.String() != "Migrating an account with ID: 2\n" {
		t.Errorf("Expected migrate notice, got %q", buf.String())
	}
}

func TestPortStrategy(t *testing.T) {
	var buf bytes.Buffer
	s := strategy.NewPortStrategy(&buf)

	s.Activate(domain.Account{ID: 3, Action: domain.ActionPort, Balance: decimal.NewFromFloat(5000.00)})

	if buf.String() != "Porting an account with ID: 3\n" {
		t.Errorf("Expected port notice, got %q", buf.String())
	}
}

func TestStrategyDoesNotMatch(t *testing.T) {
	var buf bytes.Buffer
	s := strategy.NewPortStrategy(&buf)

	// Selection is the caller's job: a mismatched strategy still runs its own behavior
	s.Activate(domain.Account{ID: 4, Action: domain.ActionMigrate})

	if buf.String() != "Porting an account with ID: 4\n" {
		t.Errorf("Expected port notice for mismatched account, got %q", buf.String())
	}
}

func TestStrategyDispatchReturnsWrittenLine(t *testing.T) {
	var buf bytes.Buffer
	s := strategy.NewMigrateStrategy(&buf)

	msg := s.Dispatch(domain.Account{ID: 8, Action: domain.ActionMigrate})

	if msg != "Migrating an account with ID: 8" {
		t.Errorf("Expected migrate notice, got %q", msg)
	}

	if buf.String() != msg+"\n" {
		t.Errorf("Expected written line %q, got %q", msg+"\n", buf.String())
	}
}
