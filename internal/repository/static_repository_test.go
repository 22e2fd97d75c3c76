package repository_test

import (
	"testing"

	"github.com/tirasundara/activation-service/internal/domain"
	"github.com/tirasundara/activation-service/internal/repository"
)

func TestChainFixture(t *testing.T) {
	accounts, err := repository.ChainFixture().GetAccounts()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(accounts) != 6 {
		t.Fatalf("Expected 6 accounts, got %d", len(accounts))
	}

	if accounts[5].ID != 6 || accounts[5].Action != domain.ActionUnknown {
		t.Errorf("Expected account 6 with unknown action, got %+v", accounts[5])
	}
}

func TestStrategyFixture(t *testing.T) {
	accounts, err := repository.StrategyFixture().GetAccounts()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(accounts) != 5 {
		t.Fatalf("Expected 5 accounts, got %d", len(accounts))
	}

	for _, acc := range accounts {
		if acc.Action == domain.ActionUnknown {
			t.Errorf("Strategy fixture must not contain unknown actions, got account %d", acc.ID)
		}
	}
}

func TestStaticAccountRepository_ReturnsCopy(t *testing.T) {
	repo := repository.NewStaticAccountRepository(domain.Account{ID: 1, Action: domain.ActionCreate})

	first, _ := repo.GetAccounts()
	first[0].ID = 99

	second, _ := repo.GetAccounts()
	if second[0].ID != 1 {
		t.Errorf("Expected repository batch to be unchanged, got ID %d", second[0].ID)
	}
}
