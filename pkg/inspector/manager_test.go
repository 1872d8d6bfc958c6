package inspector

import (
	"testing"

	"github.com/provision-iam/aws-inspector/internal/models"
)

func TestDedupeAliases(t *testing.T) {
	entries := []models.AliasedAccount{
		{Alias: "sandbox", Account: models.Account{ID: "222222222222", OUPath: "TeamB"}},
		{Alias: "production", Account: models.Account{ID: "333333333333", OUPath: "Workloads"}},
		{Alias: "sandbox", Account: models.Account{ID: "111111111111", OUPath: "TeamA"}},
	}

	out := dedupeAliases(entries)

	if len(out) != 2 {
		t.Fatalf("expected 2 entries after dedupe, got %d", len(out))
	}

	byAlias := make(map[string]models.Account, len(out))
	for _, entry := range out {
		byAlias[entry.Alias] = entry.Account
	}

	// Deterministic first-wins: lowest account id under the alias survives.
	if byAlias["sandbox"].ID != "111111111111" {
		t.Errorf("expected account 111111111111 to win the sandbox alias, got %q", byAlias["sandbox"].ID)
	}
	if byAlias["production"].ID != "333333333333" {
		t.Errorf("production entry lost: %+v", byAlias["production"])
	}
}

func TestDedupeAliasesNoCollisions(t *testing.T) {
	entries := []models.AliasedAccount{
		{Alias: "b", Account: models.Account{ID: "222222222222"}},
		{Alias: "a", Account: models.Account{ID: "111111111111"}},
	}

	out := dedupeAliases(entries)
	if len(out) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(out))
	}
	if out[0].Alias != "a" || out[1].Alias != "b" {
		t.Errorf("expected sorted output, got %v, %v", out[0].Alias, out[1].Alias)
	}
}

func TestDedupeAliasesEmpty(t *testing.T) {
	if out := dedupeAliases(nil); len(out) != 0 {
		t.Errorf("expected empty result, got %v", out)
	}
}
