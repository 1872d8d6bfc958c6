package models

import "testing"

// buildTestTree returns a small organization:
//
//	root: management
//	Workloads: production, staging
//	Workloads/Dev: sandbox
//	Suspended: (empty)
func buildTestTree() *OrgNode {
	root := NewOrgNode()
	root.OrganizationID = "o-abc123"
	root.RootID = "r-x1y2"
	root.RootName = "Root"
	root.Accounts["management"] = Account{ID: "111111111111", Name: "management", OUPath: ""}

	workloads := NewOrgNode()
	workloads.Accounts["production"] = Account{ID: "222222222222", Name: "production", OUPath: "Workloads"}
	workloads.Accounts["staging"] = Account{ID: "333333333333", Name: "staging", OUPath: "Workloads"}
	root.Children["Workloads"] = workloads

	dev := NewOrgNode()
	dev.Accounts["sandbox"] = Account{ID: "444444444444", Name: "sandbox", OUPath: "Workloads/Dev"}
	workloads.Children["Dev"] = dev

	root.Children["Suspended"] = NewOrgNode()

	return root
}

func TestOrgNodeCountAccounts(t *testing.T) {
	tree := buildTestTree()
	if got := tree.CountAccounts(); got != 4 {
		t.Errorf("expected 4 accounts, got %d", got)
	}

	empty := NewOrgNode()
	if got := empty.CountAccounts(); got != 0 {
		t.Errorf("expected 0 accounts in empty tree, got %d", got)
	}
}

func TestOrgNodeFlattenAccounts(t *testing.T) {
	tree := buildTestTree()

	flat := tree.FlattenAccounts()
	if len(flat) != tree.CountAccounts() {
		t.Fatalf("flatten returned %d entries, count is %d", len(flat), tree.CountAccounts())
	}

	byAlias := make(map[string]Account, len(flat))
	for _, entry := range flat {
		byAlias[entry.Alias] = entry.Account
	}

	tests := []struct {
		alias  string
		id     string
		ouPath string
	}{
		{"management", "111111111111", ""},
		{"production", "222222222222", "Workloads"},
		{"staging", "333333333333", "Workloads"},
		{"sandbox", "444444444444", "Workloads/Dev"},
	}

	for _, tt := range tests {
		t.Run(tt.alias, func(t *testing.T) {
			account, ok := byAlias[tt.alias]
			if !ok {
				t.Fatalf("alias %q missing from flattened accounts", tt.alias)
			}
			if account.ID != tt.id {
				t.Errorf("expected id %q, got %q", tt.id, account.ID)
			}
			if account.OUPath != tt.ouPath {
				t.Errorf("expected ou path %q, got %q", tt.ouPath, account.OUPath)
			}
		})
	}
}

func TestOrgNodeFlattenKeepsCollidingAliases(t *testing.T) {
	root := NewOrgNode()

	teamA := NewOrgNode()
	teamA.Accounts["sandbox"] = Account{ID: "111111111111", OUPath: "TeamA"}
	root.Children["TeamA"] = teamA

	teamB := NewOrgNode()
	teamB.Accounts["sandbox"] = Account{ID: "222222222222", OUPath: "TeamB"}
	root.Children["TeamB"] = teamB

	flat := root.FlattenAccounts()
	if len(flat) != 2 {
		t.Fatalf("expected both colliding accounts returned, got %d", len(flat))
	}
}
