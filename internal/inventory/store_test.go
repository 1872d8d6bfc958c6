package inventory

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/provision-iam/aws-inspector/internal/models"
)

func TestInventoryPath(t *testing.T) {
	store := NewStore("/data")

	tests := []struct {
		name     string
		orgID    string
		ouPath   string
		alias    string
		expected string
	}{
		{
			name:     "nested ou",
			orgID:    "o-abc123",
			ouPath:   "dev/team-a",
			alias:    "sandbox",
			expected: filepath.Join("/data", "o-abc123", "dev", "team-a", "sandbox.yml"),
		},
		{
			name:     "root attached account",
			orgID:    "o-abc123",
			ouPath:   "",
			alias:    "management",
			expected: filepath.Join("/data", "o-abc123", "management.yml"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := store.InventoryPath(tt.orgID, tt.ouPath, tt.alias); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestRelativeInventoryPath(t *testing.T) {
	tests := []struct {
		name     string
		ouPath   string
		alias    string
		expected string
	}{
		{"nested", "Workloads/Dev", "sandbox", "Workloads/Dev/sandbox.yml"},
		{"root", "", "management", "management.yml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RelativeInventoryPath(tt.ouPath, tt.alias); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestSaveLoadInventory(t *testing.T) {
	store := NewStore(t.TempDir())

	inv := &models.AccountInventory{
		SchemaVersion: models.InventorySchemaVersion,
		AccountID:     "123456789012",
		AccountAlias:  "sandbox",
		DiscoveredAt:  time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Region:        "us-east-1",
		VPCs: []models.VPC{
			{ID: "vpc-0abc", CIDR: "10.0.0.0/16"},
		},
		S3Buckets: []models.S3Bucket{
			{Name: "my-bucket", ARN: "arn:aws:s3:::my-bucket", Region: "us-east-1"},
		},
	}

	if err := store.SaveInventory("o-abc123", "Workloads/Dev", inv); err != nil {
		t.Fatalf("SaveInventory failed: %v", err)
	}

	loaded, err := store.LoadInventory("o-abc123", "Workloads/Dev", "sandbox")
	if err != nil {
		t.Fatalf("LoadInventory failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("expected inventory, got nil")
	}
	if loaded.AccountID != "123456789012" {
		t.Errorf("expected account id 123456789012, got %q", loaded.AccountID)
	}
	if len(loaded.VPCs) != 1 || loaded.VPCs[0].ID != "vpc-0abc" {
		t.Errorf("VPCs not round-tripped: %+v", loaded.VPCs)
	}
	if len(loaded.S3Buckets) != 1 || loaded.S3Buckets[0].Name != "my-bucket" {
		t.Errorf("buckets not round-tripped: %+v", loaded.S3Buckets)
	}
	if !loaded.DiscoveredAt.Equal(inv.DiscoveredAt) {
		t.Errorf("timestamp not round-tripped: %v vs %v", loaded.DiscoveredAt, inv.DiscoveredAt)
	}
	// Untouched resource types come back as empty, never nil.
	if loaded.SQSQueues == nil {
		t.Error("expected empty queue slice, got nil")
	}
}

func TestLoadInventoryAbsent(t *testing.T) {
	store := NewStore(t.TempDir())

	inv, err := store.LoadInventory("o-abc123", "Workloads", "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv != nil {
		t.Errorf("expected nil inventory for absent file, got %+v", inv)
	}
}

func TestLoadInventoryMalformed(t *testing.T) {
	root := t.TempDir()
	store := NewStore(root)

	path := store.InventoryPath("o-abc123", "Workloads", "broken")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(":\tnot yaml"), 0644); err != nil {
		t.Fatalf("writing malformed file failed: %v", err)
	}

	inv, err := store.LoadInventory("o-abc123", "Workloads", "broken")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv != nil {
		t.Errorf("expected malformed file treated as absent, got %+v", inv)
	}
}

func TestSaveLoadAccountsConfig(t *testing.T) {
	store := NewStore(t.TempDir())

	cfg := &models.AccountsConfig{
		SchemaVersion:  "2.0",
		OrganizationID: "o-abc123",
		DefaultRegion:  "us-east-1",
		Accounts: map[string]models.Account{
			"production": {ID: "222222222222", AccountID: "222222222222", AccountNumber: "222222222222",
				Name: "production", OUPath: "Workloads", InventoryPath: "Workloads/production.yml"},
		},
	}

	if err := store.SaveAccountsConfig(cfg); err != nil {
		t.Fatalf("SaveAccountsConfig failed: %v", err)
	}

	loaded, err := store.LoadAccountsConfig()
	if err != nil {
		t.Fatalf("LoadAccountsConfig failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("expected accounts config, got nil")
	}
	if !loaded.IsV2() {
		t.Errorf("expected v2 schema, got %q", loaded.SchemaVersion)
	}
	account, err := loaded.Lookup("production")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if account.InventoryPath != "Workloads/production.yml" {
		t.Errorf("expected inventory path recorded, got %q", account.InventoryPath)
	}
}

func TestLoadAccountsConfigNormalizesLegacySchema(t *testing.T) {
	root := t.TempDir()
	store := NewStore(root)

	// A hand-written v1 file: no schema_version, account_number spelling.
	legacy := `organization_id: o-abc123
accounts:
  production:
    account_number: "222222222222"
    name: production
`
	if err := os.WriteFile(store.AccountsConfigPath(), []byte(legacy), 0644); err != nil {
		t.Fatalf("writing legacy file failed: %v", err)
	}

	loaded, err := store.LoadAccountsConfig()
	if err != nil {
		t.Fatalf("LoadAccountsConfig failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("expected accounts config, got nil")
	}
	if loaded.SchemaVersion != "1.0" {
		t.Errorf("expected default schema version 1.0, got %q", loaded.SchemaVersion)
	}
	account, err := loaded.Lookup("production")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if account.ID != "222222222222" || account.AccountID != "222222222222" {
		t.Errorf("legacy account not normalized: %+v", account)
	}
}

func TestLoadAccountsConfigAbsent(t *testing.T) {
	store := NewStore(t.TempDir())

	cfg, err := store.LoadAccountsConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != nil {
		t.Errorf("expected nil config for absent file, got %+v", cfg)
	}
}

func TestSaveInventoryLeavesNoTempFiles(t *testing.T) {
	root := t.TempDir()
	store := NewStore(root)

	inv := &models.AccountInventory{AccountID: "123456789012", AccountAlias: "sandbox", Region: "us-east-1"}
	if err := store.SaveInventory("o-abc123", "", inv); err != nil {
		t.Fatalf("SaveInventory failed: %v", err)
	}

	entries, err := os.ReadDir(filepath.Join(root, "o-abc123"))
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "sandbox.yml" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("expected only sandbox.yml, got %v", names)
	}
}
