package models

import (
	"testing"
	"time"

	"github.com/provision-iam/aws-inspector/internal/errors"
)

func TestAccountNormalize(t *testing.T) {
	tests := []struct {
		name    string
		account Account
	}{
		{
			name:    "v1 account_number only",
			account: Account{AccountNumber: "123456789012", Name: "prod"},
		},
		{
			name:    "v2 account_id only",
			account: Account{AccountID: "123456789012", Name: "prod"},
		},
		{
			name:    "canonical id only",
			account: Account{ID: "123456789012", Name: "prod"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.account.Normalize()
			if tt.account.ID != "123456789012" {
				t.Errorf("ID: expected 123456789012, got %q", tt.account.ID)
			}
			if tt.account.AccountID != "123456789012" {
				t.Errorf("AccountID: expected 123456789012, got %q", tt.account.AccountID)
			}
			if tt.account.AccountNumber != "123456789012" {
				t.Errorf("AccountNumber: expected 123456789012, got %q", tt.account.AccountNumber)
			}
		})
	}
}

func TestAccountsConfigNormalize(t *testing.T) {
	cfg := AccountsConfig{
		Accounts: map[string]Account{
			"legacy": {AccountNumber: "111111111111"},
			"modern": {AccountID: "222222222222"},
		},
	}

	cfg.Normalize()

	if cfg.SchemaVersion != "1.0" {
		t.Errorf("expected default schema version 1.0, got %q", cfg.SchemaVersion)
	}
	if cfg.Accounts["legacy"].AccountID != "111111111111" {
		t.Errorf("legacy account not normalized: %+v", cfg.Accounts["legacy"])
	}
	if cfg.Accounts["modern"].AccountNumber != "222222222222" {
		t.Errorf("modern account not normalized: %+v", cfg.Accounts["modern"])
	}
	if cfg.Accounts["legacy"].SSORole != DefaultSSORole {
		t.Errorf("expected default SSO role for legacy account, got %q", cfg.Accounts["legacy"].SSORole)
	}
}

func TestAccountsConfigNormalizeKeepsSSORole(t *testing.T) {
	cfg := AccountsConfig{
		Accounts: map[string]Account{
			"restricted": {ID: "333333333333", SSORole: "ReadOnlyAccess"},
		},
	}

	cfg.Normalize()

	if cfg.Accounts["restricted"].SSORole != "ReadOnlyAccess" {
		t.Errorf("explicit SSO role overwritten: %+v", cfg.Accounts["restricted"])
	}
}

func TestAccountsConfigIsV2(t *testing.T) {
	tests := []struct {
		version  string
		expected bool
	}{
		{"", false},
		{"1.0", false},
		{"2.0", true},
		{"2.1", true},
	}

	for _, tt := range tests {
		t.Run("version "+tt.version, func(t *testing.T) {
			cfg := AccountsConfig{SchemaVersion: tt.version}
			cfg.Normalize()
			if got := cfg.IsV2(); got != tt.expected {
				t.Errorf("IsV2(%q): expected %v, got %v", tt.version, tt.expected, got)
			}
		})
	}
}

func TestAccountsConfigLookup(t *testing.T) {
	cfg := AccountsConfig{
		Accounts: map[string]Account{
			"production": {ID: "123456789012", Name: "production"},
		},
	}

	account, err := cfg.Lookup("production")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.ID != "123456789012" {
		t.Errorf("expected 123456789012, got %q", account.ID)
	}

	_, err = cfg.Lookup("missing")
	if err == nil {
		t.Fatal("expected error for missing alias")
	}
	if !errors.IsType(err, errors.ErrorTypeNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestAccountsCacheIsExpired(t *testing.T) {
	tests := []struct {
		name     string
		cache    AccountsCache
		expected bool
	}{
		{
			name: "fresh",
			cache: AccountsCache{
				CachedAt: time.Now().Add(-2 * time.Hour),
				TTLHours: 24,
			},
			expected: false,
		},
		{
			name: "expired",
			cache: AccountsCache{
				CachedAt: time.Now().Add(-25 * time.Hour),
				TTLHours: 24,
			},
			expected: true,
		},
		{
			name: "zero ttl falls back to default",
			cache: AccountsCache{
				CachedAt: time.Now().Add(-2 * time.Hour),
				TTLHours: 0,
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cache.IsExpired(); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
