package config

import (
	"testing"

	"github.com/provision-iam/aws-inspector/internal/errors"
	"github.com/provision-iam/aws-inspector/internal/models"
)

func validConfig() *Config {
	return &Config{
		Data:      DataConfig{Root: "/data"},
		AWS:       AWSConfig{DefaultRegion: "us-east-1"},
		Cache:     CacheConfig{Directory: "/tmp/cache", AccountsTTLHours: 24},
		Discovery: DiscoveryConfig{MaxConcurrent: 5},
		Alias:     AliasConfig{StripPrefix: "provision-iam-"},
	}
}

func TestValidateMissingDataRoot(t *testing.T) {
	cfg := validConfig()
	cfg.Data.Root = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing data root")
	}
	if !errors.IsType(err, errors.ErrorTypeConfig) {
		t.Errorf("expected config error, got %v", err)
	}
}

func TestValidateAppliesDefaults(t *testing.T) {
	cfg := validConfig()
	cfg.Cache.AccountsTTLHours = 0
	cfg.Discovery.MaxConcurrent = -1

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Cache.AccountsTTLHours != 24 {
		t.Errorf("expected ttl default 24, got %d", cfg.Cache.AccountsTTLHours)
	}
	if cfg.Discovery.MaxConcurrent != 5 {
		t.Errorf("expected concurrency default 5, got %d", cfg.Discovery.MaxConcurrent)
	}
	if cfg.AWS.SSORole != models.DefaultSSORole {
		t.Errorf("expected default SSO role, got %q", cfg.AWS.SSORole)
	}
}

func TestExpandPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want func(got string) bool
	}{
		{
			name: "absolute path unchanged",
			path: "/data/inventories",
			want: func(got string) bool { return got == "/data/inventories" },
		},
		{
			name: "empty path unchanged",
			path: "",
			want: func(got string) bool { return got == "" },
		},
		{
			name: "tilde expanded",
			path: "~/inventories",
			want: func(got string) bool { return got != "~/inventories" && got != "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := expandPath(tt.path); !tt.want(got) {
				t.Errorf("unexpected expansion of %q: %q", tt.path, got)
			}
		})
	}
}
