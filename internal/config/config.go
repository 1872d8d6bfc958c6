package config

import (
	"os"
	"path/filepath"

	"github.com/provision-iam/aws-inspector/internal/errors"
	"github.com/provision-iam/aws-inspector/internal/logger"
	"github.com/provision-iam/aws-inspector/internal/models"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config represents the application configuration
type Config struct {
	Data      DataConfig      `mapstructure:"data"`
	AWS       AWSConfig       `mapstructure:"aws"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Discovery DiscoveryConfig `mapstructure:"discovery"`
	Alias     AliasConfig     `mapstructure:"alias"`
}

// DataConfig locates the inventory tree and the accounts index
type DataConfig struct {
	Root string `mapstructure:"root"`
}

// AWSConfig represents AWS connection configuration
type AWSConfig struct {
	DefaultRegion string `mapstructure:"default_region"`
	SSORegion     string `mapstructure:"sso_region"`
	SSOStartURL   string `mapstructure:"sso_start_url"`
	SSORole       string `mapstructure:"sso_role"`
	Profile       string `mapstructure:"profile"`
}

// CacheConfig represents the local account-cache configuration
type CacheConfig struct {
	Directory        string `mapstructure:"directory"`
	AccountsTTLHours int    `mapstructure:"accounts_ttl_hours"`
}

// DiscoveryConfig controls the per-account inventory fan-out
type DiscoveryConfig struct {
	MaxConcurrent int    `mapstructure:"max_concurrent"`
	RoleName      string `mapstructure:"role_name"`
}

// AliasConfig controls account alias generation
type AliasConfig struct {
	StripPrefix string `mapstructure:"strip_prefix"`
}

// LoadConfig loads configuration from file and environment
func LoadConfig() (*Config, error) {
	viper.SetDefault("data.root", "")
	viper.SetDefault("aws.default_region", "us-east-1")
	viper.SetDefault("aws.sso_region", "")
	viper.SetDefault("aws.sso_start_url", "")
	viper.SetDefault("aws.sso_role", models.DefaultSSORole)
	viper.SetDefault("aws.profile", "")
	viper.SetDefault("cache.directory", getDefaultCacheDir())
	viper.SetDefault("cache.accounts_ttl_hours", 24)
	viper.SetDefault("discovery.max_concurrent", 5)
	viper.SetDefault("discovery.role_name", "")
	viper.SetDefault("alias.strip_prefix", "provision-iam-")

	// Environment bindings. Components other than this package never read
	// the environment directly.
	bindEnvs := map[string]string{
		"data.root":          "AWS_INSPECTOR_DATA_ROOT",
		"aws.default_region": "AWS_DEFAULT_REGION",
		"aws.sso_region":     "AWS_SSO_REGION",
		"aws.sso_start_url":  "AWS_SSO_START_URL",
		"aws.sso_role":       "AWS_SSO_ROLE",
	}
	for key, env := range bindEnvs {
		if err := viper.BindEnv(key, env); err != nil {
			return nil, errors.NewConfigError("failed to bind environment variable "+env, err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, errors.NewConfigError("failed to unmarshal configuration", err)
	}

	config.Data.Root = expandPath(config.Data.Root)
	config.Cache.Directory = expandPath(config.Cache.Directory)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	logger.GetLogger().Debug("Configuration loaded",
		zap.String("data_root", config.Data.Root),
		zap.String("default_region", config.AWS.DefaultRegion),
		zap.String("cache_directory", config.Cache.Directory),
		zap.Int("accounts_ttl_hours", config.Cache.AccountsTTLHours),
		zap.Int("discovery_max_concurrent", config.Discovery.MaxConcurrent))

	return &config, nil
}

// Validate checks the configuration for user-actionable mistakes.
// A missing data root must fail fast rather than silently writing
// inventories to an unexpected location.
func (c *Config) Validate() error {
	if c.Data.Root == "" {
		return errors.NewConfigError(
			"data root not configured: set data.root in the config file or the AWS_INSPECTOR_DATA_ROOT environment variable", nil)
	}
	if c.Cache.AccountsTTLHours <= 0 {
		c.Cache.AccountsTTLHours = 24
	}
	if c.Discovery.MaxConcurrent <= 0 {
		c.Discovery.MaxConcurrent = 5
	}
	if c.AWS.SSORole == "" {
		c.AWS.SSORole = models.DefaultSSORole
	}
	return nil
}

// getDefaultCacheDir returns the default cache directory
func getDefaultCacheDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".aws-inspector/cache"
	}
	return filepath.Join(homeDir, ".aws-inspector", "cache")
}

// expandPath expands tilde (~) in file paths
func expandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' {
		return filepath.Join(homeDir, path[2:])
	}

	return path
}
