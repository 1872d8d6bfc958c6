package aws

import (
	"context"
	"fmt"
	"sync"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/provision-iam/aws-inspector/internal/logger"

	"go.uber.org/zap"
)

type sessionKey struct {
	profile string
	region  string
}

// Pool memoizes resolved AWS configs by (profile, region). It is the only
// shared mutable state in the discovery path and is safe for concurrent use.
type Pool struct {
	mu       sync.Mutex
	sessions map[sessionKey]awssdk.Config
}

// NewPool creates an empty session pool
func NewPool() *Pool {
	return &Pool{sessions: make(map[sessionKey]awssdk.Config)}
}

// Get resolves an authenticated config for the given profile and region.
// Empty profile falls back to the default credential chain (environment
// variables, shared config, instance profile); empty region uses the
// environment's region.
func (p *Pool) Get(ctx context.Context, profile, region string) (awssdk.Config, error) {
	key := sessionKey{profile: profile, region: region}

	p.mu.Lock()
	if cfg, ok := p.sessions[key]; ok {
		p.mu.Unlock()
		return cfg, nil
	}
	p.mu.Unlock()

	var opts []func(*config.LoadOptions) error
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}

	logger.GetLogger().Debug("Resolving AWS session",
		zap.String("profile", profile), zap.String("region", region))

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return awssdk.Config{}, err
	}

	p.mu.Lock()
	p.sessions[key] = cfg
	p.mu.Unlock()

	return cfg, nil
}

// AssumeRole derives a config whose credentials come from assuming the
// given role in the target account. The returned config is not memoized;
// the credentials cache already avoids repeated STS calls.
func (p *Pool) AssumeRole(base awssdk.Config, accountID, roleName, region string) awssdk.Config {
	roleARN := fmt.Sprintf("arn:aws:iam::%s:role/%s", accountID, roleName)

	stsClient := sts.NewFromConfig(base)
	provider := stscreds.NewAssumeRoleProvider(stsClient, roleARN)

	cfg := base.Copy()
	cfg.Credentials = awssdk.NewCredentialsCache(provider)
	if region != "" {
		cfg.Region = region
	}
	return cfg
}

// Clear drops all memoized sessions (test isolation, credential refresh)
func (p *Pool) Clear() {
	p.mu.Lock()
	p.sessions = make(map[sessionKey]awssdk.Config)
	p.mu.Unlock()
}
