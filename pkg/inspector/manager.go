// Package inspector orchestrates organization discovery, per-account
// resource inventory, and persistence of the results.
package inspector

import (
	"context"
	"sort"
	"sync"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"

	"github.com/provision-iam/aws-inspector/internal/aws"
	"github.com/provision-iam/aws-inspector/internal/cache"
	"github.com/provision-iam/aws-inspector/internal/config"
	"github.com/provision-iam/aws-inspector/internal/errors"
	"github.com/provision-iam/aws-inspector/internal/inventory"
	"github.com/provision-iam/aws-inspector/internal/logger"
	"github.com/provision-iam/aws-inspector/internal/models"

	"go.uber.org/zap"
)

// Manager coordinates the session pool, the account cache, and the
// inventory store for all inspection operations.
type Manager struct {
	pool   *aws.Pool
	cache  *cache.FileCache
	store  *inventory.Store
	config *config.Config
}

// SyncResult summarizes one organization sync
type SyncResult struct {
	OrganizationID string
	AccountsTotal  int
	AccountsSynced int
	AccountsFailed int
	IndexPath      string
}

// NewManager creates a new inspector manager instance
func NewManager(pool *aws.Pool, fileCache *cache.FileCache, store *inventory.Store, cfg *config.Config) *Manager {
	return &Manager{
		pool:   pool,
		cache:  fileCache,
		store:  store,
		config: cfg,
	}
}

// GetAccounts retrieves the flat account list from cache or the
// Organizations API. forceRefresh bypasses the cache read but still
// writes the fresh snapshot back.
func (m *Manager) GetAccounts(ctx context.Context, forceRefresh bool) ([]models.OrgAccount, error) {
	logger.GetLogger().Debug("GetAccounts called", zap.Bool("force_refresh", forceRefresh))

	if !forceRefresh {
		if cached, err := m.cache.GetAccounts(); err == nil {
			logger.GetLogger().Debug("Cache hit in GetAccounts", zap.Int("count", len(cached.Accounts)))
			return cached.Accounts, nil
		} else {
			logger.GetLogger().Debug("Cache miss in GetAccounts", zap.Error(err))
		}
	}

	logger.GetLogger().Debug("Fetching accounts from AWS API")
	cfg, err := m.pool.Get(ctx, m.config.AWS.Profile, m.config.AWS.DefaultRegion)
	if err != nil {
		return nil, errors.NewAWSError("failed to resolve AWS session", err)
	}

	orgClient := aws.NewOrgClient(cfg, m.config.Alias.StripPrefix, m.config.AWS.SSORole)
	accounts, err := orgClient.ListAccounts(ctx)
	if err != nil {
		return nil, errors.NewAWSError("failed to list organization accounts", err)
	}

	if err := m.cache.SetAccounts(accounts, m.config.Cache.AccountsTTLHours); err != nil {
		// Log only; a stale cache is not worth failing the listing.
		logger.GetLogger().Warn("Failed to cache accounts", zap.Error(err))
	}

	return accounts, nil
}

// SyncOrganization walks the OU hierarchy, builds a resource inventory
// for every active account, persists each inventory under its OU-derived
// path, and rewrites the accounts index. Accounts whose inventory fails
// to persist are counted and logged, never fatal to the sync.
func (m *Manager) SyncOrganization(ctx context.Context) (*SyncResult, error) {
	logger.GetLogger().Debug("SyncOrganization called")

	baseCfg, err := m.pool.Get(ctx, m.config.AWS.Profile, m.config.AWS.DefaultRegion)
	if err != nil {
		return nil, errors.NewAWSError("failed to resolve AWS session", err)
	}

	orgClient := aws.NewOrgClient(baseCfg, m.config.Alias.StripPrefix, m.config.AWS.SSORole)
	tree, err := orgClient.DiscoverOrganization(ctx)
	if err != nil {
		return nil, errors.NewAWSError("failed to discover organization", err)
	}
	if tree == nil {
		logger.GetLogger().Warn("No organization found, nothing to sync")
		return &SyncResult{}, nil
	}

	flattened := tree.FlattenAccounts()
	accounts := dedupeAliases(flattened)

	result := &SyncResult{
		OrganizationID: tree.OrganizationID,
		AccountsTotal:  len(accounts),
		IndexPath:      m.store.AccountsConfigPath(),
	}

	indexAccounts := make(map[string]models.Account, len(accounts))

	var wg sync.WaitGroup
	var mu sync.Mutex
	semaphore := make(chan struct{}, m.config.Discovery.MaxConcurrent)

	for _, entry := range accounts {
		wg.Add(1)
		go func(alias string, account models.Account) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			if _, err := m.buildAndSaveInventory(ctx, baseCfg, tree.OrganizationID, account, alias); err != nil {
				logger.GetLogger().Error("Failed to sync account",
					zap.String("alias", alias), zap.String("account_id", account.ID), zap.Error(err))
				mu.Lock()
				result.AccountsFailed++
				// Still index the account; only its inventory is missing.
				indexAccounts[alias] = account
				mu.Unlock()
				return
			}

			account.InventoryPath = inventory.RelativeInventoryPath(account.OUPath, alias)

			mu.Lock()
			result.AccountsSynced++
			indexAccounts[alias] = account
			mu.Unlock()
		}(entry.Alias, entry.Account)
	}

	wg.Wait()

	index := &models.AccountsConfig{
		SchemaVersion:  "2.0",
		OrganizationID: tree.OrganizationID,
		DefaultRegion:  m.config.AWS.DefaultRegion,
		SSOStartURL:    m.config.AWS.SSOStartURL,
		Accounts:       indexAccounts,
	}
	if err := m.store.SaveAccountsConfig(index); err != nil {
		return nil, err
	}

	logger.GetLogger().Info("Organization sync complete",
		zap.String("organization_id", result.OrganizationID),
		zap.Int("total", result.AccountsTotal),
		zap.Int("synced", result.AccountsSynced),
		zap.Int("failed", result.AccountsFailed))

	return result, nil
}

// DiscoverAccount rebuilds and persists the inventory for a single
// account, found by alias in the accounts index.
func (m *Manager) DiscoverAccount(ctx context.Context, alias string) (*models.AccountInventory, error) {
	logger.GetLogger().Debug("DiscoverAccount called", zap.String("alias", alias))

	index, err := m.store.LoadAccountsConfig()
	if err != nil {
		return nil, err
	}
	if index == nil {
		return nil, errors.NewNotFoundError("no accounts index found; run sync first", nil)
	}

	account, err := index.Lookup(alias)
	if err != nil {
		return nil, err
	}

	baseCfg, err := m.pool.Get(ctx, m.config.AWS.Profile, m.config.AWS.DefaultRegion)
	if err != nil {
		return nil, errors.NewAWSError("failed to resolve AWS session", err)
	}

	// Inventory paths are derived from the organization id, which the
	// index records from the last sync.
	orgID := index.OrganizationID
	if orgID == "" {
		orgID, err = aws.NewOrgClient(baseCfg, m.config.Alias.StripPrefix, m.config.AWS.SSORole).OrganizationID(ctx)
		if err != nil {
			return nil, errors.NewAWSError("failed to resolve organization id", err)
		}
		if orgID == "" {
			return nil, errors.NewNotFoundError("account is not part of an organization", nil)
		}
	}

	inv, err := m.buildAndSaveInventory(ctx, baseCfg, orgID, account, alias)
	if err != nil {
		return nil, err
	}
	return inv, nil
}

// GetInventory loads the stored inventory for an account by alias.
// Returns (nil, nil) when none has been written yet.
func (m *Manager) GetInventory(alias string) (*models.AccountInventory, error) {
	index, err := m.store.LoadAccountsConfig()
	if err != nil {
		return nil, err
	}
	if index == nil {
		return nil, errors.NewNotFoundError("no accounts index found; run sync first", nil)
	}

	account, err := index.Lookup(alias)
	if err != nil {
		return nil, err
	}

	return m.store.LoadInventory(index.OrganizationID, account.OUPath, alias)
}

// GetAccountsConfig loads the persisted accounts index
func (m *Manager) GetAccountsConfig() (*models.AccountsConfig, error) {
	return m.store.LoadAccountsConfig()
}

// ClearCache removes the cached account snapshot
func (m *Manager) ClearCache() error {
	return m.cache.Clear()
}

// buildAndSaveInventory runs the full discoverer fan-out against one
// account and persists the result.
func (m *Manager) buildAndSaveInventory(ctx context.Context, baseCfg awssdk.Config, orgID string, account models.Account, alias string) (*models.AccountInventory, error) {
	region := m.config.AWS.DefaultRegion

	cfg := baseCfg
	if m.config.Discovery.RoleName != "" {
		cfg = m.pool.AssumeRole(baseCfg, account.ID, m.config.Discovery.RoleName, region)
	}

	inv := inventory.BuildInventory(ctx, cfg, account.ID, alias, region)

	if err := m.store.SaveInventory(orgID, account.OUPath, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// dedupeAliases resolves alias collisions across OUs: the first account
// seen under an alias wins, later ones are skipped with a warning. The
// order is made deterministic by sorting on (alias, account id).
func dedupeAliases(entries []models.AliasedAccount) []models.AliasedAccount {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Alias != entries[j].Alias {
			return entries[i].Alias < entries[j].Alias
		}
		return entries[i].Account.ID < entries[j].Account.ID
	})

	seen := make(map[string]string, len(entries))
	out := entries[:0]
	for _, entry := range entries {
		if winnerID, ok := seen[entry.Alias]; ok {
			logger.GetLogger().Warn("Alias collision, keeping first account",
				zap.String("alias", entry.Alias),
				zap.String("kept_account_id", winnerID),
				zap.String("skipped_account_id", entry.Account.ID))
			continue
		}
		seen[entry.Alias] = entry.Account.ID
		out = append(out, entry)
	}
	return out
}
