package common

import (
	"fmt"

	"github.com/provision-iam/aws-inspector/internal/aws"
	"github.com/provision-iam/aws-inspector/internal/cache"
	"github.com/provision-iam/aws-inspector/internal/config"
	"github.com/provision-iam/aws-inspector/internal/inventory"
	"github.com/provision-iam/aws-inspector/pkg/inspector"
)

// CommonSetup contains all the common components needed by commands
type CommonSetup struct {
	Config    *config.Config
	Pool      *aws.Pool
	FileCache *cache.FileCache
	Store     *inventory.Store
	Manager   *inspector.Manager
}

// NewCommonSetup initializes the components shared by every command:
// configuration, the session pool, the account cache, the inventory
// store, and the manager wired over them.
func NewCommonSetup() (*CommonSetup, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	pool := aws.NewPool()
	fileCache := cache.NewFileCache(cfg.Cache.Directory)
	store := inventory.NewStore(cfg.Data.Root)
	manager := inspector.NewManager(pool, fileCache, store, cfg)

	return &CommonSetup{
		Config:    cfg,
		Pool:      pool,
		FileCache: fileCache,
		Store:     store,
		Manager:   manager,
	}, nil
}
