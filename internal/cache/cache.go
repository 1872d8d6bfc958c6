package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/provision-iam/aws-inspector/internal/logger"
	"github.com/provision-iam/aws-inspector/internal/models"

	"go.uber.org/zap"
)

const accountsCacheFile = "accounts_cache.json"

const (
	dirPermission  = 0755
	filePermission = 0644
)

// CacheError represents a structured cache error
type CacheError struct {
	Operation string
	Key       string
	Err       error
}

func (e *CacheError) Error() string {
	return fmt.Sprintf("cache %s failed for key %s: %v", e.Operation, e.Key, e.Err)
}

func (e *CacheError) Unwrap() error {
	return e.Err
}

// FileCache is a file-based cache for the flat account snapshot. It is
// distinct from and never synchronized with the inventory tree or the
// accounts index.
type FileCache struct {
	baseDir string
}

// NewFileCache creates a new file cache instance
func NewFileCache(baseDir string) *FileCache {
	return &FileCache{baseDir: baseDir}
}

// GetAccounts returns the cached account snapshot. An absent, unparseable,
// or expired cache file is a miss, reported as an error so callers fall
// through to a full listing.
func (fc *FileCache) GetAccounts() (*models.AccountsCache, error) {
	var cache models.AccountsCache
	if err := fc.getCacheItem(accountsCacheFile, &cache); err != nil {
		return nil, err
	}

	if cache.IsExpired() {
		logger.GetLogger().Debug("Accounts cache expired",
			zap.Time("cached_at", cache.CachedAt), zap.Int("ttl_hours", cache.TTLHours))
		return nil, &CacheError{Operation: "ttl", Key: accountsCacheFile, Err: fmt.Errorf("cache expired")}
	}

	logger.GetLogger().Debug("Accounts cache hit", zap.Int("count", len(cache.Accounts)))
	return &cache, nil
}

// SetAccounts overwrites the snapshot wholesale with a fresh timestamp
func (fc *FileCache) SetAccounts(accounts []models.OrgAccount, ttlHours int) error {
	if ttlHours <= 0 {
		ttlHours = models.DefaultAccountsCacheTTLHours
	}
	cache := models.AccountsCache{
		CachedAt: time.Now(),
		TTLHours: ttlHours,
		Accounts: accounts,
	}
	return fc.setCacheItem(accountsCacheFile, cache)
}

// Clear removes the cache file. A missing file is not an error.
func (fc *FileCache) Clear() error {
	path := filepath.Join(fc.baseDir, accountsCacheFile)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return &CacheError{Operation: "remove", Key: accountsCacheFile, Err: err}
	}
	return nil
}

// getCacheItem reads and unmarshals cache data from file
func (fc *FileCache) getCacheItem(filename string, target interface{}) error {
	cachePath := filepath.Join(fc.baseDir, filename)

	data, err := os.ReadFile(cachePath)
	if err != nil {
		logger.GetLogger().Debug("Failed to read cache file", zap.String("path", cachePath), zap.Error(err))
		return &CacheError{Operation: "read", Key: filename, Err: err}
	}

	if err := json.Unmarshal(data, target); err != nil {
		logger.GetLogger().Debug("Failed to unmarshal cache data", zap.String("file", filename), zap.Error(err))
		return &CacheError{Operation: "unmarshal", Key: filename, Err: err}
	}

	return nil
}

// setCacheItem marshals and writes cache data to file
func (fc *FileCache) setCacheItem(filename string, data interface{}) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return &CacheError{Operation: "marshal", Key: filename, Err: err}
	}

	cachePath := filepath.Join(fc.baseDir, filename)
	if err := os.MkdirAll(filepath.Dir(cachePath), dirPermission); err != nil {
		return &CacheError{Operation: "mkdir", Key: filename, Err: err}
	}

	if err := os.WriteFile(cachePath, jsonData, filePermission); err != nil {
		return &CacheError{Operation: "write", Key: filename, Err: err}
	}

	return nil
}
