// Package inventory owns the on-disk inventory tree and the accounts
// index. The store is the sole writer of both; file layout is derived
// from the organization's OU hierarchy, not from flat keys.
package inventory

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/provision-iam/aws-inspector/internal/errors"
	"github.com/provision-iam/aws-inspector/internal/logger"
	"github.com/provision-iam/aws-inspector/internal/models"

	"go.uber.org/zap"
)

const accountsConfigFile = "accounts.yml"

const (
	dirPermission  = 0755
	filePermission = 0644
)

// Store maps (organization id, OU path, account alias) to file locations
// under a single data root.
type Store struct {
	root string
}

// NewStore creates a store rooted at the given data directory
func NewStore(root string) *Store {
	return &Store{root: root}
}

// InventoryPath returns the inventory file location for one account:
// <root>/<orgID>/<ouPath>/<alias>.yml
func (s *Store) InventoryPath(orgID, ouPath, alias string) string {
	return filepath.Join(s.root, orgID, filepath.FromSlash(ouPath), alias+".yml")
}

// AccountsConfigPath returns the accounts index location
func (s *Store) AccountsConfigPath() string {
	return filepath.Join(s.root, accountsConfigFile)
}

// RelativeInventoryPath returns the path recorded in the accounts index,
// relative to the organization directory: "<ouPath>/<alias>.yml"
func RelativeInventoryPath(ouPath, alias string) string {
	if ouPath == "" {
		return alias + ".yml"
	}
	return ouPath + "/" + alias + ".yml"
}

// SaveInventory serializes a full account inventory to its OU-derived
// path, creating parent directories as needed. The write is atomic
// (temp file and rename) so an aborted run never leaves partial files.
func (s *Store) SaveInventory(orgID, ouPath string, inv *models.AccountInventory) error {
	inv.EnsureDefaults()

	data, err := yaml.Marshal(inv)
	if err != nil {
		return errors.NewSerializationError("failed to marshal inventory for "+inv.AccountAlias, err)
	}

	path := s.InventoryPath(orgID, ouPath, inv.AccountAlias)
	if err := writeFileAtomic(path, data); err != nil {
		return errors.NewInternalError("failed to write inventory for "+inv.AccountAlias, err)
	}

	logger.GetLogger().Debug("Saved inventory",
		zap.String("alias", inv.AccountAlias), zap.String("path", path))
	return nil
}

// LoadInventory deserializes one account inventory. An absent or
// unparseable file is treated as no inventory (nil, nil), forcing a
// recompute rather than a crash.
func (s *Store) LoadInventory(orgID, ouPath, alias string) (*models.AccountInventory, error) {
	path := s.InventoryPath(orgID, ouPath, alias)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.GetLogger().Debug("No inventory found", zap.String("path", path))
			return nil, nil
		}
		return nil, errors.NewInternalError("failed to read inventory for "+alias, err)
	}

	var inv models.AccountInventory
	if err := yaml.Unmarshal(data, &inv); err != nil {
		logger.GetLogger().Warn("Malformed inventory file, treating as absent",
			zap.String("path", path), zap.Error(err))
		return nil, nil
	}

	inv.EnsureDefaults()
	return &inv, nil
}

// SaveAccountsConfig serializes the organization-wide accounts index
func (s *Store) SaveAccountsConfig(cfg *models.AccountsConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.NewSerializationError("failed to marshal accounts config", err)
	}

	path := s.AccountsConfigPath()
	if err := writeFileAtomic(path, data); err != nil {
		return errors.NewInternalError("failed to write accounts config", err)
	}

	logger.GetLogger().Debug("Saved accounts config", zap.String("path", path))
	return nil
}

// LoadAccountsConfig deserializes the accounts index, normalizing v1
// (account_number) and v2+ (account_id) field spellings onto every
// account so no caller ever branches on schema version. Returns
// (nil, nil) when the file is absent or unparseable.
func (s *Store) LoadAccountsConfig() (*models.AccountsConfig, error) {
	path := s.AccountsConfigPath()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.GetLogger().Debug("No accounts config found", zap.String("path", path))
			return nil, nil
		}
		return nil, errors.NewInternalError("failed to read accounts config", err)
	}

	var cfg models.AccountsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logger.GetLogger().Warn("Malformed accounts config, treating as absent",
			zap.String("path", path), zap.Error(err))
		return nil, nil
	}

	cfg.Normalize()
	return &cfg, nil
}

// writeFileAtomic writes via a temp file in the target directory and
// renames it into place.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPermission); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, filePermission); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
