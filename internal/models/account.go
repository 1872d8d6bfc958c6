package models

import (
	"strings"

	"github.com/provision-iam/aws-inspector/internal/errors"
)

// DefaultSSORole is the role recorded for an account when no other role
// is configured. Index consumers use it to bootstrap SSO profiles.
const DefaultSSORole = "AdministratorAccess"

// Account represents one AWS account as recorded in the accounts index.
// Three id spellings exist across schema generations: v1 files use
// account_number, v2+ files use account_id, and the canonical key is id.
// Normalize populates all of them so callers never branch on schema version.
type Account struct {
	ID            string `yaml:"id,omitempty"`
	AccountID     string `yaml:"account_id,omitempty"`
	AccountNumber string `yaml:"account_number,omitempty"`
	Name          string `yaml:"name"`
	OUPath        string `yaml:"ou_path,omitempty"`
	SSORole       string `yaml:"sso_role,omitempty"`
	InventoryPath string `yaml:"inventory_path,omitempty"`
}

// Normalize copies whichever id field is set onto the other two.
func (a *Account) Normalize() {
	id := a.ID
	if id == "" {
		id = a.AccountID
	}
	if id == "" {
		id = a.AccountNumber
	}
	a.ID = id
	a.AccountID = id
	a.AccountNumber = id
}

// OrgAccount is one entry of the flat Organizations account listing.
// Field names match the raw Organizations API shape used by the
// account cache file.
type OrgAccount struct {
	ID     string `json:"Id"`
	Name   string `json:"Name"`
	Email  string `json:"Email"`
	Status string `json:"Status"`
}

// AccountsConfig is the organization-wide account index (accounts.yml)
type AccountsConfig struct {
	SchemaVersion  string             `yaml:"schema_version"`
	OrganizationID string             `yaml:"organization_id"`
	DefaultRegion  string             `yaml:"default_region"`
	SSOStartURL    string             `yaml:"sso_start_url"`
	Accounts       map[string]Account `yaml:"accounts"`
}

// Normalize applies schema-version field reconciliation once, at load time.
// Files without a schema_version are treated as v1.
func (c *AccountsConfig) Normalize() {
	if c.SchemaVersion == "" {
		c.SchemaVersion = "1.0"
	}
	if c.Accounts == nil {
		c.Accounts = make(map[string]Account)
	}
	for alias, account := range c.Accounts {
		account.Normalize()
		if account.SSORole == "" {
			account.SSORole = DefaultSSORole
		}
		c.Accounts[alias] = account
	}
}

// IsV2 reports whether the config uses the v2+ nested schema
func (c *AccountsConfig) IsV2() bool {
	return strings.HasPrefix(c.SchemaVersion, "2")
}

// Lookup finds an account by alias. A missing alias is a configuration
// mistake the caller must fix, so this is a typed error rather than a
// swallowed condition.
func (c *AccountsConfig) Lookup(alias string) (Account, error) {
	account, ok := c.Accounts[alias]
	if !ok {
		return Account{}, errors.NewNotFoundError("account not found: "+alias, nil)
	}
	return account, nil
}
