package models

import "time"

// DefaultAccountsCacheTTLHours bounds the staleness of the local account
// snapshot before a full organization scan is forced again.
const DefaultAccountsCacheTTLHours = 24

// AccountsCache is the local snapshot of the flat account list. It is
// replaced wholesale on refresh, never merged incrementally.
type AccountsCache struct {
	CachedAt time.Time    `json:"cached_at"`
	TTLHours int          `json:"ttl_hours"`
	Accounts []OrgAccount `json:"accounts"`
}

// IsExpired checks if the cached snapshot has outlived its TTL
func (c *AccountsCache) IsExpired() bool {
	ttl := c.TTLHours
	if ttl <= 0 {
		ttl = DefaultAccountsCacheTTLHours
	}
	return time.Since(c.CachedAt) > time.Duration(ttl)*time.Hour
}
