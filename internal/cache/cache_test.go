package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/provision-iam/aws-inspector/internal/models"
)

func testAccounts() []models.OrgAccount {
	return []models.OrgAccount{
		{ID: "111111111111", Name: "management", Email: "mgmt@example.com", Status: "ACTIVE"},
		{ID: "222222222222", Name: "production", Email: "prod@example.com", Status: "ACTIVE"},
	}
}

func TestFileCacheRoundTrip(t *testing.T) {
	fc := NewFileCache(t.TempDir())

	if err := fc.SetAccounts(testAccounts(), 24); err != nil {
		t.Fatalf("SetAccounts failed: %v", err)
	}

	cached, err := fc.GetAccounts()
	if err != nil {
		t.Fatalf("GetAccounts failed: %v", err)
	}
	if len(cached.Accounts) != 2 {
		t.Errorf("expected 2 accounts, got %d", len(cached.Accounts))
	}
	if cached.Accounts[0].ID != "111111111111" {
		t.Errorf("expected 111111111111, got %q", cached.Accounts[0].ID)
	}
	if cached.TTLHours != 24 {
		t.Errorf("expected ttl 24, got %d", cached.TTLHours)
	}
}

func TestFileCacheMissWhenAbsent(t *testing.T) {
	fc := NewFileCache(t.TempDir())

	if _, err := fc.GetAccounts(); err == nil {
		t.Fatal("expected miss for empty cache directory")
	}
}

func TestFileCacheMissWhenExpired(t *testing.T) {
	dir := t.TempDir()
	fc := NewFileCache(dir)

	if err := fc.SetAccounts(testAccounts(), 24); err != nil {
		t.Fatalf("SetAccounts failed: %v", err)
	}

	// Age the snapshot past its TTL.
	cached, err := fc.GetAccounts()
	if err != nil {
		t.Fatalf("GetAccounts failed: %v", err)
	}
	cached.CachedAt = time.Now().Add(-25 * time.Hour)
	if err := fc.setCacheItem(accountsCacheFile, cached); err != nil {
		t.Fatalf("rewriting cache failed: %v", err)
	}

	if _, err := fc.GetAccounts(); err == nil {
		t.Fatal("expected miss for expired cache")
	}
}

func TestFileCacheMissWhenMalformed(t *testing.T) {
	dir := t.TempDir()
	fc := NewFileCache(dir)

	path := filepath.Join(dir, accountsCacheFile)
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("writing malformed file failed: %v", err)
	}

	if _, err := fc.GetAccounts(); err == nil {
		t.Fatal("expected miss for malformed cache file")
	}
}

func TestFileCacheSetOverwrites(t *testing.T) {
	fc := NewFileCache(t.TempDir())

	if err := fc.SetAccounts(testAccounts(), 24); err != nil {
		t.Fatalf("first SetAccounts failed: %v", err)
	}
	if err := fc.SetAccounts(testAccounts()[:1], 24); err != nil {
		t.Fatalf("second SetAccounts failed: %v", err)
	}

	cached, err := fc.GetAccounts()
	if err != nil {
		t.Fatalf("GetAccounts failed: %v", err)
	}
	if len(cached.Accounts) != 1 {
		t.Errorf("expected snapshot replaced wholesale, got %d accounts", len(cached.Accounts))
	}
}

func TestFileCacheClear(t *testing.T) {
	fc := NewFileCache(t.TempDir())

	if err := fc.SetAccounts(testAccounts(), 24); err != nil {
		t.Fatalf("SetAccounts failed: %v", err)
	}
	if err := fc.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, err := fc.GetAccounts(); err == nil {
		t.Fatal("expected miss after clear")
	}

	// Clearing an already-empty cache is fine.
	if err := fc.Clear(); err != nil {
		t.Fatalf("Clear on empty cache failed: %v", err)
	}
}
