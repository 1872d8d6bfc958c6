package discovery

import (
	"errors"
	"testing"
)

func TestRunSwallowsProviderErrors(t *testing.T) {
	out := run("test", func() ([]string, error) {
		return nil, errors.New("access denied")
	})
	if out == nil {
		t.Fatal("expected empty slice on error, got nil")
	}
	if len(out) != 0 {
		t.Errorf("expected empty slice on error, got %v", out)
	}
}

func TestRunReturnsResults(t *testing.T) {
	out := run("test", func() ([]int, error) {
		return []int{1, 2, 3}, nil
	})
	if len(out) != 3 {
		t.Errorf("expected 3 results, got %d", len(out))
	}
}

func TestRunNormalizesNilResult(t *testing.T) {
	out := run("test", func() ([]int, error) {
		return nil, nil
	})
	if out == nil {
		t.Fatal("expected empty slice for nil result, got nil")
	}
	if len(out) != 0 {
		t.Errorf("expected empty slice, got %v", out)
	}
}
