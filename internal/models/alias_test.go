package models

import "testing"

func TestGenerateAlias(t *testing.T) {
	tests := []struct {
		name        string
		accountName string
		prefix      string
		expected    string
	}{
		{
			name:        "prefix stripped",
			accountName: "provision-iam-production",
			prefix:      DefaultAliasPrefix,
			expected:    "production",
		},
		{
			name:        "prefix stripped after lowercasing",
			accountName: "Provision IAM Production",
			prefix:      DefaultAliasPrefix,
			expected:    "production",
		},
		{
			name:        "spaces become hyphens",
			accountName: "My Account Name",
			prefix:      DefaultAliasPrefix,
			expected:    "my-account-name",
		},
		{
			name:        "no prefix present",
			accountName: "sandbox",
			prefix:      DefaultAliasPrefix,
			expected:    "sandbox",
		},
		{
			name:        "empty prefix strips nothing",
			accountName: "provision-iam-production",
			prefix:      "",
			expected:    "provision-iam-production",
		},
		{
			name:        "name equal to prefix stays non-empty",
			accountName: "provision-iam-",
			prefix:      DefaultAliasPrefix,
			expected:    "provision-iam-",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alias := GenerateAlias(tt.accountName, tt.prefix)
			if alias != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, alias)
			}
		})
	}
}

func TestGenerateAliasIdempotent(t *testing.T) {
	names := []string{"provision-iam-production", "My Account Name", "sandbox"}
	for _, name := range names {
		once := GenerateAlias(name, DefaultAliasPrefix)
		twice := GenerateAlias(once, DefaultAliasPrefix)
		if once != twice {
			t.Errorf("alias of %q not stable: first %q, second %q", name, once, twice)
		}
	}
}
