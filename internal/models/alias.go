package models

import "strings"

// DefaultAliasPrefix is stripped from account names when deriving aliases.
const DefaultAliasPrefix = "provision-iam-"

// GenerateAlias derives a short, filesystem-friendly alias from an account
// display name: lowercase, spaces replaced with hyphens, and prefixToStrip
// removed when present. If stripping would yield an empty alias the
// lowercased unstripped name is returned instead.
func GenerateAlias(accountName, prefixToStrip string) string {
	alias := strings.ReplaceAll(strings.ToLower(accountName), " ", "-")
	if prefixToStrip != "" && strings.HasPrefix(alias, prefixToStrip) {
		stripped := alias[len(prefixToStrip):]
		if stripped == "" {
			return strings.ToLower(accountName)
		}
		return stripped
	}
	return alias
}
