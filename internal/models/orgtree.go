package models

// OrgNode is one node of the organization's OU tree. The tree is built
// fresh on every traversal and never persisted; only its flattened
// leaves reach the accounts index.
type OrgNode struct {
	Accounts map[string]Account
	Children map[string]*OrgNode

	// Set on the root node only, once the walk completes.
	OrganizationID string
	RootID         string
	RootName       string
}

// NewOrgNode creates an empty node with non-nil maps
func NewOrgNode() *OrgNode {
	return &OrgNode{
		Accounts: make(map[string]Account),
		Children: make(map[string]*OrgNode),
	}
}

// AliasedAccount pairs an account with the alias it was discovered under
type AliasedAccount struct {
	Alias   string
	Account Account
}

// FlattenAccounts collects every (alias, account) pair in the tree.
// Aliases are unique only within a single node's account map; pairs from
// different OUs may share an alias and are all returned, so collision
// handling is the caller's decision.
func (n *OrgNode) FlattenAccounts() []AliasedAccount {
	var out []AliasedAccount

	// OU depth is untrusted input, so walk with an explicit stack.
	stack := []*OrgNode{n}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node == nil {
			continue
		}
		for alias, account := range node.Accounts {
			out = append(out, AliasedAccount{Alias: alias, Account: account})
		}
		for _, child := range node.Children {
			stack = append(stack, child)
		}
	}
	return out
}

// CountAccounts returns the total number of accounts in the tree
func (n *OrgNode) CountAccounts() int {
	count := 0
	stack := []*OrgNode{n}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node == nil {
			continue
		}
		count += len(node.Accounts)
		for _, child := range node.Children {
			stack = append(stack, child)
		}
	}
	return count
}
