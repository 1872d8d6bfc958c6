package aws

import (
	"context"
	"errors"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/organizations"
	orgtypes "github.com/aws/aws-sdk-go-v2/service/organizations/types"

	"github.com/provision-iam/aws-inspector/internal/logger"
	"github.com/provision-iam/aws-inspector/internal/models"

	"go.uber.org/zap"
)

// OrgClient wraps the Organizations API for account and OU discovery
type OrgClient struct {
	client      *organizations.Client
	aliasPrefix string
	ssoRole     string
}

// NewOrgClient creates an Organizations client from a resolved config.
// aliasPrefix is stripped from account names when deriving aliases;
// ssoRole is recorded on every discovered account for SSO profile
// bootstrapping downstream.
func NewOrgClient(cfg awssdk.Config, aliasPrefix, ssoRole string) *OrgClient {
	if ssoRole == "" {
		ssoRole = models.DefaultSSORole
	}
	return &OrgClient{
		client:      organizations.NewFromConfig(cfg),
		aliasPrefix: aliasPrefix,
		ssoRole:     ssoRole,
	}
}

// OrganizationID returns the organization id, or "" when the account is
// not part of an organization. That is an expected condition, not an
// error: callers short-circuit discovery on an empty id.
func (c *OrgClient) OrganizationID(ctx context.Context) (string, error) {
	out, err := c.client.DescribeOrganization(ctx, &organizations.DescribeOrganizationInput{})
	if err != nil {
		var notInUse *orgtypes.AWSOrganizationsNotInUseException
		if errors.As(err, &notInUse) {
			logger.GetLogger().Warn("Account is not part of an AWS Organization")
			return "", nil
		}
		return "", fmt.Errorf("failed to describe organization: %w", err)
	}
	return awssdk.ToString(out.Organization.Id), nil
}

// ListAccounts retrieves the flat list of all active accounts in the
// organization, without OU hierarchy.
func (c *OrgClient) ListAccounts(ctx context.Context) ([]models.OrgAccount, error) {
	var accounts []models.OrgAccount

	paginator := organizations.NewListAccountsPaginator(c.client, &organizations.ListAccountsInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list accounts: %w", err)
		}
		for _, account := range page.Accounts {
			if account.Status != orgtypes.AccountStatusActive {
				continue
			}
			accounts = append(accounts, models.OrgAccount{
				ID:     awssdk.ToString(account.Id),
				Name:   awssdk.ToString(account.Name),
				Email:  awssdk.ToString(account.Email),
				Status: string(account.Status),
			})
		}
	}

	return accounts, nil
}

// frame is one pending OU during traversal
type frame struct {
	parentID string
	path     string
	node     *models.OrgNode
}

// DiscoverOrganization walks the OU tree from the organization root and
// returns it as an OrgNode tree. Returns (nil, nil) when the account is
// not part of an organization. Listing failures at one node are logged
// and treated as "no accounts / no children there"; they never abort the
// traversal of sibling nodes.
func (c *OrgClient) DiscoverOrganization(ctx context.Context) (*models.OrgNode, error) {
	orgID, err := c.OrganizationID(ctx)
	if err != nil {
		return nil, err
	}
	if orgID == "" {
		return nil, nil
	}

	roots, err := c.client.ListRoots(ctx, &organizations.ListRootsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list organization roots: %w", err)
	}
	if len(roots.Roots) == 0 {
		return nil, fmt.Errorf("no organization roots found for %s", orgID)
	}
	rootID := awssdk.ToString(roots.Roots[0].Id)
	rootName := awssdk.ToString(roots.Roots[0].Name)
	if rootName == "" {
		rootName = "Root"
	}

	logger.GetLogger().Info("Discovering organization hierarchy",
		zap.String("organization_id", orgID), zap.String("root_id", rootID))

	tree := models.NewOrgNode()

	// OU depth is provider-bounded but untrusted; walk with an explicit
	// stack rather than recursing.
	stack := []frame{{parentID: rootID, path: "", node: tree}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		c.listAccountsForParent(ctx, f)

		children := c.listChildOUs(ctx, f.parentID)
		for _, ou := range children {
			childPath := ou.name
			if f.path != "" {
				childPath = f.path + "/" + ou.name
			}
			childNode := models.NewOrgNode()
			f.node.Children[ou.name] = childNode
			stack = append(stack, frame{parentID: ou.id, path: childPath, node: childNode})
		}
	}

	tree.OrganizationID = orgID
	tree.RootID = rootID
	tree.RootName = rootName

	logger.GetLogger().Info("Organization discovery complete",
		zap.String("organization_id", orgID),
		zap.Int("accounts", tree.CountAccounts()))

	return tree, nil
}

// listAccountsForParent fills f.node.Accounts with the active accounts
// attached directly to f.parentID, keyed by derived alias.
func (c *OrgClient) listAccountsForParent(ctx context.Context, f frame) {
	paginator := organizations.NewListAccountsForParentPaginator(c.client,
		&organizations.ListAccountsForParentInput{ParentId: awssdk.String(f.parentID)})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			logger.GetLogger().Warn("Failed to list accounts for parent",
				zap.String("parent_id", f.parentID), zap.Error(err))
			return
		}
		for _, account := range page.Accounts {
			if account.Status != orgtypes.AccountStatusActive {
				continue
			}
			name := awssdk.ToString(account.Name)
			alias := models.GenerateAlias(name, c.aliasPrefix)
			f.node.Accounts[alias] = c.newAccount(awssdk.ToString(account.Id), name, f.path)
		}
	}
}

// newAccount builds the index record for one discovered account
func (c *OrgClient) newAccount(id, name, ouPath string) models.Account {
	return models.Account{
		ID:            id,
		AccountID:     id,
		AccountNumber: id,
		Name:          name,
		OUPath:        ouPath,
		SSORole:       c.ssoRole,
	}
}

type childOU struct {
	id   string
	name string
}

// listChildOUs returns the child OUs attached to parentID. Failures are
// logged and yield an empty list.
func (c *OrgClient) listChildOUs(ctx context.Context, parentID string) []childOU {
	var children []childOU

	paginator := organizations.NewListOrganizationalUnitsForParentPaginator(c.client,
		&organizations.ListOrganizationalUnitsForParentInput{ParentId: awssdk.String(parentID)})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			logger.GetLogger().Warn("Failed to list child OUs",
				zap.String("parent_id", parentID), zap.Error(err))
			return children
		}
		for _, ou := range page.OrganizationalUnits {
			id := awssdk.ToString(ou.Id)
			name := awssdk.ToString(ou.Name)
			if name == "" {
				name = id
			}
			children = append(children, childOU{id: id, name: name})
		}
	}

	return children
}
