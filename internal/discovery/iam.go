package discovery

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"

	"github.com/provision-iam/aws-inspector/internal/models"
)

// IAM is a global service: the region parameter is accepted for contract
// uniformity but plays no part in the requests themselves.

// DiscoverIAMRoles enumerates all roles in the account
func DiscoverIAMRoles(ctx context.Context, cfg aws.Config, region string) []models.IAMRole {
	return run("iam/roles", func() ([]models.IAMRole, error) {
		client := iam.NewFromConfig(cfg)

		var roles []models.IAMRole
		paginator := iam.NewListRolesPaginator(client, &iam.ListRolesInput{})
		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			for _, role := range page.Roles {
				tags := make(map[string]string)
				for _, tag := range role.Tags {
					tags[aws.ToString(tag.Key)] = aws.ToString(tag.Value)
				}
				path := aws.ToString(role.Path)
				if path == "" {
					path = "/"
				}
				roles = append(roles, models.IAMRole{
					RoleName:           aws.ToString(role.RoleName),
					RoleID:             aws.ToString(role.RoleId),
					ARN:                aws.ToString(role.Arn),
					Path:               path,
					Description:        aws.ToString(role.Description),
					CreateDate:         role.CreateDate,
					MaxSessionDuration: aws.ToInt32(role.MaxSessionDuration),
					Tags:               tags,
				})
			}
		}
		return roles, nil
	})
}

// DiscoverIAMPolicies enumerates customer-managed policies only
func DiscoverIAMPolicies(ctx context.Context, cfg aws.Config, region string) []models.IAMPolicy {
	return run("iam/policies", func() ([]models.IAMPolicy, error) {
		client := iam.NewFromConfig(cfg)

		var policies []models.IAMPolicy
		paginator := iam.NewListPoliciesPaginator(client, &iam.ListPoliciesInput{
			Scope: iamtypes.PolicyScopeTypeLocal,
		})
		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			for _, policy := range page.Policies {
				path := aws.ToString(policy.Path)
				if path == "" {
					path = "/"
				}
				policies = append(policies, models.IAMPolicy{
					PolicyName:      aws.ToString(policy.PolicyName),
					PolicyID:        aws.ToString(policy.PolicyId),
					ARN:             aws.ToString(policy.Arn),
					Path:            path,
					Description:     aws.ToString(policy.Description),
					CreateDate:      policy.CreateDate,
					UpdateDate:      policy.UpdateDate,
					AttachmentCount: aws.ToInt32(policy.AttachmentCount),
				})
			}
		}
		return policies, nil
	})
}

// DiscoverIAMUsers enumerates all users in the account
func DiscoverIAMUsers(ctx context.Context, cfg aws.Config, region string) []models.IAMUser {
	return run("iam/users", func() ([]models.IAMUser, error) {
		client := iam.NewFromConfig(cfg)

		var users []models.IAMUser
		paginator := iam.NewListUsersPaginator(client, &iam.ListUsersInput{})
		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			for _, user := range page.Users {
				path := aws.ToString(user.Path)
				if path == "" {
					path = "/"
				}
				users = append(users, models.IAMUser{
					UserName:   aws.ToString(user.UserName),
					UserID:     aws.ToString(user.UserId),
					ARN:        aws.ToString(user.Arn),
					Path:       path,
					CreateDate: user.CreateDate,
				})
			}
		}
		return users, nil
	})
}

// DiscoverIAMGroups enumerates all groups in the account
func DiscoverIAMGroups(ctx context.Context, cfg aws.Config, region string) []models.IAMGroup {
	return run("iam/groups", func() ([]models.IAMGroup, error) {
		client := iam.NewFromConfig(cfg)

		var groups []models.IAMGroup
		paginator := iam.NewListGroupsPaginator(client, &iam.ListGroupsInput{})
		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			for _, group := range page.Groups {
				path := aws.ToString(group.Path)
				if path == "" {
					path = "/"
				}
				groups = append(groups, models.IAMGroup{
					GroupName:  aws.ToString(group.GroupName),
					GroupID:    aws.ToString(group.GroupId),
					ARN:        aws.ToString(group.Arn),
					Path:       path,
					CreateDate: group.CreateDate,
				})
			}
		}
		return groups, nil
	})
}
