package discovery

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"

	"github.com/provision-iam/aws-inspector/internal/models"
)

// DiscoverSESIdentities enumerates verified email identities in the region
func DiscoverSESIdentities(ctx context.Context, cfg aws.Config, region string) []models.SESIdentity {
	return run("ses", func() ([]models.SESIdentity, error) {
		client := sesv2.NewFromConfig(cfg)

		var identities []models.SESIdentity
		paginator := sesv2.NewListEmailIdentitiesPaginator(client, &sesv2.ListEmailIdentitiesInput{})
		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			for _, identity := range page.EmailIdentities {
				identities = append(identities, models.SESIdentity{
					Identity:           aws.ToString(identity.IdentityName),
					Type:               string(identity.IdentityType),
					VerificationStatus: string(identity.VerificationStatus),
					Region:             region,
				})
			}
		}
		return identities, nil
	})
}
