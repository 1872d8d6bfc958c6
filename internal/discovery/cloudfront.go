package discovery

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"

	"github.com/provision-iam/aws-inspector/internal/models"
)

// DiscoverCloudFrontDistributions enumerates CDN distributions.
// CloudFront is a global service; the region parameter only labels the
// session used for the calls.
func DiscoverCloudFrontDistributions(ctx context.Context, cfg aws.Config, region string) []models.CloudFrontDistribution {
	return run("cloudfront", func() ([]models.CloudFrontDistribution, error) {
		client := cloudfront.NewFromConfig(cfg)

		var distributions []models.CloudFrontDistribution
		paginator := cloudfront.NewListDistributionsPaginator(client, &cloudfront.ListDistributionsInput{})
		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			if page.DistributionList == nil {
				continue
			}
			for _, dist := range page.DistributionList.Items {
				record := models.CloudFrontDistribution{
					ID:               aws.ToString(dist.Id),
					ARN:              aws.ToString(dist.ARN),
					DomainName:       aws.ToString(dist.DomainName),
					Status:           aws.ToString(dist.Status),
					Enabled:          aws.ToBool(dist.Enabled),
					PriceClass:       string(dist.PriceClass),
					HTTPVersion:      string(dist.HttpVersion),
					IsIPv6Enabled:    aws.ToBool(dist.IsIPV6Enabled),
					LastModifiedTime: dist.LastModifiedTime,
				}
				if dist.Aliases != nil {
					record.Aliases = dist.Aliases.Items
				}
				if dist.Origins != nil {
					for _, origin := range dist.Origins.Items {
						if domain := aws.ToString(origin.DomainName); domain != "" {
							record.Origins = append(record.Origins, domain)
						}
					}
				}
				if dist.DefaultCacheBehavior != nil {
					record.ViewerProtocolPolicy = string(dist.DefaultCacheBehavior.ViewerProtocolPolicy)
				}
				distributions = append(distributions, record)
			}
		}
		return distributions, nil
	})
}
