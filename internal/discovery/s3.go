package discovery

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/provision-iam/aws-inspector/internal/logger"
	"github.com/provision-iam/aws-inspector/internal/models"

	"go.uber.org/zap"
)

// DiscoverS3Buckets enumerates all buckets in the account. Bucket listing
// is account-global; each bucket's region is resolved individually via
// GetBucketLocation.
func DiscoverS3Buckets(ctx context.Context, cfg aws.Config, region string) []models.S3Bucket {
	return run("s3", func() ([]models.S3Bucket, error) {
		client := s3.NewFromConfig(cfg)

		out, err := client.ListBuckets(ctx, &s3.ListBucketsInput{})
		if err != nil {
			return nil, err
		}

		var buckets []models.S3Bucket
		for _, bucketData := range out.Buckets {
			name := aws.ToString(bucketData.Name)

			bucketRegion := "unknown"
			location, err := client.GetBucketLocation(ctx, &s3.GetBucketLocationInput{
				Bucket: aws.String(name),
			})
			if err != nil {
				logger.GetLogger().Debug("Failed to resolve bucket region",
					zap.String("bucket", name), zap.Error(err))
			} else {
				// An empty LocationConstraint means us-east-1.
				bucketRegion = string(location.LocationConstraint)
				if bucketRegion == "" {
					bucketRegion = "us-east-1"
				}
			}

			buckets = append(buckets, models.S3Bucket{
				Name:    name,
				Region:  bucketRegion,
				ARN:     "arn:aws:s3:::" + name,
				Created: bucketData.CreationDate,
			})
		}
		return buckets, nil
	})
}
