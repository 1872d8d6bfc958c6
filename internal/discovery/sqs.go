package discovery

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"github.com/provision-iam/aws-inspector/internal/logger"
	"github.com/provision-iam/aws-inspector/internal/models"

	"go.uber.org/zap"
)

// DiscoverSQSQueues enumerates all queues in the region
func DiscoverSQSQueues(ctx context.Context, cfg aws.Config, region string) []models.SQSQueue {
	return run("sqs", func() ([]models.SQSQueue, error) {
		client := sqs.NewFromConfig(cfg)

		var queues []models.SQSQueue
		paginator := sqs.NewListQueuesPaginator(client, &sqs.ListQueuesInput{})
		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			for _, queueURL := range page.QueueUrls {
				// URL format: https://sqs.{region}.amazonaws.com/{account_id}/{queue_name}
				parts := strings.Split(queueURL, "/")
				queueName := parts[len(parts)-1]

				queueARN := ""
				attrs, err := client.GetQueueAttributes(ctx, &sqs.GetQueueAttributesInput{
					QueueUrl:       aws.String(queueURL),
					AttributeNames: []sqstypes.QueueAttributeName{sqstypes.QueueAttributeNameQueueArn},
				})
				if err != nil {
					logger.GetLogger().Debug("Failed to get queue attributes, constructing ARN from URL",
						zap.String("queue", queueName), zap.Error(err))
					accountID := ""
					if len(parts) >= 2 {
						accountID = parts[len(parts)-2]
					}
					queueARN = fmt.Sprintf("arn:aws:sqs:%s:%s:%s", region, accountID, queueName)
				} else {
					queueARN = attrs.Attributes[string(sqstypes.QueueAttributeNameQueueArn)]
				}

				queues = append(queues, models.SQSQueue{
					Name:   queueName,
					URL:    queueURL,
					ARN:    queueARN,
					Region: region,
				})
			}
		}
		return queues, nil
	})
}
