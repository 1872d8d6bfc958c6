package discovery

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"github.com/provision-iam/aws-inspector/internal/models"
)

// DiscoverSNSTopics enumerates all topics in the region
func DiscoverSNSTopics(ctx context.Context, cfg aws.Config, region string) []models.SNSTopic {
	return run("sns", func() ([]models.SNSTopic, error) {
		client := sns.NewFromConfig(cfg)

		var topics []models.SNSTopic
		paginator := sns.NewListTopicsPaginator(client, &sns.ListTopicsInput{})
		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			for _, topicData := range page.Topics {
				topicARN := aws.ToString(topicData.TopicArn)
				// ARN format: arn:aws:sns:{region}:{account_id}:{topic_name}
				arnParts := strings.Split(topicARN, ":")
				topicName := arnParts[len(arnParts)-1]

				topics = append(topics, models.SNSTopic{
					Name:   topicName,
					ARN:    topicARN,
					Region: region,
				})
			}
		}
		return topics, nil
	})
}
