package discovery

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/provision-iam/aws-inspector/internal/logger"
	"github.com/provision-iam/aws-inspector/internal/models"

	"go.uber.org/zap"
)

// DiscoverDynamoDBTables enumerates DynamoDB tables in the region.
// Each table is described individually for its status, item count, and
// size; a describe failure skips only that table.
func DiscoverDynamoDBTables(ctx context.Context, cfg aws.Config, region string) []models.DynamoDBTable {
	return run("dynamodb", func() ([]models.DynamoDBTable, error) {
		client := dynamodb.NewFromConfig(cfg)

		var tables []models.DynamoDBTable
		paginator := dynamodb.NewListTablesPaginator(client, &dynamodb.ListTablesInput{})
		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			for _, name := range page.TableNames {
				detail, err := client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
					TableName: aws.String(name),
				})
				if err != nil {
					logger.GetLogger().Debug("Failed to describe DynamoDB table",
						zap.String("table", name), zap.Error(err))
					continue
				}
				table := detail.Table
				tables = append(tables, models.DynamoDBTable{
					TableName: aws.ToString(table.TableName),
					Status:    string(table.TableStatus),
					ItemCount: aws.ToInt64(table.ItemCount),
					SizeBytes: aws.ToInt64(table.TableSizeBytes),
					ARN:       aws.ToString(table.TableArn),
					Region:    region,
				})
			}
		}
		return tables, nil
	})
}
