package discovery

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"

	"github.com/provision-iam/aws-inspector/internal/models"
)

// DiscoverLogGroups enumerates all CloudWatch log groups in the region
func DiscoverLogGroups(ctx context.Context, cfg aws.Config, region string) []models.CloudWatchLogGroup {
	return run("cloudwatch/logs", func() ([]models.CloudWatchLogGroup, error) {
		client := cloudwatchlogs.NewFromConfig(cfg)

		var logGroups []models.CloudWatchLogGroup
		paginator := cloudwatchlogs.NewDescribeLogGroupsPaginator(client, &cloudwatchlogs.DescribeLogGroupsInput{})
		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			for _, lg := range page.LogGroups {
				logGroups = append(logGroups, models.CloudWatchLogGroup{
					LogGroupName:  aws.ToString(lg.LogGroupName),
					ARN:           aws.ToString(lg.Arn),
					RetentionDays: aws.ToInt32(lg.RetentionInDays),
					StoredBytes:   aws.ToInt64(lg.StoredBytes),
					KMSKeyID:      aws.ToString(lg.KmsKeyId),
					Region:        region,
				})
			}
		}
		return logGroups, nil
	})
}

// DiscoverAlarms enumerates all CloudWatch metric alarms in the region
func DiscoverAlarms(ctx context.Context, cfg aws.Config, region string) []models.CloudWatchAlarm {
	return run("cloudwatch/alarms", func() ([]models.CloudWatchAlarm, error) {
		client := cloudwatch.NewFromConfig(cfg)

		var alarms []models.CloudWatchAlarm
		paginator := cloudwatch.NewDescribeAlarmsPaginator(client, &cloudwatch.DescribeAlarmsInput{})
		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			for _, alarm := range page.MetricAlarms {
				stateValue := string(alarm.StateValue)
				if stateValue == "" {
					stateValue = "INSUFFICIENT_DATA"
				}
				alarms = append(alarms, models.CloudWatchAlarm{
					AlarmName:          aws.ToString(alarm.AlarmName),
					AlarmARN:           aws.ToString(alarm.AlarmArn),
					Description:        aws.ToString(alarm.AlarmDescription),
					StateValue:         stateValue,
					MetricName:         aws.ToString(alarm.MetricName),
					Namespace:          aws.ToString(alarm.Namespace),
					Threshold:          aws.ToFloat64(alarm.Threshold),
					ComparisonOperator: string(alarm.ComparisonOperator),
					ActionsEnabled:     aws.ToBool(alarm.ActionsEnabled),
					Region:             region,
				})
			}
		}
		return alarms, nil
	})
}
