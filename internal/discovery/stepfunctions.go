package discovery

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sfn"

	"github.com/provision-iam/aws-inspector/internal/logger"
	"github.com/provision-iam/aws-inspector/internal/models"

	"go.uber.org/zap"
)

// DiscoverStateMachines enumerates Step Functions state machines in the
// region. Each machine is described individually for its role and logging
// configuration; a describe failure degrades to the listing info.
func DiscoverStateMachines(ctx context.Context, cfg aws.Config, region string) []models.StateMachine {
	return run("stepfunctions", func() ([]models.StateMachine, error) {
		client := sfn.NewFromConfig(cfg)

		var stateMachines []models.StateMachine
		paginator := sfn.NewListStateMachinesPaginator(client, &sfn.ListStateMachinesInput{})
		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			for _, sm := range page.StateMachines {
				smARN := aws.ToString(sm.StateMachineArn)

				record := models.StateMachine{
					Name:         aws.ToString(sm.Name),
					ARN:          smARN,
					Status:       "ACTIVE", // the listing does not return status
					MachineType:  string(sm.Type),
					CreationDate: sm.CreationDate,
					Region:       region,
				}

				detail, err := client.DescribeStateMachine(ctx, &sfn.DescribeStateMachineInput{
					StateMachineArn: aws.String(smARN),
				})
				if err != nil {
					logger.GetLogger().Debug("Failed to describe state machine",
						zap.String("arn", smARN), zap.Error(err))
				} else {
					record.RoleARN = aws.ToString(detail.RoleArn)
					if detail.Status != "" {
						record.Status = string(detail.Status)
					}
					if lc := detail.LoggingConfiguration; lc != nil {
						record.LogLevel = string(lc.Level)
						for _, dest := range lc.Destinations {
							if dest.CloudWatchLogsLogGroup != nil {
								if arn := aws.ToString(dest.CloudWatchLogsLogGroup.LogGroupArn); arn != "" {
									record.LogGroupARN = arn
									break
								}
							}
						}
					}
				}

				stateMachines = append(stateMachines, record)
			}
		}
		return stateMachines, nil
	})
}

// DiscoverSFNActivities enumerates Step Functions activities in the region
func DiscoverSFNActivities(ctx context.Context, cfg aws.Config, region string) []models.SFNActivity {
	return run("stepfunctions/activities", func() ([]models.SFNActivity, error) {
		client := sfn.NewFromConfig(cfg)

		var activities []models.SFNActivity
		paginator := sfn.NewListActivitiesPaginator(client, &sfn.ListActivitiesInput{})
		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			for _, activity := range page.Activities {
				activities = append(activities, models.SFNActivity{
					Name:         aws.ToString(activity.Name),
					ARN:          aws.ToString(activity.ActivityArn),
					CreationDate: activity.CreationDate,
					Region:       region,
				})
			}
		}
		return activities, nil
	})
}
