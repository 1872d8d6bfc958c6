package discovery

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ecs"

	"github.com/provision-iam/aws-inspector/internal/logger"
	"github.com/provision-iam/aws-inspector/internal/models"

	"go.uber.org/zap"
)

// DiscoverECSClusters enumerates ECS clusters in the region. Listing
// pages are capped at 100 arns, matching the describe-call limit, so
// each page is described in one call.
func DiscoverECSClusters(ctx context.Context, cfg aws.Config, region string) []models.ECSCluster {
	return run("ecs", func() ([]models.ECSCluster, error) {
		client := ecs.NewFromConfig(cfg)

		var clusters []models.ECSCluster
		paginator := ecs.NewListClustersPaginator(client, &ecs.ListClustersInput{})
		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			if len(page.ClusterArns) == 0 {
				continue
			}
			detail, err := client.DescribeClusters(ctx, &ecs.DescribeClustersInput{
				Clusters: page.ClusterArns,
			})
			if err != nil {
				logger.GetLogger().Debug("Failed to describe ECS clusters", zap.Error(err))
				continue
			}
			for _, cluster := range detail.Clusters {
				clusters = append(clusters, models.ECSCluster{
					ClusterName:        aws.ToString(cluster.ClusterName),
					ClusterARN:         aws.ToString(cluster.ClusterArn),
					Status:             aws.ToString(cluster.Status),
					ContainerInstances: cluster.RegisteredContainerInstancesCount,
					RunningTasks:       cluster.RunningTasksCount,
					PendingTasks:       cluster.PendingTasksCount,
					ActiveServices:     cluster.ActiveServicesCount,
					Region:             region,
				})
			}
		}
		return clusters, nil
	})
}

// DiscoverECSServices enumerates the services of one ECS cluster.
// DescribeServices accepts at most 10 arns per call.
func DiscoverECSServices(ctx context.Context, cfg aws.Config, region, clusterARN string) []models.ECSService {
	return run("ecs/services", func() ([]models.ECSService, error) {
		client := ecs.NewFromConfig(cfg)

		var serviceARNs []string
		paginator := ecs.NewListServicesPaginator(client, &ecs.ListServicesInput{
			Cluster: aws.String(clusterARN),
		})
		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			serviceARNs = append(serviceARNs, page.ServiceArns...)
		}

		var services []models.ECSService
		for start := 0; start < len(serviceARNs); start += 10 {
			end := start + 10
			if end > len(serviceARNs) {
				end = len(serviceARNs)
			}
			detail, err := client.DescribeServices(ctx, &ecs.DescribeServicesInput{
				Cluster:  aws.String(clusterARN),
				Services: serviceARNs[start:end],
			})
			if err != nil {
				logger.GetLogger().Debug("Failed to describe ECS services",
					zap.String("cluster", clusterARN), zap.Error(err))
				continue
			}
			for _, svc := range detail.Services {
				services = append(services, models.ECSService{
					ServiceName:    aws.ToString(svc.ServiceName),
					ServiceARN:     aws.ToString(svc.ServiceArn),
					ClusterARN:     aws.ToString(svc.ClusterArn),
					Status:         aws.ToString(svc.Status),
					DesiredCount:   svc.DesiredCount,
					RunningCount:   svc.RunningCount,
					LaunchType:     string(svc.LaunchType),
					TaskDefinition: aws.ToString(svc.TaskDefinition),
					Region:         region,
				})
			}
		}
		return services, nil
	})
}

// DiscoverECSTaskDefinitions enumerates active task definition revisions
// in the region. Each revision is described individually; a describe
// failure skips only that revision.
func DiscoverECSTaskDefinitions(ctx context.Context, cfg aws.Config, region string) []models.ECSTaskDefinition {
	return run("ecs/task-definitions", func() ([]models.ECSTaskDefinition, error) {
		client := ecs.NewFromConfig(cfg)

		var taskDefs []models.ECSTaskDefinition
		paginator := ecs.NewListTaskDefinitionsPaginator(client, &ecs.ListTaskDefinitionsInput{})
		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			for _, arn := range page.TaskDefinitionArns {
				detail, err := client.DescribeTaskDefinition(ctx, &ecs.DescribeTaskDefinitionInput{
					TaskDefinition: aws.String(arn),
				})
				if err != nil {
					logger.GetLogger().Debug("Failed to describe task definition",
						zap.String("arn", arn), zap.Error(err))
					continue
				}
				td := detail.TaskDefinition
				compatibilities := []string{}
				for _, compat := range td.RequiresCompatibilities {
					compatibilities = append(compatibilities, string(compat))
				}
				taskDefs = append(taskDefs, models.ECSTaskDefinition{
					Family:                  aws.ToString(td.Family),
					TaskDefinitionARN:       aws.ToString(td.TaskDefinitionArn),
					Revision:                td.Revision,
					Status:                  string(td.Status),
					CPU:                     aws.ToString(td.Cpu),
					Memory:                  aws.ToString(td.Memory),
					RequiresCompatibilities: compatibilities,
					Region:                  region,
				})
			}
		}
		return taskDefs, nil
	})
}
