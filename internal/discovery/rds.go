package discovery

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rds"

	"github.com/provision-iam/aws-inspector/internal/models"
)

// DiscoverRDSInstances enumerates all database instances in the region
func DiscoverRDSInstances(ctx context.Context, cfg aws.Config, region string) []models.RDSInstance {
	return run("rds/instances", func() ([]models.RDSInstance, error) {
		client := rds.NewFromConfig(cfg)

		var instances []models.RDSInstance
		paginator := rds.NewDescribeDBInstancesPaginator(client, &rds.DescribeDBInstancesInput{})
		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			for _, instance := range page.DBInstances {
				record := models.RDSInstance{
					DBInstanceIdentifier: aws.ToString(instance.DBInstanceIdentifier),
					Engine:               aws.ToString(instance.Engine),
					EngineVersion:        aws.ToString(instance.EngineVersion),
					InstanceClass:        aws.ToString(instance.DBInstanceClass),
					Status:               aws.ToString(instance.DBInstanceStatus),
					ARN:                  aws.ToString(instance.DBInstanceArn),
					Region:               region,
				}
				if instance.Endpoint != nil {
					record.Endpoint = aws.ToString(instance.Endpoint.Address)
					record.Port = aws.ToInt32(instance.Endpoint.Port)
				}
				instances = append(instances, record)
			}
		}
		return instances, nil
	})
}

// DiscoverRDSClusters enumerates all database clusters in the region
func DiscoverRDSClusters(ctx context.Context, cfg aws.Config, region string) []models.RDSCluster {
	return run("rds/clusters", func() ([]models.RDSCluster, error) {
		client := rds.NewFromConfig(cfg)

		var clusters []models.RDSCluster
		paginator := rds.NewDescribeDBClustersPaginator(client, &rds.DescribeDBClustersInput{})
		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			for _, cluster := range page.DBClusters {
				clusters = append(clusters, models.RDSCluster{
					ClusterIdentifier: aws.ToString(cluster.DBClusterIdentifier),
					Engine:            aws.ToString(cluster.Engine),
					EngineVersion:     aws.ToString(cluster.EngineVersion),
					Status:            aws.ToString(cluster.Status),
					Endpoint:          aws.ToString(cluster.Endpoint),
					ReaderEndpoint:    aws.ToString(cluster.ReaderEndpoint),
					Port:              aws.ToInt32(cluster.Port),
					ARN:               aws.ToString(cluster.DBClusterArn),
					Region:            region,
				})
			}
		}
		return clusters, nil
	})
}
