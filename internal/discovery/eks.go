package discovery

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eks"

	"github.com/provision-iam/aws-inspector/internal/logger"
	"github.com/provision-iam/aws-inspector/internal/models"

	"go.uber.org/zap"
)

// DiscoverEKSClusters enumerates EKS clusters in the region. The listing
// returns names only, so each cluster is described for its version,
// endpoint, and status; a describe failure skips that cluster.
func DiscoverEKSClusters(ctx context.Context, cfg aws.Config, region string) []models.EKSCluster {
	return run("eks", func() ([]models.EKSCluster, error) {
		client := eks.NewFromConfig(cfg)

		var clusters []models.EKSCluster
		paginator := eks.NewListClustersPaginator(client, &eks.ListClustersInput{})
		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			for _, name := range page.Clusters {
				detail, err := client.DescribeCluster(ctx, &eks.DescribeClusterInput{
					Name: aws.String(name),
				})
				if err != nil {
					logger.GetLogger().Debug("Failed to describe EKS cluster",
						zap.String("cluster", name), zap.Error(err))
					continue
				}
				cluster := detail.Cluster
				clusters = append(clusters, models.EKSCluster{
					ClusterName:     aws.ToString(cluster.Name),
					ClusterARN:      aws.ToString(cluster.Arn),
					Status:          string(cluster.Status),
					Version:         aws.ToString(cluster.Version),
					Endpoint:        aws.ToString(cluster.Endpoint),
					PlatformVersion: aws.ToString(cluster.PlatformVersion),
					CreatedAt:       cluster.CreatedAt,
					Region:          region,
				})
			}
		}
		return clusters, nil
	})
}

// DiscoverEKSNodeGroups enumerates the managed node groups of one EKS
// cluster.
func DiscoverEKSNodeGroups(ctx context.Context, cfg aws.Config, region, clusterName string) []models.EKSNodeGroup {
	return run("eks/nodegroups", func() ([]models.EKSNodeGroup, error) {
		client := eks.NewFromConfig(cfg)

		var nodeGroups []models.EKSNodeGroup
		paginator := eks.NewListNodegroupsPaginator(client, &eks.ListNodegroupsInput{
			ClusterName: aws.String(clusterName),
		})
		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			for _, name := range page.Nodegroups {
				detail, err := client.DescribeNodegroup(ctx, &eks.DescribeNodegroupInput{
					ClusterName:   aws.String(clusterName),
					NodegroupName: aws.String(name),
				})
				if err != nil {
					logger.GetLogger().Debug("Failed to describe node group",
						zap.String("cluster", clusterName), zap.String("nodegroup", name), zap.Error(err))
					continue
				}
				ng := detail.Nodegroup
				record := models.EKSNodeGroup{
					NodeGroupName: aws.ToString(ng.NodegroupName),
					NodeGroupARN:  aws.ToString(ng.NodegroupArn),
					ClusterName:   aws.ToString(ng.ClusterName),
					Status:        string(ng.Status),
					InstanceTypes: ng.InstanceTypes,
					Region:        region,
				}
				if sc := ng.ScalingConfig; sc != nil {
					record.DesiredSize = aws.ToInt32(sc.DesiredSize)
					record.MinSize = aws.ToInt32(sc.MinSize)
					record.MaxSize = aws.ToInt32(sc.MaxSize)
				}
				nodeGroups = append(nodeGroups, record)
			}
		}
		return nodeGroups, nil
	})
}

// DiscoverEKSFargateProfiles enumerates the Fargate profiles of one EKS
// cluster.
func DiscoverEKSFargateProfiles(ctx context.Context, cfg aws.Config, region, clusterName string) []models.EKSFargateProfile {
	return run("eks/fargate-profiles", func() ([]models.EKSFargateProfile, error) {
		client := eks.NewFromConfig(cfg)

		var profiles []models.EKSFargateProfile
		paginator := eks.NewListFargateProfilesPaginator(client, &eks.ListFargateProfilesInput{
			ClusterName: aws.String(clusterName),
		})
		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			for _, name := range page.FargateProfileNames {
				detail, err := client.DescribeFargateProfile(ctx, &eks.DescribeFargateProfileInput{
					ClusterName:        aws.String(clusterName),
					FargateProfileName: aws.String(name),
				})
				if err != nil {
					logger.GetLogger().Debug("Failed to describe Fargate profile",
						zap.String("cluster", clusterName), zap.String("profile", name), zap.Error(err))
					continue
				}
				fp := detail.FargateProfile
				selectors := []models.FargateSelector{}
				for _, sel := range fp.Selectors {
					selectors = append(selectors, models.FargateSelector{
						Namespace: aws.ToString(sel.Namespace),
						Labels:    sel.Labels,
					})
				}
				profiles = append(profiles, models.EKSFargateProfile{
					ProfileName:         aws.ToString(fp.FargateProfileName),
					ProfileARN:          aws.ToString(fp.FargateProfileArn),
					ClusterName:         aws.ToString(fp.ClusterName),
					Status:              string(fp.Status),
					PodExecutionRoleARN: aws.ToString(fp.PodExecutionRoleArn),
					Selectors:           selectors,
					Region:              region,
				})
			}
		}
		return profiles, nil
	})
}
