package inventory

import (
	"context"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/provision-iam/aws-inspector/internal/discovery"
	"github.com/provision-iam/aws-inspector/internal/logger"
	"github.com/provision-iam/aws-inspector/internal/models"

	"go.uber.org/zap"
)

// BuildInventory runs every resource discoverer against one account and
// assembles the results into a single inventory. Discoverers run
// concurrently, each goroutine writing only its own inventory field.
// A failing discoverer contributes an empty sequence; it never fails
// the build.
func BuildInventory(ctx context.Context, cfg aws.Config, accountID, alias, region string) *models.AccountInventory {
	start := time.Now()
	logger.GetLogger().Info("Building inventory",
		zap.String("alias", alias), zap.String("account_id", accountID), zap.String("region", region))

	inv := &models.AccountInventory{
		SchemaVersion: models.InventorySchemaVersion,
		AccountID:     accountID,
		AccountAlias:  alias,
		Region:        region,
	}

	var wg sync.WaitGroup
	collect := func(fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn()
		}()
	}

	collect(func() { inv.VPCs = discovery.DiscoverVPCs(ctx, cfg, region) })
	collect(func() { inv.EC2Instances = discovery.DiscoverEC2Instances(ctx, cfg, accountID, region) })
	collect(func() { inv.ElasticIPs = discovery.DiscoverElasticIPs(ctx, cfg, region) })
	collect(func() { inv.S3Buckets = discovery.DiscoverS3Buckets(ctx, cfg, region) })
	collect(func() { inv.SQSQueues = discovery.DiscoverSQSQueues(ctx, cfg, region) })
	collect(func() { inv.SNSTopics = discovery.DiscoverSNSTopics(ctx, cfg, region) })
	collect(func() { inv.SESIdentities = discovery.DiscoverSESIdentities(ctx, cfg, region) })
	collect(func() { inv.IAMRoles = discovery.DiscoverIAMRoles(ctx, cfg, region) })
	collect(func() { inv.IAMPolicies = discovery.DiscoverIAMPolicies(ctx, cfg, region) })
	collect(func() { inv.IAMUsers = discovery.DiscoverIAMUsers(ctx, cfg, region) })
	collect(func() { inv.IAMGroups = discovery.DiscoverIAMGroups(ctx, cfg, region) })
	collect(func() { inv.LambdaFunctions = discovery.DiscoverLambdaFunctions(ctx, cfg, region) })
	collect(func() { inv.RDSInstances = discovery.DiscoverRDSInstances(ctx, cfg, region) })
	collect(func() { inv.RDSClusters = discovery.DiscoverRDSClusters(ctx, cfg, region) })
	collect(func() { inv.Route53Zones = discoverZonesWithRecords(ctx, cfg, region) })
	collect(func() { inv.DynamoDBTables = discovery.DiscoverDynamoDBTables(ctx, cfg, region) })
	collect(func() {
		// Services hang off clusters, so both fields are filled by the
		// same goroutine.
		inv.ECSClusters = discovery.DiscoverECSClusters(ctx, cfg, region)
		inv.ECSServices = []models.ECSService{}
		for _, cluster := range inv.ECSClusters {
			inv.ECSServices = append(inv.ECSServices,
				discovery.DiscoverECSServices(ctx, cfg, region, cluster.ClusterARN)...)
		}
	})
	collect(func() { inv.ECSTaskDefinitions = discovery.DiscoverECSTaskDefinitions(ctx, cfg, region) })
	collect(func() {
		inv.EKSClusters = discovery.DiscoverEKSClusters(ctx, cfg, region)
		inv.EKSNodeGroups = []models.EKSNodeGroup{}
		inv.EKSFargateProfiles = []models.EKSFargateProfile{}
		for _, cluster := range inv.EKSClusters {
			inv.EKSNodeGroups = append(inv.EKSNodeGroups,
				discovery.DiscoverEKSNodeGroups(ctx, cfg, region, cluster.ClusterName)...)
			inv.EKSFargateProfiles = append(inv.EKSFargateProfiles,
				discovery.DiscoverEKSFargateProfiles(ctx, cfg, region, cluster.ClusterName)...)
		}
	})
	collect(func() { inv.ACMCertificates = discovery.DiscoverACMCertificates(ctx, cfg, region) })
	collect(func() { inv.APIGatewayRestAPIs = discovery.DiscoverAPIGatewayRestAPIs(ctx, cfg, region) })
	collect(func() { inv.APIGatewayV2APIs = discovery.DiscoverAPIGatewayV2APIs(ctx, cfg, region) })
	collect(func() { inv.LogGroups = discovery.DiscoverLogGroups(ctx, cfg, region) })
	collect(func() { inv.Alarms = discovery.DiscoverAlarms(ctx, cfg, region) })
	collect(func() { inv.CloudFrontDistributions = discovery.DiscoverCloudFrontDistributions(ctx, cfg, region) })
	collect(func() { inv.Secrets = discovery.DiscoverSecrets(ctx, cfg, region) })
	collect(func() { inv.StateMachines = discovery.DiscoverStateMachines(ctx, cfg, region) })
	collect(func() { inv.SFNActivities = discovery.DiscoverSFNActivities(ctx, cfg, region) })
	collect(func() { inv.ClassicLoadBalancers = discovery.DiscoverClassicLoadBalancers(ctx, cfg, region) })
	collect(func() { inv.Pipelines = discovery.DiscoverPipelines(ctx, cfg, region) })

	wg.Wait()

	inv.DiscoveredAt = time.Now().UTC()
	inv.EnsureDefaults()

	logger.GetLogger().Info("Inventory built",
		zap.String("alias", alias), zap.Duration("duration", time.Since(start)))
	return inv
}

// discoverZonesWithRecords attaches record sets to each hosted zone
func discoverZonesWithRecords(ctx context.Context, cfg aws.Config, region string) []models.Route53Zone {
	zones := discovery.DiscoverRoute53Zones(ctx, cfg, region)
	for i := range zones {
		zones[i].Records = discovery.DiscoverRoute53Records(ctx, cfg, zones[i].ZoneID)
	}
	return zones
}
