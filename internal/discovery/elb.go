package discovery

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancing"

	"github.com/provision-iam/aws-inspector/internal/models"
)

// DiscoverClassicLoadBalancers enumerates classic load balancers in the region
func DiscoverClassicLoadBalancers(ctx context.Context, cfg aws.Config, region string) []models.ClassicLoadBalancer {
	return run("elb", func() ([]models.ClassicLoadBalancer, error) {
		client := elasticloadbalancing.NewFromConfig(cfg)

		var loadBalancers []models.ClassicLoadBalancer
		paginator := elasticloadbalancing.NewDescribeLoadBalancersPaginator(client,
			&elasticloadbalancing.DescribeLoadBalancersInput{})
		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			for _, lb := range page.LoadBalancerDescriptions {
				var instances []string
				for _, instance := range lb.Instances {
					instances = append(instances, aws.ToString(instance.InstanceId))
				}

				scheme := aws.ToString(lb.Scheme)
				if scheme == "" {
					scheme = "internet-facing"
				}

				record := models.ClassicLoadBalancer{
					Name:              aws.ToString(lb.LoadBalancerName),
					DNSName:           aws.ToString(lb.DNSName),
					Scheme:            scheme,
					VPCID:             aws.ToString(lb.VPCId),
					CreatedTime:       lb.CreatedTime,
					AvailabilityZones: lb.AvailabilityZones,
					Subnets:           lb.Subnets,
					SecurityGroups:    lb.SecurityGroups,
					Instances:         instances,
					Region:            region,
				}
				if lb.HealthCheck != nil {
					record.HealthCheckTarget = aws.ToString(lb.HealthCheck.Target)
				}
				loadBalancers = append(loadBalancers, record)
			}
		}
		return loadBalancers, nil
	})
}
