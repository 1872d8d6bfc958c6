package discovery

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/provision-iam/aws-inspector/internal/logger"
	"github.com/provision-iam/aws-inspector/internal/models"

	"go.uber.org/zap"
)

// DiscoverVPCs enumerates VPCs with their internet gateways, NAT gateways,
// and subnets. VPCs without subnets are skipped.
func DiscoverVPCs(ctx context.Context, cfg aws.Config, region string) []models.VPC {
	return run("ec2", func() ([]models.VPC, error) {
		client := ec2.NewFromConfig(cfg)

		var vpcs []models.VPC
		paginator := ec2.NewDescribeVpcsPaginator(client, &ec2.DescribeVpcsInput{})
		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			for _, vpcData := range page.Vpcs {
				vpcID := aws.ToString(vpcData.VpcId)

				igws := discoverInternetGateways(ctx, client, vpcID)
				// NAT availability is attached to the subnet record, so the
				// gateway map must exist before subnets are assembled.
				natMap := discoverNATGateways(ctx, client, vpcID)
				subnets := discoverSubnets(ctx, client, vpcID, natMap)

				if len(subnets) == 0 {
					logger.GetLogger().Debug("Skipping VPC with no subnets", zap.String("vpc_id", vpcID))
					continue
				}

				vpcs = append(vpcs, models.VPC{
					ID:               vpcID,
					CIDR:             aws.ToString(vpcData.CidrBlock),
					IsDefault:        aws.ToBool(vpcData.IsDefault),
					InternetGateways: igws,
					Subnets:          subnets,
				})
			}
		}
		return vpcs, nil
	})
}

// DiscoverEC2Instances enumerates EC2 instances across all states.
// accountID is needed to construct instance ARNs, which the API does
// not return.
func DiscoverEC2Instances(ctx context.Context, cfg aws.Config, accountID, region string) []models.EC2Instance {
	return run("ec2/instances", func() ([]models.EC2Instance, error) {
		client := ec2.NewFromConfig(cfg)

		var instances []models.EC2Instance
		paginator := ec2.NewDescribeInstancesPaginator(client, &ec2.DescribeInstancesInput{})
		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			for _, reservation := range page.Reservations {
				for _, inst := range reservation.Instances {
					instanceID := aws.ToString(inst.InstanceId)

					var name string
					tags := map[string]string{}
					for _, tag := range inst.Tags {
						key := aws.ToString(tag.Key)
						tags[key] = aws.ToString(tag.Value)
						if key == "Name" {
							name = aws.ToString(tag.Value)
						}
					}

					securityGroups := []string{}
					for _, sg := range inst.SecurityGroups {
						securityGroups = append(securityGroups, aws.ToString(sg.GroupId))
					}

					var profileARN string
					if inst.IamInstanceProfile != nil {
						profileARN = aws.ToString(inst.IamInstanceProfile.Arn)
					}

					state := "unknown"
					if inst.State != nil {
						state = string(inst.State.Name)
					}

					instances = append(instances, models.EC2Instance{
						InstanceID:         instanceID,
						InstanceType:       string(inst.InstanceType),
						State:              state,
						PrivateIP:          aws.ToString(inst.PrivateIpAddress),
						PublicIP:           aws.ToString(inst.PublicIpAddress),
						VPCID:              aws.ToString(inst.VpcId),
						SubnetID:           aws.ToString(inst.SubnetId),
						LaunchTime:         inst.LaunchTime,
						Name:               name,
						Platform:           string(inst.Platform),
						ImageID:            aws.ToString(inst.ImageId),
						KeyName:            aws.ToString(inst.KeyName),
						SecurityGroups:     securityGroups,
						IAMInstanceProfile: profileARN,
						Tags:               tags,
						ARN:                "arn:aws:ec2:" + region + ":" + accountID + ":instance/" + instanceID,
						Region:             region,
					})
				}
			}
		}
		return instances, nil
	})
}

// DiscoverElasticIPs enumerates allocated elastic IP addresses
func DiscoverElasticIPs(ctx context.Context, cfg aws.Config, region string) []models.ElasticIP {
	return run("ec2/addresses", func() ([]models.ElasticIP, error) {
		client := ec2.NewFromConfig(cfg)

		out, err := client.DescribeAddresses(ctx, &ec2.DescribeAddressesInput{})
		if err != nil {
			return nil, err
		}

		var eips []models.ElasticIP
		for _, addr := range out.Addresses {
			domain := string(addr.Domain)
			if domain == "" {
				domain = "vpc"
			}
			eips = append(eips, models.ElasticIP{
				AllocationID:  aws.ToString(addr.AllocationId),
				PublicIP:      aws.ToString(addr.PublicIp),
				AssociationID: aws.ToString(addr.AssociationId),
				Domain:        domain,
				Region:        region,
			})
		}
		return eips, nil
	})
}

// discoverInternetGateways lists internet gateways attached to a VPC.
// Failures degrade to an empty list for this VPC only.
func discoverInternetGateways(ctx context.Context, client *ec2.Client, vpcID string) []models.InternetGateway {
	out, err := client.DescribeInternetGateways(ctx, &ec2.DescribeInternetGatewaysInput{
		Filters: []ec2types.Filter{
			{Name: aws.String("attachment.vpc-id"), Values: []string{vpcID}},
		},
	})
	if err != nil {
		logger.GetLogger().Warn("Failed to discover internet gateways",
			zap.String("vpc_id", vpcID), zap.Error(err))
		return []models.InternetGateway{}
	}

	gateways := []models.InternetGateway{}
	for _, igw := range out.InternetGateways {
		state := "detached"
		if len(igw.Attachments) > 0 {
			state = "attached"
		}
		gateways = append(gateways, models.InternetGateway{
			ID:    aws.ToString(igw.InternetGatewayId),
			State: state,
		})
	}
	return gateways
}

// discoverNATGateways maps subnet id to its NAT gateway for one VPC
func discoverNATGateways(ctx context.Context, client *ec2.Client, vpcID string) map[string]models.NATGateway {
	natMap := make(map[string]models.NATGateway)

	paginator := ec2.NewDescribeNatGatewaysPaginator(client, &ec2.DescribeNatGatewaysInput{
		Filter: []ec2types.Filter{
			{Name: aws.String("vpc-id"), Values: []string{vpcID}},
			{Name: aws.String("state"), Values: []string{"available", "pending"}},
		},
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			logger.GetLogger().Warn("Failed to discover NAT gateways",
				zap.String("vpc_id", vpcID), zap.Error(err))
			return natMap
		}
		for _, nat := range page.NatGateways {
			subnetID := aws.ToString(nat.SubnetId)
			if subnetID == "" {
				continue
			}
			gw := models.NATGateway{
				ID:    aws.ToString(nat.NatGatewayId),
				State: string(nat.State),
			}
			if len(nat.NatGatewayAddresses) > 0 {
				gw.ElasticIP = aws.ToString(nat.NatGatewayAddresses[0].AllocationId)
				gw.PublicIP = aws.ToString(nat.NatGatewayAddresses[0].PublicIp)
			}
			natMap[subnetID] = gw
		}
	}
	return natMap
}

// publicSubnetIDs identifies public subnets: any subnet associated with a
// route table that routes through an internet gateway.
func publicSubnetIDs(ctx context.Context, client *ec2.Client, vpcID string) map[string]bool {
	public := make(map[string]bool)

	paginator := ec2.NewDescribeRouteTablesPaginator(client, &ec2.DescribeRouteTablesInput{
		Filters: []ec2types.Filter{
			{Name: aws.String("vpc-id"), Values: []string{vpcID}},
		},
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			logger.GetLogger().Warn("Failed to describe route tables",
				zap.String("vpc_id", vpcID), zap.Error(err))
			return public
		}
		for _, rt := range page.RouteTables {
			hasIGWRoute := false
			for _, route := range rt.Routes {
				if strings.HasPrefix(aws.ToString(route.GatewayId), "igw-") {
					hasIGWRoute = true
					break
				}
			}
			if !hasIGWRoute {
				continue
			}
			for _, assoc := range rt.Associations {
				if subnetID := aws.ToString(assoc.SubnetId); subnetID != "" {
					public[subnetID] = true
				}
			}
		}
	}
	return public
}

// discoverSubnets lists a VPC's subnets with public/private classification
// and NAT gateway association.
func discoverSubnets(ctx context.Context, client *ec2.Client, vpcID string, natMap map[string]models.NATGateway) []models.Subnet {
	public := publicSubnetIDs(ctx, client, vpcID)

	subnets := []models.Subnet{}
	paginator := ec2.NewDescribeSubnetsPaginator(client, &ec2.DescribeSubnetsInput{
		Filters: []ec2types.Filter{
			{Name: aws.String("vpc-id"), Values: []string{vpcID}},
		},
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			logger.GetLogger().Warn("Failed to discover subnets",
				zap.String("vpc_id", vpcID), zap.Error(err))
			return subnets
		}
		for _, s := range page.Subnets {
			subnetID := aws.ToString(s.SubnetId)
			subnetType := "private"
			if public[subnetID] {
				subnetType = "public"
			}
			subnet := models.Subnet{
				ID:   subnetID,
				CIDR: aws.ToString(s.CidrBlock),
				AZ:   aws.ToString(s.AvailabilityZone),
				Type: subnetType,
			}
			if nat, ok := natMap[subnetID]; ok {
				natCopy := nat
				subnet.NATGateway = &natCopy
			}
			subnets = append(subnets, subnet)
		}
	}
	return subnets
}
