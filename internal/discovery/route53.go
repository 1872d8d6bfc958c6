package discovery

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53"

	"github.com/provision-iam/aws-inspector/internal/models"
)

// Route53 is a global service: the region parameter is accepted for
// contract uniformity but ignored by the requests.

// DiscoverRoute53Zones enumerates all hosted zones in the account
func DiscoverRoute53Zones(ctx context.Context, cfg aws.Config, region string) []models.Route53Zone {
	return run("route53", func() ([]models.Route53Zone, error) {
		client := route53.NewFromConfig(cfg)

		var zones []models.Route53Zone
		paginator := route53.NewListHostedZonesPaginator(client, &route53.ListHostedZonesInput{})
		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			for _, zoneData := range page.HostedZones {
				// The API returns /hostedzone/Z123...; keep just the id.
				zoneID := strings.TrimPrefix(aws.ToString(zoneData.Id), "/hostedzone/")

				zone := models.Route53Zone{
					ZoneID:      zoneID,
					Name:        aws.ToString(zoneData.Name),
					RecordCount: aws.ToInt64(zoneData.ResourceRecordSetCount),
				}
				if zoneData.Config != nil {
					zone.IsPrivate = zoneData.Config.PrivateZone
				}
				zones = append(zones, zone)
			}
		}
		return zones, nil
	})
}

// DiscoverRoute53Records enumerates all record sets in one hosted zone.
// Alias records are surfaced with a single "ALIAS <dns>" value.
func DiscoverRoute53Records(ctx context.Context, cfg aws.Config, zoneID string) []models.Route53Record {
	return run("route53/records", func() ([]models.Route53Record, error) {
		client := route53.NewFromConfig(cfg)

		var records []models.Route53Record
		input := &route53.ListResourceRecordSetsInput{HostedZoneId: aws.String(zoneID)}
		for {
			page, err := client.ListResourceRecordSets(ctx, input)
			if err != nil {
				return nil, err
			}
			for _, rrs := range page.ResourceRecordSets {
				record := models.Route53Record{
					Name: aws.ToString(rrs.Name),
					Type: string(rrs.Type),
					TTL:  aws.ToInt64(rrs.TTL),
				}
				if rrs.AliasTarget != nil {
					record.IsAlias = true
					record.Values = []string{"ALIAS " + aws.ToString(rrs.AliasTarget.DNSName)}
				} else {
					for _, rr := range rrs.ResourceRecords {
						record.Values = append(record.Values, aws.ToString(rr.Value))
					}
				}
				records = append(records, record)
			}

			if !page.IsTruncated {
				break
			}
			input.StartRecordName = page.NextRecordName
			input.StartRecordType = page.NextRecordType
			input.StartRecordIdentifier = page.NextRecordIdentifier
		}
		return records, nil
	})
}
