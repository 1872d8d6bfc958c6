package discovery

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/acm"

	"github.com/provision-iam/aws-inspector/internal/logger"
	"github.com/provision-iam/aws-inspector/internal/models"

	"go.uber.org/zap"
)

// DiscoverACMCertificates enumerates ACM certificates in the region.
// Each certificate is described for its validity window and usage; a
// describe failure degrades to the listing info.
func DiscoverACMCertificates(ctx context.Context, cfg aws.Config, region string) []models.ACMCertificate {
	return run("acm", func() ([]models.ACMCertificate, error) {
		client := acm.NewFromConfig(cfg)

		var certificates []models.ACMCertificate
		paginator := acm.NewListCertificatesPaginator(client, &acm.ListCertificatesInput{})
		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			for _, summary := range page.CertificateSummaryList {
				certARN := aws.ToString(summary.CertificateArn)

				record := models.ACMCertificate{
					ARN:             certARN,
					DomainName:      aws.ToString(summary.DomainName),
					Status:          string(summary.Status),
					CertificateType: string(summary.Type),
					Region:          region,
				}

				detail, err := client.DescribeCertificate(ctx, &acm.DescribeCertificateInput{
					CertificateArn: aws.String(certARN),
				})
				if err != nil {
					logger.GetLogger().Debug("Failed to describe certificate",
						zap.String("arn", certARN), zap.Error(err))
				} else if cert := detail.Certificate; cert != nil {
					record.Issuer = aws.ToString(cert.Issuer)
					record.NotBefore = cert.NotBefore
					record.NotAfter = cert.NotAfter
					record.InUseBy = cert.InUseBy
					record.SubjectAlternativeNames = cert.SubjectAlternativeNames
				}

				certificates = append(certificates, record)
			}
		}
		return certificates, nil
	})
}
