package discovery

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"

	"github.com/provision-iam/aws-inspector/internal/models"
)

// DiscoverSecrets enumerates Secrets Manager secret metadata in the
// region. Only metadata (names, ARNs, rotation status) is retrieved;
// secret values are never read.
func DiscoverSecrets(ctx context.Context, cfg aws.Config, region string) []models.SecretMetadata {
	return run("secretsmanager", func() ([]models.SecretMetadata, error) {
		client := secretsmanager.NewFromConfig(cfg)

		var secrets []models.SecretMetadata
		paginator := secretsmanager.NewListSecretsPaginator(client, &secretsmanager.ListSecretsInput{})
		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			for _, secret := range page.SecretList {
				tags := make(map[string]string)
				for _, tag := range secret.Tags {
					tags[aws.ToString(tag.Key)] = aws.ToString(tag.Value)
				}
				secrets = append(secrets, models.SecretMetadata{
					Name:             aws.ToString(secret.Name),
					ARN:              aws.ToString(secret.ARN),
					Description:      aws.ToString(secret.Description),
					KMSKeyID:         aws.ToString(secret.KmsKeyId),
					RotationEnabled:  aws.ToBool(secret.RotationEnabled),
					LastRotatedDate:  secret.LastRotatedDate,
					LastAccessedDate: secret.LastAccessedDate,
					Tags:             tags,
					Region:           region,
				})
			}
		}
		return secrets, nil
	})
}
