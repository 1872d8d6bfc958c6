package discovery

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/codepipeline"

	"github.com/provision-iam/aws-inspector/internal/logger"
	"github.com/provision-iam/aws-inspector/internal/models"

	"go.uber.org/zap"
)

// DiscoverPipelines enumerates deployment pipelines in the region. Each
// pipeline is fetched individually for its ARN, stages, and type; a
// per-pipeline failure skips that pipeline only.
func DiscoverPipelines(ctx context.Context, cfg aws.Config, region string) []models.Pipeline {
	return run("codepipeline", func() ([]models.Pipeline, error) {
		client := codepipeline.NewFromConfig(cfg)

		var pipelines []models.Pipeline
		paginator := codepipeline.NewListPipelinesPaginator(client, &codepipeline.ListPipelinesInput{})
		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			for _, summary := range page.Pipelines {
				name := aws.ToString(summary.Name)

				detail, err := client.GetPipeline(ctx, &codepipeline.GetPipelineInput{
					Name: aws.String(name),
				})
				if err != nil {
					logger.GetLogger().Warn("Failed to describe pipeline",
						zap.String("pipeline", name), zap.Error(err))
					continue
				}

				record := models.Pipeline{
					Name:   name,
					Region: region,
				}
				if detail.Pipeline != nil {
					record.RoleARN = aws.ToString(detail.Pipeline.RoleArn)
					record.PipelineType = string(detail.Pipeline.PipelineType)
					record.ExecutionMode = string(detail.Pipeline.ExecutionMode)
					record.StageCount = len(detail.Pipeline.Stages)
					for _, stage := range detail.Pipeline.Stages {
						record.Stages = append(record.Stages, aws.ToString(stage.Name))
					}
				}
				if detail.Metadata != nil {
					record.ARN = aws.ToString(detail.Metadata.PipelineArn)
					record.Created = detail.Metadata.Created
					record.Updated = detail.Metadata.Updated
				}
				pipelines = append(pipelines, record)
			}
		}
		return pipelines, nil
	})
}
