package discovery

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"

	"github.com/provision-iam/aws-inspector/internal/models"
)

// DiscoverLambdaFunctions enumerates all functions in the region
func DiscoverLambdaFunctions(ctx context.Context, cfg aws.Config, region string) []models.LambdaFunction {
	return run("lambda", func() ([]models.LambdaFunction, error) {
		client := lambda.NewFromConfig(cfg)

		var functions []models.LambdaFunction
		paginator := lambda.NewListFunctionsPaginator(client, &lambda.ListFunctionsInput{})
		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			for _, fn := range page.Functions {
				function := models.LambdaFunction{
					FunctionName:     aws.ToString(fn.FunctionName),
					Runtime:          string(fn.Runtime),
					MemorySize:       aws.ToInt32(fn.MemorySize),
					Timeout:          aws.ToInt32(fn.Timeout),
					LastModified:     aws.ToString(fn.LastModified),
					ARN:              aws.ToString(fn.FunctionArn),
					Region:           region,
					ExecutionRoleARN: aws.ToString(fn.Role),
				}
				if fn.VpcConfig != nil {
					function.VPCID = aws.ToString(fn.VpcConfig.VpcId)
					function.SubnetIDs = fn.VpcConfig.SubnetIds
					function.SecurityGroupIDs = fn.VpcConfig.SecurityGroupIds
				}
				if fn.DeadLetterConfig != nil {
					function.DeadLetterTargetARN = aws.ToString(fn.DeadLetterConfig.TargetArn)
				}
				for _, layer := range fn.Layers {
					if arn := aws.ToString(layer.Arn); arn != "" {
						function.LayerARNs = append(function.LayerARNs, arn)
					}
				}
				functions = append(functions, function)
			}
		}
		return functions, nil
	})
}
