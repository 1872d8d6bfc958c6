package discovery

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/apigateway"
	"github.com/aws/aws-sdk-go-v2/service/apigatewayv2"

	"github.com/provision-iam/aws-inspector/internal/models"
)

// DiscoverAPIGatewayRestAPIs enumerates v1 (REST) APIs in the region
func DiscoverAPIGatewayRestAPIs(ctx context.Context, cfg aws.Config, region string) []models.APIGatewayRestAPI {
	return run("apigateway", func() ([]models.APIGatewayRestAPI, error) {
		client := apigateway.NewFromConfig(cfg)

		var apis []models.APIGatewayRestAPI
		paginator := apigateway.NewGetRestApisPaginator(client, &apigateway.GetRestApisInput{})
		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			for _, api := range page.Items {
				record := models.APIGatewayRestAPI{
					ID:           aws.ToString(api.Id),
					Name:         aws.ToString(api.Name),
					Description:  aws.ToString(api.Description),
					CreatedDate:  api.CreatedDate,
					APIKeySource: string(api.ApiKeySource),
					Tags:         api.Tags,
					Region:       region,
				}
				if ec := api.EndpointConfiguration; ec != nil && len(ec.Types) > 0 {
					record.EndpointType = string(ec.Types[0])
				}
				apis = append(apis, record)
			}
		}
		return apis, nil
	})
}

// DiscoverAPIGatewayV2APIs enumerates v2 (HTTP and WebSocket) APIs in
// the region. GetApis has no paginator, so the token loop is manual.
func DiscoverAPIGatewayV2APIs(ctx context.Context, cfg aws.Config, region string) []models.APIGatewayV2API {
	return run("apigatewayv2", func() ([]models.APIGatewayV2API, error) {
		client := apigatewayv2.NewFromConfig(cfg)

		var apis []models.APIGatewayV2API
		var nextToken *string
		for {
			out, err := client.GetApis(ctx, &apigatewayv2.GetApisInput{NextToken: nextToken})
			if err != nil {
				return nil, err
			}
			for _, api := range out.Items {
				apis = append(apis, models.APIGatewayV2API{
					APIID:        aws.ToString(api.ApiId),
					Name:         aws.ToString(api.Name),
					Description:  aws.ToString(api.Description),
					ProtocolType: string(api.ProtocolType),
					APIEndpoint:  aws.ToString(api.ApiEndpoint),
					CreatedDate:  api.CreatedDate,
					Tags:         api.Tags,
					Region:       region,
				})
			}
			if aws.ToString(out.NextToken) == "" {
				break
			}
			nextToken = out.NextToken
		}
		return apis, nil
	})
}
