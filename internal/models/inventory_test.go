package models

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEnsureDefaultsFillsAllResourceFamilies(t *testing.T) {
	inv := &AccountInventory{AccountID: "123456789012", AccountAlias: "sandbox"}
	inv.EnsureDefaults()

	if inv.SchemaVersion != InventorySchemaVersion {
		t.Errorf("expected schema version %q, got %q", InventorySchemaVersion, inv.SchemaVersion)
	}

	checks := map[string]bool{
		"ec2_instances":        inv.EC2Instances != nil,
		"dynamodb_tables":      inv.DynamoDBTables != nil,
		"ecs_clusters":         inv.ECSClusters != nil,
		"ecs_services":         inv.ECSServices != nil,
		"ecs_task_definitions": inv.ECSTaskDefinitions != nil,
		"eks_clusters":         inv.EKSClusters != nil,
		"eks_node_groups":      inv.EKSNodeGroups != nil,
		"eks_fargate_profiles": inv.EKSFargateProfiles != nil,
		"acm_certificates":     inv.ACMCertificates != nil,
		"api_gateway_rest":     inv.APIGatewayRestAPIs != nil,
		"api_gateway_v2":       inv.APIGatewayV2APIs != nil,
	}
	for family, filled := range checks {
		if !filled {
			t.Errorf("%s left nil after EnsureDefaults", family)
		}
	}
}

func TestInventorySerializesAllResourceFamilies(t *testing.T) {
	inv := &AccountInventory{
		AccountID:    "123456789012",
		AccountAlias: "sandbox",
		Region:       "us-east-1",
		EC2Instances: []EC2Instance{{
			InstanceID:   "i-0abc",
			InstanceType: "t3.micro",
			State:        "running",
			ARN:          "arn:aws:ec2:us-east-1:123456789012:instance/i-0abc",
			Region:       "us-east-1",
		}},
		DynamoDBTables: []DynamoDBTable{{
			TableName: "orders", Status: "ACTIVE", ItemCount: 42, Region: "us-east-1",
		}},
		EKSClusters: []EKSCluster{{
			ClusterName: "workloads", Status: "ACTIVE", Version: "1.31", Region: "us-east-1",
		}},
	}
	inv.EnsureDefaults()

	data, err := yaml.Marshal(inv)
	if err != nil {
		t.Fatalf("failed to marshal inventory: %v", err)
	}

	out := string(data)
	for _, key := range []string{
		"ec2_instances", "dynamodb_tables",
		"ecs_clusters", "ecs_services", "ecs_task_definitions",
		"eks_clusters", "eks_node_groups", "eks_fargate_profiles",
		"acm_certificates", "api_gateway_rest_apis", "api_gateway_v2_apis",
	} {
		if !strings.Contains(out, key+":") {
			t.Errorf("serialized inventory missing %q:\n%s", key, out)
		}
	}
	if !strings.Contains(out, "i-0abc") || !strings.Contains(out, "table_name: orders") {
		t.Errorf("resource records missing from output:\n%s", out)
	}
}
