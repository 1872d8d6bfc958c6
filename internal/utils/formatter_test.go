package utils

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/provision-iam/aws-inspector/internal/models"
)

func testOrgAccounts() []models.OrgAccount {
	return []models.OrgAccount{
		{ID: "111111111111", Name: "management", Email: "mgmt@example.com", Status: "ACTIVE"},
		{ID: "222222222222", Name: "production", Email: "prod@example.com", Status: "ACTIVE"},
	}
}

func TestFormatOrgAccountsTable(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewFormatter("table")

	if err := formatter.FormatOrgAccounts(testOrgAccounts(), &buf); err != nil {
		t.Fatalf("FormatOrgAccounts failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"ACCOUNT ID", "111111111111", "production", "mgmt@example.com"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatOrgAccountsJSON(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewFormatter("json")

	if err := formatter.FormatOrgAccounts(testOrgAccounts(), &buf); err != nil {
		t.Fatalf("FormatOrgAccounts failed: %v", err)
	}

	var decoded []models.OrgAccount
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 2 {
		t.Errorf("expected 2 accounts, got %d", len(decoded))
	}
}

func TestFormatOrgAccountsCSV(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewFormatter("csv")

	if err := formatter.FormatOrgAccounts(testOrgAccounts(), &buf); err != nil {
		t.Fatalf("FormatOrgAccounts failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "AccountID,") {
		t.Errorf("unexpected header: %q", lines[0])
	}
}

func TestFormatOrgAccountsUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewFormatter("xml")

	if err := formatter.FormatOrgAccounts(testOrgAccounts(), &buf); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestFormatIndexedAccountsTableSorted(t *testing.T) {
	cfg := &models.AccountsConfig{
		SchemaVersion: "2.0",
		Accounts: map[string]models.Account{
			"staging":    {ID: "333333333333", Name: "staging", OUPath: "Workloads"},
			"production": {ID: "222222222222", Name: "production", OUPath: "Workloads"},
		},
	}

	var buf bytes.Buffer
	formatter := NewFormatter("table")
	if err := formatter.FormatIndexedAccounts(cfg, &buf); err != nil {
		t.Fatalf("FormatIndexedAccounts failed: %v", err)
	}

	out := buf.String()
	prodIdx := strings.Index(out, "production")
	stagingIdx := strings.Index(out, "staging")
	if prodIdx == -1 || stagingIdx == -1 {
		t.Fatalf("missing aliases in output:\n%s", out)
	}
	if prodIdx > stagingIdx {
		t.Errorf("expected aliases sorted, got:\n%s", out)
	}
}

func TestInventorySummary(t *testing.T) {
	inv := &models.AccountInventory{
		AccountID:      "123456789012",
		AccountAlias:   "sandbox",
		VPCs:           []models.VPC{{ID: "vpc-0abc"}},
		S3Buckets:      []models.S3Bucket{{Name: "a"}, {Name: "b"}},
		EC2Instances:   []models.EC2Instance{{InstanceID: "i-0abc"}},
		DynamoDBTables: []models.DynamoDBTable{{TableName: "orders"}},
	}
	inv.EnsureDefaults()

	var buf bytes.Buffer
	if err := InventorySummary(inv, &buf); err != nil {
		t.Fatalf("InventorySummary failed: %v", err)
	}

	out := buf.String()
	for _, row := range []string{
		"VPCs", "S3 Buckets", "EC2 Instances", "DynamoDB Tables",
		"ECS Clusters", "EKS Clusters", "ACM Certificates", "API Gateway REST APIs",
	} {
		if !strings.Contains(out, row) {
			t.Errorf("summary missing %q row:\n%s", row, out)
		}
	}
}

func TestColorizeRespectsToggle(t *testing.T) {
	SetColorOutput(true)
	colored := Info("hello")
	if !strings.Contains(colored, "hello") || colored == "hello" {
		t.Errorf("expected colored text, got %q", colored)
	}

	SetColorOutput(false)
	defer SetColorOutput(true)
	if got := Info("hello"); got != "hello" {
		t.Errorf("expected plain text with colors off, got %q", got)
	}
}
