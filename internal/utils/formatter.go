package utils

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/provision-iam/aws-inspector/internal/models"
)

// Formatter handles different output formats
type Formatter struct {
	format string
}

// NewFormatter creates a new formatter instance
func NewFormatter(format string) *Formatter {
	return &Formatter{format: format}
}

// FormatOrgAccounts formats the flat account listing according to the
// configured format
func (f *Formatter) FormatOrgAccounts(accounts []models.OrgAccount, w io.Writer) error {
	switch f.format {
	case "json":
		return formatJSON(accounts, w)
	case "csv":
		return f.formatOrgAccountsCSV(accounts, w)
	case "table":
		return f.formatOrgAccountsTable(accounts, w)
	default:
		return fmt.Errorf("unsupported format: %s", f.format)
	}
}

// FormatIndexedAccounts formats the persisted accounts index
func (f *Formatter) FormatIndexedAccounts(cfg *models.AccountsConfig, w io.Writer) error {
	switch f.format {
	case "json":
		return formatJSON(cfg, w)
	case "csv":
		return f.formatIndexedAccountsCSV(cfg, w)
	case "table":
		return f.formatIndexedAccountsTable(cfg, w)
	default:
		return fmt.Errorf("unsupported format: %s", f.format)
	}
}

func (f *Formatter) formatOrgAccountsTable(accounts []models.OrgAccount, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer func() {
		_ = tw.Flush()
	}()

	if _, err := fmt.Fprintln(tw, "ACCOUNT ID\tNAME\tEMAIL\tSTATUS"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(tw, "----------\t----\t-----\t------"); err != nil {
		return err
	}

	for _, account := range accounts {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			account.ID, account.Name, account.Email, account.Status); err != nil {
			return err
		}
	}
	return nil
}

func (f *Formatter) formatOrgAccountsCSV(accounts []models.OrgAccount, w io.Writer) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"AccountID", "Name", "Email", "Status"}); err != nil {
		return err
	}
	for _, account := range accounts {
		if err := writer.Write([]string{account.ID, account.Name, account.Email, account.Status}); err != nil {
			return err
		}
	}
	return nil
}

func (f *Formatter) formatIndexedAccountsTable(cfg *models.AccountsConfig, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer func() {
		_ = tw.Flush()
	}()

	if _, err := fmt.Fprintln(tw, "ALIAS\tACCOUNT ID\tNAME\tOU PATH\tINVENTORY"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(tw, "-----\t----------\t----\t-------\t---------"); err != nil {
		return err
	}

	for _, alias := range sortedAliases(cfg.Accounts) {
		account := cfg.Accounts[alias]
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			alias, account.ID, account.Name, account.OUPath, account.InventoryPath); err != nil {
			return err
		}
	}
	return nil
}

func (f *Formatter) formatIndexedAccountsCSV(cfg *models.AccountsConfig, w io.Writer) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"Alias", "AccountID", "Name", "OUPath", "InventoryPath"}); err != nil {
		return err
	}
	for _, alias := range sortedAliases(cfg.Accounts) {
		account := cfg.Accounts[alias]
		if err := writer.Write([]string{alias, account.ID, account.Name, account.OUPath, account.InventoryPath}); err != nil {
			return err
		}
	}
	return nil
}

// InventorySummary renders per-resource-type counts for one inventory
func InventorySummary(inv *models.AccountInventory, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer func() {
		_ = tw.Flush()
	}()

	rows := []struct {
		name  string
		count int
	}{
		{"VPCs", len(inv.VPCs)},
		{"EC2 Instances", len(inv.EC2Instances)},
		{"Elastic IPs", len(inv.ElasticIPs)},
		{"S3 Buckets", len(inv.S3Buckets)},
		{"SQS Queues", len(inv.SQSQueues)},
		{"SNS Topics", len(inv.SNSTopics)},
		{"SES Identities", len(inv.SESIdentities)},
		{"IAM Roles", len(inv.IAMRoles)},
		{"IAM Policies", len(inv.IAMPolicies)},
		{"IAM Users", len(inv.IAMUsers)},
		{"IAM Groups", len(inv.IAMGroups)},
		{"Lambda Functions", len(inv.LambdaFunctions)},
		{"RDS Instances", len(inv.RDSInstances)},
		{"RDS Clusters", len(inv.RDSClusters)},
		{"Route53 Zones", len(inv.Route53Zones)},
		{"DynamoDB Tables", len(inv.DynamoDBTables)},
		{"ECS Clusters", len(inv.ECSClusters)},
		{"ECS Services", len(inv.ECSServices)},
		{"ECS Task Definitions", len(inv.ECSTaskDefinitions)},
		{"EKS Clusters", len(inv.EKSClusters)},
		{"EKS Node Groups", len(inv.EKSNodeGroups)},
		{"EKS Fargate Profiles", len(inv.EKSFargateProfiles)},
		{"ACM Certificates", len(inv.ACMCertificates)},
		{"API Gateway REST APIs", len(inv.APIGatewayRestAPIs)},
		{"API Gateway v2 APIs", len(inv.APIGatewayV2APIs)},
		{"Log Groups", len(inv.LogGroups)},
		{"Alarms", len(inv.Alarms)},
		{"CloudFront Distributions", len(inv.CloudFrontDistributions)},
		{"Secrets", len(inv.Secrets)},
		{"State Machines", len(inv.StateMachines)},
		{"SFN Activities", len(inv.SFNActivities)},
		{"Classic Load Balancers", len(inv.ClassicLoadBalancers)},
		{"Pipelines", len(inv.Pipelines)},
	}

	if _, err := fmt.Fprintln(tw, "RESOURCE\tCOUNT"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(tw, "--------\t-----"); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%d\n", row.name, row.count); err != nil {
			return err
		}
	}
	return nil
}

// FormatInventoryJSON writes a full inventory as indented JSON
func FormatInventoryJSON(inv *models.AccountInventory, w io.Writer) error {
	return formatJSON(inv, w)
}

func formatJSON(v interface{}, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func sortedAliases(accounts map[string]models.Account) []string {
	aliases := make([]string, 0, len(accounts))
	for alias := range accounts {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return aliases
}
