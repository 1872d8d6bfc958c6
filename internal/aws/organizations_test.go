package aws

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/provision-iam/aws-inspector/internal/models"
)

func TestNewAccountCarriesSSORole(t *testing.T) {
	client := &OrgClient{aliasPrefix: "provision-iam-", ssoRole: "AdministratorAccess"}

	account := client.newAccount("123456789012", "provision-iam-production", "Workloads")

	if account.ID != "123456789012" || account.AccountID != "123456789012" || account.AccountNumber != "123456789012" {
		t.Errorf("id fields not populated: %+v", account)
	}
	if account.OUPath != "Workloads" {
		t.Errorf("expected OU path Workloads, got %q", account.OUPath)
	}
	if account.SSORole != "AdministratorAccess" {
		t.Errorf("expected SSO role AdministratorAccess, got %q", account.SSORole)
	}
}

func TestDiscoveredAccountSerializesSSORole(t *testing.T) {
	client := &OrgClient{ssoRole: models.DefaultSSORole}

	index := models.AccountsConfig{
		SchemaVersion:  "2.0",
		OrganizationID: "o-abc123",
		Accounts: map[string]models.Account{
			"production": client.newAccount("123456789012", "production", "Workloads"),
		},
	}

	data, err := yaml.Marshal(&index)
	if err != nil {
		t.Fatalf("failed to marshal index: %v", err)
	}
	if !strings.Contains(string(data), "sso_role: AdministratorAccess") {
		t.Errorf("serialized index missing sso_role:\n%s", data)
	}
}

func TestNewAccountUsesConfiguredRole(t *testing.T) {
	client := &OrgClient{ssoRole: "ReadOnlyAccess"}
	if got := client.newAccount("111111111111", "sandbox", "").SSORole; got != "ReadOnlyAccess" {
		t.Errorf("expected configured role override, got %q", got)
	}
}
