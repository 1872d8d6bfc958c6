package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/provision-iam/aws-inspector/internal/common"
	"github.com/provision-iam/aws-inspector/internal/utils"
)

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List the organization's active accounts",
	Long: `List all active accounts in the AWS Organization. Results come from
the local cache when fresh; use --force-refresh to bypass it.`,
	RunE: runAccounts,
}

var (
	accountsFormat       string
	accountsForceRefresh bool
	accountsFromIndex    bool
)

func init() {
	rootCmd.AddCommand(accountsCmd)

	accountsCmd.Flags().StringVarP(&accountsFormat, "format", "f", "table", "Output format (table, json, csv)")
	accountsCmd.Flags().BoolVar(&accountsForceRefresh, "force-refresh", false, "Bypass the account cache and query the API")
	accountsCmd.Flags().BoolVar(&accountsFromIndex, "from-index", false, "Read from the persisted accounts index instead of the API")
}

func runAccounts(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	setup, err := common.NewCommonSetup()
	if err != nil {
		return err
	}

	formatter := utils.NewFormatter(accountsFormat)

	if accountsFromIndex {
		index, err := setup.Manager.GetAccountsConfig()
		if err != nil {
			return fmt.Errorf("failed to load accounts index: %w", err)
		}
		if index == nil {
			return fmt.Errorf("no accounts index found at %s; run 'aws-inspector sync' first", setup.Store.AccountsConfigPath())
		}
		return formatter.FormatIndexedAccounts(index, os.Stdout)
	}

	accounts, err := setup.Manager.GetAccounts(ctx, accountsForceRefresh)
	if err != nil {
		return fmt.Errorf("failed to get accounts: %w", err)
	}

	return formatter.FormatOrgAccounts(accounts, os.Stdout)
}
