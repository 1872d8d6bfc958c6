package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/provision-iam/aws-inspector/internal/common"
	"github.com/provision-iam/aws-inspector/internal/utils"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Discover the organization and build inventories for every account",
	Long: `Walk the AWS Organization's OU hierarchy, build a resource inventory
for every active account, persist each inventory under its OU-derived
path, and rewrite the accounts index.`,
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	setup, err := common.NewCommonSetup()
	if err != nil {
		return err
	}

	fmt.Printf("%s: %s\n", utils.Info("Data root"), utils.Highlight(setup.Config.Data.Root))

	result, err := setup.Manager.SyncOrganization(ctx)
	if err != nil {
		return fmt.Errorf("failed to sync organization: %w", err)
	}

	if result.OrganizationID == "" {
		fmt.Println(utils.Warning("No organization found; nothing was synced."))
		return nil
	}

	fmt.Printf("%s: %s\n", utils.Info("Organization"), result.OrganizationID)
	fmt.Printf("%s: %d total, %d synced, %d failed\n",
		utils.Info("Accounts"), result.AccountsTotal, result.AccountsSynced, result.AccountsFailed)
	fmt.Printf("%s: %s\n", utils.Info("Accounts index"), result.IndexPath)

	if result.AccountsFailed > 0 {
		fmt.Println(utils.Warning("Some accounts failed to sync; see the logs for details."))
	} else {
		fmt.Println(utils.Success("Sync complete."))
	}
	return nil
}
