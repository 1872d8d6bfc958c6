package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/provision-iam/aws-inspector/internal/common"
	"github.com/provision-iam/aws-inspector/internal/utils"
)

var discoverCmd = &cobra.Command{
	Use:   "discover <alias>",
	Short: "Rebuild the inventory for a single account",
	Long: `Rebuild and persist the resource inventory for one account, found by
alias in the accounts index. Run 'aws-inspector sync' first to create
the index.`,
	Args: cobra.ExactArgs(1),
	RunE: runDiscover,
}

func init() {
	rootCmd.AddCommand(discoverCmd)
}

func runDiscover(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	alias := args[0]

	setup, err := common.NewCommonSetup()
	if err != nil {
		return err
	}

	inv, err := setup.Manager.DiscoverAccount(ctx, alias)
	if err != nil {
		return fmt.Errorf("failed to discover account %s: %w", alias, err)
	}

	fmt.Printf("%s: %s (%s)\n", utils.Info("Account"), alias, inv.AccountID)
	fmt.Printf("%s: %s\n", utils.Info("Discovered at"), inv.DiscoveredAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Println()
	return utils.InventorySummary(inv, os.Stdout)
}
