package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/provision-iam/aws-inspector/internal/common"
	"github.com/provision-iam/aws-inspector/internal/utils"
)

var inventoryCmd = &cobra.Command{
	Use:   "inventory <alias>",
	Short: "Show the stored inventory for an account",
	Long: `Print the persisted resource inventory for one account, found by alias
in the accounts index. This reads the stored file only; use
'aws-inspector discover' to rebuild it.`,
	Args: cobra.ExactArgs(1),
	RunE: runInventory,
}

var inventoryFormat string

func init() {
	rootCmd.AddCommand(inventoryCmd)

	inventoryCmd.Flags().StringVarP(&inventoryFormat, "format", "f", "summary", "Output format (summary, json)")
}

func runInventory(cmd *cobra.Command, args []string) error {
	alias := args[0]

	setup, err := common.NewCommonSetup()
	if err != nil {
		return err
	}

	inv, err := setup.Manager.GetInventory(alias)
	if err != nil {
		return fmt.Errorf("failed to load inventory for %s: %w", alias, err)
	}
	if inv == nil {
		return fmt.Errorf("no inventory stored for %s; run 'aws-inspector discover %s' first", alias, alias)
	}

	switch inventoryFormat {
	case "json":
		return utils.FormatInventoryJSON(inv, os.Stdout)
	case "summary":
		fmt.Printf("%s: %s (%s)\n", utils.Info("Account"), alias, inv.AccountID)
		fmt.Printf("%s: %s\n", utils.Info("Discovered at"), inv.DiscoveredAt.Format("2006-01-02 15:04:05 MST"))
		fmt.Println()
		return utils.InventorySummary(inv, os.Stdout)
	default:
		return fmt.Errorf("unsupported format: %s", inventoryFormat)
	}
}
