package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/provision-iam/aws-inspector/internal/common"
	"github.com/provision-iam/aws-inspector/internal/utils"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Cache management commands",
	Long:  `Manage the local account cache.`,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the cached account snapshot",
	Long:  `Remove the cached account snapshot so the next listing queries the API.`,
	RunE:  runCacheClear,
}

var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show cache status",
	Long:  `Show the freshness of the cached account snapshot.`,
	RunE:  runCacheStatus,
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatusCmd)
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	setup, err := common.NewCommonSetup()
	if err != nil {
		return err
	}

	if err := setup.Manager.ClearCache(); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}

	fmt.Printf("Cache cleared successfully from directory: %s\n", setup.Config.Cache.Directory)
	return nil
}

func runCacheStatus(cmd *cobra.Command, args []string) error {
	setup, err := common.NewCommonSetup()
	if err != nil {
		return err
	}

	fmt.Printf("%s: %s\n", utils.Info("Cache Directory"), setup.Config.Cache.Directory)
	fmt.Printf("%s: %d hours\n", utils.Info("Accounts TTL"), setup.Config.Cache.AccountsTTLHours)
	fmt.Println()

	snapshot, err := setup.FileCache.GetAccounts()
	if err != nil {
		fmt.Println(utils.Warning("Accounts: not cached"))
		return nil
	}

	elapsed := time.Since(snapshot.CachedAt)
	remaining := time.Duration(snapshot.TTLHours)*time.Hour - elapsed
	fmt.Printf("%s: %d accounts, cached %s ago, expires in %s\n",
		utils.Success("Accounts"), len(snapshot.Accounts),
		formatDuration(elapsed), formatDuration(remaining))
	return nil
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.0fs", d.Seconds())
	} else if d < time.Hour {
		return fmt.Sprintf("%.0fm", d.Minutes())
	} else if d < 24*time.Hour {
		return fmt.Sprintf("%.1fh", d.Hours())
	}
	return fmt.Sprintf("%.1fd", d.Hours()/24)
}
