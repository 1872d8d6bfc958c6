package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/provision-iam/aws-inspector/internal/logger"
	"github.com/provision-iam/aws-inspector/internal/utils"
)

var (
	cfgFile string
	debug   bool
	noColor bool
	rootCmd = &cobra.Command{
		Use:   "aws-inspector",
		Short: "AWS Organization account discovery and resource inventory tool",
		Long: `A CLI tool that walks an AWS Organization's OU hierarchy, builds a
resource inventory for every account, and persists the results as a
YAML tree mirroring the organization structure.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			utils.SetColorOutput(!noColor)
			return logger.InitLogger(debug)
		},
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.aws-inspector.yaml)")
	rootCmd.PersistentFlags().String("region", "", "AWS region")
	rootCmd.PersistentFlags().String("profile", "", "AWS profile")
	rootCmd.PersistentFlags().String("data-root", "", "root directory for the inventory tree")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	// Bind flags to viper
	if err := viper.BindPFlag("aws.default_region", rootCmd.PersistentFlags().Lookup("region")); err != nil {
		fmt.Printf("Error binding region flag: %v\n", err)
	}
	if err := viper.BindPFlag("aws.profile", rootCmd.PersistentFlags().Lookup("profile")); err != nil {
		fmt.Printf("Error binding profile flag: %v\n", err)
	}
	if err := viper.BindPFlag("data.root", rootCmd.PersistentFlags().Lookup("data-root")); err != nil {
		fmt.Printf("Error binding data-root flag: %v\n", err)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".aws-inspector" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".aws-inspector")
	}

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Printf("%s %s\n", utils.Info("Using config file:"), viper.ConfigFileUsed())
	}
}
