package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "kqlalchemy",
	Short: "A SQL dialect adapter for Azure Data Explorer (Kusto)",
	Long: `kqlalchemy lets SQL tooling talk to an Azure Data Explorer cluster
as if it were a relational database.

It connects over the cluster's TDS endpoint with Azure AD token
authentication, answers schema reflection through information-schema
queries or native management commands, and runs pass-through SQL.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.kqlalchemy.yaml)")
	rootCmd.PersistentFlags().String("cluster", "", "Kusto cluster name (e.g. \"help\" for help.kusto.windows.net)")
	rootCmd.PersistentFlags().String("database", "", "database to connect to")
	rootCmd.PersistentFlags().String("tenant-id", "", "AAD tenant for service-principal auth")
	rootCmd.PersistentFlags().String("client-id", "", "AAD application (client) ID for service-principal auth")
	rootCmd.PersistentFlags().String("client-secret", "", "AAD client secret for service-principal auth")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug output")

	// Bind flags to viper under the config-file key spellings
	_ = viper.BindPFlag("cluster", rootCmd.PersistentFlags().Lookup("cluster"))
	_ = viper.BindPFlag("database", rootCmd.PersistentFlags().Lookup("database"))
	_ = viper.BindPFlag("tenantId", rootCmd.PersistentFlags().Lookup("tenant-id"))
	_ = viper.BindPFlag("clientId", rootCmd.PersistentFlags().Lookup("client-id"))
	_ = viper.BindPFlag("clientSecret", rootCmd.PersistentFlags().Lookup("client-secret"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
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

		// Search config in home directory with name ".kqlalchemy" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".kqlalchemy")
	}

	viper.SetEnvPrefix("KQLALCHEMY")
	viper.AutomaticEnv() // read in environment variables that match

	// Config file is optional; flags and env cover the required settings.
	_ = viper.ReadInConfig()
}
