package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/nasa-client/cmd/nasa/commands"
	"github.com/fivetwenty-io/nasa-client/internal/constants"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "nasa",
	Short: "NASA open API CLI",
	Long: `A command-line interface for the NASA open APIs at api.nasa.gov.

This CLI covers the Astronomy Picture of the Day, the Near Earth Object Web
Service, the DONKI space weather database and Landsat imagery. The API key
is read from the config file, --api-key, NASA_API_KEY or a .env file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.nasa/config.yml)")
	rootCmd.PersistentFlags().StringP("api", "a", "", "API endpoint URL (default https://api.nasa.gov)")
	rootCmd.PersistentFlags().String("api-key", "", "API key (default: config, NASA_API_KEY or .env)")
	rootCmd.PersistentFlags().String("env-file", "", "dotenv file to read NASA_API_KEY from (\"-\" disables)")
	rootCmd.PersistentFlags().String("output", constants.FormatTable, "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("timeout", "", "HTTP request timeout (default 30s)")
	rootCmd.PersistentFlags().String("metrics-file", "", "write request metrics in Prometheus text format to this file")

	// Bind flags to viper
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("api", rootCmd.PersistentFlags().Lookup("api"))
	_ = viper.BindPFlag("api_key", rootCmd.PersistentFlags().Lookup("api-key"))
	_ = viper.BindPFlag("env_file", rootCmd.PersistentFlags().Lookup("env-file"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	_ = viper.BindPFlag("metrics_file", rootCmd.PersistentFlags().Lookup("metrics-file"))

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewAPODCommand())
	rootCmd.AddCommand(commands.NewNeoCommand())
	rootCmd.AddCommand(commands.NewDONKICommand())
	rootCmd.AddCommand(commands.NewEarthCommand())
	rootCmd.AddCommand(commands.NewRawCommand())
}

func initConfig() {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			_, _ = fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in ~/.nasa/config.yml
		configDir := filepath.Join(home, ".nasa")
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match
	viper.SetEnvPrefix("NASA")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			_, _ = fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	err := rootCmd.Execute()

	if metricsFile := viper.GetString("metrics_file"); metricsFile != "" {
		if metricsErr := commands.WriteMetricsFile(metricsFile); metricsErr != nil {
			_, _ = fmt.Fprintln(os.Stderr, metricsErr)
		}
	}

	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
