package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/nasa-client/internal/constants"
)

const (
	configDirName  = ".nasa"
	configFileName = "config.yml"
)

// Config represents the CLI configuration.
type Config struct {
	API     string `json:"api,omitempty"      yaml:"api,omitempty"`
	APIKey  string `json:"api_key,omitempty"  yaml:"api_key,omitempty"`
	EnvFile string `json:"env_file,omitempty" yaml:"env_file,omitempty"`
	Output  string `json:"output,omitempty"   yaml:"output,omitempty"`
	Timeout string `json:"timeout,omitempty"  yaml:"timeout,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage the NASA CLI configuration stored in $HOME/.nasa/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())
	cmd.AddCommand(newConfigSetKeyCommand())
	cmd.AddCommand(newConfigClearCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration. The API key is masked.",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			if config.APIKey != "" {
				config.APIKey = constants.MaskedSecret
			}

			return render(cmd, config, func(w io.Writer) error {
				rows := [][]string{
					{"api", orNA(config.API)},
					{"api_key", orNA(config.APIKey)},
					{"env_file", orNA(config.EnvFile)},
					{"output", orNA(config.Output)},
					{"timeout", orNA(config.Timeout)},
				}

				return renderTable(w, "", []string{"Property", "Value"}, rows)
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set one of api, env_file, output or timeout. Use set-key for the API key.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := setConfigValue(config, args[0], args[1])
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s to %s\n", args[0], args[1])

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove one of api, api_key, env_file, output or timeout from the configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			switch args[0] {
			case "api":
				config.API = ""
			case "api_key":
				config.APIKey = ""
			case "env_file":
				config.EnvFile = ""
			case "output":
				config.Output = ""
			case "timeout":
				config.Timeout = ""
			default:
				return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, args[0])
			}

			err := saveConfigStruct(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", args[0])

			return nil
		},
	}
}

func newConfigSetKeyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-key [KEY]",
		Short: "Store the API key",
		Long: `Store the api.nasa.gov API key in the configuration file.

Without an argument the key is read from the terminal without echo, or from
standard input when it is not a terminal.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var key string
			if len(args) == 1 {
				key = args[0]
			} else {
				var err error

				key, err = readAPIKey(cmd)
				if err != nil {
					return err
				}
			}

			key = strings.TrimSpace(key)
			if key == "" {
				return constants.ErrEmptyAPIKey
			}

			config := loadConfig()
			config.APIKey = key

			err := saveConfigStruct(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "API key saved")

			return nil
		},
	}
}

func newConfigClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear configuration",
		Long:  "Remove the configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile, err := configFilePath()
			if err != nil {
				return err
			}

			err = os.Remove(configFile)
			if err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to remove config file: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Configuration cleared")

			return nil
		},
	}
}

// readAPIKey prompts for the key without echo on a terminal.
func readAPIKey(cmd *cobra.Command) (string, error) {
	in := cmd.InOrStdin()

	if file, ok := in.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		_, _ = fmt.Fprint(cmd.ErrOrStderr(), "API key: ")

		raw, err := term.ReadPassword(int(file.Fd()))
		_, _ = fmt.Fprintln(cmd.ErrOrStderr())

		if err != nil {
			return "", fmt.Errorf("failed to read API key: %w", err)
		}

		return string(raw), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read API key: %w", err)
	}

	return line, nil
}

func setConfigValue(config *Config, key, value string) error {
	switch key {
	case "api":
		config.API = value
	case "api_key":
		return constants.ErrUseSetKey
	case "env_file":
		config.EnvFile = value
	case "output":
		value = strings.ToLower(value)
		if value != constants.FormatTable && value != constants.FormatJSON && value != constants.FormatYAML {
			return fmt.Errorf("%w: %q", constants.ErrInvalidOutput, value)
		}

		config.Output = value
	case "timeout":
		timeout, err := time.ParseDuration(value)
		if err != nil || timeout <= 0 {
			return fmt.Errorf("%w: %q", constants.ErrInvalidTimeout, value)
		}

		config.Timeout = value
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

// loadConfig reads the persisted configuration through viper.
func loadConfig() *Config {
	return &Config{
		API:     viper.GetString("api"),
		APIKey:  viper.GetString("api_key"),
		EnvFile: viper.GetString("env_file"),
		Output:  viper.GetString("output"),
		Timeout: viper.GetString("timeout"),
	}
}

// configFilePath returns the config file in use, or the default location.
func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", constants.ErrNoHomeDirectory, err)
	}

	return filepath.Join(home, configDirName, configFileName), nil
}

func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	viper.Set("api", config.API)
	viper.Set("api_key", config.APIKey)
	viper.Set("env_file", config.EnvFile)
	viper.Set("output", config.Output)
	viper.Set("timeout", config.Timeout)

	return nil
}
