package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/nasa-client/internal/constants"
)

func setupConfigFile(t *testing.T) string {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	configFile := filepath.Join(t.TempDir(), "nested", "config.yml")
	viper.SetConfigFile(configFile)

	return configFile
}

func readConfigFile(t *testing.T, path string) Config {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var config Config
	require.NoError(t, yaml.Unmarshal(data, &config))

	return config
}

func TestNewConfigCommand(t *testing.T) {
	t.Parallel()

	cmd := NewConfigCommand()
	assert.Equal(t, "config", cmd.Use)
	assert.Equal(t, "Manage CLI configuration", cmd.Short)
	assert.Len(t, cmd.Commands(), 5)

	for _, name := range []string{"show", "set", "unset", "set-key", "clear"} {
		assert.NotNil(t, findSubcommand(cmd, name), "subcommand %s should exist", name)
	}

	assert.Equal(t, "set KEY VALUE", findSubcommand(cmd, "set").Use)
	assert.Equal(t, "set-key [KEY]", findSubcommand(cmd, "set-key").Use)
}

func TestConfigSet(t *testing.T) {
	configFile := setupConfigFile(t)

	out, err := runCommand(NewConfigCommand(), "set", "output", "JSON")
	require.NoError(t, err)
	assert.Contains(t, out, "Set output")

	_, err = runCommand(NewConfigCommand(), "set", "timeout", "1m")
	require.NoError(t, err)

	_, err = runCommand(NewConfigCommand(), "set", "api", "https://proxy.example.com")
	require.NoError(t, err)

	config := readConfigFile(t, configFile)
	assert.Equal(t, "json", config.Output)
	assert.Equal(t, "1m", config.Timeout)
	assert.Equal(t, "https://proxy.example.com", config.API)
	assert.Equal(t, "json", viper.GetString("output"))

	info, err := os.Stat(configFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(constants.ConfigFilePerm), info.Mode().Perm())
}

func TestConfigSet_Rejected(t *testing.T) {
	configFile := setupConfigFile(t)

	tests := []struct {
		key, value string
		want       error
	}{
		{"api_key", "abc", constants.ErrUseSetKey},
		{"output", "xml", constants.ErrInvalidOutput},
		{"timeout", "soon", constants.ErrInvalidTimeout},
		{"timeout", "0s", constants.ErrInvalidTimeout},
		{"color", "red", constants.ErrUnknownConfigKey},
	}

	for _, tt := range tests {
		_, err := runCommand(NewConfigCommand(), "set", tt.key, tt.value)
		require.ErrorIs(t, err, tt.want, "%s=%s", tt.key, tt.value)
	}

	assert.NoFileExists(t, configFile)
}

func TestConfigSetKey(t *testing.T) {
	configFile := setupConfigFile(t)

	_, err := runCommand(NewConfigCommand(), "set-key", "  secret-key  ")
	require.NoError(t, err)
	assert.Equal(t, "secret-key", readConfigFile(t, configFile).APIKey)

	cmd := NewConfigCommand()
	cmd.SetIn(strings.NewReader("from-stdin\n"))

	_, err = runCommand(cmd, "set-key")
	require.NoError(t, err)
	assert.Equal(t, "from-stdin", readConfigFile(t, configFile).APIKey)

	cmd = NewConfigCommand()
	cmd.SetIn(strings.NewReader(""))

	_, err = runCommand(cmd, "set-key")
	require.ErrorIs(t, err, constants.ErrEmptyAPIKey)
}

func TestConfigShow_MasksKey(t *testing.T) {
	setupConfigFile(t)
	viper.Set("api_key", "secret-key")
	viper.Set("output", "yaml")

	out, err := runCommand(NewConfigCommand(), "show")
	require.NoError(t, err)
	assert.Contains(t, out, constants.MaskedSecret)
	assert.NotContains(t, out, "secret-key")
}

func TestConfigUnsetAndClear(t *testing.T) {
	configFile := setupConfigFile(t)

	_, err := runCommand(NewConfigCommand(), "set", "env_file", "/tmp/nasa.env")
	require.NoError(t, err)

	_, err = runCommand(NewConfigCommand(), "unset", "env_file")
	require.NoError(t, err)
	assert.Empty(t, readConfigFile(t, configFile).EnvFile)

	_, err = runCommand(NewConfigCommand(), "unset", "color")
	require.ErrorIs(t, err, constants.ErrUnknownConfigKey)

	_, err = runCommand(NewConfigCommand(), "clear")
	require.NoError(t, err)
	assert.NoFileExists(t, configFile)

	_, err = runCommand(NewConfigCommand(), "clear")
	require.NoError(t, err, "clearing twice is not an error")
}
