//go:build integration

package integration

import (
	"bytes"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/fivetwenty-io/nasa-client/internal/constants"
	"github.com/fivetwenty-io/nasa-client/pkg/nasa"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	APIKey   string
	NasaPath string
	Verbose  bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	apiKey := os.Getenv(constants.DefaultAPIKeyEnv)
	if apiKey == "" {
		apiKey = nasa.DemoKey
	}

	return &TestConfig{
		APIKey:   apiKey,
		NasaPath: getNasaPath(),
		Verbose:  os.Getenv("NASA_VERBOSE") == constants.BooleanTrue,
	}
}

// getNasaPath determines the path to the nasa binary
func getNasaPath() string {
	if path := os.Getenv("NASA_BINARY_PATH"); path != "" {
		return path
	}

	// Try common locations
	candidates := []string{
		"../../nasa",
		"./nasa",
		"../nasa",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "nasa" // Fallback to PATH
}

// SkipIfNoBinary skips test if the nasa binary cannot be found
func (config *TestConfig) SkipIfNoBinary(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath(config.NasaPath); err != nil {
		t.Skipf("nasa binary not found at %s, skipping CLI integration test", config.NasaPath)
	}
}

// CommandRunner provides utilities for running nasa commands
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a new command runner
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{
		config: config,
		t:      t,
	}
}

// Run executes a nasa command with the test API key and returns output
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	args = append([]string{"--api-key", runner.config.APIKey, "--env-file", "-"}, args...)

	cmd := exec.Command(runner.config.NasaPath, args...)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.NasaPath, strings.Join(args[2:], " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}
