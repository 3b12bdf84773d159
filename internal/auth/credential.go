// Package auth resolves the API key from the process environment and a
// local dotenv file.
package auth

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/fivetwenty-io/nasa-client/internal/constants"
	"github.com/fivetwenty-io/nasa-client/pkg/nasa"
)

// EnvCredential looks the key up on every call: first the process
// environment, then EnvFile. Nothing is cached, so a key exported or
// written to the file after the client was built is picked up by the next
// request.
type EnvCredential struct {
	// Name is the variable to read. Defaults to NASA_API_KEY.
	Name string
	// EnvFile is the dotenv file consulted when the variable is unset or
	// empty. Defaults to ".env". Set to "-" to disable the file lookup.
	EnvFile string
	// Logger receives a warning when the file exists but cannot be read.
	Logger nasa.Logger
}

var _ nasa.CredentialSource = (*EnvCredential)(nil)

// NewEnvCredential returns a source for the default variable and file.
func NewEnvCredential(logger nasa.Logger) *EnvCredential {
	return &EnvCredential{
		Name:    constants.DefaultAPIKeyEnv,
		EnvFile: constants.DefaultEnvFile,
		Logger:  logger,
	}
}

// Credential implements nasa.CredentialSource.
func (e *EnvCredential) Credential(context.Context) (string, bool) {
	name := e.name()

	if value, ok := os.LookupEnv(name); ok && value != "" {
		return value, true
	}

	file := e.envFile()
	if file == "" {
		return "", false
	}

	values, err := godotenv.Read(file)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) && e.Logger != nil {
			e.Logger.Warn("failed to read env file", map[string]interface{}{
				"file":  file,
				"error": err.Error(),
			})
		}

		return "", false
	}

	value := values[name]

	return value, value != ""
}

func (e *EnvCredential) name() string {
	if e.Name == "" {
		return constants.DefaultAPIKeyEnv
	}

	return e.Name
}

func (e *EnvCredential) envFile() string {
	switch e.EnvFile {
	case "":
		return constants.DefaultEnvFile
	case "-":
		return ""
	default:
		return e.EnvFile
	}
}
