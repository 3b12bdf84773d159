package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/nasa-client/internal/constants"
	"github.com/fivetwenty-io/nasa-client/pkg/nasa"
	"github.com/fivetwenty-io/nasa-client/pkg/nasaclient"
)

// rawEndpoint is a spec for any JSON endpoint under the API root.
type rawEndpoint struct {
	path string
}

func (rawEndpoint) Name() string { return "raw" }

func (r rawEndpoint) BaseURL() string { return constants.DefaultAPIEndpoint + r.path }

func (rawEndpoint) Path(nasa.Values) (string, error) { return "", nil }

func (rawEndpoint) Decode(body []byte) (json.RawMessage, error) {
	if !json.Valid(body) {
		return nil, constants.ErrRawNotJSON
	}

	return json.RawMessage(body), nil
}

// NewRawCommand creates the raw command.
func NewRawCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "raw PATH [KEY=VALUE...]",
		Short: "Query any JSON endpoint",
		Long: `Send KEY=VALUE pairs as the query of PATH under the API root and print
the JSON response. A query already in PATH is merged with the pairs. The
configured API key is added unless api_key is given or --no-key is set.`,
		Example: `  nasa raw /planetary/apod date=2020-01-01
  nasa raw /DONKI/SEP startDate=2024-01-01 endDate=2024-01-31 --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, rawQuery, _ := strings.Cut(args[0], "?")
			if !strings.HasPrefix(path, "/") {
				return fmt.Errorf("%w: %q", constants.ErrRawPathRequired, args[0])
			}

			pairs := args[1:]
			if rawQuery != "" {
				pairs = append(strings.Split(rawQuery, "&"), pairs...)
			}

			values, err := nasa.ParsePairs(pairs)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			noKey, _ := cmd.Flags().GetBool("no-key")
			if _, given := values[nasa.CredentialParam]; !given && !noKey {
				if key, ok := client.Credentials().Credential(cmd.Context()); ok {
					values[nasa.CredentialParam] = key
				}
			}

			raw := nasaclient.Bind[nasa.Values, json.RawMessage](client, rawEndpoint{path: path})

			body, err := raw.QueryWith(cmd.Context(), values)
			if err != nil {
				return fmt.Errorf("failed to query %s: %w", path, err)
			}

			var data interface{}

			err = json.Unmarshal(body, &data)
			if err != nil {
				return fmt.Errorf("%w: %w", constants.ErrRawNotJSON, err)
			}

			return render(cmd, data, func(w io.Writer) error {
				return writeJSON(w, data)
			})
		},
	}

	cmd.Flags().Bool("no-key", false, "do not add the configured API key")

	return cmd
}
