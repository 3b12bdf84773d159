package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/nasa-client/internal/constants"
	"github.com/fivetwenty-io/nasa-client/pkg/nasa"
)

// Flag names shared by several commands.
const (
	flagDate      = "date"
	flagStartDate = "start-date"
	flagEndDate   = "end-date"
)

// outputFormat returns the configured output format.
func outputFormat() string {
	output := strings.ToLower(viper.GetString("output"))
	if output == "" {
		return constants.FormatTable
	}

	return output
}

// render writes data as JSON or YAML, or calls table for table output.
func render(cmd *cobra.Command, data interface{}, table func(w io.Writer) error) error {
	w := cmd.OutOrStdout()

	switch outputFormat() {
	case constants.FormatJSON:
		return writeJSON(w, data)
	case constants.FormatYAML:
		return writeYAML(w, data)
	default:
		return table(w)
	}
}

func writeJSON(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

func writeYAML(w io.Writer, data interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(constants.JSONIndentSize)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return encoder.Close()
}

// renderTable writes rows under headers, or a notice when there are none.
func renderTable(w io.Writer, empty string, headers []string, rows [][]string) error {
	if len(rows) == 0 {
		_, _ = fmt.Fprintln(w, empty)

		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header(toAny(headers)...)

	for _, row := range rows {
		_ = table.Append(toAny(row)...)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}

	return out
}

// truncate shortens s to the table cell width, counted in runes.
func truncate(s string) string {
	s = strings.Join(strings.Fields(s), " ")

	runes := []rune(s)
	if len(runes) <= constants.MaxCellWidth {
		return s
	}

	return string(runes[:constants.MaxCellWidth-3]) + "..."
}

func orNA(s string) string {
	if s == "" {
		return constants.NotAvailable
	}

	return s
}

func formatFloat(v *float64) string {
	if v == nil {
		return constants.NotAvailable
	}

	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatInt(v *int) string {
	if v == nil {
		return constants.NotAvailable
	}

	return strconv.Itoa(*v)
}

// dateFlag parses an optional YYYY-MM-DD flag. Unset flags yield nil.
func dateFlag(cmd *cobra.Command, name string) (*nasa.Date, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}

	raw, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil, fmt.Errorf("reading --%s: %w", name, err)
	}

	date, err := nasa.ParseDate(raw)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", name, err)
	}

	return &date, nil
}

// addDateRangeFlags adds --start-date and --end-date.
func addDateRangeFlags(cmd *cobra.Command) {
	cmd.Flags().String(flagStartDate, "", "start of the range (YYYY-MM-DD)")
	cmd.Flags().String(flagEndDate, "", "end of the range (YYYY-MM-DD)")
}

// dateRangeFlags reads the flags added by addDateRangeFlags.
func dateRangeFlags(cmd *cobra.Command) (*nasa.Date, *nasa.Date, error) {
	start, err := dateFlag(cmd, flagStartDate)
	if err != nil {
		return nil, nil, err
	}

	end, err := dateFlag(cmd, flagEndDate)
	if err != nil {
		return nil, nil, err
	}

	return start, end, nil
}

// enumFlag validates an optional enumerated flag against allowed.
func enumFlag[T ~string](cmd *cobra.Command, name string, allowed ...T) (*T, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}

	raw, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil, fmt.Errorf("reading --%s: %w", name, err)
	}

	for _, value := range allowed {
		if strings.EqualFold(raw, string(value)) {
			return &value, nil
		}
	}

	names := make([]string, len(allowed))
	for i, value := range allowed {
		names[i] = string(value)
	}

	return nil, fmt.Errorf("%w for --%s %q: expected one of %s", constants.ErrInvalidEnumValue, name, raw, strings.Join(names, ", "))
}
