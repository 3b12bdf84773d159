package commands

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/nasa-client/internal/constants"
	"github.com/fivetwenty-io/nasa-client/pkg/nasa"
)

var neoHeaders = []string{"Approach", "ID", "Name", "Hazardous", "Magnitude"}

// NewNeoCommand creates the Near Earth Object command group.
func NewNeoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "neo",
		Aliases: []string{"neows", "asteroids"},
		Short:   "Near Earth Object Web Service",
		Long:    "Search asteroids by closest approach date, look one up by id, or browse the data set",
	}

	cmd.AddCommand(newNeoFeedCommand())
	cmd.AddCommand(newNeoLookupCommand())
	cmd.AddCommand(newNeoBrowseCommand())

	return cmd
}

func newNeoFeedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feed",
		Short: "List asteroids by closest approach date",
		Long:  "List asteroids by closest approach date. The window is at most seven days; with no dates today is used.",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := dateRangeFlags(cmd)
			if err != nil {
				return err
			}

			params := nasa.DefaultNeoParams()
			if start != nil || end != nil {
				params = nasa.NeoFeed{StartDate: start, EndDate: end}
			}

			return runNeo(cmd, params)
		},
	}

	addDateRangeFlags(cmd)

	return cmd
}

func newNeoLookupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup ID",
		Short: "Look up an asteroid by its SPK-ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil || id <= 0 {
				return fmt.Errorf("%w: %q", constants.ErrInvalidAsteroidID, args[0])
			}

			return runNeo(cmd, nasa.NeoLookup{AsteroidID: id})
		},
	}
}

func newNeoBrowseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the asteroid data set",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNeo(cmd, nasa.NeoBrowse{})
		},
	}
}

func runNeo(cmd *cobra.Command, params nasa.NeoParams) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	doc, err := client.NeoWs().Query(cmd.Context(), params)
	if err != nil {
		return fmt.Errorf("failed to query NeoWs: %w", err)
	}

	return render(cmd, doc, func(w io.Writer) error {
		return renderTable(w, "No near earth objects found", neoHeaders, neoRows(doc))
	})
}

// neoRows flattens the three NeoWs response shapes: the feed groups
// objects by date, browse returns a page of objects, and lookup returns
// one object.
func neoRows(doc nasa.Document) [][]string {
	switch objects := doc["near_earth_objects"].(type) {
	case map[string]interface{}:
		var rows [][]string

		for _, date := range slices.Sorted(maps.Keys(objects)) {
			list, _ := objects[date].([]interface{})
			for _, item := range list {
				if obj, ok := item.(map[string]interface{}); ok {
					rows = append(rows, neoRow(date, obj))
				}
			}
		}

		return rows
	case []interface{}:
		rows := make([][]string, 0, len(objects))

		for _, item := range objects {
			if obj, ok := item.(map[string]interface{}); ok {
				rows = append(rows, neoRow(firstApproach(obj), obj))
			}
		}

		return rows
	}

	if _, ok := doc["id"]; ok {
		return [][]string{neoRow(firstApproach(doc), doc)}
	}

	return nil
}

func neoRow(approach string, obj map[string]interface{}) []string {
	hazardous := constants.BooleanFalse
	if flag, _ := obj["is_potentially_hazardous_asteroid"].(bool); flag {
		hazardous = constants.BooleanTrue
	}

	magnitude := constants.NotAvailable
	if h, ok := obj["absolute_magnitude_h"].(float64); ok {
		magnitude = strconv.FormatFloat(h, 'f', -1, 64)
	}

	return []string{
		orNA(approach),
		stringField(obj, "id"),
		truncate(stringField(obj, "name")),
		hazardous,
		magnitude,
	}
}

func firstApproach(obj map[string]interface{}) string {
	approaches, _ := obj["close_approach_data"].([]interface{})
	if len(approaches) == 0 {
		return ""
	}

	approach, _ := approaches[0].(map[string]interface{})

	return stringField(approach, "close_approach_date")
}

func stringField(obj map[string]interface{}, key string) string {
	value, _ := obj[key].(string)

	return orNA(value)
}
