package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/nasa-client/pkg/nasa"
)

// NewAPODCommand creates the Astronomy Picture of the Day command.
func NewAPODCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apod",
		Short: "Astronomy Picture of the Day",
		Long: `Fetch the Astronomy Picture of the Day.

With no flags today's picture is returned. Use --date for a single day,
--start-date/--end-date for a range, or --count for random pictures.`,
		Example: `  nasa apod
  nasa apod --date 2020-01-01
  nasa apod --start-date 2024-05-01 --end-date 2024-05-07 --output json
  nasa apod --count 3 --thumbs`,
		RunE: runAPOD,
	}

	cmd.Flags().String(flagDate, "", "picture date (YYYY-MM-DD)")
	addDateRangeFlags(cmd)
	cmd.Flags().Int("count", 0, "number of random pictures")
	cmd.Flags().Bool("thumbs", false, "include video thumbnail URLs")

	return cmd
}

func runAPOD(cmd *cobra.Command, args []string) error {
	params, err := apodParams(cmd)
	if err != nil {
		return err
	}

	client, err := CreateClient()
	if err != nil {
		return err
	}

	pictures, err := client.APOD().Query(cmd.Context(), params)
	if err != nil {
		return fmt.Errorf("failed to fetch pictures: %w", err)
	}

	return render(cmd, pictures, func(w io.Writer) error {
		rows := make([][]string, 0, len(pictures))
		for _, picture := range pictures {
			rows = append(rows, []string{
				picture.Date,
				truncate(picture.Title),
				picture.MediaType,
				orNA(picture.Copyright),
				picture.URL,
			})
		}

		return renderTable(w, "No pictures found", []string{"Date", "Title", "Media", "Copyright", "URL"}, rows)
	})
}

func apodParams(cmd *cobra.Command) (nasa.APODParams, error) {
	var params nasa.APODParams

	date, err := dateFlag(cmd, flagDate)
	if err != nil {
		return params, err
	}

	start, end, err := dateRangeFlags(cmd)
	if err != nil {
		return params, err
	}

	params.Date = date
	params.StartDate = start
	params.EndDate = end

	if cmd.Flags().Changed("count") {
		count, _ := cmd.Flags().GetInt("count")
		params.Count = &count
	}

	if cmd.Flags().Changed("thumbs") {
		thumbs, _ := cmd.Flags().GetBool("thumbs")
		params.Thumbs = &thumbs
	}

	return params, nil
}
