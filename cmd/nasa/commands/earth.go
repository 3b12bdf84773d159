package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/nasa-client/internal/constants"
	"github.com/fivetwenty-io/nasa-client/pkg/nasa"
)

// NewEarthCommand creates the Earth imagery command group.
func NewEarthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "earth",
		Short: "Landsat 8 imagery",
		Long:  "Download Landsat 8 imagery for a location",
	}

	cmd.AddCommand(newEarthImageryCommand())

	return cmd
}

func newEarthImageryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "imagery",
		Short:   "Download an image for a latitude and longitude",
		Example: `  nasa earth imagery --lat 29.78 --lon -95.33 --dim 0.1 --out houston.png`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")
			if out == "" {
				return constants.ErrOutputFileRequired
			}

			params, err := earthImageryParams(cmd)
			if err != nil {
				return err
			}

			client, err := createClient(constants.ExtendedHTTPTimeout)
			if err != nil {
				return err
			}

			image, err := client.EarthImagery().Query(cmd.Context(), params)
			if err != nil {
				return fmt.Errorf("failed to fetch imagery: %w", err)
			}

			err = os.WriteFile(out, image, constants.OutputFilePerm)
			if err != nil {
				return fmt.Errorf("failed to write image: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d bytes to %s\n", len(image), out)

			return nil
		},
	}

	cmd.Flags().Float64("lat", 0, "latitude")
	cmd.Flags().Float64("lon", 0, "longitude")
	cmd.Flags().Float64("dim", 0, "width and height of the image in degrees")
	cmd.Flags().String(flagDate, "", "image date (YYYY-MM-DD); the closest available image is returned")
	cmd.Flags().StringP("out", "o", "", "file to write the image to")

	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")

	return cmd
}

func earthImageryParams(cmd *cobra.Command) (nasa.EarthImageryParams, error) {
	lat, _ := cmd.Flags().GetFloat64("lat")
	lon, _ := cmd.Flags().GetFloat64("lon")

	params := nasa.EarthImageryParams{Lat: lat, Lon: lon}

	if cmd.Flags().Changed("dim") {
		dim, _ := cmd.Flags().GetFloat64("dim")
		params.Dim = &dim
	}

	date, err := dateFlag(cmd, flagDate)
	if err != nil {
		return params, err
	}

	params.Date = date

	return params, nil
}
