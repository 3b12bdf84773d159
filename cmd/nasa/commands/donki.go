package commands

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/nasa-client/internal/constants"
	"github.com/fivetwenty-io/nasa-client/pkg/nasa"
	"github.com/fivetwenty-io/nasa-client/pkg/nasaclient"
)

// NewDONKICommand creates the space weather command group.
func NewDONKICommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "donki",
		Aliases: []string{"space-weather"},
		Short:   "Space weather events from DONKI",
		Long: `Query the Space Weather Database Of Notifications, Knowledge, Information.

Every subcommand accepts --start-date and --end-date. Without them the
service returns the last 30 days.`,
	}

	cmd.AddCommand(newCMECommand())
	cmd.AddCommand(newCMEAnalysisCommand())
	cmd.AddCommand(newGSTCommand())
	cmd.AddCommand(newIPSCommand())
	cmd.AddCommand(newFLRCommand())
	cmd.AddCommand(newDateRangeCommand("sep", "Solar energetic particles", (*nasaclient.Client).SEP))
	cmd.AddCommand(newDateRangeCommand("mpc", "Magnetopause crossings", (*nasaclient.Client).MPC))
	cmd.AddCommand(newDateRangeCommand("rbe", "Radiation belt enhancements", (*nasaclient.Client).RBE))
	cmd.AddCommand(newDateRangeCommand("hss", "High speed streams", (*nasaclient.Client).HSS))
	cmd.AddCommand(newDateRangeCommand("wsa", "WSA+Enlil simulations", (*nasaclient.Client).WSA))
	cmd.AddCommand(newNotificationsCommand())

	return cmd
}

// queryDONKI creates a client, selects an endpoint and runs one query.
func queryDONKI[P, R any](
	cmd *cobra.Command,
	endpoint func(*nasaclient.Client) *nasa.Client[P, R],
	params P,
) (R, error) {
	var zero R

	client, err := CreateClient()
	if err != nil {
		return zero, err
	}

	endpointClient := endpoint(client)

	result, err := endpointClient.Query(cmd.Context(), params)
	if err != nil {
		return zero, fmt.Errorf("failed to query %s: %w", endpointClient.Spec().Name(), err)
	}

	return result, nil
}

func dateRange(cmd *cobra.Command) (nasa.DateRange, error) {
	start, end, err := dateRangeFlags(cmd)
	if err != nil {
		return nasa.DateRange{}, err
	}

	return nasa.DateRange{StartDate: start, EndDate: end}, nil
}

func newCMECommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cme",
		Short: "Coronal mass ejections",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := dateRange(cmd)
			if err != nil {
				return err
			}

			events, err := queryDONKI(cmd, (*nasaclient.Client).CME, params)
			if err != nil {
				return err
			}

			return render(cmd, events, func(w io.Writer) error {
				rows := make([][]string, 0, len(events))
				for _, event := range events {
					rows = append(rows, []string{
						event.ActivityID,
						event.StartTime,
						orNA(event.SourceLocation),
						event.Catalog,
						truncate(event.Note),
					})
				}

				return renderTable(w, "No coronal mass ejections found",
					[]string{"Activity ID", "Start", "Source", "Catalog", "Note"}, rows)
			})
		},
	}

	addDateRangeFlags(cmd)

	return cmd
}

func newCMEAnalysisCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cme-analysis",
		Short: "Coronal mass ejection analyses",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := cmeAnalysisParams(cmd)
			if err != nil {
				return err
			}

			entries, err := queryDONKI(cmd, (*nasaclient.Client).CMEAnalysis, params)
			if err != nil {
				return err
			}

			return render(cmd, entries, func(w io.Writer) error {
				rows := make([][]string, 0, len(entries))
				for _, entry := range entries {
					rows = append(rows, []string{
						entry.Time215,
						formatFloat(entry.Speed),
						formatFloat(entry.HalfAngle),
						formatFloat(entry.Latitude),
						formatFloat(entry.Longitude),
						entry.Type,
						strconv.FormatBool(entry.IsMostAccurate),
					})
				}

				return renderTable(w, "No analyses found",
					[]string{"Time 21.5", "Speed", "Half Angle", "Lat", "Lon", "Type", "Most Accurate"}, rows)
			})
		},
	}

	addDateRangeFlags(cmd)
	cmd.Flags().Bool("most-accurate-only", true, "only the most accurate analysis per CME")
	cmd.Flags().Bool("complete-entry-only", true, "only entries with every field set")
	cmd.Flags().Float64("speed", 0, "minimum speed (km/s)")
	cmd.Flags().Float64("half-angle", 0, "minimum half angle (degrees)")
	cmd.Flags().String("catalog", "", "catalog: ALL, SWRC_CATALOG, JANG_ET_AL_CATALOG")
	cmd.Flags().String("keyword", "", "keyword filter")

	return cmd
}

func cmeAnalysisParams(cmd *cobra.Command) (nasa.CMEAnalysisParams, error) {
	var params nasa.CMEAnalysisParams

	start, end, err := dateRangeFlags(cmd)
	if err != nil {
		return params, err
	}

	params.StartDate = start
	params.EndDate = end

	if cmd.Flags().Changed("most-accurate-only") {
		value, _ := cmd.Flags().GetBool("most-accurate-only")
		params.MostAccurateOnly = &value
	}

	if cmd.Flags().Changed("complete-entry-only") {
		value, _ := cmd.Flags().GetBool("complete-entry-only")
		params.CompleteEntryOnly = &value
	}

	if cmd.Flags().Changed("speed") {
		value, _ := cmd.Flags().GetFloat64("speed")
		params.Speed = &value
	}

	if cmd.Flags().Changed("half-angle") {
		value, _ := cmd.Flags().GetFloat64("half-angle")
		params.HalfAngle = &value
	}

	if cmd.Flags().Changed("keyword") {
		value, _ := cmd.Flags().GetString("keyword")
		params.Keyword = &value
	}

	params.Catalog, err = enumFlag(cmd, "catalog",
		nasa.CMECatalogAll, nasa.CMECatalogSWRC, nasa.CMECatalogJangEtAl)
	if err != nil {
		return params, err
	}

	return params, nil
}

func newGSTCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gst",
		Short: "Geomagnetic storms",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := dateRange(cmd)
			if err != nil {
				return err
			}

			storms, err := queryDONKI(cmd, (*nasaclient.Client).GST, params)
			if err != nil {
				return err
			}

			return render(cmd, storms, func(w io.Writer) error {
				rows := make([][]string, 0, len(storms))
				for _, storm := range storms {
					rows = append(rows, []string{
						storm.GSTID,
						storm.StartTime,
						strconv.FormatFloat(storm.MaxKpIndex(), 'f', -1, 64),
						strconv.Itoa(len(storm.LinkedEvents)),
					})
				}

				return renderTable(w, "No geomagnetic storms found",
					[]string{"GST ID", "Start", "Max Kp", "Linked Events"}, rows)
			})
		},
	}

	addDateRangeFlags(cmd)

	return cmd
}

func newIPSCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ips",
		Short: "Interplanetary shocks",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := dateRangeFlags(cmd)
			if err != nil {
				return err
			}

			params := nasa.IPSParams{StartDate: start, EndDate: end}

			params.Location, err = enumFlag(cmd, "location",
				nasa.IPSLocationEarth, nasa.IPSLocationMessenger, nasa.IPSLocationStereoA, nasa.IPSLocationStereoB)
			if err != nil {
				return err
			}

			params.Catalog, err = enumFlag(cmd, "catalog",
				nasa.IPSCatalogAll, nasa.IPSCatalogSWRC, nasa.IPSCatalogWinslowMessenger)
			if err != nil {
				return err
			}

			shocks, err := queryDONKI(cmd, (*nasaclient.Client).IPS, params)
			if err != nil {
				return err
			}

			return render(cmd, shocks, func(w io.Writer) error {
				rows := make([][]string, 0, len(shocks))
				for _, shock := range shocks {
					rows = append(rows, []string{shock.ActivityID, shock.EventTime, shock.Location, shock.Catalog})
				}

				return renderTable(w, "No interplanetary shocks found",
					[]string{"Activity ID", "Event Time", "Location", "Catalog"}, rows)
			})
		},
	}

	addDateRangeFlags(cmd)
	cmd.Flags().String("location", "", "location: Earth, MESSENGER, STEREO A, STEREO B")
	cmd.Flags().String("catalog", "", "catalog: ALL, SWRC_CATALOG, WINSLOW_MESSENGER_ICME_CATALOG")

	return cmd
}

func newFLRCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flr",
		Short: "Solar flares",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := dateRange(cmd)
			if err != nil {
				return err
			}

			flares, err := queryDONKI(cmd, (*nasaclient.Client).FLR, params)
			if err != nil {
				return err
			}

			return render(cmd, flares, func(w io.Writer) error {
				rows := make([][]string, 0, len(flares))
				for _, flare := range flares {
					rows = append(rows, []string{
						flare.FlrID,
						flare.ClassType,
						flare.BeginTime,
						orNA(flare.PeakTime),
						orNA(flare.EndTime),
						orNA(flare.SourceLocation),
						formatInt(flare.ActiveRegionNum),
					})
				}

				return renderTable(w, "No solar flares found",
					[]string{"Flare ID", "Class", "Begin", "Peak", "End", "Source", "Region"}, rows)
			})
		},
	}

	addDateRangeFlags(cmd)

	return cmd
}

// newDateRangeCommand builds a command for a DONKI service returned as
// untyped documents.
func newDateRangeCommand(
	use, short string,
	endpoint func(*nasaclient.Client) *nasa.Client[nasa.DateRange, nasa.DocumentList],
) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := dateRange(cmd)
			if err != nil {
				return err
			}

			docs, err := queryDONKI(cmd, endpoint, params)
			if err != nil {
				return err
			}

			return render(cmd, docs, func(w io.Writer) error {
				rows := make([][]string, 0, len(docs))
				for _, doc := range docs {
					rows = append(rows, documentRow(doc))
				}

				return renderTable(w, "No events found", []string{"ID", "Time", "Link"}, rows)
			})
		},
	}

	addDateRangeFlags(cmd)

	return cmd
}

// documentRow picks the first "...ID" and "...Time" keys of a DONKI document.
func documentRow(doc nasa.Document) []string {
	id, when := constants.NotAvailable, constants.NotAvailable

	for _, key := range slices.Sorted(maps.Keys(doc)) {
		value, ok := doc[key].(string)
		if !ok || value == "" {
			continue
		}

		switch {
		case id == constants.NotAvailable && strings.HasSuffix(key, "ID"):
			id = value
		case when == constants.NotAvailable && strings.HasSuffix(key, "Time"):
			when = value
		}
	}

	link, _ := doc["link"].(string)

	return []string{id, when, orNA(link)}
}

func newNotificationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Space weather notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := dateRangeFlags(cmd)
			if err != nil {
				return err
			}

			params := nasa.NotificationsParams{StartDate: start, EndDate: end}

			params.Type, err = enumFlag(cmd, "type",
				nasa.NotificationAll, nasa.NotificationFLR, nasa.NotificationSEP, nasa.NotificationCME,
				nasa.NotificationIPS, nasa.NotificationMPC, nasa.NotificationGST, nasa.NotificationRBE,
				nasa.NotificationReport)
			if err != nil {
				return err
			}

			notes, err := queryDONKI(cmd, (*nasaclient.Client).Notifications, params)
			if err != nil {
				return err
			}

			return render(cmd, notes, func(w io.Writer) error {
				rows := make([][]string, 0, len(notes))
				for _, note := range notes {
					rows = append(rows, []string{note.MessageType, note.MessageID, note.MessageIssueTime, note.MessageURL})
				}

				return renderTable(w, "No notifications found",
					[]string{"Type", "Message ID", "Issued", "URL"}, rows)
			})
		},
	}

	addDateRangeFlags(cmd)
	cmd.Flags().String("type", "", "type: all, FLR, SEP, CME, IPS, MPC, GST, RBE, report")

	return cmd
}
