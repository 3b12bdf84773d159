package commands

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/nasa-client/internal/constants"
	"github.com/fivetwenty-io/nasa-client/pkg/nasa"
)

func TestNewDONKICommand(t *testing.T) {
	t.Parallel()

	cmd := NewDONKICommand()
	assert.Equal(t, "donki", cmd.Use)
	assert.Equal(t, []string{"space-weather"}, cmd.Aliases)

	names := []string{"cme", "cme-analysis", "gst", "ips", "flr", "sep", "mpc", "rbe", "hss", "wsa", "notifications"}
	assert.Len(t, cmd.Commands(), len(names))

	for _, name := range names {
		sub := findSubcommand(cmd, name)
		require.NotNil(t, sub, "subcommand %s should exist", name)
		assert.NotNil(t, sub.RunE)
		assert.NotNil(t, sub.Flags().Lookup("start-date"), "%s --start-date", name)
		assert.NotNil(t, sub.Flags().Lookup("end-date"), "%s --end-date", name)
	}

	analysis := findSubcommand(cmd, "cme-analysis")
	for _, flagName := range []string{"most-accurate-only", "complete-entry-only", "speed", "half-angle", "catalog", "keyword"} {
		assert.NotNil(t, analysis.Flags().Lookup(flagName), "Flag %s should exist", flagName)
	}

	assert.Equal(t, constants.BooleanTrue, analysis.Flags().Lookup("most-accurate-only").DefValue)
	assert.NotNil(t, findSubcommand(cmd, "ips").Flags().Lookup("location"))
	assert.NotNil(t, findSubcommand(cmd, "notifications").Flags().Lookup("type"))
}

func TestDONKICommand_GST(t *testing.T) {
	setupCLI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/DONKI/GST", r.URL.Path)
		assert.Equal(t, "2024-05-01", r.URL.Query().Get("startDate"))
		assert.Equal(t, "2024-05-31", r.URL.Query().Get("endDate"))
		_, _ = w.Write([]byte(`[{"gstID":"2024-05-10T15:00:00-GST-001","startTime":"2024-05-10T15:00Z",
			"allKpIndex":[{"kpIndex":8},{"kpIndex":9}],"linkedEvents":[{"activityID":"a"},{"activityID":"b"}]}]`))
	})
	viper.Set("output", "table")

	out, err := runCommand(NewDONKICommand(), "gst", "--start-date", "2024-05-01", "--end-date", "2024-05-31")
	require.NoError(t, err)
	assert.Contains(t, out, "2024-05-10T15:00:00-GST-001")
	assert.Contains(t, out, "9")
}

func TestDONKICommand_CMEAnalysis(t *testing.T) {
	setupCLI(t, func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "/DONKI/CMEAnalysis", r.URL.Path)
		assert.Equal(t, "false", query.Get("mostAccurateOnly"))
		assert.Equal(t, "500", query.Get("speed"))
		assert.Equal(t, "SWRC_CATALOG", query.Get("catalog"))
		assert.False(t, query.Has("completeEntryOnly"))
		_, _ = w.Write([]byte(`[{"time21_5":"2024-05-01T05:00Z","speed":650,"isMostAccurate":true}]`))
	})

	out, err := runCommand(NewDONKICommand(), "cme-analysis",
		"--most-accurate-only=false", "--speed", "500", "--catalog", "swrc_catalog")
	require.NoError(t, err)

	var entries []nasa.CMEAnalysisEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].Speed)
	assert.InDelta(t, 650, *entries[0].Speed, 0)
	assert.Nil(t, entries[0].HalfAngle)
}

func TestDONKICommand_InvalidEnum(t *testing.T) {
	setupCLI(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	_, err := runCommand(NewDONKICommand(), "ips", "--location", "Mars")
	require.ErrorIs(t, err, constants.ErrInvalidEnumValue)
	assert.Contains(t, err.Error(), "STEREO A")

	_, err = runCommand(NewDONKICommand(), "notifications", "--type", "XYZ")
	require.ErrorIs(t, err, constants.ErrInvalidEnumValue)
}

func TestDONKICommand_Notifications(t *testing.T) {
	setupCLI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/DONKI/notifications", r.URL.Path)
		assert.Equal(t, "IPS", r.URL.Query().Get("type"))
		_, _ = w.Write([]byte(`[]`))
	})
	viper.Set("output", "table")

	out, err := runCommand(NewDONKICommand(), "notifications", "--type", "ips")
	require.NoError(t, err)
	assert.Contains(t, out, "No notifications found")
}

func TestDONKICommand_Untyped(t *testing.T) {
	setupCLI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/DONKI/WSAEnlilSimulations", r.URL.Path)
		_, _ = w.Write([]byte(`[{"simulationID":"WSA-ENLIL/27345/-1","modelCompletionTime":"2024-05-01T07:00Z","link":"https://kauai.ccmc.gsfc.nasa.gov/DONKI/view/WSA-ENLIL/27345/-1"}]`))
	})
	viper.Set("output", "yaml")

	out, err := runCommand(NewDONKICommand(), "wsa")
	require.NoError(t, err)
	assert.Contains(t, out, "simulationID: WSA-ENLIL/27345/-1")
}

func TestDONKICommand_APIError(t *testing.T) {
	setupCLI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":"API_KEY_INVALID","message":"An invalid api_key was supplied."}}`))
	})

	_, err := runCommand(NewDONKICommand(), "flr")
	require.Error(t, err)
	assert.True(t, nasa.IsTransport(err))
	assert.Contains(t, err.Error(), "donki_flr")
	assert.NotContains(t, err.Error(), "DEMO_KEY")
}

func TestDocumentRow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  nasa.Document
		want []string
	}{
		{
			name: "sep",
			doc:  nasa.Document{"sepID": "2024-05-11T02:00:00-SEP-001", "eventTime": "2024-05-11T02:00Z", "link": "l"},
			want: []string{"2024-05-11T02:00:00-SEP-001", "2024-05-11T02:00Z", "l"},
		},
		{
			name: "first keys win",
			doc:  nasa.Document{"activityID": "a", "hssID": "h", "beginTime": "b", "eventTime": "e"},
			want: []string{"a", "b", "N/A"},
		},
		{
			name: "non-string values are skipped",
			doc:  nasa.Document{"rbeID": 5, "eventTime": ""},
			want: []string{"N/A", "N/A", "N/A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, documentRow(tt.doc))
		})
	}
}
