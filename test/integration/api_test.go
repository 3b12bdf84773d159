//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/nasa-client/pkg/nasa"
	"github.com/fivetwenty-io/nasa-client/pkg/nasaclient"
)

func newLiveClient(t *testing.T) *nasaclient.Client {
	t.Helper()

	client, err := nasaclient.New(&nasa.Config{
		APIKey:      LoadTestConfig().APIKey,
		HTTPTimeout: 60 * time.Second,
	})
	require.NoError(t, err)

	return client
}

func TestLive_APOD(t *testing.T) {
	client := newLiveClient(t)

	date := nasa.NewDate(2020, time.January, 1)

	pictures, err := client.APOD().Query(context.Background(), nasa.APODParams{Date: &date})
	require.NoError(t, err)
	require.Len(t, pictures, 1)
	assert.Equal(t, "2020-01-01", pictures[0].Date)
	assert.NotEmpty(t, pictures[0].Title)
}

func TestLive_NeoLookup(t *testing.T) {
	client := newLiveClient(t)

	asteroid, err := client.NeoWs().Query(context.Background(), nasa.NeoLookup{AsteroidID: 3542519})
	require.NoError(t, err)
	assert.Equal(t, "3542519", asteroid["id"])
}

func TestLive_DONKI(t *testing.T) {
	client := newLiveClient(t)

	start := nasa.NewDate(2024, time.May, 1)
	end := nasa.NewDate(2024, time.May, 31)

	storms, err := client.GST().Query(context.Background(), nasa.DateRange{StartDate: &start, EndDate: &end})
	require.NoError(t, err)
	require.NotEmpty(t, storms, "May 2024 had a G5 storm")
	assert.GreaterOrEqual(t, storms[0].MaxKpIndex(), 5.0)
}

func TestLive_InvalidKey(t *testing.T) {
	client, err := nasaclient.NewWithKey("not-a-real-key")
	require.NoError(t, err)

	_, err = client.APOD().Query(context.Background(), nasa.DefaultAPODParams())
	require.Error(t, err)

	var apiErr *nasa.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "API_KEY_INVALID", apiErr.Code)
}
