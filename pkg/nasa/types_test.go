package nasa_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/nasa-client/pkg/nasa"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	date, err := nasa.ParseDate("2020-01-01")
	require.NoError(t, err)
	assert.Equal(t, nasa.Date{Year: 2020, Month: time.January, Day: 1}, date)
	assert.Equal(t, "2020-01-01", date.String())

	for _, input := range []string{"", "2020-1-1", "01/01/2020", "2020-02-30", "today"} {
		_, err := nasa.ParseDate(input)
		require.ErrorIs(t, err, nasa.ErrInvalidDate, input)
	}
}

func TestDate_Arithmetic(t *testing.T) {
	t.Parallel()

	day := nasa.NewDate(2024, time.February, 28)

	assert.Equal(t, nasa.NewDate(2024, time.February, 29), day.AddDays(1))
	assert.Equal(t, nasa.NewDate(2024, time.March, 1), day.AddDays(2))
	assert.Equal(t, nasa.NewDate(2024, time.January, 29), day.AddDays(-30))
	assert.True(t, day.Before(day.AddDays(1)))
	assert.False(t, day.Before(day))
	assert.True(t, nasa.Date{}.IsZero())
	assert.False(t, day.IsZero())
}

func TestDate_JSON(t *testing.T) {
	t.Parallel()

	type wrapper struct {
		Date nasa.Date `json:"date"`
	}

	data, err := json.Marshal(wrapper{Date: nasa.NewDate(1995, time.June, 16)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"1995-06-16"}`, string(data))

	var decoded wrapper

	require.NoError(t, json.Unmarshal([]byte(`{"date":"2021-12-25"}`), &decoded))
	assert.Equal(t, nasa.NewDate(2021, time.December, 25), decoded.Date)

	require.Error(t, json.Unmarshal([]byte(`{"date":"Christmas"}`), &decoded))
	require.Error(t, json.Unmarshal([]byte(`{"date":20211225}`), &decoded))
}

func TestToday_IsUTC(t *testing.T) {
	t.Parallel()

	before := nasa.DateOf(time.Now().UTC())
	today := nasa.Today()
	after := nasa.DateOf(time.Now().UTC())

	assert.True(t, today == before || today == after)
}

func TestDefaultParams(t *testing.T) {
	t.Parallel()

	apod := nasa.DefaultAPODParams()
	require.NotNil(t, apod.Date)
	assert.Nil(t, apod.Count)

	feed, ok := nasa.DefaultNeoParams().(nasa.NeoFeed)
	require.True(t, ok)
	require.NotNil(t, feed.StartDate)
	assert.Equal(t, *feed.StartDate, *feed.EndDate)

	window := nasa.DefaultDateRange()
	require.NotNil(t, window.StartDate)
	require.NotNil(t, window.EndDate)
	assert.Equal(t, window.EndDate.AddDays(-30), *window.StartDate)
}
