package weather

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadWeeklyFixture(t *testing.T) WeeklyFeed {
	t.Helper()
	raw, err := os.ReadFile("testdata/weekly_130000.json")
	require.NoError(t, err)
	feed, err := DecodeWeeklyFeed(raw)
	require.NoError(t, err)
	return feed
}

func mustWeekly(t *testing.T, raw string) WeeklyFeed {
	t.Helper()
	feed, err := DecodeWeeklyFeed([]byte(raw))
	require.NoError(t, err)
	return feed
}

func TestBuildWeeklyTemperatureTableFromFixture(t *testing.T) {
	table := BuildWeeklyTemperatureTable(loadWeeklyFixture(t), "東京")

	require.NotNil(t, table.ShortTerm)
	require.NotNil(t, table.ShortTermDate)
	assert.Equal(t, "2024-01-16", *table.ShortTermDate)
	// The duplicate short-term record for the same area is ignored.
	assert.Equal(t, strp("2"), table.ShortTerm.Min)
	assert.Equal(t, strp("12"), table.ShortTerm.Max)

	_, ok := table.LongTermFor("2024-01-16")
	assert.False(t, ok, "entries without any value are skipped")

	w, ok := table.LongTermFor("2024-01-17")
	require.True(t, ok)
	assert.Equal(t, strp("4"), w.Min)
	assert.Equal(t, strp("14"), w.Max)

	w, ok = table.LongTermFor("2024-01-18")
	require.True(t, ok)
	assert.Nil(t, w.Min)
	assert.Equal(t, strp("13"), w.Max)
}

func TestBuildWeeklyTemperatureTableExactLabelMatch(t *testing.T) {
	feed := loadWeeklyFixture(t)

	for _, label := range []string{"東京地方", "とうきょう", "東京 ", ""} {
		table := BuildWeeklyTemperatureTable(feed, label)
		assert.Nil(t, table.ShortTerm, label)
		assert.Nil(t, table.ShortTermDate, label)
		assert.Empty(t, table.LongTerm, label)
	}
}

func TestBuildWeeklyTemperatureTableLongTermLastWriteWins(t *testing.T) {
	feed := mustWeekly(t, `[
	  {"publishingOffice": "気象庁", "reportDatetime": "2024-01-15T11:00:00+09:00", "timeSeries": [
	    {"timeDefines": ["2024-01-18T00:00:00+09:00"],
	     "areas": [{"area": {"name": "札幌", "code": "14163"}, "tempsMin": ["-5"], "tempsMax": ["1"]}]}
	  ]},
	  {"publishingOffice": "気象庁", "reportDatetime": "2024-01-15T17:00:00+09:00", "timeSeries": [
	    {"timeDefines": ["2024-01-18T00:00:00+09:00"],
	     "areas": [{"area": {"name": "札幌", "code": "14163"}, "tempsMin": ["--"], "tempsMax": ["3"]}]}
	  ]}
	]`)

	table := BuildWeeklyTemperatureTable(feed, "札幌")
	w, ok := table.LongTermFor("2024-01-18")
	require.True(t, ok)
	assert.Nil(t, w.Min, "later entry replaces the whole pair")
	assert.Equal(t, strp("3"), w.Max)
}

func TestBuildWeeklyTemperatureTableShortTermNeedsAValue(t *testing.T) {
	feed := mustWeekly(t, `[
	  {"publishingOffice": "気象庁", "reportDatetime": "2024-01-15T17:00:00+09:00", "timeSeries": [
	    {"timeDefines": ["2024-01-16T00:00:00+09:00"],
	     "areas": [{"area": {"name": "那覇", "code": "91197"}, "temps": ["--", ""]}]},
	    {"timeDefines": ["2024-01-17T00:00:00+09:00"],
	     "areas": [{"area": {"name": "那覇", "code": "91197"}, "temps": ["15"]}]}
	  ]}
	]`)

	table := BuildWeeklyTemperatureTable(feed, "那覇")
	require.NotNil(t, table.ShortTerm)
	assert.Equal(t, "2024-01-17", *table.ShortTermDate)
	assert.Equal(t, strp("15"), table.ShortTerm.Min)
	assert.Nil(t, table.ShortTerm.Max)
}

func TestBuildWeeklyTemperatureTableSkipsEmptyDates(t *testing.T) {
	feed := mustWeekly(t, `[
	  {"publishingOffice": "気象庁", "reportDatetime": "2024-01-15T17:00:00+09:00", "timeSeries": [
	    {"timeDefines": ["", "2024-01-19T00:00:00+09:00"],
	     "areas": [{"area": {"name": "福岡", "code": "82182"}, "tempsMin": ["1", "2"], "tempsMax": ["9"]}]}
	  ]}
	]`)

	table := BuildWeeklyTemperatureTable(feed, "福岡")
	assert.Len(t, table.LongTerm, 1)
	w, ok := table.LongTermFor("2024-01-19")
	require.True(t, ok)
	assert.Equal(t, strp("2"), w.Min)
	assert.Nil(t, w.Max, "missing index is no data")
}

func TestBuildWeeklyTemperatureTableIgnoresOtherShapes(t *testing.T) {
	feed := mustWeekly(t, `[
	  {"publishingOffice": "気象庁", "reportDatetime": "2024-01-15T17:00:00+09:00", "timeSeries": [
	    {"timeDefines": ["2024-01-16T00:00:00+09:00"],
	     "areas": [
	       {"area": {"name": "仙台"}, "temps": ["1", "8"]},
	       {"area": {"name": "仙台", "code": "34392"}, "temps": [1, 8]},
	       {"area": {"name": "仙台", "code": "34392"}, "tempsMin": ["1"]},
	       {"area": {"name": "仙台", "code": "34392"}, "tempsMin": ["1"], "tempsMax": ["8"], "tempsMinUpper": null},
	       {"area": "仙台", "temps": ["1", "8"]}
	     ]}
	  ]}
	]`)

	table := BuildWeeklyTemperatureTable(feed, "仙台")
	assert.Nil(t, table.ShortTerm)
	assert.Empty(t, table.LongTerm)
}

func TestParseVariantsAreIndependent(t *testing.T) {
	feed := mustWeekly(t, `[
	  {"publishingOffice": "気象庁", "reportDatetime": "2024-01-15T17:00:00+09:00", "timeSeries": [
	    {"timeDefines": ["2024-01-16T00:00:00+09:00", "2024-01-17T00:00:00+09:00"],
	     "areas": [{"area": {"name": "新潟", "code": "54232"}, "temps": ["0", "6"], "tempsMin": ["0", "1"], "tempsMax": ["6", "7"]}]}
	  ]}
	]`)

	table := BuildWeeklyTemperatureTable(feed, "新潟")
	require.NotNil(t, table.ShortTerm)
	assert.Equal(t, "2024-01-16", *table.ShortTermDate)
	assert.Len(t, table.LongTerm, 2)
}
