package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func day(date string, minC, maxC *string) DailyForecastDay {
	return DailyForecastDay{
		Date:      date,
		DateLabel: date,
		Telop:     "晴れ",
		Detail:    &ForecastDetail{Weather: strp("晴れ")},
		Temperature: &TemperatureRange{
			Min: &Temperature{Celsius: minC, Fahrenheit: strp("stale")},
			Max: &Temperature{Celsius: maxC, Fahrenheit: strp("stale")},
		},
		ChanceOfRain: &ChanceOfRain{T00_06: strp("0%"), T06_12: strp("10%"), T12_18: strp("20%"), T18_24: strp("30%")},
		Image:        ForecastImage{Title: "晴れ", URL: "https://www.jma.go.jp/bosai/forecast/img/100.svg", Width: 80, Height: 60},
	}
}

func threeDays() []DailyForecastDay {
	return []DailyForecastDay{
		day("2024-01-15", strp("0"), strp("9")),
		day("2024-01-16", strp("1"), strp("10")),
		day("2024-01-17", strp("2"), strp("11")),
	}
}

func fullTable() WeeklyTemperatureTable {
	return WeeklyTemperatureTable{
		ShortTerm:     &WeeklyTemperature{Min: strp("5"), Max: strp("12")},
		ShortTermDate: strp("2024-01-16"),
		LongTerm: map[string]WeeklyTemperature{
			"2024-01-15": {Min: strp("-9"), Max: strp("-9")},
			"2024-01-16": {Min: strp("7"), Max: strp("17")},
			"2024-01-17": {Min: nil, Max: strp("15")},
			"2024-01-18": {Min: strp("8"), Max: strp("18")},
		},
	}
}

func emptyTable() WeeklyTemperatureTable {
	return WeeklyTemperatureTable{LongTerm: map[string]WeeklyTemperature{}}
}

func celsius(d DailyForecastDay) (*string, *string) {
	return d.Temperature.Min.Celsius, d.Temperature.Max.Celsius
}

func TestMergeWithEmptyTableKeepsDailyValues(t *testing.T) {
	days := threeDays()
	days = append(days, day("2024-01-18", strp(" 3 "), strp("--")))

	for _, cutoff := range []bool{true, false} {
		merged := MergeForecasts(days, cutoff, emptyTable())
		for i, d := range merged {
			minC, maxC := celsius(d)
			assert.Equal(t, NormalizeTemperature(days[i].Temperature.Min.Celsius), minC, "day %d", i)
			assert.Equal(t, NormalizeTemperature(days[i].Temperature.Max.Celsius), maxC, "day %d", i)
		}
	}
}

func TestMergeNeverOverridesToday(t *testing.T) {
	for _, cutoff := range []bool{true, false} {
		merged := MergeDay(day("2024-01-15", strp("0"), nil), 0, cutoff, fullTable())
		minC, maxC := celsius(merged)
		assert.Equal(t, strp("0"), minC)
		assert.Nil(t, maxC)
		assert.Nil(t, merged.Temperature.Max.Fahrenheit)
	}
}

func TestMergeTomorrowUsesShortTermDuringCutoff(t *testing.T) {
	merged := MergeForecasts(threeDays(), true, fullTable())

	tomorrow := merged[1].Temperature
	assert.Equal(t, strp("5"), tomorrow.Min.Celsius)
	assert.Equal(t, strp("12"), tomorrow.Max.Celsius)
	assert.Equal(t, strp("41.0"), tomorrow.Min.Fahrenheit)
	assert.Equal(t, strp("53.6"), tomorrow.Max.Fahrenheit)
}

func TestMergeTomorrowIgnoresWeeklyOutsideCutoff(t *testing.T) {
	merged := MergeForecasts(threeDays(), false, fullTable())

	tomorrow := merged[1].Temperature
	assert.Equal(t, strp("1"), tomorrow.Min.Celsius)
	assert.Equal(t, strp("10"), tomorrow.Max.Celsius)
	assert.Equal(t, strp("33.8"), tomorrow.Min.Fahrenheit)
	assert.Equal(t, strp("50.0"), tomorrow.Max.Fahrenheit)
}

func TestMergeTomorrowFallsBackToLongTerm(t *testing.T) {
	table := fullTable()
	table.ShortTermDate = strp("2024-01-20")

	merged := MergeDay(day("2024-01-16", strp("1"), strp("10")), 1, true, table)
	minC, maxC := celsius(merged)
	assert.Equal(t, strp("7"), minC)
	assert.Equal(t, strp("17"), maxC)
}

func TestMergeTomorrowWithoutWeeklyData(t *testing.T) {
	merged := MergeDay(day("2024-01-16", strp("1"), nil), 1, true, emptyTable())
	minC, maxC := celsius(merged)
	assert.Equal(t, strp("1"), minC)
	assert.Nil(t, maxC)
}

func TestMergeDayAfterTomorrowOverridesPerComponent(t *testing.T) {
	for _, cutoff := range []bool{true, false} {
		merged := MergeForecasts(threeDays(), cutoff, fullTable())

		minC, maxC := celsius(merged[2])
		assert.Equal(t, strp("2"), minC, "absent weekly min keeps the daily value")
		assert.Equal(t, strp("15"), maxC)
		assert.Equal(t, strp("59.0"), merged[2].Temperature.Max.Fahrenheit)
	}
}

func TestMergeLeavesLaterDaysAlone(t *testing.T) {
	days := append(threeDays(), day("2024-01-18", strp("4"), strp("13")))
	merged := MergeForecasts(days, true, fullTable())

	minC, maxC := celsius(merged[3])
	assert.Equal(t, strp("4"), minC)
	assert.Equal(t, strp("13"), maxC)
}

func TestMergeRecomputesFahrenheit(t *testing.T) {
	merged := MergeDay(day("2024-01-15", strp("0"), strp("--")), 0, false, emptyTable())
	assert.Equal(t, strp("32.0"), merged.Temperature.Min.Fahrenheit)
	assert.Nil(t, merged.Temperature.Max.Celsius)
	assert.Nil(t, merged.Temperature.Max.Fahrenheit)
}

func TestMergePassesOtherFieldsThrough(t *testing.T) {
	days := threeDays()
	days[2].Detail = &ForecastDetail{Weather: strp("くもり"), Wind: strp("北の風")}

	merged := MergeForecasts(days, true, fullTable())
	for i := range days {
		assert.Equal(t, days[i].Date, merged[i].Date)
		assert.Equal(t, days[i].DateLabel, merged[i].DateLabel)
		assert.Equal(t, days[i].Telop, merged[i].Telop)
		assert.Equal(t, days[i].Detail, merged[i].Detail)
		assert.Equal(t, days[i].ChanceOfRain, merged[i].ChanceOfRain)
		assert.Equal(t, days[i].Image, merged[i].Image)
	}
	// The input is not modified.
	assert.Equal(t, strp("stale"), days[1].Temperature.Min.Fahrenheit)
}

func TestMergeShortTermOverrideIsIndependentPerComponent(t *testing.T) {
	table := emptyTable()
	table.ShortTerm = &WeeklyTemperature{Max: strp("12")}
	table.ShortTermDate = strp("2024-01-16")

	merged := MergeDay(day("2024-01-16", strp("1"), strp("10")), 1, true, table)
	minC, maxC := celsius(merged)
	assert.Equal(t, strp("1"), minC)
	assert.Equal(t, strp("12"), maxC)
}

func TestMergeDayWithoutTemperatureBlock(t *testing.T) {
	d := day("2024-01-17", nil, nil)
	d.Temperature = nil

	merged := MergeDay(d, 2, false, fullTable())
	minC, maxC := celsius(merged)
	assert.Nil(t, minC)
	assert.Equal(t, strp("15"), maxC)
	assert.Nil(t, d.Temperature)
}
