package weather

const (
	tomorrowIndex         = 1
	dayAfterTomorrowIndex = 2
)

// MergeDay reconciles the temperature of the day at position index with the weekly
// table. Today is never overridden. Tomorrow takes weekly values only when
// useWeeklyForTomorrow is set; the day after tomorrow always consults the long-term
// table. Min and max are overridden independently and only by present values.
func MergeDay(day DailyForecastDay, index int, useWeeklyForTomorrow bool, table WeeklyTemperatureTable) DailyForecastDay {
	var minC, maxC *string
	if t := day.Temperature; t != nil {
		minC = NormalizeTemperature(celsiusOf(t.Min))
		maxC = NormalizeTemperature(celsiusOf(t.Max))
	}

	var override *WeeklyTemperature
	switch index {
	case tomorrowIndex:
		if useWeeklyForTomorrow {
			override = tomorrowOverride(day.Date, table)
		}
	case dayAfterTomorrowIndex:
		if w, ok := table.LongTermFor(day.Date); ok {
			override = &w
		}
	}

	if override != nil {
		if override.Min != nil {
			minC = override.Min
		}
		if override.Max != nil {
			maxC = override.Max
		}
	}

	day.Temperature = &TemperatureRange{
		Min: &Temperature{Celsius: minC, Fahrenheit: CelsiusToFahrenheit(minC)},
		Max: &Temperature{Celsius: maxC, Fahrenheit: CelsiusToFahrenheit(maxC)},
	}
	return day
}

func celsiusOf(t *Temperature) *string {
	if t == nil {
		return nil
	}
	return t.Celsius
}

// tomorrowOverride prefers the short-term entry when it is anchored to date, then
// falls back to the long-term table.
func tomorrowOverride(date string, table WeeklyTemperatureTable) *WeeklyTemperature {
	if table.ShortTerm != nil && table.ShortTermDate != nil && *table.ShortTermDate == date {
		w := *table.ShortTerm
		return &w
	}
	if w, ok := table.LongTermFor(date); ok {
		return &w
	}
	return nil
}

// MergeForecasts applies MergeDay to every day of the feed and returns a new slice.
func MergeForecasts(days []DailyForecastDay, useWeeklyForTomorrow bool, table WeeklyTemperatureTable) []DailyForecastDay {
	out := make([]DailyForecastDay, len(days))
	for i, day := range days {
		out[i] = MergeDay(day, i, useWeeklyForTomorrow, table)
	}
	return out
}
