package weather

import (
	"github.com/i474232898/jma-forecast/internal/common"
)

// WeeklyTemperature is a min/max pair taken from the weekly feed. Either side may be nil.
type WeeklyTemperature struct {
	Min *string
	Max *string
}

func (t WeeklyTemperature) empty() bool {
	return t.Min == nil && t.Max == nil
}

// WeeklyTemperatureTable is the date-keyed view of the weekly feed for one city.
// It is built per reconciliation and never shared.
type WeeklyTemperatureTable struct {
	ShortTerm     *WeeklyTemperature
	ShortTermDate *string
	LongTerm      map[string]WeeklyTemperature
}

// LongTermFor returns the long-term entry for date, if any.
func (t WeeklyTemperatureTable) LongTermFor(date string) (WeeklyTemperature, bool) {
	w, ok := t.LongTerm[date]
	return w, ok
}

// BuildWeeklyTemperatureTable scans every area record of the feed for the given label.
// The first matching short-term record with data fills the short-term slot; long-term
// records fill the date map with later sections overwriting earlier ones.
func BuildWeeklyTemperatureTable(feed WeeklyFeed, label string) WeeklyTemperatureTable {
	table := WeeklyTemperatureTable{
		LongTerm: make(map[string]WeeklyTemperature),
	}

	for _, section := range feed {
		for _, series := range section.TimeSeries {
			for _, rec := range series.Areas {
				if table.ShortTerm == nil {
					if st, ok := parseShortTermArea(rec); ok && st.Area.Name == label {
						w := WeeklyTemperature{
							Min: temperatureAt(st.Temps, 0),
							Max: temperatureAt(st.Temps, 1),
						}
						if !w.empty() {
							table.ShortTerm = &w
							if len(series.TimeDefines) > 0 && series.TimeDefines[0] != nil {
								d := dateOf(*series.TimeDefines[0])
								table.ShortTermDate = &d
							}
						}
					}
				}

				lt, ok := parseLongTermArea(rec)
				if !ok || lt.Area.Name != label {
					continue
				}
				for i, td := range series.TimeDefines {
					if td == nil {
						continue
					}
					date := dateOf(*td)
					if date == "" {
						continue
					}
					w := WeeklyTemperature{
						Min: temperatureAt(lt.TempsMin, i),
						Max: temperatureAt(lt.TempsMax, i),
					}
					if !w.empty() {
						table.LongTerm[date] = w
					}
				}
			}
		}
	}

	return table
}

// dateOf returns the date-only part of an ISO timestamp.
func dateOf(timeDefine string) string {
	return common.Prefix(timeDefine, 10)
}
