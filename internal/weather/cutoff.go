package weather

import (
	"time"

	"code.cloudfoundry.org/clock"
)

// jst is Japan Standard Time. Japan observes no DST, so a fixed zone is exact and does
// not depend on the host's tz database.
var jst = time.FixedZone("JST", 9*60*60)

// weeklyTomorrowLastHour is the last JST hour during which the daily feed's tomorrow
// temperatures are replaced by the weekly feed's.
//
// The hour is 5 (00:00-05:59). An older note in the upstream project mentions
// "11時以降"; the executable rule is kept until that discrepancy is settled.
const weeklyTomorrowLastHour = 5

// ShouldUseWeeklyForTomorrow reports whether, at the clock's current time, tomorrow's
// temperatures should come from the weekly feed.
func ShouldUseWeeklyForTomorrow(c clock.Clock) bool {
	return c.Now().In(jst).Hour() <= weeklyTomorrowLastHour
}

// NextCutoffBoundary returns the first instant after t at which
// ShouldUseWeeklyForTomorrow can change its answer: 06:00 or midnight JST.
func NextCutoffBoundary(t time.Time) time.Time {
	local := t.In(jst)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, jst)
	if end := midnight.Add((weeklyTomorrowLastHour + 1) * time.Hour); local.Before(end) {
		return end
	}
	return midnight.AddDate(0, 0, 1)
}
