package weather

import (
	"encoding/json"
)

// AreaRecord is one entry of a time series' areas. Short-term and long-term records
// share the container but differ in shape, so the record is kept raw and interpreted
// through parseShortTermArea and parseLongTermArea.
type AreaRecord map[string]json.RawMessage

// TimeSeries is one block of a weekly feed section. Time defines are pointers so that a
// null element is rejected rather than read as an empty string.
type TimeSeries struct {
	TimeDefines []*string    `json:"timeDefines" validate:"required,dive,required"`
	Areas       []AreaRecord `json:"areas" validate:"required,dive,required"`
}

// WeeklySection is one report of the weekly feed.
type WeeklySection struct {
	PublishingOffice string       `json:"publishingOffice" validate:"required"`
	ReportDatetime   string       `json:"reportDatetime" validate:"required"`
	TimeSeries       []TimeSeries `json:"timeSeries" validate:"required,dive"`
}

// WeeklyFeed is the JMA forecast document: an ordered list of sections.
type WeeklyFeed []WeeklySection

// AreaRef identifies the area a record belongs to.
type AreaRef struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// ShortTermArea carries a single day's [min, max] pair.
type ShortTermArea struct {
	Area  AreaRef
	Temps []string
}

// LongTermArea carries min/max sequences aligned with the series' timeDefines.
type LongTermArea struct {
	Area     AreaRef
	TempsMin []string
	TempsMax []string
}

// parseShortTermArea reports whether rec has the short-term shape.
func parseShortTermArea(rec AreaRecord) (ShortTermArea, bool) {
	area, ok := parseAreaRef(rec)
	if !ok {
		return ShortTermArea{}, false
	}
	temps, ok := stringSlice(rec, "temps", true)
	if !ok {
		return ShortTermArea{}, false
	}
	return ShortTermArea{Area: area, Temps: temps}, true
}

// parseLongTermArea reports whether rec has the long-term shape. The optional
// upper/lower bound sequences must be string arrays when present.
func parseLongTermArea(rec AreaRecord) (LongTermArea, bool) {
	area, ok := parseAreaRef(rec)
	if !ok {
		return LongTermArea{}, false
	}
	mins, ok := stringSlice(rec, "tempsMin", true)
	if !ok {
		return LongTermArea{}, false
	}
	maxs, ok := stringSlice(rec, "tempsMax", true)
	if !ok {
		return LongTermArea{}, false
	}
	for _, key := range []string{"tempsMinUpper", "tempsMinLower", "tempsMaxUpper", "tempsMaxLower"} {
		if _, ok := stringSlice(rec, key, false); !ok {
			return LongTermArea{}, false
		}
	}
	return LongTermArea{Area: area, TempsMin: mins, TempsMax: maxs}, true
}

func parseAreaRef(rec AreaRecord) (AreaRef, bool) {
	raw, ok := rec["area"]
	if !ok {
		return AreaRef{}, false
	}
	var ref struct {
		Name *string `json:"name"`
		Code *string `json:"code"`
	}
	if err := json.Unmarshal(raw, &ref); err != nil || ref.Name == nil || ref.Code == nil {
		return AreaRef{}, false
	}
	return AreaRef{Name: *ref.Name, Code: *ref.Code}, true
}

// stringSlice decodes rec[key] as an array of strings. A missing key is accepted only
// when required is false. Null elements fail the match.
func stringSlice(rec AreaRecord, key string, required bool) ([]string, bool) {
	raw, ok := rec[key]
	if !ok {
		return nil, !required
	}
	var items []*string
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return nil, false
	}
	out := make([]string, len(items))
	for i, s := range items {
		if s == nil {
			return nil, false
		}
		out[i] = *s
	}
	return out, true
}
