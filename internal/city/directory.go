package city

import (
	"errors"
	"fmt"

	"github.com/i474232898/jma-forecast/internal/common"
)

var (
	// ErrUnknownCity is returned when a city id is not part of the directory.
	ErrUnknownCity = errors.New("unknown city")
)

// City is a single forecast point. Label doubles as the area name in the weekly feed.
type City struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Group is a regional grouping of cities as shown in the city picker.
type Group struct {
	Label  string `json:"label"`
	Cities []City `json:"cities"`
}

// Entry is a resolved city together with the label of its group.
type Entry struct {
	City
	GroupLabel string `json:"groupLabel"`
}

var index = buildIndex(groups)

func buildIndex(gs []Group) map[string]Entry {
	idx := make(map[string]Entry)
	for _, g := range gs {
		for _, c := range g.Cities {
			idx[c.ID] = Entry{City: c, GroupLabel: g.Label}
		}
	}
	return idx
}

// Resolve looks up a city id in the directory.
func Resolve(cityID string) (Entry, error) {
	e, ok := index[cityID]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownCity, cityID)
	}
	return e, nil
}

// WeeklyAreaCode derives the weekly feed's area code from a city id: the first three
// characters followed by "000". Ids shorter than three characters are returned as is.
func WeeklyAreaCode(cityID string) string {
	if len(cityID) < 3 {
		return cityID
	}
	return common.Prefix(cityID, 3) + "000"
}

// Groups returns a copy of the ordered directory.
func Groups() []Group {
	out := make([]Group, len(groups))
	for i, g := range groups {
		out[i] = Group{
			Label:  g.Label,
			Cities: append([]City(nil), g.Cities...),
		}
	}
	return out
}
