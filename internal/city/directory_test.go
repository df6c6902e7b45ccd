package city

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveKnownCity(t *testing.T) {
	e, err := Resolve("130010")
	require.NoError(t, err)

	assert.Equal(t, "東京", e.Label)
	assert.Equal(t, "東京都", e.GroupLabel)
	assert.Equal(t, "130010", e.ID)
}

func TestResolveUnknownCity(t *testing.T) {
	_, err := Resolve("999999")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownCity))
}

func TestWeeklyAreaCode(t *testing.T) {
	cases := map[string]string{
		"130010": "130000",
		"016010": "016000",
		"474020": "474000",
		"12":     "12",
		"":       "",
		"123":    "123000",
	}
	for in, want := range cases {
		assert.Equal(t, want, WeeklyAreaCode(in), "city id %q", in)
	}
}

func TestGroupsReturnsCopy(t *testing.T) {
	gs := Groups()
	require.NotEmpty(t, gs)
	gs[0].Cities[0].Label = "changed"

	e, err := Resolve(gs[0].Cities[0].ID)
	require.NoError(t, err)
	assert.NotEqual(t, "changed", e.Label)
}

func TestDirectoryIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, g := range Groups() {
		for _, c := range g.Cities {
			assert.False(t, seen[c.ID], "duplicate id %s", c.ID)
			seen[c.ID] = true
		}
	}
	assert.Len(t, index, len(seen))
}
