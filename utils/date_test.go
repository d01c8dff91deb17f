package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, loc)

	tests := []struct {
		name  string
		input string
	}{
		{name: "plain date", input: "2024-03-15"},
		{name: "padded plain date", input: "  2024-03-15 "},
		{name: "rfc3339 utc", input: "2024-03-15T09:30:00Z"},
		{name: "rfc3339 offset", input: "2024-03-15T23:30:00-05:00"},
		{name: "rfc3339 nano", input: "2024-03-15T09:30:00.123Z"},
		{name: "local timestamp", input: "2024-03-15T18:45:10"},
		{name: "space separated", input: "2024-03-15 18:45:10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input, loc)
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "got %v, want %v", got, want)
		})
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, input := range []string{"", "15/03/2024", "2024-13-01", "yesterday"} {
		_, err := ParseDate(input, time.UTC)
		assert.Error(t, err, input)
	}
}

func TestDayRange(t *testing.T) {
	start, end := DayRange(time.Date(2024, 3, 15, 13, 5, 0, 0, time.UTC), time.UTC)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC), end)
}
