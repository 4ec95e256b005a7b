package schedule

import (
	"testing"
	"time"
)

func TestCurrentSeason(t *testing.T) {
	t.Parallel()

	cases := []struct {
		date string
		want int
	}{
		{date: "2024-09-15", want: 2024},
		{date: "2024-02-15", want: 2023},
		{date: "2024-08-31", want: 2023},
		{date: "2024-09-01", want: 2024},
		{date: "2024-12-31", want: 2024},
		{date: "2025-01-01", want: 2024},
	}

	for _, tc := range cases {
		now, err := time.Parse("2006-01-02", tc.date)
		if err != nil {
			t.Fatalf("parse date %s: %v", tc.date, err)
		}
		if got := CurrentSeason(now); got != tc.want {
			t.Fatalf("season for %s: got=%d want=%d", tc.date, got, tc.want)
		}
	}
}

func TestNormalizeStatusAndSeasonType(t *testing.T) {
	t.Parallel()

	if got := NormalizeStatus(" Closed "); got != StatusClosed {
		t.Fatalf("unexpected status: %s", got)
	}
	if got := NormalizeStatus(""); got != StatusScheduled {
		t.Fatalf("unexpected default status: %s", got)
	}
	if got := NormalizeSeasonType("pst"); got != SeasonTypePostseason {
		t.Fatalf("unexpected season type: %s", got)
	}
	if got := NormalizeSeasonType(""); got != SeasonTypeRegular {
		t.Fatalf("unexpected default season type: %s", got)
	}
}
