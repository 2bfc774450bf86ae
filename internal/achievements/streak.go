package achievements

import (
	"sort"
	"time"
)

// CurrentStreak derives the current consecutive-day activity streak from a
// list of activity timestamps. Input order does not matter and multiple
// activities on the same calendar day count once.
//
// A streak must end today or yesterday: if the most recent activity is
// older than that the streak is broken and the result is 0. The function
// is total and deterministic for a fixed now.
func CurrentStreak(timestamps []time.Time, now time.Time) int {
	if len(timestamps) == 0 {
		return 0
	}

	// Reduce to distinct calendar days in the evaluation timezone.
	seen := make(map[time.Time]struct{})
	days := make([]time.Time, 0, len(timestamps))
	for _, ts := range timestamps {
		day := calendarDay(ts.In(now.Location()))
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}

	// Most recent first.
	sort.Slice(days, func(i, j int) bool {
		return days[j].Before(days[i])
	})

	today := calendarDay(now)
	yesterday := today.AddDate(0, 0, -1)

	anchor := days[0]
	if !anchor.Equal(today) && !anchor.Equal(yesterday) {
		return 0
	}

	// Walk backwards one calendar day at a time. AddDate rather than
	// duration math keeps this correct across DST transitions.
	streak := 0
	for i, day := range days {
		expected := anchor.AddDate(0, 0, -i)
		if !day.Equal(expected) {
			break
		}
		streak++
	}

	return streak
}

func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
