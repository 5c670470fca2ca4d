package timesheet

import (
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/phillip-england/ponto/internal/attendance"
)

type groupKey struct {
	personID string
	name     string
	date     time.Time
}

type dayEvents struct {
	checkIn  *time.Time
	checkOut *time.Time
	lunchOut *time.Time
	lunchIn  *time.Time
}

// Aggregate builds one Summary per (person, name, date) present in events.
// Events without a timestamp are skipped. The result is sorted by the
// grouping key and does not depend on the order of events.
func Aggregate(events []attendance.Event, targetMinutes int) []Summary {
	days := map[groupKey]*dayEvents{}
	for _, event := range events {
		if !event.HasTime() {
			continue
		}
		key := groupKey{personID: event.PersonID, name: event.Name, date: dateOf(event.Time)}
		day, ok := days[key]
		if !ok {
			day = &dayEvents{}
			days[key] = day
		}

		ts := event.Time
		switch event.Status {
		case attendance.StatusCheckIn:
			day.checkIn = earliest(day.checkIn, ts)
		case attendance.StatusCheckOut:
			day.checkOut = latest(day.checkOut, ts)
		case attendance.StatusCoffeeOut:
			day.lunchOut = earliest(day.lunchOut, ts)
		case attendance.StatusCoffeeIn:
			day.lunchIn = latest(day.lunchIn, ts)
		}
	}

	keys := make([]groupKey, 0, len(days))
	for key := range days {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keyLess(keys[i], keys[j])
	})

	summaries := make([]Summary, 0, len(keys))
	for _, key := range keys {
		day := days[key]
		summary := Summary{
			PersonID: key.personID,
			Name:     key.name,
			Date:     key.date,
			CheckIn:  day.checkIn,
			LunchOut: day.lunchOut,
			LunchIn:  day.lunchIn,
			CheckOut: day.checkOut,
		}
		if worked, ok := WorkedMinutes(day.checkIn, day.checkOut, day.lunchOut, day.lunchIn); ok {
			delta := worked - targetMinutes
			summary.WorkedMinutes = &worked
			summary.DeltaMinutes = &delta
		}
		summaries = append(summaries, summary)
	}
	return summaries
}

// WorkedMinutes is the check-in to check-out interval minus the lunch break,
// rounded to whole minutes. The break only counts when both of its markers
// are present.
func WorkedMinutes(checkIn, checkOut, lunchOut, lunchIn *time.Time) (int, bool) {
	if checkIn == nil || checkOut == nil {
		return 0, false
	}
	gross := checkOut.Sub(*checkIn).Minutes()
	lunch := 0.0
	if lunchOut != nil && lunchIn != nil {
		lunch = lunchIn.Sub(*lunchOut).Minutes()
	}
	return int(math.Round(gross - lunch)), true
}

func dateOf(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func earliest(current *time.Time, candidate time.Time) *time.Time {
	if current == nil || candidate.Before(*current) {
		return &candidate
	}
	return current
}

func latest(current *time.Time, candidate time.Time) *time.Time {
	if current == nil || candidate.After(*current) {
		return &candidate
	}
	return current
}

func keyLess(a, b groupKey) bool {
	if a.personID != b.personID {
		return personIDLess(a.personID, b.personID)
	}
	if a.name != b.name {
		return a.name < b.name
	}
	return a.date.Before(b.date)
}

// personIDLess orders integer ids numerically ahead of all other ids, which
// compare as strings. Integer ids of equal value ("01", "1") fall back to
// their text.
func personIDLess(a, b string) bool {
	an, aErr := strconv.ParseInt(a, 10, 64)
	bn, bErr := strconv.ParseInt(b, 10, 64)
	aNum, bNum := aErr == nil, bErr == nil
	switch {
	case aNum && !bNum:
		return true
	case !aNum && bNum:
		return false
	case aNum && bNum && an != bn:
		return an < bn
	}
	return a < b
}
