package report

import (
	"time"

	"github.com/phillip-england/ponto/internal/timesheet"
)

var generatedAt = time.Date(2024, 9, 30, 18, 0, 0, 0, time.UTC)

func clockAt(hour, minute int) *time.Time {
	t := time.Date(2024, 9, 2, hour, minute, 0, 0, time.UTC)
	return &t
}

func intPtr(v int) *int {
	return &v
}

func sampleSummaries() []timesheet.Summary {
	date := time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC)
	return []timesheet.Summary{
		{
			PersonID: "1", Name: "Ana Silva", Date: date,
			CheckIn: clockAt(8, 0), CheckOut: clockAt(17, 35),
			WorkedMinutes: intPtr(575), DeltaMinutes: intPtr(65),
		},
		{
			PersonID: "2", Name: "Rui Costa", Date: date,
			CheckIn: clockAt(9, 0), LunchOut: clockAt(12, 0), LunchIn: clockAt(12, 30), CheckOut: clockAt(17, 30),
			WorkedMinutes: intPtr(480), DeltaMinutes: intPtr(-30),
		},
		{
			PersonID: "3", Name: "Marta", Date: date,
			CheckIn: clockAt(8, 0),
		},
		{
			PersonID: "4", Name: "Zé", Date: date,
			CheckIn: clockAt(8, 0), CheckOut: clockAt(16, 30),
			WorkedMinutes: intPtr(510), DeltaMinutes: intPtr(0),
		},
	}
}

func fullConfig() Config {
	return Config{
		Kind:             KindFull,
		TargetMinutes:    510,
		ToleranceMinutes: 15,
		GeneratedAt:      generatedAt,
	}
}
