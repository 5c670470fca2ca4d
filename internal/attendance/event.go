package attendance

import (
	"strings"
	"time"
)

type Status string

const (
	StatusCheckIn   Status = "Check in"
	StatusCheckOut  Status = "Check out"
	StatusCoffeeOut Status = "Coffee out"
	StatusCoffeeIn  Status = "Coffee in"
)

var knownStatuses = []Status{StatusCheckIn, StatusCheckOut, StatusCoffeeOut, StatusCoffeeIn}

// Event is one row of the attendance export. A zero Time means the
// timestamp could not be parsed.
type Event struct {
	PersonID string
	Name     string
	Time     time.Time
	Status   Status
}

func (e Event) HasTime() bool {
	return !e.Time.IsZero()
}

// ParseStatus maps the raw export value onto a known status. Unknown values
// are returned verbatim with ok set to false.
func ParseStatus(raw string) (Status, bool) {
	trimmed := strings.TrimSpace(raw)
	for _, status := range knownStatuses {
		if strings.EqualFold(trimmed, string(status)) {
			return status, true
		}
	}
	return Status(trimmed), false
}
