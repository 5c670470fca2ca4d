package timesheet

import "time"

// Summary is one employee's day. Optional fields are nil when the export
// holds no matching event, so an absent value is never confused with zero.
type Summary struct {
	PersonID      string
	Name          string
	Date          time.Time
	CheckIn       *time.Time
	LunchOut      *time.Time
	LunchIn       *time.Time
	CheckOut      *time.Time
	WorkedMinutes *int
	DeltaMinutes  *int
}

func (s Summary) HasWorked() bool {
	return s.WorkedMinutes != nil
}

// GroupByName splits summaries per employee name, keeping the order in which
// each name first appears.
func GroupByName(summaries []Summary) ([]string, map[string][]Summary) {
	var names []string
	groups := map[string][]Summary{}
	for _, summary := range summaries {
		if _, seen := groups[summary.Name]; !seen {
			names = append(names, summary.Name)
		}
		groups[summary.Name] = append(groups[summary.Name], summary)
	}
	return names, groups
}
