package planner

// WeekDays is the canonical display order for the weekly view.
var WeekDays = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

func ValidDay(day string) bool {
	for _, d := range WeekDays {
		if d == day {
			return true
		}
	}
	return false
}

type Schedule []Entry

func (s Schedule) Contains(e Entry) bool {
	for _, entry := range s {
		if entry.Equals(e) {
			return true
		}
	}
	return false
}

// Merge concatenates schedules. Rows are never mutated, so duplicate days
// across the inputs are expected and preserved in concatenation order.
func Merge(schedules ...Schedule) Schedule {
	merged := make(Schedule, 0)
	for _, s := range schedules {
		merged = append(merged, s...)
	}
	return merged
}

// ByDay groups entries under their weekday, keeping concatenation order
// inside each group. Entries with a day outside WeekDays are left out.
func (s Schedule) ByDay() map[string]Schedule {
	groups := make(map[string]Schedule)
	for _, e := range s {
		if !ValidDay(e.Day) {
			continue
		}
		groups[e.Day] = append(groups[e.Day], e)
	}
	return groups
}
