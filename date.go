package perftrack

import "time"

// DateLayout is the wire format of calendar dates in the persisted slots.
const DateLayout = "2006-01-02"

// Date is a calendar day with no time-of-day component. The string form
// sorts chronologically, so dates compare directly with <, >, and ==.
type Date string

func DateOf(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

func Today() Date {
	return DateOf(time.Now())
}

// Time returns the date at midnight local time. A malformed date yields the
// zero time.
func (d Date) Time() time.Time {
	t, err := time.ParseInLocation(DateLayout, string(d), time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Between reports whether d lies within [start, end] inclusive.
func (d Date) Between(start, end Date) bool {
	return d >= start && d <= end
}

func (d Date) String() string {
	return string(d)
}
