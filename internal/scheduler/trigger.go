package scheduler

import "time"

// Trigger maps a moment to the period it belongs to and reports whether the
// period's trigger time has been reached.
type Trigger interface {
	Period(now time.Time) (key string, due bool)
}

func sinceMidnight(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second
}

// Hourly fires once per hour after Minute.
type Hourly struct {
	Minute int
}

func (h Hourly) Period(now time.Time) (string, bool) {
	return now.Format("2006-01-02T15"), now.Minute() >= h.Minute
}

// Daily fires once per day after At, an offset from midnight.
type Daily struct {
	At time.Duration
}

func (d Daily) Period(now time.Time) (string, bool) {
	return now.Format("2006-01-02"), sinceMidnight(now) >= d.At
}

// Weekly fires once on Day after At.
type Weekly struct {
	Day time.Weekday
	At  time.Duration
}

func (w Weekly) Period(now time.Time) (string, bool) {
	key := now.Format("2006-01-02") + "/" + now.Weekday().String()
	return key, now.Weekday() == w.Day && sinceMidnight(now) >= w.At
}
