// Package report holds the pure aggregation functions behind the reporting
// screens: period filtering, summaries, rankings, reward eligibility and
// reorder velocity. Nothing here touches storage.
package report

import (
	"fmt"
	"time"

	"github.com/ilydev-openproject/salesaice/internal/entity"
)

type PeriodKind string

const (
	PeriodToday PeriodKind = "today"
	PeriodMonth PeriodKind = "month"
	PeriodDate  PeriodKind = "date"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

// Period selects a reporting window relative to "now".
type Period struct {
	Kind PeriodKind
	// Date is the calendar day for PeriodDate, ignored otherwise.
	Date time.Time
}

func Today() Period     { return Period{Kind: PeriodToday} }
func ThisMonth() Period { return Period{Kind: PeriodMonth} }
func OnDate(d time.Time) Period {
	return Period{Kind: PeriodDate, Date: d}
}

// ParsePeriod parses a period kind and, for PeriodDate, a YYYY-MM-DD date.
// An empty kind means today.
func ParsePeriod(kind, date string, loc *time.Location) (Period, error) {
	switch PeriodKind(kind) {
	case "", PeriodToday:
		return Today(), nil
	case PeriodMonth:
		return ThisMonth(), nil
	case PeriodDate:
		d, err := time.ParseInLocation(dateLayout, date, loc)
		if err != nil {
			return Period{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", date, err)
		}
		return OnDate(d), nil
	default:
		return Period{}, fmt.Errorf("unknown period %q", kind)
	}
}

// Bounds returns the half-open range [from, to) of the period in loc.
func (p Period) Bounds(now time.Time, loc *time.Location) entity.TimeRange {
	now = now.In(loc)
	switch p.Kind {
	case PeriodMonth:
		from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		return entity.TimeRange{From: from, To: from.AddDate(0, 1, 0)}
	case PeriodDate:
		d := p.Date.In(loc)
		from := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
		return entity.TimeRange{From: from, To: from.AddDate(0, 0, 1)}
	default:
		from := StartOfDay(now, loc)
		return entity.TimeRange{From: from, To: from.AddDate(0, 0, 1)}
	}
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// Stamped is anything carrying a creation timestamp. A zero time means the
// record has no timestamp.
type Stamped interface {
	Timestamp() time.Time
}

// FilterByPeriod keeps the items whose timestamp falls in the period.
// Records without a timestamp are dropped. Input order is kept.
func FilterByPeriod[T Stamped](items []T, p Period, now time.Time, loc *time.Location) []T {
	return FilterByRange(items, p.Bounds(now, loc))
}

// FilterByRange keeps the items whose timestamp falls in [tr.From, tr.To).
func FilterByRange[T Stamped](items []T, tr entity.TimeRange) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		ts := it.Timestamp()
		if ts.IsZero() {
			continue
		}
		if tr.Contains(ts) {
			out = append(out, it)
		}
	}
	return out
}

// MonthKey returns the "YYYY-MM" key of t in loc.
func MonthKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(monthLayout)
}

// MonthBounds returns [first day, first day of next month) for a "YYYY-MM" key.
func MonthBounds(key string, loc *time.Location) (entity.TimeRange, error) {
	from, err := time.ParseInLocation(monthLayout, key, loc)
	if err != nil {
		return entity.TimeRange{}, fmt.Errorf("invalid month %q, expected YYYY-MM: %w", key, err)
	}
	return entity.TimeRange{From: from, To: from.AddDate(0, 1, 0)}, nil
}

// PreviousMonth returns the month range before the one containing now.
func PreviousMonth(now time.Time, loc *time.Location) entity.TimeRange {
	cur := ThisMonth().Bounds(now, loc)
	return entity.TimeRange{From: cur.From.AddDate(0, -1, 0), To: cur.From}
}

// DaysBetween counts calendar days from a to b in loc. Negative when b is
// before a.
func DaysBetween(a, b time.Time, loc *time.Location) int {
	da := StartOfDay(a, loc)
	db := StartOfDay(b, loc)
	// civil days, so DST shifts of an hour don't change the count
	ya, ma, dda := da.Date()
	yb, mb, ddb := db.Date()
	ua := time.Date(ya, ma, dda, 0, 0, 0, 0, time.UTC)
	ub := time.Date(yb, mb, ddb, 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}
