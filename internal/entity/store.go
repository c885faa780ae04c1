package entity

import (
	"database/sql"
	"strings"
	"time"
)

// StoreInsert holds the editable fields of a store (outlet).
type StoreInsert struct {
	Name        string          `db:"name" valid:"required"`
	Code        sql.NullString  `db:"code" valid:"-"`
	FreezerCode sql.NullString  `db:"freezer_code" valid:"-"`
	Phone       sql.NullString  `db:"phone" valid:"-"`
	Latitude    sql.NullFloat64 `db:"latitude" valid:"-"`
	Longitude   sql.NullFloat64 `db:"longitude" valid:"-"`
	VisitDays   VisitDays       `db:"visit_days" valid:"-"`
}

// Store represents the store table
type Store struct {
	Id        int       `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
	StoreInsert
}

// HasCoordinate reports whether both GPS components are set.
func (s *Store) HasCoordinate() bool {
	return s.Latitude.Valid && s.Longitude.Valid
}

// VisitDays is a set of weekdays a store is scheduled to be visited on.
// It is persisted as a comma separated list of lowercase english day names.
type VisitDays []time.Weekday

// Contains reports whether d is one of the scheduled days.
func (vd VisitDays) Contains(d time.Weekday) bool {
	for _, w := range vd {
		if w == d {
			return true
		}
	}
	return false
}

func (vd VisitDays) String() string {
	names := make([]string, 0, len(vd))
	for _, w := range vd {
		names = append(names, strings.ToLower(w.String()))
	}
	return strings.Join(names, ",")
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,

	"minggu": time.Sunday,
	"senin":  time.Monday,
	"selasa": time.Tuesday,
	"rabu":   time.Wednesday,
	"kamis":  time.Thursday,
	"jumat":  time.Friday,
	"jum'at": time.Friday,
	"sabtu":  time.Saturday,

	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

// ParseWeekday parses an english or indonesian day name, full or abbreviated.
func ParseWeekday(s string) (time.Weekday, bool) {
	w, ok := weekdayNames[strings.ToLower(strings.TrimSpace(s))]
	return w, ok
}

// ParseVisitDays parses a comma separated day list. Unknown names are returned
// separately, duplicates are dropped.
func ParseVisitDays(s string) (VisitDays, []string) {
	var (
		days    VisitDays
		unknown []string
	)
	seen := map[time.Weekday]bool{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		w, ok := ParseWeekday(part)
		if !ok {
			unknown = append(unknown, part)
			continue
		}
		if seen[w] {
			continue
		}
		seen[w] = true
		days = append(days, w)
	}
	return days, unknown
}
