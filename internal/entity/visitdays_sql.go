package entity

import (
	"database/sql/driver"
	"fmt"
)

// Value implements driver.Valuer.
func (vd VisitDays) Value() (driver.Value, error) {
	return vd.String(), nil
}

// Scan implements sql.Scanner.
func (vd *VisitDays) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case nil:
		*vd = nil
		return nil
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("can't scan %T into VisitDays", src)
	}
	days, unknown := ParseVisitDays(s)
	if len(unknown) > 0 {
		return fmt.Errorf("unknown visit days %v", unknown)
	}
	*vd = days
	return nil
}
