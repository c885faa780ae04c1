package dto

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/ilydev-openproject/salesaice/internal/entity"
)

// StoreInsert is the request body for creating or updating a store.
type StoreInsert struct {
	Name        string   `json:"name"`
	Code        string   `json:"code,omitempty"`
	FreezerCode string   `json:"freezerCode,omitempty"`
	Phone       string   `json:"phone,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	VisitDays   []string `json:"visitDays,omitempty"`
}

type Store struct {
	Id        int       `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	StoreInsert
}

func nullString(s string) sql.NullString {
	s = strings.TrimSpace(s)
	return sql.NullString{String: s, Valid: s != ""}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

func floatPtr(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64
	return &v
}

// ConvertStoreInsertToEntity converts the request body. Unknown day names are
// rejected.
func ConvertStoreInsertToEntity(s *StoreInsert) (*entity.StoreInsert, error) {
	if s == nil {
		return nil, fmt.Errorf("store is nil")
	}
	days, unknown := entity.ParseVisitDays(strings.Join(s.VisitDays, ","))
	if len(unknown) > 0 {
		return nil, fmt.Errorf("unknown visit days: %s", strings.Join(unknown, ", "))
	}
	return &entity.StoreInsert{
		Name:        strings.TrimSpace(s.Name),
		Code:        nullString(s.Code),
		FreezerCode: nullString(s.FreezerCode),
		Phone:       nullString(s.Phone),
		Latitude:    nullFloat(s.Latitude),
		Longitude:   nullFloat(s.Longitude),
		VisitDays:   days,
	}, nil
}

func visitDaysToDto(vd entity.VisitDays) []string {
	out := make([]string, 0, len(vd))
	for _, d := range vd {
		out = append(out, strings.ToLower(d.String()))
	}
	return out
}

func ConvertEntityStoreToDto(s *entity.Store) Store {
	return Store{
		Id:        s.Id,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
		StoreInsert: StoreInsert{
			Name:        s.Name,
			Code:        s.Code.String,
			FreezerCode: s.FreezerCode.String,
			Phone:       s.Phone.String,
			Latitude:    floatPtr(s.Latitude),
			Longitude:   floatPtr(s.Longitude),
			VisitDays:   visitDaysToDto(s.VisitDays),
		},
	}
}

func ConvertEntityStoresToDto(ss []entity.Store) []Store {
	out := make([]Store, 0, len(ss))
	for i := range ss {
		out = append(out, ConvertEntityStoreToDto(&ss[i]))
	}
	return out
}

// ScheduledStore is a row of today's visit schedule.
type ScheduledStore struct {
	Store   Store `json:"store"`
	Visited bool  `json:"visited"`
	Ordered bool  `json:"ordered"`
}

func ConvertEntityScheduleToDto(ss []entity.ScheduledStore) []ScheduledStore {
	out := make([]ScheduledStore, 0, len(ss))
	for i := range ss {
		out = append(out, ScheduledStore{
			Store:   ConvertEntityStoreToDto(&ss[i].Store),
			Visited: ss[i].Visited,
			Ordered: ss[i].Ordered,
		})
	}
	return out
}

// ImportSkip describes a CSV row that was not imported.
type ImportSkip struct {
	Line   int    `json:"line"`
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

type ImportStoresResponse struct {
	Created int          `json:"created"`
	Skipped []ImportSkip `json:"skipped"`
}
