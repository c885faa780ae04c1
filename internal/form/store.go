package form

import (
	"fmt"
	"regexp"

	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/ilydev-openproject/salesaice/internal/dto"
	"github.com/ilydev-openproject/salesaice/internal/entity"
)

var phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9 \-]{5,19}$`)

type StoreRequest struct {
	*dto.StoreInsert
}

func (r *StoreRequest) Validate() error {
	if r == nil || r.StoreInsert == nil {
		return errNilRequest
	}
	return ValidateStruct(r.StoreInsert,
		v.Field(&r.Name, v.Required, v.Length(1, 120)),
		v.Field(&r.Code, v.Length(0, 32)),
		v.Field(&r.FreezerCode, v.Length(0, 32)),
		v.Field(&r.Phone, v.Match(phoneRegex)),
		v.Field(&r.Latitude, v.When(r.Longitude != nil, v.NotNil), v.Min(-90.0), v.Max(90.0)),
		v.Field(&r.Longitude, v.When(r.Latitude != nil, v.NotNil), v.Min(-180.0), v.Max(180.0)),
		v.Field(&r.VisitDays, v.Each(v.By(validateWeekday))),
	)
}

func validateWeekday(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("invalid type for visit day")
	}
	if _, ok := entity.ParseWeekday(s); !ok {
		return fmt.Errorf("unknown day %q", s)
	}
	return nil
}
