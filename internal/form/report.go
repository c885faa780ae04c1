package form

import (
	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/ilydev-openproject/salesaice/internal/dto"
	"github.com/ilydev-openproject/salesaice/internal/report"
)

type ReportRequest struct {
	*dto.ReportRequest
}

// Validate checks the period selector. Sort keys are checked by the ranker
// since stores and products accept different keys.
func (r *ReportRequest) Validate() error {
	if r == nil || r.ReportRequest == nil {
		return errNilRequest
	}
	return ValidateStruct(r.ReportRequest,
		v.Field(&r.Period, v.In("", string(report.PeriodToday), string(report.PeriodMonth), string(report.PeriodDate))),
		v.Field(&r.Date,
			v.When(r.Period == string(report.PeriodDate), v.Required),
			v.Date("2006-01-02"),
		),
	)
}

type TargetRequest struct {
	*dto.MonthlyTarget
}

func (r *TargetRequest) Validate() error {
	if r == nil || r.MonthlyTarget == nil {
		return errNilRequest
	}
	return ValidateStruct(r.MonthlyTarget,
		v.Field(&r.BoxGoal, v.Min(int64(0))),
		v.Field(&r.RevenueGoal, v.Min(int64(0))),
	)
}
