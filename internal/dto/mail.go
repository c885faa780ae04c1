package dto

import (
	"fmt"

	"github.com/ilydev-openproject/salesaice/internal/entity"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DailyDigest is the template data of the daily summary email. Amounts are
// pre-formatted with the grouping rules of the configured language.
type DailyDigest struct {
	Day             string
	RevenueToday    string
	BoxesToday      string
	OrdersToday     int
	VisitsToday     int
	ConversionToday string
	RevenueMonth    string
	RevenueChange   string
	BoxesMonth      string
	HasTarget       bool
	BoxProgress     string
	RevenueProgress string
}

func ConvertDashboardToDigest(day string, d *entity.Dashboard, lang language.Tag) *DailyDigest {
	p := message.NewPrinter(lang)
	dd := &DailyDigest{
		Day:             day,
		RevenueToday:    p.Sprintf("%d", d.Today.Revenue),
		BoxesToday:      p.Sprintf("%d", d.Today.Boxes),
		OrdersToday:     d.Today.OrderCount,
		VisitsToday:     d.Today.VisitCount,
		ConversionToday: d.Today.ConversionRate.StringFixed(1),
		RevenueMonth:    p.Sprintf("%d", d.Month.Revenue),
		BoxesMonth:      p.Sprintf("%d", d.Month.Boxes),
		HasTarget:       d.Progress.Target.BoxGoal > 0 || d.Progress.Target.RevenueGoal > 0,
		BoxProgress:     d.Progress.BoxProgress.StringFixed(1),
		RevenueProgress: d.Progress.RevenueProgress.StringFixed(1),
	}
	if d.RevenueChange != nil {
		dd.RevenueChange = fmt.Sprintf("%+.1f%%", *d.RevenueChange)
	}
	return dd
}
