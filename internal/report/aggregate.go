package report

import (
	"math"
	"time"

	"github.com/ilydev-openproject/salesaice/internal/entity"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Aggregate sums revenue and boxes over orders and derives the ratios.
// Ratios are zero when their denominator is zero.
func Aggregate(orders []entity.OrderFull, visits []entity.Visit) entity.Summary {
	s := entity.Summary{
		OrderCount: len(orders),
		VisitCount: len(visits),
	}
	for i := range orders {
		s.Revenue += orders[i].Total
		s.Boxes += orders[i].Boxes()
	}
	s.AvgOrderValue = ratio(s.Revenue, int64(s.OrderCount))
	s.ConversionRate = ratio(int64(s.OrderCount), int64(s.VisitCount)).Mul(hundred)
	return s
}

func ratio(num, den int64) decimal.Decimal {
	if den == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(num).Div(decimal.NewFromInt(den))
}

// CheckTotals reports whether the line totals of the order add up to its total.
func CheckTotals(o entity.OrderFull) bool {
	return o.ItemsTotal() == o.Total
}

// StoreSummaries builds one row per store. Orders and visits for unknown
// stores are ignored. Last activity is the latest order or visit, taken from
// history when given and from the period data otherwise.
func StoreSummaries(stores []entity.Store, orders []entity.OrderFull, visits []entity.Visit, history []entity.StoreActivity, now time.Time, loc *time.Location) []entity.StoreMetric {
	idx := make(map[int]int, len(stores))
	rows := make([]entity.StoreMetric, 0, len(stores))
	for _, st := range stores {
		idx[st.Id] = len(rows)
		rows = append(rows, entity.StoreMetric{
			StoreId:   st.Id,
			StoreName: st.Name,
		})
	}

	touch := func(r *entity.StoreMetric, ts time.Time) {
		if ts.After(r.LastActivity) {
			r.LastActivity = ts
		}
	}
	for _, a := range history {
		if j, ok := idx[a.StoreId]; ok {
			touch(&rows[j], a.LastActivity)
		}
	}
	for i := range orders {
		j, ok := idx[orders[i].StoreId]
		if !ok {
			continue
		}
		r := &rows[j]
		r.Revenue += orders[i].Total
		r.Boxes += orders[i].Boxes()
		r.OrderCount++
		touch(r, orders[i].CreatedAt)
	}
	for _, v := range visits {
		j, ok := idx[v.StoreId]
		if !ok {
			continue
		}
		r := &rows[j]
		r.VisitCount++
		touch(r, v.CreatedAt)
	}
	for i := range rows {
		if rows[i].LastActivity.IsZero() {
			continue
		}
		d := DaysBetween(rows[i].LastActivity, now, loc)
		rows[i].DaysSinceActivity = &d
	}
	return rows
}

// ProductSummaries builds one row per product seen in the orders, in order of
// first appearance. A product counts once per order for OrderCount.
func ProductSummaries(orders []entity.OrderFull) []entity.ProductMetric {
	idx := map[int]int{}
	var rows []entity.ProductMetric
	for i := range orders {
		seen := map[int]bool{}
		for _, it := range orders[i].Items {
			j, ok := idx[it.ProductId]
			if !ok {
				j = len(rows)
				idx[it.ProductId] = j
				rows = append(rows, entity.ProductMetric{
					ProductId:   it.ProductId,
					ProductName: it.ProductName,
				})
			}
			r := &rows[j]
			r.Boxes += int64(it.Quantity)
			r.Revenue += it.Total
			if !seen[it.ProductId] {
				seen[it.ProductId] = true
				r.OrderCount++
			}
		}
	}
	return rows
}

// AttachVelocity copies average reorder gaps onto the product rows.
func AttachVelocity(rows []entity.ProductMetric, vs []entity.ReorderVelocity) {
	byId := make(map[int]float64, len(vs))
	for _, v := range vs {
		byId[v.ProductId] = v.AvgGapDays
	}
	for i := range rows {
		if g, ok := byId[rows[i].ProductId]; ok {
			rows[i].AvgReorderDays = &g
		}
	}
}

// Progress compares a month summary with the target. Percentages are zero
// when the goal is zero.
func Progress(s entity.Summary, t entity.MonthlyTarget) entity.TargetProgress {
	return entity.TargetProgress{
		Target:          t,
		Boxes:           s.Boxes,
		Revenue:         s.Revenue,
		BoxProgress:     ratio(s.Boxes, t.BoxGoal).Mul(hundred),
		RevenueProgress: ratio(s.Revenue, t.RevenueGoal).Mul(hundred),
	}
}

// ChangePct returns the relative change from prev to cur in percent, nil when
// prev is zero.
func ChangePct(cur, prev int64) *float64 {
	if prev == 0 {
		return nil
	}
	pct := float64(cur-prev) / math.Abs(float64(prev)) * 100
	return &pct
}
