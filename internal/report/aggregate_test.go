package report

import (
	"testing"
	"time"

	"github.com/ilydev-openproject/salesaice/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func item(productId int, name string, price int64, qty int) entity.OrderItem {
	return entity.OrderItem{
		ProductName: name,
		Price:       price,
		Total:       price * int64(qty),
		OrderItemInsert: entity.OrderItemInsert{
			ProductId: productId,
			Quantity:  qty,
		},
	}
}

func order(id, storeId int, ts time.Time, items ...entity.OrderItem) entity.OrderFull {
	o := entity.OrderFull{
		Order: entity.Order{Id: id, StoreId: storeId, CreatedAt: ts},
		Items: items,
	}
	o.Total = o.ItemsTotal()
	return o
}

func TestAggregate(t *testing.T) {
	ts := time.Date(2026, 10, 5, 10, 0, 0, 0, jakarta)

	t.Run("store with two orders and four visits", func(t *testing.T) {
		orders := []entity.OrderFull{
			order(1, 1, ts, item(1, "Cone", 50000, 15)),
			order(2, 1, ts, item(1, "Cone", 50000, 20), item(2, "Stick", 40000, 5)),
		}
		visits := []entity.Visit{visitAt(1, ts), visitAt(2, ts), visitAt(3, ts), visitAt(4, ts)}

		s := Aggregate(orders, visits)
		assert.Equal(t, int64(40), s.Boxes)
		assert.Equal(t, int64(50000*35+40000*5), s.Revenue)
		assert.Equal(t, 2, s.OrderCount)
		assert.Equal(t, 4, s.VisitCount)
		assert.True(t, s.ConversionRate.Equal(decimal.NewFromInt(50)), s.ConversionRate.String())
		assert.True(t, s.AvgOrderValue.Equal(decimal.NewFromInt(s.Revenue/2)), s.AvgOrderValue.String())
	})

	t.Run("zero denominators", func(t *testing.T) {
		s := Aggregate(nil, nil)
		assert.True(t, s.AvgOrderValue.IsZero())
		assert.True(t, s.ConversionRate.IsZero())

		s = Aggregate([]entity.OrderFull{order(1, 1, ts, item(1, "Cone", 100, 1))}, nil)
		assert.True(t, s.ConversionRate.IsZero())
		assert.True(t, s.AvgOrderValue.Equal(decimal.NewFromInt(100)))
	})

	t.Run("ratio is not rounded", func(t *testing.T) {
		orders := []entity.OrderFull{order(1, 1, ts, item(1, "Cone", 100, 1))}
		visits := []entity.Visit{visitAt(1, ts), visitAt(2, ts), visitAt(3, ts)}
		s := Aggregate(orders, visits)
		assert.Equal(t, "33.33", s.ConversionRate.StringFixed(2))
	})
}

func TestCheckTotals(t *testing.T) {
	o := order(1, 1, time.Now(), item(1, "Cone", 1200, 3), item(2, "Stick", 800, 2))
	assert.True(t, CheckTotals(o))
	o.Total++
	assert.False(t, CheckTotals(o))
}

func TestStoreSummaries(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, jakarta)
	stores := []entity.Store{
		{Id: 1, StoreInsert: entity.StoreInsert{Name: "Toko Ani"}},
		{Id: 2, StoreInsert: entity.StoreInsert{Name: "Warung Budi"}},
		{Id: 3, StoreInsert: entity.StoreInsert{Name: "Kios Citra"}},
	}
	orders := []entity.OrderFull{
		order(1, 1, now.AddDate(0, 0, -3), item(1, "Cone", 1000, 10)),
		order(2, 9, now, item(1, "Cone", 1000, 10)), // unknown store
	}
	visits := []entity.Visit{
		{Id: 1, CreatedAt: now.AddDate(0, 0, -1), VisitInsert: entity.VisitInsert{StoreId: 1}},
		{Id: 2, CreatedAt: now.AddDate(0, 0, -7), VisitInsert: entity.VisitInsert{StoreId: 2}},
	}

	rows := StoreSummaries(stores, orders, visits, nil, now, jakarta)
	assert.Len(t, rows, 3)

	assert.Equal(t, int64(10000), rows[0].Revenue)
	assert.Equal(t, int64(10), rows[0].Boxes)
	assert.Equal(t, 1, rows[0].OrderCount)
	assert.Equal(t, 1, rows[0].VisitCount)
	if assert.NotNil(t, rows[0].DaysSinceActivity) {
		assert.Equal(t, 1, *rows[0].DaysSinceActivity)
	}
	if assert.NotNil(t, rows[1].DaysSinceActivity) {
		assert.Equal(t, 7, *rows[1].DaysSinceActivity)
	}
	assert.Nil(t, rows[2].DaysSinceActivity)
}

func TestStoreSummariesHistory(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, jakarta)
	stores := []entity.Store{
		{Id: 1, StoreInsert: entity.StoreInsert{Name: "Toko Ani"}},
		{Id: 2, StoreInsert: entity.StoreInsert{Name: "Warung Budi"}},
	}
	visits := []entity.Visit{
		{Id: 1, CreatedAt: now.AddDate(0, 0, -2), VisitInsert: entity.VisitInsert{StoreId: 1}},
	}
	history := []entity.StoreActivity{
		{StoreId: 1, LastActivity: now.AddDate(0, 0, -5)},
		{StoreId: 2, LastActivity: now.AddDate(0, -2, 0)},
		{StoreId: 9, LastActivity: now},
	}

	rows := StoreSummaries(stores, nil, visits, history, now, jakarta)
	assert.Len(t, rows, 2)
	if assert.NotNil(t, rows[0].DaysSinceActivity) {
		assert.Equal(t, 2, *rows[0].DaysSinceActivity)
	}
	assert.Equal(t, 0, rows[1].VisitCount)
	if assert.NotNil(t, rows[1].DaysSinceActivity) {
		assert.Equal(t, 61, *rows[1].DaysSinceActivity)
	}
}

func TestProductSummaries(t *testing.T) {
	ts := time.Date(2026, 10, 5, 10, 0, 0, 0, jakarta)
	orders := []entity.OrderFull{
		order(1, 1, ts, item(1, "Cone", 100, 2), item(1, "Cone", 100, 1)),
		order(2, 2, ts, item(2, "Stick", 50, 4), item(1, "Cone", 100, 1)),
	}
	rows := ProductSummaries(orders)
	assert.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].ProductId)
	assert.Equal(t, int64(4), rows[0].Boxes)
	assert.Equal(t, int64(400), rows[0].Revenue)
	assert.Equal(t, 2, rows[0].OrderCount)
	assert.Equal(t, 2, rows[1].ProductId)
	assert.Equal(t, 1, rows[1].OrderCount)

	AttachVelocity(rows, []entity.ReorderVelocity{{ProductId: 2, AvgGapDays: 7.5}})
	assert.Nil(t, rows[0].AvgReorderDays)
	if assert.NotNil(t, rows[1].AvgReorderDays) {
		assert.Equal(t, 7.5, *rows[1].AvgReorderDays)
	}
}

func TestProgress(t *testing.T) {
	s := entity.Summary{Boxes: 150, Revenue: 3_000_000}
	p := Progress(s, entity.MonthlyTarget{BoxGoal: 600, RevenueGoal: 12_000_000})
	assert.True(t, p.BoxProgress.Equal(decimal.NewFromInt(25)))
	assert.True(t, p.RevenueProgress.Equal(decimal.NewFromInt(25)))

	p = Progress(s, entity.MonthlyTarget{})
	assert.True(t, p.BoxProgress.IsZero())
	assert.True(t, p.RevenueProgress.IsZero())
}

func TestChangePct(t *testing.T) {
	assert.Nil(t, ChangePct(10, 0))
	if pct := ChangePct(150, 100); assert.NotNil(t, pct) {
		assert.InDelta(t, 50.0, *pct, 1e-9)
	}
	if pct := ChangePct(50, 100); assert.NotNil(t, pct) {
		assert.InDelta(t, -50.0, *pct, 1e-9)
	}
}
