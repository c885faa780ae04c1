package report

import (
	"testing"
	"time"

	"github.com/ilydev-openproject/salesaice/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestReorderVelocity(t *testing.T) {
	day0 := time.Date(2026, 8, 1, 10, 0, 0, 0, jakarta)
	at := func(d int) time.Time { return day0.AddDate(0, 0, d) }

	t.Run("same day repeat ignored", func(t *testing.T) {
		orders := []entity.OrderFull{
			order(4, 1, at(25), item(1, "Cone", 100, 1)),
			order(1, 1, at(0), item(1, "Cone", 100, 1)),
			order(2, 1, at(10), item(1, "Cone", 100, 1)),
			order(3, 1, at(10).Add(3*time.Hour), item(1, "Cone", 100, 2)),
		}
		vs := ReorderVelocity(orders, jakarta)
		if assert.Len(t, vs, 1) {
			assert.Equal(t, []int{10, 15}, vs[0].GapsDays)
			assert.Equal(t, 12.5, vs[0].AvgGapDays)
			assert.Equal(t, 4, vs[0].Orders)
		}
	})

	t.Run("too few gaps excluded, fastest first", func(t *testing.T) {
		orders := []entity.OrderFull{
			order(1, 1, at(0), item(1, "Cone", 100, 1), item(2, "Stick", 50, 1), item(3, "Cup", 70, 1)),
			order(2, 1, at(4), item(2, "Stick", 50, 1), item(2, "Stick", 50, 3)),
			order(3, 1, at(8), item(2, "Stick", 50, 1), item(3, "Cup", 70, 1)),
			order(4, 1, at(20), item(1, "Cone", 100, 1), item(3, "Cup", 70, 1)),
		}
		vs := ReorderVelocity(orders, jakarta)
		if assert.Len(t, vs, 2) {
			assert.Equal(t, 2, vs[0].ProductId)
			assert.Equal(t, 4.0, vs[0].AvgGapDays)
			assert.Equal(t, 3, vs[1].ProductId)
			assert.Equal(t, []int{8, 12}, vs[1].GapsDays)
			assert.Equal(t, 10.0, vs[1].AvgGapDays)
		}
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, ReorderVelocity(nil, jakarta))
	})
}

func TestFleetVelocity(t *testing.T) {
	day0 := time.Date(2026, 8, 1, 10, 0, 0, 0, jakarta)
	at := func(d int) time.Time { return day0.AddDate(0, 0, d) }

	orders := []entity.OrderFull{
		// store 1 reorders cone every 10 days
		order(1, 1, at(0), item(1, "Cone", 100, 1)),
		order(2, 1, at(10), item(1, "Cone", 100, 1)),
		order(3, 1, at(20), item(1, "Cone", 100, 1)),
		// store 2 every 20 days
		order(4, 2, at(0), item(1, "Cone", 100, 1)),
		order(5, 2, at(20), item(1, "Cone", 100, 1)),
		order(6, 2, at(40), item(1, "Cone", 100, 1)),
		// store 3 ordered cone only twice, one gap
		order(7, 3, at(0), item(1, "Cone", 100, 1), item(2, "Stick", 50, 1)),
		order(8, 3, at(2), item(1, "Cone", 100, 1), item(2, "Stick", 50, 1)),
		order(9, 3, at(5), item(2, "Stick", 50, 1)),
	}

	vs := FleetVelocity(orders, jakarta)
	if assert.Len(t, vs, 2) {
		assert.Equal(t, 2, vs[0].ProductId)
		assert.Equal(t, 2.5, vs[0].AvgGapDays)

		assert.Equal(t, 1, vs[1].ProductId)
		assert.Equal(t, 15.0, vs[1].AvgGapDays)
		assert.Equal(t, 6, vs[1].Orders)
		assert.ElementsMatch(t, []int{10, 10, 20, 20}, vs[1].GapsDays)
	}
}
