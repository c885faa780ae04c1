package report

import (
	"sort"
	"time"

	"github.com/ilydev-openproject/salesaice/internal/entity"
)

// MinReorderGaps is the number of positive gaps a product needs before its
// velocity is reported.
const MinReorderGaps = 2

// ReorderVelocity estimates, per product, the average number of days between
// consecutive orders of one store. Same-day repeats are ignored. The result is
// sorted fastest first.
func ReorderVelocity(orders []entity.OrderFull, loc *time.Location) []entity.ReorderVelocity {
	sorted := make([]entity.OrderFull, 0, len(orders))
	for _, o := range orders {
		if !o.CreatedAt.IsZero() {
			sorted = append(sorted, o)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	type occurrences struct {
		name  string
		times []time.Time
	}
	byProduct := map[int]*occurrences{}
	var ids []int
	for _, o := range sorted {
		seen := map[int]bool{}
		for _, it := range o.Items {
			if seen[it.ProductId] {
				continue
			}
			seen[it.ProductId] = true
			occ, ok := byProduct[it.ProductId]
			if !ok {
				occ = &occurrences{name: it.ProductName}
				byProduct[it.ProductId] = occ
				ids = append(ids, it.ProductId)
			}
			occ.times = append(occ.times, o.CreatedAt)
		}
	}

	out := make([]entity.ReorderVelocity, 0, len(ids))
	for _, id := range ids {
		occ := byProduct[id]
		if len(occ.times) < 2 {
			continue
		}
		var (
			gaps []int
			sum  int
		)
		for i := 1; i < len(occ.times); i++ {
			g := DaysBetween(occ.times[i-1], occ.times[i], loc)
			if g <= 0 {
				continue
			}
			gaps = append(gaps, g)
			sum += g
		}
		if len(gaps) < MinReorderGaps {
			continue
		}
		out = append(out, entity.ReorderVelocity{
			ProductId:   id,
			ProductName: occ.name,
			Orders:      len(occ.times),
			GapsDays:    gaps,
			AvgGapDays:  float64(sum) / float64(len(gaps)),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].AvgGapDays == out[j].AvgGapDays {
			return out[i].ProductId < out[j].ProductId
		}
		return out[i].AvgGapDays < out[j].AvgGapDays
	})
	return out
}

// FleetVelocity estimates reorder velocity per product over all stores: the
// per-store averages of ReorderVelocity are averaged with equal weight. Stores
// without a velocity for a product don't contribute to it.
func FleetVelocity(orders []entity.OrderFull, loc *time.Location) []entity.ReorderVelocity {
	byStore := map[int][]entity.OrderFull{}
	var storeIds []int
	for _, o := range orders {
		if _, ok := byStore[o.StoreId]; !ok {
			storeIds = append(storeIds, o.StoreId)
		}
		byStore[o.StoreId] = append(byStore[o.StoreId], o)
	}
	sort.Ints(storeIds)

	type acc struct {
		name   string
		orders int
		gaps   []int
		sum    float64
		stores int
	}
	byProduct := map[int]*acc{}
	var ids []int
	for _, sid := range storeIds {
		for _, v := range ReorderVelocity(byStore[sid], loc) {
			a, ok := byProduct[v.ProductId]
			if !ok {
				a = &acc{name: v.ProductName}
				byProduct[v.ProductId] = a
				ids = append(ids, v.ProductId)
			}
			a.orders += v.Orders
			a.gaps = append(a.gaps, v.GapsDays...)
			a.sum += v.AvgGapDays
			a.stores++
		}
	}

	out := make([]entity.ReorderVelocity, 0, len(ids))
	for _, id := range ids {
		a := byProduct[id]
		out = append(out, entity.ReorderVelocity{
			ProductId:   id,
			ProductName: a.name,
			Orders:      a.orders,
			GapsDays:    a.gaps,
			AvgGapDays:  a.sum / float64(a.stores),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].AvgGapDays == out[j].AvgGapDays {
			return out[i].ProductId < out[j].ProductId
		}
		return out[i].AvgGapDays < out[j].AvgGapDays
	})
	return out
}
