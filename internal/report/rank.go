package report

import (
	"fmt"
	"sort"

	"github.com/ilydev-openproject/salesaice/internal/entity"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortKey string

const (
	SortRevenue  SortKey = "revenue"
	SortBoxes    SortKey = "boxes"
	SortOrders   SortKey = "orders"
	SortVisits   SortKey = "visits"
	SortName     SortKey = "name"
	SortRecent   SortKey = "recent"
	SortVelocity SortKey = "velocity"
)

// Ranker sorts summary rows. Name comparison follows the collation rules of
// the configured language and ignores case.
type Ranker struct {
	lang language.Tag
}

func NewRanker(lang language.Tag) *Ranker {
	return &Ranker{lang: lang}
}

// collator is not safe for concurrent use, so every sort gets its own.
func (r *Ranker) collator() *collate.Collator {
	return collate.New(r.lang, collate.IgnoreCase, collate.Loose)
}

// RankStores sorts rows in place by key. Metrics sort descending, name
// ascending, recent ascending by days since activity with inactive stores
// last. Ties keep input order.
func (r *Ranker) RankStores(rows []entity.StoreMetric, key SortKey) error {
	var less func(a, b *entity.StoreMetric) bool
	switch key {
	case SortRevenue:
		less = func(a, b *entity.StoreMetric) bool { return a.Revenue > b.Revenue }
	case SortBoxes:
		less = func(a, b *entity.StoreMetric) bool { return a.Boxes > b.Boxes }
	case SortOrders:
		less = func(a, b *entity.StoreMetric) bool { return a.OrderCount > b.OrderCount }
	case SortVisits:
		less = func(a, b *entity.StoreMetric) bool { return a.VisitCount > b.VisitCount }
	case SortName:
		c := r.collator()
		less = func(a, b *entity.StoreMetric) bool { return c.CompareString(a.StoreName, b.StoreName) < 0 }
	case SortRecent:
		less = func(a, b *entity.StoreMetric) bool {
			return lessNilLast(a.DaysSinceActivity, b.DaysSinceActivity)
		}
	default:
		return fmt.Errorf("unknown store sort key %q", key)
	}
	sort.SliceStable(rows, func(i, j int) bool { return less(&rows[i], &rows[j]) })
	return nil
}

// RankProducts sorts rows in place by key. Velocity sorts ascending by
// average reorder gap with unknown velocity last.
func (r *Ranker) RankProducts(rows []entity.ProductMetric, key SortKey) error {
	var less func(a, b *entity.ProductMetric) bool
	switch key {
	case SortRevenue:
		less = func(a, b *entity.ProductMetric) bool { return a.Revenue > b.Revenue }
	case SortBoxes:
		less = func(a, b *entity.ProductMetric) bool { return a.Boxes > b.Boxes }
	case SortOrders:
		less = func(a, b *entity.ProductMetric) bool { return a.OrderCount > b.OrderCount }
	case SortName:
		c := r.collator()
		less = func(a, b *entity.ProductMetric) bool { return c.CompareString(a.ProductName, b.ProductName) < 0 }
	case SortVelocity:
		less = func(a, b *entity.ProductMetric) bool {
			return lessNilLast(a.AvgReorderDays, b.AvgReorderDays)
		}
	default:
		return fmt.Errorf("unknown product sort key %q", key)
	}
	sort.SliceStable(rows, func(i, j int) bool { return less(&rows[i], &rows[j]) })
	return nil
}

// lessNilLast orders ascending, treating nil as +Inf.
func lessNilLast[T int | float64](a, b *T) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	default:
		return *a < *b
	}
}
