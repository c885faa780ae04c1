package report

import (
	"time"

	"github.com/ilydev-openproject/salesaice/internal/entity"
)

// Schedule returns the stores tagged with day, in input order, flagged with
// whether they already have a visit or an order among the given records.
// Callers pass the records of the day being scheduled.
func Schedule(stores []entity.Store, visits []entity.Visit, orders []entity.OrderFull, day time.Weekday) []entity.ScheduledStore {
	visited := map[int]bool{}
	for _, v := range visits {
		visited[v.StoreId] = true
	}
	ordered := map[int]bool{}
	for i := range orders {
		ordered[orders[i].StoreId] = true
	}

	out := make([]entity.ScheduledStore, 0)
	for _, st := range stores {
		if !st.VisitDays.Contains(day) {
			continue
		}
		out = append(out, entity.ScheduledStore{
			Store:   st,
			Visited: visited[st.Id] || ordered[st.Id],
			Ordered: ordered[st.Id],
		})
	}
	return out
}
