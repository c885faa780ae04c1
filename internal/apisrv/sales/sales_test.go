package sales

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/ilydev-openproject/salesaice/internal/dependency"
	"github.com/ilydev-openproject/salesaice/internal/dependency/mocks"
	"github.com/ilydev-openproject/salesaice/internal/entity"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type testEnv struct {
	s        *Server
	repo     *mocks.Repository
	stores   *mocks.Stores
	products *mocks.Products
	visits   *mocks.Visits
	orders   *mocks.Orders
	targets  *mocks.Targets
	rewards  *mocks.Rewards
	pub      *mocks.Publisher
	loc      *time.Location
}

// Wednesday.
func testNow(loc *time.Location) time.Time {
	return time.Date(2024, 5, 15, 10, 0, 0, 0, loc)
}

func newTestEnv(t *testing.T, sc dependency.SnapshotCache) *testEnv {
	t.Helper()
	e := &testEnv{
		repo:     mocks.NewRepository(t),
		stores:   mocks.NewStores(t),
		products: mocks.NewProducts(t),
		visits:   mocks.NewVisits(t),
		orders:   mocks.NewOrders(t),
		targets:  mocks.NewTargets(t),
		rewards:  mocks.NewRewards(t),
		pub:      mocks.NewPublisher(t),
	}
	e.repo.On("Stores").Return(e.stores).Maybe()
	e.repo.On("Products").Return(e.products).Maybe()
	e.repo.On("Visits").Return(e.visits).Maybe()
	e.repo.On("Orders").Return(e.orders).Maybe()
	e.repo.On("Targets").Return(e.targets).Maybe()
	e.repo.On("Rewards").Return(e.rewards).Maybe()
	e.repo.On("Tx", mock.Anything, mock.Anything).Return(
		func(ctx context.Context, f func(context.Context, dependency.Repository) error) error {
			return f(ctx, e.repo)
		},
	).Maybe()

	s, err := New(&Config{}, e.repo, nil, e.pub, sc)
	require.NoError(t, err)
	e.loc = s.Location()
	s.now = func() time.Time { return testNow(e.loc) }
	e.s = s
	return e
}

func (e *testEnv) at(day, hour int) time.Time {
	return time.Date(2024, 5, day, hour, 0, 0, 0, e.loc)
}

func order(id, storeId int, ts time.Time, items ...entity.OrderItem) entity.OrderFull {
	of := entity.OrderFull{
		Order: entity.Order{Id: id, StoreId: storeId, CreatedAt: ts},
	}
	for _, it := range items {
		it.Total = it.Price * int64(it.Quantity)
		of.Total += it.Total
		of.Items = append(of.Items, it)
	}
	return of
}

func item(productId, qty int, price int64) entity.OrderItem {
	return entity.OrderItem{
		ProductName:     fmt.Sprintf("product %d", productId),
		Price:           price,
		OrderItemInsert: entity.OrderItemInsert{ProductId: productId, Quantity: qty},
	}
}

func store(id int, name string) *entity.Store {
	return &entity.Store{Id: id, StoreInsert: entity.StoreInsert{Name: name}}
}

func requireCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, code, status.Code(err), err.Error())
}

func TestNewDefaults(t *testing.T) {
	s, err := New(&Config{}, nil, nil, nil, nil)
	require.NoError(t, err)
	require.Equal(t, "Asia/Jakarta", s.Location().String())
	require.EqualValues(t, 25, s.threshold)
	require.Equal(t, 180, s.lookback)

	_, err = New(&Config{Timezone: "Mars/Olympus"}, nil, nil, nil, nil)
	require.Error(t, err)

	_, err = New(&Config{Language: "!!"}, nil, nil, nil, nil)
	require.Error(t, err)
}

func TestGetStoreNotFound(t *testing.T) {
	e := newTestEnv(t, nil)
	ctx := context.Background()

	e.stores.On("GetStoreById", mock.Anything, 42).
		Return(nil, fmt.Errorf("can't get store: %w", sql.ErrNoRows))

	_, err := e.s.GetStore(ctx, 42)
	requireCode(t, err, codes.NotFound)
}

func TestTodaySchedule(t *testing.T) {
	e := newTestEnv(t, nil)
	ctx := context.Background()

	a := *store(1, "Toko A")
	a.VisitDays = entity.VisitDays{time.Wednesday}
	b := *store(2, "Toko B")
	b.VisitDays = entity.VisitDays{time.Wednesday, time.Friday}
	c := *store(3, "Toko C")
	c.VisitDays = entity.VisitDays{time.Monday}

	e.stores.On("ListStores", mock.Anything).Return([]entity.Store{a, b, c}, nil)
	e.visits.On("ListVisitsByRange", mock.Anything, e.at(15, 0), e.at(16, 0)).Return([]entity.Visit{
		{Id: 1, CreatedAt: e.at(15, 9), VisitInsert: entity.VisitInsert{StoreId: 2}},
	}, nil)
	e.orders.On("ListOrdersByRange", mock.Anything, e.at(15, 0), e.at(16, 0)).Return([]entity.OrderFull{}, nil)

	sched, err := e.s.TodaySchedule(ctx)
	require.NoError(t, err)
	require.Len(t, sched, 2)
	require.Equal(t, 1, sched[0].Store.Id)
	require.False(t, sched[0].Visited)
	require.Equal(t, 2, sched[1].Store.Id)
	require.True(t, sched[1].Visited)
}
