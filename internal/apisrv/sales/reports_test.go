package sales

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/ilydev-openproject/salesaice/internal/cache"
	"github.com/ilydev-openproject/salesaice/internal/dto"
	"github.com/ilydev-openproject/salesaice/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
)

func TestStoreReport(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) *testEnv {
		e := newTestEnv(t, nil)
		e.stores.On("ListStores", mock.Anything).Return([]entity.Store{
			*store(1, "Toko A"),
			*store(2, "Toko B"),
			*store(3, "Toko C"),
		}, nil)
		e.orders.On("ListOrdersByRange", mock.Anything, mock.Anything, mock.Anything).Return([]entity.OrderFull{
			order(1, 1, e.at(2, 9), item(10, 5, 10000)),
			order(2, 2, e.at(3, 9), item(10, 2, 30000)),
			order(3, 2, e.at(10, 9), item(11, 1, 10000)),
		}, nil)
		e.visits.On("ListVisitsByRange", mock.Anything, mock.Anything, mock.Anything).Return([]entity.Visit{
			{Id: 1, CreatedAt: e.at(2, 9), VisitInsert: entity.VisitInsert{StoreId: 1}},
			{Id: 2, CreatedAt: e.at(3, 9), VisitInsert: entity.VisitInsert{StoreId: 2}},
			{Id: 3, CreatedAt: e.at(4, 9), VisitInsert: entity.VisitInsert{StoreId: 3}},
			{Id: 4, CreatedAt: e.at(10, 9), VisitInsert: entity.VisitInsert{StoreId: 2}},
		}, nil)
		e.stores.On("ListLastActivity", mock.Anything).Return([]entity.StoreActivity{
			{StoreId: 3, LastActivity: e.at(12, 9)},
		}, nil)
		return e
	}

	t.Run("default sort is revenue", func(t *testing.T) {
		e := setup(t)
		rep, err := e.s.StoreReport(ctx, &dto.ReportRequest{Period: "month"})
		require.NoError(t, err)
		require.Equal(t, "revenue", rep.Sort)
		require.Len(t, rep.Stores, 3)
		require.Equal(t, 2, rep.Stores[0].StoreId)
		require.EqualValues(t, 70000, rep.Stores[0].Revenue)
		require.Equal(t, 1, rep.Stores[1].StoreId)
		require.Equal(t, 3, rep.Stores[2].StoreId)
		require.Equal(t, 1, rep.Stores[2].VisitCount)
		require.NotNil(t, rep.Stores[2].DaysSinceActivity)
		require.Equal(t, 3, *rep.Stores[2].DaysSinceActivity)

		require.EqualValues(t, 120000, rep.Summary.Revenue)
		require.EqualValues(t, 8, rep.Summary.Boxes)
		require.Equal(t, 3, rep.Summary.OrderCount)
		require.True(t, decimal.NewFromInt(40000).Equal(rep.Summary.AvgOrderValue))
		require.True(t, decimal.NewFromInt(75).Equal(rep.Summary.ConversionRate))
		require.Equal(t, e.at(1, 0), rep.Period.From)
	})

	t.Run("boxes", func(t *testing.T) {
		e := setup(t)
		rep, err := e.s.StoreReport(ctx, &dto.ReportRequest{Period: "month", Sort: "boxes"})
		require.NoError(t, err)
		require.Equal(t, 1, rep.Stores[0].StoreId)
		require.EqualValues(t, 5, rep.Stores[0].Boxes)
	})

	t.Run("unknown sort key", func(t *testing.T) {
		e := setup(t)
		_, err := e.s.StoreReport(ctx, &dto.ReportRequest{Period: "month", Sort: "price"})
		requireCode(t, err, codes.InvalidArgument)
	})

	t.Run("unknown period", func(t *testing.T) {
		e := newTestEnv(t, nil)
		_, err := e.s.StoreReport(ctx, &dto.ReportRequest{Period: "week"})
		requireCode(t, err, codes.InvalidArgument)
	})
}

func TestProductReport(t *testing.T) {
	e := newTestEnv(t, nil)
	ctx := context.Background()

	e.orders.On("ListOrdersByRange", mock.Anything, mock.Anything, mock.Anything).Return([]entity.OrderFull{
		order(1, 1, e.at(1, 9), item(10, 1, 10000), item(11, 9, 10000)),
		order(2, 1, e.at(4, 9), item(10, 1, 10000)),
		order(3, 1, e.at(10, 9), item(10, 1, 10000)),
	}, nil)
	e.visits.On("ListVisitsByRange", mock.Anything, mock.Anything, mock.Anything).Return([]entity.Visit{}, nil)

	rep, err := e.s.ProductReport(ctx, &dto.ReportRequest{Period: "month"})
	require.NoError(t, err)
	require.Equal(t, "boxes", rep.Sort)
	require.Len(t, rep.Products, 2)
	require.Equal(t, 11, rep.Products[0].ProductId)
	require.Nil(t, rep.Products[0].AvgReorderDays)
	require.Equal(t, 10, rep.Products[1].ProductId)
	require.NotNil(t, rep.Products[1].AvgReorderDays)
	require.InDelta(t, 4.5, *rep.Products[1].AvgReorderDays, 0.001)

	rep, err = e.s.ProductReport(ctx, &dto.ReportRequest{Period: "month", Sort: "velocity"})
	require.NoError(t, err)
	require.Equal(t, 10, rep.Products[0].ProductId)
}

func TestStoreVelocity(t *testing.T) {
	e := newTestEnv(t, nil)
	ctx := context.Background()

	e.stores.On("GetStoreById", mock.Anything, 1).Return(store(1, "Toko A"), nil)
	e.orders.On("ListOrdersByStore", mock.Anything, 1, e.at(16, 0).AddDate(0, 0, -180), e.at(16, 0)).Return([]entity.OrderFull{
		order(1, 1, e.at(1, 9), item(10, 1, 10000)),
		order(2, 1, e.at(8, 9), item(10, 1, 10000)),
		order(3, 1, e.at(15, 9), item(10, 1, 10000)),
	}, nil)

	vs, err := e.s.StoreVelocity(ctx, 1)
	require.NoError(t, err)
	require.Len(t, vs, 1)
	require.Equal(t, []int{7, 7}, vs[0].GapsDays)
	require.InDelta(t, 7.0, vs[0].AvgGapDays, 0.001)
}

func TestDashboard(t *testing.T) {
	e := newTestEnv(t, nil)
	ctx := context.Background()

	e.orders.On("ListOrdersByRange", mock.Anything, mock.Anything, mock.Anything).Return([]entity.OrderFull{
		order(1, 1, e.at(15, 8), item(10, 10, 10000)),
		order(2, 1, e.at(3, 12), item(10, 20, 10000)),
		order(3, 2, e.at(1, 0).AddDate(0, 0, -10), item(10, 15, 10000)),
	}, nil)
	e.visits.On("ListVisitsByRange", mock.Anything, mock.Anything, mock.Anything).Return([]entity.Visit{}, nil)
	e.targets.On("GetTarget", mock.Anything).Return(&entity.MonthlyTarget{BoxGoal: 100, RevenueGoal: 1000000}, nil)

	d, err := e.s.GetDashboard(ctx)
	require.NoError(t, err)

	require.EqualValues(t, 100000, d.Today.Revenue)
	require.Equal(t, 1, d.Today.OrderCount)
	require.EqualValues(t, 300000, d.Month.Revenue)
	require.EqualValues(t, 30, d.Month.Boxes)
	require.EqualValues(t, 150000, d.PreviousMonth.Revenue)
	require.NotNil(t, d.RevenueChange)
	require.InDelta(t, 100.0, *d.RevenueChange, 0.001)
	require.True(t, decimal.NewFromInt(30).Equal(d.Progress.BoxProgress))
	require.True(t, decimal.NewFromInt(30).Equal(d.Progress.RevenueProgress))
}

func TestDashboardWithoutTarget(t *testing.T) {
	e := newTestEnv(t, nil)
	ctx := context.Background()

	e.orders.On("ListOrdersByRange", mock.Anything, mock.Anything, mock.Anything).Return([]entity.OrderFull{}, nil)
	e.visits.On("ListVisitsByRange", mock.Anything, mock.Anything, mock.Anything).Return([]entity.Visit{}, nil)
	e.targets.On("GetTarget", mock.Anything).Return(nil, fmt.Errorf("can't get monthly target: %w", sql.ErrNoRows))

	d, err := e.s.Dashboard(ctx)
	require.NoError(t, err)
	require.Nil(t, d.RevenueChange)
	require.True(t, d.Progress.BoxProgress.IsZero())
}

func TestTargetCache(t *testing.T) {
	c := cache.New()
	e := newTestEnv(t, c)
	ctx := context.Background()

	e.targets.On("SaveTarget", mock.Anything, mock.MatchedBy(func(mt *entity.MonthlyTarget) bool {
		return mt.BoxGoal == 500 && mt.RevenueGoal == 2000000
	})).Return(nil).Once()

	_, err := e.s.SaveTarget(ctx, &dto.MonthlyTarget{BoxGoal: 500, RevenueGoal: 2000000})
	require.NoError(t, err)

	got, err := e.s.GetTarget(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 500, got.BoxGoal)

	_, err = e.s.SaveTarget(ctx, &dto.MonthlyTarget{BoxGoal: -1})
	requireCode(t, err, codes.InvalidArgument)
}

func TestGetSnapshotFromCache(t *testing.T) {
	c := cache.New()
	e := newTestEnv(t, c)
	ctx := context.Background()

	c.SetSnapshot(&entity.Snapshot{
		MonthKey: "2024-05",
		Stores:   []entity.StoreMetric{{StoreId: 9, StoreName: "Toko Z", Revenue: 1}},
	})

	snap, err := e.s.GetSnapshot(ctx)
	require.NoError(t, err)
	require.Equal(t, "2024-05", snap.Month)
	require.Len(t, snap.Stores, 1)
	require.Equal(t, 9, snap.Stores[0].StoreId)
}

func TestMonthSnapshot(t *testing.T) {
	c := cache.New()
	e := newTestEnv(t, c)
	ctx := context.Background()

	c.SetSnapshot(&entity.Snapshot{MonthKey: "2024-04"})

	e.stores.On("ListStores", mock.Anything).Return([]entity.Store{*store(1, "Toko A"), *store(2, "Toko B")}, nil)
	e.orders.On("ListOrdersByRange", mock.Anything, mock.Anything, mock.Anything).Return([]entity.OrderFull{
		order(1, 2, e.at(2, 9), item(10, 3, 10000)),
	}, nil)
	e.visits.On("ListVisitsByRange", mock.Anything, mock.Anything, mock.Anything).Return([]entity.Visit{}, nil)
	e.stores.On("ListLastActivity", mock.Anything).Return([]entity.StoreActivity{}, nil)

	snap, err := e.s.GetSnapshot(ctx)
	require.NoError(t, err)
	require.Equal(t, "2024-05", snap.Month)
	require.Equal(t, 2, snap.Stores[0].StoreId)
	require.Len(t, snap.Products, 1)

	cached, ok := c.GetSnapshot()
	require.True(t, ok)
	require.Equal(t, "2024-05", cached.MonthKey)
}
