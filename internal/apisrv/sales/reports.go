package sales

import (
	"context"
	"log/slog"

	"github.com/ilydev-openproject/salesaice/internal/dto"
	"github.com/ilydev-openproject/salesaice/internal/entity"
	gerr "github.com/ilydev-openproject/salesaice/internal/errors"
	"github.com/ilydev-openproject/salesaice/internal/form"
	"github.com/ilydev-openproject/salesaice/internal/report"
	"golang.org/x/sync/errgroup"
)

// periodRange validates the period selector and resolves it to a range in
// the business timezone. A nil request means today.
func (s *Server) periodRange(req *dto.ReportRequest) (entity.TimeRange, error) {
	if req == nil {
		req = &dto.ReportRequest{}
	}
	if err := (&form.ReportRequest{ReportRequest: req}).Validate(); err != nil {
		return entity.TimeRange{}, err
	}
	p, err := report.ParsePeriod(req.Period, req.Date, s.loc)
	if err != nil {
		return entity.TimeRange{}, gerr.InvalidArgument("%v", err)
	}
	return p.Bounds(s.now(), s.loc), nil
}

type activity struct {
	orders []entity.OrderFull
	visits []entity.Visit
}

// loadRange reads orders and visits of [tr.From, tr.To). Orders whose line
// totals don't add up are logged and kept.
func (s *Server) loadRange(ctx context.Context, tr entity.TimeRange) (*activity, error) {
	a := &activity{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		a.orders, err = s.repo.Orders().ListOrdersByRange(gctx, tr.From, tr.To)
		return err
	})
	g.Go(func() (err error) {
		a.visits, err = s.repo.Visits().ListVisitsByRange(gctx, tr.From, tr.To)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	a.orders = report.FilterByRange(a.orders, tr)
	a.visits = report.FilterByRange(a.visits, tr)

	for _, o := range a.orders {
		if !report.CheckTotals(o) {
			slog.Default().WarnContext(ctx, "order total doesn't match its items",
				slog.Int("order_id", o.Id),
				slog.Int64("total", o.Total),
				slog.Int64("items_total", o.ItemsTotal()),
			)
		}
	}
	return a, nil
}

func sortKey(req *dto.ReportRequest, def report.SortKey) report.SortKey {
	if req == nil || req.Sort == "" {
		return def
	}
	return report.SortKey(req.Sort)
}

// StoreReport ranks stores by activity in the requested period.
func (s *Server) StoreReport(ctx context.Context, req *dto.ReportRequest) (*dto.StoreReport, error) {
	tr, err := s.periodRange(req)
	if err != nil {
		return nil, err
	}

	var (
		stores []entity.Store
		a      *activity
		last   []entity.StoreActivity
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stores, err = s.repo.Stores().ListStores(gctx)
		return err
	})
	g.Go(func() (err error) {
		a, err = s.loadRange(gctx, tr)
		return err
	})
	g.Go(func() (err error) {
		last, err = s.repo.Stores().ListLastActivity(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, internalErr(ctx, "can't load store report", err)
	}

	key := sortKey(req, report.SortRevenue)
	rows := report.StoreSummaries(stores, a.orders, a.visits, last, s.now(), s.loc)
	if err := s.ranker.RankStores(rows, key); err != nil {
		return nil, gerr.InvalidArgument("%v", err)
	}

	return &dto.StoreReport{
		Period:  dto.ConvertEntityTimeRangeToDto(tr),
		Sort:    string(key),
		Summary: dto.ConvertEntitySummaryToDto(report.Aggregate(a.orders, a.visits)),
		Stores:  dto.ConvertEntityStoreMetricsToDto(rows),
	}, nil
}

func (s *Server) lookbackRange() entity.TimeRange {
	to := report.Today().Bounds(s.now(), s.loc).To
	return entity.TimeRange{From: to.AddDate(0, 0, -s.lookback), To: to}
}

// fleetVelocity computes reorder velocity over the lookback window for all stores.
func (s *Server) fleetVelocity(ctx context.Context) ([]entity.ReorderVelocity, error) {
	lb := s.lookbackRange()
	orders, err := s.repo.Orders().ListOrdersByRange(ctx, lb.From, lb.To)
	if err != nil {
		return nil, err
	}
	return report.FleetVelocity(orders, s.loc), nil
}

// ProductReport ranks products sold in the requested period. Reorder velocity
// is taken from the lookback window, not from the period.
func (s *Server) ProductReport(ctx context.Context, req *dto.ReportRequest) (*dto.ProductReport, error) {
	tr, err := s.periodRange(req)
	if err != nil {
		return nil, err
	}

	var (
		a  *activity
		vs []entity.ReorderVelocity
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		a, err = s.loadRange(gctx, tr)
		return err
	})
	g.Go(func() (err error) {
		vs, err = s.fleetVelocity(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, internalErr(ctx, "can't load product report", err)
	}

	key := sortKey(req, report.SortBoxes)
	rows := report.ProductSummaries(a.orders)
	report.AttachVelocity(rows, vs)
	if err := s.ranker.RankProducts(rows, key); err != nil {
		return nil, gerr.InvalidArgument("%v", err)
	}

	return &dto.ProductReport{
		Period:   dto.ConvertEntityTimeRangeToDto(tr),
		Sort:     string(key),
		Summary:  dto.ConvertEntitySummaryToDto(report.Aggregate(a.orders, a.visits)),
		Products: dto.ConvertEntityProductMetricsToDto(rows),
	}, nil
}

// StoreVelocity returns how often a store reorders each product.
func (s *Server) StoreVelocity(ctx context.Context, storeId int) ([]dto.ReorderVelocity, error) {
	if _, err := s.getStore(ctx, storeId); err != nil {
		return nil, err
	}
	lb := s.lookbackRange()
	orders, err := s.repo.Orders().ListOrdersByStore(ctx, storeId, lb.From, lb.To)
	if err != nil {
		return nil, internalErr(ctx, "can't list store orders", err)
	}
	return dto.ConvertEntityVelocityToDto(report.ReorderVelocity(orders, s.loc)), nil
}

// target returns the monthly target, cached after the first read. A missing
// row means no goal.
func (s *Server) target(ctx context.Context) (entity.MonthlyTarget, error) {
	if s.cache != nil {
		if t, ok := s.cache.GetTarget(); ok {
			return t, nil
		}
	}
	t, err := s.repo.Targets().GetTarget(ctx)
	if err != nil {
		if isNotFound(err) {
			return entity.MonthlyTarget{}, nil
		}
		return entity.MonthlyTarget{}, err
	}
	if s.cache != nil {
		s.cache.SetTarget(*t)
	}
	return *t, nil
}

// Dashboard builds the landing screen: today, this month against the target
// and the previous month for comparison.
func (s *Server) Dashboard(ctx context.Context) (*entity.Dashboard, error) {
	now := s.now()
	today := report.Today().Bounds(now, s.loc)
	month := report.ThisMonth().Bounds(now, s.loc)
	prev := report.PreviousMonth(now, s.loc)

	var (
		cur, last *activity
		t         entity.MonthlyTarget
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		cur, err = s.loadRange(gctx, month)
		return err
	})
	g.Go(func() (err error) {
		last, err = s.loadRange(gctx, prev)
		return err
	})
	g.Go(func() (err error) {
		t, err = s.target(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ms := report.Aggregate(cur.orders, cur.visits)
	ps := report.Aggregate(last.orders, last.visits)
	return &entity.Dashboard{
		Today:         report.Aggregate(report.FilterByRange(cur.orders, today), report.FilterByRange(cur.visits, today)),
		Month:         ms,
		PreviousMonth: ps,
		RevenueChange: report.ChangePct(ms.Revenue, ps.Revenue),
		BoxesChange:   report.ChangePct(ms.Boxes, ps.Boxes),
		Progress:      report.Progress(ms, t),
	}, nil
}

func (s *Server) GetDashboard(ctx context.Context) (*dto.Dashboard, error) {
	d, err := s.Dashboard(ctx)
	if err != nil {
		return nil, internalErr(ctx, "can't build dashboard", err)
	}
	out := dto.ConvertEntityDashboardToDto(d)
	return &out, nil
}

// MonthSnapshot ranks all stores and products for the current month.
func (s *Server) MonthSnapshot(ctx context.Context) (*entity.Snapshot, error) {
	now := s.now()
	month := report.ThisMonth().Bounds(now, s.loc)

	var (
		stores []entity.Store
		a      *activity
		vs     []entity.ReorderVelocity
		last   []entity.StoreActivity
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stores, err = s.repo.Stores().ListStores(gctx)
		return err
	})
	g.Go(func() (err error) {
		last, err = s.repo.Stores().ListLastActivity(gctx)
		return err
	})
	g.Go(func() (err error) {
		a, err = s.loadRange(gctx, month)
		return err
	})
	g.Go(func() (err error) {
		vs, err = s.fleetVelocity(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	srows := report.StoreSummaries(stores, a.orders, a.visits, last, now, s.loc)
	if err := s.ranker.RankStores(srows, report.SortRevenue); err != nil {
		return nil, err
	}
	prows := report.ProductSummaries(a.orders)
	report.AttachVelocity(prows, vs)
	if err := s.ranker.RankProducts(prows, report.SortBoxes); err != nil {
		return nil, err
	}

	return &entity.Snapshot{
		MonthKey:   report.MonthKey(now, s.loc),
		ComputedAt: now,
		Summary:    report.Aggregate(a.orders, a.visits),
		Stores:     srows,
		Products:   prows,
	}, nil
}

// GetSnapshot returns the precomputed month ranking, computing it when the
// worker hasn't produced one yet or the month has rolled over.
func (s *Server) GetSnapshot(ctx context.Context) (*dto.Snapshot, error) {
	if s.cache != nil {
		if snap, ok := s.cache.GetSnapshot(); ok && snap.MonthKey == report.MonthKey(s.now(), s.loc) {
			out := dto.ConvertEntitySnapshotToDto(snap)
			return &out, nil
		}
	}
	snap, err := s.MonthSnapshot(ctx)
	if err != nil {
		return nil, internalErr(ctx, "can't compute month snapshot", err)
	}
	if s.cache != nil {
		s.cache.SetSnapshot(snap)
	}
	out := dto.ConvertEntitySnapshotToDto(snap)
	return &out, nil
}

func (s *Server) GetTarget(ctx context.Context) (*dto.MonthlyTarget, error) {
	t, err := s.target(ctx)
	if err != nil {
		return nil, internalErr(ctx, "can't get monthly target", err)
	}
	out := dto.ConvertEntityTargetToDto(t)
	return &out, nil
}

// SaveTarget replaces the monthly goal.
func (s *Server) SaveTarget(ctx context.Context, req *dto.MonthlyTarget) (*dto.MonthlyTarget, error) {
	if err := (&form.TargetRequest{MonthlyTarget: req}).Validate(); err != nil {
		return nil, err
	}
	t := dto.ConvertTargetToEntity(req)
	if err := s.repo.Targets().SaveTarget(ctx, t); err != nil {
		return nil, internalErr(ctx, "can't save monthly target", err)
	}
	t.UpdatedAt = s.now()
	if s.cache != nil {
		s.cache.SetTarget(*t)
	}
	out := dto.ConvertEntityTargetToDto(*t)
	return &out, nil
}
