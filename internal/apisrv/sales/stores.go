package sales

import (
	"context"
	"log/slog"

	v "github.com/asaskevich/govalidator"
	"github.com/ilydev-openproject/salesaice/internal/dto"
	"github.com/ilydev-openproject/salesaice/internal/entity"
	gerr "github.com/ilydev-openproject/salesaice/internal/errors"
	"github.com/ilydev-openproject/salesaice/internal/form"
	"github.com/ilydev-openproject/salesaice/internal/report"
	"golang.org/x/sync/errgroup"
)

func (s *Server) storeInsert(ctx context.Context, req *dto.StoreInsert) (*entity.StoreInsert, error) {
	if err := (&form.StoreRequest{StoreInsert: req}).Validate(); err != nil {
		return nil, err
	}
	si, err := dto.ConvertStoreInsertToEntity(req)
	if err != nil {
		return nil, gerr.InvalidArgument("can't convert store: %v", err)
	}
	if _, err := v.ValidateStruct(si); err != nil {
		slog.Default().ErrorContext(ctx, "validation store request failed",
			slog.String("err", err.Error()),
		)
		return nil, gerr.InvalidArgument("validation store request failed: %v", err)
	}
	return si, nil
}

func (s *Server) getStore(ctx context.Context, id int) (*entity.Store, error) {
	st, err := s.repo.Stores().GetStoreById(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, gerr.StoreNotFound
		}
		return nil, internalErr(ctx, "can't get store by id", err)
	}
	return st, nil
}

func (s *Server) AddStore(ctx context.Context, req *dto.StoreInsert) (*dto.Store, error) {
	si, err := s.storeInsert(ctx, req)
	if err != nil {
		return nil, err
	}

	id, err := s.repo.Stores().AddStore(ctx, si)
	if err != nil {
		return nil, internalErr(ctx, "can't create a store", err)
	}

	st, err := s.getStore(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.ConvertEntityStoreToDto(st)
	return &out, nil
}

func (s *Server) UpdateStore(ctx context.Context, id int, req *dto.StoreInsert) (*dto.Store, error) {
	si, err := s.storeInsert(ctx, req)
	if err != nil {
		return nil, err
	}
	if _, err := s.getStore(ctx, id); err != nil {
		return nil, err
	}

	if err := s.repo.Stores().UpdateStore(ctx, id, si); err != nil {
		return nil, internalErr(ctx, "can't update store", err)
	}

	st, err := s.getStore(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.ConvertEntityStoreToDto(st)
	return &out, nil
}

func (s *Server) DeleteStore(ctx context.Context, id int) error {
	err := s.repo.Stores().DeleteStoreById(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return gerr.StoreNotFound
		}
		return internalErr(ctx, "can't delete store", err)
	}
	return nil
}

func (s *Server) GetStore(ctx context.Context, id int) (*dto.Store, error) {
	st, err := s.getStore(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.ConvertEntityStoreToDto(st)
	return &out, nil
}

func (s *Server) ListStores(ctx context.Context) ([]dto.Store, error) {
	stores, err := s.repo.Stores().ListStores(ctx)
	if err != nil {
		return nil, internalErr(ctx, "can't list stores", err)
	}
	return dto.ConvertEntityStoresToDto(stores), nil
}

// TodaySchedule lists the stores due for a visit today.
func (s *Server) TodaySchedule(ctx context.Context) ([]dto.ScheduledStore, error) {
	now := s.now().In(s.loc)
	tr := report.Today().Bounds(now, s.loc)

	var (
		stores []entity.Store
		visits []entity.Visit
		orders []entity.OrderFull
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stores, err = s.repo.Stores().ListStores(gctx)
		return err
	})
	g.Go(func() (err error) {
		visits, err = s.repo.Visits().ListVisitsByRange(gctx, tr.From, tr.To)
		return err
	})
	g.Go(func() (err error) {
		orders, err = s.repo.Orders().ListOrdersByRange(gctx, tr.From, tr.To)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, internalErr(ctx, "can't load today's schedule", err)
	}

	return dto.ConvertEntityScheduleToDto(report.Schedule(stores, visits, orders, now.Weekday())), nil
}
