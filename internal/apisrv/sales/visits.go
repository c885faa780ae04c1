package sales

import (
	"context"

	"github.com/ilydev-openproject/salesaice/internal/dto"
	"github.com/ilydev-openproject/salesaice/internal/entity"
	gerr "github.com/ilydev-openproject/salesaice/internal/errors"
	"github.com/ilydev-openproject/salesaice/internal/events"
	"github.com/ilydev-openproject/salesaice/internal/form"
)

// AddVisit records a check-in at a store.
func (s *Server) AddVisit(ctx context.Context, req *dto.VisitInsert) (*dto.Visit, error) {
	if err := (&form.VisitRequest{VisitInsert: req}).Validate(); err != nil {
		return nil, err
	}
	if _, err := s.getStore(ctx, req.StoreId); err != nil {
		return nil, err
	}

	vst, err := s.repo.Visits().AddVisit(ctx, &entity.VisitInsert{
		StoreId: req.StoreId,
		Note:    req.Note,
	})
	if err != nil {
		return nil, internalErr(ctx, "can't add visit", err)
	}

	out := dto.ConvertEntityVisitToDto(vst)
	s.publish(ctx, events.VisitCreated, out)
	return &out, nil
}

func (s *Server) DeleteVisit(ctx context.Context, id int) error {
	err := s.repo.Visits().DeleteVisitById(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return gerr.VisitNotFound
		}
		return internalErr(ctx, "can't delete visit", err)
	}
	return nil
}

// ListVisits returns the visits of the requested period.
func (s *Server) ListVisits(ctx context.Context, req *dto.ReportRequest) ([]dto.Visit, error) {
	tr, err := s.periodRange(req)
	if err != nil {
		return nil, err
	}
	visits, err := s.repo.Visits().ListVisitsByRange(ctx, tr.From, tr.To)
	if err != nil {
		return nil, internalErr(ctx, "can't list visits", err)
	}
	return dto.ConvertEntityVisitsToDto(visits), nil
}

// ListStoreVisits returns the full visit history of a store.
func (s *Server) ListStoreVisits(ctx context.Context, storeId int) ([]dto.Visit, error) {
	if _, err := s.getStore(ctx, storeId); err != nil {
		return nil, err
	}
	visits, err := s.repo.Visits().ListVisitsByStore(ctx, storeId)
	if err != nil {
		return nil, internalErr(ctx, "can't list store visits", err)
	}
	return dto.ConvertEntityVisitsToDto(visits), nil
}
