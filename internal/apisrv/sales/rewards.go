package sales

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ilydev-openproject/salesaice/internal/dependency"
	"github.com/ilydev-openproject/salesaice/internal/dto"
	"github.com/ilydev-openproject/salesaice/internal/entity"
	gerr "github.com/ilydev-openproject/salesaice/internal/errors"
	"github.com/ilydev-openproject/salesaice/internal/events"
	"github.com/ilydev-openproject/salesaice/internal/report"
)

// monthKey resolves an optional "YYYY-MM" key, defaulting to the current month.
func (s *Server) monthKey(month string) (string, entity.TimeRange, error) {
	if month == "" {
		month = report.MonthKey(s.now(), s.loc)
	}
	tr, err := report.MonthBounds(month, s.loc)
	if err != nil {
		return "", entity.TimeRange{}, gerr.InvalidArgument("%v", err)
	}
	return month, tr, nil
}

// rewardStatus reads boxes and the claim ledger of one store and month
// through rep, which may be a transaction.
func (s *Server) rewardStatus(ctx context.Context, rep dependency.Repository, storeId int, month string, tr entity.TimeRange) (entity.RewardStatus, []entity.RewardClaim, error) {
	claims, err := rep.Rewards().ListRewardClaims(ctx, storeId, month)
	if err != nil {
		return entity.RewardStatus{}, nil, err
	}
	orders, err := rep.Orders().ListOrdersByStore(ctx, storeId, tr.From, tr.To)
	if err != nil {
		return entity.RewardStatus{}, nil, err
	}
	var boxes int64
	for _, o := range report.FilterByRange(orders, tr) {
		boxes += o.Boxes()
	}
	rs := report.Rewards(boxes, report.ClaimedFromLedger(claims), s.threshold)
	rs.StoreId = storeId
	rs.MonthKey = month
	return rs, claims, nil
}

// RewardStatus reports how many free-product rewards a store earned in a month.
func (s *Server) RewardStatus(ctx context.Context, storeId int, month string) (*dto.RewardStatus, error) {
	month, tr, err := s.monthKey(month)
	if err != nil {
		return nil, err
	}
	if _, err := s.getStore(ctx, storeId); err != nil {
		return nil, err
	}
	rs, _, err := s.rewardStatus(ctx, s.repo, storeId, month, tr)
	if err != nil {
		return nil, internalErr(ctx, "can't get reward status", err)
	}
	out := dto.ConvertEntityRewardStatusToDto(rs)
	return &out, nil
}

// ClaimReward marks every pending reward of the month as handed out.
func (s *Server) ClaimReward(ctx context.Context, storeId int, month string) (*dto.RewardStatus, error) {
	month, tr, err := s.monthKey(month)
	if err != nil {
		return nil, err
	}
	if _, err := s.getStore(ctx, storeId); err != nil {
		return nil, err
	}

	var rs entity.RewardStatus
	err = s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		cur, _, err := s.rewardStatus(ctx, rep, storeId, month, tr)
		if err != nil {
			return err
		}
		if !cur.HasPending() {
			return gerr.NothingToClaim
		}
		units := cur.Pending
		if _, err := rep.Rewards().AddRewardClaim(ctx, &entity.RewardClaim{
			StoreId:  storeId,
			MonthKey: month,
			Units:    int(units),
			Kind:     entity.RewardClaimed,
		}); err != nil {
			return err
		}
		rs = report.Rewards(cur.Boxes, cur.Claimed+units, s.threshold)
		rs.StoreId = storeId
		rs.MonthKey = month
		return nil
	})
	if err != nil {
		if errors.Is(err, gerr.NothingToClaim) {
			return nil, err
		}
		return nil, internalErr(ctx, "can't claim reward", err)
	}

	slog.Default().InfoContext(ctx, "reward claimed",
		slog.Int("store_id", storeId),
		slog.String("month", month),
		slog.Int64("claimed", rs.Claimed),
	)
	out := dto.ConvertEntityRewardStatusToDto(rs)
	s.publish(ctx, events.RewardClaimed, out)
	return &out, nil
}

// UndoReward resets the claimed counter of the month to zero: every claim
// still in effect gets an undo entry.
func (s *Server) UndoReward(ctx context.Context, storeId int, month string) (*dto.RewardStatus, error) {
	month, tr, err := s.monthKey(month)
	if err != nil {
		return nil, err
	}
	if _, err := s.getStore(ctx, storeId); err != nil {
		return nil, err
	}

	var rs entity.RewardStatus
	err = s.repo.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		cur, claims, err := s.rewardStatus(ctx, rep, storeId, month, tr)
		if err != nil {
			return err
		}
		open := report.OpenClaims(claims)
		if len(open) == 0 {
			return gerr.NothingToUndo
		}
		for _, c := range open {
			undo := &entity.RewardClaim{
				StoreId:  storeId,
				MonthKey: month,
				Units:    c.Units,
				Kind:     entity.RewardUndone,
			}
			undo.RevertsId.Int32, undo.RevertsId.Valid = int32(c.Id), true
			if _, err := rep.Rewards().AddRewardClaim(ctx, undo); err != nil {
				return err
			}
		}
		rs = report.Rewards(cur.Boxes, 0, s.threshold)
		rs.StoreId = storeId
		rs.MonthKey = month
		return nil
	})
	if err != nil {
		if errors.Is(err, gerr.NothingToUndo) {
			return nil, err
		}
		return nil, internalErr(ctx, "can't undo reward", err)
	}

	out := dto.ConvertEntityRewardStatusToDto(rs)
	s.publish(ctx, events.RewardUndone, out)
	return &out, nil
}
