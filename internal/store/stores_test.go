package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/ilydev-openproject/salesaice/internal/dependency"
	"github.com/ilydev-openproject/salesaice/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestStore(name string) *entity.StoreInsert {
	return &entity.StoreInsert{
		Name:      name,
		Code:      sql.NullString{String: "TK-01", Valid: true},
		Phone:     sql.NullString{String: "+628123456789", Valid: true},
		Latitude:  sql.NullFloat64{Float64: -6.2, Valid: true},
		Longitude: sql.NullFloat64{Float64: 106.8, Valid: true},
		VisitDays: entity.VisitDays{time.Monday, time.Thursday},
	}
}

func getTestProduct(name string, price int64) *entity.ProductInsert {
	return &entity.ProductInsert{
		Name:           name,
		WholesalePrice: price,
		RetailPrice:    price + price/5,
		UnitsPerCase:   24,
		Available:      true,
	}
}

func TestStoresStore(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	ss := db.Stores()

	id, err := ss.AddStore(ctx, getTestStore("Toko Ani"))
	require.NoError(t, err)

	s, err := ss.GetStoreById(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Toko Ani", s.Name)
	assert.Equal(t, entity.VisitDays{time.Monday, time.Thursday}, s.VisitDays)
	assert.True(t, s.HasCoordinate())

	upd := getTestStore("Toko Ani Jaya")
	upd.VisitDays = entity.VisitDays{time.Saturday}
	require.NoError(t, ss.UpdateStore(ctx, id, upd))

	list, err := ss.ListStores(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Toko Ani Jaya", list[0].Name)
	assert.True(t, list[0].VisitDays.Contains(time.Saturday))

	require.NoError(t, ss.DeleteStoreById(ctx, id))
	_, err = ss.GetStoreById(ctx, id)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(ss.DeleteStoreById(ctx, id), ErrNotFound))
}

func TestProductsStore(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	ps := db.Products()

	id, err := ps.AddProduct(ctx, getTestProduct("Cone Vanilla", 60000))
	require.NoError(t, err)
	id2, err := ps.AddProduct(ctx, getTestProduct("Stick Coklat", 45000))
	require.NoError(t, err)

	require.NoError(t, ps.SetProductAvailability(ctx, id, false))
	require.NoError(t, ps.SetProductAvailability(ctx, id, false))
	p, err := ps.GetProductById(ctx, id)
	require.NoError(t, err)
	assert.False(t, p.Available)
	assert.False(t, p.IsSellable())

	require.NoError(t, ps.SetProductImage(ctx, id2, "https://cdn.example.com/p.png"))
	prds, err := ps.GetProductsByIds(ctx, []int{id, id2})
	require.NoError(t, err)
	assert.Len(t, prds, 2)

	err = ps.SetProductAvailability(ctx, id2+100, true)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestOrdersAndVisitsStore(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	storeId, err := db.Stores().AddStore(ctx, getTestStore("Warung Budi"))
	require.NoError(t, err)
	prdId, err := db.Products().AddProduct(ctx, getTestProduct("Cone Vanilla", 60000))
	require.NoError(t, err)

	v, err := db.Visits().AddVisit(ctx, &entity.VisitInsert{StoreId: storeId, Note: "stok masih banyak"})
	require.NoError(t, err)

	o, err := db.Orders().CreateOrder(ctx, &entity.OrderFull{
		Order: entity.Order{
			StoreId: storeId,
			VisitId: sql.NullInt32{Int32: int32(v.Id), Valid: true},
			Total:   180000,
		},
		Items: []entity.OrderItem{{
			ProductName:     "Cone Vanilla",
			Price:           60000,
			Total:           180000,
			OrderItemInsert: entity.OrderItemInsert{ProductId: prdId, Quantity: 3},
		}},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, o.UUID)

	got, err := db.Orders().GetOrderByUUID(ctx, o.UUID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, int64(3), got.Boxes())
	assert.Equal(t, got.Total, got.ItemsTotal())

	from := time.Now().Add(-time.Hour)
	to := time.Now().Add(time.Hour)
	orders, err := db.Orders().ListOrdersByRange(ctx, from, to)
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	orders, err = db.Orders().ListOrdersByStore(ctx, storeId+1, from, to)
	require.NoError(t, err)
	assert.Empty(t, orders)

	visits, err := db.Visits().ListVisitsByRange(ctx, from, to)
	require.NoError(t, err)
	assert.Len(t, visits, 1)

	gv, err := db.Visits().GetVisitById(ctx, v.Id)
	require.NoError(t, err)
	assert.Equal(t, storeId, gv.StoreId)
	_, err = db.Visits().GetVisitById(ctx, v.Id+100)
	assert.True(t, errors.Is(err, ErrNotFound))

	acts, err := db.Stores().ListLastActivity(ctx)
	require.NoError(t, err)
	require.Len(t, acts, 1)
	assert.Equal(t, storeId, acts[0].StoreId)
	assert.False(t, acts[0].LastActivity.Before(v.CreatedAt.Truncate(time.Second)))

	require.NoError(t, db.Orders().DeleteOrderById(ctx, o.Id))
	_, err = db.Orders().GetOrderById(ctx, o.Id)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestRewardLedgerAndTarget(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	storeId, err := db.Stores().AddStore(ctx, getTestStore("Kios Citra"))
	require.NoError(t, err)

	err = db.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		claims, err := rep.Rewards().ListRewardClaims(ctx, storeId, "2026-10")
		if err != nil {
			return err
		}
		assert.Empty(t, claims)
		_, err = rep.Rewards().AddRewardClaim(ctx, &entity.RewardClaim{
			StoreId: storeId, MonthKey: "2026-10", Units: 2, Kind: entity.RewardClaimed,
		})
		return err
	})
	require.NoError(t, err)

	claims, err := db.Rewards().ListRewardClaims(ctx, storeId, "2026-10")
	require.NoError(t, err)
	require.Len(t, claims, 1)
	assert.Equal(t, entity.RewardClaimed, claims[0].Kind)

	require.NoError(t, db.Targets().SaveTarget(ctx, &entity.MonthlyTarget{BoxGoal: 500, RevenueGoal: 30_000_000}))
	tg, err := db.Targets().GetTarget(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(500), tg.BoxGoal)
}

func TestRepsStore(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.Reps().AddRep(ctx, "sari", "hash"))
	err := db.Reps().AddRep(ctx, "sari", "hash")
	assert.True(t, db.IsErrUniqueViolation(err))

	h, err := db.Reps().PasswordHashByUsername(ctx, "sari")
	require.NoError(t, err)
	assert.Equal(t, "hash", h)

	require.NoError(t, db.Reps().DeleteRep(ctx, "sari"))
	_, err = db.Reps().PasswordHashByUsername(ctx, "sari")
	assert.True(t, errors.Is(err, ErrNotFound))
}
