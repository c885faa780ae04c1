package sales

import (
	"context"
	"log/slog"

	"github.com/ilydev-openproject/salesaice/internal/dto"
	"github.com/ilydev-openproject/salesaice/internal/entity"
	gerr "github.com/ilydev-openproject/salesaice/internal/errors"
	"github.com/ilydev-openproject/salesaice/internal/events"
	"github.com/ilydev-openproject/salesaice/internal/form"
	"github.com/ilydev-openproject/salesaice/internal/report"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// priceOrder resolves catalog prices for the requested items. Unknown or
// unavailable products reject the whole order.
func priceOrder(on *entity.OrderNew, products []entity.Product) (*entity.OrderFull, error) {
	byId := make(map[int]*entity.Product, len(products))
	for i := range products {
		byId[products[i].Id] = &products[i]
	}

	of := &entity.OrderFull{
		Order: entity.Order{
			StoreId: on.StoreId,
			VisitId: on.VisitId,
			Note:    on.Note,
		},
		Items: make([]entity.OrderItem, 0, len(on.Items)),
	}
	for _, it := range on.Items {
		p, ok := byId[it.ProductId]
		if !ok {
			return nil, status.Errorf(codes.NotFound, "product %d not found", it.ProductId)
		}
		if !p.IsSellable() {
			return nil, status.Errorf(codes.FailedPrecondition, "product %q is not available", p.Name)
		}
		line := p.WholesalePrice * int64(it.Quantity)
		of.Items = append(of.Items, entity.OrderItem{
			ProductName:     p.Name,
			Price:           p.WholesalePrice,
			Total:           line,
			OrderItemInsert: it,
		})
		of.Total += line
	}
	return of, nil
}

// checkOrderVisit makes sure the referenced visit exists and was made at the
// store the order is for.
func (s *Server) checkOrderVisit(ctx context.Context, storeId, visitId int) error {
	v, err := s.repo.Visits().GetVisitById(ctx, visitId)
	if err != nil {
		if isNotFound(err) {
			return gerr.VisitNotFound
		}
		return internalErr(ctx, "can't get order visit", err)
	}
	if v.StoreId != storeId {
		return gerr.VisitOtherStore
	}
	return nil
}

// CreateOrder prices the order from the catalog and stores it.
func (s *Server) CreateOrder(ctx context.Context, req *dto.OrderNew) (*dto.Order, error) {
	if err := (&form.OrderRequest{OrderNew: req}).Validate(); err != nil {
		return nil, err
	}
	on, err := dto.ConvertOrderNewToEntity(req)
	if err != nil {
		return nil, gerr.InvalidArgument("can't convert order: %v", err)
	}

	if _, err := s.getStore(ctx, on.StoreId); err != nil {
		return nil, err
	}
	if on.VisitId.Valid {
		if err := s.checkOrderVisit(ctx, on.StoreId, int(on.VisitId.Int32)); err != nil {
			return nil, err
		}
	}

	ids := make([]int, 0, len(on.Items))
	for _, it := range on.Items {
		ids = append(ids, it.ProductId)
	}
	products, err := s.repo.Products().GetProductsByIds(ctx, ids)
	if err != nil {
		return nil, internalErr(ctx, "can't get order products", err)
	}

	of, err := priceOrder(on, products)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Orders().CreateOrder(ctx, of)
	if err != nil {
		return nil, internalErr(ctx, "can't create order", err)
	}

	out := dto.ConvertEntityOrderToDto(created)
	slog.Default().InfoContext(ctx, "order created",
		slog.String("uuid", created.UUID),
		slog.Int("store_id", created.StoreId),
		slog.Int64("total", created.Total),
	)
	s.publish(ctx, events.OrderCreated, out)
	return &out, nil
}

func (s *Server) orderResponse(ctx context.Context, of *entity.OrderFull, err error) (*dto.Order, error) {
	if err != nil {
		if isNotFound(err) {
			return nil, gerr.OrderNotFound
		}
		return nil, internalErr(ctx, "can't get order", err)
	}
	out := dto.ConvertEntityOrderToDto(of)
	return &out, nil
}

func (s *Server) GetOrder(ctx context.Context, id int) (*dto.Order, error) {
	of, err := s.repo.Orders().GetOrderById(ctx, id)
	return s.orderResponse(ctx, of, err)
}

// GetOrderByUUID looks an order up by its receipt number.
func (s *Server) GetOrderByUUID(ctx context.Context, uuid string) (*dto.Order, error) {
	of, err := s.repo.Orders().GetOrderByUUID(ctx, uuid)
	return s.orderResponse(ctx, of, err)
}

func (s *Server) DeleteOrder(ctx context.Context, id int) error {
	err := s.repo.Orders().DeleteOrderById(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return gerr.OrderNotFound
		}
		return internalErr(ctx, "can't delete order", err)
	}
	return nil
}

// ListOrders returns the orders of the requested period.
func (s *Server) ListOrders(ctx context.Context, req *dto.ReportRequest) ([]dto.Order, error) {
	tr, err := s.periodRange(req)
	if err != nil {
		return nil, err
	}
	orders, err := s.repo.Orders().ListOrdersByRange(ctx, tr.From, tr.To)
	if err != nil {
		return nil, internalErr(ctx, "can't list orders", err)
	}
	return dto.ConvertEntityOrdersToDto(report.FilterByRange(orders, tr)), nil
}

// ListStoreOrders returns the orders of one store in the requested period.
func (s *Server) ListStoreOrders(ctx context.Context, storeId int, req *dto.ReportRequest) ([]dto.Order, error) {
	tr, err := s.periodRange(req)
	if err != nil {
		return nil, err
	}
	if _, err := s.getStore(ctx, storeId); err != nil {
		return nil, err
	}
	orders, err := s.repo.Orders().ListOrdersByStore(ctx, storeId, tr.From, tr.To)
	if err != nil {
		return nil, internalErr(ctx, "can't list store orders", err)
	}
	return dto.ConvertEntityOrdersToDto(orders), nil
}
