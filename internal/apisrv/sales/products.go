package sales

import (
	"context"
	"log/slog"

	v "github.com/asaskevich/govalidator"
	"github.com/ilydev-openproject/salesaice/internal/dto"
	"github.com/ilydev-openproject/salesaice/internal/entity"
	gerr "github.com/ilydev-openproject/salesaice/internal/errors"
	"github.com/ilydev-openproject/salesaice/internal/form"
)

func (s *Server) productInsert(ctx context.Context, req *dto.ProductInsert) (*entity.ProductInsert, error) {
	if err := (&form.ProductRequest{ProductInsert: req}).Validate(); err != nil {
		return nil, err
	}
	pi, err := dto.ConvertProductInsertToEntity(req)
	if err != nil {
		return nil, gerr.InvalidArgument("can't convert product: %v", err)
	}
	if _, err := v.ValidateStruct(pi); err != nil {
		slog.Default().ErrorContext(ctx, "validation product request failed",
			slog.String("err", err.Error()),
		)
		return nil, gerr.InvalidArgument("validation product request failed: %v", err)
	}
	return pi, nil
}

func (s *Server) getProduct(ctx context.Context, id int) (*entity.Product, error) {
	p, err := s.repo.Products().GetProductById(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, gerr.ProductNotFound
		}
		return nil, internalErr(ctx, "can't get product by id", err)
	}
	return p, nil
}

func (s *Server) productResponse(ctx context.Context, id int) (*dto.Product, error) {
	p, err := s.getProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.ConvertEntityProductToDto(p)
	return &out, nil
}

func (s *Server) AddProduct(ctx context.Context, req *dto.ProductInsert) (*dto.Product, error) {
	pi, err := s.productInsert(ctx, req)
	if err != nil {
		return nil, err
	}
	id, err := s.repo.Products().AddProduct(ctx, pi)
	if err != nil {
		return nil, internalErr(ctx, "can't create a product", err)
	}
	return s.productResponse(ctx, id)
}

func (s *Server) UpdateProduct(ctx context.Context, id int, req *dto.ProductInsert) (*dto.Product, error) {
	pi, err := s.productInsert(ctx, req)
	if err != nil {
		return nil, err
	}
	if _, err := s.getProduct(ctx, id); err != nil {
		return nil, err
	}
	if err := s.repo.Products().UpdateProduct(ctx, id, pi); err != nil {
		return nil, internalErr(ctx, "can't update product", err)
	}
	return s.productResponse(ctx, id)
}

func (s *Server) DeleteProduct(ctx context.Context, id int) error {
	err := s.repo.Products().DeleteProductById(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return gerr.ProductNotFound
		}
		return internalErr(ctx, "can't delete product", err)
	}
	return nil
}

func (s *Server) GetProduct(ctx context.Context, id int) (*dto.Product, error) {
	return s.productResponse(ctx, id)
}

func (s *Server) ListProducts(ctx context.Context) ([]dto.Product, error) {
	prds, err := s.repo.Products().ListProducts(ctx)
	if err != nil {
		return nil, internalErr(ctx, "can't list products", err)
	}
	return dto.ConvertEntityProductsToDto(prds), nil
}

// SetProductAvailability toggles whether the product can be ordered.
func (s *Server) SetProductAvailability(ctx context.Context, id int, req *dto.SetProductAvailabilityRequest) (*dto.Product, error) {
	if req == nil {
		return nil, gerr.InvalidArgument("request is nil")
	}
	err := s.repo.Products().SetProductAvailability(ctx, id, req.Available)
	if err != nil {
		if isNotFound(err) {
			return nil, gerr.ProductNotFound
		}
		return nil, internalErr(ctx, "can't set product availability", err)
	}
	return s.productResponse(ctx, id)
}

// UploadProductImage stores the image in the bucket and links it to the product.
func (s *Server) UploadProductImage(ctx context.Context, id int, req *dto.UploadProductImageRequest) (*dto.Product, error) {
	if s.bucket == nil {
		return nil, gerr.UploadsDisabled
	}
	if err := (&form.UploadProductImageRequest{UploadProductImageRequest: req}).Validate(); err != nil {
		return nil, err
	}
	if _, err := s.getProduct(ctx, id); err != nil {
		return nil, err
	}

	url, err := s.bucket.UploadProductImage(ctx, req.RawB64Image, id)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't upload product image",
			slog.String("err", err.Error()),
		)
		return nil, gerr.InvalidArgument("can't upload product image: %v", err)
	}

	if err := s.repo.Products().SetProductImage(ctx, id, url); err != nil {
		return nil, internalErr(ctx, "can't set product image", err)
	}
	return s.productResponse(ctx, id)
}
