package form

import (
	"encoding/base64"
	"strings"

	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/ilydev-openproject/salesaice/internal/dto"
)

type ProductRequest struct {
	*dto.ProductInsert
}

func (r *ProductRequest) Validate() error {
	if r == nil || r.ProductInsert == nil {
		return errNilRequest
	}
	return ValidateStruct(r.ProductInsert,
		v.Field(&r.Name, v.Required, v.Length(1, 120)),
		v.Field(&r.WholesalePrice, v.Required, v.Min(int64(1))),
		v.Field(&r.RetailPrice, v.Min(int64(0))),
		v.Field(&r.UnitsPerCase, v.Required, v.Min(1)),
		v.Field(&r.ImageURL, is.URL),
	)
}

type UploadProductImageRequest struct {
	*dto.UploadProductImageRequest
}

func (f *UploadProductImageRequest) Validate() error {
	if f == nil || f.UploadProductImageRequest == nil {
		return errNilRequest
	}

	validateRawB64Image := v.NewStringRuleWithError(
		func(value string) bool {
			// data:image/png;base64,<data>
			imageParts := strings.SplitN(value, ",", 2)
			if len(imageParts) != 2 || !strings.HasPrefix(imageParts[0], "data:image/") {
				return false
			}
			_, err := base64.StdEncoding.DecodeString(imageParts[1])
			return err == nil
		}, v.ErrInInvalid.SetMessage("invalid base64 image"),
	)

	return ValidateStruct(f.UploadProductImageRequest,
		v.Field(&f.RawB64Image, v.Required, validateRawB64Image),
	)
}
