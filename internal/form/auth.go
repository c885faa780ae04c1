package form

import (
	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/ilydev-openproject/salesaice/internal/dto"
)

type LoginRequest struct {
	*dto.LoginRequest
}

func (r *LoginRequest) Validate() error {
	if r == nil || r.LoginRequest == nil {
		return errNilRequest
	}
	return ValidateStruct(r.LoginRequest,
		v.Field(&r.Username, v.Required, v.Length(3, 64)),
		v.Field(&r.Password, v.Required),
	)
}

type CreateRepRequest struct {
	*dto.CreateRepRequest
}

func (r *CreateRepRequest) Validate() error {
	if r == nil || r.CreateRepRequest == nil {
		return errNilRequest
	}
	return ValidateStruct(r.CreateRepRequest,
		v.Field(&r.Username, v.Required, v.Length(3, 64)),
		v.Field(&r.Password, v.Required, v.Length(8, 72)),
		v.Field(&r.MasterPassword, v.Required),
	)
}
