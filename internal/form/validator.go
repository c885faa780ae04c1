package form

import (
	"errors"
	"sort"
	"strings"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var errNilRequest = status.Error(codes.InvalidArgument, "request is nil")

// ValidateStruct is validation.ValidateStruct that returns a grpc
// InvalidArgument status carrying one errdetails.BadRequest violation per
// failing field.
func ValidateStruct(structPtr any, rules ...*validation.FieldRules) error {
	br := &errdetails.BadRequest{}
	for _, rule := range rules {
		err := validation.ValidateStruct(structPtr, rule)
		if err == nil {
			continue
		}
		var ve validation.Errors
		if !errors.As(err, &ve) {
			// internal error of the validator, e.g. a rule on a non pointer field
			return status.Error(codes.Internal, err.Error())
		}
		keys := make([]string, 0, len(ve))
		for k := range ve {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
				Field:       k,
				Description: formatErrMsg(k + ": " + fieldMessage(ve[k])),
			})
		}
	}
	if len(br.FieldViolations) == 0 {
		return nil
	}

	st, err := status.New(codes.InvalidArgument, "validation failed").WithDetails(br)
	if err != nil {
		return status.New(codes.Internal, err.Error()).Err()
	}
	return st.Err()
}

// fieldMessage unwraps status errors returned by custom rules so the client
// sees their message instead of the rpc prefix.
func fieldMessage(err error) string {
	if st, ok := status.FromError(err); ok {
		return st.Message()
	}
	return err.Error()
}

func formatErrMsg(s string) string {
	return ucfirst(strings.Trim(s, " .")) + "."
}

func ucfirst(str string) string {
	for i, v := range str {
		return string(unicode.ToUpper(v)) + str[i+len(string(v)):]
	}
	return ""
}
