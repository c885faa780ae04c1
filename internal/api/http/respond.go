package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/ilydev-openproject/salesaice/internal/dto"
	gerr "github.com/ilydev-openproject/salesaice/internal/errors"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type errorResponse struct {
	Code       string   `json:"code"`
	Message    string   `json:"message"`
	Violations []string `json:"violations,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Error("can't write response", slog.String("err", err.Error()))
	}
}

// writeError maps a gRPC status error to its HTTP status. Anything that is
// not a status is reported as internal without leaking the cause.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	st, ok := status.FromError(err)
	if !ok {
		slog.Default().ErrorContext(r.Context(), "unhandled error",
			slog.String("path", r.URL.Path),
			slog.String("err", err.Error()),
		)
		st = status.New(codes.Internal, "internal error")
	}

	resp := errorResponse{
		Code:    st.Code().String(),
		Message: st.Message(),
	}
	for _, d := range st.Details() {
		if br, ok := d.(*errdetails.BadRequest); ok {
			for _, fv := range br.GetFieldViolations() {
				resp.Violations = append(resp.Violations, fv.GetDescription())
			}
		}
	}
	writeJSON(w, runtime.HTTPStatusFromCode(st.Code()), resp)
}

func decodeJSON[T any](r *http.Request) (*T, error) {
	var v T
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			return nil, status.Errorf(codes.InvalidArgument, "request body too large, max %d bytes", mbe.Limit)
		}
		return nil, gerr.InvalidArgument("invalid json body: %v", err)
	}
	return &v, nil
}

func intParam(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		return 0, gerr.InvalidArgument("invalid %s %q", name, chi.URLParam(r, name))
	}
	return id, nil
}

func reportRequest(r *http.Request) *dto.ReportRequest {
	q := r.URL.Query()
	return &dto.ReportRequest{
		Period: q.Get("period"),
		Date:   q.Get("date"),
		Sort:   q.Get("sort"),
	}
}
