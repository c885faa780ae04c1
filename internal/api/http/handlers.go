package httpapi

import (
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/ilydev-openproject/salesaice/internal/dto"
	gerr "github.com/ilydev-openproject/salesaice/internal/errors"
	"github.com/ilydev-openproject/salesaice/internal/middleware"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

func (h *handlers) healthz(w http.ResponseWriter, r *http.Request) {
	resp, err := h.health.Check(r.Context(), &healthpb.HealthCheckRequest{})
	if err != nil || resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not serving"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "serving"})
}

// auth

func (h *handlers) login(w http.ResponseWriter, r *http.Request) {
	req, err := decodeJSON[dto.LoginRequest](r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	resp, err := h.auth.Login(r.Context(), middleware.GetClientIP(r.Context()), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handlers) createRep(w http.ResponseWriter, r *http.Request) {
	req, err := decodeJSON[dto.CreateRepRequest](r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	resp, err := h.auth.CreateRep(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *handlers) deleteRep(w http.ResponseWriter, r *http.Request) {
	req, err := decodeJSON[dto.DeleteRepRequest](r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.auth.DeleteRep(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// stores

func (h *handlers) listStores(w http.ResponseWriter, r *http.Request) {
	resp, err := h.sales.ListStores(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handlers) addStore(w http.ResponseWriter, r *http.Request) {
	req, err := decodeJSON[dto.StoreInsert](r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	resp, err := h.sales.AddStore(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *handlers) getStore(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	resp, err := h.sales.GetStore(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handlers) updateStore(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	req, err := decodeJSON[dto.StoreInsert](r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	resp, err := h.sales.UpdateStore(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handlers) deleteStore(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.sales.DeleteStore(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// importStores accepts either a raw text/csv body or a multipart form with
// the csv under "file".
func (h *handlers) importStores(w http.ResponseWriter, r *http.Request) {
	if err := h.limiter.CheckImport(middleware.GetClientIP(r.Context())); err != nil {
		writeError(w, r, status.Error(codes.ResourceExhausted, err.Error()))
		return
	}

	var body io.Reader = r.Body
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		f, _, err := r.FormFile("file")
		if err != nil {
			writeError(w, r, gerr.InvalidArgument("missing csv file: %v", err))
			return
		}
		defer f.Close()
		body = f
	}

	resp, err := h.sales.ImportStores(r.Context(), body)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handlers) listStoreVisits(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	resp, err := h.sales.ListStoreVisits(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handlers) listStoreOrders(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	resp, err := h.sales.ListStoreOrders(r.Context(), id, reportRequest(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handlers) storeVelocity(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	resp, err := h.sales.StoreVelocity(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handlers) rewardStatus(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	resp, err := h.sales.RewardStatus(r.Context(), id, r.URL.Query().Get("month"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handlers) claimReward(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	resp, err := h.sales.ClaimReward(r.Context(), id, r.URL.Query().Get("month"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handlers) undoReward(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	resp, err := h.sales.UndoReward(r.Context(), id, r.URL.Query().Get("month"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handlers) todaySchedule(w http.ResponseWriter, r *http.Request) {
	resp, err := h.sales.TodaySchedule(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// products

func (h *handlers) listProducts(w http.ResponseWriter, r *http.Request) {
	resp, err := h.sales.ListProducts(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handlers) addProduct(w http.ResponseWriter, r *http.Request) {
	req, err := decodeJSON[dto.ProductInsert](r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	resp, err := h.sales.AddProduct(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *handlers) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	resp, err := h.sales.GetProduct(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handlers) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	req, err := decodeJSON[dto.ProductInsert](r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	resp, err := h.sales.UpdateProduct(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handlers) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.sales.DeleteProduct(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) setProductAvailability(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	req, err := decodeJSON[dto.SetProductAvailabilityRequest](r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	resp, err := h.sales.SetProductAvailability(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handlers) uploadProductImage(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	req, err := decodeJSON[dto.UploadProductImageRequest](r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	resp, err := h.sales.UploadProductImage(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// visits

func (h *handlers) listVisits(w http.ResponseWriter, r *http.Request) {
	resp, err := h.sales.ListVisits(r.Context(), reportRequest(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handlers) addVisit(w http.ResponseWriter, r *http.Request) {
	req, err := decodeJSON[dto.VisitInsert](r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	resp, err := h.sales.AddVisit(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *handlers) deleteVisit(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.sales.DeleteVisit(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// orders

func (h *handlers) listOrders(w http.ResponseWriter, r *http.Request) {
	resp, err := h.sales.ListOrders(r.Context(), reportRequest(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handlers) createOrder(w http.ResponseWriter, r *http.Request) {
	req, err := decodeJSON[dto.OrderNew](r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	resp, err := h.sales.CreateOrder(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *handlers) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	resp, err := h.sales.GetOrder(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handlers) getOrderByUUID(w http.ResponseWriter, r *http.Request) {
	resp, err := h.sales.GetOrderByUUID(r.Context(), chi.URLParam(r, "uuid"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handlers) deleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.sales.DeleteOrder(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// reports

func (h *handlers) storeReport(w http.ResponseWriter, r *http.Request) {
	resp, err := h.sales.StoreReport(r.Context(), reportRequest(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handlers) productReport(w http.ResponseWriter, r *http.Request) {
	resp, err := h.sales.ProductReport(r.Context(), reportRequest(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handlers) snapshot(w http.ResponseWriter, r *http.Request) {
	resp, err := h.sales.GetSnapshot(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handlers) dashboard(w http.ResponseWriter, r *http.Request) {
	resp, err := h.sales.GetDashboard(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handlers) getTarget(w http.ResponseWriter, r *http.Request) {
	resp, err := h.sales.GetTarget(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handlers) saveTarget(w http.ResponseWriter, r *http.Request) {
	req, err := decodeJSON[dto.MonthlyTarget](r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	resp, err := h.sales.SaveTarget(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
