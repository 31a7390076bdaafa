package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"alteapay/internal/adapter/http/handlers/mocks"
	"alteapay/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestSyncHandler_SyncPayments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty body syncs everything", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentSyncUseCase(ctrl)
		h := NewSyncHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/sync", h.SyncPayments)

		uc.EXPECT().SyncPayments(gomock.Any(), usecase.SyncFilters{}).
			Return(usecase.SyncReport{Total: 3, Synced: 3, Updated: 1}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/sync", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["total"] != float64(3) || body["updated"] != float64(1) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentSyncUseCase(ctrl)
		h := NewSyncHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/sync", h.SyncPayments)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/sync", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("filters are forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentSyncUseCase(ctrl)
		h := NewSyncHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/sync", h.SyncPayments)

		uc.EXPECT().SyncPayments(gomock.Any(), usecase.SyncFilters{CompanyID: "co-1", AgreementID: "ag-1"}).
			Return(usecase.SyncReport{Total: 1, Synced: 1, StuckFixed: 2}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/sync",
			bytes.NewBufferString(`{"company_id":"co-1","agreement_id":"ag-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["stuck_fixed"] != float64(2) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("health check on GET", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentSyncUseCase(ctrl)
		h := NewSyncHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/sync", h.SyncHealth)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/sync", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "ok" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("usecase failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentSyncUseCase(ctrl)
		h := NewSyncHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/sync", h.SyncPayments)

		uc.EXPECT().SyncPayments(gomock.Any(), gomock.Any()).
			Return(usecase.SyncReport{}, errors.New("db down"))

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/sync", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
