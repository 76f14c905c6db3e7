package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"billing_saas/internal/adapter/http/handlers/mocks"
	"billing_saas/internal/domain/billing"
	"billing_saas/internal/usecase"
	"billing_saas/pkg"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestFinancialSummaryHandler_GetClientSummary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *FinancialSummaryHandler) *gin.Engine {
		r := gin.New()
		r.GET("/v1/clients/:client_id/summary", h.GetClientSummary)
		return r
	}

	t.Run("success returns bucket totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFinancialSummaryUseCase(ctrl)
		h := NewFinancialSummaryHandler(uc)

		uc.EXPECT().GetClientSummary(gomock.Any(), "c-1", time.Time{}, time.Time{}).Return(billing.Summary{
			Unbilled: billing.BucketTotals{Minutes: decimal.NewFromInt(120), Amount: decimal.NewFromInt(200)},
			Billed:   billing.BucketTotals{Minutes: decimal.NewFromInt(90), Amount: decimal.NewFromInt(150)},
			Paid:     billing.BucketTotals{Minutes: decimal.NewFromInt(30), Amount: decimal.NewFromInt(50)},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/clients/c-1/summary", nil)
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		unbilled := body["unbilled"].(map[string]interface{})
		if unbilled["minutes"] != "120" || unbilled["amount"] != "200" {
			t.Fatalf("unexpected unbilled bucket: %v", unbilled)
		}
		if body["total_minutes"] != "240" {
			t.Fatalf("unexpected total minutes: %v", body["total_minutes"])
		}
	})

	t.Run("window bounds are forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFinancialSummaryUseCase(ctrl)
		h := NewFinancialSummaryHandler(uc)

		from := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
		// Bare-date upper bound is inclusive of the whole day.
		to := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
		uc.EXPECT().GetClientSummary(gomock.Any(), "c-1", from, to).Return(billing.Summary{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/clients/c-1/summary?from=2026-05-01&to=2026-05-31", nil)
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("malformed bound maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFinancialSummaryUseCase(ctrl)
		h := NewFinancialSummaryHandler(uc)

		req := httptest.NewRequest(http.MethodGet, "/v1/clients/c-1/summary?from=yesterday", nil)
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}

		var httpErr pkg.HTTPError
		if err := json.Unmarshal(w.Body.Bytes(), &httpErr); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if httpErr.Code != "INVALID_WINDOW" {
			t.Fatalf("unexpected code: %s", httpErr.Code)
		}
	})

	t.Run("inverted window maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFinancialSummaryUseCase(ctrl)
		h := NewFinancialSummaryHandler(uc)

		uc.EXPECT().GetClientSummary(gomock.Any(), "c-1", gomock.Any(), gomock.Any()).Return(billing.Summary{}, usecase.ErrInvalidWindow)

		req := httptest.NewRequest(http.MethodGet, "/v1/clients/c-1/summary?from=2026-06-01&to=2026-05-01", nil)
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown client maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFinancialSummaryUseCase(ctrl)
		h := NewFinancialSummaryHandler(uc)

		uc.EXPECT().GetClientSummary(gomock.Any(), "c-gone", time.Time{}, time.Time{}).Return(billing.Summary{}, usecase.ErrClientNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/clients/c-gone/summary", nil)
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}

		var httpErr pkg.HTTPError
		if err := json.Unmarshal(w.Body.Bytes(), &httpErr); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if httpErr.Code != "CLIENT_NOT_FOUND" {
			t.Fatalf("unexpected code: %s", httpErr.Code)
		}
	})

	t.Run("repository failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFinancialSummaryUseCase(ctrl)
		h := NewFinancialSummaryHandler(uc)

		uc.EXPECT().GetClientSummary(gomock.Any(), "c-1", time.Time{}, time.Time{}).Return(billing.Summary{}, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/clients/c-1/summary", nil)
		w := httptest.NewRecorder()
		newRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
