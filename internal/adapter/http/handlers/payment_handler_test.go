package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vantivpay/internal/adapter/http/handlers/mocks"
	"vantivpay/internal/domain/entities"
	"vantivpay/internal/infrastructure/payments"
	"vantivpay/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newPaymentRouter(h *PaymentHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/v1/payments/authorize", h.Authorize)
	r.POST("/v1/payments/purchase", h.Purchase)
	r.POST("/v1/payments/capture", h.Capture)
	r.POST("/v1/payments/refund", h.Refund)
	r.POST("/v1/payments/void", h.Void)
	r.POST("/v1/payments/store", h.Store)
	r.POST("/v1/payments/verify", h.Verify)
	r.GET("/v1/payments/:id", h.GetByID)
	r.GET("/v1/orders/:order_id/payments", h.ListByOrderID)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPaymentHandler_Purchase(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc))

		w := postJSON(r, "/v1/payments/purchase", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing payment method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc))

		w := postJSON(r, "/v1/payments/purchase", `{"amount":100,"options":{"order_id":"order-1"}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc))

		now := time.Now().UTC()
		uc.EXPECT().Purchase(gomock.Any(), int64(100), gomock.Any(), gomock.Any()).
			Return(entities.Transaction{ID: "tx-1", OrderID: "order-1", Kind: entities.TxnSale, Success: true, Message: "Approved", VantivTxnID: "900001", Date: now}, nil)

		w := postJSON(r, "/v1/payments/purchase", `{"amount":100,"card":{"number":"4242424242424242","month":"9","year":"2021","brand":"visa"},"options":{"order_id":"order-1"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}

		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if got["id"] != "tx-1" || got["success"] != true || got["vantiv_txn_id"] != "900001" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("unsupported operation maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().Authorize(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Transaction{}, payments.ErrOperationNotSupported)

		w := postJSON(r, "/v1/payments/authorize", `{"amount":100,"check":{"routing_number":"011075150","account_number":"4099999992"}}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("transport failure maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().Purchase(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Transaction{}, &payments.TransportError{StatusCode: 503})

		w := postJSON(r, "/v1/payments/purchase", `{"amount":100,"card":{"number":"4242424242424242"}}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_FollowUps(t *testing.T) {
	t.Run("capture", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().Capture(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, money *int64, auth entities.Authorization, _ entities.TransactionOptions) (entities.Transaction, error) {
				if money == nil || *money != 50 {
					t.Fatalf("expected amount 50, got %v", money)
				}
				if auth.TxnID != "900001" || auth.TxnType != entities.TxnAuthorization {
					t.Fatalf("unexpected handle %+v", auth)
				}
				return entities.Transaction{ID: "tx-2", Kind: entities.TxnCapture, Success: true}, nil
			})

		w := postJSON(r, "/v1/payments/capture", `{"amount":50,"txn_id":"900001","kind":"authorization"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("void without txn id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc))

		w := postJSON(r, "/v1/payments/void", `{"kind":"sale"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("refund", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().Refund(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Transaction{ID: "tx-3", Kind: entities.TxnEcheckCredit, Success: true}, nil)

		w := postJSON(r, "/v1/payments/refund", `{"amount":2004,"txn_id":"900002","kind":"echeckSale"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_Store(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	r := newPaymentRouter(NewPaymentHandler(uc))

	uc.EXPECT().Store(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(entities.Transaction{ID: "tx-4", Kind: entities.TxnRegisterToken, Success: true, Token: "1111222233334444"}, nil)

	w := postJSON(r, "/v1/payments/store", `{"card":{"number":"4242424242424242","verification_value":"111"},"options":{"order_id":"order-1"}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if got["token"] != "1111222233334444" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestPaymentHandler_Verify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	r := newPaymentRouter(NewPaymentHandler(uc))

	uc.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(entities.Transaction{ID: "tx-5", Kind: entities.TxnAuthorization, Success: true}, nil)

	w := postJSON(r, "/v1/payments/verify", `{"card":{"number":"4242424242424242"}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestPaymentHandler_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Transaction{}, usecase.ErrTransactionNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		r := newPaymentRouter(NewPaymentHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "tx-1").Return(entities.Transaction{ID: "tx-1"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/tx-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_ListByOrderID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	r := newPaymentRouter(NewPaymentHandler(uc))

	uc.EXPECT().ListByOrderID(gomock.Any(), "order-1").
		Return([]entities.Transaction{{ID: "tx-1"}, {ID: "tx-2"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/orders/order-1/payments", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var got []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(got))
	}
}

func TestMapPaymentError(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{usecase.ErrInvalidAmount, http.StatusBadRequest},
		{usecase.ErrMissingPaymentMethod, http.StatusBadRequest},
		{payments.ErrUnsupportedPaymentMethod, http.StatusUnprocessableEntity},
		{payments.ErrOperationNotSupported, http.StatusUnprocessableEntity},
		{usecase.ErrTransactionNotFound, http.StatusNotFound},
		{payments.ErrMalformedResponse, http.StatusBadGateway},
		{&payments.TransportError{StatusCode: 500}, http.StatusBadGateway},
		{errors.New("anything else"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := mapPaymentError(c.err); got.HTTPStatus != c.want {
			t.Fatalf("mapPaymentError(%v) = %d, want %d", c.err, got.HTTPStatus, c.want)
		}
	}
}
