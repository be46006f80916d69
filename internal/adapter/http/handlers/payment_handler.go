package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "vantivpay/internal/adapter/http/dto/request"
	response "vantivpay/internal/adapter/http/dto/response"
	"vantivpay/internal/domain/entities"
	"vantivpay/internal/infrastructure/payments"
	"vantivpay/internal/usecase"
	"vantivpay/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid payment payload", http.StatusBadRequest)

// PaymentHandler handles HTTP requests for Vantiv payment operations.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// Authorize reserves funds against a payment method.
func (h *PaymentHandler) Authorize(c *gin.Context) {
	h.submit(c, "authorize", h.usecase.Authorize)
}

// Purchase authorizes and captures in one step.
func (h *PaymentHandler) Purchase(c *gin.Context) {
	h.submit(c, "purchase", h.usecase.Purchase)
}

// submit is the shared body for the amount+method operations.
func (h *PaymentHandler) submit(c *gin.Context, op string, call func(ctx context.Context, money int64, method entities.PaymentMethod, opts entities.TransactionOptions) (entities.Transaction, error)) {
	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] %s invalid payload err=%v", op, err)
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	method, err := payload.PaymentMethod()
	if err != nil {
		log.Printf("[payment][handler] %s invalid method err=%v", op, err)
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	var money int64
	if payload.Amount != nil {
		money = *payload.Amount
	}

	created, err := call(c.Request.Context(), money, method, payload.TransactionOptions())
	if err != nil {
		log.Printf("[payment][handler] %s failed err=%v", op, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] %s done transaction_id=%s success=%v", op, created.ID, created.Success)
	c.JSON(http.StatusOK, response.FromTransaction(created))
}

// Capture settles a prior authorization.
func (h *PaymentHandler) Capture(c *gin.Context) {
	h.followUp(c, "capture", func(ctx context.Context, money *int64, auth entities.Authorization, opts entities.TransactionOptions) (entities.Transaction, error) {
		return h.usecase.Capture(ctx, money, auth, opts)
	})
}

// Refund returns funds from a prior transaction.
func (h *PaymentHandler) Refund(c *gin.Context) {
	h.followUp(c, "refund", func(ctx context.Context, money *int64, auth entities.Authorization, opts entities.TransactionOptions) (entities.Transaction, error) {
		return h.usecase.Refund(ctx, money, auth, opts)
	})
}

// Void cancels a same-day transaction.
func (h *PaymentHandler) Void(c *gin.Context) {
	h.followUp(c, "void", func(ctx context.Context, _ *int64, auth entities.Authorization, opts entities.TransactionOptions) (entities.Transaction, error) {
		return h.usecase.Void(ctx, auth, opts)
	})
}

func (h *PaymentHandler) followUp(c *gin.Context, op string, call func(ctx context.Context, money *int64, auth entities.Authorization, opts entities.TransactionOptions) (entities.Transaction, error)) {
	var payload request.ReferenceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] %s invalid payload err=%v", op, err)
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	auth, err := payload.Authorization()
	if err != nil {
		log.Printf("[payment][handler] %s invalid reference err=%v", op, err)
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	created, err := call(c.Request.Context(), payload.Amount, auth, payload.TransactionOptions())
	if err != nil {
		log.Printf("[payment][handler] %s failed txn_id=%s err=%v", op, auth.TxnID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] %s done transaction_id=%s success=%v", op, created.ID, created.Success)
	c.JSON(http.StatusOK, response.FromTransaction(created))
}

// Store exchanges a payment method for a vault token.
func (h *PaymentHandler) Store(c *gin.Context) {
	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] store invalid payload err=%v", err)
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	method, err := payload.PaymentMethod()
	if err != nil {
		log.Printf("[payment][handler] store invalid method err=%v", err)
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Store(c.Request.Context(), method, payload.TransactionOptions())
	if err != nil {
		log.Printf("[payment][handler] store failed err=%v", err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] store done transaction_id=%s success=%v", created.ID, created.Success)
	c.JSON(http.StatusOK, response.FromTransaction(created))
}

// Verify checks a payment method without moving funds.
func (h *PaymentHandler) Verify(c *gin.Context) {
	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] verify invalid payload err=%v", err)
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	method, err := payload.PaymentMethod()
	if err != nil {
		log.Printf("[payment][handler] verify invalid method err=%v", err)
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Verify(c.Request.Context(), method, payload.TransactionOptions())
	if err != nil {
		log.Printf("[payment][handler] verify failed err=%v", err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] verify done transaction_id=%s success=%v", created.ID, created.Success)
	c.JSON(http.StatusOK, response.FromTransaction(created))
}

// GetByID returns one recorded transaction.
func (h *PaymentHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	got, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[payment][handler] get failed id=%s err=%v", id, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTransaction(got))
}

// ListByOrderID returns every recorded transaction for an order.
func (h *PaymentHandler) ListByOrderID(c *gin.Context) {
	orderID := c.Param("order_id")
	got, err := h.usecase.ListByOrderID(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[payment][handler] list failed order_id=%s err=%v", orderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTransactions(got))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrMissingPaymentMethod),
		errors.Is(err, usecase.ErrInvalidTransactionID),
		errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, payments.ErrUnsupportedPaymentMethod):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_PAYMENT_METHOD", "Unsupported payment method", http.StatusUnprocessableEntity)
	case errors.Is(err, payments.ErrOperationNotSupported):
		return pkg.NewDomainErrorSimple("OPERATION_NOT_SUPPORTED", "Operation not supported for this payment method", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrTransactionNotFound):
		return pkg.NewDomainErrorSimple("TRANSACTION_NOT_FOUND", "Transaction not found", http.StatusNotFound)
	case errors.Is(err, payments.ErrMalformedResponse):
		return pkg.NewDomainError("PROCESSOR_BAD_RESPONSE", "Payment processor returned an unreadable response", err, http.StatusBadGateway)
	case isTransportError(err):
		return pkg.NewDomainError("PROCESSOR_UNAVAILABLE", "Payment processor unavailable", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isTransportError(err error) bool {
	var transportErr *payments.TransportError
	return errors.As(err, &transportErr)
}
