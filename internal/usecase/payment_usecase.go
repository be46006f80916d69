package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"vantivpay/internal/domain/entities"
	"vantivpay/internal/usecase/interfaces"
)

var (
	ErrTransactionNotFound     = errors.New("transaction not found")
	ErrInvalidTransactionID    = errors.New("invalid transaction id")
	ErrInvalidOrderID          = errors.New("invalid order_id")
	ErrInvalidAmount           = errors.New("invalid amount")
	ErrMissingPaymentMethod    = errors.New("missing payment method")
	ErrGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrRepositoryNotConfigured = errors.New("transaction repository not configured")
)

// IPaymentUseCase drives gateway operations and records every exchange,
// approved or declined, as a Transaction. Follow-up operations (capture,
// refund, void) take the Authorization handle returned by the earlier call.
type IPaymentUseCase interface {
	Authorize(ctx context.Context, money int64, method entities.PaymentMethod, opts entities.TransactionOptions) (entities.Transaction, error)
	Purchase(ctx context.Context, money int64, method entities.PaymentMethod, opts entities.TransactionOptions) (entities.Transaction, error)
	Capture(ctx context.Context, money *int64, auth entities.Authorization, opts entities.TransactionOptions) (entities.Transaction, error)
	Refund(ctx context.Context, money *int64, auth entities.Authorization, opts entities.TransactionOptions) (entities.Transaction, error)
	Void(ctx context.Context, auth entities.Authorization, opts entities.TransactionOptions) (entities.Transaction, error)
	Store(ctx context.Context, method entities.PaymentMethod, opts entities.TransactionOptions) (entities.Transaction, error)
	Verify(ctx context.Context, method entities.PaymentMethod, opts entities.TransactionOptions) (entities.Transaction, error)
	GetByID(ctx context.Context, id string) (entities.Transaction, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Transaction, error)
}

type PaymentUseCase struct {
	repo    interfaces.ITransactionRepository
	gateway interfaces.IVantivGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.ITransactionRepository, gateway interfaces.IVantivGateway) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, gateway: gateway}
}

func (u *PaymentUseCase) Authorize(ctx context.Context, money int64, method entities.PaymentMethod, opts entities.TransactionOptions) (entities.Transaction, error) {
	if err := u.checkWiring(); err != nil {
		return entities.Transaction{}, err
	}
	if money < 0 {
		return entities.Transaction{}, ErrInvalidAmount
	}
	if method == nil {
		return entities.Transaction{}, ErrMissingPaymentMethod
	}

	log.Printf("[payment][usecase] authorize start order_id=%s amount=%d", opts.OrderID, money)
	result, err := u.gateway.Authorize(ctx, money, method, opts)
	if err != nil {
		log.Printf("[payment][usecase] authorize gateway failed order_id=%s err=%v", opts.OrderID, err)
		return entities.Transaction{}, err
	}
	return u.record(ctx, entities.TxnAuthorization, opts.OrderID, result)
}

func (u *PaymentUseCase) Purchase(ctx context.Context, money int64, method entities.PaymentMethod, opts entities.TransactionOptions) (entities.Transaction, error) {
	if err := u.checkWiring(); err != nil {
		return entities.Transaction{}, err
	}
	if money < 0 {
		return entities.Transaction{}, ErrInvalidAmount
	}
	if method == nil {
		return entities.Transaction{}, ErrMissingPaymentMethod
	}

	log.Printf("[payment][usecase] purchase start order_id=%s amount=%d", opts.OrderID, money)
	result, err := u.gateway.Purchase(ctx, money, method, opts)
	if err != nil {
		log.Printf("[payment][usecase] purchase gateway failed order_id=%s err=%v", opts.OrderID, err)
		return entities.Transaction{}, err
	}
	return u.record(ctx, entities.TxnSale, opts.OrderID, result)
}

func (u *PaymentUseCase) Capture(ctx context.Context, money *int64, auth entities.Authorization, opts entities.TransactionOptions) (entities.Transaction, error) {
	if err := u.checkWiring(); err != nil {
		return entities.Transaction{}, err
	}
	if money != nil && *money < 0 {
		return entities.Transaction{}, ErrInvalidAmount
	}

	log.Printf("[payment][usecase] capture start txn_id=%s", auth.TxnID)
	result, err := u.gateway.Capture(ctx, money, auth, opts)
	if err != nil {
		log.Printf("[payment][usecase] capture gateway failed txn_id=%s err=%v", auth.TxnID, err)
		return entities.Transaction{}, err
	}
	return u.record(ctx, entities.TxnCapture, opts.OrderID, result)
}

func (u *PaymentUseCase) Refund(ctx context.Context, money *int64, auth entities.Authorization, opts entities.TransactionOptions) (entities.Transaction, error) {
	if err := u.checkWiring(); err != nil {
		return entities.Transaction{}, err
	}
	if money != nil && *money < 0 {
		return entities.Transaction{}, ErrInvalidAmount
	}

	log.Printf("[payment][usecase] refund start txn_id=%s", auth.TxnID)
	result, err := u.gateway.Refund(ctx, money, auth, opts)
	if err != nil {
		log.Printf("[payment][usecase] refund gateway failed txn_id=%s err=%v", auth.TxnID, err)
		return entities.Transaction{}, err
	}
	return u.record(ctx, resultKind(result, entities.TxnCredit), opts.OrderID, result)
}

func (u *PaymentUseCase) Void(ctx context.Context, auth entities.Authorization, opts entities.TransactionOptions) (entities.Transaction, error) {
	if err := u.checkWiring(); err != nil {
		return entities.Transaction{}, err
	}

	log.Printf("[payment][usecase] void start txn_id=%s original_kind=%s", auth.TxnID, auth.TxnType)
	result, err := u.gateway.Void(ctx, auth, opts)
	if err != nil {
		log.Printf("[payment][usecase] void gateway failed txn_id=%s err=%v", auth.TxnID, err)
		return entities.Transaction{}, err
	}
	return u.record(ctx, resultKind(result, entities.TxnVoid), opts.OrderID, result)
}

func (u *PaymentUseCase) Store(ctx context.Context, method entities.PaymentMethod, opts entities.TransactionOptions) (entities.Transaction, error) {
	if err := u.checkWiring(); err != nil {
		return entities.Transaction{}, err
	}
	if method == nil {
		return entities.Transaction{}, ErrMissingPaymentMethod
	}

	log.Printf("[payment][usecase] store start order_id=%s", opts.OrderID)
	result, err := u.gateway.Store(ctx, method, opts)
	if err != nil {
		log.Printf("[payment][usecase] store gateway failed order_id=%s err=%v", opts.OrderID, err)
		return entities.Transaction{}, err
	}

	t := entities.Transaction{
		ID:          uuid.NewString(),
		OrderID:     opts.OrderID,
		Kind:        entities.TxnRegisterToken,
		Success:     result.Success,
		Message:     result.Message,
		VantivTxnID: result.Params["litleTxnId"],
		Token:       result.Token,
		Date:        time.Now().UTC(),
		Params:      result.Params,
	}
	created, err := u.repo.Create(ctx, t)
	if err != nil {
		log.Printf("[payment][usecase] store repository create failed order_id=%s err=%v", opts.OrderID, err)
		return entities.Transaction{}, err
	}
	log.Printf("[payment][usecase] store done order_id=%s success=%v", opts.OrderID, created.Success)
	return created, nil
}

func (u *PaymentUseCase) Verify(ctx context.Context, method entities.PaymentMethod, opts entities.TransactionOptions) (entities.Transaction, error) {
	if err := u.checkWiring(); err != nil {
		return entities.Transaction{}, err
	}
	if method == nil {
		return entities.Transaction{}, ErrMissingPaymentMethod
	}

	log.Printf("[payment][usecase] verify start order_id=%s", opts.OrderID)
	result, err := u.gateway.Verify(ctx, method, opts)
	if err != nil {
		log.Printf("[payment][usecase] verify gateway failed order_id=%s err=%v", opts.OrderID, err)
		return entities.Transaction{}, err
	}
	return u.record(ctx, entities.TxnAuthorization, opts.OrderID, result)
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Transaction, error) {
	if u.repo == nil {
		return entities.Transaction{}, ErrRepositoryNotConfigured
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Transaction{}, ErrInvalidTransactionID
	}

	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Transaction{}, err
	}
	if t.ID == "" {
		return entities.Transaction{}, ErrTransactionNotFound
	}
	return t, nil
}

func (u *PaymentUseCase) ListByOrderID(ctx context.Context, orderID string) ([]entities.Transaction, error) {
	if u.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	return u.repo.ListByOrderID(ctx, orderID)
}

func (u *PaymentUseCase) checkWiring() error {
	if u.gateway == nil {
		return ErrGatewayNotConfigured
	}
	if u.repo == nil {
		return ErrRepositoryNotConfigured
	}
	return nil
}

// record persists the audit row for a completed exchange. Declines are
// recorded with Success=false, never dropped.
func (u *PaymentUseCase) record(ctx context.Context, kind entities.TransactionType, orderID string, result *entities.Result) (entities.Transaction, error) {
	t := entities.Transaction{
		ID:      uuid.NewString(),
		OrderID: orderID,
		Kind:    kind,
		Success: result.Success,
		Message: result.Message,
		AVSCode: result.AVSCode,
		CVVCode: result.CVVCode,
		Date:    time.Now().UTC(),
		Params:  result.Params,
	}
	if result.Authorization != nil {
		t.Amount = result.Authorization.Amount
		t.VantivTxnID = result.Authorization.TxnID
	}

	created, err := u.repo.Create(ctx, t)
	if err != nil {
		log.Printf("[payment][usecase] repository create failed order_id=%s kind=%s err=%v", orderID, kind, err)
		return entities.Transaction{}, err
	}
	log.Printf("[payment][usecase] %s done order_id=%s success=%v vantiv_txn_id=%s", kind, orderID, created.Success, created.VantivTxnID)
	return created, nil
}

// resultKind reads the operation the gateway actually sent off the handle
// it returned; voids and refunds resolve differently per original kind.
func resultKind(result *entities.Result, fallback entities.TransactionType) entities.TransactionType {
	if result.Authorization != nil && result.Authorization.TxnType != "" {
		return result.Authorization.TxnType
	}
	return fallback
}
