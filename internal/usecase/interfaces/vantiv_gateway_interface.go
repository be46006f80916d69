package interfaces

import (
	"context"

	"vantivpay/internal/domain/entities"
)

// IVantivGateway abstracts the Vantiv (LitleXML) payment processor.
//
// Amounts are in minor currency units (cents). A declined transaction is a
// Result with Success=false, not an error; errors mean the exchange itself
// failed (transport, malformed reply, unsupported method/operation).
type IVantivGateway interface {
	Authorize(ctx context.Context, money int64, method entities.PaymentMethod, opts entities.TransactionOptions) (*entities.Result, error)
	Purchase(ctx context.Context, money int64, method entities.PaymentMethod, opts entities.TransactionOptions) (*entities.Result, error)
	Capture(ctx context.Context, money *int64, method entities.PaymentMethod, opts entities.TransactionOptions) (*entities.Result, error)
	Refund(ctx context.Context, money *int64, method entities.PaymentMethod, opts entities.TransactionOptions) (*entities.Result, error)
	Void(ctx context.Context, method entities.PaymentMethod, opts entities.TransactionOptions) (*entities.Result, error)
	Store(ctx context.Context, method entities.PaymentMethod, opts entities.TransactionOptions) (*entities.StoreResult, error)
	Verify(ctx context.Context, method entities.PaymentMethod, opts entities.TransactionOptions) (*entities.Result, error)
}
