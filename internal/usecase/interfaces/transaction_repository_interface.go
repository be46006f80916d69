package interfaces

import (
	"context"

	"vantivpay/internal/domain/entities"
)

// ITransactionRepository abstracts DynamoDB persistence for Transaction.
type ITransactionRepository interface {
	Create(ctx context.Context, t entities.Transaction) (entities.Transaction, error)
	GetByID(ctx context.Context, id string) (entities.Transaction, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Transaction, error)
}
