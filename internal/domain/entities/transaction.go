package entities

import "time"

// Transaction is the audit record persisted for every gateway exchange,
// approved or declined. The gateway core itself is stateless; this table
// exists for traceability and reconciliation only, follow-up operations
// are driven by the caller-held Authorization.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
type Transaction struct {
	ID          string          `json:"id"`
	OrderID     string          `json:"order_id"`
	Kind        TransactionType `json:"kind"`
	Amount      *int64          `json:"amount,omitempty"`
	Success     bool            `json:"success"`
	Message     string          `json:"message"`
	VantivTxnID string          `json:"vantiv_txn_id,omitempty"`
	Token       string          `json:"token,omitempty"`
	AVSCode     string          `json:"avs_code,omitempty"`
	CVVCode     string          `json:"cvv_code,omitempty"`
	Date        time.Time       `json:"date"`

	// Params keeps the full flattened processor response for audit.
	Params map[string]string `json:"params,omitempty"`
}
