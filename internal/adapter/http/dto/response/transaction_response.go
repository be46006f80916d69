package response

import (
	"time"

	"vantivpay/internal/domain/entities"
)

type TransactionResponse struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"order_id,omitempty"`
	Kind        string    `json:"kind"`
	Amount      *int64    `json:"amount,omitempty"`
	Success     bool      `json:"success"`
	Message     string    `json:"message"`
	VantivTxnID string    `json:"vantiv_txn_id,omitempty"`
	Token       string    `json:"token,omitempty"`
	AVSCode     string    `json:"avs_code,omitempty"`
	CVVCode     string    `json:"cvv_code,omitempty"`
	Date        time.Time `json:"date"`

	Params map[string]string `json:"params,omitempty"`
}

func FromTransaction(t entities.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		OrderID:     t.OrderID,
		Kind:        string(t.Kind),
		Amount:      t.Amount,
		Success:     t.Success,
		Message:     t.Message,
		VantivTxnID: t.VantivTxnID,
		Token:       t.Token,
		AVSCode:     t.AVSCode,
		CVVCode:     t.CVVCode,
		Date:        t.Date,
		Params:      t.Params,
	}
}

func FromTransactions(ts []entities.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, FromTransaction(t))
	}
	return out
}
