package entities

// TransactionType is the LitleXML operation kind. The value stored on an
// Authorization drives which follow-up element a later void/refund resolves
// to, so the set below must stay in sync with the gateway's transition
// tables.
type TransactionType string

const (
	TxnAuthorization TransactionType = "authorization"
	TxnSale          TransactionType = "sale"
	TxnCapture       TransactionType = "capture"
	TxnCredit        TransactionType = "credit"
	TxnVoid          TransactionType = "void"
	TxnAuthReversal  TransactionType = "authReversal"
	TxnEcheckSale    TransactionType = "echeckSale"
	TxnEcheckCredit  TransactionType = "echeckCredit"
	TxnEcheckVoid    TransactionType = "echeckVoid"
	TxnRegisterToken TransactionType = "registerToken"
)

// Authorization references a previous Vantiv transaction. It is returned by
// authorize/purchase/refund and is the payment method a later capture,
// refund or void is dispatched on. It carries just enough to pick the right
// follow-up request: the remote transaction id, the original operation kind
// and, for reversals, the original amount.
type Authorization struct {
	Amount  *int64 // minor currency units; nil when the operation had none
	TxnID   string
	TxnType TransactionType
}

func (Authorization) MethodKind() MethodKind { return MethodAuthorization }

// Equal reports structural equality over all three fields.
func (a Authorization) Equal(other Authorization) bool {
	if a.TxnID != other.TxnID || a.TxnType != other.TxnType {
		return false
	}
	if (a.Amount == nil) != (other.Amount == nil) {
		return false
	}
	return a.Amount == nil || *a.Amount == *other.Amount
}
