package payments

import "vantivpay/internal/domain/entities"

// authorizationRequestBuilder encodes follow-up operations against a prior
// Authorization. Follow-ups never resend the original payment data, so one
// builder serves every original family; the handle's stored transaction
// type decides which follow-up element is valid.
type authorizationRequestBuilder struct {
	unsupportedOperations
	baseBuilder
}

// voidTransitions maps an original operation kind to the element a void of
// it must emit. Kinds absent from the table void with the plain element.
var voidTransitions = map[entities.TransactionType]entities.TransactionType{
	entities.TxnAuthorization: entities.TxnAuthReversal,
	entities.TxnEcheckSale:    entities.TxnEcheckVoid,
	entities.TxnEcheckCredit:  entities.TxnEcheckVoid,
}

// refundTransitions is the same table for refunds; the default is credit.
var refundTransitions = map[entities.TransactionType]entities.TransactionType{
	entities.TxnEcheckSale: entities.TxnEcheckCredit,
}

func voidType(kind entities.TransactionType) entities.TransactionType {
	if next, ok := voidTransitions[kind]; ok {
		return next
	}
	return entities.TxnVoid
}

func refundType(kind entities.TransactionType) entities.TransactionType {
	if next, ok := refundTransitions[kind]; ok {
		return next
	}
	return entities.TxnCredit
}

func (b *authorizationRequestBuilder) capture(money *int64, method entities.PaymentMethod, opts entities.TransactionOptions) (*gatewayRequest, error) {
	auth, ok := method.(entities.Authorization)
	if !ok {
		return nil, ErrUnsupportedPaymentMethod
	}
	return b.buildRequest(entities.TxnCapture, buildParams{money: money, opts: opts}, func(op *xmlElement) {
		op.addTextIf("litleTxnId", auth.TxnID)
		// Absent amount means full capture.
		op.addTextIf("amount", formatMoney(money))
	})
}

func (b *authorizationRequestBuilder) refund(money *int64, method entities.PaymentMethod, opts entities.TransactionOptions) (*gatewayRequest, error) {
	auth, ok := method.(entities.Authorization)
	if !ok {
		return nil, ErrUnsupportedPaymentMethod
	}
	kind := refundType(auth.TxnType)
	return b.buildRequest(kind, buildParams{money: money, opts: opts}, func(op *xmlElement) {
		op.addTextIf("litleTxnId", auth.TxnID)
		op.addTextIf("amount", formatMoney(money))
		addCustomBilling(op, opts)
	})
}

func (b *authorizationRequestBuilder) void(method entities.PaymentMethod, opts entities.TransactionOptions) (*gatewayRequest, error) {
	auth, ok := method.(entities.Authorization)
	if !ok {
		return nil, ErrUnsupportedPaymentMethod
	}
	kind := voidType(auth.TxnType)
	return b.buildRequest(kind, buildParams{opts: opts}, func(op *xmlElement) {
		op.addTextIf("litleTxnId", auth.TxnID)
		if kind == entities.TxnAuthReversal {
			// Partial reversal when the caller overrides the amount; the
			// original authorized amount otherwise.
			money := opts.Amount
			if money == nil {
				money = auth.Amount
			}
			op.addTextIf("amount", formatMoney(money))
		}
	})
}
