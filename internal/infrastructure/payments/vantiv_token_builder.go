package payments

import "vantivpay/internal/domain/entities"

// tokenRequestBuilder encodes vault tokens. Tokens cannot be stored again,
// so store stays unsupported.
type tokenRequestBuilder struct {
	unsupportedOperations
	baseBuilder
}

func (b *tokenRequestBuilder) authorize(money *int64, method entities.PaymentMethod, opts entities.TransactionOptions) (*gatewayRequest, error) {
	token, ok := method.(entities.Token)
	if !ok {
		return nil, ErrUnsupportedPaymentMethod
	}
	return b.buildRequest(entities.TxnAuthorization, buildParams{money: money, withOrderID: true, opts: opts}, func(op *xmlElement) {
		op.addTextIf("amount", formatMoney(money))
		addOrderSource(op, opts)
		addBillToAddress(op, method, opts)
		addShipToAddress(op, opts)
		addToken(op, token)
		addCustomBilling(op, opts)
	})
}

func (b *tokenRequestBuilder) purchase(money *int64, method entities.PaymentMethod, opts entities.TransactionOptions) (*gatewayRequest, error) {
	token, ok := method.(entities.Token)
	if !ok {
		return nil, ErrUnsupportedPaymentMethod
	}
	return b.buildRequest(entities.TxnSale, buildParams{money: money, withOrderID: true, opts: opts}, func(op *xmlElement) {
		op.addTextIf("amount", formatMoney(money))
		addOrderSource(op, opts)
		addBillToAddress(op, method, opts)
		addShipToAddress(op, opts)
		addToken(op, token)
		addCustomBilling(op, opts)
	})
}

func (b *tokenRequestBuilder) refund(money *int64, method entities.PaymentMethod, opts entities.TransactionOptions) (*gatewayRequest, error) {
	token, ok := method.(entities.Token)
	if !ok {
		return nil, ErrUnsupportedPaymentMethod
	}
	return b.buildRequest(entities.TxnCredit, buildParams{money: money, withOrderID: true, opts: opts}, func(op *xmlElement) {
		op.addTextIf("amount", formatMoney(money))
		addOrderSource(op, opts)
		addBillToAddress(op, method, opts)
		addToken(op, token)
		addCustomBilling(op, opts)
	})
}

func addToken(op *xmlElement, token entities.Token) {
	el := op.addChild(newElement("token"))
	el.addTextIf("litleToken", token.Value)
	el.addTextIf("expDate", expDate(token.Month, token.Year))
	el.addTextIf("cardValidationNum", token.VerificationValue)
}
