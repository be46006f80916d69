package payments

import "vantivpay/internal/domain/entities"

// registrationRequestBuilder encodes eProtect (paypage) registration ids.
type registrationRequestBuilder struct {
	unsupportedOperations
	baseBuilder
}

func (b *registrationRequestBuilder) authorize(money *int64, method entities.PaymentMethod, opts entities.TransactionOptions) (*gatewayRequest, error) {
	reg, ok := method.(entities.Registration)
	if !ok {
		return nil, ErrUnsupportedPaymentMethod
	}
	return b.buildRequest(entities.TxnAuthorization, buildParams{money: money, withOrderID: true, opts: opts}, func(op *xmlElement) {
		op.addTextIf("amount", formatMoney(money))
		addOrderSource(op, opts)
		addBillToAddress(op, method, opts)
		addShipToAddress(op, opts)
		addPaypage(op, reg)
		addCustomBilling(op, opts)
	})
}

func (b *registrationRequestBuilder) purchase(money *int64, method entities.PaymentMethod, opts entities.TransactionOptions) (*gatewayRequest, error) {
	reg, ok := method.(entities.Registration)
	if !ok {
		return nil, ErrUnsupportedPaymentMethod
	}
	return b.buildRequest(entities.TxnSale, buildParams{money: money, withOrderID: true, opts: opts}, func(op *xmlElement) {
		op.addTextIf("amount", formatMoney(money))
		addOrderSource(op, opts)
		addBillToAddress(op, method, opts)
		addShipToAddress(op, opts)
		addPaypage(op, reg)
		addCustomBilling(op, opts)
	})
}

func (b *registrationRequestBuilder) refund(money *int64, method entities.PaymentMethod, opts entities.TransactionOptions) (*gatewayRequest, error) {
	reg, ok := method.(entities.Registration)
	if !ok {
		return nil, ErrUnsupportedPaymentMethod
	}
	return b.buildRequest(entities.TxnCredit, buildParams{money: money, withOrderID: true, opts: opts}, func(op *xmlElement) {
		op.addTextIf("amount", formatMoney(money))
		addOrderSource(op, opts)
		addBillToAddress(op, method, opts)
		addPaypage(op, reg)
		addCustomBilling(op, opts)
	})
}

func (b *registrationRequestBuilder) store(method entities.PaymentMethod, opts entities.TransactionOptions) (*gatewayRequest, error) {
	reg, ok := method.(entities.Registration)
	if !ok {
		return nil, ErrUnsupportedPaymentMethod
	}
	return b.buildRequest(entities.TxnRegisterToken, buildParams{withOrderID: true, opts: opts}, func(op *xmlElement) {
		op.addTextIf("paypageRegistrationId", reg.ID)
	})
}

func addPaypage(op *xmlElement, reg entities.Registration) {
	paypage := op.addChild(newElement("paypage"))
	paypage.addTextIf("paypageRegistrationId", reg.ID)
	paypage.addTextIf("expDate", expDate(reg.Month, reg.Year))
	paypage.addTextIf("cardValidationNum", reg.VerificationValue)
}
