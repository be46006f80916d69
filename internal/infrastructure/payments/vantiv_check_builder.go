package payments

import "vantivpay/internal/domain/entities"

// checkRequestBuilder encodes echeck bank accounts.
type checkRequestBuilder struct {
	unsupportedOperations
	baseBuilder
}

func (b *checkRequestBuilder) purchase(money *int64, method entities.PaymentMethod, opts entities.TransactionOptions) (*gatewayRequest, error) {
	check, ok := method.(entities.Check)
	if !ok {
		return nil, ErrUnsupportedPaymentMethod
	}
	return b.buildRequest(entities.TxnEcheckSale, buildParams{money: money, withOrderID: true, opts: opts}, func(op *xmlElement) {
		op.addTextIf("amount", formatMoney(money))
		addOrderSource(op, opts)
		addBillToAddress(op, method, opts)
		addShipToAddress(op, opts)
		addEcheck(op, check)
		addCustomBilling(op, opts)
	})
}

func (b *checkRequestBuilder) refund(money *int64, method entities.PaymentMethod, opts entities.TransactionOptions) (*gatewayRequest, error) {
	check, ok := method.(entities.Check)
	if !ok {
		return nil, ErrUnsupportedPaymentMethod
	}
	return b.buildRequest(entities.TxnEcheckCredit, buildParams{money: money, withOrderID: true, opts: opts}, func(op *xmlElement) {
		op.addTextIf("amount", formatMoney(money))
		addOrderSource(op, opts)
		addBillToAddress(op, method, opts)
		addEcheck(op, check)
		addCustomBilling(op, opts)
	})
}

func (b *checkRequestBuilder) store(method entities.PaymentMethod, opts entities.TransactionOptions) (*gatewayRequest, error) {
	check, ok := method.(entities.Check)
	if !ok {
		return nil, ErrUnsupportedPaymentMethod
	}
	return b.buildRequest(entities.TxnRegisterToken, buildParams{withOrderID: true, opts: opts}, func(op *xmlElement) {
		forToken := op.addChild(newElement("echeckForToken"))
		forToken.addTextIf("accNum", check.AccountNumber)
		forToken.addTextIf("routingNum", check.RoutingNumber)
	})
}

func addEcheck(op *xmlElement, check entities.Check) {
	el := op.addChild(newElement("echeck"))
	el.addTextIf("accType", checkAccountType(check.AccountHolderType, check.AccountType))
	el.addTextIf("accNum", check.AccountNumber)
	el.addTextIf("routingNum", check.RoutingNumber)
	el.addTextIf("checkNum", check.Number)
}

func checkAccountType(holderType, accountType string) string {
	byAccount, ok := checkType[holderType]
	if !ok {
		return ""
	}
	return byAccount[accountType]
}
