package payments

import "vantivpay/internal/domain/entities"

// cardRequestBuilder encodes raw and network-tokenized cards. Both variants
// share one builder: a network token is a card plus a cryptogram block.
type cardRequestBuilder struct {
	unsupportedOperations
	baseBuilder
}

func (b *cardRequestBuilder) authorize(money *int64, method entities.PaymentMethod, opts entities.TransactionOptions) (*gatewayRequest, error) {
	card, ok := cardDetails(method)
	if !ok {
		return nil, ErrUnsupportedPaymentMethod
	}
	return b.buildRequest(entities.TxnAuthorization, buildParams{money: money, withOrderID: true, opts: opts}, func(op *xmlElement) {
		op.addTextIf("amount", formatMoney(money))
		addCardOrderSource(op, method, card, opts)
		addBillToAddress(op, method, opts)
		addShipToAddress(op, opts)
		addCard(op, card)
		addCardholderAuthentication(op, method)
		addPos(op, card)
		addCustomBilling(op, opts)
		addDebtRepayment(op, opts)
	})
}

func (b *cardRequestBuilder) purchase(money *int64, method entities.PaymentMethod, opts entities.TransactionOptions) (*gatewayRequest, error) {
	card, ok := cardDetails(method)
	if !ok {
		return nil, ErrUnsupportedPaymentMethod
	}
	return b.buildRequest(entities.TxnSale, buildParams{money: money, withOrderID: true, opts: opts}, func(op *xmlElement) {
		op.addTextIf("amount", formatMoney(money))
		addCardOrderSource(op, method, card, opts)
		addBillToAddress(op, method, opts)
		addShipToAddress(op, opts)
		addCard(op, card)
		addCardholderAuthentication(op, method)
		addCustomBilling(op, opts)
		addPos(op, card)
		addDebtRepayment(op, opts)
	})
}

func (b *cardRequestBuilder) refund(money *int64, method entities.PaymentMethod, opts entities.TransactionOptions) (*gatewayRequest, error) {
	card, ok := cardDetails(method)
	if !ok {
		return nil, ErrUnsupportedPaymentMethod
	}
	return b.buildRequest(entities.TxnCredit, buildParams{money: money, withOrderID: true, opts: opts}, func(op *xmlElement) {
		op.addTextIf("amount", formatMoney(money))
		addCardOrderSource(op, method, card, opts)
		addBillToAddress(op, method, opts)
		addCard(op, card)
		addCustomBilling(op, opts)
		addPos(op, card)
	})
}

func (b *cardRequestBuilder) store(method entities.PaymentMethod, opts entities.TransactionOptions) (*gatewayRequest, error) {
	card, ok := cardDetails(method)
	if !ok {
		return nil, ErrUnsupportedPaymentMethod
	}
	return b.buildRequest(entities.TxnRegisterToken, buildParams{withOrderID: true, opts: opts}, func(op *xmlElement) {
		op.addTextIf("accountNumber", card.Number)
		op.addTextIf("cardValidationNum", card.VerificationValue)
	})
}

func cardDetails(method entities.PaymentMethod) (entities.CreditCard, bool) {
	switch m := method.(type) {
	case entities.CreditCard:
		return m, true
	case entities.NetworkTokenCard:
		return m.CreditCard, true
	}
	return entities.CreditCard{}, false
}

// addCard encodes track data for card-present swipes, otherwise the
// individual card fields.
func addCard(op *xmlElement, card entities.CreditCard) {
	el := op.addChild(newElement("card"))
	if card.TrackData != "" {
		el.addText("track", card.TrackData)
		return
	}
	el.addTextIf("type", cardType[card.Brand])
	el.addTextIf("number", card.Number)
	el.addTextIf("expDate", expDate(card.Month, card.Year))
	el.addTextIf("cardValidationNum", card.VerificationValue)
}

// addCardholderAuthentication carries the network-token cryptogram.
func addCardholderAuthentication(op *xmlElement, method entities.PaymentMethod) {
	token, ok := method.(entities.NetworkTokenCard)
	if !ok {
		return
	}
	auth := op.addChild(newElement("cardholderAuthentication"))
	auth.addTextIf("authenticationValue", token.PaymentCryptogram)
}

// addCardOrderSource applies the order-source precedence for cards:
// explicit option, apple-pay marker, retail when swiped, else ecommerce.
func addCardOrderSource(op *xmlElement, method entities.PaymentMethod, card entities.CreditCard, opts entities.TransactionOptions) {
	source := opts.OrderSource
	if source == "" {
		if token, ok := method.(entities.NetworkTokenCard); ok && token.Source == "apple_pay" {
			source = SourceApplePay
		}
	}
	if source == "" {
		if card.TrackData != "" {
			source = SourceRetail
		} else {
			source = SourceEcommerce
		}
	}
	op.addText("orderSource", source)
}

// addPos emits the point-of-sale block for card-present transactions.
func addPos(op *xmlElement, card entities.CreditCard) {
	if card.TrackData == "" {
		return
	}
	pos := op.addChild(newElement("pos"))
	pos.addText("capability", posCapability)
	pos.addText("entryMode", posEntryMode)
	pos.addText("cardholderId", posCardholderID)
}

func addDebtRepayment(op *xmlElement, opts entities.TransactionOptions) {
	if opts.DebtRepayment {
		op.addText("debtRepayment", "true")
	}
}
