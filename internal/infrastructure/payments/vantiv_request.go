package payments

import (
	"strconv"
	"strings"

	"vantivpay/internal/domain/entities"
)

// gatewayRequest bridges a request builder's output to the transport and
// decoder step: the operation kind, the rendered body and the money the
// resulting Authorization should carry.
type gatewayRequest struct {
	kind  entities.TransactionType
	money *int64
	body  string
}

// requestElementName maps an operation kind to its request element. The
// protocol is inconsistent for token registration only.
func requestElementName(kind entities.TransactionType) string {
	if kind == entities.TxnRegisterToken {
		return "registerTokenRequest"
	}
	return string(kind)
}

// responseElementName maps an operation kind to the reply subtree holding
// its fields. echeckSale replies arrive under echeckSalesResponse.
func responseElementName(kind entities.TransactionType) string {
	if kind == entities.TxnEcheckSale {
		return "echeckSalesResponse"
	}
	return string(kind) + "Response"
}

// requestBuilder is implemented once per payment-method family. A family
// implements only the operations meaningful for it; the rest fall through
// to the embedded unsupportedOperations.
type requestBuilder interface {
	authorize(money *int64, method entities.PaymentMethod, opts entities.TransactionOptions) (*gatewayRequest, error)
	purchase(money *int64, method entities.PaymentMethod, opts entities.TransactionOptions) (*gatewayRequest, error)
	capture(money *int64, method entities.PaymentMethod, opts entities.TransactionOptions) (*gatewayRequest, error)
	refund(money *int64, method entities.PaymentMethod, opts entities.TransactionOptions) (*gatewayRequest, error)
	void(method entities.PaymentMethod, opts entities.TransactionOptions) (*gatewayRequest, error)
	store(method entities.PaymentMethod, opts entities.TransactionOptions) (*gatewayRequest, error)
}

type unsupportedOperations struct{}

func (unsupportedOperations) authorize(*int64, entities.PaymentMethod, entities.TransactionOptions) (*gatewayRequest, error) {
	return nil, ErrOperationNotSupported
}

func (unsupportedOperations) purchase(*int64, entities.PaymentMethod, entities.TransactionOptions) (*gatewayRequest, error) {
	return nil, ErrOperationNotSupported
}

func (unsupportedOperations) capture(*int64, entities.PaymentMethod, entities.TransactionOptions) (*gatewayRequest, error) {
	return nil, ErrOperationNotSupported
}

func (unsupportedOperations) refund(*int64, entities.PaymentMethod, entities.TransactionOptions) (*gatewayRequest, error) {
	return nil, ErrOperationNotSupported
}

func (unsupportedOperations) void(entities.PaymentMethod, entities.TransactionOptions) (*gatewayRequest, error) {
	return nil, ErrOperationNotSupported
}

func (unsupportedOperations) store(entities.PaymentMethod, entities.TransactionOptions) (*gatewayRequest, error) {
	return nil, ErrOperationNotSupported
}

// baseBuilder carries the gateway configuration and the field-building
// rules shared by every family.
type baseBuilder struct {
	cfg Config
}

type buildParams struct {
	money *int64
	// withOrderID controls the structural orderId child; follow-up requests
	// referencing a litleTxnId never carry one.
	withOrderID bool
	opts        entities.TransactionOptions
}

// buildRequest assembles the authenticated envelope around one operation
// element and leaves the operation-specific children to fill.
func (b baseBuilder) buildRequest(kind entities.TransactionType, p buildParams, fill func(op *xmlElement)) (*gatewayRequest, error) {
	root := newElement(requestRoot).
		setAttr("merchantId", b.cfg.MerchantID).
		setAttr("version", SchemaVersion).
		setAttr("xmlns", XMLNamespace)

	auth := root.addChild(newElement("authentication"))
	auth.addText("user", b.cfg.Login)
	auth.addText("password", b.cfg.Password)

	op := root.addChild(newElement(requestElementName(kind)))
	op.setAttr("id", truncate(firstNonEmpty(p.opts.ID, p.opts.OrderID), orderIDMaxLength))
	op.setAttr("reportGroup", firstNonEmpty(p.opts.Merchant, DefaultReportGroup))
	if p.opts.Customer != "" {
		op.setAttr("customerId", p.opts.Customer)
	}
	if p.withOrderID {
		op.addText("orderId", truncate(p.opts.OrderID, orderIDMaxLength))
	}
	fill(op)

	body, err := root.render()
	if err != nil {
		return nil, err
	}
	return &gatewayRequest{kind: kind, money: p.money, body: body}, nil
}

// personName resolves the name precedence rule: payment-method-level name
// components win over address-level ones when both exist.
func personName(method entities.PaymentMethod, addr entities.Address) (name, first, last string) {
	name, first, last = addr.Name, addr.FirstName, addr.LastName
	switch m := method.(type) {
	case entities.CreditCard:
		name = firstNonEmpty(m.Name(), name)
		first = firstNonEmpty(m.FirstName, first)
		last = firstNonEmpty(m.LastName, last)
	case entities.NetworkTokenCard:
		name = firstNonEmpty(m.Name(), name)
		first = firstNonEmpty(m.FirstName, first)
		last = firstNonEmpty(m.LastName, last)
	case entities.Check:
		name = firstNonEmpty(m.Name(), name)
		first = firstNonEmpty(m.FirstName, first)
		last = firstNonEmpty(m.LastName, last)
	}
	return name, first, last
}

// addAddress appends the address fields common to billing and shipping.
func addAddress(parent *xmlElement, addr entities.Address, name, first, last string, opts entities.TransactionOptions) {
	parent.addTextIf("name", name)
	parent.addTextIf("firstName", first)
	parent.addTextIf("lastName", last)
	parent.addTextIf("addressLine1", addr.Address1)
	parent.addTextIf("addressLine2", addr.Address2)
	parent.addTextIf("city", addr.City)
	parent.addTextIf("state", addr.State)
	parent.addTextIf("zip", addr.Zip)
	parent.addTextIf("country", addr.Country)
	parent.addTextIf("email", opts.Email)
	parent.addTextIf("phone", addr.Phone)
}

// addBillToAddress emits billToAddress unconditionally; the schema expects
// the element even when every field is blank.
func addBillToAddress(op *xmlElement, method entities.PaymentMethod, opts entities.TransactionOptions) {
	var addr entities.Address
	if opts.BillingAddress != nil {
		addr = *opts.BillingAddress
	}
	name, first, last := personName(method, addr)

	billTo := op.addChild(newElement("billToAddress"))
	addAddress(billTo, addr, name, first, last, opts)
	billTo.addTextIf("companyName", addr.Company)
}

// addShipToAddress emits shipToAddress only when a shipping address option
// is present. Shipping accepts the full name only.
func addShipToAddress(op *xmlElement, opts entities.TransactionOptions) {
	if opts.ShippingAddress == nil {
		return
	}
	addr := *opts.ShippingAddress
	shipTo := op.addChild(newElement("shipToAddress"))
	addAddress(shipTo, addr, addr.Name, "", "", opts)
}

// addCustomBilling emits the billing descriptor block only when at least
// one of the descriptor options is present.
func addCustomBilling(op *xmlElement, opts entities.TransactionOptions) {
	if opts.DescriptorName == "" && opts.DescriptorPhone == "" {
		return
	}
	custom := op.addChild(newElement("customBilling"))
	custom.addTextIf("phone", opts.DescriptorPhone)
	custom.addTextIf("descriptor", opts.DescriptorName)
}

// addOrderSource emits the explicit option or the plain ecommerce default.
// The card builder layers apple-pay and retail detection on top.
func addOrderSource(op *xmlElement, opts entities.TransactionOptions) {
	op.addText("orderSource", firstNonEmpty(opts.OrderSource, SourceEcommerce))
}

// expDate formats month and year as MMYY, each zero-padded or truncated to
// exactly two digits. Returns "" when both components are blank.
func expDate(month, year string) string {
	return twoDigits(month) + twoDigits(year)
}

func twoDigits(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if len(s) > 2 {
		s = s[len(s)-2:]
	}
	if len(s) == 1 {
		s = "0" + s
	}
	return s
}

func formatMoney(money *int64) string {
	if money == nil {
		return ""
	}
	return strconv.FormatInt(*money, 10)
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
