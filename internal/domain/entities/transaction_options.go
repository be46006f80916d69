package entities

// Address holds billing or shipping address fields. Blank fields are never
// emitted on the wire.
type Address struct {
	Name      string
	FirstName string
	LastName  string
	Address1  string
	Address2  string
	City      string
	State     string
	Zip       string
	Country   string
	Company   string
	Phone     string
}

// TransactionOptions enumerates every per-call option the request builders
// recognize. Unset fields fall back to explicit defaults inside the
// builders instead of absence checks scattered through encoding logic.
type TransactionOptions struct {
	// OrderID names the merchant order; it also derives the transaction id
	// attribute when ID is unset. Truncated to 24 characters on the wire.
	OrderID string
	// ID is an explicit dedup/transaction id overriding the OrderID-derived
	// one.
	ID string
	// Merchant overrides the reportGroup attribute.
	Merchant string
	// Customer fills the customerId attribute.
	Customer string
	Email    string
	// OrderSource overrides the builder's default (ecommerce/retail/applepay).
	OrderSource string
	// DescriptorName/DescriptorPhone populate the customBilling block.
	DescriptorName  string
	DescriptorPhone string
	// DebtRepayment marks card authorize/purchase as debt repayment.
	DebtRepayment bool
	// Amount overrides the handle amount for a partial auth reversal.
	Amount *int64

	BillingAddress  *Address
	ShippingAddress *Address
}
