package entities

// Result is the normalized outcome of a gateway operation. A decline is a
// Result with Success=false, never an error: the exchange worked, the
// processor said no.
type Result struct {
	Success bool
	Message string
	// Params is the flattened response field map (one nesting level folded
	// into parent_child keys). Unknown fields pass through verbatim.
	Params map[string]string
	// Authorization chains this transaction into a later capture/refund/void.
	Authorization *Authorization
	// AVSCode is the single-letter semantic AVS code mapped from the raw
	// two-digit processor code; empty when the processor sent none or sent
	// an unmapped code.
	AVSCode string
	// CVVCode is the processor's card validation result, passed through.
	CVVCode string
}

// StoreResult is the outcome of the store (registerToken) operation. Store
// yields a bare vault token rather than an Authorization on purpose: a
// token is a payment method for future sales, not a transaction reference
// a void/capture/refund could follow up on.
type StoreResult struct {
	Success bool
	Message string
	Params  map[string]string
	Token   string
}
