package payments

import (
	"context"
	"errors"
	"log"

	"vantivpay/internal/domain/entities"
)

// VantivGateway speaks the LitleXML online protocol (Vantiv bought Litle in
// 2012; the URLs and XML format still reference the old name).
const (
	TestURL = "https://www.testlitle.com/sandbox/communicator/online"
	LiveURL = "https://payments.litle.com/vap/communicator/online"

	SchemaVersion = "9.4"
	XMLNamespace  = "http://www.litle.com/schema"

	DefaultReportGroup = "Default Report Group"

	requestRoot  = "litleOnlineRequest"
	responseRoot = "litleOnlineResponse"

	orderIDMaxLength = 24

	posCapability   = "magstripe"
	posEntryMode    = "completeread"
	posCardholderID = "signature"

	SourceApplePay  = "applepay"
	SourceRetail    = "retail"
	SourceEcommerce = "ecommerce"

	responseCodeApproved = "000"
)

// registerTokenApproved also accepts the two "already registered" codes:
// tokenization is idempotent, a duplicate registration is not a failure.
var registerTokenApproved = map[string]bool{
	"000": true, // approved
	"801": true, // account number registered
	"802": true, // account number previously registered
}

// avsResponseCode maps the raw two-digit AVS code to the single-letter
// semantic code. Unmapped raw codes yield an empty semantic code.
var avsResponseCode = map[string]string{
	"00": "Y",
	"01": "X",
	"02": "D",
	"10": "Z",
	"11": "W",
	"12": "A",
	"13": "A",
	"14": "P",
	"20": "N",
	"30": "S",
	"31": "R",
	"32": "U",
	"33": "R",
	"34": "I",
	"40": "E",
}

var cardType = map[string]string{
	"visa":             "VI",
	"master":           "MC",
	"american_express": "AX",
	"discover":         "DI",
	"jcb":              "JC",
	"diners_club":      "DC",
}

var checkType = map[string]map[string]string{
	"personal": {
		"checking": "Checking",
		"savings":  "Savings",
	},
	"business": {
		"checking": "Corporate",
		"savings":  "Corp Savings",
	},
}

var (
	ErrMissingCredentials       = errors.New("missing vantiv credentials")
	ErrUnsupportedPaymentMethod = errors.New("unsupported payment method")
	ErrOperationNotSupported    = errors.New("gateway operation not supported")
	ErrMalformedResponse        = errors.New("malformed gateway response")
)

// Config carries the merchant credentials and endpoint selection. It is
// passed by value into every request builder at construction time.
type Config struct {
	Login      string
	Password   string
	MerchantID string
	// URL overrides endpoint selection entirely when set.
	URL string
	// Test selects the sandbox endpoint when URL is unset.
	Test bool
}

type VantivGateway struct {
	cfg       Config
	transport Transport
	// builders is the static method-kind dispatch table; built once here,
	// read-only afterwards, so concurrent calls need no locking.
	builders map[entities.MethodKind]requestBuilder
}

func NewVantivGateway(cfg Config, transport Transport) (*VantivGateway, error) {
	if cfg.Login == "" || cfg.Password == "" || cfg.MerchantID == "" {
		return nil, ErrMissingCredentials
	}
	if transport == nil {
		transport = NewHTTPTransport(0)
	}

	base := baseBuilder{cfg: cfg}
	card := &cardRequestBuilder{baseBuilder: base}

	return &VantivGateway{
		cfg:       cfg,
		transport: transport,
		builders: map[entities.MethodKind]requestBuilder{
			entities.MethodCreditCard:    card,
			entities.MethodNetworkToken:  card,
			entities.MethodCheck:         &checkRequestBuilder{baseBuilder: base},
			entities.MethodRegistration:  &registrationRequestBuilder{baseBuilder: base},
			entities.MethodToken:         &tokenRequestBuilder{baseBuilder: base},
			entities.MethodAuthorization: &authorizationRequestBuilder{baseBuilder: base},
		},
	}, nil
}

// Authorize verifies the payment method and reserves funds.
func (g *VantivGateway) Authorize(ctx context.Context, money int64, method entities.PaymentMethod, opts entities.TransactionOptions) (*entities.Result, error) {
	builder, err := g.builderFor(method)
	if err != nil {
		return nil, err
	}
	req, err := builder.authorize(&money, method, opts)
	if err != nil {
		return nil, err
	}
	return g.submit(ctx, req)
}

// Purchase authorizes and transfers funds in a single transaction.
func (g *VantivGateway) Purchase(ctx context.Context, money int64, method entities.PaymentMethod, opts entities.TransactionOptions) (*entities.Result, error) {
	builder, err := g.builderFor(method)
	if err != nil {
		return nil, err
	}
	req, err := builder.purchase(&money, method, opts)
	if err != nil {
		return nil, err
	}
	return g.submit(ctx, req)
}

// Capture settles a prior authorization. A nil money captures the full
// authorized amount.
func (g *VantivGateway) Capture(ctx context.Context, money *int64, method entities.PaymentMethod, opts entities.TransactionOptions) (*entities.Result, error) {
	builder, err := g.builderFor(method)
	if err != nil {
		return nil, err
	}
	req, err := builder.capture(money, method, opts)
	if err != nil {
		return nil, err
	}
	return g.submit(ctx, req)
}

// Refund returns money to the customer. Against an Authorization handle the
// handle's stored transaction type picks the follow-up element (echeckSale
// refunds as echeckCredit); against a raw payment method it is a credit.
func (g *VantivGateway) Refund(ctx context.Context, money *int64, method entities.PaymentMethod, opts entities.TransactionOptions) (*entities.Result, error) {
	builder, err := g.builderFor(method)
	if err != nil {
		return nil, err
	}
	req, err := builder.refund(money, method, opts)
	if err != nil {
		return nil, err
	}
	return g.submit(ctx, req)
}

// Credit is the deprecated name for Refund.
//
// Deprecated: use Refund.
func (g *VantivGateway) Credit(ctx context.Context, money *int64, method entities.PaymentMethod, opts entities.TransactionOptions) (*entities.Result, error) {
	return g.Refund(ctx, money, method, opts)
}

// Void cancels a same-day transaction. The handle's stored transaction
// type decides what actually goes on the wire: an un-captured authorization
// reverses (authReversal), echeck transactions void with echeckVoid,
// anything else with the plain void element.
func (g *VantivGateway) Void(ctx context.Context, method entities.PaymentMethod, opts entities.TransactionOptions) (*entities.Result, error) {
	builder, err := g.builderFor(method)
	if err != nil {
		return nil, err
	}
	req, err := builder.void(method, opts)
	if err != nil {
		return nil, err
	}
	return g.submit(ctx, req)
}

// Store exchanges a payment method for a Vantiv vault token.
func (g *VantivGateway) Store(ctx context.Context, method entities.PaymentMethod, opts entities.TransactionOptions) (*entities.StoreResult, error) {
	builder, err := g.builderFor(method)
	if err != nil {
		return nil, err
	}
	req, err := builder.store(method, opts)
	if err != nil {
		return nil, err
	}

	parsed, success, err := g.commit(ctx, req)
	if err != nil {
		return nil, err
	}
	return &entities.StoreResult{
		Success: success,
		Message: parsed["message"],
		Params:  parsed,
		Token:   parsed["litleToken"],
	}, nil
}

// Verify checks a payment method with a zero-amount authorize followed by a
// void of the resulting handle. The void is best-effort: its outcome, or
// even an outright error, never affects the returned result.
func (g *VantivGateway) Verify(ctx context.Context, method entities.PaymentMethod, opts entities.TransactionOptions) (*entities.Result, error) {
	result, err := g.Authorize(ctx, 0, method, opts)
	if err != nil {
		return nil, err
	}
	if result.Authorization != nil {
		if _, voidErr := g.Void(ctx, *result.Authorization, opts); voidErr != nil {
			log.Printf("[payment][vantiv] verify void ignored err=%v", voidErr)
		}
	}
	return result, nil
}

func (g *VantivGateway) builderFor(method entities.PaymentMethod) (requestBuilder, error) {
	if method == nil {
		return nil, ErrUnsupportedPaymentMethod
	}
	builder, ok := g.builders[method.MethodKind()]
	if !ok {
		return nil, ErrUnsupportedPaymentMethod
	}
	return builder, nil
}

// commit sends one request and decodes the reply. A transport failure or a
// malformed reply is an error; a decline is a normal parsed response.
func (g *VantivGateway) commit(ctx context.Context, req *gatewayRequest) (map[string]string, bool, error) {
	raw, err := g.transport.Send(ctx, g.url(), req.body, defaultHeaders())
	if err != nil {
		return nil, false, err
	}
	parsed, err := parseResponse(req.kind, raw)
	if err != nil {
		return nil, false, err
	}
	return parsed, successFrom(req.kind, parsed), nil
}

func (g *VantivGateway) submit(ctx context.Context, req *gatewayRequest) (*entities.Result, error) {
	parsed, success, err := g.commit(ctx, req)
	if err != nil {
		log.Printf("[payment][vantiv] %s failed err=%v", req.kind, err)
		return nil, err
	}
	log.Printf("[payment][vantiv] %s done success=%v response=%s txn_id=%s", req.kind, success, parsed["response"], parsed["litleTxnId"])

	return &entities.Result{
		Success: success,
		Message: parsed["message"],
		Params:  parsed,
		Authorization: &entities.Authorization{
			Amount:  req.money,
			TxnID:   parsed["litleTxnId"],
			TxnType: req.kind,
		},
		AVSCode: avsResponseCode[parsed["fraudResult_avsResult"]],
		CVVCode: parsed["fraudResult_cardValidationResult"],
	}, nil
}

// successFrom classifies the response code for the operation kind. Only
// token registration accepts more than the single approved code.
func successFrom(kind entities.TransactionType, parsed map[string]string) bool {
	if kind == entities.TxnRegisterToken {
		return registerTokenApproved[parsed["response"]]
	}
	return parsed["response"] == responseCodeApproved
}

func (g *VantivGateway) url() string {
	if g.cfg.URL != "" {
		return g.cfg.URL
	}
	if g.cfg.Test {
		return TestURL
	}
	return LiveURL
}

func defaultHeaders() map[string]string {
	return map[string]string{"Content-Type": "text/xml"}
}
