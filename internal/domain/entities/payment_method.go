package entities

import "strings"

// MethodKind enumerates the closed set of payment method variants the
// Vantiv gateway can encode. The gateway keeps a static kind -> request
// builder table, so adding a variant means adding a kind here and a row
// to that table.
type MethodKind string

const (
	MethodCreditCard    MethodKind = "credit_card"
	MethodNetworkToken  MethodKind = "network_token"
	MethodCheck         MethodKind = "check"
	MethodRegistration  MethodKind = "registration"
	MethodToken         MethodKind = "token"
	MethodAuthorization MethodKind = "authorization"
)

// PaymentMethod is implemented by every variant. Variants are plain value
// structs; all behavior lives in the gateway's request builders.
type PaymentMethod interface {
	MethodKind() MethodKind
}

// CreditCard is a raw card. TrackData, when present, marks a card-present
// swipe and changes how the card is encoded on the wire.
type CreditCard struct {
	FirstName         string
	LastName          string
	Number            string
	Month             string
	Year              string
	Brand             string // visa, master, american_express, discover, jcb, diners_club
	VerificationValue string
	TrackData         string
}

func (CreditCard) MethodKind() MethodKind { return MethodCreditCard }

// Name is the cardholder full name derived from the name components.
func (c CreditCard) Name() string {
	return strings.TrimSpace(strings.TrimSpace(c.FirstName) + " " + strings.TrimSpace(c.LastName))
}

// NetworkTokenCard is a network-tokenized card (e.g. Apple Pay). It carries
// the cryptogram sent in the cardholderAuthentication block.
type NetworkTokenCard struct {
	CreditCard
	PaymentCryptogram string
	Source            string // "apple_pay" switches the default order source
}

func (NetworkTokenCard) MethodKind() MethodKind { return MethodNetworkToken }

// Check is an echeck bank account.
type Check struct {
	FirstName         string
	LastName          string
	RoutingNumber     string
	AccountNumber     string
	AccountHolderType string // personal, business
	AccountType       string // checking, savings
	Number            string // optional check number
}

func (Check) MethodKind() MethodKind { return MethodCheck }

// Name is the account holder full name derived from the name components.
func (c Check) Name() string {
	return strings.TrimSpace(strings.TrimSpace(c.FirstName) + " " + strings.TrimSpace(c.LastName))
}

// Registration is an eProtect (paypage) registration id returned to the
// browser by Vantiv; the server side never saw the card number.
type Registration struct {
	ID                string
	Month             string
	Year              string
	VerificationValue string
}

func (Registration) MethodKind() MethodKind { return MethodRegistration }

// Token is a Vantiv vault token. Vantiv only stores the account number, so
// expiry and CVV still travel with the token when known.
type Token struct {
	Value             string
	Month             string
	Year              string
	VerificationValue string
}

func (Token) MethodKind() MethodKind { return MethodToken }
