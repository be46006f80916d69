package request

import (
	"errors"
	"strings"

	"vantivpay/internal/domain/entities"
)

var (
	ErrMissingPaymentMethod  = errors.New("missing payment method")
	ErrAmbiguousMethod       = errors.New("more than one payment method provided")
	ErrMissingReferenceTxnID = errors.New("missing reference transaction id")
)

type AddressRequest struct {
	Name      string `json:"name"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
	Country   string `json:"country"`
	Company   string `json:"company"`
	Phone     string `json:"phone"`
}

func (a *AddressRequest) toEntity() *entities.Address {
	if a == nil {
		return nil
	}
	return &entities.Address{
		Name:      a.Name,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Address1:  a.Address1,
		Address2:  a.Address2,
		City:      a.City,
		State:     a.State,
		Zip:       a.Zip,
		Country:   a.Country,
		Company:   a.Company,
		Phone:     a.Phone,
	}
}

type CardRequest struct {
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Number            string `json:"number" binding:"required"`
	Month             string `json:"month"`
	Year              string `json:"year"`
	Brand             string `json:"brand"`
	VerificationValue string `json:"verification_value"`
	TrackData         string `json:"track_data"`
	// PaymentCryptogram turns the card into a network token (e.g. Apple Pay).
	PaymentCryptogram string `json:"payment_cryptogram"`
	Source            string `json:"source"`
}

type CheckRequest struct {
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	RoutingNumber     string `json:"routing_number" binding:"required"`
	AccountNumber     string `json:"account_number" binding:"required"`
	AccountHolderType string `json:"account_holder_type"`
	AccountType       string `json:"account_type"`
	Number            string `json:"number"`
}

type TokenRequest struct {
	Value             string `json:"value" binding:"required"`
	Month             string `json:"month"`
	Year              string `json:"year"`
	VerificationValue string `json:"verification_value"`
}

type RegistrationRequest struct {
	ID                string `json:"id" binding:"required"`
	Month             string `json:"month"`
	Year              string `json:"year"`
	VerificationValue string `json:"verification_value"`
}

type OptionsRequest struct {
	OrderID         string          `json:"order_id"`
	ID              string          `json:"id"`
	Merchant        string          `json:"merchant"`
	Customer        string          `json:"customer"`
	Email           string          `json:"email"`
	OrderSource     string          `json:"order_source"`
	DescriptorName  string          `json:"descriptor_name"`
	DescriptorPhone string          `json:"descriptor_phone"`
	DebtRepayment   bool            `json:"debt_repayment"`
	BillingAddress  *AddressRequest `json:"billing_address"`
	ShippingAddress *AddressRequest `json:"shipping_address"`
}

// PaymentRequest is the payload for authorize/purchase/store/verify routes.
// Exactly one of the payment method blocks must be set.
type PaymentRequest struct {
	Amount       *int64               `json:"amount"`
	Card         *CardRequest         `json:"card"`
	Check        *CheckRequest        `json:"check"`
	Token        *TokenRequest        `json:"token"`
	Registration *RegistrationRequest `json:"registration"`
	Options      OptionsRequest       `json:"options"`
}

// PaymentMethod resolves the single payment method from the request body.
func (r PaymentRequest) PaymentMethod() (entities.PaymentMethod, error) {
	var methods []entities.PaymentMethod
	if r.Card != nil {
		card := entities.CreditCard{
			FirstName:         r.Card.FirstName,
			LastName:          r.Card.LastName,
			Number:            r.Card.Number,
			Month:             r.Card.Month,
			Year:              r.Card.Year,
			Brand:             r.Card.Brand,
			VerificationValue: r.Card.VerificationValue,
			TrackData:         r.Card.TrackData,
		}
		if strings.TrimSpace(r.Card.PaymentCryptogram) != "" {
			methods = append(methods, entities.NetworkTokenCard{
				CreditCard:        card,
				PaymentCryptogram: r.Card.PaymentCryptogram,
				Source:            r.Card.Source,
			})
		} else {
			methods = append(methods, card)
		}
	}
	if r.Check != nil {
		methods = append(methods, entities.Check{
			FirstName:         r.Check.FirstName,
			LastName:          r.Check.LastName,
			RoutingNumber:     r.Check.RoutingNumber,
			AccountNumber:     r.Check.AccountNumber,
			AccountHolderType: r.Check.AccountHolderType,
			AccountType:       r.Check.AccountType,
			Number:            r.Check.Number,
		})
	}
	if r.Token != nil {
		methods = append(methods, entities.Token{
			Value:             r.Token.Value,
			Month:             r.Token.Month,
			Year:              r.Token.Year,
			VerificationValue: r.Token.VerificationValue,
		})
	}
	if r.Registration != nil {
		methods = append(methods, entities.Registration{
			ID:                r.Registration.ID,
			Month:             r.Registration.Month,
			Year:              r.Registration.Year,
			VerificationValue: r.Registration.VerificationValue,
		})
	}

	switch len(methods) {
	case 0:
		return nil, ErrMissingPaymentMethod
	case 1:
		return methods[0], nil
	default:
		return nil, ErrAmbiguousMethod
	}
}

// TransactionOptions converts the options block to the domain type.
func (r PaymentRequest) TransactionOptions() entities.TransactionOptions {
	return r.Options.toEntity()
}

func (o OptionsRequest) toEntity() entities.TransactionOptions {
	return entities.TransactionOptions{
		OrderID:         o.OrderID,
		ID:              o.ID,
		Merchant:        o.Merchant,
		Customer:        o.Customer,
		Email:           o.Email,
		OrderSource:     o.OrderSource,
		DescriptorName:  o.DescriptorName,
		DescriptorPhone: o.DescriptorPhone,
		DebtRepayment:   o.DebtRepayment,
		BillingAddress:  o.BillingAddress.toEntity(),
		ShippingAddress: o.ShippingAddress.toEntity(),
	}
}

// ReferenceRequest is the payload for capture/refund/void routes, which
// operate on a prior transaction instead of a payment method.
type ReferenceRequest struct {
	Amount *int64 `json:"amount"`
	// TxnID is the Vantiv transaction id returned by the original call.
	TxnID string `json:"txn_id" binding:"required"`
	// Kind is the original operation kind; it drives how voids and refunds
	// resolve (an authorization reverses, echecks use the echeck elements).
	Kind    string         `json:"kind"`
	Options OptionsRequest `json:"options"`
}

// Authorization rebuilds the gateway handle from the reference fields.
func (r ReferenceRequest) Authorization() (entities.Authorization, error) {
	if strings.TrimSpace(r.TxnID) == "" {
		return entities.Authorization{}, ErrMissingReferenceTxnID
	}
	return entities.Authorization{
		Amount:  r.Amount,
		TxnID:   strings.TrimSpace(r.TxnID),
		TxnType: entities.TransactionType(r.Kind),
	}, nil
}

// TransactionOptions converts the options block to the domain type.
func (r ReferenceRequest) TransactionOptions() entities.TransactionOptions {
	return r.Options.toEntity()
}
