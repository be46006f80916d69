package request

import (
	"errors"
	"testing"

	"vantivpay/internal/domain/entities"
)

func TestPaymentRequest_PaymentMethod(t *testing.T) {
	t.Run("card", func(t *testing.T) {
		r := PaymentRequest{Card: &CardRequest{Number: "4242424242424242", Month: "9", Year: "2021", Brand: "visa"}}
		m, err := r.PaymentMethod()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		card, ok := m.(entities.CreditCard)
		if !ok {
			t.Fatalf("expected CreditCard, got %T", m)
		}
		if card.Number != "4242424242424242" || card.Brand != "visa" {
			t.Fatalf("unexpected card %+v", card)
		}
	})

	t.Run("card with cryptogram becomes network token", func(t *testing.T) {
		r := PaymentRequest{Card: &CardRequest{Number: "4242424242424242", PaymentCryptogram: "abc==", Source: "apple_pay"}}
		m, err := r.PaymentMethod()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		token, ok := m.(entities.NetworkTokenCard)
		if !ok {
			t.Fatalf("expected NetworkTokenCard, got %T", m)
		}
		if token.PaymentCryptogram != "abc==" || token.Source != "apple_pay" {
			t.Fatalf("unexpected token %+v", token)
		}
	})

	t.Run("check", func(t *testing.T) {
		r := PaymentRequest{Check: &CheckRequest{RoutingNumber: "011075150", AccountNumber: "4099999992", AccountHolderType: "personal", AccountType: "checking"}}
		m, err := r.PaymentMethod()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := m.(entities.Check); !ok {
			t.Fatalf("expected Check, got %T", m)
		}
	})

	t.Run("token", func(t *testing.T) {
		r := PaymentRequest{Token: &TokenRequest{Value: "1111222233334444"}}
		m, err := r.PaymentMethod()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := m.(entities.Token); !ok {
			t.Fatalf("expected Token, got %T", m)
		}
	})

	t.Run("registration", func(t *testing.T) {
		r := PaymentRequest{Registration: &RegistrationRequest{ID: "reg-1"}}
		m, err := r.PaymentMethod()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := m.(entities.Registration); !ok {
			t.Fatalf("expected Registration, got %T", m)
		}
	})

	t.Run("none", func(t *testing.T) {
		r := PaymentRequest{}
		if _, err := r.PaymentMethod(); !errors.Is(err, ErrMissingPaymentMethod) {
			t.Fatalf("expected ErrMissingPaymentMethod, got %v", err)
		}
	})

	t.Run("ambiguous", func(t *testing.T) {
		r := PaymentRequest{
			Card:  &CardRequest{Number: "4242424242424242"},
			Token: &TokenRequest{Value: "1111222233334444"},
		}
		if _, err := r.PaymentMethod(); !errors.Is(err, ErrAmbiguousMethod) {
			t.Fatalf("expected ErrAmbiguousMethod, got %v", err)
		}
	})
}

func TestPaymentRequest_TransactionOptions(t *testing.T) {
	r := PaymentRequest{Options: OptionsRequest{
		OrderID:        "order-1",
		Merchant:       "Group A",
		DebtRepayment:  true,
		BillingAddress: &AddressRequest{Name: "John Smith", City: "Chicago"},
	}}
	opts := r.TransactionOptions()
	if opts.OrderID != "order-1" || opts.Merchant != "Group A" || !opts.DebtRepayment {
		t.Fatalf("unexpected options %+v", opts)
	}
	if opts.BillingAddress == nil || opts.BillingAddress.City != "Chicago" {
		t.Fatalf("expected billing address, got %+v", opts.BillingAddress)
	}
	if opts.ShippingAddress != nil {
		t.Fatalf("expected nil shipping address")
	}
}

func TestReferenceRequest_Authorization(t *testing.T) {
	amount := int64(500)
	r := ReferenceRequest{Amount: &amount, TxnID: " 100000000000000001 ", Kind: "authorization"}
	auth, err := r.Authorization()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if auth.TxnID != "100000000000000001" {
		t.Fatalf("expected trimmed txn id, got %q", auth.TxnID)
	}
	if auth.TxnType != entities.TxnAuthorization {
		t.Fatalf("unexpected kind %s", auth.TxnType)
	}
	if auth.Amount == nil || *auth.Amount != 500 {
		t.Fatalf("unexpected amount %v", auth.Amount)
	}

	r2 := ReferenceRequest{}
	if _, err := r2.Authorization(); !errors.Is(err, ErrMissingReferenceTxnID) {
		t.Fatalf("expected ErrMissingReferenceTxnID, got %v", err)
	}
}
