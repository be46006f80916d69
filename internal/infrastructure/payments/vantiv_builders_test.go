package payments

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vantivpay/internal/domain/entities"
)

var testConfig = Config{
	Login:      "merchant-user",
	Password:   "merchant-pass",
	MerchantID: "101",
	Test:       true,
}

func testCard() entities.CreditCard {
	return entities.CreditCard{
		FirstName:         "John",
		LastName:          "Smith",
		Number:            "4242424242424242",
		Month:             "9",
		Year:              "2021",
		Brand:             "visa",
		VerificationValue: "111",
	}
}

func money(v int64) *int64 { return &v }

func TestCardBuilder_Authorize(t *testing.T) {
	builder := &cardRequestBuilder{baseBuilder: baseBuilder{cfg: testConfig}}

	req, err := builder.authorize(money(100), testCard(), entities.TransactionOptions{OrderID: "order-1"})
	require.NoError(t, err)

	assert.Equal(t, entities.TxnAuthorization, req.kind)
	assert.Contains(t, req.body, `<litleOnlineRequest merchantId="101" version="9.4" xmlns="http://www.litle.com/schema">`)
	assert.Contains(t, req.body, "<authentication><user>merchant-user</user><password>merchant-pass</password></authentication>")
	assert.Contains(t, req.body, `<authorization id="order-1" reportGroup="Default Report Group">`)
	assert.Contains(t, req.body, "<orderId>order-1</orderId>")
	assert.Contains(t, req.body, "<amount>100</amount>")
	assert.Contains(t, req.body, "<orderSource>ecommerce</orderSource>")
	assert.Contains(t, req.body, "<card><type>VI</type><number>4242424242424242</number><expDate>0921</expDate><cardValidationNum>111</cardValidationNum></card>")
	// Cardholder name comes from the card itself.
	assert.Contains(t, req.body, "<billToAddress><name>John Smith</name><firstName>John</firstName><lastName>Smith</lastName></billToAddress>")
	assert.NotContains(t, req.body, "<shipToAddress>")
	assert.NotContains(t, req.body, "<pos>")
	assert.NotContains(t, req.body, "<customBilling>")
	assert.NotContains(t, req.body, "<debtRepayment>")
}

func TestCardBuilder_TransactionIDTruncation(t *testing.T) {
	builder := &cardRequestBuilder{baseBuilder: baseBuilder{cfg: testConfig}}
	long := strings.Repeat("x", 30)

	req, err := builder.authorize(money(100), testCard(), entities.TransactionOptions{OrderID: long})
	require.NoError(t, err)

	want := strings.Repeat("x", 24)
	assert.Contains(t, req.body, `<authorization id="`+want+`"`)
	assert.Contains(t, req.body, "<orderId>"+want+"</orderId>")
	assert.NotContains(t, req.body, long)

	// An explicit id wins over the order id and truncates the same way.
	req, err = builder.authorize(money(100), testCard(), entities.TransactionOptions{OrderID: "order-1", ID: long})
	require.NoError(t, err)
	assert.Contains(t, req.body, `<authorization id="`+want+`"`)
	assert.Contains(t, req.body, "<orderId>order-1</orderId>")
}

func TestCardBuilder_TransactionAttributes(t *testing.T) {
	builder := &cardRequestBuilder{baseBuilder: baseBuilder{cfg: testConfig}}

	req, err := builder.authorize(money(100), testCard(), entities.TransactionOptions{
		OrderID:  "order-1",
		Merchant: "Report Group A",
		Customer: "cust-9",
	})
	require.NoError(t, err)
	assert.Contains(t, req.body, `<authorization id="order-1" reportGroup="Report Group A" customerId="cust-9">`)
}

func TestCardBuilder_ConditionalEmission(t *testing.T) {
	builder := &cardRequestBuilder{baseBuilder: baseBuilder{cfg: testConfig}}
	card := entities.CreditCard{Number: "4242424242424242", Month: "12", Year: "5", Brand: "visa"}

	req, err := builder.authorize(money(100), card, entities.TransactionOptions{
		OrderID: "order-1",
		BillingAddress: &entities.Address{
			Address1: "1 Main St",
			City:     "",
			Zip:      "60601",
		},
	})
	require.NoError(t, err)

	// Blank fields never become empty elements.
	assert.NotContains(t, req.body, "<city>")
	assert.NotContains(t, req.body, "<state>")
	assert.NotContains(t, req.body, "<cardValidationNum>")
	assert.Contains(t, req.body, "<addressLine1>1 Main St</addressLine1>")
	assert.Contains(t, req.body, "<zip>60601</zip>")
	// billToAddress itself is structural and always present.
	assert.Contains(t, req.body, "<billToAddress>")
	// Month "12", year "5" formats as 1205.
	assert.Contains(t, req.body, "<expDate>1205</expDate>")
}

func TestCardBuilder_AddressPrecedence(t *testing.T) {
	builder := &cardRequestBuilder{baseBuilder: baseBuilder{cfg: testConfig}}

	req, err := builder.authorize(money(100), testCard(), entities.TransactionOptions{
		OrderID: "order-1",
		BillingAddress: &entities.Address{
			Name:      "Someone Else",
			FirstName: "Someone",
			LastName:  "Else",
			Address1:  "1 Main St",
		},
	})
	require.NoError(t, err)

	// The payment method's name wins over the address name.
	assert.Contains(t, req.body, "<name>John Smith</name>")
	assert.Contains(t, req.body, "<firstName>John</firstName>")
	assert.Contains(t, req.body, "<lastName>Smith</lastName>")

	// Without card name components the address supplies them.
	card := testCard()
	card.FirstName, card.LastName = "", ""
	req, err = builder.authorize(money(100), card, entities.TransactionOptions{
		OrderID:        "order-1",
		BillingAddress: &entities.Address{Name: "Someone Else"},
	})
	require.NoError(t, err)
	assert.Contains(t, req.body, "<name>Someone Else</name>")
}

func TestCardBuilder_ShippingAddress(t *testing.T) {
	builder := &cardRequestBuilder{baseBuilder: baseBuilder{cfg: testConfig}}

	req, err := builder.authorize(money(100), testCard(), entities.TransactionOptions{
		OrderID:         "order-1",
		ShippingAddress: &entities.Address{Name: "Jane Doe", Address1: "2 Oak Ave", City: "Chicago"},
	})
	require.NoError(t, err)
	assert.Contains(t, req.body, "<shipToAddress><name>Jane Doe</name><addressLine1>2 Oak Ave</addressLine1><city>Chicago</city></shipToAddress>")
}

func TestCardBuilder_TrackData(t *testing.T) {
	builder := &cardRequestBuilder{baseBuilder: baseBuilder{cfg: testConfig}}
	card := testCard()
	card.TrackData = "%B4242424242424242^SMITH/JOHN^2112101000000000112000000?"

	req, err := builder.purchase(money(500), card, entities.TransactionOptions{OrderID: "order-1"})
	require.NoError(t, err)

	assert.Contains(t, req.body, "<card><track>")
	assert.NotContains(t, req.body, "<number>")
	assert.NotContains(t, req.body, "<expDate>")
	assert.Contains(t, req.body, "<pos><capability>magstripe</capability><entryMode>completeread</entryMode><cardholderId>signature</cardholderId></pos>")
	// Swiped cards default to the retail order source.
	assert.Contains(t, req.body, "<orderSource>retail</orderSource>")
}

func TestCardBuilder_NetworkToken(t *testing.T) {
	builder := &cardRequestBuilder{baseBuilder: baseBuilder{cfg: testConfig}}
	token := entities.NetworkTokenCard{
		CreditCard:        testCard(),
		PaymentCryptogram: "EHuWW9PiBkWvqE5juRwDzAUFBAk=",
		Source:            "apple_pay",
	}

	req, err := builder.authorize(money(100), token, entities.TransactionOptions{OrderID: "order-1"})
	require.NoError(t, err)

	assert.Contains(t, req.body, "<cardholderAuthentication><authenticationValue>EHuWW9PiBkWvqE5juRwDzAUFBAk=</authenticationValue></cardholderAuthentication>")
	assert.Contains(t, req.body, "<orderSource>applepay</orderSource>")

	// An explicit order source still wins.
	req, err = builder.authorize(money(100), token, entities.TransactionOptions{OrderID: "order-1", OrderSource: "recurring"})
	require.NoError(t, err)
	assert.Contains(t, req.body, "<orderSource>recurring</orderSource>")
}

func TestCardBuilder_CustomBillingAndDebtRepayment(t *testing.T) {
	builder := &cardRequestBuilder{baseBuilder: baseBuilder{cfg: testConfig}}

	req, err := builder.purchase(money(100), testCard(), entities.TransactionOptions{
		OrderID:         "order-1",
		DescriptorName:  "ACME*Books",
		DescriptorPhone: "555-0100",
		DebtRepayment:   true,
	})
	require.NoError(t, err)
	assert.Contains(t, req.body, "<customBilling><phone>555-0100</phone><descriptor>ACME*Books</descriptor></customBilling>")
	assert.Contains(t, req.body, "<debtRepayment>true</debtRepayment>")
}

func TestCardBuilder_Store(t *testing.T) {
	builder := &cardRequestBuilder{baseBuilder: baseBuilder{cfg: testConfig}}

	req, err := builder.store(testCard(), entities.TransactionOptions{OrderID: "order-1"})
	require.NoError(t, err)
	assert.Equal(t, entities.TxnRegisterToken, req.kind)
	assert.Contains(t, req.body, `<registerTokenRequest id="order-1"`)
	assert.Contains(t, req.body, "<accountNumber>4242424242424242</accountNumber>")
	assert.Contains(t, req.body, "<cardValidationNum>111</cardValidationNum>")
}

func TestCardBuilder_UnsupportedOperations(t *testing.T) {
	builder := &cardRequestBuilder{baseBuilder: baseBuilder{cfg: testConfig}}

	_, err := builder.capture(money(100), testCard(), entities.TransactionOptions{})
	assert.ErrorIs(t, err, ErrOperationNotSupported)
	_, err = builder.void(testCard(), entities.TransactionOptions{})
	assert.ErrorIs(t, err, ErrOperationNotSupported)
}

func TestCheckBuilder_Purchase(t *testing.T) {
	builder := &checkRequestBuilder{baseBuilder: baseBuilder{cfg: testConfig}}
	check := entities.Check{
		FirstName:         "Jim",
		LastName:          "Smith",
		RoutingNumber:     "011075150",
		AccountNumber:     "4099999992",
		AccountHolderType: "personal",
		AccountType:       "checking",
		Number:            "1001",
	}

	req, err := builder.purchase(money(2004), check, entities.TransactionOptions{OrderID: "order-2"})
	require.NoError(t, err)

	assert.Equal(t, entities.TxnEcheckSale, req.kind)
	assert.Contains(t, req.body, `<echeckSale id="order-2"`)
	assert.Contains(t, req.body, "<amount>2004</amount>")
	assert.Contains(t, req.body, "<echeck><accType>Checking</accType><accNum>4099999992</accNum><routingNum>011075150</routingNum><checkNum>1001</checkNum></echeck>")
	assert.Contains(t, req.body, "<orderSource>ecommerce</orderSource>")
}

func TestCheckBuilder_AccountTypes(t *testing.T) {
	cases := []struct {
		holder, account, want string
	}{
		{"personal", "checking", "Checking"},
		{"personal", "savings", "Savings"},
		{"business", "checking", "Corporate"},
		{"business", "savings", "Corp Savings"},
	}
	for _, c := range cases {
		if got := checkAccountType(c.holder, c.account); got != c.want {
			t.Fatalf("checkAccountType(%s, %s) = %q, want %q", c.holder, c.account, got, c.want)
		}
	}
	if got := checkAccountType("unknown", "checking"); got != "" {
		t.Fatalf("expected empty for unknown holder type, got %q", got)
	}
}

func TestCheckBuilder_StoreAndRefund(t *testing.T) {
	builder := &checkRequestBuilder{baseBuilder: baseBuilder{cfg: testConfig}}
	check := entities.Check{RoutingNumber: "011075150", AccountNumber: "4099999992", AccountHolderType: "personal", AccountType: "checking"}

	req, err := builder.store(check, entities.TransactionOptions{OrderID: "order-2"})
	require.NoError(t, err)
	assert.Contains(t, req.body, "<echeckForToken><accNum>4099999992</accNum><routingNum>011075150</routingNum></echeckForToken>")
	// No check number on this account, so no checkNum element anywhere.
	assert.NotContains(t, req.body, "<checkNum>")

	req, err = builder.refund(money(2004), check, entities.TransactionOptions{OrderID: "order-2"})
	require.NoError(t, err)
	assert.Equal(t, entities.TxnEcheckCredit, req.kind)
	assert.Contains(t, req.body, `<echeckCredit id="order-2"`)

	_, err = builder.authorize(money(100), check, entities.TransactionOptions{})
	assert.ErrorIs(t, err, ErrOperationNotSupported)
}

func TestRegistrationBuilder(t *testing.T) {
	builder := &registrationRequestBuilder{baseBuilder: baseBuilder{cfg: testConfig}}
	reg := entities.Registration{ID: "reg-123", Month: "9", Year: "2021", VerificationValue: "424"}

	req, err := builder.authorize(money(100), reg, entities.TransactionOptions{OrderID: "order-3"})
	require.NoError(t, err)
	assert.Contains(t, req.body, "<paypage><paypageRegistrationId>reg-123</paypageRegistrationId><expDate>0921</expDate><cardValidationNum>424</cardValidationNum></paypage>")

	// Expiry and CVV are optional on a registration.
	bare := entities.Registration{ID: "reg-123"}
	req, err = builder.purchase(money(100), bare, entities.TransactionOptions{OrderID: "order-3"})
	require.NoError(t, err)
	assert.Contains(t, req.body, "<paypage><paypageRegistrationId>reg-123</paypageRegistrationId></paypage>")

	req, err = builder.store(bare, entities.TransactionOptions{OrderID: "order-3"})
	require.NoError(t, err)
	assert.Contains(t, req.body, `<registerTokenRequest id="order-3"`)
	assert.Contains(t, req.body, "<paypageRegistrationId>reg-123</paypageRegistrationId>")
	assert.NotContains(t, req.body, "<paypage>")
}

func TestTokenBuilder(t *testing.T) {
	builder := &tokenRequestBuilder{baseBuilder: baseBuilder{cfg: testConfig}}
	token := entities.Token{Value: "1111222233334444", Month: "9", Year: "2021", VerificationValue: "424"}

	req, err := builder.purchase(money(100), token, entities.TransactionOptions{OrderID: "order-4"})
	require.NoError(t, err)
	assert.Equal(t, entities.TxnSale, req.kind)
	assert.Contains(t, req.body, "<token><litleToken>1111222233334444</litleToken><expDate>0921</expDate><cardValidationNum>424</cardValidationNum></token>")

	_, err = builder.store(token, entities.TransactionOptions{})
	assert.ErrorIs(t, err, ErrOperationNotSupported)
}

func TestExpDateFormatting(t *testing.T) {
	cases := []struct {
		month, year, want string
	}{
		{"9", "2021", "0921"},
		{"12", "5", "1205"},
		{"09", "21", "0921"},
		{"", "", ""},
	}
	for _, c := range cases {
		if got := expDate(c.month, c.year); got != c.want {
			t.Fatalf("expDate(%q, %q) = %q, want %q", c.month, c.year, got, c.want)
		}
	}
}
