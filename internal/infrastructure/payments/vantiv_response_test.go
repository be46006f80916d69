package payments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vantivpay/internal/domain/entities"
)

const approvedAuthorizationReply = `<litleOnlineResponse version="9.4" xmlns="http://www.litle.com/schema" response="0" message="Valid Format">
  <authorizationResponse id="order-1" reportGroup="Default Report Group">
    <litleTxnId>100000000000000001</litleTxnId>
    <orderId>order-1</orderId>
    <response>000</response>
    <responseTime>2014-03-31T11:34:39</responseTime>
    <message>Approved</message>
    <authCode>11111 </authCode>
    <fraudResult>
      <avsResult>00</avsResult>
      <cardValidationResult>M</cardValidationResult>
    </fraudResult>
  </authorizationResponse>
</litleOnlineResponse>`

func TestParseResponse_Flattening(t *testing.T) {
	parsed, err := parseResponse(entities.TxnAuthorization, approvedAuthorizationReply)
	require.NoError(t, err)

	assert.Equal(t, "100000000000000001", parsed["litleTxnId"])
	assert.Equal(t, "000", parsed["response"])
	assert.Equal(t, "Approved", parsed["message"])
	// Leaf text is whitespace-trimmed.
	assert.Equal(t, "11111", parsed["authCode"])
	// One nesting level folds into parent_child keys.
	assert.Equal(t, "00", parsed["fraudResult_avsResult"])
	assert.Equal(t, "M", parsed["fraudResult_cardValidationResult"])
	_, present := parsed["fraudResult"]
	assert.False(t, present)
}

func TestParseResponse_EcheckSaleSubtree(t *testing.T) {
	reply := `<litleOnlineResponse version="9.4" xmlns="http://www.litle.com/schema" response="0" message="Valid Format">
  <echeckSalesResponse id="order-2" reportGroup="Default Report Group">
    <litleTxnId>200000000000000001</litleTxnId>
    <response>000</response>
    <message>Approved</message>
  </echeckSalesResponse>
</litleOnlineResponse>`

	parsed, err := parseResponse(entities.TxnEcheckSale, reply)
	require.NoError(t, err)
	assert.Equal(t, "200000000000000001", parsed["litleTxnId"])
	assert.Equal(t, "000", parsed["response"])
}

func TestParseResponse_RootAttributeFallback(t *testing.T) {
	reply := `<litleOnlineResponse version="9.4" xmlns="http://www.litle.com/schema" response="1" message="System Error - Call Litle &amp; Co."/>`

	parsed, err := parseResponse(entities.TxnAuthorization, reply)
	require.NoError(t, err)
	assert.Equal(t, "System Error - Call Litle & Co.", parsed["message"])
	assert.Equal(t, "1", parsed["response"])
}

func TestParseResponse_Malformed(t *testing.T) {
	_, err := parseResponse(entities.TxnAuthorization, "not xml at all <<<")
	assert.ErrorIs(t, err, ErrMalformedResponse)

	// Well-formed XML with the wrong root is malformed too.
	_, err = parseResponse(entities.TxnAuthorization, "<html><body>Bad Gateway</body></html>")
	assert.ErrorIs(t, err, ErrMalformedResponse)

	// A proper root with neither the operation subtree nor status attributes.
	_, err = parseResponse(entities.TxnAuthorization, `<litleOnlineResponse version="9.4"></litleOnlineResponse>`)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestParseResponse_UnknownFieldsPassThrough(t *testing.T) {
	reply := `<litleOnlineResponse version="9.4" xmlns="http://www.litle.com/schema">
  <saleResponse id="order-1" reportGroup="Default Report Group">
    <litleTxnId>1</litleTxnId>
    <response>000</response>
    <someFutureField>hello</someFutureField>
  </saleResponse>
</litleOnlineResponse>`

	parsed, err := parseResponse(entities.TxnSale, reply)
	require.NoError(t, err)
	assert.Equal(t, "hello", parsed["someFutureField"])
}

func TestResponseElementNames(t *testing.T) {
	assert.Equal(t, "authorizationResponse", responseElementName(entities.TxnAuthorization))
	assert.Equal(t, "echeckSalesResponse", responseElementName(entities.TxnEcheckSale))
	assert.Equal(t, "registerTokenResponse", responseElementName(entities.TxnRegisterToken))
	assert.Equal(t, "registerTokenRequest", requestElementName(entities.TxnRegisterToken))
	assert.Equal(t, "authReversal", requestElementName(entities.TxnAuthReversal))
}
