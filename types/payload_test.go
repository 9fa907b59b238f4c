package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePayload_Kinds(t *testing.T) {
	tests := []struct {
		raw  string
		kind PayloadKind
	}{
		{`null`, PayloadNull},
		{`true`, PayloadBool},
		{` 12.5 `, PayloadNumber},
		{`-3`, PayloadNumber},
		{`"hi"`, PayloadString},
		{`[1,2]`, PayloadArray},
		{`{"reply":"hi"}`, PayloadObject},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			p, err := ParsePayload([]byte(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.kind, p.Kind())
		})
	}
}

func TestParsePayload_Invalid(t *testing.T) {
	for _, raw := range []string{``, `   `, `{"a":`, `hello`} {
		_, err := ParsePayload([]byte(raw))
		assert.Error(t, err, raw)
	}
}

func TestPayload_Fields(t *testing.T) {
	p := MustPayload(`{"error":"rate limited","count":2,"response":{"reply":"hi"}}`)

	assert.Equal(t, "rate limited", p.StringField("error"))
	assert.Equal(t, "", p.StringField("count"))
	assert.Equal(t, "", p.StringField("missing"))

	inner, ok := p.Field("response")
	require.True(t, ok)
	assert.Equal(t, PayloadObject, inner.Kind())
	assert.True(t, inner.Equal(MustPayload(`{ "reply": "hi" }`)))

	_, ok = MustPayload(`[1]`).Field("x")
	assert.False(t, ok)
}

func TestPayload_StringIndents(t *testing.T) {
	p := MustPayload(`{"reply":"hi"}`)
	assert.Equal(t, "{\n  \"reply\": \"hi\"\n}", p.String())
}

func TestPayload_JSONRoundTripInStruct(t *testing.T) {
	var body struct {
		Response Payload `json:"response"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"response":[1,2,3]}`), &body))
	assert.Equal(t, PayloadArray, body.Response.Kind())

	out, err := json.Marshal(body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"response":[1,2,3]}`, string(out))
}

func TestQueryResult(t *testing.T) {
	var zero QueryResult
	assert.Equal(t, ResultNone, zero.Kind())

	ok := Success(MustPayload(`{"reply":"hi"}`))
	assert.True(t, ok.IsSuccess())
	assert.False(t, ok.IsFailure())

	fail := Failure("rate limited", "{oops")
	assert.True(t, fail.IsFailure())
	assert.Equal(t, "rate limited", fail.Message())
	assert.Equal(t, "{oops", fail.RawResponse())
}

func TestNewQueryRequest(t *testing.T) {
	for _, in := range []string{"", " ", "\t\n "} {
		_, ok := NewQueryRequest(in)
		assert.False(t, ok, "%q", in)
	}

	req, ok := NewQueryRequest("  hello ")
	require.True(t, ok)
	assert.Equal(t, "hello", req.Text)
}

func TestPersonName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", PersonName{Given: "Ada", Family: "Lovelace"}.String())
	assert.Equal(t, "Ada", PersonName{Given: " Ada "}.String())
	assert.Equal(t, "", PersonName{}.String())

	assert.False(t, IdentityCredential{}.HasFullName())
	assert.False(t, IdentityCredential{FullName: &PersonName{}}.HasFullName())
	assert.True(t, IdentityCredential{FullName: &PersonName{Family: "Lovelace"}}.HasFullName())
}

func TestErrorsUnwrap(t *testing.T) {
	cause := assert.AnError
	err := &ExchangeError{Detail: "response status code 400", Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "session exchange failed: response status code 400: "+cause.Error(), err.Error())

	assert.Equal(t, "chat service error: rate limited", (&QueryApplicationError{Detail: "rate limited"}).Error())
}
