package chat

import (
	"errors"
	"net/http"
	"testing"

	"clementus360/glowup/config"
	"clementus360/glowup/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		resp        Response
		sendErr     error
		wantSuccess string
		wantMessage string
		wantRaw     string
		wantApp     bool
	}{
		{
			name:        "plain object",
			resp:        Response{StatusCode: http.StatusOK, Body: []byte(`{"reply":"hi"}`)},
			wantSuccess: `{"reply":"hi"}`,
		},
		{
			name:        "backend envelope",
			resp:        Response{StatusCode: http.StatusOK, Body: []byte(`{"response":{"goal":"run","tasks":[]}}`)},
			wantSuccess: `{"goal":"run","tasks":[]}`,
		},
		{
			name:        "response next to other keys is not an envelope",
			resp:        Response{StatusCode: http.StatusOK, Body: []byte(`{"response":"x","meta":1}`)},
			wantSuccess: `{"response":"x","meta":1}`,
		},
		{
			name:        "non-object payload",
			resp:        Response{StatusCode: http.StatusOK, Body: []byte(`["a","b"]`)},
			wantSuccess: `["a","b"]`,
		},
		{
			name:        "empty error field is success",
			resp:        Response{StatusCode: http.StatusOK, Body: []byte(`{"error":"","reply":"hi"}`)},
			wantSuccess: `{"error":"","reply":"hi"}`,
		},
		{
			name:        "error field with 200",
			resp:        Response{StatusCode: http.StatusOK, Body: []byte(`{"error":"rate limited"}`)},
			wantMessage: "rate limited",
			wantApp:     true,
		},
		{
			name:        "object error field",
			resp:        Response{StatusCode: http.StatusOK, Body: []byte(`{"error": {"message": "quota exceeded"}}`)},
			wantMessage: `{"message":"quota exceeded"}`,
			wantApp:     true,
		},
		{
			name:        "true error field",
			resp:        Response{StatusCode: http.StatusOK, Body: []byte(`{"error":true}`)},
			wantMessage: "true",
			wantApp:     true,
		},
		{
			name:        "numeric error field",
			resp:        Response{StatusCode: http.StatusOK, Body: []byte(`{"error":429}`)},
			wantMessage: "429",
			wantApp:     true,
		},
		{
			name:        "nested object error field",
			resp:        Response{StatusCode: http.StatusOK, Body: []byte(`{"response":{"error":["bad","json"]}}`)},
			wantMessage: `["bad","json"]`,
			wantApp:     true,
		},
		{
			name:        "null error field is success",
			resp:        Response{StatusCode: http.StatusOK, Body: []byte(`{"error":null,"reply":"hi"}`)},
			wantSuccess: `{"error":null,"reply":"hi"}`,
		},
		{
			name:        "false error field is success",
			resp:        Response{StatusCode: http.StatusOK, Body: []byte(`{"error":false,"reply":"hi"}`)},
			wantSuccess: `{"error":false,"reply":"hi"}`,
		},
		{
			name:        "zero error field is success",
			resp:        Response{StatusCode: http.StatusOK, Body: []byte(`{"error":0,"reply":"hi"}`)},
			wantSuccess: `{"error":0,"reply":"hi"}`,
		},
		{
			name:        "error field with 500",
			resp:        Response{StatusCode: http.StatusInternalServerError, Body: []byte(`{"error":"model overloaded"}`)},
			wantMessage: "model overloaded",
			wantApp:     true,
		},
		{
			name:        "nested parse failure",
			resp:        Response{StatusCode: http.StatusOK, Body: []byte(`{"response":{"error":"Failed to parse response as JSON","raw_response":"{\"goal\":"}}`)},
			wantMessage: "Failed to parse response as JSON",
			wantRaw:     `{"goal":`,
			wantApp:     true,
		},
		{
			name:        "status without error field",
			resp:        Response{StatusCode: http.StatusBadGateway, Body: []byte(`<html>bad gateway</html>`)},
			wantMessage: "request failed with status code 502",
		},
		{
			name:        "malformed body",
			resp:        Response{StatusCode: http.StatusOK, Body: []byte(`{"reply":`)},
			wantMessage: "malformed response: invalid JSON payload",
		},
		{
			name:        "empty body",
			resp:        Response{StatusCode: http.StatusOK},
			wantMessage: "malformed response: empty payload",
		},
		{
			name:        "transport error",
			sendErr:     errors.New("request failed: context deadline exceeded"),
			wantMessage: "request failed: context deadline exceeded",
		},
		{
			name:        "transport error without text",
			sendErr:     errors.New(""),
			wantMessage: config.FallbackChatError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Classify(tt.resp, tt.sendErr)

			if tt.wantSuccess != "" {
				require.NoError(t, err)
				require.True(t, result.IsSuccess())
				assert.JSONEq(t, tt.wantSuccess, string(result.Payload().Raw()))
				return
			}

			require.True(t, result.IsFailure())
			assert.Equal(t, tt.wantMessage, result.Message())
			assert.Equal(t, tt.wantRaw, result.RawResponse())

			var appErr *types.QueryApplicationError
			var transportErr *types.QueryTransportError
			if tt.wantApp {
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.wantRaw, appErr.RawResponse)
			} else {
				require.ErrorAs(t, err, &transportErr)
			}
		})
	}
}
