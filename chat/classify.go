package chat

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"clementus360/glowup/config"
	"clementus360/glowup/types"
)

// Classify turns a settled round trip into a QueryResult. The returned error
// is nil only for Success and is either a *types.QueryTransportError or a
// *types.QueryApplicationError otherwise.
func Classify(resp Response, sendErr error) (types.QueryResult, error) {
	if sendErr != nil {
		msg := strings.TrimSpace(sendErr.Error())
		if msg == "" {
			msg = config.FallbackChatError
		}
		return types.Failure(msg, ""), &types.QueryTransportError{Detail: msg, Err: sendErr}
	}

	body, parseErr := types.ParsePayload(resp.Body)

	// An error field wins regardless of the status code.
	if parseErr == nil {
		if eb, ok := errorBody(body); ok {
			return types.Failure(eb.Error, eb.RawResponse), &types.QueryApplicationError{Detail: eb.Error, RawResponse: eb.RawResponse}
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := fmt.Sprintf("request failed with status code %d", resp.StatusCode)
		return types.Failure(msg, ""), &types.QueryTransportError{Detail: msg}
	}

	if parseErr != nil {
		msg := fmt.Sprintf("malformed response: %v", parseErr)
		return types.Failure(msg, ""), &types.QueryTransportError{Detail: msg, Err: parseErr}
	}

	payload := unwrapEnvelope(body)
	if eb, ok := errorBody(payload); ok {
		return types.Failure(eb.Error, eb.RawResponse), &types.QueryApplicationError{Detail: eb.Error, RawResponse: eb.RawResponse}
	}

	return types.Success(payload), nil
}

// errorBody reports whether p carries a set error field. null, false, "" and 0
// count as unset. Non-string errors are reported as their compact JSON.
func errorBody(p types.Payload) (types.ChatErrorBody, bool) {
	field, ok := p.Field("error")
	if !ok {
		return types.ChatErrorBody{}, false
	}

	var msg string
	switch field.Kind() {
	case types.PayloadNull:
		return types.ChatErrorBody{}, false
	case types.PayloadBool:
		if string(field.Raw()) == "false" {
			return types.ChatErrorBody{}, false
		}
	case types.PayloadNumber:
		var n float64
		if err := json.Unmarshal(field.Raw(), &n); err == nil && n == 0 {
			return types.ChatErrorBody{}, false
		}
	case types.PayloadString:
		msg = p.StringField("error")
		if msg == "" {
			return types.ChatErrorBody{}, false
		}
	}

	if msg == "" {
		var compact bytes.Buffer
		if err := json.Compact(&compact, field.Raw()); err != nil {
			msg = string(field.Raw())
		} else {
			msg = compact.String()
		}
	}

	return types.ChatErrorBody{Error: msg, RawResponse: p.StringField("raw_response")}, true
}

// unwrapEnvelope strips the {"response": ...} wrapper the chat backend puts
// around its parsed reply. Any other shape is the payload itself.
func unwrapEnvelope(body types.Payload) types.Payload {
	members, ok := body.Object()
	if !ok || len(members) != 1 {
		return body
	}
	if _, ok := members["response"]; !ok {
		return body
	}
	inner, ok := body.Field("response")
	if !ok {
		return body
	}
	return inner
}
