package types

import (
	"errors"
	"fmt"
)

// ErrCanceled means the user dismissed the credential prompt. It is not a failure.
var ErrCanceled = errors.New("sign-in canceled by user")

var (
	ErrSessionLoading     = errors.New("session bootstrap has not completed")
	ErrEmptyIdentityToken = errors.New("identity token is empty")
)

// ProviderError is a failure inside the identity provider layer.
type ProviderError struct {
	Detail string
	Err    error
}

func (e *ProviderError) Error() string {
	return joinDetail("identity provider error", e.Detail, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// ExchangeError means the backend rejected or failed the token exchange.
type ExchangeError struct {
	Detail string
	Err    error
}

func (e *ExchangeError) Error() string {
	return joinDetail("session exchange failed", e.Detail, e.Err)
}

func (e *ExchangeError) Unwrap() error { return e.Err }

// ProfileWriteError never changes the sign-in outcome.
type ProfileWriteError struct {
	Detail string
	Err    error
}

func (e *ProfileWriteError) Error() string {
	return joinDetail("profile write failed", e.Detail, e.Err)
}

func (e *ProfileWriteError) Unwrap() error { return e.Err }

// QueryTransportError covers missing, malformed, or non-success chat responses.
type QueryTransportError struct {
	Detail string
	Err    error
}

func (e *QueryTransportError) Error() string {
	return joinDetail("chat request failed", e.Detail, e.Err)
}

func (e *QueryTransportError) Unwrap() error { return e.Err }

// QueryApplicationError is an error reported inside a chat response body.
type QueryApplicationError struct {
	Detail      string
	RawResponse string
}

func (e *QueryApplicationError) Error() string {
	return joinDetail("chat service error", e.Detail, nil)
}

func joinDetail(prefix, detail string, err error) string {
	switch {
	case detail != "" && err != nil:
		return fmt.Sprintf("%s: %s: %v", prefix, detail, err)
	case detail != "":
		return fmt.Sprintf("%s: %s", prefix, detail)
	case err != nil:
		return fmt.Sprintf("%s: %v", prefix, err)
	default:
		return prefix
	}
}
