// Package identity wraps the platform credential prompt used for Sign in with Apple.
package identity

import (
	"context"

	"clementus360/glowup/types"
)

type Scope string

const (
	ScopeFullName Scope = "full_name"
	ScopeEmail    Scope = "email"
)

// RequiredScopes are requested on every prompt.
var RequiredScopes = []Scope{ScopeFullName, ScopeEmail}

// Bridge acquires a single-use identity credential from the user.
//
// RequestCredential returns types.ErrCanceled when the user dismisses the
// prompt and a *types.ProviderError for any other failure. It never retries.
type Bridge interface {
	RequestCredential(ctx context.Context) (types.IdentityCredential, error)
}

func withRequiredScopes(scopes []Scope) []Scope {
	out := make([]Scope, 0, len(scopes)+len(RequiredScopes))
	seen := make(map[Scope]bool)
	for _, s := range append(append([]Scope{}, RequiredScopes...), scopes...) {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
