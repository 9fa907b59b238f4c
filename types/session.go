package types

import (
	"strings"
	"time"
)

type SessionStatus int

const (
	StatusLoading SessionStatus = iota
	StatusAuthenticated
	StatusUnauthenticated
)

func (s SessionStatus) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusAuthenticated:
		return "authenticated"
	case StatusUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// Session is the client's record of authentication state. Tokens never leave
// the process.
type Session struct {
	UserID       string        `json:"user_id,omitempty"`
	FullName     string        `json:"full_name,omitempty"`
	Email        string        `json:"email,omitempty"`
	Status       SessionStatus `json:"status"`
	AccessToken  string        `json:"-"`
	RefreshToken string        `json:"-"`
	ExpiresAt    *time.Time    `json:"expires_at,omitempty"`
}

func (s Session) IsAuthenticated() bool {
	return s.Status == StatusAuthenticated
}

// PersonName is the name shared by the identity provider, if any.
type PersonName struct {
	Given  string `json:"given_name,omitempty"`
	Family string `json:"family_name,omitempty"`
}

func (n PersonName) String() string {
	parts := make([]string, 0, 2)
	for _, p := range []string{n.Given, n.Family} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// IdentityCredential is valid for one exchange attempt only.
type IdentityCredential struct {
	IdentityToken string      `json:"-"`
	User          string      `json:"user,omitempty"`
	FullName      *PersonName `json:"full_name,omitempty"`
	Email         string      `json:"email,omitempty"`
}

func (c IdentityCredential) HasFullName() bool {
	return c.FullName != nil && c.FullName.String() != ""
}

// Profile row keyed by user id
type Profile struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email,omitempty"`
}
