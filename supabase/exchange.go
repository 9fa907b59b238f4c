package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"clementus360/glowup/config"
	"clementus360/glowup/types"

	"github.com/google/uuid"
	gotypes "github.com/supabase-community/gotrue-go/types"
)

type idTokenGrant struct {
	Provider string `json:"provider"`
	IDToken  string `json:"id_token"`
}

// Exchange trades an Apple identity token for a Supabase session. It makes a
// single request; any failure comes back as *types.ExchangeError.
func (e *Exchanger) Exchange(ctx context.Context, identityToken string) (types.Session, error) {
	if strings.TrimSpace(identityToken) == "" {
		return types.Session{}, &types.ExchangeError{Err: types.ErrEmptyIdentityToken}
	}

	body, err := json.Marshal(idTokenGrant{Provider: config.ProviderApple, IDToken: identityToken})
	if err != nil {
		return types.Session{}, &types.ExchangeError{Detail: "failed to marshal request", Err: err}
	}

	url := e.apiURL + authPath + "/token?grant_type=" + idTokenGrantType
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return types.Session{}, &types.ExchangeError{Detail: "failed to create request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", e.apiKey)

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return types.Session{}, &types.ExchangeError{Detail: "request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		fullBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return types.Session{}, &types.ExchangeError{Detail: fmt.Sprintf("response status code %d", resp.StatusCode)}
		}
		return types.Session{}, &types.ExchangeError{Detail: fmt.Sprintf("response status code %d: %s", resp.StatusCode, bytes.TrimSpace(fullBody))}
	}

	var res gotypes.TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return types.Session{}, &types.ExchangeError{Detail: "failed to decode response", Err: err}
	}

	session, err := sessionFromAuth(res.Session)
	if err != nil {
		return types.Session{}, &types.ExchangeError{Detail: err.Error()}
	}

	e.mu.Lock()
	e.client.UpdateAuthSession(res.Session)
	e.mu.Unlock()

	return session, nil
}

// Restore resumes a session from an access token issued earlier.
func (e *Exchanger) Restore(ctx context.Context, accessToken string) (types.Session, error) {
	if err := ctx.Err(); err != nil {
		return types.Session{}, err
	}
	if strings.TrimSpace(accessToken) == "" {
		return types.Session{}, &types.ExchangeError{Detail: "access token is empty"}
	}

	user, err := e.currentClient().Auth.WithToken(accessToken).GetUser()
	if err != nil {
		return types.Session{}, &types.ExchangeError{Detail: "failed to restore session", Err: err}
	}

	authSession := gotypes.Session{AccessToken: accessToken, TokenType: "bearer", User: user.User}
	session, err := sessionFromAuth(authSession)
	if err != nil {
		return types.Session{}, &types.ExchangeError{Detail: err.Error()}
	}

	e.mu.Lock()
	e.client.UpdateAuthSession(authSession)
	e.mu.Unlock()

	return session, nil
}

// SignOut revokes the remote refresh tokens on a best-effort basis and drops
// the user's credentials from the client either way.
func (e *Exchanger) SignOut(ctx context.Context) error {
	client := e.currentClient()
	logoutErr := client.Auth.Logout()

	anon, err := NewClient(e.apiURL, e.apiKey)
	if err == nil {
		e.mu.Lock()
		e.client = anon
		e.mu.Unlock()
	}

	if logoutErr != nil {
		return fmt.Errorf("failed to revoke remote session: %w", logoutErr)
	}
	return err
}

func sessionFromAuth(auth gotypes.Session) (types.Session, error) {
	session := types.Session{
		Email:        auth.User.Email,
		Status:       types.StatusAuthenticated,
		AccessToken:  auth.AccessToken,
		RefreshToken: auth.RefreshToken,
	}

	if auth.User.ID != uuid.Nil {
		session.UserID = auth.User.ID.String()
	}

	claims, claimsErr := parseAccessToken(auth.AccessToken)
	if session.UserID == "" && claimsErr == nil {
		session.UserID = claims.Subject
	}
	if session.UserID == "" {
		return types.Session{}, fmt.Errorf("response did not include a user id")
	}

	switch {
	case auth.ExpiresAt > 0:
		at := time.Unix(auth.ExpiresAt, 0)
		session.ExpiresAt = &at
	case auth.ExpiresIn > 0:
		at := time.Now().Add(time.Duration(auth.ExpiresIn) * time.Second)
		session.ExpiresAt = &at
	case claimsErr == nil:
		session.ExpiresAt = claims.ExpiresAt
	}

	session.FullName = metadataString(auth.User.UserMetadata, "full_name", "name")
	return session, nil
}

func metadataString(meta map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if v, ok := meta[key].(string); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
