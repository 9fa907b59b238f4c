package supabase

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

type accessClaims struct {
	Subject   string
	ExpiresAt *time.Time
}

// parseAccessToken reads the claims of a Supabase access token without
// verifying it. The token came straight from the auth server.
func parseAccessToken(accessToken string) (accessClaims, error) {
	token, _, err := new(jwt.Parser).ParseUnverified(accessToken, jwt.MapClaims{})
	if err != nil {
		return accessClaims{}, fmt.Errorf("invalid JWT format")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return accessClaims{}, fmt.Errorf("invalid JWT claims")
	}

	var out accessClaims
	if sub, ok := claims["sub"].(string); ok {
		out.Subject = sub
	}
	if exp, ok := claims["exp"].(float64); ok && exp > 0 {
		at := time.Unix(int64(exp), 0)
		out.ExpiresAt = &at
	}
	return out, nil
}
