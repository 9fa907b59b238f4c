package identity

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt"
)

type tokenClaims struct {
	Subject string
	Email   string
}

// parseIdentityToken reads the claims of an Apple identity token. The
// signature is checked by the backend during the exchange, not here.
func parseIdentityToken(raw string) (tokenClaims, error) {
	token, _, err := new(jwt.Parser).ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return tokenClaims{}, fmt.Errorf("invalid JWT format")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return tokenClaims{}, fmt.Errorf("invalid JWT claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok || strings.TrimSpace(sub) == "" {
		return tokenClaims{}, fmt.Errorf("missing sub in token")
	}

	email, _ := claims["email"].(string)
	return tokenClaims{Subject: sub, Email: email}, nil
}
