package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
)

// Identity is the signed-in user every core component is built for.
type Identity struct {
	UserID      string
	Email       string
	AccessToken string
	ExpiresAt   time.Time
}

// Expired reports whether the token's exp claim is before now. Tokens without exp never expire.
func (i Identity) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && now.After(i.ExpiresAt)
}

// ParseAccessToken reads the identity out of a Supabase access token. The
// signature is not verified here; the store verifies it on every request.
func ParseAccessToken(accessToken string) (Identity, error) {
	jwtString := strings.TrimSpace(strings.TrimPrefix(accessToken, "Bearer "))
	if jwtString == "" {
		return Identity{}, fmt.Errorf("missing access token")
	}

	// Parse the JWT
	token, _, err := new(jwt.Parser).ParseUnverified(jwtString, jwt.MapClaims{})
	if err != nil {
		return Identity{}, fmt.Errorf("invalid JWT format")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, fmt.Errorf("invalid JWT claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return Identity{}, fmt.Errorf("missing sub in token")
	}

	identity := Identity{
		UserID:      sub,
		AccessToken: jwtString,
	}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	// numeric claims decode as float64
	if exp, ok := claims["exp"].(float64); ok {
		identity.ExpiresAt = time.Unix(int64(exp), 0)
	}
	return identity, nil
}
