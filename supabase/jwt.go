package supabase

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt"
)

// GenerateTestJWT mints a token for local development against a project whose
// JWT secret is in SUPABASE_JWT_SECRET.
func GenerateTestJWT(userID, email string, ttl time.Duration) (string, error) {
	secret := os.Getenv("SUPABASE_JWT_SECRET")
	if secret == "" {
		return "", fmt.Errorf("SUPABASE_JWT_SECRET is missing")
	}

	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"aud":   "authenticated",
		"role":  "authenticated",
		"exp":   time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
