package lib

import (
	"errors"
	"net/http"
	"printdoot_server/config"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminClaims is the token payload for the admin surface.
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateAdminToken issues a signed admin token with the configured expiry.
func GenerateAdminToken() (string, error) {
	cfg := config.GetConfig()

	claims := AdminClaims{
		Role: "ADMIN",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Server.AppName,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(cfg.Auth.AdminTokenExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Auth.AdminTokenSecret))
}

// ParseAdminToken validates a token string and returns its claims.
func ParseAdminToken(tokenStr string) (*AdminClaims, error) {
	cfg := config.GetConfig()

	token, err := jwt.ParseWithClaims(tokenStr, &AdminClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(cfg.Auth.AdminTokenSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*AdminClaims)
	if !ok || !token.Valid || claims.Role != "ADMIN" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// ExtractAdminClaims reads and validates the bearer token from a request.
func ExtractAdminClaims(r *http.Request) (*AdminClaims, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil, ErrInvalidToken
	}

	tokenStr := strings.TrimPrefix(header, "Bearer ")
	if tokenStr == header {
		return nil, ErrInvalidToken
	}

	return ParseAdminToken(tokenStr)
}
