package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Viviane-Queiroz/dev-shop/configs"
)

// The session cookie carries an HS256 JWT whose "sid" claim names the
// server-side session record.

func NewToken(cfg configs.Config, sessionID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss": cfg.Session.Issuer,
		"aud": cfg.Session.Audience,
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"exp": now.Add(cfg.Session.TTL).Unix(),
		"sid": sessionID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Session.JWTSecret))
}

// ParseToken validates the cookie token and returns the session id.
func ParseToken(cfg configs.Config, raw string) (string, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(cfg.Session.JWTSecret), nil
	}, jwt.WithLeeway(30*time.Second)) // small clock skew
	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid session token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid session claims")
	}
	if claims["iss"] != cfg.Session.Issuer || claims["aud"] != cfg.Session.Audience {
		return "", fmt.Errorf("session token iss/aud mismatch")
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		return "", fmt.Errorf("session token missing sid")
	}
	return sid, nil
}
