package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vilanovabarber/booking-api/internal/domain/identity"
)

// SessionTTL bounds the client session; the cookie Max-Age matches it.
const SessionTTL = 7 * 24 * time.Hour

// SignSession issues the HS256 session token carried by the session_token
// cookie. The payload is kept minimal: enough to hydrate an identity
// without a database read.
func SignSession(secret string, u identity.User) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"sub":    u.ID,
		"openId": u.OpenID,
		"name":   u.Name,
		"role":   u.Role,
		"iat":    now.Unix(),
		"exp":    now.Add(SessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifySession parses and validates a session token. It fails closed:
// malformed, mis-signed or expired tokens all return ok=false and the
// caller is treated as anonymous, never as an error.
func VerifySession(secret, tokenString string) (identity.User, bool) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return identity.User{}, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return identity.User{}, false
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return identity.User{}, false
	}
	openID, _ := claims["openId"].(string)
	name, _ := claims["name"].(string)
	role, _ := claims["role"].(string)

	return identity.User{
		ID:     uint(sub),
		OpenID: openID,
		Name:   name,
		Role:   role,
	}, true
}
