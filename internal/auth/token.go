package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Назначение токена, клейм "for". Access токен нельзя использовать
// там, где требуется refresh, и наоборот.
const (
	PurposeAccess  = "access"
	PurposeRefresh = "refresh"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims - расшифрованные клеймы токена {sub, exp, for}.
type Claims struct {
	Username  string
	Purpose   string
	ExpiresAt time.Time
}

// TokenCodec подписывает и проверяет компактные клеймы HS256.
// Чистая функция от входа и секрета сервера, состояния нет.
type TokenCodec struct {
	secret []byte
}

func NewTokenCodec(secret string) *TokenCodec {
	return &TokenCodec{secret: []byte(secret)}
}

// Encode выпускает подписанный токен с клеймами {sub, exp, for}.
func (c *TokenCodec) Encode(username, purpose string, expiresAt time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": username,
		"exp": expiresAt.Unix(),
		"for": purpose,
	})
	return token.SignedString(c.secret)
}

// Decode проверяет подпись и срок действия.
// Любой дефект (подпись, структура, exp в прошлом) дает ErrInvalidToken.
func (c *TokenCodec) Decode(tokenString string) (*Claims, error) {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return c.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	claimsMap, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	claims := &Claims{}
	claims.Username, _ = claimsMap["sub"].(string)
	claims.Purpose, _ = claimsMap["for"].(string)
	if exp, err := claimsMap.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}

	return claims, nil
}
