package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNotJWT токен не является JWT; для непрозрачных токенов это нормально
var ErrNotJWT = errors.New("token is not a JWT")

// TokenInfo то, что клиент может узнать о токене без ключа сервера
type TokenInfo struct {
	ExpiresAt time.Time
	IssuedAt  time.Time
	Subject   string
	Issuer    string
}

// Expired сообщает, истёк ли токен к моменту now. Токен без exp не истекает.
func (i *TokenInfo) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && now.After(i.ExpiresAt)
}

// Inspect декодирует claims без проверки подписи: ключа у клиента нет,
// результат используется только для отображения в status.
func Inspect(token string) (*TokenInfo, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotJWT, err)
	}

	info := &TokenInfo{
		Subject: claims.Subject,
		Issuer:  claims.Issuer,
	}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	if claims.IssuedAt != nil {
		info.IssuedAt = claims.IssuedAt.Time
	}
	return info, nil
}
