// internal/auth/token.go

// Package auth отвечает за сессионные токены и проверку паролей.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Ivan-49/FirstFullStak/internal/apperrors"
)

// NowFunc подменяется в тестах.
var NowFunc = time.Now

// Claims — полезная нагрузка сессионного токена: id пользователя и срок действия.
type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenService выпускает и проверяет подписанные bearer-токены.
// Списка отзыва нет: токен действителен до естественного истечения срока.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// CreateToken выпускает токен для пользователя со сроком действия ttl (7 дней).
func (s *TokenService) CreateToken(userID uint) (string, error) {
	now := NowFunc()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// VerifyToken возвращает id пользователя из токена.
// Любая причина отказа (повреждён, не та подпись, истёк) наружу не
// различается — только ErrUnauthorized.
func (s *TokenService) VerifyToken(tokenStr string) (uint, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return NowFunc() }))
	if err != nil || !token.Valid {
		return 0, apperrors.ErrUnauthorized
	}
	return claims.UserID, nil
}
