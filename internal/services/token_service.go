package services

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/organizo-app/organizo/internal/models"
)

var ErrTokenInvalid = errors.New("token invalid")

type accessClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

// TokenService issues and validates HS256 bearer tokens bound to a user id.
type TokenService struct {
	secretKey []byte
	ttl       time.Duration
}

func NewTokenService(secretKey string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &TokenService{secretKey: []byte(secretKey), ttl: ttl}
}

func (service *TokenService) Issue(user *models.User) (string, error) {
	now := time.Now()
	claims := accessClaims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(service.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(service.secretKey)
}

// Parse validates signature and expiry and returns the embedded user id.
func (service *TokenService) Parse(raw string) (uint, error) {
	claims := accessClaims{}
	token, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return service.secretKey, nil
	})
	if err != nil || !token.Valid || claims.UserID == 0 {
		return 0, ErrTokenInvalid
	}
	return claims.UserID, nil
}
