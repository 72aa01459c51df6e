package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	unlockTokenPurpose = "app_unlock"
	unlockTokenSubject = "device"
	DefaultUnlockTTL   = 12 * time.Hour
)

var (
	ErrUnlockTokenMissing        = errors.New("missing unlock token")
	ErrUnlockTokenInvalid        = errors.New("invalid unlock token")
	ErrUnlockTokenInvalidPurpose = errors.New("invalid unlock token purpose")
	ErrUnlockTokenExpired        = errors.New("expired unlock token")
	ErrUnlockTokenStale          = errors.New("unlock token issued for an older passcode")
)

type UnlockClaims struct {
	Purpose    string `json:"purpose"`
	Generation int64  `json:"gen"`
	jwt.RegisteredClaims
}

func BuildUnlockToken(secretKey []byte, generation int64, ttl time.Duration, now time.Time) (string, time.Time, error) {
	if ttl <= 0 {
		ttl = DefaultUnlockTTL
	}
	if now.IsZero() {
		now = time.Now()
	}

	expiresAt := now.Add(ttl)
	claims := UnlockClaims{
		Purpose:    unlockTokenPurpose,
		Generation: generation,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   unlockTokenSubject,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secretKey)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func ParseUnlockToken(secretKey []byte, rawToken string, now time.Time) (*UnlockClaims, error) {
	if strings.TrimSpace(rawToken) == "" {
		return nil, ErrUnlockTokenMissing
	}
	if now.IsZero() {
		now = time.Now()
	}

	claims := &UnlockClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return secretKey, nil
	}, jwt.WithTimeFunc(func() time.Time { return now }))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrUnlockTokenExpired
		}
		return nil, ErrUnlockTokenInvalid
	}
	if !token.Valid {
		return nil, ErrUnlockTokenInvalid
	}
	if claims.Purpose != unlockTokenPurpose {
		return nil, ErrUnlockTokenInvalidPurpose
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(now) {
		return nil, ErrUnlockTokenExpired
	}
	return claims, nil
}
