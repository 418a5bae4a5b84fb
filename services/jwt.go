package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DeviceClaims carries the device fingerprint as subject. Tokens without a
// subject are rejected on parse.
type DeviceClaims struct {
	jwt.RegisteredClaims
}

type IJWTService interface {
	GenerateToken(deviceHash string) (string, error)
	ParseToken(tokenStr string) (*DeviceClaims, error)
}

type JWTService struct {
	Secret    []byte
	Issuer    string
	AccessTTL time.Duration
}

func NewJWTService(secret []byte, issuer string, accessTtl time.Duration) *JWTService {
	return &JWTService{
		Secret:    secret,
		Issuer:    issuer,
		AccessTTL: accessTtl,
	}
}

func (j *JWTService) GenerateToken(deviceHash string) (string, error) {
	if len(j.Secret) == 0 {
		return "", errors.New("JWT secret is not configured")
	}

	now := time.Now()
	claims := &DeviceClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   deviceHash,
			Issuer:    j.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.AccessTTL)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.Secret)
}

func (j *JWTService) ParseToken(tokenStr string) (*DeviceClaims, error) {
	if len(j.Secret) == 0 {
		return nil, errors.New("JWT secret is not configured")
	}

	token, err := jwt.ParseWithClaims(tokenStr, &DeviceClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return j.Secret, nil
	})

	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*DeviceClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no device subject")
	}
	return claims, nil
}
