// Package auth handles password hashing and the two JWT kinds: short-lived
// access tokens presented as bearer headers, and refresh tokens that rotate
// through an httpOnly cookie.
package auth

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type Auth struct {
	secret        []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

type Claims struct {
	UserID string `json:"sub"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

func New(secret, refreshSecret string, accessExpiryMin, refreshExpiryDays int) *Auth {
	return &Auth{
		secret:        []byte(secret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     time.Duration(accessExpiryMin) * time.Minute,
		refreshTTL:    time.Duration(refreshExpiryDays) * 24 * time.Hour,
	}
}

func (a *Auth) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (a *Auth) CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (a *Auth) GenerateAccessToken(userID, email string) (string, error) {
	return a.generate(userID, email, a.secret, a.accessTTL)
}

func (a *Auth) GenerateRefreshToken(userID, email string) (string, error) {
	return a.generate(userID, email, a.refreshSecret, a.refreshTTL)
}

// RefreshExpiry returns the absolute expiry for a refresh token issued now.
func (a *Auth) RefreshExpiry() time.Time {
	return time.Now().Add(a.refreshTTL)
}

func (a *Auth) generate(userID, email string, secret []byte, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func (a *Auth) ValidateAccessToken(tokenStr string) (*Claims, error) {
	return a.validate(tokenStr, a.secret)
}

func (a *Auth) ValidateRefreshToken(tokenStr string) (*Claims, error) {
	return a.validate(tokenStr, a.refreshSecret)
}

func (a *Auth) validate(tokenStr string, secret []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// ExtractClaims reads the access JWT from the Authorization header.
// Returns nil if no valid token is present.
func (a *Auth) ExtractClaims(r *http.Request) *Claims {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil
	}
	claims, err := a.ValidateAccessToken(parts[1])
	if err != nil {
		return nil
	}
	return claims
}
