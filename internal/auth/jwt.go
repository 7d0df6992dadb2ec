package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const Issuer = "beauty-parlor"

var ErrInvalidToken = errors.New("invalid token")

// Manager issues and verifies HS256 access tokens whose subject is the
// customer id. A zero TTL issues tokens without an expiry.
type Manager struct {
	Secret []byte
	TTL    time.Duration
	Issuer string
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{Secret: []byte(secret), TTL: ttl, Issuer: Issuer}
}

func (m *Manager) Issue(customerID uint) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:  strconv.FormatUint(uint64(customerID), 10),
		Issuer:   m.Issuer,
		IssuedAt: jwt.NewNumericDate(now),
	}
	if m.TTL > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(m.TTL))
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.Secret)
}

// Parse returns the customer id carried by a valid token.
func (m *Manager) Parse(tokenStr string) (uint, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	}, jwt.WithIssuer(m.Issuer))
	if err != nil {
		return 0, err
	}
	if !parsed.Valid {
		return 0, ErrInvalidToken
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrInvalidToken
	}
	return uint(id), nil
}
