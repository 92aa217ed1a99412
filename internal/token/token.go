package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

// Pair is the access+refresh token pair returned on login.
type Pair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Manager issues and verifies HS256-signed bearer tokens.
type Manager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewManager(secret string, accessTTL, refreshTTL time.Duration) *Manager {
	return &Manager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (m *Manager) NewPair(userID string) (Pair, error) {
	access, err := m.sign(userID, TypeAccess, m.accessTTL)
	if err != nil {
		return Pair{}, fmt.Errorf("sign access token: %w", err)
	}

	refresh, err := m.sign(userID, TypeRefresh, m.refreshTTL)
	if err != nil {
		return Pair{}, fmt.Errorf("sign refresh token: %w", err)
	}

	return Pair{Access: access, Refresh: refresh}, nil
}

func (m *Manager) sign(userID, typ string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"typ": typ,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify checks the signature, expiry and token type, and returns the
// subject user id.
func (m *Manager) Verify(tokenString, wantType string) (string, error) {
	tok, err := jwt.Parse(
		tokenString,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return m.secret, nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
	)
	if err != nil || !tok.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}

	if typ, _ := claims["typ"].(string); typ != wantType {
		return "", ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", ErrInvalidToken
	}

	return sub, nil
}
