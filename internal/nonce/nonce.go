// Package nonce issues short-lived tokens bound to one admin action and one
// admin, so a form can only trigger the action it was rendered for.
package nonce

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	ActionUpdateSettings = "update_settings"
	ActionSendProducts   = "send_products"

	audience = "algowoo-action"
)

var ErrInvalidToken = errors.New("invalid or expired action token")

type claims struct {
	Action string `json:"act"`
	jwt.RegisteredClaims
}

type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func New(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Issuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue returns a token valid for action and subject until the issuer's
// TTL elapses.
func (i *Issuer) Issue(action, subject string) (string, error) {
	if subject == "" {
		return "", fmt.Errorf("%w: empty subject", ErrInvalidToken)
	}
	now := i.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Action: action,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Audience:  jwt.ClaimStrings{audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	})
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks that token was issued by us to subject for action and has
// not expired.
func (i *Issuer) Verify(token, action, subject string) error {
	if token == "" || subject == "" {
		return ErrInvalidToken
	}
	var c claims
	_, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(audience),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if c.Action != action {
		return fmt.Errorf("%w: token is for %q", ErrInvalidToken, c.Action)
	}
	if c.Subject != subject {
		return fmt.Errorf("%w: token belongs to another user", ErrInvalidToken)
	}
	return nil
}
