// Package tokenpkg provides creation and verification of the access tokens
// that identify the acting staff member and the capability set they carry.
package tokenpkg

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/evermed/finvalid/internal/domain"
)

var (
	// ErrInvalidToken indicates that the token is invalid.
	ErrInvalidToken = errors.New("token is invalid")
	// ErrExpiredToken indicates that the token has expired.
	ErrExpiredToken = errors.New("token has expired")
)

// Payload contains the payload data of the token.
type Payload struct {
	ID        uuid.UUID   `json:"id"`
	Username  string      `json:"username"`
	Role      domain.Role `json:"role"`
	IssuedAt  time.Time   `json:"issued_at"`
	ExpiredAt time.Time   `json:"expired_at"`
}

// NewPayload creates a new token payload for the given username, role and duration.
func NewPayload(username string, role domain.Role, duration time.Duration) (*Payload, error) {
	tokenID, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}

	payload := &Payload{
		ID:        tokenID,
		Username:  username,
		Role:      role,
		IssuedAt:  time.Now(),
		ExpiredAt: time.Now().Add(duration),
	}

	return payload, nil
}

// Valid checks if the token payload is expired.
func (p *Payload) Valid() error {
	if time.Now().After(p.ExpiredAt) {
		return ErrExpiredToken
	}

	return nil
}

// Actor returns the acting staff member carried by the payload.
func (p *Payload) Actor() domain.Actor {
	return domain.Actor{ID: p.Username, Role: p.Role}
}

// Maker is an interface for managing tokens.
type Maker interface {
	// CreateToken creates a new token for the given username, role and duration.
	CreateToken(username string, role domain.Role, duration time.Duration) (string, *Payload, error)

	// VerifyToken checks if the token is valid.
	VerifyToken(token string) (*Payload, error)
}
