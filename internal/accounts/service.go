package accounts

import (
	"context"
	"strings"
	"sync"
	"time"

	pkgerrors "github.com/shopvibe/storefront-backend/pkg/errors"
)

// Profile is the mock account attached to a session. There is no credential
// store and no token issuance: any well-formed login succeeds, matching the
// storefront's demo account area.
type Profile struct {
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	MemberSince time.Time `json:"memberSince"`
}

// OrderItem is a line snapshot kept in the order history.
type OrderItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
}

// OrderRecord is one placed order as shown on the account page.
type OrderRecord struct {
	OrderNumber string      `json:"orderNumber"`
	PlacedAt    time.Time   `json:"placedAt"`
	Status      string      `json:"status"`
	Total       int64       `json:"total"`
	Items       []OrderItem `json:"items"`
}

// RegisterInput carries the sign-up form fields.
type RegisterInput struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
}

// LoginInput carries the sign-in form fields.
type LoginInput struct {
	Email    string
	Password string
}

// Service exposes the mock account area: session-scoped profiles and the
// order history appended by checkout.
type Service interface {
	Register(ctx context.Context, sessionID string, input RegisterInput) (Profile, error)
	Login(ctx context.Context, sessionID string, input LoginInput) (Profile, error)
	RecordOrder(ctx context.Context, sessionID string, order OrderRecord) error
	Orders(ctx context.Context, sessionID string) ([]OrderRecord, error)
}

type service struct {
	mu       sync.Mutex
	profiles map[string]Profile
	orders   map[string][]OrderRecord
	now      func() time.Time
}

// NewService builds the in-memory account service.
func NewService() Service {
	return &service{
		profiles: map[string]Profile{},
		orders:   map[string][]OrderRecord{},
		now:      time.Now,
	}
}

// Register validates the sign-up form and attaches a fresh profile to the
// session. A password mismatch rejects the form without mutating state.
func (s *service) Register(ctx context.Context, sessionID string, input RegisterInput) (Profile, error) {
	if sessionID == "" {
		return Profile{}, pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return Profile{}, pkgerrors.New(pkgerrors.CodeValidation, "email and password are required")
	}
	if input.Password != input.ConfirmPassword {
		return Profile{}, pkgerrors.New(pkgerrors.CodeValidation, "passwords do not match")
	}

	profile := Profile{
		FirstName:   strings.TrimSpace(input.FirstName),
		LastName:    strings.TrimSpace(input.LastName),
		Email:       strings.TrimSpace(input.Email),
		MemberSince: s.now(),
	}

	s.mu.Lock()
	s.profiles[sessionID] = profile
	s.mu.Unlock()

	return profile, nil
}

// Login accepts any non-empty credentials, per the demo contract.
func (s *service) Login(ctx context.Context, sessionID string, input LoginInput) (Profile, error) {
	if sessionID == "" {
		return Profile{}, pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return Profile{}, pkgerrors.New(pkgerrors.CodeValidation, "email and password are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.profiles[sessionID]; ok {
		return existing, nil
	}
	profile := Profile{
		Email:       strings.TrimSpace(input.Email),
		MemberSince: s.now(),
	}
	s.profiles[sessionID] = profile
	return profile, nil
}

// RecordOrder appends a confirmation snapshot to the session's history.
func (s *service) RecordOrder(ctx context.Context, sessionID string, order OrderRecord) error {
	if sessionID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	s.mu.Lock()
	s.orders[sessionID] = append(s.orders[sessionID], order)
	s.mu.Unlock()
	return nil
}

// Orders returns the session's order history, newest first.
func (s *service) Orders(ctx context.Context, sessionID string) ([]OrderRecord, error) {
	if sessionID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "session id is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	history := s.orders[sessionID]
	out := make([]OrderRecord, 0, len(history))
	for i := len(history) - 1; i >= 0; i-- {
		out = append(out, history[i])
	}
	return out, nil
}
