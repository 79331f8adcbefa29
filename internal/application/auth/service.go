package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-event-checkin/internal/domain"
)

// LoginRequest carries the sole credential: a pre-registered mobile number.
// There is no password — possession of the registered mobile is enough for
// a one-day event.
type LoginRequest struct {
	Mobile string `json:"mobile" validate:"required"`
}

// TokenResult is the issued bearer token in OAuth2 response shape.
type TokenResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type Service interface {
	Login(ctx context.Context, mobile string) (*TokenResult, error)
	// Verify resolves a presented token back to the mobile it asserts.
	Verify(ctx context.Context, token string) (string, error)
}

type registrantStore interface {
	GetByMobile(ctx context.Context, mobile string) (*domain.Registrant, error)
}

type tokenProvider interface {
	Sign(mobile string) (string, error)
	Verify(token string) (string, error)
}

type service struct {
	repo   registrantStore
	tokens tokenProvider
}

type ServiceDeps struct {
	RegistrantRepo registrantStore
	TokenProvider  tokenProvider
}

func NewService(deps ServiceDeps) Service {
	return &service{repo: deps.RegistrantRepo, tokens: deps.TokenProvider}
}

func (s *service) Login(ctx context.Context, mobile string) (*TokenResult, error) {
	if _, err := s.repo.GetByMobile(ctx, mobile); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("mobile is not registered: %w", domain.ErrUnauthorized)
		}
		return nil, err
	}
	token, err := s.tokens.Sign(mobile)
	if err != nil {
		return nil, err
	}
	return &TokenResult{AccessToken: token, TokenType: "bearer"}, nil
}

func (s *service) Verify(_ context.Context, token string) (string, error) {
	return s.tokens.Verify(token)
}
