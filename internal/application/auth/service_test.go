package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/go-event-checkin/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockRegistrantStore struct{ mock.Mock }

func (m *mockRegistrantStore) GetByMobile(ctx context.Context, mobile string) (*domain.Registrant, error) {
	args := m.Called(ctx, mobile)
	if r, _ := args.Get(0).(*domain.Registrant); r != nil {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockTokenProvider struct{ mock.Mock }

func (m *mockTokenProvider) Sign(mobile string) (string, error) {
	args := m.Called(mobile)
	return args.String(0), args.Error(1)
}
func (m *mockTokenProvider) Verify(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

// --- Login tests ---

func TestLogin_UnregisteredMobile(t *testing.T) {
	store := &mockRegistrantStore{}
	store.On("GetByMobile", mock.Anything, "13800138000").Return(nil, domain.ErrNotFound)
	tokens := &mockTokenProvider{}

	svc := NewService(ServiceDeps{RegistrantRepo: store, TokenProvider: tokens})
	_, err := svc.Login(context.Background(), "13800138000")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
	tokens.AssertNotCalled(t, "Sign", mock.Anything)
}

func TestLogin_StoreErrorPassesThrough(t *testing.T) {
	store := &mockRegistrantStore{}
	store.On("GetByMobile", mock.Anything, "13800138000").Return(nil, domain.ErrUnavailable)

	svc := NewService(ServiceDeps{RegistrantRepo: store, TokenProvider: &mockTokenProvider{}})
	_, err := svc.Login(context.Background(), "13800138000")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnavailable))
	assert.False(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestLogin_HappyPath(t *testing.T) {
	store := &mockRegistrantStore{}
	store.On("GetByMobile", mock.Anything, "13800138000").
		Return(&domain.Registrant{ID: 1, Mobile: "13800138000"}, nil)
	tokens := &mockTokenProvider{}
	tokens.On("Sign", "13800138000").Return("signed-token", nil)

	svc := NewService(ServiceDeps{RegistrantRepo: store, TokenProvider: tokens})
	res, err := svc.Login(context.Background(), "13800138000")

	require.NoError(t, err)
	assert.Equal(t, "signed-token", res.AccessToken)
	assert.Equal(t, "bearer", res.TokenType)
	store.AssertExpectations(t)
	tokens.AssertExpectations(t)
}

// --- Verify tests ---

func TestVerify_DelegatesToProvider(t *testing.T) {
	tokens := &mockTokenProvider{}
	tokens.On("Verify", "some-token").Return("13800138000", nil)

	svc := NewService(ServiceDeps{RegistrantRepo: &mockRegistrantStore{}, TokenProvider: tokens})
	mobile, err := svc.Verify(context.Background(), "some-token")

	require.NoError(t, err)
	assert.Equal(t, "13800138000", mobile)
	tokens.AssertExpectations(t)
}

func TestVerify_ExpiredToken(t *testing.T) {
	tokens := &mockTokenProvider{}
	tokens.On("Verify", "stale-token").Return("", domain.ErrTokenExpired)

	svc := NewService(ServiceDeps{RegistrantRepo: &mockRegistrantStore{}, TokenProvider: tokens})
	_, err := svc.Verify(context.Background(), "stale-token")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrTokenExpired))
}
