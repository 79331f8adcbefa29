package registrant

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

func (m *mockRegistrantStore) Insert(ctx context.Context, reg *domain.Registrant) (*domain.Registrant, error) {
	args := m.Called(ctx, reg)
	if r, _ := args.Get(0).(*domain.Registrant); r != nil {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockRegistrantStore) InsertBatch(ctx context.Context, regs []domain.Registrant) (int64, error) {
	args := m.Called(ctx, regs)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockRegistrantStore) GetByMobile(ctx context.Context, mobile string) (*domain.Registrant, error) {
	args := m.Called(ctx, mobile)
	if r, _ := args.Get(0).(*domain.Registrant); r != nil {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockRegistrantStore) ListAll(ctx context.Context) ([]domain.Registrant, error) {
	args := m.Called(ctx)
	if rs, _ := args.Get(0).([]domain.Registrant); rs != nil {
		return rs, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockRegistrantStore) ListByGroup(ctx context.Context, group string) ([]domain.Registrant, error) {
	args := m.Called(ctx, group)
	if rs, _ := args.Get(0).([]domain.Registrant); rs != nil {
		return rs, args.Error(1)
	}
	return nil, args.Error(1)
}

// --- helpers ---

func ptr[T any](v T) *T { return &v }

func baseReq() domain.CreateRegistrantRequest {
	return domain.CreateRegistrantRequest{
		Name:       "Alice",
		Mobile:     "13800138000",
		Department: "Engineering",
		Company:    "Acme",
	}
}

func baseRow() domain.ImportRow {
	return domain.ImportRow{
		Name:       "Alice",
		Mobile:     "13800138000",
		Department: "Engineering",
		Company:    "Acme",
	}
}

// --- Create tests ---

func TestCreate_InvalidMobile(t *testing.T) {
	store := &mockRegistrantStore{}
	svc := NewService(ServiceDeps{RegistrantRepo: store})

	req := baseReq()
	req.Mobile = "not-a-number"
	_, err := svc.Create(context.Background(), req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
	store.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCreate_MissingName(t *testing.T) {
	svc := NewService(ServiceDeps{RegistrantRepo: &mockRegistrantStore{}})

	req := baseReq()
	req.Name = ""
	_, err := svc.Create(context.Background(), req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
}

func TestCreate_NegativeFamilyCount(t *testing.T) {
	svc := NewService(ServiceDeps{RegistrantRepo: &mockRegistrantStore{}})

	req := baseReq()
	req.FamilyChild = ptr(-1)
	_, err := svc.Create(context.Background(), req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
}

func TestCreate_DefaultsFamilyEmployee(t *testing.T) {
	store := &mockRegistrantStore{}
	store.On("Insert", mock.Anything, mock.AnythingOfType("*domain.Registrant")).
		Return(&domain.Registrant{ID: 1, Mobile: "13800138000", FamilyEmployee: 1}, nil)

	svc := NewService(ServiceDeps{RegistrantRepo: store})
	reg, err := svc.Create(context.Background(), baseReq())

	require.NoError(t, err)
	assert.Equal(t, 1, reg.FamilyEmployee)
	inserted := store.Calls[0].Arguments.Get(1).(*domain.Registrant)
	assert.Equal(t, 1, inserted.FamilyEmployee)
	store.AssertExpectations(t)
}

func TestCreate_DuplicateMobileConflict(t *testing.T) {
	store := &mockRegistrantStore{}
	store.On("Insert", mock.Anything, mock.Anything).
		Return(nil, domain.ErrConflict)

	svc := NewService(ServiceDeps{RegistrantRepo: store})
	_, err := svc.Create(context.Background(), baseReq())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConflict))
	store.AssertExpectations(t)
}

// --- BulkImport tests ---

func TestBulkImport_EmptyRows(t *testing.T) {
	svc := NewService(ServiceDeps{RegistrantRepo: &mockRegistrantStore{}})

	_, err := svc.BulkImport(context.Background(), nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
}

func TestBulkImport_OneBadRowRejectsAll(t *testing.T) {
	store := &mockRegistrantStore{}
	svc := NewService(ServiceDeps{RegistrantRepo: store})

	bad := baseRow()
	bad.Mobile = ""
	_, err := svc.BulkImport(context.Background(), []domain.ImportRow{baseRow(), bad})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
	assert.Contains(t, err.Error(), "row 2")
	store.AssertNotCalled(t, "InsertBatch", mock.Anything, mock.Anything)
}

func TestBulkImport_HappyPath(t *testing.T) {
	store := &mockRegistrantStore{}
	store.On("InsertBatch", mock.Anything, mock.AnythingOfType("[]domain.Registrant")).
		Return(int64(2), nil)

	svc := NewService(ServiceDeps{RegistrantRepo: store})
	other := baseRow()
	other.Mobile = "13900139000"
	n, err := svc.BulkImport(context.Background(), []domain.ImportRow{baseRow(), other})

	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	store.AssertExpectations(t)
}

// --- listing tests ---

func TestListAll_EmptyAsNotFound(t *testing.T) {
	store := &mockRegistrantStore{}
	store.On("ListAll", mock.Anything).Return([]domain.Registrant{}, nil)

	svc := NewService(ServiceDeps{RegistrantRepo: store, EmptyAsNotFound: true})
	_, err := svc.ListAll(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestListAll_EmptyAsSuccess(t *testing.T) {
	store := &mockRegistrantStore{}
	store.On("ListAll", mock.Anything).Return([]domain.Registrant{}, nil)

	svc := NewService(ServiceDeps{RegistrantRepo: store, EmptyAsNotFound: false})
	regs, err := svc.ListAll(context.Background())

	require.NoError(t, err)
	assert.Empty(t, regs)
}

func TestListByGroup_EmptyAsNotFound(t *testing.T) {
	store := &mockRegistrantStore{}
	store.On("ListByGroup", mock.Anything, "A").Return([]domain.Registrant{}, nil)

	svc := NewService(ServiceDeps{RegistrantRepo: store, EmptyAsNotFound: true})
	_, err := svc.ListByGroup(context.Background(), "A")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestListByGroup_HappyPath(t *testing.T) {
	store := &mockRegistrantStore{}
	members := []domain.Registrant{{ID: 1, Mobile: "13800138000", Group: ptr("A")}}
	store.On("ListByGroup", mock.Anything, "A").Return(members, nil)

	svc := NewService(ServiceDeps{RegistrantRepo: store, EmptyAsNotFound: true})
	regs, err := svc.ListByGroup(context.Background(), "A")

	require.NoError(t, err)
	assert.Equal(t, members, regs)
	store.AssertExpectations(t)
}

// --- GetByMobile tests ---

func TestGetByMobile_ForbiddenForOtherRecord(t *testing.T) {
	store := &mockRegistrantStore{}
	svc := NewService(ServiceDeps{RegistrantRepo: store})

	_, err := svc.GetByMobile(context.Background(), "13800138000", "13900139000")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrForbidden))
	store.AssertNotCalled(t, "GetByMobile", mock.Anything, mock.Anything)
}

func TestGetByMobile_OwnRecord(t *testing.T) {
	store := &mockRegistrantStore{}
	reg := &domain.Registrant{ID: 1, Mobile: "13800138000"}
	store.On("GetByMobile", mock.Anything, "13800138000").Return(reg, nil)

	svc := NewService(ServiceDeps{RegistrantRepo: store})
	got, err := svc.GetByMobile(context.Background(), "13800138000", "13800138000")

	require.NoError(t, err)
	assert.Equal(t, reg, got)
	store.AssertExpectations(t)
}
