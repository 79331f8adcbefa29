package registrant

import (
	"context"
	"fmt"

	"github.com/go-event-checkin/internal/domain"
	"github.com/go-event-checkin/internal/pkg/validate"
)

const defaultFamilyEmployee = 1

type Service interface {
	Create(ctx context.Context, req domain.CreateRegistrantRequest) (*domain.Registrant, error)
	BulkImport(ctx context.Context, rows []domain.ImportRow) (int64, error)
	ListAll(ctx context.Context) ([]domain.Registrant, error)
	ListByGroup(ctx context.Context, group string) ([]domain.Registrant, error)
	// GetByMobile returns a registrant's own record. callerMobile is the
	// verified token identity and must match the requested mobile.
	GetByMobile(ctx context.Context, callerMobile, mobile string) (*domain.Registrant, error)
}

type registrantStore interface {
	Insert(ctx context.Context, reg *domain.Registrant) (*domain.Registrant, error)
	InsertBatch(ctx context.Context, regs []domain.Registrant) (int64, error)
	GetByMobile(ctx context.Context, mobile string) (*domain.Registrant, error)
	ListAll(ctx context.Context) ([]domain.Registrant, error)
	ListByGroup(ctx context.Context, group string) ([]domain.Registrant, error)
}

type service struct {
	repo registrantStore

	// emptyAsNotFound makes an empty listing an error rather than an empty
	// success, so callers can tell a typo'd group from an empty roster.
	// One policy for every list endpoint, set from config.
	emptyAsNotFound bool
}

type ServiceDeps struct {
	RegistrantRepo  registrantStore
	EmptyAsNotFound bool
}

func NewService(deps ServiceDeps) Service {
	return &service{
		repo:            deps.RegistrantRepo,
		emptyAsNotFound: deps.EmptyAsNotFound,
	}
}

func (s *service) Create(ctx context.Context, req domain.CreateRegistrantRequest) (*domain.Registrant, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}
	return s.repo.Insert(ctx, newRegistrant(req))
}

// BulkImport validates every row before touching storage, then inserts the
// whole batch in one transaction. One bad row rejects the entire import
// with nothing written.
func (s *service) BulkImport(ctx context.Context, rows []domain.ImportRow) (int64, error) {
	if len(rows) == 0 {
		return 0, fmt.Errorf("import file has no data rows: %w", domain.ErrBadRequest)
	}
	regs := make([]domain.Registrant, 0, len(rows))
	for i, row := range rows {
		if err := validate.Struct(row); err != nil {
			return 0, fmt.Errorf("row %d: %v: %w", i+1, err, domain.ErrBadRequest)
		}
		regs = append(regs, *newRegistrant(domain.CreateRegistrantRequest(row)))
	}
	return s.repo.InsertBatch(ctx, regs)
}

func (s *service) ListAll(ctx context.Context) ([]domain.Registrant, error) {
	regs, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.applyEmptyPolicy(regs)
}

func (s *service) ListByGroup(ctx context.Context, group string) ([]domain.Registrant, error) {
	regs, err := s.repo.ListByGroup(ctx, group)
	if err != nil {
		return nil, err
	}
	return s.applyEmptyPolicy(regs)
}

func (s *service) GetByMobile(ctx context.Context, callerMobile, mobile string) (*domain.Registrant, error) {
	if callerMobile != mobile {
		return nil, fmt.Errorf("you may only view your own record: %w", domain.ErrForbidden)
	}
	return s.repo.GetByMobile(ctx, mobile)
}

func (s *service) applyEmptyPolicy(regs []domain.Registrant) ([]domain.Registrant, error) {
	if len(regs) == 0 && s.emptyAsNotFound {
		return nil, fmt.Errorf("no registrants found: %w", domain.ErrNotFound)
	}
	return regs, nil
}

func newRegistrant(req domain.CreateRegistrantRequest) *domain.Registrant {
	familyEmployee := defaultFamilyEmployee
	if req.FamilyEmployee != nil {
		familyEmployee = *req.FamilyEmployee
	}
	return &domain.Registrant{
		Name:           req.Name,
		Mobile:         req.Mobile,
		Department:     req.Department,
		Company:        req.Company,
		FamilyEmployee: familyEmployee,
		FamilyInfant:   req.FamilyInfant,
		FamilyChild:    req.FamilyChild,
		FamilyAdult:    req.FamilyAdult,
		FamilyElderly:  req.FamilyElderly,
		Group:          req.Group,
	}
}
