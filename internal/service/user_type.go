package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"restaurant-catalog/internal/domain"
)

// UserTypeService is the lookup registry for user classifications. It
// mirrors the kitchen-type registry: case-insensitively unique names,
// resolve by id or name, delete only while unreferenced.
type UserTypeService struct {
	repository UserTypeRepository
	users      UserRepository
}

func NewUserTypeService(repository UserTypeRepository, users UserRepository) *UserTypeService {
	return &UserTypeService{repository: repository, users: users}
}

func (s *UserTypeService) Create(ctx context.Context, req domain.UserTypeRequest) (*domain.UserType, error) {
	name := domain.FoldName(req.Name)

	existing, err := s.repository.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("lookup user type by name: %w", err)
	}
	if existing != nil {
		return nil, domain.Conflictf("user type %q already exists", req.Name)
	}

	now := domain.Now()
	ut := &domain.UserType{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repository.Insert(ctx, ut); err != nil {
		return nil, fmt.Errorf("insert user type: %w", err)
	}
	return ut, nil
}

func (s *UserTypeService) GetAll(ctx context.Context) ([]domain.UserType, error) {
	types, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list user types: %w", err)
	}
	return types, nil
}

func (s *UserTypeService) GetByID(ctx context.Context, id string) (*domain.UserType, error) {
	ut, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("lookup user type: %w", err)
	}
	if ut == nil {
		return nil, domain.NotFoundf("user type not found")
	}
	return ut, nil
}

func (s *UserTypeService) Resolve(ctx context.Context, idOrName string) (*domain.UserType, error) {
	key := strings.TrimSpace(idOrName)

	if _, err := uuid.Parse(key); err == nil {
		ut, err := s.repository.FindByID(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("lookup user type: %w", err)
		}
		if ut != nil {
			return ut, nil
		}
	}

	ut, err := s.repository.FindByName(ctx, domain.FoldName(key))
	if err != nil {
		return nil, fmt.Errorf("lookup user type by name: %w", err)
	}
	if ut == nil {
		return nil, domain.NotFoundf("user type not found")
	}
	return ut, nil
}

func (s *UserTypeService) Update(ctx context.Context, id string, req domain.UserTypeRequest) (*domain.UserType, error) {
	ut, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := domain.FoldName(req.Name)
	other, err := s.repository.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("lookup user type by name: %w", err)
	}
	if other != nil && other.ID != ut.ID {
		return nil, domain.Conflictf("user type %q already exists", req.Name)
	}

	ut.Name = name
	ut.Description = strings.TrimSpace(req.Description)
	ut.UpdatedAt = domain.Now()

	if err := s.repository.Replace(ctx, ut); err != nil {
		return nil, fmt.Errorf("update user type: %w", err)
	}
	return ut, nil
}

func (s *UserTypeService) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	referencing, err := s.users.CountByUserTypeID(ctx, id)
	if err != nil {
		return fmt.Errorf("count referencing users: %w", err)
	}
	if referencing > 0 {
		return domain.Conflictf("user type is in use by %d user(s)", referencing)
	}

	deleted, err := s.repository.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete user type: %w", err)
	}
	if deleted == 0 {
		return domain.NotFoundf("user type not found")
	}
	return nil
}
