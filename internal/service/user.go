package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"restaurant-catalog/internal/domain"
)

type UserService struct {
	repository UserRepository
	userTypes  UserTypeServiceInterface
}

func NewUserService(repository UserRepository, userTypes UserTypeServiceInterface) *UserService {
	return &UserService{repository: repository, userTypes: userTypes}
}

func (s *UserService) Create(ctx context.Context, req domain.UserRequest) (*domain.User, error) {
	ut, err := s.userTypes.Resolve(ctx, req.UserType.IDOrName())
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	existing, err := s.repository.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("lookup user by email: %w", err)
	}
	if existing != nil {
		return nil, domain.Conflictf("user with email %q already exists", email)
	}

	now := domain.Now()
	user := &domain.User{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     email,
		Address:   req.Address,
		UserType:  ut.Snapshot(),
		IsActive:  req.IsActive == nil || *req.IsActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repository.Insert(ctx, user); err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

func (s *UserService) GetAll(ctx context.Context) ([]domain.User, error) {
	users, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		return nil, domain.NotFoundf("user not found")
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id string, req domain.UserRequest) (*domain.User, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ut, err := s.userTypes.Resolve(ctx, req.UserType.IDOrName())
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	other, err := s.repository.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("lookup user by email: %w", err)
	}
	if other != nil && other.ID != user.ID {
		return nil, domain.Conflictf("user with email %q already exists", email)
	}

	user.Name = req.Name
	user.Email = email
	user.Address = req.Address
	user.UserType = ut.Snapshot()
	user.IsActive = req.IsActive == nil || *req.IsActive
	user.UpdatedAt = domain.Now()

	if err := s.repository.Replace(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repository.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if deleted == 0 {
		return domain.NotFoundf("user not found")
	}
	return nil
}
