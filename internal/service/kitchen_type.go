package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"restaurant-catalog/internal/domain"
)

const cacheKeyKitchenTypes = "kitchen_types:all"

type KitchenTypeService struct {
	repository  KitchenTypeRepository
	restaurants RestaurantRepository
	cache       CatalogCache
}

func NewKitchenTypeService(repository KitchenTypeRepository, restaurants RestaurantRepository, cache CatalogCache) *KitchenTypeService {
	return &KitchenTypeService{
		repository:  repository,
		restaurants: restaurants,
		cache:       cache,
	}
}

func (s *KitchenTypeService) Create(ctx context.Context, req domain.KitchenTypeRequest) (*domain.KitchenType, error) {
	name := domain.FoldName(req.Name)

	existing, err := s.repository.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("lookup kitchen type by name: %w", err)
	}
	if existing != nil {
		return nil, domain.Conflictf("kitchen type %q already exists", req.Name)
	}

	now := domain.Now()
	kt := &domain.KitchenType{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repository.Insert(ctx, kt); err != nil {
		return nil, fmt.Errorf("insert kitchen type: %w", err)
	}
	s.invalidate(ctx)

	log.Printf("[catalog] created kitchen type %s (%s)", kt.Name, kt.ID)
	return kt, nil
}

func (s *KitchenTypeService) GetAll(ctx context.Context) ([]domain.KitchenType, error) {
	if s.cache != nil {
		var cached []domain.KitchenType
		if ok, err := s.cache.Get(ctx, cacheKeyKitchenTypes, &cached); err == nil && ok {
			return cached, nil
		}
	}

	types, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list kitchen types: %w", err)
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, cacheKeyKitchenTypes, types)
	}
	return types, nil
}

func (s *KitchenTypeService) GetByID(ctx context.Context, id string) (*domain.KitchenType, error) {
	kt, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("lookup kitchen type: %w", err)
	}
	if kt == nil {
		return nil, domain.NotFoundf("kitchen type not found")
	}
	return kt, nil
}

// Resolve accepts either identifier shape. Input that parses as an id is
// tried against the id first; on a miss, or for any other input, the
// case-insensitive name lookup applies.
func (s *KitchenTypeService) Resolve(ctx context.Context, idOrName string) (*domain.KitchenType, error) {
	key := strings.TrimSpace(idOrName)

	if _, err := uuid.Parse(key); err == nil {
		kt, err := s.repository.FindByID(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("lookup kitchen type: %w", err)
		}
		if kt != nil {
			return kt, nil
		}
	}

	kt, err := s.repository.FindByName(ctx, domain.FoldName(key))
	if err != nil {
		return nil, fmt.Errorf("lookup kitchen type by name: %w", err)
	}
	if kt == nil {
		return nil, domain.NotFoundf("kitchen type not found")
	}
	return kt, nil
}

func (s *KitchenTypeService) Update(ctx context.Context, id string, req domain.KitchenTypeRequest) (*domain.KitchenType, error) {
	kt, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := domain.FoldName(req.Name)
	other, err := s.repository.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("lookup kitchen type by name: %w", err)
	}
	if other != nil && other.ID != kt.ID {
		return nil, domain.Conflictf("kitchen type %q already exists", req.Name)
	}

	kt.Name = name
	kt.Description = strings.TrimSpace(req.Description)
	kt.UpdatedAt = domain.Now()

	if err := s.repository.Replace(ctx, kt); err != nil {
		return nil, fmt.Errorf("update kitchen type: %w", err)
	}
	s.invalidate(ctx)
	return kt, nil
}

func (s *KitchenTypeService) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	referencing, err := s.restaurants.CountByKitchenTypeID(ctx, id)
	if err != nil {
		return fmt.Errorf("count referencing restaurants: %w", err)
	}
	if referencing > 0 {
		return domain.Conflictf("kitchen type is in use by %d restaurant(s)", referencing)
	}

	deleted, err := s.repository.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete kitchen type: %w", err)
	}
	if deleted == 0 {
		return domain.NotFoundf("kitchen type not found")
	}
	s.invalidate(ctx)
	return nil
}

func (s *KitchenTypeService) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, cacheKeyKitchenTypes)
	}
}
