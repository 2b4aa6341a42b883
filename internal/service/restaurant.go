package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"restaurant-catalog/internal/domain"
)

const (
	cacheKeyRestaurantsBasic  = "restaurants:basic"
	cacheKeyRestaurantsActive = "restaurants:basic:active"
)

type RestaurantService struct {
	repository   RestaurantRepository
	kitchenTypes KitchenTypeServiceInterface
	cache        CatalogCache
}

func NewRestaurantService(repository RestaurantRepository, kitchenTypes KitchenTypeServiceInterface, cache CatalogCache) *RestaurantService {
	return &RestaurantService{
		repository:   repository,
		kitchenTypes: kitchenTypes,
		cache:        cache,
	}
}

func (s *RestaurantService) Create(ctx context.Context, req domain.RestaurantRequest) (*domain.Restaurant, error) {
	kt, err := s.kitchenTypes.Resolve(ctx, req.KitchenType.IDOrName())
	if err != nil {
		return nil, err
	}

	menu, err := buildMenu(req.Menu)
	if err != nil {
		return nil, err
	}

	now := domain.Now()
	restaurant := &domain.Restaurant{
		ID:            uuid.NewString(),
		Name:          req.Name,
		Address:       req.Address,
		KitchenType:   kt.Snapshot(),
		DaysOperation: req.DaysOperation,
		OwnerID:       req.OwnerID,
		IsActive:      req.IsActive == nil || *req.IsActive,
		Menu:          menu,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repository.Insert(ctx, restaurant); err != nil {
		return nil, fmt.Errorf("insert restaurant: %w", err)
	}
	s.invalidate(ctx)

	log.Printf("[catalog] created restaurant %s (%s)", restaurant.Name, restaurant.ID)
	return restaurant, nil
}

func (s *RestaurantService) Update(ctx context.Context, id string, req domain.RestaurantRequest) (*domain.Restaurant, error) {
	restaurant, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	kt, err := s.kitchenTypes.Resolve(ctx, req.KitchenType.IDOrName())
	if err != nil {
		return nil, err
	}

	restaurant.Name = req.Name
	restaurant.Address = req.Address
	restaurant.KitchenType = kt.Snapshot()
	restaurant.DaysOperation = req.DaysOperation
	restaurant.OwnerID = req.OwnerID
	restaurant.IsActive = req.IsActive == nil || *req.IsActive

	// A nil menu means the request did not touch it; a present menu
	// replaces the stored one wholesale.
	if req.Menu != nil {
		menu, err := buildMenu(req.Menu)
		if err != nil {
			return nil, err
		}
		restaurant.Menu = menu
	}

	restaurant.UpdatedAt = domain.Now()

	if err := s.repository.Replace(ctx, restaurant); err != nil {
		return nil, fmt.Errorf("update restaurant: %w", err)
	}
	s.invalidate(ctx)
	return restaurant, nil
}

func (s *RestaurantService) GetByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	restaurant, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("lookup restaurant: %w", err)
	}
	if restaurant == nil {
		return nil, domain.NotFoundf("restaurant not found")
	}
	return restaurant, nil
}

func (s *RestaurantService) GetAllBasic(ctx context.Context, activeOnly bool) ([]domain.RestaurantBasic, error) {
	key := cacheKeyRestaurantsBasic
	if activeOnly {
		key = cacheKeyRestaurantsActive
	}

	if s.cache != nil {
		var cached []domain.RestaurantBasic
		if ok, err := s.cache.Get(ctx, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	restaurants, err := s.repository.FindAllBasic(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, key, restaurants)
	}
	return restaurants, nil
}

func (s *RestaurantService) GetAllFull(ctx context.Context) ([]domain.Restaurant, error) {
	restaurants, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	return restaurants, nil
}

func (s *RestaurantService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repository.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete restaurant: %w", err)
	}
	if deleted == 0 {
		return domain.NotFoundf("restaurant not found")
	}
	s.invalidate(ctx)
	return nil
}

func (s *RestaurantService) Disable(ctx context.Context, id string) (*domain.Restaurant, error) {
	restaurant, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	restaurant.IsActive = false
	restaurant.UpdatedAt = domain.Now()

	if err := s.repository.Replace(ctx, restaurant); err != nil {
		return nil, fmt.Errorf("disable restaurant: %w", err)
	}
	s.invalidate(ctx)
	return restaurant, nil
}

func (s *RestaurantService) invalidate(ctx context.Context) {
	invalidateRestaurantListings(ctx, s.cache)
}

// invalidateRestaurantListings drops the cached listings after any write to
// the restaurants collection, including menu writes through the nested
// services.
func invalidateRestaurantListings(ctx context.Context, cache CatalogCache) {
	if cache != nil {
		_ = cache.Invalidate(ctx, cacheKeyRestaurantsBasic, cacheKeyRestaurantsActive)
	}
}

// buildMenu materializes a supplied menu tree: client-supplied ids are
// preserved, missing ones generated, and both boolean defaults applied.
// Duplicate ids anywhere in the tree are rejected up front so the stored
// aggregate never violates its uniqueness guarantees.
func buildMenu(payload []domain.MenuCategoryPayload) ([]domain.MenuCategory, error) {
	if payload == nil {
		return nil, nil
	}

	menu := make([]domain.MenuCategory, 0, len(payload))
	categoryIDs := make(map[string]bool, len(payload))
	itemIDs := make(map[string]bool)

	for _, cat := range payload {
		id := cat.ID
		if id == "" {
			id = uuid.NewString()
		}
		if categoryIDs[id] {
			return nil, domain.Validationf("menu: duplicate category id %s", id)
		}
		categoryIDs[id] = true

		items := make([]domain.MenuItem, 0, len(cat.Items))
		for _, item := range cat.Items {
			itemID := item.ID
			if itemID == "" {
				itemID = uuid.NewString()
			}
			// Item ids are unique across the whole restaurant, not just
			// within their category.
			if itemIDs[itemID] {
				return nil, domain.Validationf("menu: duplicate item id %s", itemID)
			}
			itemIDs[itemID] = true

			items = append(items, domain.MenuItem{
				ID:                      itemID,
				Name:                    item.Name,
				Description:             item.Description,
				Price:                   item.Price,
				OnlyForLocalConsumption: item.OnlyForLocalConsumption != nil && *item.OnlyForLocalConsumption,
				ImagePath:               item.ImagePath,
				IsActive:                item.IsActive == nil || *item.IsActive,
			})
		}

		menu = append(menu, domain.MenuCategory{ID: id, Type: cat.Type, Items: items})
	}

	return menu, nil
}
