package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"restaurant-catalog/internal/domain"
)

// MenuService mutates the category collection inside a restaurant
// aggregate. Every operation loads the whole aggregate, edits it in
// memory and writes it back in one piece.
type MenuService struct {
	restaurants RestaurantRepository
	cache       CatalogCache
}

func NewMenuService(restaurants RestaurantRepository, cache CatalogCache) *MenuService {
	return &MenuService{restaurants: restaurants, cache: cache}
}

func (s *MenuService) Create(ctx context.Context, restaurantID string, req domain.MenuCategoryRequest) (*domain.MenuCategory, error) {
	restaurant, err := s.load(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	category := domain.MenuCategory{
		ID:    uuid.NewString(),
		Type:  req.Type,
		Items: []domain.MenuItem{},
	}

	restaurant.Menu = append(restaurant.Menu, category)
	restaurant.UpdatedAt = domain.Now()

	if err := s.restaurants.Replace(ctx, restaurant); err != nil {
		return nil, fmt.Errorf("save restaurant menu: %w", err)
	}
	invalidateRestaurantListings(ctx, s.cache)

	log.Printf("[catalog] created menu category %s in restaurant %s", category.ID, restaurantID)
	return &category, nil
}

func (s *MenuService) Get(ctx context.Context, restaurantID, menuID string) (*domain.MenuCategory, error) {
	restaurant, err := s.load(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	category := restaurant.FindCategory(menuID)
	if category == nil {
		return nil, domain.NotFoundf("menu category not found")
	}
	return category, nil
}

func (s *MenuService) Update(ctx context.Context, restaurantID, menuID string, req domain.MenuCategoryRequest) (*domain.MenuCategory, error) {
	restaurant, err := s.load(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	category := restaurant.FindCategory(menuID)
	if category == nil {
		return nil, domain.NotFoundf("menu category not found")
	}

	// Only the label is updatable; the owned items stay untouched.
	category.Type = req.Type
	restaurant.UpdatedAt = domain.Now()

	if err := s.restaurants.Replace(ctx, restaurant); err != nil {
		return nil, fmt.Errorf("save restaurant menu: %w", err)
	}
	invalidateRestaurantListings(ctx, s.cache)
	return category, nil
}

func (s *MenuService) Delete(ctx context.Context, restaurantID, menuID string) error {
	restaurant, err := s.load(ctx, restaurantID)
	if err != nil {
		return err
	}

	if restaurant.FindCategory(menuID) == nil {
		return domain.NotFoundf("menu category not found")
	}

	kept := restaurant.Menu[:0]
	for _, category := range restaurant.Menu {
		if category.ID != menuID {
			kept = append(kept, category)
		}
	}
	restaurant.Menu = kept
	restaurant.UpdatedAt = domain.Now()

	if err := s.restaurants.Replace(ctx, restaurant); err != nil {
		return fmt.Errorf("save restaurant menu: %w", err)
	}
	invalidateRestaurantListings(ctx, s.cache)
	return nil
}

func (s *MenuService) load(ctx context.Context, restaurantID string) (*domain.Restaurant, error) {
	restaurant, err := s.restaurants.FindByID(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("lookup restaurant: %w", err)
	}
	if restaurant == nil {
		return nil, domain.NotFoundf("restaurant not found")
	}
	return restaurant, nil
}
