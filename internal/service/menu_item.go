package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"restaurant-catalog/internal/domain"
)

// MenuItemService mutates the item collection inside a named category of a
// restaurant aggregate, and answers the cross-aggregate item lookup.
type MenuItemService struct {
	restaurants RestaurantRepository
	cache       CatalogCache
}

func NewMenuItemService(restaurants RestaurantRepository, cache CatalogCache) *MenuItemService {
	return &MenuItemService{restaurants: restaurants, cache: cache}
}

func (s *MenuItemService) Create(ctx context.Context, restaurantID, menuID string, req domain.MenuItemRequest) (*domain.MenuItem, error) {
	restaurant, category, err := s.locate(ctx, restaurantID, menuID)
	if err != nil {
		return nil, err
	}

	item := domain.MenuItem{
		ID:                      uuid.NewString(),
		Name:                    req.Name,
		Description:             req.Description,
		Price:                   req.Price,
		OnlyForLocalConsumption: req.OnlyForLocalConsumption != nil && *req.OnlyForLocalConsumption,
		ImagePath:               req.ImagePath,
		IsActive:                req.IsActive == nil || *req.IsActive,
	}

	category.Items = append(category.Items, item)
	restaurant.UpdatedAt = domain.Now()

	if err := s.restaurants.Replace(ctx, restaurant); err != nil {
		return nil, fmt.Errorf("save restaurant menu: %w", err)
	}
	invalidateRestaurantListings(ctx, s.cache)

	log.Printf("[catalog] created menu item %s in category %s of restaurant %s", item.ID, menuID, restaurantID)
	return &item, nil
}

func (s *MenuItemService) Update(ctx context.Context, restaurantID, menuID, itemID string, req domain.MenuItemRequest) (*domain.MenuItem, error) {
	restaurant, category, err := s.locate(ctx, restaurantID, menuID)
	if err != nil {
		return nil, err
	}

	item := category.FindItem(itemID)
	if item == nil {
		return nil, domain.NotFoundf("menu item not found")
	}

	item.Name = req.Name
	item.Description = req.Description
	item.Price = req.Price
	item.ImagePath = req.ImagePath
	// Null preserves the stored value for the two booleans only; the
	// scalar fields above are always overwritten.
	if req.OnlyForLocalConsumption != nil {
		item.OnlyForLocalConsumption = *req.OnlyForLocalConsumption
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	restaurant.UpdatedAt = domain.Now()

	if err := s.restaurants.Replace(ctx, restaurant); err != nil {
		return nil, fmt.Errorf("save restaurant menu: %w", err)
	}
	invalidateRestaurantListings(ctx, s.cache)
	return item, nil
}

func (s *MenuItemService) Delete(ctx context.Context, restaurantID, menuID, itemID string) error {
	restaurant, category, err := s.locate(ctx, restaurantID, menuID)
	if err != nil {
		return err
	}

	if category.FindItem(itemID) == nil {
		return domain.NotFoundf("menu item not found")
	}

	kept := category.Items[:0]
	for _, item := range category.Items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	// The category stays, possibly with an empty item list.
	category.Items = kept
	restaurant.UpdatedAt = domain.Now()

	if err := s.restaurants.Replace(ctx, restaurant); err != nil {
		return fmt.Errorf("save restaurant menu: %w", err)
	}
	invalidateRestaurantListings(ctx, s.cache)
	return nil
}

// GetByItemID finds the single restaurant whose menu contains the item and
// returns the item together with its enclosing category and restaurant.
// The store answers this with one indexed query on the nested item id.
func (s *MenuItemService) GetByItemID(ctx context.Context, itemID string) (*domain.MenuItemWithContext, error) {
	restaurant, err := s.restaurants.FindByMenuItemID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("lookup restaurant by menu item: %w", err)
	}
	if restaurant == nil {
		return nil, domain.NotFoundf("menu item not found")
	}

	for i := range restaurant.Menu {
		category := &restaurant.Menu[i]
		if item := category.FindItem(itemID); item != nil {
			return &domain.MenuItemWithContext{
				MenuItem: *item,
				Category: domain.MenuCategoryContext{
					ID:   category.ID,
					Type: category.Type,
				},
				Restaurant: domain.RestaurantContext{
					ID:      restaurant.ID,
					Name:    restaurant.Name,
					Address: restaurant.Address,
				},
			}, nil
		}
	}

	// The store matched the aggregate but the in-memory walk did not;
	// treat it the same as an index miss.
	return nil, domain.NotFoundf("menu item not found")
}

func (s *MenuItemService) locate(ctx context.Context, restaurantID, menuID string) (*domain.Restaurant, *domain.MenuCategory, error) {
	restaurant, err := s.restaurants.FindByID(ctx, restaurantID)
	if err != nil {
		return nil, nil, fmt.Errorf("lookup restaurant: %w", err)
	}
	if restaurant == nil {
		return nil, nil, domain.NotFoundf("restaurant not found")
	}

	category := restaurant.FindCategory(menuID)
	if category == nil {
		return nil, nil, domain.NotFoundf("menu category not found")
	}
	return restaurant, category, nil
}
