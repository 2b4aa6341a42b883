package service

import (
	"context"

	"restaurant-catalog/internal/domain"
)

// Repository interfaces implemented by internal/storage. Find methods
// return (nil, nil) on a miss; the services decide what a miss means.

type KitchenTypeRepository interface {
	Insert(ctx context.Context, kt *domain.KitchenType) error
	FindAll(ctx context.Context) ([]domain.KitchenType, error)
	FindByID(ctx context.Context, id string) (*domain.KitchenType, error)
	FindByName(ctx context.Context, foldedName string) (*domain.KitchenType, error)
	Replace(ctx context.Context, kt *domain.KitchenType) error
	Delete(ctx context.Context, id string) (int64, error)
}

type RestaurantRepository interface {
	Insert(ctx context.Context, r *domain.Restaurant) error
	Replace(ctx context.Context, r *domain.Restaurant) error
	FindByID(ctx context.Context, id string) (*domain.Restaurant, error)
	FindAll(ctx context.Context) ([]domain.Restaurant, error)
	FindAllBasic(ctx context.Context, activeOnly bool) ([]domain.RestaurantBasic, error)
	FindByMenuItemID(ctx context.Context, itemID string) (*domain.Restaurant, error)
	CountByKitchenTypeID(ctx context.Context, kitchenTypeID string) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type UserTypeRepository interface {
	Insert(ctx context.Context, ut *domain.UserType) error
	FindAll(ctx context.Context) ([]domain.UserType, error)
	FindByID(ctx context.Context, id string) (*domain.UserType, error)
	FindByName(ctx context.Context, foldedName string) (*domain.UserType, error)
	Replace(ctx context.Context, ut *domain.UserType) error
	Delete(ctx context.Context, id string) (int64, error)
}

type UserRepository interface {
	Insert(ctx context.Context, u *domain.User) error
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Replace(ctx context.Context, u *domain.User) error
	CountByUserTypeID(ctx context.Context, userTypeID string) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

// CatalogCache is a read cache for listing queries. Misses and cache
// failures fall through to the store; writes invalidate.
type CatalogCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Invalidate(ctx context.Context, keys ...string) error
}

// Service interfaces consumed by the HTTP handlers.

type KitchenTypeServiceInterface interface {
	Create(ctx context.Context, req domain.KitchenTypeRequest) (*domain.KitchenType, error)
	GetAll(ctx context.Context) ([]domain.KitchenType, error)
	GetByID(ctx context.Context, id string) (*domain.KitchenType, error)
	Resolve(ctx context.Context, idOrName string) (*domain.KitchenType, error)
	Update(ctx context.Context, id string, req domain.KitchenTypeRequest) (*domain.KitchenType, error)
	Delete(ctx context.Context, id string) error
}

type RestaurantServiceInterface interface {
	Create(ctx context.Context, req domain.RestaurantRequest) (*domain.Restaurant, error)
	Update(ctx context.Context, id string, req domain.RestaurantRequest) (*domain.Restaurant, error)
	GetByID(ctx context.Context, id string) (*domain.Restaurant, error)
	GetAllBasic(ctx context.Context, activeOnly bool) ([]domain.RestaurantBasic, error)
	GetAllFull(ctx context.Context) ([]domain.Restaurant, error)
	Delete(ctx context.Context, id string) error
	Disable(ctx context.Context, id string) (*domain.Restaurant, error)
}

type MenuServiceInterface interface {
	Create(ctx context.Context, restaurantID string, req domain.MenuCategoryRequest) (*domain.MenuCategory, error)
	Get(ctx context.Context, restaurantID, menuID string) (*domain.MenuCategory, error)
	Update(ctx context.Context, restaurantID, menuID string, req domain.MenuCategoryRequest) (*domain.MenuCategory, error)
	Delete(ctx context.Context, restaurantID, menuID string) error
}

type MenuItemServiceInterface interface {
	Create(ctx context.Context, restaurantID, menuID string, req domain.MenuItemRequest) (*domain.MenuItem, error)
	Update(ctx context.Context, restaurantID, menuID, itemID string, req domain.MenuItemRequest) (*domain.MenuItem, error)
	Delete(ctx context.Context, restaurantID, menuID, itemID string) error
	GetByItemID(ctx context.Context, itemID string) (*domain.MenuItemWithContext, error)
}

type UserTypeServiceInterface interface {
	Create(ctx context.Context, req domain.UserTypeRequest) (*domain.UserType, error)
	GetAll(ctx context.Context) ([]domain.UserType, error)
	GetByID(ctx context.Context, id string) (*domain.UserType, error)
	Resolve(ctx context.Context, idOrName string) (*domain.UserType, error)
	Update(ctx context.Context, id string, req domain.UserTypeRequest) (*domain.UserType, error)
	Delete(ctx context.Context, id string) error
}

type UserServiceInterface interface {
	Create(ctx context.Context, req domain.UserRequest) (*domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, req domain.UserRequest) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

var _ KitchenTypeServiceInterface = (*KitchenTypeService)(nil)
var _ RestaurantServiceInterface = (*RestaurantService)(nil)
var _ MenuServiceInterface = (*MenuService)(nil)
var _ MenuItemServiceInterface = (*MenuItemService)(nil)
var _ UserTypeServiceInterface = (*UserTypeService)(nil)
var _ UserServiceInterface = (*UserService)(nil)
