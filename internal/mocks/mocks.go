package mocks

import "restaurant-catalog/internal/service"

// Compile-time checks that the mocks track the real interfaces.
var (
	_ service.KitchenTypeRepository = (*KitchenTypeRepository)(nil)
	_ service.RestaurantRepository  = (*RestaurantRepository)(nil)
	_ service.UserTypeRepository    = (*UserTypeRepository)(nil)
	_ service.UserRepository        = (*UserRepository)(nil)
	_ service.CatalogCache          = (*CatalogCache)(nil)

	_ service.KitchenTypeServiceInterface = (*KitchenTypeServiceInterface)(nil)
	_ service.RestaurantServiceInterface  = (*RestaurantServiceInterface)(nil)
	_ service.MenuServiceInterface        = (*MenuServiceInterface)(nil)
	_ service.MenuItemServiceInterface    = (*MenuItemServiceInterface)(nil)
	_ service.UserTypeServiceInterface    = (*UserTypeServiceInterface)(nil)
	_ service.UserServiceInterface        = (*UserServiceInterface)(nil)
)
