package httpapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"restaurant-catalog/internal/service"
)

type Handler struct {
	KitchenTypes service.KitchenTypeServiceInterface
	Restaurants  service.RestaurantServiceInterface
	Menus        service.MenuServiceInterface
	MenuItems    service.MenuItemServiceInterface
	UserTypes    service.UserTypeServiceInterface
	Users        service.UserServiceInterface
	QR           service.QRGenerator

	validate *validator.Validate
}

func NewHandler(
	kitchenTypes service.KitchenTypeServiceInterface,
	restaurants service.RestaurantServiceInterface,
	menus service.MenuServiceInterface,
	menuItems service.MenuItemServiceInterface,
	userTypes service.UserTypeServiceInterface,
	users service.UserServiceInterface,
	qr service.QRGenerator,
) *Handler {
	return &Handler{
		KitchenTypes: kitchenTypes,
		Restaurants:  restaurants,
		Menus:        menus,
		MenuItems:    menuItems,
		UserTypes:    userTypes,
		Users:        users,
		QR:           qr,
		validate:     validator.New(),
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/kitchen-types", h.createKitchenType).Methods("POST")
	r.HandleFunc("/api/kitchen-types", h.getKitchenTypes).Methods("GET")
	r.HandleFunc("/api/kitchen-types/{id}", h.getKitchenType).Methods("GET")
	r.HandleFunc("/api/kitchen-types/{id}", h.updateKitchenType).Methods("PUT")
	r.HandleFunc("/api/kitchen-types/{id}", h.deleteKitchenType).Methods("DELETE")

	// The item lookup path is literal and must win over the {id} routes.
	r.HandleFunc("/api/restaurants/menu/item/{itemId}", h.getMenuItemByID).Methods("GET")
	r.HandleFunc("/api/restaurants/full", h.getRestaurantsFull).Methods("GET")

	r.HandleFunc("/api/restaurants", h.createRestaurant).Methods("POST")
	r.HandleFunc("/api/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.updateRestaurant).Methods("PUT")
	r.HandleFunc("/api/restaurants/{id}", h.deleteRestaurant).Methods("DELETE")
	r.HandleFunc("/api/restaurants/{id}/disable", h.disableRestaurant).Methods("PATCH")
	r.HandleFunc("/api/restaurants/{id}/qrcode", h.getRestaurantQRCode).Methods("GET")

	r.HandleFunc("/api/restaurants/{restaurantId}/menu", h.createMenuCategory).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/menu/{menuId}", h.getMenuCategory).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/menu/{menuId}", h.updateMenuCategory).Methods("PUT")
	r.HandleFunc("/api/restaurants/{restaurantId}/menu/{menuId}", h.deleteMenuCategory).Methods("DELETE")

	r.HandleFunc("/api/restaurants/{restaurantId}/menu/{menuId}/item", h.createMenuItem).Methods("POST")
	r.HandleFunc("/api/restaurants/{restaurantId}/menu/{menuId}/item/{itemId}", h.updateMenuItem).Methods("PUT")
	r.HandleFunc("/api/restaurants/{restaurantId}/menu/{menuId}/item/{itemId}", h.deleteMenuItem).Methods("DELETE")

	r.HandleFunc("/api/user-types", h.createUserType).Methods("POST")
	r.HandleFunc("/api/user-types", h.getUserTypes).Methods("GET")
	r.HandleFunc("/api/user-types/{id}", h.getUserType).Methods("GET")
	r.HandleFunc("/api/user-types/{id}", h.updateUserType).Methods("PUT")
	r.HandleFunc("/api/user-types/{id}", h.deleteUserType).Methods("DELETE")

	r.HandleFunc("/api/users", h.createUser).Methods("POST")
	r.HandleFunc("/api/users", h.getUsers).Methods("GET")
	r.HandleFunc("/api/users/{id}", h.getUser).Methods("GET")
	r.HandleFunc("/api/users/{id}", h.updateUser).Methods("PUT")
	r.HandleFunc("/api/users/{id}", h.deleteUser).Methods("DELETE")

	r.HandleFunc("/health", h.healthCheck).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "restaurant-catalog",
	})
}
