package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpapi "restaurant-catalog/internal/api/http"
	"restaurant-catalog/internal/domain"
	"restaurant-catalog/internal/mocks"
	"restaurant-catalog/internal/service"
)

type handlerMocks struct {
	kitchenTypes *mocks.KitchenTypeServiceInterface
	restaurants  *mocks.RestaurantServiceInterface
	menus        *mocks.MenuServiceInterface
	menuItems    *mocks.MenuItemServiceInterface
	userTypes    *mocks.UserTypeServiceInterface
	users        *mocks.UserServiceInterface
}

func newTestRouter(t *testing.T) (*mux.Router, handlerMocks) {
	m := handlerMocks{
		kitchenTypes: mocks.NewKitchenTypeServiceInterface(t),
		restaurants:  mocks.NewRestaurantServiceInterface(t),
		menus:        mocks.NewMenuServiceInterface(t),
		menuItems:    mocks.NewMenuItemServiceInterface(t),
		userTypes:    mocks.NewUserTypeServiceInterface(t),
		users:        mocks.NewUserServiceInterface(t),
	}

	handler := httpapi.NewHandler(
		m.kitchenTypes, m.restaurants, m.menus, m.menuItems, m.userTypes, m.users,
		&service.DefaultQRGenerator{BaseURL: "http://localhost:8080"},
	)

	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	return router, m
}

func doRequest(router *mux.Router, method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) domain.ErrorBody {
	t.Helper()
	var body domain.ErrorBody
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestKitchenTypeHandlers(t *testing.T) {
	t.Run("create_returns_201", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.kitchenTypes.On("Create", mock.Anything, domain.KitchenTypeRequest{Name: "italian"}).
			Return(&domain.KitchenType{ID: "kt-1", Name: "ITALIAN"}, nil).Once()

		rec := doRequest(router, http.MethodPost, "/api/kitchen-types", `{"name":"italian"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var kt domain.KitchenType
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &kt))
		assert.Equal(t, "ITALIAN", kt.Name)
	})

	t.Run("create_without_name_returns_400_envelope", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rec := doRequest(router, http.MethodPost, "/api/kitchen-types", `{"description":"no name"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeErrorBody(t, rec)
		assert.Equal(t, http.StatusBadRequest, body.Status)
		assert.NotEmpty(t, body.Errors)
	})

	t.Run("create_with_malformed_json_returns_400", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rec := doRequest(router, http.MethodPost, "/api/kitchen-types", `{"name":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("duplicate_name_returns_409", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.kitchenTypes.On("Create", mock.Anything, mock.Anything).
			Return(nil, domain.Conflictf(`kitchen type "italian" already exists`)).Once()

		rec := doRequest(router, http.MethodPost, "/api/kitchen-types", `{"name":"italian"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		body := decodeErrorBody(t, rec)
		assert.Equal(t, http.StatusConflict, body.Status)
	})

	t.Run("get_missing_returns_404", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.kitchenTypes.On("GetByID", mock.Anything, "missing").
			Return(nil, domain.NotFoundf("kitchen type not found")).Once()

		rec := doRequest(router, http.MethodGet, "/api/kitchen-types/missing", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("delete_returns_204", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.kitchenTypes.On("Delete", mock.Anything, "kt-1").Return(nil).Once()

		rec := doRequest(router, http.MethodDelete, "/api/kitchen-types/kt-1", "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.Bytes())
	})
}

func TestRestaurantHandlers(t *testing.T) {
	t.Run("listing_filters_on_active_param", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.restaurants.On("GetAllBasic", mock.Anything, true).
			Return([]domain.RestaurantBasic{{ID: "rest-1", Name: "Trattoria", IsActive: true}}, nil).Once()

		rec := doRequest(router, http.MethodGet, "/api/restaurants?active=true", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		var listing []domain.RestaurantBasic
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
		assert.Len(t, listing, 1)
	})

	t.Run("active_param_accepts_parsebool_forms", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.restaurants.On("GetAllBasic", mock.Anything, true).
			Return([]domain.RestaurantBasic{}, nil).Twice()

		for _, query := range []string{"?active=1", "?active=TRUE"} {
			rec := doRequest(router, http.MethodGet, "/api/restaurants"+query, "")
			assert.Equal(t, http.StatusOK, rec.Code)
		}
	})

	t.Run("empty_listing_is_json_array", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.restaurants.On("GetAllBasic", mock.Anything, false).
			Return(nil, nil).Once()

		rec := doRequest(router, http.MethodGet, "/api/restaurants", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
	})

	t.Run("item_lookup_route_wins_over_id_route", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.menuItems.On("GetByItemID", mock.Anything, "item-1").
			Return(&domain.MenuItemWithContext{
				MenuItem:   domain.MenuItem{ID: "item-1", Name: "Carbonara"},
				Category:   domain.MenuCategoryContext{ID: "cat-1", Type: "Mains"},
				Restaurant: domain.RestaurantContext{ID: "rest-1", Name: "Trattoria"},
			}, nil).Once()

		rec := doRequest(router, http.MethodGet, "/api/restaurants/menu/item/item-1", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		var found domain.MenuItemWithContext
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &found))
		assert.Equal(t, "item-1", found.ID)
		assert.Equal(t, "rest-1", found.Restaurant.ID)
	})

	t.Run("update_missing_returns_404", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.restaurants.On("Update", mock.Anything, "missing", mock.Anything).
			Return(nil, domain.NotFoundf("restaurant not found")).Once()

		rec := doRequest(router, http.MethodPut, "/api/restaurants/missing",
			`{"name":"Trattoria","address":"12 Vine St","kitchenType":{"name":"italian"}}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("disable_returns_disabled_restaurant", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.restaurants.On("Disable", mock.Anything, "rest-1").
			Return(&domain.Restaurant{ID: "rest-1", Name: "Trattoria", IsActive: false}, nil).Once()

		rec := doRequest(router, http.MethodPatch, "/api/restaurants/rest-1/disable", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		var restaurant domain.Restaurant
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &restaurant))
		assert.False(t, restaurant.IsActive)
	})

	t.Run("qrcode_returns_png", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.restaurants.On("GetByID", mock.Anything, "rest-1").
			Return(&domain.Restaurant{ID: "rest-1"}, nil).Once()

		rec := doRequest(router, http.MethodGet, "/api/restaurants/rest-1/qrcode", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))
	})

	t.Run("qrcode_for_missing_restaurant_returns_404", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.restaurants.On("GetByID", mock.Anything, "missing").
			Return(nil, domain.NotFoundf("restaurant not found")).Once()

		rec := doRequest(router, http.MethodGet, "/api/restaurants/missing/qrcode", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestMenuHandlers(t *testing.T) {
	t.Run("create_category_returns_201", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.menus.On("Create", mock.Anything, "rest-1", domain.MenuCategoryRequest{Type: "Desserts"}).
			Return(&domain.MenuCategory{ID: "cat-2", Type: "Desserts", Items: []domain.MenuItem{}}, nil).Once()

		rec := doRequest(router, http.MethodPost, "/api/restaurants/rest-1/menu", `{"type":"Desserts"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var category domain.MenuCategory
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &category))
		assert.Equal(t, "Desserts", category.Type)
	})

	t.Run("create_item_with_nonpositive_price_returns_400", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rec := doRequest(router, http.MethodPost, "/api/restaurants/rest-1/menu/cat-1/item",
			`{"name":"Carbonara","price":0}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeErrorBody(t, rec)
		assert.NotEmpty(t, body.Errors)
	})

	t.Run("delete_item_returns_204", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.menuItems.On("Delete", mock.Anything, "rest-1", "cat-1", "item-1").Return(nil).Once()

		rec := doRequest(router, http.MethodDelete, "/api/restaurants/rest-1/menu/cat-1/item/item-1", "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestUserHandlers(t *testing.T) {
	t.Run("create_user_returns_201", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.users.On("Create", mock.Anything, mock.Anything).
			Return(&domain.User{ID: "user-1", Name: "Anna", Email: "anna@example.com"}, nil).Once()

		rec := doRequest(router, http.MethodPost, "/api/users",
			`{"name":"Anna","email":"anna@example.com","userType":{"name":"owner"}}`)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("invalid_email_returns_400", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rec := doRequest(router, http.MethodPost, "/api/users",
			`{"name":"Anna","email":"not-an-email","userType":{"name":"owner"}}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("delete_referenced_user_type_returns_409", func(t *testing.T) {
		router, m := newTestRouter(t)

		m.userTypes.On("Delete", mock.Anything, "ut-1").
			Return(domain.Conflictf("user type is in use by 2 user(s)")).Once()

		rec := doRequest(router, http.MethodDelete, "/api/user-types/ut-1", "")
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}
