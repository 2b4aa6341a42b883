package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"restaurant-catalog/internal/domain"
)

type KitchenTypeServiceInterface struct {
	mock.Mock
}

func NewKitchenTypeServiceInterface(t testingT) *KitchenTypeServiceInterface {
	m := &KitchenTypeServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *KitchenTypeServiceInterface) Create(ctx context.Context, req domain.KitchenTypeRequest) (*domain.KitchenType, error) {
	args := m.Called(ctx, req)
	var r0 *domain.KitchenType
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.KitchenType)
	}
	return r0, args.Error(1)
}

func (m *KitchenTypeServiceInterface) GetAll(ctx context.Context) ([]domain.KitchenType, error) {
	args := m.Called(ctx)
	var r0 []domain.KitchenType
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.KitchenType)
	}
	return r0, args.Error(1)
}

func (m *KitchenTypeServiceInterface) GetByID(ctx context.Context, id string) (*domain.KitchenType, error) {
	args := m.Called(ctx, id)
	var r0 *domain.KitchenType
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.KitchenType)
	}
	return r0, args.Error(1)
}

func (m *KitchenTypeServiceInterface) Resolve(ctx context.Context, idOrName string) (*domain.KitchenType, error) {
	args := m.Called(ctx, idOrName)
	var r0 *domain.KitchenType
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.KitchenType)
	}
	return r0, args.Error(1)
}

func (m *KitchenTypeServiceInterface) Update(ctx context.Context, id string, req domain.KitchenTypeRequest) (*domain.KitchenType, error) {
	args := m.Called(ctx, id, req)
	var r0 *domain.KitchenType
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.KitchenType)
	}
	return r0, args.Error(1)
}

func (m *KitchenTypeServiceInterface) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type RestaurantServiceInterface struct {
	mock.Mock
}

func NewRestaurantServiceInterface(t testingT) *RestaurantServiceInterface {
	m := &RestaurantServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *RestaurantServiceInterface) Create(ctx context.Context, req domain.RestaurantRequest) (*domain.Restaurant, error) {
	args := m.Called(ctx, req)
	var r0 *domain.Restaurant
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Restaurant)
	}
	return r0, args.Error(1)
}

func (m *RestaurantServiceInterface) Update(ctx context.Context, id string, req domain.RestaurantRequest) (*domain.Restaurant, error) {
	args := m.Called(ctx, id, req)
	var r0 *domain.Restaurant
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Restaurant)
	}
	return r0, args.Error(1)
}

func (m *RestaurantServiceInterface) GetByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	args := m.Called(ctx, id)
	var r0 *domain.Restaurant
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Restaurant)
	}
	return r0, args.Error(1)
}

func (m *RestaurantServiceInterface) GetAllBasic(ctx context.Context, activeOnly bool) ([]domain.RestaurantBasic, error) {
	args := m.Called(ctx, activeOnly)
	var r0 []domain.RestaurantBasic
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.RestaurantBasic)
	}
	return r0, args.Error(1)
}

func (m *RestaurantServiceInterface) GetAllFull(ctx context.Context) ([]domain.Restaurant, error) {
	args := m.Called(ctx)
	var r0 []domain.Restaurant
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.Restaurant)
	}
	return r0, args.Error(1)
}

func (m *RestaurantServiceInterface) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *RestaurantServiceInterface) Disable(ctx context.Context, id string) (*domain.Restaurant, error) {
	args := m.Called(ctx, id)
	var r0 *domain.Restaurant
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Restaurant)
	}
	return r0, args.Error(1)
}

type MenuServiceInterface struct {
	mock.Mock
}

func NewMenuServiceInterface(t testingT) *MenuServiceInterface {
	m := &MenuServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MenuServiceInterface) Create(ctx context.Context, restaurantID string, req domain.MenuCategoryRequest) (*domain.MenuCategory, error) {
	args := m.Called(ctx, restaurantID, req)
	var r0 *domain.MenuCategory
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.MenuCategory)
	}
	return r0, args.Error(1)
}

func (m *MenuServiceInterface) Get(ctx context.Context, restaurantID, menuID string) (*domain.MenuCategory, error) {
	args := m.Called(ctx, restaurantID, menuID)
	var r0 *domain.MenuCategory
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.MenuCategory)
	}
	return r0, args.Error(1)
}

func (m *MenuServiceInterface) Update(ctx context.Context, restaurantID, menuID string, req domain.MenuCategoryRequest) (*domain.MenuCategory, error) {
	args := m.Called(ctx, restaurantID, menuID, req)
	var r0 *domain.MenuCategory
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.MenuCategory)
	}
	return r0, args.Error(1)
}

func (m *MenuServiceInterface) Delete(ctx context.Context, restaurantID, menuID string) error {
	return m.Called(ctx, restaurantID, menuID).Error(0)
}

type MenuItemServiceInterface struct {
	mock.Mock
}

func NewMenuItemServiceInterface(t testingT) *MenuItemServiceInterface {
	m := &MenuItemServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MenuItemServiceInterface) Create(ctx context.Context, restaurantID, menuID string, req domain.MenuItemRequest) (*domain.MenuItem, error) {
	args := m.Called(ctx, restaurantID, menuID, req)
	var r0 *domain.MenuItem
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.MenuItem)
	}
	return r0, args.Error(1)
}

func (m *MenuItemServiceInterface) Update(ctx context.Context, restaurantID, menuID, itemID string, req domain.MenuItemRequest) (*domain.MenuItem, error) {
	args := m.Called(ctx, restaurantID, menuID, itemID, req)
	var r0 *domain.MenuItem
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.MenuItem)
	}
	return r0, args.Error(1)
}

func (m *MenuItemServiceInterface) Delete(ctx context.Context, restaurantID, menuID, itemID string) error {
	return m.Called(ctx, restaurantID, menuID, itemID).Error(0)
}

func (m *MenuItemServiceInterface) GetByItemID(ctx context.Context, itemID string) (*domain.MenuItemWithContext, error) {
	args := m.Called(ctx, itemID)
	var r0 *domain.MenuItemWithContext
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.MenuItemWithContext)
	}
	return r0, args.Error(1)
}

type UserTypeServiceInterface struct {
	mock.Mock
}

func NewUserTypeServiceInterface(t testingT) *UserTypeServiceInterface {
	m := &UserTypeServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *UserTypeServiceInterface) Create(ctx context.Context, req domain.UserTypeRequest) (*domain.UserType, error) {
	args := m.Called(ctx, req)
	var r0 *domain.UserType
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.UserType)
	}
	return r0, args.Error(1)
}

func (m *UserTypeServiceInterface) GetAll(ctx context.Context) ([]domain.UserType, error) {
	args := m.Called(ctx)
	var r0 []domain.UserType
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.UserType)
	}
	return r0, args.Error(1)
}

func (m *UserTypeServiceInterface) GetByID(ctx context.Context, id string) (*domain.UserType, error) {
	args := m.Called(ctx, id)
	var r0 *domain.UserType
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.UserType)
	}
	return r0, args.Error(1)
}

func (m *UserTypeServiceInterface) Resolve(ctx context.Context, idOrName string) (*domain.UserType, error) {
	args := m.Called(ctx, idOrName)
	var r0 *domain.UserType
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.UserType)
	}
	return r0, args.Error(1)
}

func (m *UserTypeServiceInterface) Update(ctx context.Context, id string, req domain.UserTypeRequest) (*domain.UserType, error) {
	args := m.Called(ctx, id, req)
	var r0 *domain.UserType
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.UserType)
	}
	return r0, args.Error(1)
}

func (m *UserTypeServiceInterface) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type UserServiceInterface struct {
	mock.Mock
}

func NewUserServiceInterface(t testingT) *UserServiceInterface {
	m := &UserServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *UserServiceInterface) Create(ctx context.Context, req domain.UserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	var r0 *domain.User
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.User)
	}
	return r0, args.Error(1)
}

func (m *UserServiceInterface) GetAll(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	var r0 []domain.User
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.User)
	}
	return r0, args.Error(1)
}

func (m *UserServiceInterface) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	var r0 *domain.User
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.User)
	}
	return r0, args.Error(1)
}

func (m *UserServiceInterface) Update(ctx context.Context, id string, req domain.UserRequest) (*domain.User, error) {
	args := m.Called(ctx, id, req)
	var r0 *domain.User
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.User)
	}
	return r0, args.Error(1)
}

func (m *UserServiceInterface) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
