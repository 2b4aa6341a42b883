// Package mocks provides testify mock implementations of the service-layer
// interfaces for use in tests.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"restaurant-catalog/internal/domain"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type KitchenTypeRepository struct {
	mock.Mock
}

func NewKitchenTypeRepository(t testingT) *KitchenTypeRepository {
	m := &KitchenTypeRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *KitchenTypeRepository) Insert(ctx context.Context, kt *domain.KitchenType) error {
	return m.Called(ctx, kt).Error(0)
}

func (m *KitchenTypeRepository) FindAll(ctx context.Context) ([]domain.KitchenType, error) {
	args := m.Called(ctx)
	var r0 []domain.KitchenType
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.KitchenType)
	}
	return r0, args.Error(1)
}

func (m *KitchenTypeRepository) FindByID(ctx context.Context, id string) (*domain.KitchenType, error) {
	args := m.Called(ctx, id)
	var r0 *domain.KitchenType
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.KitchenType)
	}
	return r0, args.Error(1)
}

func (m *KitchenTypeRepository) FindByName(ctx context.Context, foldedName string) (*domain.KitchenType, error) {
	args := m.Called(ctx, foldedName)
	var r0 *domain.KitchenType
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.KitchenType)
	}
	return r0, args.Error(1)
}

func (m *KitchenTypeRepository) Replace(ctx context.Context, kt *domain.KitchenType) error {
	return m.Called(ctx, kt).Error(0)
}

func (m *KitchenTypeRepository) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type RestaurantRepository struct {
	mock.Mock
}

func NewRestaurantRepository(t testingT) *RestaurantRepository {
	m := &RestaurantRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *RestaurantRepository) Insert(ctx context.Context, r *domain.Restaurant) error {
	return m.Called(ctx, r).Error(0)
}

func (m *RestaurantRepository) Replace(ctx context.Context, r *domain.Restaurant) error {
	return m.Called(ctx, r).Error(0)
}

func (m *RestaurantRepository) FindByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	args := m.Called(ctx, id)
	var r0 *domain.Restaurant
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Restaurant)
	}
	return r0, args.Error(1)
}

func (m *RestaurantRepository) FindAll(ctx context.Context) ([]domain.Restaurant, error) {
	args := m.Called(ctx)
	var r0 []domain.Restaurant
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.Restaurant)
	}
	return r0, args.Error(1)
}

func (m *RestaurantRepository) FindAllBasic(ctx context.Context, activeOnly bool) ([]domain.RestaurantBasic, error) {
	args := m.Called(ctx, activeOnly)
	var r0 []domain.RestaurantBasic
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.RestaurantBasic)
	}
	return r0, args.Error(1)
}

func (m *RestaurantRepository) FindByMenuItemID(ctx context.Context, itemID string) (*domain.Restaurant, error) {
	args := m.Called(ctx, itemID)
	var r0 *domain.Restaurant
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.Restaurant)
	}
	return r0, args.Error(1)
}

func (m *RestaurantRepository) CountByKitchenTypeID(ctx context.Context, kitchenTypeID string) (int64, error) {
	args := m.Called(ctx, kitchenTypeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *RestaurantRepository) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type UserTypeRepository struct {
	mock.Mock
}

func NewUserTypeRepository(t testingT) *UserTypeRepository {
	m := &UserTypeRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *UserTypeRepository) Insert(ctx context.Context, ut *domain.UserType) error {
	return m.Called(ctx, ut).Error(0)
}

func (m *UserTypeRepository) FindAll(ctx context.Context) ([]domain.UserType, error) {
	args := m.Called(ctx)
	var r0 []domain.UserType
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.UserType)
	}
	return r0, args.Error(1)
}

func (m *UserTypeRepository) FindByID(ctx context.Context, id string) (*domain.UserType, error) {
	args := m.Called(ctx, id)
	var r0 *domain.UserType
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.UserType)
	}
	return r0, args.Error(1)
}

func (m *UserTypeRepository) FindByName(ctx context.Context, foldedName string) (*domain.UserType, error) {
	args := m.Called(ctx, foldedName)
	var r0 *domain.UserType
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.UserType)
	}
	return r0, args.Error(1)
}

func (m *UserTypeRepository) Replace(ctx context.Context, ut *domain.UserType) error {
	return m.Called(ctx, ut).Error(0)
}

func (m *UserTypeRepository) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type UserRepository struct {
	mock.Mock
}

func NewUserRepository(t testingT) *UserRepository {
	m := &UserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *UserRepository) Insert(ctx context.Context, u *domain.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	var r0 []domain.User
	if args.Get(0) != nil {
		r0 = args.Get(0).([]domain.User)
	}
	return r0, args.Error(1)
}

func (m *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	var r0 *domain.User
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.User)
	}
	return r0, args.Error(1)
}

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var r0 *domain.User
	if args.Get(0) != nil {
		r0 = args.Get(0).(*domain.User)
	}
	return r0, args.Error(1)
}

func (m *UserRepository) Replace(ctx context.Context, u *domain.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *UserRepository) CountByUserTypeID(ctx context.Context, userTypeID string) (int64, error) {
	args := m.Called(ctx, userTypeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *UserRepository) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type CatalogCache struct {
	mock.Mock
}

func NewCatalogCache(t testingT) *CatalogCache {
	m := &CatalogCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CatalogCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	args := m.Called(ctx, key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *CatalogCache) Set(ctx context.Context, key string, value any) error {
	return m.Called(ctx, key, value).Error(0)
}

func (m *CatalogCache) Invalidate(ctx context.Context, keys ...string) error {
	callArgs := make([]any, 0, len(keys)+1)
	callArgs = append(callArgs, ctx)
	for _, key := range keys {
		callArgs = append(callArgs, key)
	}
	return m.Called(callArgs...).Error(0)
}
