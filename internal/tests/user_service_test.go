package tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"restaurant-catalog/internal/domain"
	"restaurant-catalog/internal/mocks"
	"restaurant-catalog/internal/service"
)

var ownerType = domain.UserType{
	ID:          "5c1f9a7e-8c70-4e10-9d8a-000000000002",
	Name:        "OWNER",
	Description: "Restaurant owner",
}

func TestUserTypeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("folds_name_case", func(t *testing.T) {
		repo := mocks.NewUserTypeRepository(t)
		svc := service.NewUserTypeService(repo, mocks.NewUserRepository(t))

		repo.On("FindByName", ctx, "OWNER").Return(nil, nil).Once()
		repo.On("Insert", ctx, mock.Anything).Return(nil).Once()

		ut, err := svc.Create(ctx, domain.UserTypeRequest{Name: " owner ", Description: "Restaurant owner"})

		assert.NoError(t, err)
		assert.Equal(t, "OWNER", ut.Name)
		assert.NotEmpty(t, ut.ID)
	})

	t.Run("duplicate_name_conflicts", func(t *testing.T) {
		repo := mocks.NewUserTypeRepository(t)
		svc := service.NewUserTypeService(repo, mocks.NewUserRepository(t))

		repo.On("FindByName", ctx, "OWNER").Return(&ownerType, nil).Once()

		_, err := svc.Create(ctx, domain.UserTypeRequest{Name: "Owner"})
		assert.Equal(t, domain.KindConflict, domain.KindOf(err))
	})
}

func TestUserTypeService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("referenced_type_conflicts", func(t *testing.T) {
		repo := mocks.NewUserTypeRepository(t)
		users := mocks.NewUserRepository(t)
		svc := service.NewUserTypeService(repo, users)

		repo.On("FindByID", ctx, ownerType.ID).Return(&ownerType, nil).Once()
		users.On("CountByUserTypeID", ctx, ownerType.ID).Return(int64(3), nil).Once()

		err := svc.Delete(ctx, ownerType.ID)
		assert.Equal(t, domain.KindConflict, domain.KindOf(err))
	})

	t.Run("unreferenced_type_deletes", func(t *testing.T) {
		repo := mocks.NewUserTypeRepository(t)
		users := mocks.NewUserRepository(t)
		svc := service.NewUserTypeService(repo, users)

		repo.On("FindByID", ctx, ownerType.ID).Return(&ownerType, nil).Once()
		users.On("CountByUserTypeID", ctx, ownerType.ID).Return(int64(0), nil).Once()
		repo.On("Delete", ctx, ownerType.ID).Return(int64(1), nil).Once()

		assert.NoError(t, svc.Delete(ctx, ownerType.ID))
	})
}

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("lowercases_email_and_embeds_snapshot", func(t *testing.T) {
		repo := mocks.NewUserRepository(t)
		userTypes := mocks.NewUserTypeServiceInterface(t)
		svc := service.NewUserService(repo, userTypes)

		userTypes.On("Resolve", ctx, "owner").Return(&ownerType, nil).Once()
		repo.On("FindByEmail", ctx, "anna@example.com").Return(nil, nil).Once()
		repo.On("Insert", ctx, mock.Anything).Return(nil).Once()

		user, err := svc.Create(ctx, domain.UserRequest{
			Name:     "Anna",
			Email:    " Anna@Example.COM ",
			UserType: domain.UserTypeRef{Name: "owner"},
		})

		assert.NoError(t, err)
		assert.Equal(t, "anna@example.com", user.Email)
		assert.Equal(t, ownerType.ID, user.UserType.ID)
		assert.True(t, user.IsActive)
	})

	t.Run("duplicate_email_conflicts", func(t *testing.T) {
		repo := mocks.NewUserRepository(t)
		userTypes := mocks.NewUserTypeServiceInterface(t)
		svc := service.NewUserService(repo, userTypes)

		userTypes.On("Resolve", ctx, "owner").Return(&ownerType, nil).Once()
		repo.On("FindByEmail", ctx, "anna@example.com").
			Return(&domain.User{ID: "user-1", Email: "anna@example.com"}, nil).Once()

		_, err := svc.Create(ctx, domain.UserRequest{
			Name:     "Anna",
			Email:    "anna@example.com",
			UserType: domain.UserTypeRef{Name: "owner"},
		})
		assert.Equal(t, domain.KindConflict, domain.KindOf(err))
	})
}

func TestUserService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("keeping_own_email_is_not_a_conflict", func(t *testing.T) {
		repo := mocks.NewUserRepository(t)
		userTypes := mocks.NewUserTypeServiceInterface(t)
		svc := service.NewUserService(repo, userTypes)

		stored := &domain.User{ID: "user-1", Name: "Anna", Email: "anna@example.com", UserType: ownerType.Snapshot(), IsActive: true}
		repo.On("FindByID", ctx, "user-1").Return(stored, nil).Once()
		userTypes.On("Resolve", ctx, "owner").Return(&ownerType, nil).Once()
		repo.On("FindByEmail", ctx, "anna@example.com").Return(stored, nil).Once()
		repo.On("Replace", ctx, mock.Anything).Return(nil).Once()

		user, err := svc.Update(ctx, "user-1", domain.UserRequest{
			Name:     "Anna B",
			Email:    "anna@example.com",
			UserType: domain.UserTypeRef{Name: "owner"},
		})

		assert.NoError(t, err)
		assert.Equal(t, "Anna B", user.Name)
	})

	t.Run("taking_another_users_email_conflicts", func(t *testing.T) {
		repo := mocks.NewUserRepository(t)
		userTypes := mocks.NewUserTypeServiceInterface(t)
		svc := service.NewUserService(repo, userTypes)

		repo.On("FindByID", ctx, "user-1").
			Return(&domain.User{ID: "user-1", Email: "anna@example.com"}, nil).Once()
		userTypes.On("Resolve", ctx, "owner").Return(&ownerType, nil).Once()
		repo.On("FindByEmail", ctx, "bob@example.com").
			Return(&domain.User{ID: "user-2", Email: "bob@example.com"}, nil).Once()

		_, err := svc.Update(ctx, "user-1", domain.UserRequest{
			Name:     "Anna",
			Email:    "bob@example.com",
			UserType: domain.UserTypeRef{Name: "owner"},
		})
		assert.Equal(t, domain.KindConflict, domain.KindOf(err))
	})
}

func TestUserService_Delete(t *testing.T) {
	ctx := context.Background()

	repo := mocks.NewUserRepository(t)
	svc := service.NewUserService(repo, mocks.NewUserTypeServiceInterface(t))

	repo.On("Delete", ctx, "missing").Return(int64(0), nil).Once()

	err := svc.Delete(ctx, "missing")
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}
