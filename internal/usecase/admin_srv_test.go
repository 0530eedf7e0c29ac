package usecase

import (
	"context"
	"testing"
	"time"

	"store-ratings/internal/apperr"
	"store-ratings/internal/data/entity"
	"store-ratings/internal/data/repository"
	"store-ratings/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func validCreateUser(role string) *request.CreateUserRequest {
	return &request.CreateUserRequest{
		Name:     "Margaret Eleanor Whitfield",
		Email:    "margaret@example.com",
		Address:  "9 Orchard Road",
		Password: "Secret!123",
		Role:     role,
	}
}

func TestAdminCreateUserWithRole(t *testing.T) {
	repo, users, _, _ := newFakeRepository()
	svc := NewAdminService(repo, zap.NewNop())

	resp, err := svc.CreateUser(context.Background(), validCreateUser("OWNER"))
	require.NoError(t, err)
	assert.Equal(t, entity.RoleOwner, resp.Role)

	stored, err := users.FindByEmail(context.Background(), "margaret@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, entity.RoleOwner, stored.Role)
}

func TestAdminCreateUserRejectsUnknownRole(t *testing.T) {
	repo, _, _, _ := newFakeRepository()
	svc := NewAdminService(repo, zap.NewNop())

	_, err := svc.CreateUser(context.Background(), validCreateUser("SUPERUSER"))
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestAdminCreateUserDuplicateEmail(t *testing.T) {
	repo, _, _, _ := newFakeRepository()
	svc := NewAdminService(repo, zap.NewNop())

	_, err := svc.CreateUser(context.Background(), validCreateUser("USER"))
	require.NoError(t, err)

	_, err = svc.CreateUser(context.Background(), validCreateUser("ADMIN"))
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestAdminListUsersPassesFilter(t *testing.T) {
	repo, users, _, _ := newFakeRepository()
	svc := NewAdminService(repo, zap.NewNop())

	_, err := svc.CreateUser(context.Background(), validCreateUser("USER"))
	require.NoError(t, err)

	resp, err := svc.ListUsers(context.Background(), &request.ListUsersRequest{
		ListParams: request.ListParams{Take: 10, SortOrder: "desc"},
		Name:       "marg",
		Role:       "USER",
		SortBy:     "email",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Total)

	assert.Equal(t, "marg", users.lastFilter.Name)
	assert.Equal(t, "USER", users.lastFilter.Role)
	assert.Equal(t, "email", users.lastFilter.SortBy)
	assert.Equal(t, "desc", users.lastFilter.SortOrder)
	assert.Equal(t, 10, users.lastFilter.Take)
}

func TestAdminListUsersInvalidRoleFilter(t *testing.T) {
	repo, _, _, _ := newFakeRepository()
	svc := NewAdminService(repo, zap.NewNop())

	_, err := svc.ListUsers(context.Background(), &request.ListUsersRequest{
		ListParams: request.ListParams{Take: 10},
		Role:       "ROOT",
	})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestAdminGetUserNotFound(t *testing.T) {
	repo, _, _, _ := newFakeRepository()
	svc := NewAdminService(repo, zap.NewNop())

	_, err := svc.GetUser(context.Background(), uuid.New().String())
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = svc.GetUser(context.Background(), "not-a-uuid")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestAdminGetUserPlainUserHasNoRating(t *testing.T) {
	repo, _, _, _ := newFakeRepository()
	svc := NewAdminService(repo, zap.NewNop())

	created, err := svc.CreateUser(context.Background(), validCreateUser("USER"))
	require.NoError(t, err)

	detail, err := svc.GetUser(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, detail.Role)
	assert.Nil(t, detail.Rating)
}

func TestAdminGetUserOwnerCarriesStoreRating(t *testing.T) {
	repo, _, stores, ratings := newFakeRepository()
	svc := NewAdminService(repo, zap.NewNop())

	created, err := svc.CreateUser(context.Background(), validCreateUser("OWNER"))
	require.NoError(t, err)
	ownerID := uuid.MustParse(created.ID)

	store := &entity.Store{
		Base:    entity.Base{ID: uuid.New(), CreatedAt: time.Now()},
		Name:    "Corner Grocery",
		Address: "42 Market Street",
		OwnerID: &ownerID,
	}
	require.NoError(t, stores.Create(context.Background(), store))

	for _, value := range []int{4, 5} {
		_, err := ratings.Upsert(context.Background(), &entity.Rating{
			Base:    entity.Base{ID: uuid.New(), CreatedAt: time.Now()},
			UserID:  uuid.New(),
			StoreID: store.ID,
			Value:   value,
		})
		require.NoError(t, err)
	}

	detail, err := svc.GetUser(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.Rating)
	assert.InDelta(t, 4.5, *detail.Rating, 1e-9)
}

func TestAdminCreateStore(t *testing.T) {
	repo, _, stores, _ := newFakeRepository()
	svc := NewAdminService(repo, zap.NewNop())

	email := "shop@example.com"
	resp, err := svc.CreateStore(context.Background(), &request.CreateStoreRequest{
		Name:    "Corner Grocery",
		Email:   &email,
		Address: "42 Market Street",
	})
	require.NoError(t, err)
	assert.Equal(t, "Corner Grocery", resp.Name)
	assert.Nil(t, resp.OwnerID)

	total, err := stores.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestAdminCreateStoreWithOwner(t *testing.T) {
	repo, _, _, _ := newFakeRepository()
	svc := NewAdminService(repo, zap.NewNop())

	owner, err := svc.CreateUser(context.Background(), validCreateUser("OWNER"))
	require.NoError(t, err)

	resp, err := svc.CreateStore(context.Background(), &request.CreateStoreRequest{
		Name:    "Corner Grocery",
		Address: "42 Market Street",
		OwnerID: &owner.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.OwnerID)
	assert.Equal(t, owner.ID, *resp.OwnerID)
}

func TestAdminCreateStoreOwnerNotFound(t *testing.T) {
	repo, _, _, _ := newFakeRepository()
	svc := NewAdminService(repo, zap.NewNop())

	missing := uuid.New().String()
	_, err := svc.CreateStore(context.Background(), &request.CreateStoreRequest{
		Name:    "Corner Grocery",
		Address: "42 Market Street",
		OwnerID: &missing,
	})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestAdminListStoresUnscoped(t *testing.T) {
	repo, _, stores, _ := newFakeRepository()
	svc := NewAdminService(repo, zap.NewNop())

	stores.listings = []*repository.StoreListing{
		{
			Store: entity.Store{
				Base:    entity.Base{ID: uuid.New(), CreatedAt: time.Now()},
				Name:    "Corner Grocery",
				Address: "42 Market Street",
			},
			AvgRating: 2.0 / 3.0,
		},
	}

	resp, err := svc.ListStores(context.Background(), &request.ListStoresRequest{
		ListParams: request.ListParams{Take: 20},
	})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.InDelta(t, 0.67, resp.Items[0].Rating, 1e-9)

	// The admin listing never carries a caller's own rating
	assert.Nil(t, stores.lastUserID)
}

func TestAdminMetrics(t *testing.T) {
	repo, _, stores, ratings := newFakeRepository()
	svc := NewAdminService(repo, zap.NewNop())

	_, err := svc.CreateUser(context.Background(), validCreateUser("USER"))
	require.NoError(t, err)

	other := validCreateUser("OWNER")
	other.Email = "second@example.com"
	_, err = svc.CreateUser(context.Background(), other)
	require.NoError(t, err)

	store := seedStore(t, stores, "Corner Grocery")
	for i := 0; i < 3; i++ {
		_, err := ratings.Upsert(context.Background(), &entity.Rating{
			Base:    entity.Base{ID: uuid.New(), CreatedAt: time.Now()},
			UserID:  uuid.New(),
			StoreID: store.ID,
			Value:   3,
		})
		require.NoError(t, err)
	}

	metrics, err := svc.Metrics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), metrics.TotalUsers)
	assert.Equal(t, int64(1), metrics.TotalStores)
	assert.Equal(t, int64(3), metrics.TotalRatings)
}
