package usecase

import (
	"context"
	"fmt"
	"sort"

	"store-ratings/internal/data/entity"
	"store-ratings/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory repository fakes used by the service tests.

type fakeUserRepo struct {
	users      map[uuid.UUID]*entity.User
	lastFilter repository.UserFilter
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if u, ok := f.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	u, ok := f.users[id]
	if !ok {
		return fmt.Errorf("user %s not found", id.String())
	}
	u.PasswordHash = hash
	return nil
}

func (f *fakeUserRepo) List(ctx context.Context, filter repository.UserFilter) ([]*entity.User, int64, error) {
	f.lastFilter = filter

	all := make([]*entity.User, 0, len(f.users))
	for _, u := range f.users {
		all = append(all, u)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	return pageOf(all, filter.Skip, filter.Take), int64(len(all)), nil
}

func (f *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

type fakeStoreRepo struct {
	stores     []*entity.Store
	listings   []*repository.StoreListing
	lastUserID *uuid.UUID
}

func (f *fakeStoreRepo) Create(ctx context.Context, store *entity.Store) error {
	clone := *store
	f.stores = append(f.stores, &clone)
	return nil
}

func (f *fakeStoreRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	for _, s := range f.stores {
		if s.ID == id {
			clone := *s
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeStoreRepo) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*entity.Store, error) {
	for _, s := range f.stores {
		if s.OwnerID != nil && *s.OwnerID == ownerID {
			clone := *s
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeStoreRepo) List(ctx context.Context, filter repository.StoreFilter, userID *uuid.UUID) ([]*repository.StoreListing, int64, error) {
	f.lastUserID = userID
	return pageOf(f.listings, filter.Skip, filter.Take), int64(len(f.listings)), nil
}

func (f *fakeStoreRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.stores)), nil
}

type fakeRatingRepo struct {
	ratings map[string]*entity.Rating
	raters  map[uuid.UUID][]*repository.RaterRow
}

func newFakeRatingRepo() *fakeRatingRepo {
	return &fakeRatingRepo{
		ratings: make(map[string]*entity.Rating),
		raters:  make(map[uuid.UUID][]*repository.RaterRow),
	}
}

func ratingKey(userID, storeID uuid.UUID) string {
	return userID.String() + "/" + storeID.String()
}

func (f *fakeRatingRepo) Upsert(ctx context.Context, rating *entity.Rating) (bool, error) {
	key := ratingKey(rating.UserID, rating.StoreID)
	if existing, ok := f.ratings[key]; ok {
		existing.Value = rating.Value
		rating.ID = existing.ID
		rating.CreatedAt = existing.CreatedAt
		return false, nil
	}
	clone := *rating
	f.ratings[key] = &clone
	return true, nil
}

func (f *fakeRatingRepo) FindByUserAndStore(ctx context.Context, userID, storeID uuid.UUID) (*entity.Rating, error) {
	if r, ok := f.ratings[ratingKey(userID, storeID)]; ok {
		clone := *r
		return &clone, nil
	}
	return nil, nil
}

func (f *fakeRatingRepo) AverageForStore(ctx context.Context, storeID uuid.UUID) (float64, error) {
	sum, count := 0, 0
	for _, r := range f.ratings {
		if r.StoreID == storeID {
			sum += r.Value
			count++
		}
	}
	if count == 0 {
		return 0, nil
	}
	return float64(sum) / float64(count), nil
}

func (f *fakeRatingRepo) RatersForStore(ctx context.Context, storeID uuid.UUID) ([]*repository.RaterRow, error) {
	return f.raters[storeID], nil
}

func (f *fakeRatingRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.ratings)), nil
}

func pageOf[T any](items []T, skip, take int) []T {
	if skip >= len(items) {
		return nil
	}
	end := skip + take
	if end > len(items) {
		end = len(items)
	}
	return items[skip:end]
}

func newFakeRepository() (*repository.Repository, *fakeUserRepo, *fakeStoreRepo, *fakeRatingRepo) {
	users := newFakeUserRepo()
	stores := &fakeStoreRepo{}
	ratings := newFakeRatingRepo()
	return &repository.Repository{
		User:   users,
		Store:  stores,
		Rating: ratings,
	}, users, stores, ratings
}
