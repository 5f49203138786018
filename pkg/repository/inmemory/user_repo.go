package inmemory

import (
	"context"
	"sync"

	"github.com/urbanfood/usersvc/pkg/users"
)

// UserRepository is a map-backed users.Repository with the same error
// semantics as the PostgreSQL implementation. Used by tests and local runs
// without a database.
type UserRepository struct {
	mu     sync.RWMutex
	byID   map[int64]users.User
	nextID int64
}

func NewUserRepository() *UserRepository {
	return &UserRepository{byID: make(map[int64]users.User), nextID: 1}
}

func (r *UserRepository) Create(_ context.Context, user *users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.Email == user.Email {
			return users.ErrEmailTaken
		}
	}
	user.ID = r.nextID
	r.nextID++
	r.byID[user.ID] = *user
	return nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.byID {
		if user.Email == email {
			return user, nil
		}
	}
	return users.User{}, users.ErrNotFound
}

func (r *UserRepository) GetByID(_ context.Context, id int64) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.byID[id]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return user, nil
}

func (r *UserRepository) List(_ context.Context) ([]users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]users.User, 0, len(r.byID))
	for id := int64(1); id < r.nextID; id++ {
		if user, ok := r.byID[id]; ok {
			out = append(out, user)
		}
	}
	return out, nil
}

// Delete removes a user; it exists so tests can exercise the
// deleted-after-token-issuance path.
func (r *UserRepository) Delete(_ context.Context, id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
}
