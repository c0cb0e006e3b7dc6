package memory

import (
	"context"

	"astrobuzz/internal/domain/entity"
	"astrobuzz/internal/repository"
)

// UserRepo implements repository.UserRepository on a shared Store.
type UserRepo struct{ s *Store }

var _ repository.UserRepository = (*UserRepo)(nil)

// NewUserRepo returns a user repository backed by the store.
func NewUserRepo(s *Store) *UserRepo { return &UserRepo{s: s} }

// Get returns the user or (nil, nil) when absent.
func (r *UserRepo) Get(ctx context.Context, id int64) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

// GetByUsername looks a user up by its unique username via linear scan.
// Returns (nil, nil) when no user has the username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// Create stores a new user under the next id.
// Returns entity.ErrDuplicate when the username is taken.
func (r *UserRepo) Create(ctx context.Context, username, password string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Username == username {
			return nil, entity.ErrDuplicate
		}
	}

	r.s.userID++
	u := &entity.User{ID: r.s.userID, Username: username, Password: password}
	r.s.users[u.ID] = u
	cp := *u
	return &cp, nil
}
