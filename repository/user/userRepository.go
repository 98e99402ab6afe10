// repository/user/repo.go
package user

import (
	"context"
	"sort"
	"strings"

	"github.com/LuisGlezPruebas/BookingWeb-production/model"
)

// Repo is the user directory. The deployment roster is fixed at startup, so
// the implementation is a read-only lookup. Absent users come back (nil, nil).
type Repo interface {
	Get(ctx context.Context, id int64) (*model.User, error)
	ByUsername(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

type rosterRepo struct {
	byID map[int64]model.User
}

func New(roster []model.User) Repo {
	byID := make(map[int64]model.User, len(roster))
	for _, u := range roster {
		byID[u.ID] = u
	}
	return &rosterRepo{byID: byID}
}

func (r *rosterRepo) Get(_ context.Context, id int64) (*model.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *rosterRepo) ByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.byID {
		if strings.EqualFold(u.Username, username) {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *rosterRepo) List(_ context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
