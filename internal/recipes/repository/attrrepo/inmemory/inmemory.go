// Package inmemory is the process-memory counterpart of the postgres
// attribute repository, with the same owner scoping and ordering rules.
package inmemory

import (
	"context"
	"sort"
	"sync"

	"github.com/ikaro-souza/recipe-app-api/internal/recipes/domain/models"
)

type AttrsInmemoryRepo struct {
	mu     sync.Mutex
	attrs  []models.Attribute
	nextID int64
}

func New() *AttrsInmemoryRepo {
	return &AttrsInmemoryRepo{nextID: 1} //nolint:exhaustruct
}

func (ar *AttrsInmemoryRepo) ListByOwner(_ context.Context, ownerID int) ([]models.Attribute, error) {
	ar.mu.Lock()
	defer ar.mu.Unlock()

	out := make([]models.Attribute, 0, len(ar.attrs))

	for _, a := range ar.attrs {
		if a.UserID == ownerID {
			out = append(out, a)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name > out[j].Name
		}

		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (ar *AttrsInmemoryRepo) Create(_ context.Context, attr models.Attribute) (models.Attribute, error) {
	ar.mu.Lock()
	defer ar.mu.Unlock()

	attr.ID = ar.nextID
	ar.nextID++
	ar.attrs = append(ar.attrs, attr)

	return attr, nil
}

func (ar *AttrsInmemoryRepo) Shutdown(_ context.Context) error {
	return nil
}
