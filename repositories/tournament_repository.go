package repositories

import (
	"context"
	"errors"
	"sync"

	"github.com/retrolan/lanbracket/models"
)

var ErrTournamentNotFound = errors.New("tournament not found")

// TournamentRepository stores whole-aggregate snapshots keyed by tournament
// ID. The engine never touches storage; services load an aggregate, apply
// one operation and save it back.
type TournamentRepository interface {
	Save(ctx context.Context, t *models.Tournament) error
	GetByID(ctx context.Context, id string) (*models.Tournament, error)
	ListIDs(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, id string) error
}

type inMemoryTournamentRepository struct {
	mu   sync.RWMutex
	byID map[string]*models.Tournament
}

// NewInMemoryTournamentRepository returns a process-local repository. This
// is the default backend; Postgres is used when a DSN is configured.
func NewInMemoryTournamentRepository() TournamentRepository {
	return &inMemoryTournamentRepository{
		byID: make(map[string]*models.Tournament),
	}
}

func (r *inMemoryTournamentRepository) Save(_ context.Context, t *models.Tournament) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[t.ID] = t
	return nil
}

func (r *inMemoryTournamentRepository) GetByID(_ context.Context, id string) (*models.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.byID[id]
	if !ok {
		return nil, ErrTournamentNotFound
	}
	return t, nil
}

func (r *inMemoryTournamentRepository) ListIDs(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *inMemoryTournamentRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return ErrTournamentNotFound
	}
	delete(r.byID, id)
	return nil
}
