package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/retrolan/lanbracket/engine"
	"github.com/retrolan/lanbracket/live"
	"github.com/retrolan/lanbracket/models"
	"github.com/retrolan/lanbracket/repositories"
	"github.com/retrolan/lanbracket/storage"
)

// CreateTournamentInput carries the fields needed to open registration.
type CreateTournamentInput struct {
	Name     string          `json:"name"`
	GameType models.GameType `json:"game_type"`
	TeamMode bool            `json:"team_mode"`
}

// TournamentSummary is the list-view projection of a tournament.
type TournamentSummary struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	State       models.TournamentState `json:"state"`
	PlayerCount int                    `json:"player_count"`
	GameType    models.GameType        `json:"game_type"`
}

// TournamentService orchestrates engine operations over the repository and
// broadcasts state changes. The engine itself is single-threaded per
// aggregate, so the service serializes mutations with one mutex per
// tournament ID.
type TournamentService struct {
	repo     repositories.TournamentRepository
	engine   *engine.Engine
	hub      *live.Hub
	uploader storage.FileUploader
	logger   *slog.Logger

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

func NewTournamentService(
	repo repositories.TournamentRepository,
	eng *engine.Engine,
	hub *live.Hub,
	uploader storage.FileUploader,
	logger *slog.Logger,
) *TournamentService {
	return &TournamentService{
		repo:     repo,
		engine:   eng,
		hub:      hub,
		uploader: uploader,
		logger:   logger,
		locks:    make(map[string]*sync.Mutex),
	}
}

func (s *TournamentService) lockFor(id string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	mu, ok := s.locks[id]
	if !ok {
		mu = &sync.Mutex{}
		s.locks[id] = mu
	}
	return mu
}

// mutate serializes one engine operation against a tournament: load, apply,
// persist, broadcast. A failed operation persists nothing.
func (s *TournamentService) mutate(ctx context.Context, id, eventType string, fn func(*models.Tournament) error) (*models.Tournament, error) {
	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}

	if err := fn(t); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to persist tournament %s: %w", id, err)
	}

	if s.hub != nil {
		s.hub.BroadcastEvent(live.Event{
			Type:         eventType,
			TournamentID: t.ID,
			Payload:      t,
		})
	}
	return t, nil
}

// Create opens registration for a new tournament.
func (s *TournamentService) Create(ctx context.Context, input CreateTournamentInput) (*models.Tournament, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrTournamentNameRequired
	}
	if _, ok := models.GetGameConfig(input.GameType); !ok {
		return nil, ErrUnknownGameType
	}

	t := s.engine.NewTournament(input.Name, input.GameType, input.TeamMode)
	if err := s.repo.Save(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to persist tournament %s: %w", t.ID, err)
	}

	s.logger.Info("tournament created",
		slog.String("tournament_id", t.ID),
		slog.String("game_type", string(t.GameType)))
	return t, nil
}

// Get returns the full aggregate.
func (s *TournamentService) Get(ctx context.Context, id string) (*models.Tournament, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}
	return t, nil
}

// List loads summaries for every stored tournament, fetching snapshots
// concurrently.
func (s *TournamentService) List(ctx context.Context) ([]TournamentSummary, error) {
	ids, err := s.repo.ListIDs(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]TournamentSummary, len(ids))
	g, gCtx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			t, err := s.repo.GetByID(gCtx, id)
			if err != nil {
				return err
			}
			summaries[i] = TournamentSummary{
				ID:          t.ID,
				Name:        t.Name,
				State:       t.State,
				PlayerCount: len(t.Players),
				GameType:    t.GameType,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summaries, nil
}

// Delete removes a tournament permanently.
func (s *TournamentService) Delete(ctx context.Context, id string) error {
	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return ErrTournamentNotFound
		}
		return err
	}
	s.logger.Info("tournament deleted", slog.String("tournament_id", id))
	return nil
}

// AddPlayer registers an entrant.
func (s *TournamentService) AddPlayer(ctx context.Context, tournamentID, name string) (*models.Player, error) {
	var player *models.Player
	_, err := s.mutate(ctx, tournamentID, "PLAYERS_UPDATED", func(t *models.Tournament) error {
		p, err := s.engine.AddPlayer(t, name)
		if err != nil {
			return err
		}
		player = p
		return nil
	})
	return player, err
}

// RemovePlayer withdraws an entrant during registration.
func (s *TournamentService) RemovePlayer(ctx context.Context, tournamentID, playerID string) error {
	_, err := s.mutate(ctx, tournamentID, "PLAYERS_UPDATED", func(t *models.Tournament) error {
		return s.engine.RemovePlayer(t, playerID)
	})
	return err
}

// UpdatePlayerName renames an entrant.
func (s *TournamentService) UpdatePlayerName(ctx context.Context, tournamentID, playerID, name string) error {
	_, err := s.mutate(ctx, tournamentID, "PLAYERS_UPDATED", func(t *models.Tournament) error {
		return s.engine.UpdatePlayerName(t, playerID, name)
	})
	return err
}

// UpdatePlayerPhoto stores a photo reference directly.
func (s *TournamentService) UpdatePlayerPhoto(ctx context.Context, tournamentID, playerID, photo string) error {
	_, err := s.mutate(ctx, tournamentID, "PLAYERS_UPDATED", func(t *models.Tournament) error {
		return s.engine.UpdatePlayerPhoto(t, playerID, photo)
	})
	return err
}

// UploadPlayerPhoto pushes raw photo bytes to object storage and records
// the resulting public URL on the player.
func (s *TournamentService) UploadPlayerPhoto(ctx context.Context, tournamentID, playerID, contentType string, body io.Reader) (string, error) {
	if s.uploader == nil {
		return "", ErrPhotoUploadUnavailable
	}

	key := fmt.Sprintf("players/%s/%s", tournamentID, playerID)
	result, err := s.uploader.Upload(ctx, key, contentType, body)
	if err != nil {
		return "", fmt.Errorf("failed to upload player photo: %w", err)
	}

	if err := s.UpdatePlayerPhoto(ctx, tournamentID, playerID, result.Location); err != nil {
		return "", err
	}
	return result.Location, nil
}

// StartGroupStage closes registration and builds groups and schedules.
func (s *TournamentService) StartGroupStage(ctx context.Context, tournamentID string) (*models.Tournament, error) {
	return s.mutate(ctx, tournamentID, "STAGE_STARTED", func(t *models.Tournament) error {
		return s.engine.StartGroupStage(t)
	})
}

// SubmitMatchResult records a group match outcome.
func (s *TournamentService) SubmitMatchResult(ctx context.Context, tournamentID, matchID string, results map[string]models.PlayerResult, mapName *string, games []models.GameResult) error {
	_, err := s.mutate(ctx, tournamentID, "MATCH_UPDATED", func(t *models.Tournament) error {
		return s.engine.SubmitMatchResult(t, matchID, results, mapName, games)
	})
	return err
}

// GetRankings returns the current standings. Pure read, usable
// mid-tournament.
func (s *TournamentService) GetRankings(ctx context.Context, tournamentID string) ([]*models.Player, error) {
	t, err := s.Get(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	return s.engine.Rankings(t), nil
}

// GenerateBrackets moves the tournament into the playoffs.
func (s *TournamentService) GenerateBrackets(ctx context.Context, tournamentID string) (*models.Tournament, error) {
	return s.mutate(ctx, tournamentID, "BRACKET_UPDATED", func(t *models.Tournament) error {
		return s.engine.GenerateBrackets(t)
	})
}

// SubmitBracketWinner decides a bracket node.
func (s *TournamentService) SubmitBracketWinner(ctx context.Context, tournamentID, nodeID, winnerID string) error {
	_, err := s.mutate(ctx, tournamentID, "BRACKET_UPDATED", func(t *models.Tournament) error {
		return s.engine.SubmitBracketWinner(t, nodeID, winnerID)
	})
	return err
}

// SubmitBracketGameResult records one game of a best-of-N series.
func (s *TournamentService) SubmitBracketGameResult(ctx context.Context, tournamentID, nodeID string, game models.SeriesGame) error {
	_, err := s.mutate(ctx, tournamentID, "BRACKET_UPDATED", func(t *models.Tournament) error {
		return s.engine.SubmitBracketGameResult(t, nodeID, game)
	})
	return err
}

// Champion returns the finals winner, or nil while the bracket is still
// undecided.
func (s *TournamentService) Champion(ctx context.Context, tournamentID string) (*models.Player, error) {
	t, err := s.Get(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	return s.engine.Champion(t), nil
}

// ResetGroup clears a group's results without touching membership.
func (s *TournamentService) ResetGroup(ctx context.Context, tournamentID, podID string) error {
	_, err := s.mutate(ctx, tournamentID, "GROUP_RESET", func(t *models.Tournament) error {
		return s.engine.ResetGroupData(t, podID)
	})
	return err
}

// RenameGroup sets a pod's display name.
func (s *TournamentService) RenameGroup(ctx context.Context, tournamentID, podID, name string) error {
	_, err := s.mutate(ctx, tournamentID, "GROUPS_UPDATED", func(t *models.Tournament) error {
		return s.engine.UpdateGroupName(t, podID, name)
	})
	return err
}

// Rename updates the tournament name.
func (s *TournamentService) Rename(ctx context.Context, tournamentID, name string) error {
	_, err := s.mutate(ctx, tournamentID, "TOURNAMENT_UPDATED", func(t *models.Tournament) error {
		return s.engine.UpdateTournamentName(t, name)
	})
	return err
}

// Reset wipes the tournament back to registration.
func (s *TournamentService) Reset(ctx context.Context, tournamentID string) error {
	_, err := s.mutate(ctx, tournamentID, "TOURNAMENT_RESET", func(t *models.Tournament) error {
		s.engine.ResetTournament(t)
		return nil
	})
	return err
}
