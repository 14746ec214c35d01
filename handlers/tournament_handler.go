package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/retrolan/lanbracket/models"
	"github.com/retrolan/lanbracket/services"
)

// TournamentHandler exposes the engine's operation set over HTTP. Handlers
// are plumbing only: decode, call the service, map the error, encode.
type TournamentHandler struct {
	service *services.TournamentService
}

func NewTournamentHandler(service *services.TournamentService) *TournamentHandler {
	return &TournamentHandler{service: service}
}

// HealthHandler handles GET /api/health.
func (h *TournamentHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, jsonResponse{"status": "ok"}); err != nil {
		serverErrorResponse(w, err)
	}
}

// ListGamesHandler handles GET /api/games.
func (h *TournamentHandler) ListGamesHandler(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, models.AllGames()); err != nil {
		serverErrorResponse(w, err)
	}
}

// ListHandler handles GET /api/tournaments.
func (h *TournamentHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.service.List(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, summaries); err != nil {
		serverErrorResponse(w, err)
	}
}

// CreateHandler handles POST /api/tournaments.
func (h *TournamentHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var input services.CreateTournamentInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, err)
		return
	}

	t, err := h.service.Create(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{
		"id":        t.ID,
		"name":      t.Name,
		"game_type": t.GameType,
	}); err != nil {
		serverErrorResponse(w, err)
	}
}

// StateHandler handles GET /api/tournaments/{tournamentID}/state.
func (h *TournamentHandler) StateHandler(w http.ResponseWriter, r *http.Request) {
	t, err := h.service.Get(r.Context(), chi.URLParam(r, "tournamentID"))
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}

	response := jsonResponse{
		"id":              t.ID,
		"name":            t.Name,
		"game_type":       t.GameType,
		"players":         t.Players,
		"pods":            t.Pods,
		"matches":         t.Matches,
		"bracket_matches": t.BracketMatches,
		"state":           t.State,
	}
	if cfg, ok := models.GetGameConfig(t.GameType); ok {
		response["game_config"] = cfg
	}
	if err := writeJSON(w, http.StatusOK, response); err != nil {
		serverErrorResponse(w, err)
	}
}

// DeleteHandler handles DELETE /api/tournaments/{tournamentID}.
func (h *TournamentHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "tournamentID")); err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"success": true}); err != nil {
		serverErrorResponse(w, err)
	}
}

// RenameHandler handles PUT /api/tournaments/{tournamentID}/name.
func (h *TournamentHandler) RenameHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name string `json:"name"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, err)
		return
	}
	if err := h.service.Rename(r.Context(), chi.URLParam(r, "tournamentID"), input.Name); err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"success": true}); err != nil {
		serverErrorResponse(w, err)
	}
}

// ResetHandler handles POST /api/tournaments/{tournamentID}/reset.
func (h *TournamentHandler) ResetHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Reset(r.Context(), chi.URLParam(r, "tournamentID")); err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"success": true}); err != nil {
		serverErrorResponse(w, err)
	}
}

// AddPlayerHandler handles POST /api/tournaments/{tournamentID}/players.
func (h *TournamentHandler) AddPlayerHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name string `json:"name"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, err)
		return
	}

	player, err := h.service.AddPlayer(r.Context(), chi.URLParam(r, "tournamentID"), input.Name)
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, player); err != nil {
		serverErrorResponse(w, err)
	}
}

// RemovePlayerHandler handles DELETE .../players/{playerID}.
func (h *TournamentHandler) RemovePlayerHandler(w http.ResponseWriter, r *http.Request) {
	err := h.service.RemovePlayer(r.Context(), chi.URLParam(r, "tournamentID"), chi.URLParam(r, "playerID"))
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"success": true}); err != nil {
		serverErrorResponse(w, err)
	}
}

// UpdatePlayerHandler handles PUT .../players/{playerID}.
func (h *TournamentHandler) UpdatePlayerHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name string `json:"name"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, err)
		return
	}

	err := h.service.UpdatePlayerName(r.Context(), chi.URLParam(r, "tournamentID"), chi.URLParam(r, "playerID"), input.Name)
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"success": true}); err != nil {
		serverErrorResponse(w, err)
	}
}

// UpdatePlayerPhotoHandler handles PUT .../players/{playerID}/photo.
func (h *TournamentHandler) UpdatePlayerPhotoHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Photo string `json:"photo"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, err)
		return
	}

	err := h.service.UpdatePlayerPhoto(r.Context(), chi.URLParam(r, "tournamentID"), chi.URLParam(r, "playerID"), input.Photo)
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"success": true}); err != nil {
		serverErrorResponse(w, err)
	}
}

// UploadPlayerPhotoHandler handles POST .../players/{playerID}/photo with a
// raw image body; the photo lands in object storage.
func (h *TournamentHandler) UploadPlayerPhotoHandler(w http.ResponseWriter, r *http.Request) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := h.service.UploadPlayerPhoto(r.Context(),
		chi.URLParam(r, "tournamentID"), chi.URLParam(r, "playerID"), contentType, r.Body)
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"photo_url": url}); err != nil {
		serverErrorResponse(w, err)
	}
}

// StartHandler handles POST /api/tournaments/{tournamentID}/start.
func (h *TournamentHandler) StartHandler(w http.ResponseWriter, r *http.Request) {
	t, err := h.service.StartGroupStage(r.Context(), chi.URLParam(r, "tournamentID"))
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"success": true, "state": t.State}); err != nil {
		serverErrorResponse(w, err)
	}
}

// SubmitMatchResultHandler handles POST .../matches/{matchID}.
func (h *TournamentHandler) SubmitMatchResultHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Results map[string]models.PlayerResult `json:"results"`
		MapName *string                        `json:"map_name"`
		Games   []models.GameResult            `json:"games"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, err)
		return
	}

	err := h.service.SubmitMatchResult(r.Context(),
		chi.URLParam(r, "tournamentID"), chi.URLParam(r, "matchID"),
		input.Results, input.MapName, input.Games)
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"success": true}); err != nil {
		serverErrorResponse(w, err)
	}
}

// RankingsHandler handles GET /api/tournaments/{tournamentID}/rankings.
func (h *TournamentHandler) RankingsHandler(w http.ResponseWriter, r *http.Request) {
	rankings, err := h.service.GetRankings(r.Context(), chi.URLParam(r, "tournamentID"))
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, rankings); err != nil {
		serverErrorResponse(w, err)
	}
}

// GenerateBracketsHandler handles POST /api/tournaments/{tournamentID}/brackets.
func (h *TournamentHandler) GenerateBracketsHandler(w http.ResponseWriter, r *http.Request) {
	t, err := h.service.GenerateBrackets(r.Context(), chi.URLParam(r, "tournamentID"))
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"success": true, "bracket_matches": t.BracketMatches}); err != nil {
		serverErrorResponse(w, err)
	}
}

// SubmitBracketWinnerHandler handles POST .../bracket-matches/{nodeID}.
func (h *TournamentHandler) SubmitBracketWinnerHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		WinnerID string `json:"winner_id"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, err)
		return
	}

	err := h.service.SubmitBracketWinner(r.Context(),
		chi.URLParam(r, "tournamentID"), chi.URLParam(r, "nodeID"), input.WinnerID)
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"success": true}); err != nil {
		serverErrorResponse(w, err)
	}
}

// SubmitBracketGameHandler handles POST .../bracket-matches/{nodeID}/games.
func (h *TournamentHandler) SubmitBracketGameHandler(w http.ResponseWriter, r *http.Request) {
	var game models.SeriesGame
	if err := readJSON(w, r, &game); err != nil {
		badRequestResponse(w, err)
		return
	}

	err := h.service.SubmitBracketGameResult(r.Context(),
		chi.URLParam(r, "tournamentID"), chi.URLParam(r, "nodeID"), game)
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"success": true}); err != nil {
		serverErrorResponse(w, err)
	}
}

// ChampionHandler handles GET /api/tournaments/{tournamentID}/champion.
// Returns a null champion until the finals are decided.
func (h *TournamentHandler) ChampionHandler(w http.ResponseWriter, r *http.Request) {
	champion, err := h.service.Champion(r.Context(), chi.URLParam(r, "tournamentID"))
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"champion": champion}); err != nil {
		serverErrorResponse(w, err)
	}
}

// ResetGroupHandler handles POST .../groups/{podID}/reset.
func (h *TournamentHandler) ResetGroupHandler(w http.ResponseWriter, r *http.Request) {
	err := h.service.ResetGroup(r.Context(), chi.URLParam(r, "tournamentID"), chi.URLParam(r, "podID"))
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"success": true}); err != nil {
		serverErrorResponse(w, err)
	}
}

// RenameGroupHandler handles PUT .../groups/{podID}/name.
func (h *TournamentHandler) RenameGroupHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name string `json:"name"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, err)
		return
	}

	err := h.service.RenameGroup(r.Context(), chi.URLParam(r, "tournamentID"), chi.URLParam(r, "podID"), input.Name)
	if err != nil {
		mapServiceErrorToHTTP(w, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"success": true}); err != nil {
		serverErrorResponse(w, err)
	}
}
