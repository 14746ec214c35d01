package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/retrolan/lanbracket/handlers"
)

// NewRouter wires the HTTP surface: REST under /api, websocket rooms under
// /ws.
func NewRouter(
	tournamentHandler *handlers.TournamentHandler,
	wsHandler *handlers.WebSocketHandler,
	allowedOrigins []string,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", tournamentHandler.HealthHandler)
		r.Get("/games", tournamentHandler.ListGamesHandler)

		r.Route("/tournaments", func(r chi.Router) {
			r.Get("/", tournamentHandler.ListHandler)
			r.Post("/", tournamentHandler.CreateHandler)

			r.Route("/{tournamentID}", func(r chi.Router) {
				r.Get("/state", tournamentHandler.StateHandler)
				r.Delete("/", tournamentHandler.DeleteHandler)
				r.Put("/name", tournamentHandler.RenameHandler)
				r.Post("/reset", tournamentHandler.ResetHandler)

				r.Post("/players", tournamentHandler.AddPlayerHandler)
				r.Route("/players/{playerID}", func(r chi.Router) {
					r.Delete("/", tournamentHandler.RemovePlayerHandler)
					r.Put("/", tournamentHandler.UpdatePlayerHandler)
					r.Put("/photo", tournamentHandler.UpdatePlayerPhotoHandler)
					r.Post("/photo", tournamentHandler.UploadPlayerPhotoHandler)
				})

				r.Post("/start", tournamentHandler.StartHandler)
				r.Post("/matches/{matchID}", tournamentHandler.SubmitMatchResultHandler)
				r.Get("/rankings", tournamentHandler.RankingsHandler)
				r.Get("/champion", tournamentHandler.ChampionHandler)

				r.Post("/brackets", tournamentHandler.GenerateBracketsHandler)
				r.Post("/bracket-matches/{nodeID}", tournamentHandler.SubmitBracketWinnerHandler)
				r.Post("/bracket-matches/{nodeID}/games", tournamentHandler.SubmitBracketGameHandler)

				r.Post("/groups/{podID}/reset", tournamentHandler.ResetGroupHandler)
				r.Put("/groups/{podID}/name", tournamentHandler.RenameGroupHandler)
			})
		})
	})

	r.Get("/ws/tournaments/{tournamentID}", wsHandler.ServeWS)

	return r
}
