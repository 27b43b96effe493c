package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"go_flashcards/internal/config"
	"go_flashcards/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// Router は組み立て済みのハンドラ群
type Router struct {
	Decks    *DeckHandler
	Cards    *CardHandler
	Learning *LearningHandler
	Users    *UserHandler
	Health   *HealthHandler
	// Auth は保護ルートに適用する認証ミドルウェア
	Auth func(http.Handler) http.Handler
}

// NewRouter は共通ミドルウェアと /api/v1 のルートを登録した chi ルーターを返す
func NewRouter(h Router, corsCfg config.CORSConfig, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   corsCfg.AllowedOrigins,
		AllowedMethods:   corsCfg.AllowedMethods,
		AllowedHeaders:   corsCfg.AllowedHeaders,
		ExposedHeaders:   corsCfg.ExposedHeaders,
		AllowCredentials: corsCfg.AllowCredentials,
		MaxAge:           corsCfg.MaxAge,
	}).Handler)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(h.Auth)

		r.Get("/me", h.Users.GetMe)

		r.Route("/decks", func(r chi.Router) {
			r.Get("/", h.Decks.ListDecks)
			r.Post("/", h.Decks.CreateDeck)
			r.Get("/min-max-cards", h.Decks.GetMinMaxCards)

			r.Route("/{deck_id}", func(r chi.Router) {
				r.Get("/", h.Decks.GetDeck)
				r.Patch("/", h.Decks.UpdateDeck)
				r.Delete("/", h.Decks.DeleteDeck)
				r.Post("/favorite", h.Decks.AddFavorite)
				r.Delete("/favorite", h.Decks.RemoveFavorite)
				r.Get("/cards", h.Cards.ListCards)
				r.Post("/cards", h.Cards.CreateCard)
				r.Get("/learn", h.Learning.GetNextCard)
			})
		})

		r.Route("/cards/{card_id}", func(r chi.Router) {
			r.Get("/", h.Cards.GetCard)
			r.Patch("/", h.Cards.UpdateCard)
			r.Delete("/", h.Cards.DeleteCard)
			r.Post("/grade", h.Learning.SubmitGrade)
		})
	})

	r.Get("/health", h.Health.Check)
	return r
}
