package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/foodgram-backend/internal/config"
	dl "github.com/heartmarshall/foodgram-backend/internal/transport/dataloader"
	"github.com/heartmarshall/foodgram-backend/internal/transport/middleware"
)

// RouterDeps holds everything NewRouter wires together.
type RouterDeps struct {
	Logger *slog.Logger
	Config *config.Config

	Auth          *AuthHandler
	Users         *UserHandler
	Subscriptions *SubscriptionHandler
	Catalog       *CatalogHandler
	Recipes       *RecipeHandler
	Health        *HealthHandler

	TokenValidator interface {
		ValidateToken(ctx context.Context, token string) (int64, string, error)
	}
	Loaders *dl.Repos

	// MediaDir, when set, is served under /media for the local image store.
	MediaDir string
}

// NewRouter builds the HTTP handler. Routes accept an optional trailing slash.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(d.Logger),
		middleware.Logger(d.Logger),
		middleware.Metrics,
	))
	r.Use(chimiddleware.StripSlashes)

	// ========================
	// Operational endpoints
	// ========================
	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)
	r.Handle("/metrics", promhttp.Handler())

	if d.MediaDir != "" {
		r.Handle("/media/*", http.StripPrefix("/media/", http.FileServer(http.Dir(d.MediaDir))))
	}

	// ========================
	// API
	// ========================
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.CORS(d.Config.CORS))
		r.Use(middleware.RateLimit(d.Config.RateLimit))
		r.Use(chimiddleware.RequestSize(d.Config.Server.MaxBodyBytes))
		r.Use(middleware.Auth(d.TokenValidator, d.Logger))
		r.Use(dl.Middleware(d.Loaders))

		r.Post("/auth/token/login", d.Auth.Login)
		r.Post("/auth/token/logout", d.Auth.Logout)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", d.Users.List)
			r.Post("/", d.Users.Register)
			r.Get("/me", d.Users.Me)
			r.Patch("/me", d.Users.UpdateMe)
			r.Post("/set_password", d.Users.SetPassword)
			r.Get("/subscriptions", d.Subscriptions.List)
			r.Get("/{id}", d.Users.Get)
			r.Post("/{id}/subscribe", d.Subscriptions.Subscribe)
			r.Delete("/{id}/subscribe", d.Subscriptions.Unsubscribe)
		})

		r.Get("/tags", d.Catalog.ListTags)
		r.Get("/tags/{id}", d.Catalog.GetTag)
		r.Get("/ingredients", d.Catalog.SearchIngredients)
		r.Get("/ingredients/{id}", d.Catalog.GetIngredient)

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", d.Recipes.List)
			r.Post("/", d.Recipes.Create)
			r.Get("/download_shopping_cart", d.Recipes.DownloadShoppingCart)
			r.Get("/{id}", d.Recipes.Get)
			r.Patch("/{id}", d.Recipes.Update)
			r.Delete("/{id}", d.Recipes.Delete)
			r.Post("/{id}/favorite", d.Recipes.AddFavorite)
			r.Delete("/{id}/favorite", d.Recipes.RemoveFavorite)
			r.Post("/{id}/shopping_cart", d.Recipes.AddToCart)
			r.Delete("/{id}/shopping_cart", d.Recipes.RemoveFromCart)
		})
	})

	return r
}
