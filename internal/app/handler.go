package app

import (
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/foodgram-backend/internal/adapter/postgres"
	"github.com/heartmarshall/foodgram-backend/internal/adapter/postgres/amount"
	cartrepo "github.com/heartmarshall/foodgram-backend/internal/adapter/postgres/cart"
	favoriterepo "github.com/heartmarshall/foodgram-backend/internal/adapter/postgres/favorite"
	"github.com/heartmarshall/foodgram-backend/internal/adapter/postgres/ingredient"
	reciperepo "github.com/heartmarshall/foodgram-backend/internal/adapter/postgres/recipe"
	subscriptionrepo "github.com/heartmarshall/foodgram-backend/internal/adapter/postgres/subscription"
	"github.com/heartmarshall/foodgram-backend/internal/adapter/postgres/tag"
	"github.com/heartmarshall/foodgram-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/foodgram-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/foodgram-backend/internal/adapter/storage"
	"github.com/heartmarshall/foodgram-backend/internal/auth"
	"github.com/heartmarshall/foodgram-backend/internal/config"
	authsvc "github.com/heartmarshall/foodgram-backend/internal/service/auth"
	"github.com/heartmarshall/foodgram-backend/internal/service/cart"
	"github.com/heartmarshall/foodgram-backend/internal/service/catalog"
	"github.com/heartmarshall/foodgram-backend/internal/service/favorite"
	"github.com/heartmarshall/foodgram-backend/internal/service/recipe"
	"github.com/heartmarshall/foodgram-backend/internal/service/subscription"
	"github.com/heartmarshall/foodgram-backend/internal/service/user"
	"github.com/heartmarshall/foodgram-backend/internal/transport/dataloader"
	"github.com/heartmarshall/foodgram-backend/internal/transport/rest"
)

// NewHandler wires repositories, services and REST handlers over pool and
// images and returns the root HTTP handler.
func NewHandler(logger *slog.Logger, cfg *config.Config, pool *pgxpool.Pool, images storage.Store) http.Handler {
	// Repositories.
	users := userrepo.New(pool)
	tokens := token.New(pool)
	tags := tag.New(pool)
	ingredients := ingredient.New(pool)
	amounts := amount.New(pool)
	recipes := reciperepo.New(pool)
	favorites := favoriterepo.New(pool)
	carts := cartrepo.New(pool)
	subscriptions := subscriptionrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	// Services.
	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, users, tokens, jwt, cfg.Auth)
	userService := user.NewService(logger, users, cfg.Auth.BcryptCost)
	catalogService := catalog.NewService(logger, tags, ingredients)
	recipeService := recipe.NewService(logger, recipes, amounts, tags, ingredients, images, tx, cfg.Image)
	favoriteService := favorite.NewService(logger, recipes, favorites)
	cartService := cart.NewService(logger, recipes, carts)
	subscriptionService := subscription.NewService(logger, users, subscriptions, recipes)

	deps := rest.RouterDeps{
		Logger:         logger,
		Config:         cfg,
		Auth:           rest.NewAuthHandler(authService, logger),
		Users:          rest.NewUserHandler(authService, userService, cfg.Pagination, logger),
		Subscriptions:  rest.NewSubscriptionHandler(subscriptionService, cfg.Pagination, logger),
		Catalog:        rest.NewCatalogHandler(catalogService, logger),
		Recipes:        rest.NewRecipeHandler(recipeService, favoriteService, cartService, cfg.Pagination, logger),
		Health:         rest.NewHealthHandler(pool, BuildVersion()),
		TokenValidator: authService,
		Loaders: &dataloader.Repos{
			Tag:          tags,
			Ingredient:   recipes,
			User:         users,
			Favorite:     favorites,
			Cart:         carts,
			Subscription: subscriptions,
		},
	}
	if local, ok := images.(*storage.Local); ok {
		deps.MediaDir = local.Dir()
	}

	return rest.NewRouter(deps)
}
