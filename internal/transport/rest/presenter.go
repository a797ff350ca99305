package rest

import (
	"context"
	"fmt"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
	dl "github.com/heartmarshall/foodgram-backend/internal/transport/dataloader"
	"github.com/heartmarshall/foodgram-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Response shapes
// ---------------------------------------------------------------------------

type userResponse struct {
	Email        string `json:"email"`
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsSubscribed bool   `json:"is_subscribed"`
}

// registeredResponse omits is_subscribed, as returned by sign-up.
type registeredResponse struct {
	Email     string `json:"email"`
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type tagResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Slug  string `json:"slug"`
}

type ingredientResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

type recipeIngredientResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

type recipeResponse struct {
	ID          int64                      `json:"id"`
	Tags        []tagResponse              `json:"tags"`
	Author      userResponse               `json:"author"`
	Ingredients []recipeIngredientResponse `json:"ingredients"`
	IsFavorited bool                       `json:"is_favorited"`
	IsInCart    bool                       `json:"is_in_shopping_cart"`
	Name        string                     `json:"name"`
	Image       *string                    `json:"image"`
	Text        string                     `json:"text"`
	CookingTime int                        `json:"cooking_time"`
}

type shortRecipeResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Image       *string `json:"image"`
	CookingTime int     `json:"cooking_time"`
}

type authorResponse struct {
	userResponse
	Recipes      []shortRecipeResponse `json:"recipes"`
	RecipesCount int                   `json:"recipes_count"`
}

// ---------------------------------------------------------------------------
// Plain mappers
// ---------------------------------------------------------------------------

func toRegisteredResponse(u *domain.User) registeredResponse {
	return registeredResponse{
		Email:     u.Email,
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func toUserResponse(u domain.User, subscribed bool) userResponse {
	return userResponse{
		Email:        u.Email,
		ID:           u.ID,
		Username:     u.Username,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		IsSubscribed: subscribed,
	}
}

func toTagResponse(t domain.Tag) tagResponse {
	return tagResponse{ID: t.ID, Name: t.Name, Color: t.Color, Slug: t.Slug}
}

func toIngredientResponse(i domain.Ingredient) ingredientResponse {
	return ingredientResponse{ID: i.ID, Name: i.Name, MeasurementUnit: i.MeasurementUnit}
}

func toShortRecipe(r domain.Recipe) shortRecipeResponse {
	return shortRecipeResponse{
		ID:          r.ID,
		Name:        r.Name,
		Image:       imageURL(r.Image),
		CookingTime: r.CookingTime,
	}
}

func imageURL(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ---------------------------------------------------------------------------
// Loader-backed presenters
// ---------------------------------------------------------------------------

// presentUsers attaches is_subscribed for the viewer to each user.
// The viewer is never subscribed to themselves.
func presentUsers(ctx context.Context, users []domain.User) ([]userResponse, error) {
	loaders := dl.FromContext(ctx)
	viewer, _ := ctxutil.UserIDFromCtx(ctx)

	thunks := make([]dataloader.Thunk[bool], len(users))
	for i, u := range users {
		thunks[i] = loaders.SubscribedByAuthorID.Load(ctx, u.ID)
	}

	out := make([]userResponse, len(users))
	for i, u := range users {
		subscribed, err := thunks[i]()
		if err != nil {
			return nil, fmt.Errorf("load is_subscribed: %w", err)
		}
		out[i] = toUserResponse(u, subscribed && u.ID != viewer)
	}
	return out, nil
}

func presentUser(ctx context.Context, u domain.User) (userResponse, error) {
	out, err := presentUsers(ctx, []domain.User{u})
	if err != nil {
		return userResponse{}, err
	}
	return out[0], nil
}

type recipeThunks struct {
	tags        dataloader.Thunk[[]domain.Tag]
	ingredients dataloader.Thunk[[]domain.RecipeIngredient]
	author      dataloader.Thunk[*domain.User]
	favorited   dataloader.Thunk[bool]
	inCart      dataloader.Thunk[bool]
}

// presentRecipes expands recipes into the read shape. All relations are
// requested before any is awaited so each loader issues one batch.
func presentRecipes(ctx context.Context, recipes []domain.Recipe) ([]recipeResponse, error) {
	loaders := dl.FromContext(ctx)

	pending := make([]recipeThunks, len(recipes))
	for i, r := range recipes {
		pending[i] = recipeThunks{
			tags:        loaders.TagsByRecipeID.Load(ctx, r.ID),
			ingredients: loaders.IngredientsByRecipeID.Load(ctx, r.ID),
			author:      loaders.UserByID.Load(ctx, r.AuthorID),
			favorited:   loaders.FavoritedByRecipeID.Load(ctx, r.ID),
			inCart:      loaders.InCartByRecipeID.Load(ctx, r.ID),
		}
	}

	authors := make([]domain.User, len(recipes))
	out := make([]recipeResponse, len(recipes))
	for i, r := range recipes {
		p := pending[i]

		tags, err := p.tags()
		if err != nil {
			return nil, fmt.Errorf("load tags of recipe %d: %w", r.ID, err)
		}
		ingredients, err := p.ingredients()
		if err != nil {
			return nil, fmt.Errorf("load ingredients of recipe %d: %w", r.ID, err)
		}
		author, err := p.author()
		if err != nil {
			return nil, fmt.Errorf("load author of recipe %d: %w", r.ID, err)
		}
		favorited, err := p.favorited()
		if err != nil {
			return nil, fmt.Errorf("load is_favorited of recipe %d: %w", r.ID, err)
		}
		inCart, err := p.inCart()
		if err != nil {
			return nil, fmt.Errorf("load is_in_shopping_cart of recipe %d: %w", r.ID, err)
		}

		authors[i] = *author
		out[i] = recipeResponse{
			ID:          r.ID,
			Tags:        make([]tagResponse, 0, len(tags)),
			Ingredients: make([]recipeIngredientResponse, 0, len(ingredients)),
			IsFavorited: favorited,
			IsInCart:    inCart,
			Name:        r.Name,
			Image:       imageURL(r.Image),
			Text:        r.Text,
			CookingTime: r.CookingTime,
		}
		for _, t := range tags {
			out[i].Tags = append(out[i].Tags, toTagResponse(t))
		}
		for _, ing := range ingredients {
			out[i].Ingredients = append(out[i].Ingredients, recipeIngredientResponse{
				ID:              ing.IngredientID,
				Name:            ing.Name,
				MeasurementUnit: ing.MeasurementUnit,
				Amount:          ing.Amount,
			})
		}
	}

	users, err := presentUsers(ctx, authors)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Author = users[i]
	}
	return out, nil
}

func presentRecipe(ctx context.Context, r domain.Recipe) (recipeResponse, error) {
	out, err := presentRecipes(ctx, []domain.Recipe{r})
	if err != nil {
		return recipeResponse{}, err
	}
	return out[0], nil
}

// presentAuthors renders subscription entries. Every listed author is
// followed by the viewer by construction.
func presentAuthors(authors []domain.Author) []authorResponse {
	out := make([]authorResponse, len(authors))
	for i, a := range authors {
		recipes := make([]shortRecipeResponse, 0, len(a.Recipes))
		for _, r := range a.Recipes {
			recipes = append(recipes, toShortRecipe(r))
		}
		out[i] = authorResponse{
			userResponse: toUserResponse(a.User, true),
			Recipes:      recipes,
			RecipesCount: a.RecipesCount,
		}
	}
	return out
}
