package recipe

import (
	"github.com/heartmarshall/foodgram-backend/internal/domain"
	"github.com/heartmarshall/foodgram-backend/internal/validation"
)

// IngredientInput is one {id, amount} entry of the write shape. Amount is
// bounded by the INTEGER column it is stored in.
type IngredientInput struct {
	ID     int64 `json:"id"     validate:"gt=0"`
	Amount int   `json:"amount" validate:"gte=1,lte=2147483647"`
}

// CreateInput is the write shape of a new recipe. Image is an optional
// data URI.
type CreateInput struct {
	Tags        []int64           `json:"tags"         validate:"required,unique,dive,gt=0"`
	Ingredients []IngredientInput `json:"ingredients"  validate:"required,unique=ID,dive"`
	Name        string            `json:"name"         validate:"required,min=3,max=64"`
	Image       string            `json:"image"`
	Text        string            `json:"text"         validate:"required"`
	CookingTime int               `json:"cooking_time" validate:"gte=1,lte=10080"`
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	if errs := validation.Struct(i); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput is a partial write shape. Nil fields are left unchanged;
// Tags and Ingredients, when set, replace the whole relation.
type UpdateInput struct {
	Tags        *[]int64           `json:"tags"         validate:"omitnil,unique,dive,gt=0"`
	Ingredients *[]IngredientInput `json:"ingredients"  validate:"omitnil,unique=ID,dive"`
	Name        *string            `json:"name"         validate:"omitnil,min=3,max=64"`
	Image       *string            `json:"image"`
	Text        *string            `json:"text"         validate:"omitnil,min=1"`
	CookingTime *int               `json:"cooking_time" validate:"omitnil,gte=1,lte=10080"`
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	if errs := validation.Struct(i); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
