package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
	"github.com/heartmarshall/foodgram-backend/internal/validation"
)

// TagRecord is one entry of a tag fixture file.
type TagRecord struct {
	Name  string `json:"name"  validate:"required,max=200"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
	Slug  string `json:"slug"  validate:"required,max=200"`
}

// IngredientRecord is one entry of an ingredient fixture file.
type IngredientRecord struct {
	Name            string `json:"name"             validate:"required,max=200"`
	MeasurementUnit string `json:"measurement_unit" validate:"required,max=200"`
}

// ImportTags inserts the given tags, skipping existing names and slugs.
// The whole batch is rejected if any record is invalid.
func (s *Service) ImportTags(ctx context.Context, records []TagRecord) (int64, error) {
	tags := make([]domain.Tag, 0, len(records))
	for i, r := range records {
		if errs := validation.Struct(r); len(errs) > 0 {
			return 0, fmt.Errorf("catalog.ImportTags record %d: %w", i, domain.NewValidationErrors(errs))
		}
		tags = append(tags, domain.Tag{
			Name:  domain.CompactSpaces(r.Name),
			Color: r.Color,
			Slug:  r.Slug,
		})
	}

	n, err := s.tags.CreateMany(ctx, tags)
	if err != nil {
		return n, fmt.Errorf("catalog.ImportTags: %w", err)
	}

	s.log.InfoContext(ctx, "tags imported", slog.Int("total", len(tags)), slog.Int64("inserted", n))
	return n, nil
}

// ImportIngredients inserts the given ingredients, skipping existing
// (name, measurement_unit) pairs.
func (s *Service) ImportIngredients(ctx context.Context, records []IngredientRecord) (int64, error) {
	items := make([]domain.Ingredient, 0, len(records))
	for i, r := range records {
		if errs := validation.Struct(r); len(errs) > 0 {
			return 0, fmt.Errorf("catalog.ImportIngredients record %d: %w", i, domain.NewValidationErrors(errs))
		}
		items = append(items, domain.Ingredient{
			Name:            domain.CompactSpaces(r.Name),
			MeasurementUnit: domain.CompactSpaces(r.MeasurementUnit),
		})
	}

	n, err := s.ingredients.CreateMany(ctx, items)
	if err != nil {
		return n, fmt.Errorf("catalog.ImportIngredients: %w", err)
	}

	s.log.InfoContext(ctx, "ingredients imported", slog.Int("total", len(items)), slog.Int64("inserted", n))
	return n, nil
}
