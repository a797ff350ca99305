// Command load-data fills the tag and ingredient catalogs from JSON files.
// Existing rows are skipped, so the command can be re-run safely.
//
// Flags:
//
//	--ingredients  path to an ingredients file: [{"name", "measurement_unit"}]
//	--tags         path to a tags file: [{"name", "color", "slug"}]
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/goccy/go-json"

	"github.com/heartmarshall/foodgram-backend/internal/adapter/postgres"
	"github.com/heartmarshall/foodgram-backend/internal/adapter/postgres/ingredient"
	"github.com/heartmarshall/foodgram-backend/internal/adapter/postgres/tag"
	"github.com/heartmarshall/foodgram-backend/internal/app"
	"github.com/heartmarshall/foodgram-backend/internal/config"
	"github.com/heartmarshall/foodgram-backend/internal/service/catalog"
)

func main() {
	ingredientsFlag := flag.String("ingredients", "", "path to ingredients JSON file")
	tagsFlag := flag.String("tags", "", "path to tags JSON file")
	flag.Parse()

	if *ingredientsFlag == "" && *tagsFlag == "" {
		log.Fatal("nothing to load: pass --ingredients and/or --tags")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := catalog.NewService(logger, tag.New(pool), ingredient.New(pool))

	if *ingredientsFlag != "" {
		var records []catalog.IngredientRecord
		if err := readJSON(*ingredientsFlag, &records); err != nil {
			logger.Error("read ingredients", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if _, err := svc.ImportIngredients(ctx, records); err != nil {
			logger.Error("import ingredients", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if *tagsFlag != "" {
		var records []catalog.TagRecord
		if err := readJSON(*tagsFlag, &records); err != nil {
			logger.Error("read tags", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if _, err := svc.ImportTags(ctx, records); err != nil {
			logger.Error("import tags", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}
}

func readJSON(path string, dst any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
