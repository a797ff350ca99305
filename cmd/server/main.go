// Command server runs the recipe API over HTTP.
//
// Configuration comes from CONFIG_PATH (or ./config.yaml) and the
// environment; a .env file in the working directory is loaded first when
// present.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"errors"
	"io/fs"
	"log"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/foodgram-backend/internal/app"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("load .env: %v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("server: %v", err)
	}
}
