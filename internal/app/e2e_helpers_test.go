//go:build e2e

package app_test

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/foodgram-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/foodgram-backend/internal/adapter/storage"
	"github.com/heartmarshall/foodgram-backend/internal/app"
	"github.com/heartmarshall/foodgram-backend/internal/config"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer boots the application handler over a real PostgreSQL
// container (shared via testhelper) and a temporary media directory.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	mediaDir := t.TempDir()
	cfg := &config.Config{
		Server: config.ServerConfig{MaxBodyBytes: 10 << 20},
		Auth: config.AuthConfig{
			JWTSecret:      "e2e-secret-at-least-32-characters-long",
			JWTIssuer:      "foodgram-e2e",
			AccessTokenTTL: time.Hour,
			BcryptCost:     bcrypt.MinCost,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PATCH,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
		},
		Pagination: config.PaginationConfig{DefaultLimit: 10, MaxLimit: 100},
		Storage:    config.StorageConfig{Driver: "local", LocalDir: mediaDir, PublicBaseURL: "/media"},
		Image:      config.ImageConfig{MaxBytes: 1 << 20, MaxWidth: 256, MaxHeight: 256},
	}

	handler := app.NewHandler(logger, cfg, pool, storage.NewLocal(mediaDir, "/media"))

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool}
}

// do sends a JSON request to path (relative to /api) and returns the
// response with its body read.
func (ts *testServer) do(t *testing.T, method, path, token string, body any) (*http.Response, []byte) {
	t.Helper()

	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+"/api"+path, r)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func itoa(id int64) string { return strconv.FormatInt(id, 10) }

// decode unmarshals a response body into T.
func decode[T any](t *testing.T, data []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(data, &v), "body: %s", data)
	return v
}

// ---------------------------------------------------------------------------
// Response shapes.
// ---------------------------------------------------------------------------

type userBody struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	IsSubscribed bool   `json:"is_subscribed"`
}

type tagBody struct {
	ID   int64  `json:"id"`
	Slug string `json:"slug"`
}

type ingredientBody struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

type recipeBody struct {
	ID          int64            `json:"id"`
	Tags        []tagBody        `json:"tags"`
	Author      userBody         `json:"author"`
	Ingredients []ingredientBody `json:"ingredients"`
	IsFavorited bool             `json:"is_favorited"`
	IsInCart    bool             `json:"is_in_shopping_cart"`
	Name        string           `json:"name"`
	Image       *string          `json:"image"`
	Text        string           `json:"text"`
	CookingTime int              `json:"cooking_time"`
}

type errorBody map[string][]string

// ---------------------------------------------------------------------------
// Fixtures.
// ---------------------------------------------------------------------------

// registerAndLogin creates an account through the API, logs in and returns
// the auth token and the new user id.
func registerAndLogin(t *testing.T, ts *testServer) (string, int64) {
	t.Helper()

	suffix := uuid.NewString()[:8]
	email := "cook-" + suffix + "@example.com"
	password := "correct-horse-battery"

	resp, data := ts.do(t, http.MethodPost, "/users/", "", map[string]string{
		"email":      email,
		"username":   "cook_" + suffix,
		"first_name": "Test",
		"last_name":  "Cook",
		"password":   password,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "register: %s", data)
	user := decode[userBody](t, data)

	resp, data = ts.do(t, http.MethodPost, "/auth/token/login/", "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, "login: %s", data)
	tok := decode[struct {
		AuthToken string `json:"auth_token"`
	}](t, data)
	require.NotEmpty(t, tok.AuthToken)

	return tok.AuthToken, user.ID
}

type ingredientAmount struct {
	ID     int64 `json:"id"`
	Amount int   `json:"amount"`
}

// createRecipe posts a recipe and returns its read shape.
func createRecipe(t *testing.T, ts *testServer, token string, tagIDs []int64, items ...ingredientAmount) recipeBody {
	t.Helper()

	resp, data := ts.do(t, http.MethodPost, "/recipes/", token, map[string]any{
		"tags":         tagIDs,
		"ingredients":  items,
		"name":         "Recipe " + uuid.NewString()[:8],
		"text":         "Mix everything.",
		"cooking_time": 20,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "create recipe: %s", data)
	return decode[recipeBody](t, data)
}
