package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/heartmarshall/foodgram-backend/internal/domain"
)

// detail is the body of non-validation errors.
type detail struct {
	Detail string `json:"detail"`
}

var (
	errBadJSON = domain.NewValidationError("non_field_errors", "Invalid JSON body.")
	errBadID   = errors.New("invalid id")
	errBadPage = errors.New("invalid page")
)

const (
	msgNotFound  = "Not found."
	msgNoAuth    = "Authentication credentials were not provided."
	msgForbidden = "You do not have permission to perform this action."
)

// base carries what every handler needs to report errors.
type base struct {
	log *slog.Logger
}

// handleError maps domain errors to HTTP responses.
func (b base) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, ve.Fields())
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusBadRequest, map[string][]string{"non_field_errors": {"Invalid data."}})
	case errors.Is(err, domain.ErrAlreadyExists):
		writeJSON(w, http.StatusBadRequest, map[string][]string{"non_field_errors": {"Object already exists."}})
	case errors.Is(err, domain.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, detail{msgNoAuth})
	case errors.Is(err, domain.ErrForbidden):
		writeJSON(w, http.StatusForbidden, detail{msgForbidden})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, errBadID):
		writeJSON(w, http.StatusNotFound, detail{msgNotFound})
	case errors.Is(err, errBadPage):
		writeJSON(w, http.StatusNotFound, detail{"Invalid page."})
	default:
		b.log.ErrorContext(r.Context(), "internal error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, detail{"internal server error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errBadJSON
	}
	return nil
}

// pathID parses a positive int64 URL parameter.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errBadID
	}
	return id, nil
}

// queryInt parses an optional integer query parameter, returning def when
// absent or malformed.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

// queryFlag reports whether a boolean filter such as is_favorited=1 is on.
func queryFlag(r *http.Request, name string) bool {
	switch r.URL.Query().Get(name) {
	case "1", "true", "True":
		return true
	}
	return false
}
