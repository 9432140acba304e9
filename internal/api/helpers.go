package api

import (
	"encoding/json/v2"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/medialogapp/medialog-server/internal/store"
)

// decodeJSON unmarshals and validates a request body.
func (s *Server) decodeJSON(r *http.Request, dst any) error {
	if err := json.UnmarshalRead(r.Body, dst); err != nil {
		return store.ErrInvalidInput.WithMessage("Invalid request body")
	}
	return s.validator.Validate(dst)
}

// idParam extracts a positive integer URL parameter.
func idParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, store.ErrInvalidInput.WithMessagef("%s must be a positive integer", name)
	}
	return id, nil
}

// queryInt64 extracts an integer query parameter, returning 0 when absent.
func queryInt64(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, store.ErrInvalidInput.WithMessagef("%s must be an integer", name)
	}
	return v, nil
}
