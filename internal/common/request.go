package common

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// PathID parses a numeric route variable.
func PathID(r *http.Request, name string) (uint64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, &ValidationError{Field: name, Reason: "must be a positive integer"}
	}
	return id, nil
}

// DecodeJSON reads a JSON request body into v.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return &ValidationError{Field: "body", Reason: "is required"}
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &ValidationError{Field: "body", Reason: "invalid JSON"}
	}
	return nil
}

// RequireActor returns the authenticated caller or writes a 401.
func RequireActor(w http.ResponseWriter, r *http.Request) (Actor, bool) {
	actor, ok := ActorFromContext(r.Context())
	if !ok {
		WriteJSON(w, http.StatusUnauthorized, MessageResponse{Message: "authorization required"})
	}
	return actor, ok
}
