package common

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
)

type ctxKey string

const actorKey ctxKey = "actor"

// AuthMiddleware validates the bearer token and puts the caller into the
// request context. Requests without a valid token never reach the handler.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Fields(r.Header.Get("Authorization"))
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			WriteJSON(w, http.StatusUnauthorized, MessageResponse{Message: "authorization required"})
			return
		}

		claims, err := ValidToken(parts[1])
		if err != nil {
			WriteJSON(w, http.StatusUnauthorized, MessageResponse{Message: "invalid or expired token"})
			return
		}

		actor := Actor{UserID: claims.UserID, Level: claims.Level, Token: parts[1]}
		next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
	})
}

func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

func ActorFromContext(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(actorKey).(Actor)
	return actor, ok
}

// LoggingMiddleware logs method, path and status of every request.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		if rec.status >= http.StatusInternalServerError {
			log.Printf("✗ %s %s -> %d", r.Method, r.URL.Path, rec.status)
			return
		}
		log.Printf("✓ %s %s -> %d", r.Method, r.URL.Path, rec.status)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func WriteJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// WriteError maps the service error taxonomy onto HTTP status codes.
func WriteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		WriteJSON(w, http.StatusNotFound, MessageResponse{Message: err.Error()})
	case errors.Is(err, ErrUnauthorized):
		WriteJSON(w, http.StatusUnauthorized, MessageResponse{Message: err.Error()})
	case errors.Is(err, ErrForbidden):
		WriteJSON(w, http.StatusForbidden, MessageResponse{Message: err.Error()})
	case IsValidation(err):
		WriteJSON(w, http.StatusBadRequest, MessageResponse{Message: err.Error()})
	case errors.Is(err, ErrExternalCoordination), errors.Is(err, ErrCascadeIntegrity):
		log.Printf("operation rolled back: %v", err)
		WriteJSON(w, http.StatusInternalServerError, MessageResponse{Message: err.Error()})
	default:
		log.Printf("internal error: %v", err)
		WriteJSON(w, http.StatusInternalServerError, MessageResponse{Message: "internal server error"})
	}
}

// WriteOutcome answers a guarded insert; a duplicate is a success, not a conflict.
func WriteOutcome(w http.ResponseWriter, outcome Outcome, created string, existing string) {
	if outcome == OutcomeAlreadyExists {
		WriteJSON(w, http.StatusOK, MessageResponse{Message: existing})
		return
	}
	WriteJSON(w, http.StatusCreated, MessageResponse{Message: created})
}

const opIDKey ctxKey = "op_id"

// WithOpID tags ctx with the id of the operation it belongs to, so every log
// line of one transaction can be correlated.
func WithOpID(ctx context.Context, opID string) context.Context {
	return context.WithValue(ctx, opIDKey, opID)
}

// OpID returns the operation id on ctx, or "-" when there is none.
func OpID(ctx context.Context) string {
	if id, ok := ctx.Value(opIDKey).(string); ok && id != "" {
		return id
	}
	return "-"
}
