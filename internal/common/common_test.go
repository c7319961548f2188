package common

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCascadeError_IsIntegrityFailure(t *testing.T) {
	err := fmt.Errorf("delete user 4: %w", &CascadeError{Step: "comments", Expected: 2, Affected: 1})

	require.True(t, errors.Is(err, ErrCascadeIntegrity))
	var ce *CascadeError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "comments", ce.Step)
	assert.Contains(t, err.Error(), "removed 1 of 2 rows")
}

func TestRemoteDeleteError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &RemoteDeleteError{Filename: "a.png", Err: cause}

	assert.True(t, errors.Is(err, ErrExternalCoordination))
	assert.True(t, errors.Is(err, cause))

	bodyErr := &RemoteDeleteError{Filename: "a.png", Status: 200, Message: "nope"}
	assert.True(t, errors.Is(bodyErr, ErrExternalCoordination))
	assert.Contains(t, bodyErr.Error(), `message "nope"`)
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(&ValidationError{Field: "x", Reason: "y"}))
	assert.True(t, IsValidation(fmt.Errorf("wrap: %w", ErrSelfChat)))
	assert.True(t, IsValidation(ErrNoColumns))
	assert.False(t, IsValidation(ErrNotFound))
}

func TestValidation(t *testing.T) {
	assert.NoError(t, ValidateUsername("user_1"))
	assert.Error(t, ValidateUsername("!"))
	assert.Error(t, ValidateUsername("ab"))
	assert.NoError(t, ValidateEmail("A@Example.com"))
	assert.Error(t, ValidateEmail("bademail"))
	assert.NoError(t, ValidatePassword("secret"))
	assert.Error(t, ValidatePassword("abc"))
	assert.NoError(t, ValidateColor("color1", "#fff"))
	assert.NoError(t, ValidateColor("color1", "#A0B1C2"))
	assert.Error(t, ValidateColor("color1", "red"))
	assert.Error(t, ValidateText("comment_text", "   ", 10))
	assert.Error(t, ValidateText("comment_text", "this is far too long", 10))
}

func TestToken_RoundTrip(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := GenerateToken(7, "alice", LevelAdmin)
	require.NoError(t, err)

	claims, err := ValidToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), claims.UserID)
	assert.Equal(t, LevelAdmin, claims.Level)

	_, err = ValidToken(token + "x")
	assert.Error(t, err)
}

func TestAuthMiddleware(t *testing.T) {
	SetJWTSecret("test-secret")
	token, err := GenerateToken(9, "bob", LevelUser)
	require.NoError(t, err)

	var got Actor
	h := AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = ActorFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name   string
		header string
		status int
	}{
		{name: "valid token", header: "Bearer " + token, status: http.StatusNoContent},
		{name: "missing header", header: "", status: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + token, status: http.StatusUnauthorized},
		{name: "bad token", header: "Bearer nope", status: http.StatusUnauthorized},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tc.status, rec.Code)
		})
	}
	assert.Equal(t, uint64(9), got.UserID)
	assert.Equal(t, token, got.Token)
}

func TestWriteError_Mapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("post 3: %w", ErrNotFound), http.StatusNotFound},
		{ErrSelfChat, http.StatusBadRequest},
		{&CascadeError{Step: "saves"}, http.StatusInternalServerError},
		{&RemoteDeleteError{Filename: "f"}, http.StatusInternalServerError},
		{ErrForbidden, http.StatusForbidden},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range tests {
		rec := httptest.NewRecorder()
		WriteError(rec, tc.err)
		assert.Equal(t, tc.status, rec.Code, tc.err.Error())
	}
}

func TestWriteOutcome(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteOutcome(rec, OutcomeAlreadyExists, "Like added", "Like already exists")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Like already exists")

	rec = httptest.NewRecorder()
	WriteOutcome(rec, OutcomeCreated, "Like added", "Like already exists")
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestOpID(t *testing.T) {
	assert.Equal(t, "-", OpID(context.Background()))
	assert.Equal(t, "-", OpID(WithOpID(context.Background(), "")))
	assert.Equal(t, "op-1", OpID(WithOpID(context.Background(), "op-1")))
}
