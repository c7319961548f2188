// Package webtest drives mux routers in handler tests.
package webtest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mediasocial/internal/common"

	"github.com/stretchr/testify/require"
)

const Secret = "test-secret"

// Bearer returns an Authorization header value for the given caller.
func Bearer(t *testing.T, userID uint64, level common.UserLevel) string {
	t.Helper()
	common.SetJWTSecret(Secret)
	token, err := common.GenerateToken(userID, "someone", level)
	require.NoError(t, err)
	return "Bearer " + token
}

// Do serves one request against h. Empty body and auth are left out.
func Do(h http.Handler, method, path, body, auth string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
