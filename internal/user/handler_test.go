package user

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"mediasocial/internal/cascade"
	"mediasocial/internal/common"
	"mediasocial/internal/common/webtest"
	"mediasocial/internal/database"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*mux.Router, *MockUserService) {
	ctrl := gomock.NewController(t)
	mockSvc := NewMockUserService(ctrl)

	r := mux.NewRouter()
	NewHandler(mockSvc).RegisterRoutes(r)
	return r, mockSvc
}

func TestHandler_Register(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		setup    func(m *MockUserService)
		wantCode int
	}{
		{
			name: "created",
			body: `{"username":"alice","email":"a@x.io","password":"secret1"}`,
			setup: func(m *MockUserService) {
				m.EXPECT().Register(gomock.Any(), "alice", "a@x.io", "secret1").
					Return(&database.User{UserID: 2, Username: "alice"}, common.OutcomeCreated, nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name: "duplicate is not a failure",
			body: `{"username":"alice","email":"a@x.io","password":"secret1"}`,
			setup: func(m *MockUserService) {
				m.EXPECT().Register(gomock.Any(), "alice", "a@x.io", "secret1").
					Return(nil, common.OutcomeAlreadyExists, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "validation error",
			body: `{"username":"!","email":"bad","password":""}`,
			setup: func(m *MockUserService) {
				m.EXPECT().Register(gomock.Any(), "!", "bad", "").
					Return(nil, common.OutcomeCreated, &common.ValidationError{Field: "username", Reason: "bad"})
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "bad json",
			body:     `{`,
			setup:    func(m *MockUserService) {},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, mockSvc := newTestRouter(t)
			tc.setup(mockSvc)
			rec := webtest.Do(r, http.MethodPost, "/users", tc.body, "")
			assert.Equal(t, tc.wantCode, rec.Code)
		})
	}
}

func TestHandler_Login(t *testing.T) {
	r, mockSvc := newTestRouter(t)

	mockSvc.EXPECT().Login(gomock.Any(), "alice", "secret1").Return(&database.User{UserID: 2}, "tok", nil)
	rec := webtest.Do(r, http.MethodPost, "/auth/login", `{"username":"alice","password":"secret1"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp loginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "tok", resp.Token)

	mockSvc.EXPECT().Login(gomock.Any(), "alice", "wrong").Return(nil, "", common.ErrUnauthorized)
	rec = webtest.Do(r, http.MethodPost, "/auth/login", `{"username":"alice","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_Get(t *testing.T) {
	r, mockSvc := newTestRouter(t)

	mockSvc.EXPECT().GetUser(gomock.Any(), uint64(3)).Return(&database.User{UserID: 3}, nil)
	assert.Equal(t, http.StatusOK, webtest.Do(r, http.MethodGet, "/users/3", "", "").Code)

	mockSvc.EXPECT().GetUser(gomock.Any(), uint64(4)).Return(nil, common.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, webtest.Do(r, http.MethodGet, "/users/4", "", "").Code)
}

func TestHandler_DeleteRequiresToken(t *testing.T) {
	r, _ := newTestRouter(t)
	assert.Equal(t, http.StatusUnauthorized, webtest.Do(r, http.MethodDelete, "/users", "", "").Code)
}

func TestHandler_DeleteSelf(t *testing.T) {
	r, mockSvc := newTestRouter(t)
	auth := webtest.Bearer(t, 6, common.LevelUser)

	mockSvc.EXPECT().Delete(gomock.Any(), gomock.Any(), uint64(6)).DoAndReturn(
		func(_ context.Context, actor common.Actor, _ uint64) (*cascade.Result, error) {
			assert.Equal(t, uint64(6), actor.UserID)
			return &cascade.Result{}, nil
		})
	rec := webtest.Do(r, http.MethodDelete, "/users", "", auth)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp deleteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "User deleted", resp.Message)
	assert.Equal(t, uint64(6), resp.User.UserID)
}

func TestHandler_DeleteOtherUser(t *testing.T) {
	r, mockSvc := newTestRouter(t)
	auth := webtest.Bearer(t, 6, common.LevelUser)

	mockSvc.EXPECT().Delete(gomock.Any(), gomock.Any(), uint64(9)).Return(nil, common.ErrForbidden)
	assert.Equal(t, http.StatusForbidden, webtest.Do(r, http.MethodDelete, "/users/9", "", auth).Code)

	mockSvc.EXPECT().Delete(gomock.Any(), gomock.Any(), uint64(10)).
		Return(nil, errors.Join(&common.CascadeError{Step: "comments by user", Expected: 2, Affected: 1}))
	assert.Equal(t, http.StatusInternalServerError, webtest.Do(r, http.MethodDelete, "/users/10", "", auth).Code)
}

func TestHandler_Customize(t *testing.T) {
	r, mockSvc := newTestRouter(t)
	auth := webtest.Bearer(t, 6, common.LevelUser)

	mockSvc.EXPECT().Customize(gomock.Any(), gomock.Any(), Customization{Activity: "Away", PfpURL: strPtr("p.png")}).Return(nil)
	rec := webtest.Do(r, http.MethodPut, "/users/customize", `{"user_activity":"Away","pfp_url":"p.png"}`, auth)
	assert.Equal(t, http.StatusOK, rec.Code)
}
