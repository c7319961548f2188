package like

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"mediasocial/internal/common"
	"mediasocial/internal/common/webtest"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_Like(t *testing.T) {
	tests := []struct {
		name     string
		outcome  common.Outcome
		err      error
		wantCode int
		wantMsg  string
	}{
		{name: "added", outcome: common.OutcomeCreated, wantCode: http.StatusCreated, wantMsg: "Like added"},
		{name: "duplicate", outcome: common.OutcomeAlreadyExists, wantCode: http.StatusOK, wantMsg: "Like already exists"},
		{name: "missing post", err: common.ErrNotFound, wantCode: http.StatusNotFound, wantMsg: "post 9: not found"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := NewMockLikeService(ctrl)
			r := mux.NewRouter()
			NewHandler(svc).RegisterRoutes(r)

			err := tc.err
			if err != nil {
				err = fmt.Errorf("post 9: %w", err)
			}
			svc.EXPECT().Like(gomock.Any(), gomock.Any(), uint64(9)).Return(tc.outcome, err)

			rec := webtest.Do(r, http.MethodPost, "/media/9/likes", "", webtest.Bearer(t, 2, common.LevelUser))
			require.Equal(t, tc.wantCode, rec.Code)

			var resp common.MessageResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tc.wantMsg, resp.Message)
		})
	}
}

func TestHandler_CountAndUnlike(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewMockLikeService(ctrl)
	r := mux.NewRouter()
	NewHandler(svc).RegisterRoutes(r)

	svc.EXPECT().Count(gomock.Any(), uint64(9)).Return(int64(4), nil)
	rec := webtest.Do(r, http.MethodGet, "/media/9/likes", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"post_id":9,"likes":4}`, rec.Body.String())

	assert.Equal(t, http.StatusUnauthorized, webtest.Do(r, http.MethodDelete, "/media/9/likes", "", "").Code)

	svc.EXPECT().Unlike(gomock.Any(), gomock.Any(), uint64(9)).Return(common.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, webtest.Do(r, http.MethodDelete, "/media/9/likes", "", webtest.Bearer(t, 2, common.LevelUser)).Code)
}
