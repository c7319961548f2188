package tag

import (
	"encoding/json"
	"fmt"
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

func TestHandler_TagPost(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		outcome  common.Outcome
		err      error
		call     bool
		wantCode int
		wantMsg  string
	}{
		{name: "added", body: `{"post_id":5,"tag_name":"cats"}`, call: true, outcome: common.OutcomeCreated, wantCode: http.StatusCreated, wantMsg: "Tag added to post_id: 5"},
		{name: "duplicate", body: `{"post_id":5,"tag_name":"cats"}`, call: true, outcome: common.OutcomeAlreadyExists, wantCode: http.StatusOK, wantMsg: "Tag already exists on post_id: 5"},
		{name: "not the owner", body: `{"post_id":5,"tag_name":"cats"}`, call: true, err: common.ErrForbidden, wantCode: http.StatusForbidden, wantMsg: "forbidden"},
		{name: "missing post id", body: `{"tag_name":"cats"}`, wantCode: http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := NewMockTagService(ctrl)
			r := mux.NewRouter()
			NewHandler(svc).RegisterRoutes(r)

			if tc.call {
				svc.EXPECT().TagPost(gomock.Any(), gomock.Any(), uint64(5), "cats").
					Return(&database.Tag{TagID: 3, TagName: "cats"}, tc.outcome, tc.err)
			}

			rec := webtest.Do(r, http.MethodPost, "/tags", tc.body, webtest.Bearer(t, 7, common.LevelUser))
			require.Equal(t, tc.wantCode, rec.Code)
			if tc.wantMsg == "" {
				return
			}
			var resp common.MessageResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tc.wantMsg, resp.Message)
		})
	}
}

func TestHandler_PublicRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewMockTagService(ctrl)
	r := mux.NewRouter()
	NewHandler(svc).RegisterRoutes(r)

	svc.EXPECT().ListTags(gomock.Any()).Return([]database.Tag{{TagID: 1, TagName: "cats"}}, nil)
	svc.EXPECT().TagsOfPost(gomock.Any(), uint64(5)).Return([]database.Tag{}, nil)
	svc.EXPECT().PostsByTag(gomock.Any(), "cats").Return([]database.Post{{PostID: 5}}, nil)

	rec := webtest.Do(r, http.MethodGet, "/tags", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"tag_name":"cats"`)

	// /tags/media/{id} is not read as the tag "media"
	rec = webtest.Do(r, http.MethodGet, "/tags/media/5", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	rec = webtest.Do(r, http.MethodGet, "/tags/cats", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"post_id":5`)
}

func TestHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewMockTagService(ctrl)
	r := mux.NewRouter()
	NewHandler(svc).RegisterRoutes(r)

	rec := webtest.Do(r, http.MethodDelete, "/tags/3", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	svc.EXPECT().DeleteTag(gomock.Any(), gomock.Any(), uint64(3)).Return(&cascade.Result{}, nil)
	rec = webtest.Do(r, http.MethodDelete, "/tags/3", "", webtest.Bearer(t, 1, common.LevelAdmin))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Tag deleted")

	svc.EXPECT().DeleteTag(gomock.Any(), gomock.Any(), uint64(4)).Return(nil, fmt.Errorf("delete tag: %w", common.ErrNotFound))
	rec = webtest.Do(r, http.MethodDelete, "/tags/4", "", webtest.Bearer(t, 1, common.LevelAdmin))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
