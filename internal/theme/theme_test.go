package theme

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"mediasocial/internal/common"
	"mediasocial/internal/common/webtest"
	"mediasocial/internal/database"
	"mediasocial/internal/database/dbtest"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestThemeRepository_ReplaceTheme(t *testing.T) {
	db := dbtest.NewSQLite(t)
	repo := NewThemeRepository(db, database.NewTxManager(db))
	ctx := context.Background()

	require.NoError(t, repo.ReplaceTheme(ctx, 1, Input{Color1: "#000000", Color2: ptr("#111111"), Font1: ptr("Inter")}))
	require.NoError(t, repo.ReplaceTheme(ctx, 1, Input{Color1: "#ffffff"}))
	require.NoError(t, repo.ReplaceTheme(ctx, 2, Input{Color1: "#abcdef"}))

	got, err := repo.GetByUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "#ffffff", got.Color1)
	assert.Nil(t, got.Color2, "replaced as a whole, not merged")
	assert.Nil(t, got.Font1)

	themes, err := repo.ListThemes(ctx)
	require.NoError(t, err)
	assert.Len(t, themes, 2)

	_, err = repo.GetByUser(ctx, 3)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestThemeService_SetTheme(t *testing.T) {
	tests := []struct {
		name      string
		in        Input
		wantField string
	}{
		{name: "valid", in: Input{Color1: "#a1b2c3", Color4: ptr("#000000"), Font2: ptr("Mono")}},
		{name: "missing color1", in: Input{}, wantField: "color1"},
		{name: "bad optional color", in: Input{Color1: "#a1b2c3", Color3: ptr("red")}, wantField: "color3"},
		{name: "blank font", in: Input{Color1: "#a1b2c3", Font1: ptr(" ")}, wantField: "font1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := NewMockThemeRepository(ctrl)
			svc := NewThemeService(repo)

			if tc.wantField == "" {
				repo.EXPECT().ReplaceTheme(gomock.Any(), uint64(4), tc.in).Return(nil)
			}

			err := svc.SetTheme(context.Background(), common.Actor{UserID: 4}, tc.in)
			if tc.wantField == "" {
				require.NoError(t, err)
				return
			}
			var verr *common.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tc.wantField, verr.Field)
		})
	}
}

func TestHandler_Themes(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewMockThemeService(ctrl)
	r := mux.NewRouter()
	NewHandler(svc).RegisterRoutes(r)

	svc.EXPECT().SetTheme(gomock.Any(), gomock.Any(), Input{Color1: "#000000"}).Return(nil)
	rec := webtest.Do(r, http.MethodPost, "/themes", `{"color1":"#000000"}`, webtest.Bearer(t, 4, common.LevelUser))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Theme added/updated for user_id: 4"}`, rec.Body.String())

	svc.EXPECT().GetTheme(gomock.Any(), uint64(9)).Return(nil, common.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, webtest.Do(r, http.MethodGet, "/themes/9", "", "").Code)

	svc.EXPECT().ListThemes(gomock.Any()).Return([]database.Theme{}, nil)
	assert.Equal(t, http.StatusOK, webtest.Do(r, http.MethodGet, "/themes", "", "").Code)
}
