package like

import (
	"context"
	"errors"
	"testing"

	"mediasocial/internal/common"
	"mediasocial/internal/database"
	"mediasocial/internal/database/dbtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRepo(t *testing.T) (LikeRepository, *gorm.DB, []database.Post) {
	db := dbtest.NewSQLite(t)
	posts := []database.Post{
		{UserID: 1, Filename: "a.png", Filesize: 1, MediaType: "image/png", Title: "a"},
		{UserID: 1, Filename: "b.png", Filesize: 1, MediaType: "image/png", Title: "b"},
	}
	require.NoError(t, db.Create(&posts).Error)
	return NewLikeRepository(db), db, posts
}

func TestLikeRepository_AddLikeIsIdempotent(t *testing.T) {
	repo, db, posts := newRepo(t)
	ctx := context.Background()

	outcome, err := repo.AddLike(ctx, posts[0].PostID, 2)
	require.NoError(t, err)
	assert.Equal(t, common.OutcomeCreated, outcome)

	outcome, err = repo.AddLike(ctx, posts[0].PostID, 2)
	require.NoError(t, err)
	assert.Equal(t, common.OutcomeAlreadyExists, outcome)

	outcome, err = repo.AddLike(ctx, posts[0].PostID, 3)
	require.NoError(t, err)
	assert.Equal(t, common.OutcomeCreated, outcome)

	var rows int64
	require.NoError(t, db.Model(&database.Save{}).Where("post_id = ? AND user_id = ?", posts[0].PostID, 2).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)

	n, err := repo.CountByPost(ctx, posts[0].PostID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestLikeRepository_RemoveLike(t *testing.T) {
	repo, _, posts := newRepo(t)
	ctx := context.Background()

	_, err := repo.AddLike(ctx, posts[0].PostID, 2)
	require.NoError(t, err)

	require.NoError(t, repo.RemoveLike(ctx, posts[0].PostID, 2))
	assert.True(t, errors.Is(repo.RemoveLike(ctx, posts[0].PostID, 2), common.ErrNotFound))

	_, err = repo.GetUserLike(ctx, posts[0].PostID, 2)
	assert.True(t, errors.Is(err, common.ErrNotFound))

	// removing then adding again is a fresh like
	outcome, err := repo.AddLike(ctx, posts[0].PostID, 2)
	require.NoError(t, err)
	assert.Equal(t, common.OutcomeCreated, outcome)
}

func TestLikeRepository_ListSavedPosts(t *testing.T) {
	repo, _, posts := newRepo(t)
	ctx := context.Background()

	_, err := repo.AddLike(ctx, posts[0].PostID, 2)
	require.NoError(t, err)
	_, err = repo.AddLike(ctx, posts[1].PostID, 2)
	require.NoError(t, err)
	_, err = repo.AddLike(ctx, posts[1].PostID, 3)
	require.NoError(t, err)

	saved, err := repo.ListSavedPosts(ctx, 2)
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, "b", saved[0].Title)

	like, err := repo.GetUserLike(ctx, posts[1].PostID, 3)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), like.UserID)
}
