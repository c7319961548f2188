package tag

import (
	"context"
	"errors"
	"testing"

	"mediasocial/internal/cascade"
	"mediasocial/internal/common"
	"mediasocial/internal/database"
	"mediasocial/internal/database/dbtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRepo(t *testing.T) (TagRepository, *gorm.DB, []database.Post) {
	db := dbtest.NewSQLite(t)
	posts := []database.Post{
		{UserID: 1, Filename: "a.png", Filesize: 1, MediaType: "image/png", Title: "a"},
		{UserID: 1, Filename: "b.png", Filesize: 1, MediaType: "image/png", Title: "b"},
	}
	require.NoError(t, db.Create(&posts).Error)
	return NewTagRepository(db, database.NewTxManager(db)), db, posts
}

func links(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&database.PostTag{}).Count(&n).Error)
	return n
}

func TestTagRepository_TagPostIsIdempotent(t *testing.T) {
	repo, db, posts := newRepo(t)
	ctx := context.Background()

	cats, outcome, err := repo.TagPost(ctx, posts[0].PostID, "cats")
	require.NoError(t, err)
	assert.Equal(t, common.OutcomeCreated, outcome)
	assert.Equal(t, "cats", cats.TagName)

	again, outcome, err := repo.TagPost(ctx, posts[0].PostID, "cats")
	require.NoError(t, err)
	assert.Equal(t, common.OutcomeAlreadyExists, outcome)
	assert.Equal(t, cats.TagID, again.TagID)

	// the same tag is reused on another post
	other, outcome, err := repo.TagPost(ctx, posts[1].PostID, "cats")
	require.NoError(t, err)
	assert.Equal(t, common.OutcomeCreated, outcome)
	assert.Equal(t, cats.TagID, other.TagID)

	var tags int64
	require.NoError(t, db.Model(&database.Tag{}).Count(&tags).Error)
	assert.Equal(t, int64(1), tags)
	assert.Equal(t, int64(2), links(t, db))
}

func TestTagRepository_TagMissingPost(t *testing.T) {
	repo, db, _ := newRepo(t)

	_, _, err := repo.TagPost(context.Background(), 999, "cats")
	assert.True(t, errors.Is(err, common.ErrNotFound))

	var tags int64
	require.NoError(t, db.Model(&database.Tag{}).Count(&tags).Error)
	assert.Zero(t, tags, "no tag is created for a missing post")
}

func TestTagRepository_Lists(t *testing.T) {
	repo, _, posts := newRepo(t)
	ctx := context.Background()

	for _, name := range []string{"dogs", "cats"} {
		_, _, err := repo.TagPost(ctx, posts[0].PostID, name)
		require.NoError(t, err)
	}
	_, _, err := repo.TagPost(ctx, posts[1].PostID, "cats")
	require.NoError(t, err)

	all, err := repo.ListTags(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "cats", all[0].TagName)

	ofFirst, err := repo.ListTagsByPost(ctx, posts[0].PostID)
	require.NoError(t, err)
	require.Len(t, ofFirst, 2)
	assert.Equal(t, []string{"cats", "dogs"}, []string{ofFirst[0].TagName, ofFirst[1].TagName})

	catPosts, err := repo.ListPostsByTag(ctx, "cats")
	require.NoError(t, err)
	assert.Len(t, catPosts, 2)

	none, err := repo.ListPostsByTag(ctx, "birds")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestTagRepository_DeleteTag(t *testing.T) {
	repo, db, posts := newRepo(t)
	ctx := context.Background()

	cats, _, err := repo.TagPost(ctx, posts[0].PostID, "cats")
	require.NoError(t, err)
	_, _, err = repo.TagPost(ctx, posts[1].PostID, "cats")
	require.NoError(t, err)
	_, _, err = repo.TagPost(ctx, posts[1].PostID, "dogs")
	require.NoError(t, err)

	res, err := repo.DeleteTag(ctx, cats.TagID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Removed["post tags"])
	assert.Equal(t, int64(1), res.Removed["tags"])
	assert.Equal(t, int64(1), links(t, db), "only the dogs link is left")

	_, err = repo.DeleteTag(ctx, cats.TagID)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestTagRepository_PostDeletionDropsLinks(t *testing.T) {
	repo, db, posts := newRepo(t)
	ctx := context.Background()

	_, _, err := repo.TagPost(ctx, posts[0].PostID, "cats")
	require.NoError(t, err)

	err = db.Transaction(func(tx *gorm.DB) error {
		_, err := cascade.PostPlan(posts[0].PostID, 1).Run(tx)
		return err
	})
	require.NoError(t, err)
	assert.Zero(t, links(t, db))

	// the tag itself outlives the post
	all, err := repo.ListTags(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
