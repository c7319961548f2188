package user

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

func newRepo(t *testing.T) (UserRepository, *gorm.DB) {
	db := dbtest.NewSQLite(t)
	return NewUserRepository(db, database.NewTxManager(db)), db
}

func TestUserRepository_CreateUserGuardsDuplicates(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	outcome, err := repo.CreateUser(ctx, &database.User{Username: "alice", Email: "a@x.io", Password: "h"})
	require.NoError(t, err)
	assert.Equal(t, common.OutcomeCreated, outcome)

	outcome, err = repo.CreateUser(ctx, &database.User{Username: "alice", Email: "other@x.io", Password: "h"})
	require.NoError(t, err)
	assert.Equal(t, common.OutcomeAlreadyExists, outcome)

	users, err := repo.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestUserRepository_GetUser(t *testing.T) {
	repo, db := newRepo(t)
	ctx := context.Background()
	u := database.User{Username: "bob", Email: "b@x.io", Password: "h"}
	require.NoError(t, db.Create(&u).Error)

	got, err := repo.GetUserByID(ctx, u.UserID)
	require.NoError(t, err)
	assert.Equal(t, "bob", got.Username)

	got, err = repo.GetUserByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, u.UserID, got.UserID)

	_, err = repo.GetUserByID(ctx, 999)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestUserRepository_CustomizeUser(t *testing.T) {
	repo, db := newRepo(t)
	ctx := context.Background()
	pfp := "http://x/p.png"
	u := database.User{Username: "carol", Email: "c@x.io", Password: "h", PfpURL: &pfp}
	require.NoError(t, db.Create(&u).Error)

	require.NoError(t, repo.CustomizeUser(ctx, u.UserID, Customization{Description: strPtr("bio")}))

	var got database.User
	require.NoError(t, db.First(&got, u.UserID).Error)
	assert.Equal(t, "Active", got.UserActivity)
	assert.Equal(t, "User", got.LevelName)
	require.NotNil(t, got.Description)
	assert.Equal(t, "bio", *got.Description)
	require.NotNil(t, got.PfpURL)
	assert.Equal(t, pfp, *got.PfpURL, "absent optional fields keep their value")

	// same values again still counts as found
	require.NoError(t, repo.CustomizeUser(ctx, u.UserID, Customization{Description: strPtr("bio")}))

	err := repo.CustomizeUser(ctx, 999, Customization{})
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestUserRepository_ModifyUser(t *testing.T) {
	repo, db := newRepo(t)
	ctx := context.Background()
	u := database.User{Username: "dave", Email: "d@x.io", Password: "h"}
	require.NoError(t, db.Create(&u).Error)

	m := database.NewMutation().Set("email", "dave@x.io")
	got, err := repo.ModifyUser(ctx, u.UserID, m)
	require.NoError(t, err)
	assert.Equal(t, "dave@x.io", got.Email)
	assert.Equal(t, "dave", got.Username)

	_, err = repo.ModifyUser(ctx, 999, m)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestUserRepository_DeleteUser(t *testing.T) {
	repo, db := newRepo(t)
	ctx := context.Background()

	u := database.User{Username: "erin", Email: "e@x.io", Password: "h"}
	other := database.User{Username: "fred", Email: "f@x.io", Password: "h"}
	require.NoError(t, db.Create(&u).Error)
	require.NoError(t, db.Create(&other).Error)

	post := database.Post{UserID: u.UserID, Filename: "a.png", Filesize: 1, MediaType: "image/png", Title: "a"}
	require.NoError(t, db.Create(&post).Error)
	require.NoError(t, db.Create(&database.Comment{PostID: post.PostID, UserID: other.UserID, CommentText: "hi"}).Error)
	require.NoError(t, db.Create(&database.Save{PostID: post.PostID, UserID: other.UserID}).Error)

	res, err := repo.DeleteUser(ctx, u.UserID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Removed["posts by user"])
	assert.Equal(t, int64(1), res.Removed["comments on user's posts"])

	_, err = repo.GetUserByID(ctx, u.UserID)
	assert.True(t, errors.Is(err, common.ErrNotFound))
	_, err = repo.GetUserByID(ctx, other.UserID)
	assert.NoError(t, err)

	_, err = repo.DeleteUser(ctx, u.UserID)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}
