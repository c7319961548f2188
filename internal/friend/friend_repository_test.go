package friend

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

func newRepo(t *testing.T) (FriendRepository, *gorm.DB, []database.User) {
	db := dbtest.NewSQLite(t)
	users := []database.User{
		{Username: "ann", Email: "ann@x.io", Password: "h"},
		{Username: "bob", Email: "bob@x.io", Password: "h"},
		{Username: "cat", Email: "cat@x.io", Password: "h"},
	}
	require.NoError(t, db.Create(&users).Error)
	return NewFriendRepository(db), db, users
}

func TestFriendRepository_RequestIsUniquePerPair(t *testing.T) {
	repo, db, u := newRepo(t)
	ctx := context.Background()
	ann, bob := u[0].UserID, u[1].UserID

	outcome, err := repo.CreateFriendRequest(ctx, ann, bob)
	require.NoError(t, err)
	assert.Equal(t, common.OutcomeCreated, outcome)

	outcome, err = repo.CreateFriendRequest(ctx, ann, bob)
	require.NoError(t, err)
	assert.Equal(t, common.OutcomeAlreadyExists, outcome)

	outcome, err = repo.CreateFriendRequest(ctx, bob, ann)
	require.NoError(t, err)
	assert.Equal(t, common.OutcomeAlreadyExists, outcome, "reverse direction is the same pair")

	var n int64
	require.NoError(t, db.Model(&database.Friend{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestFriendRepository_AcceptOnlyPendingByReceiver(t *testing.T) {
	repo, _, u := newRepo(t)
	ctx := context.Background()
	ann, bob := u[0].UserID, u[1].UserID

	_, err := repo.CreateFriendRequest(ctx, ann, bob)
	require.NoError(t, err)

	err = repo.AcceptFriendRequest(ctx, bob, ann)
	assert.True(t, errors.Is(err, common.ErrNotFound), "sender cannot accept their own request")

	require.NoError(t, repo.AcceptFriendRequest(ctx, ann, bob))

	err = repo.AcceptFriendRequest(ctx, ann, bob)
	assert.True(t, errors.Is(err, common.ErrNotFound), "already accepted")

	f, err := repo.GetFriendship(ctx, bob, ann)
	require.NoError(t, err)
	assert.Equal(t, string(common.FriendAccepted), f.Status)
}

func TestFriendRepository_ListFriendsEitherOrientation(t *testing.T) {
	repo, _, u := newRepo(t)
	ctx := context.Background()
	ann, bob, cat := u[0].UserID, u[1].UserID, u[2].UserID

	_, err := repo.CreateFriendRequest(ctx, ann, bob)
	require.NoError(t, err)
	require.NoError(t, repo.AcceptFriendRequest(ctx, ann, bob))
	_, err = repo.CreateFriendRequest(ctx, cat, ann)
	require.NoError(t, err)

	friends, err := repo.ListFriends(ctx, bob)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, "ann", friends[0].Username)

	friends, err = repo.ListFriends(ctx, ann)
	require.NoError(t, err)
	require.Len(t, friends, 1, "pending requests are not friends")
	assert.Equal(t, "bob", friends[0].Username)

	pending, err := repo.ListPendingRequests(ctx, ann)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, cat, pending[0].SenderID)

	pending, err = repo.ListPendingRequests(ctx, cat)
	require.NoError(t, err)
	assert.Empty(t, pending, "only the receiver sees a pending request")
}

func TestFriendRepository_RemoveEitherOrientation(t *testing.T) {
	repo, _, u := newRepo(t)
	ctx := context.Background()
	ann, bob := u[0].UserID, u[1].UserID

	_, err := repo.CreateFriendRequest(ctx, ann, bob)
	require.NoError(t, err)

	require.NoError(t, repo.RemoveFriendship(ctx, bob, ann))
	assert.True(t, errors.Is(repo.RemoveFriendship(ctx, ann, bob), common.ErrNotFound))

	_, err = repo.GetFriendship(ctx, ann, bob)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}
