package notif

import (
	"context"
	"errors"
	"testing"

	"mediasocial/internal/common"
	"mediasocial/internal/database"
	"mediasocial/internal/database/dbtest"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_Send(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockNotificationRepository(ctrl)
	svc := NewNotificationService(repo)
	ctx := context.Background()

	repo.EXPECT().Create(ctx, uint64(3), "hello").Return(&database.Notification{NotificationID: 1}, nil)
	n, err := svc.Send(ctx, 3, "hello")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), n.NotificationID)

	_, err = svc.Send(ctx, 0, "hello")
	assert.True(t, common.IsValidation(err))

	_, err = svc.Send(ctx, 3, "   ")
	assert.True(t, common.IsValidation(err))
}

func TestNotificationService_MarkViewedUsesCaller(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockNotificationRepository(ctrl)
	svc := NewNotificationService(repo)
	ctx := context.Background()

	repo.EXPECT().MarkViewed(ctx, uint64(3), uint64(10)).Return(common.ErrNotFound)
	err := svc.MarkViewed(ctx, common.Actor{UserID: 3}, 10)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestNotificationRepository_OnDatabase(t *testing.T) {
	db := dbtest.NewSQLite(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	first, err := repo.Create(ctx, 1, "one")
	require.NoError(t, err)
	_, err = repo.Create(ctx, 1, "two")
	require.NoError(t, err)
	_, err = repo.Create(ctx, 2, "other")
	require.NoError(t, err)

	list, err := repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "two", list[0].Message)

	require.NoError(t, repo.MarkViewed(ctx, 1, first.NotificationID))
	require.NoError(t, repo.MarkViewed(ctx, 1, first.NotificationID), "viewing twice is still found")

	err = repo.MarkViewed(ctx, 2, first.NotificationID)
	assert.True(t, errors.Is(err, common.ErrNotFound), "another user's notification")

	var got database.Notification
	require.NoError(t, db.First(&got, first.NotificationID).Error)
	assert.True(t, got.Viewed)
}
