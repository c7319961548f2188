package cascade

import (
	"errors"
	"regexp"
	"testing"

	"mediasocial/internal/common"
	"mediasocial/internal/database"
	"mediasocial/internal/database/dbtest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func expectCount(mock sqlmock.Sqlmock, table, cond string, n int) {
	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `" + table + "` WHERE " + cond)).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(n))
}

func expectDelete(mock sqlmock.Sqlmock, table, cond string, n int64) {
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `" + table + "` WHERE " + cond)).
		WillReturnResult(sqlmock.NewResult(0, n))
}

func expectUnlink(mock sqlmock.Sqlmock, table, column, cond string) {
	mock.ExpectExec("UPDATE `" + table + "` SET `" + column + "`=.* WHERE " + regexp.QuoteMeta(cond)).
		WillReturnResult(sqlmock.NewResult(0, 0))
}

func TestPostPlan_DeletesLeavesFirst(t *testing.T) {
	db, mock := dbtest.NewMock(t)

	mock.ExpectBegin()
	expectUnlink(mock, "chats", "post_id", "post_id = ?")
	expectCount(mock, "saves", "post_id = ?", 2)
	expectDelete(mock, "saves", "post_id = ?", 2)
	expectCount(mock, "comment_replies", "comment_id IN (SELECT comment_id FROM comments WHERE post_id = ?)", 1)
	expectDelete(mock, "comment_replies", "comment_id IN (SELECT comment_id FROM comments WHERE post_id = ?)", 1)
	expectCount(mock, "comments", "post_id = ?", 3)
	expectDelete(mock, "comments", "post_id = ?", 3)
	expectCount(mock, "ratings", "post_id = ?", 0)
	expectCount(mock, "posts_tags", "post_id = ?", 1)
	expectDelete(mock, "posts_tags", "post_id = ?", 1)
	expectDelete(mock, "posts", "post_id = ? AND user_id = ?", 1)
	mock.ExpectCommit()

	var res *Result
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		res, err = PostPlan(7, 3).Run(tx)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Removed["saves"])
	assert.Equal(t, int64(3), res.Removed["comments"])
	assert.NotContains(t, res.Removed, "ratings")
	assert.Equal(t, int64(1), res.Removed["posts"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostPlan_ShortDeleteIsCascadeFailure(t *testing.T) {
	db, mock := dbtest.NewMock(t)

	mock.ExpectBegin()
	expectUnlink(mock, "chats", "post_id", "post_id = ?")
	expectCount(mock, "saves", "post_id = ?", 2)
	expectDelete(mock, "saves", "post_id = ?", 1)
	mock.ExpectRollback()

	err := db.Transaction(func(tx *gorm.DB) error {
		_, err := PostPlan(7, 3).Run(tx)
		return err
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrCascadeIntegrity))

	var ce *common.CascadeError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "saves", ce.Step)
	assert.Equal(t, int64(2), ce.Expected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostPlan_OwnerGuardMissIsNotFound(t *testing.T) {
	db, mock := dbtest.NewMock(t)

	mock.ExpectBegin()
	expectUnlink(mock, "chats", "post_id", "post_id = ?")
	expectCount(mock, "saves", "post_id = ?", 0)
	expectCount(mock, "comment_replies", "comment_id IN (SELECT comment_id FROM comments WHERE post_id = ?)", 0)
	expectCount(mock, "comments", "post_id = ?", 0)
	expectCount(mock, "ratings", "post_id = ?", 0)
	expectCount(mock, "posts_tags", "post_id = ?", 0)
	expectDelete(mock, "posts", "post_id = ? AND user_id = ?", 0)
	mock.ExpectRollback()

	err := db.Transaction(func(tx *gorm.DB) error {
		_, err := PostPlan(7, 99).Run(tx)
		return err
	})
	assert.True(t, errors.Is(err, common.ErrNotFound))
	assert.False(t, errors.Is(err, common.ErrCascadeIntegrity))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserPlan_MissingUserIsNotFound(t *testing.T) {
	db, mock := dbtest.NewMock(t)

	mock.ExpectBegin()
	expectCount(mock, "users", "user_id = ?", 0)
	mock.ExpectRollback()

	err := db.Transaction(func(tx *gorm.DB) error {
		_, err := UserPlan(42).Run(tx)
		return err
	})
	assert.True(t, errors.Is(err, common.ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserPlan_StepOrder(t *testing.T) {
	plan := UserPlan(1)

	names := make([]string, 0, len(plan.Steps))
	for _, s := range plan.Steps {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{
		"replies on comments by user",
		"replies by user",
		"comments by user",
		"saves by user",
		"ratings by user",
		"replies on user's posts",
		"comments on user's posts",
		"saves on user's posts",
		"ratings on user's posts",
		"tags on user's posts",
		"posts by user",
		"friendships",
		"chat messages",
		"chats",
		"notifications",
		"theme",
	}, names)
	assert.Equal(t, "users", plan.Parent.Name)
	assert.False(t, plan.Guarded)
	require.Len(t, plan.Unlinks, 1)
	assert.Equal(t, "post_id", plan.Unlinks[0].Column)
}

func TestCommentPlan_AdminSkipsOwnerGuard(t *testing.T) {
	assert.Equal(t, "comment_id = ? AND user_id = ?", CommentPlan(1, 2, false).Parent.Cond)
	assert.Equal(t, "comment_id = ?", CommentPlan(1, 2, true).Parent.Cond)
}

type fixture struct {
	owner, other database.User
	post, otherPost database.Post
}

func seed(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	f := fixture{
		owner: database.User{Username: "owner", Email: "o@x.io", Password: "h"},
		other: database.User{Username: "other", Email: "t@x.io", Password: "h"},
	}
	require.NoError(t, db.Create(&f.owner).Error)
	require.NoError(t, db.Create(&f.other).Error)

	f.post = database.Post{UserID: f.owner.UserID, Filename: "a.png", Filesize: 1, MediaType: "image/png", Title: "a"}
	f.otherPost = database.Post{UserID: f.other.UserID, Filename: "b.png", Filesize: 1, MediaType: "image/png", Title: "b"}
	require.NoError(t, db.Create(&f.post).Error)
	require.NoError(t, db.Create(&f.otherPost).Error)

	// owner's activity on the other user's post
	ownerComment := database.Comment{PostID: f.otherPost.PostID, UserID: f.owner.UserID, CommentText: "nice"}
	require.NoError(t, db.Create(&ownerComment).Error)
	require.NoError(t, db.Create(&database.CommentReply{CommentID: ownerComment.CommentID, UserID: f.other.UserID, Message: "thanks"}).Error)
	require.NoError(t, db.Create(&database.Save{PostID: f.otherPost.PostID, UserID: f.owner.UserID}).Error)
	require.NoError(t, db.Create(&database.Rating{PostID: f.otherPost.PostID, UserID: f.owner.UserID, RatingValue: 5}).Error)

	// other user's activity on owner's post
	otherComment := database.Comment{PostID: f.post.PostID, UserID: f.other.UserID, CommentText: "cool"}
	require.NoError(t, db.Create(&otherComment).Error)
	require.NoError(t, db.Create(&database.CommentReply{CommentID: otherComment.CommentID, UserID: f.owner.UserID, Message: "ty"}).Error)
	require.NoError(t, db.Create(&database.Save{PostID: f.post.PostID, UserID: f.other.UserID}).Error)
	require.NoError(t, db.Create(&database.Rating{PostID: f.post.PostID, UserID: f.other.UserID, RatingValue: 4}).Error)

	tag := database.Tag{TagName: "cats"}
	require.NoError(t, db.Create(&tag).Error)
	require.NoError(t, db.Create(&database.PostTag{PostID: f.post.PostID, TagID: tag.TagID}).Error)
	require.NoError(t, db.Create(&database.PostTag{PostID: f.otherPost.PostID, TagID: tag.TagID}).Error)

	require.NoError(t, db.Create(&database.Friend{SenderID: f.owner.UserID, ReceiverID: f.other.UserID, PairKey: database.PairKey(f.owner.UserID, f.other.UserID)}).Error)
	chat := database.Chat{SenderID: f.other.UserID, ReceiverID: f.owner.UserID, PairKey: database.PairKey(f.owner.UserID, f.other.UserID)}
	require.NoError(t, db.Create(&chat).Error)
	require.NoError(t, db.Create(&database.ChatMessage{ChatID: chat.ChatID, SenderID: f.other.UserID, ReceiverID: f.owner.UserID, Message: "hey"}).Error)
	require.NoError(t, db.Create(&database.Notification{UserID: f.owner.UserID, Message: "New Comment on your post"}).Error)
	require.NoError(t, db.Create(&database.Theme{UserID: f.owner.UserID, Color1: "#000"}).Error)
	return f
}

func rows(t *testing.T, db *gorm.DB, model interface{}, cond string, a ...interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Where(cond, a...).Count(&n).Error)
	return n
}

func TestUserPlan_RemovesEverythingReachable(t *testing.T) {
	db := dbtest.NewSQLite(t)
	f := seed(t, db)

	err := db.Transaction(func(tx *gorm.DB) error {
		_, err := UserPlan(f.owner.UserID).Run(tx)
		return err
	})
	require.NoError(t, err)

	id := f.owner.UserID
	assert.Zero(t, rows(t, db, &database.User{}, "user_id = ?", id))
	assert.Zero(t, rows(t, db, &database.Post{}, "user_id = ?", id))
	assert.Zero(t, rows(t, db, &database.Comment{}, "user_id = ? OR post_id = ?", id, f.post.PostID))
	assert.Zero(t, rows(t, db, &database.CommentReply{}, "1 = 1"))
	assert.Zero(t, rows(t, db, &database.Save{}, "user_id = ? OR post_id = ?", id, f.post.PostID))
	assert.Zero(t, rows(t, db, &database.Rating{}, "user_id = ? OR post_id = ?", id, f.post.PostID))
	assert.Zero(t, rows(t, db, &database.PostTag{}, "post_id = ?", f.post.PostID))
	assert.Zero(t, rows(t, db, &database.Friend{}, "1 = 1"))
	assert.Zero(t, rows(t, db, &database.Chat{}, "1 = 1"))
	assert.Zero(t, rows(t, db, &database.ChatMessage{}, "1 = 1"))
	assert.Zero(t, rows(t, db, &database.Notification{}, "user_id = ?", id))
	assert.Zero(t, rows(t, db, &database.Theme{}, "user_id = ?", id))

	// the other user and their post survive, minus the owner's activity
	assert.Equal(t, int64(1), rows(t, db, &database.User{}, "user_id = ?", f.other.UserID))
	assert.Equal(t, int64(1), rows(t, db, &database.Post{}, "post_id = ?", f.otherPost.PostID))
	assert.Equal(t, int64(1), rows(t, db, &database.PostTag{}, "post_id = ?", f.otherPost.PostID))
}

func TestCommentPlan_OnDatabase(t *testing.T) {
	db := dbtest.NewSQLite(t)
	f := seed(t, db)

	var c database.Comment
	require.NoError(t, db.First(&c, "user_id = ?", f.other.UserID).Error)

	// not the author and not admin: nothing changes
	err := db.Transaction(func(tx *gorm.DB) error {
		_, err := CommentPlan(c.CommentID, f.owner.UserID, false).Run(tx)
		return err
	})
	assert.True(t, errors.Is(err, common.ErrNotFound))
	assert.Equal(t, int64(1), rows(t, db, &database.CommentReply{}, "comment_id = ?", c.CommentID))

	err = db.Transaction(func(tx *gorm.DB) error {
		_, err := CommentPlan(c.CommentID, f.owner.UserID, true).Run(tx)
		return err
	})
	require.NoError(t, err)
	assert.Zero(t, rows(t, db, &database.Comment{}, "comment_id = ?", c.CommentID))
	assert.Zero(t, rows(t, db, &database.CommentReply{}, "comment_id = ?", c.CommentID))
}

func TestPlans_ClearChatReferencesToDeletedPosts(t *testing.T) {
	db := dbtest.NewSQLite(t)
	f := seed(t, db)

	third := database.User{Username: "third", Email: "th@x.io", Password: "h"}
	require.NoError(t, db.Create(&third).Error)
	aboutPost := database.Chat{SenderID: f.other.UserID, ReceiverID: third.UserID, PostID: &f.post.PostID, PairKey: database.PairKey(f.other.UserID, third.UserID)}
	require.NoError(t, db.Create(&aboutPost).Error)
	aboutOther := database.Chat{SenderID: f.owner.UserID, ReceiverID: third.UserID, PostID: &f.otherPost.PostID, PairKey: database.PairKey(f.owner.UserID, third.UserID)}
	require.NoError(t, db.Create(&aboutOther).Error)

	err := db.Transaction(func(tx *gorm.DB) error {
		_, err := PostPlan(f.post.PostID, f.owner.UserID).Run(tx)
		return err
	})
	require.NoError(t, err)

	var got database.Chat
	require.NoError(t, db.First(&got, aboutPost.ChatID).Error)
	assert.Nil(t, got.PostID)
	require.NoError(t, db.First(&got, aboutOther.ChatID).Error)
	require.NotNil(t, got.PostID)
	assert.Equal(t, f.otherPost.PostID, *got.PostID)

	// deleting the other user clears the chat that pointed at their post
	err = db.Transaction(func(tx *gorm.DB) error {
		_, err := UserPlan(f.other.UserID).Run(tx)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows(t, db, &database.Chat{}, "chat_id = ? AND post_id IS NULL", aboutOther.ChatID))
}
