package cascade

import (
	"mediasocial/internal/database"
)

const (
	postsOfUser       = "SELECT post_id FROM posts WHERE user_id = ?"
	commentsOfUser    = "SELECT comment_id FROM comments WHERE user_id = ?"
	commentsOnPost    = "SELECT comment_id FROM comments WHERE post_id = ?"
	commentsOnPostsOf = "SELECT comment_id FROM comments WHERE post_id IN (" + postsOfUser + ")"
	chatsOfUser       = "SELECT chat_id FROM chats WHERE sender_id = ? OR receiver_id = ?"
)

// UserPlan removes everything a user owns, directly or through their posts,
// and then the user row.
func UserPlan(userID uint64) Plan {
	return Plan{
		Name:   "delete user",
		Exists: &Step{Name: "users", Model: &database.User{}, Cond: "user_id = ?", Args: args(userID)},
		Unlinks: []Unlink{
			{Name: "chats about user's posts", Model: &database.Chat{}, Column: "post_id", Cond: "post_id IN (" + postsOfUser + ")", Args: args(userID)},
		},
		Steps: []Step{
			{Name: "replies on comments by user", Model: &database.CommentReply{}, Cond: "comment_id IN (" + commentsOfUser + ")", Args: args(userID)},
			{Name: "replies by user", Model: &database.CommentReply{}, Cond: "user_id = ?", Args: args(userID)},
			{Name: "comments by user", Model: &database.Comment{}, Cond: "user_id = ?", Args: args(userID)},
			{Name: "saves by user", Model: &database.Save{}, Cond: "user_id = ?", Args: args(userID)},
			{Name: "ratings by user", Model: &database.Rating{}, Cond: "user_id = ?", Args: args(userID)},
			{Name: "replies on user's posts", Model: &database.CommentReply{}, Cond: "comment_id IN (" + commentsOnPostsOf + ")", Args: args(userID)},
			{Name: "comments on user's posts", Model: &database.Comment{}, Cond: "post_id IN (" + postsOfUser + ")", Args: args(userID)},
			{Name: "saves on user's posts", Model: &database.Save{}, Cond: "post_id IN (" + postsOfUser + ")", Args: args(userID)},
			{Name: "ratings on user's posts", Model: &database.Rating{}, Cond: "post_id IN (" + postsOfUser + ")", Args: args(userID)},
			{Name: "tags on user's posts", Model: &database.PostTag{}, Cond: "post_id IN (" + postsOfUser + ")", Args: args(userID)},
			{Name: "posts by user", Model: &database.Post{}, Cond: "user_id = ?", Args: args(userID)},
			{Name: "friendships", Model: &database.Friend{}, Cond: "sender_id = ? OR receiver_id = ?", Args: args(userID, userID)},
			{Name: "chat messages", Model: &database.ChatMessage{}, Cond: "chat_id IN (" + chatsOfUser + ")", Args: args(userID, userID)},
			{Name: "chats", Model: &database.Chat{}, Cond: "sender_id = ? OR receiver_id = ?", Args: args(userID, userID)},
			{Name: "notifications", Model: &database.Notification{}, Cond: "user_id = ?", Args: args(userID)},
			{Name: "theme", Model: &database.Theme{}, Cond: "user_id = ?", Args: args(userID)},
		},
		Parent: Step{Name: "users", Model: &database.User{}, Cond: "user_id = ?", Args: args(userID)},
	}
}

// PostPlan removes a post's dependents and then the post, but only when
// ownerID owns it.
func PostPlan(postID, ownerID uint64) Plan {
	return Plan{
		Name: "delete post",
		Unlinks: []Unlink{
			{Name: "chats about post", Model: &database.Chat{}, Column: "post_id", Cond: "post_id = ?", Args: args(postID)},
		},
		Steps: []Step{
			{Name: "saves", Model: &database.Save{}, Cond: "post_id = ?", Args: args(postID)},
			{Name: "comment replies", Model: &database.CommentReply{}, Cond: "comment_id IN (" + commentsOnPost + ")", Args: args(postID)},
			{Name: "comments", Model: &database.Comment{}, Cond: "post_id = ?", Args: args(postID)},
			{Name: "ratings", Model: &database.Rating{}, Cond: "post_id = ?", Args: args(postID)},
			{Name: "post tags", Model: &database.PostTag{}, Cond: "post_id = ?", Args: args(postID)},
		},
		Parent:  Step{Name: "posts", Model: &database.Post{}, Cond: "post_id = ? AND user_id = ?", Args: args(postID, ownerID)},
		Guarded: true,
	}
}

// CommentPlan removes a comment's replies and the comment. Admins skip the
// ownership condition.
func CommentPlan(commentID, userID uint64, admin bool) Plan {
	parent := Step{Name: "comments", Model: &database.Comment{}, Cond: "comment_id = ? AND user_id = ?", Args: args(commentID, userID)}
	if admin {
		parent = Step{Name: "comments", Model: &database.Comment{}, Cond: "comment_id = ?", Args: args(commentID)}
	}

	return Plan{
		Name: "delete comment",
		Steps: []Step{
			{Name: "comment replies", Model: &database.CommentReply{}, Cond: "comment_id = ?", Args: args(commentID)},
		},
		Parent:  parent,
		Guarded: true,
	}
}

// TagPlan detaches a tag from every post and removes it.
func TagPlan(tagID uint64) Plan {
	return Plan{
		Name:   "delete tag",
		Exists: &Step{Name: "tags", Model: &database.Tag{}, Cond: "tag_id = ?", Args: args(tagID)},
		Steps: []Step{
			{Name: "post tags", Model: &database.PostTag{}, Cond: "tag_id = ?", Args: args(tagID)},
		},
		Parent: Step{Name: "tags", Model: &database.Tag{}, Cond: "tag_id = ?", Args: args(tagID)},
	}
}

func args(v ...interface{}) []interface{} {
	return v
}
