package database

import (
	"time"
)

type User struct {
	UserID       uint64    `gorm:"primaryKey;autoIncrement;column:user_id" json:"user_id"`
	Username     string    `gorm:"column:username;uniqueIndex;size:20;not null" json:"username"`
	Email        string    `gorm:"column:email;uniqueIndex;size:255;not null" json:"email"`
	Password     string    `gorm:"column:password;size:255;not null" json:"-"`
	LevelName    string    `gorm:"column:level_name;size:10;not null;default:User" json:"level_name"`
	UserActivity string    `gorm:"column:user_activity;size:20;default:Active" json:"user_activity"`
	Description  *string   `gorm:"column:description;type:text" json:"description"`
	PfpURL       *string   `gorm:"column:pfp_url;size:255" json:"pfp_url"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// Post is a media item. Filename is the name the upload server stored the file under.
type Post struct {
	PostID      uint64    `gorm:"primaryKey;autoIncrement;column:post_id" json:"post_id"`
	UserID      uint64    `gorm:"column:user_id;index;not null" json:"user_id"`
	Filename    string    `gorm:"column:filename;size:255;not null" json:"filename"`
	Filesize    int64     `gorm:"column:filesize;not null" json:"filesize"`
	MediaType   string    `gorm:"column:media_type;size:255;not null" json:"media_type"`
	Title       string    `gorm:"column:title;size:255;not null" json:"title"`
	Description *string   `gorm:"column:description;type:text" json:"description"`
	Highlight   bool      `gorm:"column:highlight;not null;default:false" json:"highlight"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

type Comment struct {
	CommentID   uint64    `gorm:"primaryKey;autoIncrement;column:comment_id" json:"comment_id"`
	PostID      uint64    `gorm:"column:post_id;index;not null" json:"post_id"`
	UserID      uint64    `gorm:"column:user_id;index;not null" json:"user_id"`
	CommentText string    `gorm:"column:comment_text;type:text;not null" json:"comment_text"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

type CommentReply struct {
	ReplyID   uint64    `gorm:"primaryKey;autoIncrement;column:reply_id" json:"reply_id"`
	CommentID uint64    `gorm:"column:comment_id;index;not null" json:"comment_id"`
	UserID    uint64    `gorm:"column:user_id;index;not null" json:"user_id"`
	Message   string    `gorm:"column:message;type:text;not null" json:"message"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (CommentReply) TableName() string {
	return "comment_replies"
}

// Save is a like. At most one row per (post, user).
type Save struct {
	SaveID    uint64    `gorm:"primaryKey;autoIncrement;column:save_id" json:"save_id"`
	PostID    uint64    `gorm:"column:post_id;not null;uniqueIndex:idx_saves_post_user" json:"post_id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:idx_saves_post_user;index" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

type Rating struct {
	RatingID    uint64    `gorm:"primaryKey;autoIncrement;column:rating_id" json:"rating_id"`
	PostID      uint64    `gorm:"column:post_id;index;not null" json:"post_id"`
	UserID      uint64    `gorm:"column:user_id;index;not null" json:"user_id"`
	RatingValue int       `gorm:"column:rating_value;not null" json:"rating_value"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

type Tag struct {
	TagID   uint64 `gorm:"primaryKey;autoIncrement;column:tag_id" json:"tag_id"`
	TagName string `gorm:"column:tag_name;uniqueIndex;size:50;not null" json:"tag_name"`
}

type PostTag struct {
	PostID uint64 `gorm:"primaryKey;column:post_id" json:"post_id"`
	TagID  uint64 `gorm:"primaryKey;column:tag_id" json:"tag_id"`
}

func (PostTag) TableName() string {
	return "posts_tags"
}

// Friend rows keep the sender/receiver orientation of the request; PairKey is
// the orientation free key that makes the pair unique.
type Friend struct {
	FriendID   uint64    `gorm:"primaryKey;autoIncrement;column:friend_id" json:"friend_id"`
	SenderID   uint64    `gorm:"column:sender_id;index;not null" json:"sender_id"`
	ReceiverID uint64    `gorm:"column:receiver_id;index;not null" json:"receiver_id"`
	PairKey    string    `gorm:"column:pair_key;uniqueIndex;size:41;not null" json:"-"`
	Status     string    `gorm:"column:status;size:10;not null;default:pending" json:"status"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

type Chat struct {
	ChatID     uint64    `gorm:"primaryKey;autoIncrement;column:chat_id" json:"chat_id"`
	SenderID   uint64    `gorm:"column:sender_id;index;not null" json:"sender_id"`
	ReceiverID uint64    `gorm:"column:receiver_id;index;not null" json:"receiver_id"`
	PostID     *uint64   `gorm:"column:post_id" json:"post_id"`
	PairKey    string    `gorm:"column:pair_key;uniqueIndex;size:41;not null" json:"-"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

type ChatMessage struct {
	MessageID  uint64    `gorm:"primaryKey;autoIncrement;column:message_id" json:"message_id"`
	ChatID     uint64    `gorm:"column:chat_id;index;not null" json:"chat_id"`
	SenderID   uint64    `gorm:"column:sender_id;not null" json:"sender_id"`
	ReceiverID uint64    `gorm:"column:receiver_id;not null" json:"receiver_id"`
	Message    string    `gorm:"column:message;type:text;not null" json:"message"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

type Notification struct {
	NotificationID uint64    `gorm:"primaryKey;autoIncrement;column:notification_id" json:"notification_id"`
	UserID         uint64    `gorm:"column:user_id;index;not null" json:"user_id"`
	Message        string    `gorm:"column:message;type:text;not null" json:"message"`
	Viewed         bool      `gorm:"column:viewed;not null;default:false" json:"viewed"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// Theme is replaced as a whole on every write; one row per user.
type Theme struct {
	ThemeID uint64  `gorm:"primaryKey;autoIncrement;column:theme_id" json:"theme_id"`
	UserID  uint64  `gorm:"column:user_id;uniqueIndex;not null" json:"user_id"`
	Color1  string  `gorm:"column:color1;size:7;not null" json:"color1"`
	Color2  *string `gorm:"column:color2;size:7" json:"color2"`
	Color3  *string `gorm:"column:color3;size:7" json:"color3"`
	Color4  *string `gorm:"column:color4;size:7" json:"color4"`
	Font1   *string `gorm:"column:font1;size:50" json:"font1"`
	Font2   *string `gorm:"column:font2;size:50" json:"font2"`
}

// AllModels lists every table in creation order.
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&Post{},
		&Comment{},
		&CommentReply{},
		&Save{},
		&Rating{},
		&Tag{},
		&PostTag{},
		&Friend{},
		&Chat{},
		&ChatMessage{},
		&Notification{},
		&Theme{},
	}
}
