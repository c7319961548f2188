// Package di wires the services together with google/wire. Run `wire` in
// this directory after changing a provider set.
package di

import (
	"log"

	chathandler "mediasocial/internal/chat/handler"
	chatrepo "mediasocial/internal/chat/repository"
	chatservice "mediasocial/internal/chat/service"
	"mediasocial/internal/comment"
	"mediasocial/internal/config"
	"mediasocial/internal/database"
	"mediasocial/internal/filestore"
	"mediasocial/internal/friend"
	"mediasocial/internal/like"
	"mediasocial/internal/media"
	"mediasocial/internal/notif"
	"mediasocial/internal/tag"
	"mediasocial/internal/theme"
	"mediasocial/internal/user"

	"github.com/google/wire"
	"gorm.io/gorm"
)

// AuthApp is everything the auth service serves.
type AuthApp struct {
	Config *config.Config
	DB     *gorm.DB
	Users  *user.Handler
}

// MediaApp is everything the media service serves.
type MediaApp struct {
	Config        *config.Config
	DB            *gorm.DB
	Posts         *media.Handler
	Comments      *comment.Handler
	Likes         *like.Handler
	Friends       *friend.Handler
	Chats         *chathandler.ChatHandler
	Notifications *notif.NotificationHandler
	Themes        *theme.Handler
	Tags          *tag.Handler
}

// Ops exposes the services the operator CLI drives directly.
type Ops struct {
	DB    *gorm.DB
	Users user.UserService
	Posts media.PostService
	Chats chatservice.ChatService
}

// ProvideDatabase opens the shared pool; the cleanup closes it.
func ProvideDatabase(cfg *config.Config) (*gorm.DB, func(), error) {
	db, err := database.NewDatabase(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		sqlDB, err := db.DB()
		if err != nil {
			return
		}
		if err := sqlDB.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}
	return db, cleanup, nil
}

var DatabaseSet = wire.NewSet(ProvideDatabase, database.NewTxManager)

var UserSet = wire.NewSet(user.NewUserRepository, user.NewUserService)

var PostSet = wire.NewSet(filestore.NewClient, media.NewPostRepository, media.NewPostService)

var NotificationSet = wire.NewSet(notif.NewNotificationRepository, notif.NewPublisher, notif.NewNotificationService)

var ChatSet = wire.NewSet(chatrepo.NewChatRepository, chatservice.NewChatService)

var MediaSet = wire.NewSet(
	PostSet,
	NotificationSet,
	ChatSet,
	comment.NewCommentRepository, comment.NewCommentService,
	like.NewLikeRepository, like.NewLikeService,
	friend.NewFriendRepository, friend.NewFriendService,
	theme.NewThemeRepository, theme.NewThemeService,
	tag.NewTagRepository, tag.NewTagService,
)
