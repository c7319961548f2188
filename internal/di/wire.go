//go:build wireinject
// +build wireinject

package di

import (
	chathandler "mediasocial/internal/chat/handler"
	"mediasocial/internal/comment"
	"mediasocial/internal/config"
	"mediasocial/internal/friend"
	"mediasocial/internal/like"
	"mediasocial/internal/media"
	"mediasocial/internal/notif"
	"mediasocial/internal/tag"
	"mediasocial/internal/theme"
	"mediasocial/internal/user"

	"github.com/google/wire"
)

func InitializeAuthApp(cfg *config.Config) (*AuthApp, func(), error) {
	wire.Build(
		DatabaseSet,
		UserSet,
		user.NewHandler,
		wire.Struct(new(AuthApp), "*"),
	)
	return nil, nil, nil
}

func InitializeMediaApp(cfg *config.Config) (*MediaApp, func(), error) {
	wire.Build(
		DatabaseSet,
		MediaSet,
		media.NewHandler,
		comment.NewHandler,
		like.NewHandler,
		friend.NewHandler,
		chathandler.NewChatHandler,
		notif.NewNotificationHandler,
		theme.NewHandler,
		tag.NewHandler,
		wire.Struct(new(MediaApp), "*"),
	)
	return nil, nil, nil
}

// InitializeOps builds the services for socialctl. Notifications are not
// needed there, so chat events are dropped.
func InitializeOps(cfg *config.Config) (*Ops, func(), error) {
	wire.Build(
		DatabaseSet,
		UserSet,
		PostSet,
		ChatSet,
		wire.Value(notif.Publisher(notif.NoopPublisher{})),
		wire.Struct(new(Ops), "*"),
	)
	return nil, nil, nil
}
