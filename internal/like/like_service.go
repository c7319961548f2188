package like

import (
	"context"

	"mediasocial/internal/common"
	"mediasocial/internal/database"
	"mediasocial/internal/notif"
)

type LikeService interface {
	Like(ctx context.Context, actor common.Actor, postID uint64) (common.Outcome, error)
	Unlike(ctx context.Context, actor common.Actor, postID uint64) error
	Count(ctx context.Context, postID uint64) (int64, error)
	UserLike(ctx context.Context, actor common.Actor, postID uint64) (*database.Save, error)
	SavedPosts(ctx context.Context, actor common.Actor) ([]database.Post, error)
}

type likeService struct {
	repo   LikeRepository
	events notif.Publisher
}

func NewLikeService(repo LikeRepository, events notif.Publisher) LikeService {
	return &likeService{repo: repo, events: events}
}

// Like is idempotent. The post owner hears about the first like only, and
// never about their own.
func (s *likeService) Like(ctx context.Context, actor common.Actor, postID uint64) (common.Outcome, error) {
	owner, err := s.repo.PostOwner(ctx, postID)
	if err != nil {
		return common.OutcomeCreated, err
	}

	outcome, err := s.repo.AddLike(ctx, postID, actor.UserID)
	if err != nil {
		return outcome, err
	}
	if outcome == common.OutcomeCreated && owner != actor.UserID {
		s.events.Publish(notif.Event{UserID: owner, TriggerUserID: actor.UserID, Message: notif.MessagePostSaved})
	}
	return outcome, nil
}

func (s *likeService) Unlike(ctx context.Context, actor common.Actor, postID uint64) error {
	return s.repo.RemoveLike(ctx, postID, actor.UserID)
}

func (s *likeService) Count(ctx context.Context, postID uint64) (int64, error) {
	return s.repo.CountByPost(ctx, postID)
}

func (s *likeService) UserLike(ctx context.Context, actor common.Actor, postID uint64) (*database.Save, error) {
	return s.repo.GetUserLike(ctx, postID, actor.UserID)
}

func (s *likeService) SavedPosts(ctx context.Context, actor common.Actor) ([]database.Post, error) {
	return s.repo.ListSavedPosts(ctx, actor.UserID)
}
