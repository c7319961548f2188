package comment

import (
	"context"

	"mediasocial/internal/common"
	"mediasocial/internal/database"
	"mediasocial/internal/notif"
)

const maxCommentLength = 2000

type CommentService interface {
	AddComment(ctx context.Context, actor common.Actor, postID uint64, text string) (*database.Comment, error)
	AddReply(ctx context.Context, actor common.Actor, commentID uint64, text string) (*database.CommentReply, error)
	ListByPost(ctx context.Context, postID uint64) ([]Thread, error)
	UpdateComment(ctx context.Context, actor common.Actor, commentID uint64, text string) error
	DeleteComment(ctx context.Context, actor common.Actor, commentID uint64) error
}

type commentService struct {
	repo   CommentRepository
	events notif.Publisher
}

func NewCommentService(repo CommentRepository, events notif.Publisher) CommentService {
	return &commentService{repo: repo, events: events}
}

// AddComment stores the comment and tells the post owner about it, unless
// the owner commented on their own post.
func (s *commentService) AddComment(ctx context.Context, actor common.Actor, postID uint64, text string) (*database.Comment, error) {
	if err := common.ValidateText("comment_text", text, maxCommentLength); err != nil {
		return nil, err
	}
	owner, err := s.repo.PostOwner(ctx, postID)
	if err != nil {
		return nil, err
	}

	c := &database.Comment{PostID: postID, UserID: actor.UserID, CommentText: text}
	if err := s.repo.CreateComment(ctx, c); err != nil {
		return nil, err
	}

	if owner != actor.UserID {
		s.events.Publish(notif.Event{UserID: owner, TriggerUserID: actor.UserID, Message: notif.MessageNewComment})
	}
	return c, nil
}

func (s *commentService) AddReply(ctx context.Context, actor common.Actor, commentID uint64, text string) (*database.CommentReply, error) {
	if err := common.ValidateText("message", text, maxCommentLength); err != nil {
		return nil, err
	}
	reply := &database.CommentReply{CommentID: commentID, UserID: actor.UserID, Message: text}
	if err := s.repo.CreateReply(ctx, reply); err != nil {
		return nil, err
	}
	return reply, nil
}

func (s *commentService) ListByPost(ctx context.Context, postID uint64) ([]Thread, error) {
	return s.repo.ListByPost(ctx, postID)
}

func (s *commentService) UpdateComment(ctx context.Context, actor common.Actor, commentID uint64, text string) error {
	if err := common.ValidateText("comment_text", text, maxCommentLength); err != nil {
		return err
	}
	return s.repo.UpdateComment(ctx, commentID, actor.UserID, actor.IsAdmin(), text)
}

// DeleteComment removes the comment and its replies. A comment without
// replies is deleted the same way.
func (s *commentService) DeleteComment(ctx context.Context, actor common.Actor, commentID uint64) error {
	_, err := s.repo.DeleteComment(ctx, commentID, actor.UserID, actor.IsAdmin())
	return err
}
