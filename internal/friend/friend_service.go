package friend

import (
	"context"
	"fmt"

	"mediasocial/internal/common"
	"mediasocial/internal/database"
)

type FriendService interface {
	SendRequest(ctx context.Context, actor common.Actor, targetID uint64) (common.Outcome, error)
	Accept(ctx context.Context, actor common.Actor, senderID uint64) error
	Remove(ctx context.Context, actor common.Actor, otherID uint64) error
	ListFriends(ctx context.Context, userID uint64) ([]database.User, error)
	ListPending(ctx context.Context, actor common.Actor) ([]database.Friend, error)
}

type friendService struct {
	repo FriendRepository
}

func NewFriendService(repo FriendRepository) FriendService {
	return &friendService{repo: repo}
}

func (s *friendService) SendRequest(ctx context.Context, actor common.Actor, targetID uint64) (common.Outcome, error) {
	if actor.UserID == targetID {
		return common.OutcomeCreated, common.ErrSelfFriendship
	}
	exists, err := s.repo.UserExists(ctx, targetID)
	if err != nil {
		return common.OutcomeCreated, err
	}
	if !exists {
		return common.OutcomeCreated, fmt.Errorf("user %d: %w", targetID, common.ErrNotFound)
	}
	return s.repo.CreateFriendRequest(ctx, actor.UserID, targetID)
}

// Accept accepts the pending request senderID sent to the caller.
func (s *friendService) Accept(ctx context.Context, actor common.Actor, senderID uint64) error {
	return s.repo.AcceptFriendRequest(ctx, senderID, actor.UserID)
}

func (s *friendService) Remove(ctx context.Context, actor common.Actor, otherID uint64) error {
	return s.repo.RemoveFriendship(ctx, actor.UserID, otherID)
}

func (s *friendService) ListFriends(ctx context.Context, userID uint64) ([]database.User, error) {
	return s.repo.ListFriends(ctx, userID)
}

func (s *friendService) ListPending(ctx context.Context, actor common.Actor) ([]database.Friend, error) {
	return s.repo.ListPendingRequests(ctx, actor.UserID)
}
