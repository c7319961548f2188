package friend

import (
	"context"
	"errors"
	"fmt"

	"mediasocial/internal/common"
	"mediasocial/internal/database"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FriendRepository interface {
	UserExists(ctx context.Context, userID uint64) (bool, error)
	CreateFriendRequest(ctx context.Context, senderID, receiverID uint64) (common.Outcome, error)
	AcceptFriendRequest(ctx context.Context, senderID, receiverID uint64) error
	RemoveFriendship(ctx context.Context, userID, otherID uint64) error
	GetFriendship(ctx context.Context, userID, otherID uint64) (*database.Friend, error)
	ListFriends(ctx context.Context, userID uint64) ([]database.User, error)
	ListPendingRequests(ctx context.Context, userID uint64) ([]database.Friend, error)
}

type friendRepository struct {
	db *gorm.DB
}

func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepository{db: db}
}

func (r *friendRepository) UserExists(ctx context.Context, userID uint64) (bool, error) {
	return database.UserExists(r.db.WithContext(ctx), userID)
}

// CreateFriendRequest stores a pending request from sender to receiver. The
// pair key is orientation free, so a request in either direction between the
// same two users already counts as existing.
func (r *friendRepository) CreateFriendRequest(ctx context.Context, senderID, receiverID uint64) (common.Outcome, error) {
	friend := &database.Friend{
		SenderID:   senderID,
		ReceiverID: receiverID,
		PairKey:    database.PairKey(senderID, receiverID),
		Status:     string(common.FriendPending),
	}
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(friend)
	if result.Error != nil {
		return common.OutcomeCreated, fmt.Errorf("failed to create friend request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return common.OutcomeAlreadyExists, nil
	}
	return common.OutcomeCreated, nil
}

// AcceptFriendRequest moves a pending request to accepted. Only the receiver
// accepts, and only once.
func (r *friendRepository) AcceptFriendRequest(ctx context.Context, senderID, receiverID uint64) error {
	result := r.db.WithContext(ctx).Model(&database.Friend{}).
		Where("sender_id = ? AND receiver_id = ? AND status = ?", senderID, receiverID, common.FriendPending).
		Update("status", common.FriendAccepted)
	if result.Error != nil {
		return fmt.Errorf("failed to accept friend request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("pending request from %d: %w", senderID, common.ErrNotFound)
	}
	return nil
}

func (r *friendRepository) RemoveFriendship(ctx context.Context, userID, otherID uint64) error {
	result := r.db.WithContext(ctx).Where("pair_key = ?", database.PairKey(userID, otherID)).Delete(&database.Friend{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove friendship: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("friendship with %d: %w", otherID, common.ErrNotFound)
	}
	return nil
}

func (r *friendRepository) GetFriendship(ctx context.Context, userID, otherID uint64) (*database.Friend, error) {
	var friend database.Friend
	err := r.db.WithContext(ctx).Where("pair_key = ?", database.PairKey(userID, otherID)).First(&friend).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("friendship with %d: %w", otherID, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get friendship: %w", err)
	}
	return &friend, nil
}

// ListFriends returns the users with an accepted friendship with userID in
// either orientation.
func (r *friendRepository) ListFriends(ctx context.Context, userID uint64) ([]database.User, error) {
	var friends []database.Friend
	err := r.db.WithContext(ctx).
		Where("(sender_id = ? OR receiver_id = ?) AND status = ?", userID, userID, common.FriendAccepted).
		Order("created_at DESC").
		Find(&friends).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list friendships: %w", err)
	}
	if len(friends) == 0 {
		return []database.User{}, nil
	}

	ids := make([]uint64, 0, len(friends))
	for _, f := range friends {
		if f.SenderID == userID {
			ids = append(ids, f.ReceiverID)
		} else {
			ids = append(ids, f.SenderID)
		}
	}

	var users []database.User
	if err := r.db.WithContext(ctx).Where("user_id IN ?", ids).Order("username").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list friends: %w", err)
	}
	return users, nil
}

// ListPendingRequests returns requests waiting for userID to accept.
func (r *friendRepository) ListPendingRequests(ctx context.Context, userID uint64) ([]database.Friend, error) {
	var requests []database.Friend
	err := r.db.WithContext(ctx).
		Where("receiver_id = ? AND status = ?", userID, common.FriendPending).
		Order("created_at DESC").
		Order("friend_id DESC").
		Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pending requests: %w", err)
	}
	return requests, nil
}
