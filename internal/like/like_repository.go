package like

import (
	"context"
	"errors"
	"fmt"

	"mediasocial/internal/common"
	"mediasocial/internal/database"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeRepository interface {
	PostOwner(ctx context.Context, postID uint64) (uint64, error)
	AddLike(ctx context.Context, postID, userID uint64) (common.Outcome, error)
	RemoveLike(ctx context.Context, postID, userID uint64) error
	CountByPost(ctx context.Context, postID uint64) (int64, error)
	GetUserLike(ctx context.Context, postID, userID uint64) (*database.Save, error)
	ListSavedPosts(ctx context.Context, userID uint64) ([]database.Post, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) PostOwner(ctx context.Context, postID uint64) (uint64, error) {
	return database.PostOwner(r.db.WithContext(ctx), postID)
}

// AddLike relies on the (post_id, user_id) unique index: a second like from
// the same user inserts nothing and reports OutcomeAlreadyExists.
func (r *likeRepository) AddLike(ctx context.Context, postID, userID uint64) (common.Outcome, error) {
	save := &database.Save{PostID: postID, UserID: userID}
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(save)
	if result.Error != nil {
		return common.OutcomeCreated, fmt.Errorf("failed to add like: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return common.OutcomeAlreadyExists, nil
	}
	return common.OutcomeCreated, nil
}

func (r *likeRepository) RemoveLike(ctx context.Context, postID, userID uint64) error {
	result := r.db.WithContext(ctx).Where("post_id = ? AND user_id = ?", postID, userID).Delete(&database.Save{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove like: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("like on post %d: %w", postID, common.ErrNotFound)
	}
	return nil
}

func (r *likeRepository) CountByPost(ctx context.Context, postID uint64) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&database.Save{}).Where("post_id = ?", postID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return n, nil
}

func (r *likeRepository) GetUserLike(ctx context.Context, postID, userID uint64) (*database.Save, error) {
	var save database.Save
	err := r.db.WithContext(ctx).Where("post_id = ? AND user_id = ?", postID, userID).First(&save).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("like on post %d: %w", postID, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get like: %w", err)
	}
	return &save, nil
}

// ListSavedPosts returns the posts userID liked, most recently liked first.
func (r *likeRepository) ListSavedPosts(ctx context.Context, userID uint64) ([]database.Post, error) {
	var posts []database.Post
	err := r.db.WithContext(ctx).
		Joins("JOIN saves ON saves.post_id = posts.post_id").
		Where("saves.user_id = ?", userID).
		Order("saves.created_at DESC").
		Order("saves.save_id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list saved posts: %w", err)
	}
	return posts, nil
}
