package media

import (
	"context"
	"errors"
	"fmt"

	"mediasocial/internal/common"
	"mediasocial/internal/database"

	"gorm.io/gorm"
)

// PostChanges holds the editable post fields; nil fields are left alone.
type PostChanges struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type PostRepository interface {
	CreatePost(ctx context.Context, post *database.Post) error
	GetPostByID(ctx context.Context, postID uint64) (*database.Post, error)
	ListPosts(ctx context.Context) ([]database.Post, error)
	ListPostsByUser(ctx context.Context, userID uint64) ([]database.Post, error)
	UpdatePost(ctx context.Context, postID, ownerID uint64, changes PostChanges) error
	SetHighlight(ctx context.Context, postID, ownerID uint64) error
	GetHighlight(ctx context.Context, userID uint64) (*database.Post, error)
}

type postRepository struct {
	db *gorm.DB
	tx database.TxManager
}

func NewPostRepository(db *gorm.DB, tx database.TxManager) PostRepository {
	return &postRepository{db: db, tx: tx}
}

func (r *postRepository) CreatePost(ctx context.Context, post *database.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

func (r *postRepository) GetPostByID(ctx context.Context, postID uint64) (*database.Post, error) {
	var post database.Post
	err := r.db.WithContext(ctx).Where("post_id = ?", postID).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("post %d: %w", postID, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return &post, nil
}

func (r *postRepository) ListPosts(ctx context.Context) ([]database.Post, error) {
	var posts []database.Post
	if err := r.db.WithContext(ctx).Order("created_at DESC").Order("post_id DESC").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

func (r *postRepository) ListPostsByUser(ctx context.Context, userID uint64) ([]database.Post, error) {
	var posts []database.Post
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("post_id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// UpdatePost writes the supplied fields of a post owned by ownerID.
func (r *postRepository) UpdatePost(ctx context.Context, postID, ownerID uint64, changes PostChanges) error {
	m := database.NewMutation()
	database.SetIfPresent(m, "title", changes.Title)
	database.SetIfPresent(m, "description", changes.Description)

	return m.ExecUpdateExisting(r.db.WithContext(ctx), "posts", "post_id = ? AND user_id = ?", postID, ownerID)
}

// SetHighlight makes postID the owner's only highlighted post. When the post
// is missing or not owned by ownerID nothing changes and the previous
// highlight stays.
func (r *postRepository) SetHighlight(ctx context.Context, postID, ownerID uint64) error {
	return r.tx.WithTransaction(ctx, func(tx *gorm.DB) error {
		err := tx.Model(&database.Post{}).
			Where("user_id = ? AND highlight = ?", ownerID, true).
			Update("highlight", false).Error
		if err != nil {
			return fmt.Errorf("failed to clear highlight: %w", err)
		}

		result := tx.Model(&database.Post{}).
			Where("post_id = ? AND user_id = ?", postID, ownerID).
			Update("highlight", true)
		if result.Error != nil {
			return fmt.Errorf("failed to set highlight: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("highlight post %d: %w", postID, common.ErrNotFound)
		}
		return nil
	})
}

func (r *postRepository) GetHighlight(ctx context.Context, userID uint64) (*database.Post, error) {
	var post database.Post
	err := r.db.WithContext(ctx).Where("user_id = ? AND highlight = ?", userID, true).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("highlight of user %d: %w", userID, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get highlight: %w", err)
	}
	return &post, nil
}
