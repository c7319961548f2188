package comment

import (
	"context"
	"errors"
	"fmt"

	"mediasocial/internal/cascade"
	"mediasocial/internal/common"
	"mediasocial/internal/database"

	"gorm.io/gorm"
)

// Thread is a comment with its replies, oldest first.
type Thread struct {
	database.Comment
	Replies []database.CommentReply `json:"replies"`
}

type CommentRepository interface {
	PostOwner(ctx context.Context, postID uint64) (uint64, error)
	CreateComment(ctx context.Context, c *database.Comment) error
	CreateReply(ctx context.Context, reply *database.CommentReply) error
	GetComment(ctx context.Context, commentID uint64) (*database.Comment, error)
	ListByPost(ctx context.Context, postID uint64) ([]Thread, error)
	UpdateComment(ctx context.Context, commentID, userID uint64, admin bool, text string) error
	DeleteComment(ctx context.Context, commentID, userID uint64, admin bool) (*cascade.Result, error)
}

type commentRepository struct {
	db *gorm.DB
	tx database.TxManager
}

func NewCommentRepository(db *gorm.DB, tx database.TxManager) CommentRepository {
	return &commentRepository{db: db, tx: tx}
}

func (r *commentRepository) PostOwner(ctx context.Context, postID uint64) (uint64, error) {
	return database.PostOwner(r.db.WithContext(ctx), postID)
}

func (r *commentRepository) CreateComment(ctx context.Context, c *database.Comment) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// CreateReply inserts the reply only while the parent comment exists.
func (r *commentRepository) CreateReply(ctx context.Context, reply *database.CommentReply) error {
	return r.tx.WithTransaction(ctx, func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&database.Comment{}).Where("comment_id = ?", reply.CommentID).Count(&n).Error; err != nil {
			return fmt.Errorf("failed to check comment: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("comment %d: %w", reply.CommentID, common.ErrNotFound)
		}
		if err := tx.Create(reply).Error; err != nil {
			return fmt.Errorf("failed to create reply: %w", err)
		}
		return nil
	})
}

func (r *commentRepository) GetComment(ctx context.Context, commentID uint64) (*database.Comment, error) {
	var c database.Comment
	err := r.db.WithContext(ctx).Where("comment_id = ?", commentID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("comment %d: %w", commentID, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return &c, nil
}

func (r *commentRepository) ListByPost(ctx context.Context, postID uint64) ([]Thread, error) {
	db := r.db.WithContext(ctx)

	var comments []database.Comment
	err := db.Where("post_id = ?", postID).Order("created_at ASC").Order("comment_id ASC").Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	if len(comments) == 0 {
		return []Thread{}, nil
	}

	ids := make([]uint64, len(comments))
	for i, c := range comments {
		ids[i] = c.CommentID
	}
	var replies []database.CommentReply
	err = db.Where("comment_id IN ?", ids).Order("created_at ASC").Order("reply_id ASC").Find(&replies).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list replies: %w", err)
	}

	byComment := make(map[uint64][]database.CommentReply, len(comments))
	for _, reply := range replies {
		byComment[reply.CommentID] = append(byComment[reply.CommentID], reply)
	}

	threads := make([]Thread, len(comments))
	for i, c := range comments {
		threads[i] = Thread{Comment: c, Replies: byComment[c.CommentID]}
		if threads[i].Replies == nil {
			threads[i].Replies = []database.CommentReply{}
		}
	}
	return threads, nil
}

// UpdateComment rewrites the text of a comment owned by userID; admins may
// rewrite any comment.
func (r *commentRepository) UpdateComment(ctx context.Context, commentID, userID uint64, admin bool, text string) error {
	m := database.NewMutation().Set("comment_text", text)
	if admin {
		return m.ExecUpdateExisting(r.db.WithContext(ctx), "comments", "comment_id = ?", commentID)
	}
	return m.ExecUpdateExisting(r.db.WithContext(ctx), "comments", "comment_id = ? AND user_id = ?", commentID, userID)
}

func (r *commentRepository) DeleteComment(ctx context.Context, commentID, userID uint64, admin bool) (*cascade.Result, error) {
	var res *cascade.Result
	err := r.tx.WithTransaction(ctx, func(tx *gorm.DB) error {
		var err error
		res, err = cascade.CommentPlan(commentID, userID, admin).Run(tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
