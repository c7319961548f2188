package tag

import (
	"context"
	"fmt"

	"mediasocial/internal/cascade"
	"mediasocial/internal/common"
	"mediasocial/internal/database"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TagRepository interface {
	PostOwner(ctx context.Context, postID uint64) (uint64, error)
	TagPost(ctx context.Context, postID uint64, name string) (*database.Tag, common.Outcome, error)
	DeleteTag(ctx context.Context, tagID uint64) (*cascade.Result, error)
	ListTags(ctx context.Context) ([]database.Tag, error)
	ListPostsByTag(ctx context.Context, name string) ([]database.Post, error)
	ListTagsByPost(ctx context.Context, postID uint64) ([]database.Tag, error)
}

type tagRepository struct {
	db *gorm.DB
	tx database.TxManager
}

func NewTagRepository(db *gorm.DB, tx database.TxManager) TagRepository {
	return &tagRepository{db: db, tx: tx}
}

func (r *tagRepository) PostOwner(ctx context.Context, postID uint64) (uint64, error) {
	return database.PostOwner(r.db.WithContext(ctx), postID)
}

// TagPost attaches the tag called name to the post, creating the tag on first
// use. The posts_tags primary key makes a repeated attach report
// OutcomeAlreadyExists.
func (r *tagRepository) TagPost(ctx context.Context, postID uint64, name string) (*database.Tag, common.Outcome, error) {
	var tag database.Tag
	outcome := common.OutcomeCreated
	err := r.tx.WithTransaction(ctx, func(tx *gorm.DB) error {
		if _, err := database.PostOwner(tx, postID); err != nil {
			return err
		}

		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&database.Tag{TagName: name}).Error; err != nil {
			return fmt.Errorf("failed to create tag: %w", err)
		}
		if err := tx.Where("tag_name = ?", name).First(&tag).Error; err != nil {
			return fmt.Errorf("failed to load tag %q: %w", name, err)
		}

		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&database.PostTag{PostID: postID, TagID: tag.TagID})
		if result.Error != nil {
			return fmt.Errorf("failed to tag post: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			outcome = common.OutcomeAlreadyExists
		}
		return nil
	})
	if err != nil {
		return nil, common.OutcomeCreated, err
	}
	return &tag, outcome, nil
}

func (r *tagRepository) DeleteTag(ctx context.Context, tagID uint64) (*cascade.Result, error) {
	var res *cascade.Result
	err := r.tx.WithTransaction(ctx, func(tx *gorm.DB) error {
		var err error
		res, err = cascade.TagPlan(tagID).Run(tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *tagRepository) ListTags(ctx context.Context) ([]database.Tag, error) {
	tags := []database.Tag{}
	if err := r.db.WithContext(ctx).Order("tag_name ASC").Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return tags, nil
}

// ListPostsByTag returns the posts carrying the tag, newest first. An unknown
// tag yields an empty list.
func (r *tagRepository) ListPostsByTag(ctx context.Context, name string) ([]database.Post, error) {
	posts := []database.Post{}
	err := r.db.WithContext(ctx).
		Joins("JOIN posts_tags ON posts_tags.post_id = posts.post_id").
		Joins("JOIN tags ON tags.tag_id = posts_tags.tag_id").
		Where("tags.tag_name = ?", name).
		Order("posts.created_at DESC").
		Order("posts.post_id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list posts for tag: %w", err)
	}
	return posts, nil
}

func (r *tagRepository) ListTagsByPost(ctx context.Context, postID uint64) ([]database.Tag, error) {
	tags := []database.Tag{}
	err := r.db.WithContext(ctx).
		Joins("JOIN posts_tags ON posts_tags.tag_id = tags.tag_id").
		Where("posts_tags.post_id = ?", postID).
		Order("tags.tag_name ASC").
		Find(&tags).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tags for post: %w", err)
	}
	return tags, nil
}
