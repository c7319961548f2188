package tag

import (
	"context"
	"strings"

	"mediasocial/internal/cascade"
	"mediasocial/internal/common"
	"mediasocial/internal/database"
)

const maxTagLength = 50

type TagService interface {
	TagPost(ctx context.Context, actor common.Actor, postID uint64, name string) (*database.Tag, common.Outcome, error)
	DeleteTag(ctx context.Context, actor common.Actor, tagID uint64) (*cascade.Result, error)
	ListTags(ctx context.Context) ([]database.Tag, error)
	PostsByTag(ctx context.Context, name string) ([]database.Post, error)
	TagsOfPost(ctx context.Context, postID uint64) ([]database.Tag, error)
}

type tagService struct {
	repo TagRepository
}

func NewTagService(repo TagRepository) TagService {
	return &tagService{repo: repo}
}

// TagPost lets the post owner, or an admin, attach a tag. Names are trimmed
// and lower-cased so "Cats" and "cats " are the same tag.
func (s *tagService) TagPost(ctx context.Context, actor common.Actor, postID uint64, name string) (*database.Tag, common.Outcome, error) {
	if err := common.ValidateText("tag_name", name, maxTagLength); err != nil {
		return nil, common.OutcomeCreated, err
	}

	owner, err := s.repo.PostOwner(ctx, postID)
	if err != nil {
		return nil, common.OutcomeCreated, err
	}
	if owner != actor.UserID && !actor.IsAdmin() {
		return nil, common.OutcomeCreated, common.ErrForbidden
	}
	return s.repo.TagPost(ctx, postID, normalize(name))
}

// DeleteTag is admin only: a tag is shared by every post that carries it.
func (s *tagService) DeleteTag(ctx context.Context, actor common.Actor, tagID uint64) (*cascade.Result, error) {
	if !actor.IsAdmin() {
		return nil, common.ErrForbidden
	}
	return s.repo.DeleteTag(ctx, tagID)
}

func (s *tagService) ListTags(ctx context.Context) ([]database.Tag, error) {
	return s.repo.ListTags(ctx)
}

func (s *tagService) PostsByTag(ctx context.Context, name string) ([]database.Post, error) {
	return s.repo.ListPostsByTag(ctx, normalize(name))
}

func (s *tagService) TagsOfPost(ctx context.Context, postID uint64) ([]database.Tag, error) {
	return s.repo.ListTagsByPost(ctx, postID)
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
