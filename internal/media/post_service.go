package media

import (
	"context"
	"fmt"
	"log"
	"strings"

	"mediasocial/internal/cascade"
	"mediasocial/internal/common"
	"mediasocial/internal/config"
	"mediasocial/internal/database"
	"mediasocial/internal/filestore"

	"gorm.io/gorm"
)

// NewPost describes an uploaded file to be published as a post.
type NewPost struct {
	Filename    string  `json:"filename"`
	Filesize    int64   `json:"filesize"`
	MediaType   string  `json:"media_type"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

// PostView is a post with public URLs for the file and its thumbnail.
type PostView struct {
	database.Post
	Thumbnail string `json:"thumbnail"`
}

type PostService interface {
	CreatePost(ctx context.Context, actor common.Actor, p NewPost) (*PostView, error)
	GetPost(ctx context.Context, postID uint64) (*PostView, error)
	ListPosts(ctx context.Context) ([]PostView, error)
	ListPostsByUser(ctx context.Context, userID uint64) ([]PostView, error)
	UpdatePost(ctx context.Context, actor common.Actor, postID uint64, changes PostChanges) error
	Highlight(ctx context.Context, actor common.Actor, postID uint64) error
	GetHighlight(ctx context.Context, userID uint64) (*PostView, error)
	DeletePost(ctx context.Context, actor common.Actor, postID uint64) error
}

type postService struct {
	repo      PostRepository
	tx        database.TxManager
	files     filestore.Client
	uploadURL string
}

func NewPostService(repo PostRepository, tx database.TxManager, files filestore.Client, cfg *config.Config) PostService {
	return &postService{
		repo:      repo,
		tx:        tx,
		files:     files,
		uploadURL: cfg.FileStore.UploadURL,
	}
}

func (s *postService) CreatePost(ctx context.Context, actor common.Actor, p NewPost) (*PostView, error) {
	if err := common.ValidateText("filename", p.Filename, 255); err != nil {
		return nil, err
	}
	if err := common.ValidateText("title", p.Title, 255); err != nil {
		return nil, err
	}
	if err := common.ValidateText("media_type", p.MediaType, 255); err != nil {
		return nil, err
	}
	if p.Filesize <= 0 {
		return nil, &common.ValidationError{Field: "filesize", Reason: "must be positive"}
	}

	post := &database.Post{
		UserID:      actor.UserID,
		Filename:    strings.TrimPrefix(p.Filename, s.uploadURL),
		Filesize:    p.Filesize,
		MediaType:   p.MediaType,
		Title:       strings.TrimSpace(p.Title),
		Description: p.Description,
	}
	if err := s.repo.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	view := s.view(*post)
	return &view, nil
}

func (s *postService) GetPost(ctx context.Context, postID uint64) (*PostView, error) {
	post, err := s.repo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	view := s.view(*post)
	return &view, nil
}

func (s *postService) ListPosts(ctx context.Context) ([]PostView, error) {
	posts, err := s.repo.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	return s.views(posts), nil
}

func (s *postService) ListPostsByUser(ctx context.Context, userID uint64) ([]PostView, error) {
	posts, err := s.repo.ListPostsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.views(posts), nil
}

func (s *postService) UpdatePost(ctx context.Context, actor common.Actor, postID uint64, changes PostChanges) error {
	if changes.Title != nil {
		if err := common.ValidateText("title", *changes.Title, 255); err != nil {
			return err
		}
	}

	owner, err := s.ownerFor(ctx, actor, postID)
	if err != nil {
		return err
	}
	return s.repo.UpdatePost(ctx, postID, owner, changes)
}

func (s *postService) Highlight(ctx context.Context, actor common.Actor, postID uint64) error {
	return s.repo.SetHighlight(ctx, postID, actor.UserID)
}

func (s *postService) GetHighlight(ctx context.Context, userID uint64) (*PostView, error) {
	post, err := s.repo.GetHighlight(ctx, userID)
	if err != nil {
		return nil, err
	}
	view := s.view(*post)
	return &view, nil
}

// DeletePost removes the post, its dependent rows and the stored file. The
// rows are deleted first inside a transaction; the file store is called
// before commit and any failure there rolls the rows back. A crash between
// a confirmed remote delete and the commit leaves a post without its file.
func (s *postService) DeletePost(ctx context.Context, actor common.Actor, postID uint64) error {
	post, err := s.repo.GetPostByID(ctx, postID)
	if err != nil {
		return err
	}

	owner := actor.UserID
	if actor.IsAdmin() {
		owner = post.UserID
	}

	err = s.tx.WithTransaction(ctx, func(tx *gorm.DB) error {
		if _, err := cascade.PostPlan(post.PostID, owner).Run(tx); err != nil {
			return err
		}
		return s.files.Delete(tx.Statement.Context, post.Filename, actor.Token)
	})
	if err != nil {
		return fmt.Errorf("delete post %d: %w", postID, err)
	}

	log.Printf("🗑 post %d deleted by user %d", postID, actor.UserID)
	return nil
}

// ownerFor returns the user id the ownership condition must use: the caller
// itself, or the post's owner when the caller is an admin.
func (s *postService) ownerFor(ctx context.Context, actor common.Actor, postID uint64) (uint64, error) {
	if !actor.IsAdmin() {
		return actor.UserID, nil
	}
	post, err := s.repo.GetPostByID(ctx, postID)
	if err != nil {
		return 0, err
	}
	return post.UserID, nil
}

func (s *postService) view(p database.Post) PostView {
	name := p.Filename
	p.Filename = s.uploadURL + name
	return PostView{Post: p, Thumbnail: s.uploadURL + name + "-thumb.png"}
}

func (s *postService) views(posts []database.Post) []PostView {
	out := make([]PostView, len(posts))
	for i, p := range posts {
		out[i] = s.view(p)
	}
	return out
}
