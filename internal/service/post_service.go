package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/vbonduro/lostfound/internal/domain"
	"github.com/vbonduro/lostfound/internal/photostore"
)

// postRepository is the subset of store.PostStore that PostService requires.
type postRepository interface {
	List(ctx context.Context) ([]*domain.Post, error)
	GetByID(ctx context.Context, id string) (*domain.Post, error)
	Create(ctx context.Context, post *domain.Post) (string, error)
}

type PostService struct {
	posts  postRepository
	photos photostore.PhotoStore
	logger *slog.Logger
}

func NewPostService(posts postRepository, photos photostore.PhotoStore, logger *slog.Logger) *PostService {
	return &PostService{posts: posts, photos: photos, logger: logger}
}

// CreatePostInput carries validated submission fields plus the optional
// image, already read fully into memory by the handler.
type CreatePostInput struct {
	Type        string
	ItemName    string
	Description string
	Location    string
	Contact     string
	ImageData   []byte
	ImageName   string
}

// Create persists a new post. An attached image is uploaded first; if the
// upload fails for any reason the post is still created without it and
// imageWarning reports the degradation. The upload and the insert cannot be
// made atomic with each other, so a post without an image beats no post at
// all. Store failures propagate.
func (s *PostService) Create(ctx context.Context, in CreatePostInput) (id string, imageWarning bool, err error) {
	// ImageName is set only when a named file arrived, so a zero-byte
	// attachment still goes through the upload (or warning) path.
	var imageURL string
	if in.ImageName != "" {
		url, uerr := s.photos.Upload(ctx, in.ImageData, in.ImageName)
		if uerr != nil {
			s.logger.Error("photo upload failed", "filename", in.ImageName, "error", uerr)
			imageWarning = true
		} else {
			imageURL = url
		}
	}

	post := &domain.Post{
		Type:        domain.PostType(strings.TrimSpace(in.Type)),
		ItemName:    strings.TrimSpace(in.ItemName),
		Description: strings.TrimSpace(in.Description),
		Location:    strings.TrimSpace(in.Location),
		Contact:     strings.TrimSpace(in.Contact),
		ImageURL:    imageURL,
	}

	id, err = s.posts.Create(ctx, post)
	if err != nil {
		return "", imageWarning, err
	}
	return id, imageWarning, nil
}

func (s *PostService) List(ctx context.Context) ([]*domain.Post, error) {
	return s.posts.List(ctx)
}

func (s *PostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	return s.posts.GetByID(ctx, id)
}
