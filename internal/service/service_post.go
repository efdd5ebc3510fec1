package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog-records/internal/logger"
	"github.com/MKhiriev/go-blog-records/internal/store"
	"github.com/MKhiriev/go-blog-records/internal/utils"
	"github.com/MKhiriev/go-blog-records/models"
)

// postService persists posts. It stamps timestamps from clock and does not
// validate; see PostValidationService.
type postService struct {
	postRepository store.PostRepository
	clock          utils.Clock

	logger *logger.Logger
}

func NewPostService(postRepository store.PostRepository, clock utils.Clock, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		clock:          clock,
		logger:         logger,
	}
}

func (s *postService) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	ctx = utils.WithTraceID(ctx, s.logger)
	log := logger.FromContext(ctx)

	post.ID = 0
	post.CreatedAt = s.clock()
	post.UpdatedAt = nil

	created, err := s.postRepository.CreatePost(ctx, post)
	if err != nil {
		log.Err(err).Str("func", "*postService.CreatePost").Msg("error saving post")
		return models.Post{}, err
	}

	log.Debug().Str("func", "*postService.CreatePost").Int64("id", created.ID).Msg("post created")
	return created, nil
}

func (s *postService) GetPost(ctx context.Context, id int64) (models.Post, error) {
	ctx = utils.WithTraceID(ctx, s.logger)
	return s.postRepository.GetPost(ctx, id)
}

func (s *postService) ListPosts(ctx context.Context) ([]models.Post, error) {
	ctx = utils.WithTraceID(ctx, s.logger)
	return s.postRepository.ListPosts(ctx)
}

func (s *postService) ListPostsByCategory(ctx context.Context, category models.Category) ([]models.Post, error) {
	ctx = utils.WithTraceID(ctx, s.logger)
	return s.postRepository.ListPostsByCategory(ctx, category)
}

func (s *postService) UpdatePost(ctx context.Context, update models.PostUpdate) (models.Post, error) {
	ctx = utils.WithTraceID(ctx, s.logger)
	log := logger.FromContext(ctx)

	post, err := s.postRepository.GetPost(ctx, update.ID)
	if err != nil {
		return models.Post{}, fmt.Errorf("error loading post %d for update: %w", update.ID, err)
	}

	update.Apply(&post)
	now := s.clock()
	post.UpdatedAt = &now

	if err = s.postRepository.UpdatePost(ctx, post); err != nil {
		log.Err(err).Str("func", "*postService.UpdatePost").Int64("id", post.ID).Msg("error saving post")
		return models.Post{}, err
	}

	return post, nil
}

func (s *postService) DeletePost(ctx context.Context, id int64) error {
	ctx = utils.WithTraceID(ctx, s.logger)
	return s.postRepository.DeletePost(ctx, id)
}
