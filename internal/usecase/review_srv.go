package usecase

import (
	"context"
	"fmt"

	"book-review-api/internal/data/entity"
	"book-review-api/internal/data/repository"
	"book-review-api/internal/dto/request"
	"book-review-api/internal/dto/response"

	"go.uber.org/zap"
)

type ReviewService interface {
	ListReviews(ctx context.Context) ([]response.ReviewListItem, error)
	CreateReview(ctx context.Context, req *request.CreateReviewRequest) error
	// GetReview returns (nil, nil) for an unknown id; the handler turns
	// that into a 200 with a null data payload.
	GetReview(ctx context.Context, id int64) (*response.ReviewDetail, error)
	UpdateReview(ctx context.Context, id int64, req *request.UpdateReviewRequest) error
	DeleteReview(ctx context.Context, id int64, password string) error
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) ListReviews(ctx context.Context) ([]response.ReviewListItem, error) {
	reviews, err := s.repo.Review.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list reviews", zap.Error(err))
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	// Empty result still serializes as [], not null
	items := make([]response.ReviewListItem, 0, len(reviews))
	for _, review := range reviews {
		items = append(items, response.ReviewToListItem(review))
	}

	return items, nil
}

func (s *reviewService) CreateReview(ctx context.Context, req *request.CreateReviewRequest) error {
	if req.StarRating < 1 || req.StarRating > 10 {
		return fmt.Errorf("star rating %d out of range", req.StarRating)
	}

	review := &entity.Review{
		BookTitle:  req.BookTitle,
		Title:      req.Title,
		Content:    req.Content,
		StarRating: req.StarRating,
		Author:     req.Author,
		Password:   req.Password,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("book_title", req.BookTitle),
		)
		return fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.Int64("review_id", review.ID),
		zap.String("book_title", review.BookTitle),
		zap.Int("star_rating", review.StarRating),
	)

	return nil
}

func (s *reviewService) GetReview(ctx context.Context, id int64) (*response.ReviewDetail, error) {
	review, err := s.repo.Review.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get review",
			zap.Error(err),
			zap.Int64("review_id", id),
		)
		return nil, fmt.Errorf("get review: %w", err)
	}

	if review == nil {
		return nil, nil
	}

	detail := response.ReviewToDetail(review)
	return &detail, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, id int64, req *request.UpdateReviewRequest) error {
	if req.StarRating < 1 || req.StarRating > 10 {
		return fmt.Errorf("star rating %d out of range", req.StarRating)
	}

	// Check-then-act: not transactional with the update below, a concurrent
	// delete can slip between the two calls.
	review, err := s.repo.Review.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find review: %w", err)
	}
	if review == nil {
		return fmt.Errorf("review %d not found", id)
	}

	if review.Password != req.Password {
		s.log.Warn("Review password mismatch on update", zap.Int64("review_id", id))
		return fmt.Errorf("review %d password mismatch", id)
	}

	review.BookTitle = req.BookTitle
	review.Title = req.Title
	review.Content = req.Content
	review.StarRating = req.StarRating

	if err := s.repo.Review.Update(ctx, review); err != nil {
		s.log.Error("Failed to update review",
			zap.Error(err),
			zap.Int64("review_id", id),
		)
		return fmt.Errorf("update review: %w", err)
	}

	s.log.Info("Review updated", zap.Int64("review_id", id))
	return nil
}

func (s *reviewService) DeleteReview(ctx context.Context, id int64, password string) error {
	review, err := s.repo.Review.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find review: %w", err)
	}
	if review == nil {
		return fmt.Errorf("review %d not found", id)
	}

	if review.Password != password {
		s.log.Warn("Review password mismatch on delete", zap.Int64("review_id", id))
		return fmt.Errorf("review %d password mismatch", id)
	}

	if err := s.repo.Review.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete review",
			zap.Error(err),
			zap.Int64("review_id", id),
		)
		return fmt.Errorf("delete review: %w", err)
	}

	s.log.Info("Review deleted", zap.Int64("review_id", id))
	return nil
}
