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

type CommentService interface {
	CreateComment(ctx context.Context, reviewID int64, req *request.CreateCommentRequest) error
	ListComments(ctx context.Context, reviewID int64) ([]response.CommentResponse, error)
	UpdateComment(ctx context.Context, reviewID, commentID int64, req *request.UpdateCommentRequest) error
	DeleteComment(ctx context.Context, reviewID, commentID int64, password string) error
}

type commentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCommentService(repo *repository.Repository, log *zap.Logger) CommentService {
	return &commentService{
		repo: repo,
		log:  log.With(zap.String("service", "comment")),
	}
}

func (s *commentService) CreateComment(ctx context.Context, reviewID int64, req *request.CreateCommentRequest) error {
	// Content gate comes before the parent lookup
	if req.Content == "" {
		return fmt.Errorf("comment content required")
	}

	review, err := s.repo.Review.FindByID(ctx, reviewID)
	if err != nil {
		return fmt.Errorf("find review: %w", err)
	}
	if review == nil {
		return fmt.Errorf("review %d not found", reviewID)
	}

	comment := &entity.Comment{
		ReviewID: reviewID,
		Content:  req.Content,
		Author:   req.Author,
		Password: req.Password,
	}

	if err := s.repo.Comment.Create(ctx, comment); err != nil {
		s.log.Error("Failed to create comment",
			zap.Error(err),
			zap.Int64("review_id", reviewID),
		)
		return fmt.Errorf("create comment: %w", err)
	}

	s.log.Info("Comment created",
		zap.Int64("comment_id", comment.ID),
		zap.Int64("review_id", reviewID),
	)

	return nil
}

func (s *commentService) ListComments(ctx context.Context, reviewID int64) ([]response.CommentResponse, error) {
	review, err := s.repo.Review.FindByID(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("find review: %w", err)
	}
	if review == nil {
		return nil, fmt.Errorf("review %d not found", reviewID)
	}

	comments, err := s.repo.Comment.FindByReviewID(ctx, reviewID)
	if err != nil {
		s.log.Error("Failed to list comments",
			zap.Error(err),
			zap.Int64("review_id", reviewID),
		)
		return nil, fmt.Errorf("list comments: %w", err)
	}

	items := make([]response.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		items = append(items, response.CommentToResponse(comment))
	}

	return items, nil
}

func (s *commentService) UpdateComment(ctx context.Context, reviewID, commentID int64, req *request.UpdateCommentRequest) error {
	review, err := s.repo.Review.FindByID(ctx, reviewID)
	if err != nil {
		return fmt.Errorf("find review: %w", err)
	}
	if review == nil {
		return fmt.Errorf("review %d not found", reviewID)
	}

	if req.Content == "" {
		return fmt.Errorf("comment content required")
	}

	comment, err := s.repo.Comment.FindByID(ctx, reviewID, commentID)
	if err != nil {
		return fmt.Errorf("find comment: %w", err)
	}
	if comment == nil {
		return fmt.Errorf("comment %d not found", commentID)
	}

	if comment.Password != req.Password {
		s.log.Warn("Comment password mismatch on update",
			zap.Int64("review_id", reviewID),
			zap.Int64("comment_id", commentID),
		)
		return fmt.Errorf("comment %d password mismatch", commentID)
	}

	comment.Content = req.Content

	if err := s.repo.Comment.UpdateContent(ctx, comment); err != nil {
		s.log.Error("Failed to update comment",
			zap.Error(err),
			zap.Int64("comment_id", commentID),
		)
		return fmt.Errorf("update comment: %w", err)
	}

	s.log.Info("Comment updated",
		zap.Int64("review_id", reviewID),
		zap.Int64("comment_id", commentID),
	)
	return nil
}

func (s *commentService) DeleteComment(ctx context.Context, reviewID, commentID int64, password string) error {
	review, err := s.repo.Review.FindByID(ctx, reviewID)
	if err != nil {
		return fmt.Errorf("find review: %w", err)
	}
	if review == nil {
		return fmt.Errorf("review %d not found", reviewID)
	}

	comment, err := s.repo.Comment.FindByID(ctx, reviewID, commentID)
	if err != nil {
		return fmt.Errorf("find comment: %w", err)
	}
	if comment == nil {
		return fmt.Errorf("comment %d not found", commentID)
	}

	if comment.Password != password {
		s.log.Warn("Comment password mismatch on delete",
			zap.Int64("review_id", reviewID),
			zap.Int64("comment_id", commentID),
		)
		return fmt.Errorf("comment %d password mismatch", commentID)
	}

	if err := s.repo.Comment.Delete(ctx, reviewID, commentID); err != nil {
		s.log.Error("Failed to delete comment",
			zap.Error(err),
			zap.Int64("comment_id", commentID),
		)
		return fmt.Errorf("delete comment: %w", err)
	}

	s.log.Info("Comment deleted",
		zap.Int64("review_id", reviewID),
		zap.Int64("comment_id", commentID),
	)
	return nil
}
