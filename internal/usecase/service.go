package usecase

import (
	"book-review-api/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Review  ReviewService
	Comment CommentService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Review:  NewReviewService(repo, log),
		Comment: NewCommentService(repo, log),
	}
}
