package repository

import (
	"book-review-api/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Review  ReviewRepository
	Comment CommentRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Review:  NewReviewRepository(db, log),
		Comment: NewCommentRepository(db, log),
	}
}
