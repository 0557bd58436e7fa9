package repository

import (
	"context"
	"fmt"

	"book-review-api/internal/data/entity"
	"book-review-api/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	FindByReviewID(ctx context.Context, reviewID int64) ([]*entity.Comment, error)
	FindByID(ctx context.Context, reviewID, commentID int64) (*entity.Comment, error)
	UpdateContent(ctx context.Context, comment *entity.Comment) error
	Delete(ctx context.Context, reviewID, commentID int64) error
}

type commentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCommentRepository(db database.PgxIface, log *zap.Logger) CommentRepository {
	return &commentRepository{
		db:  db,
		log: log.With(zap.String("repository", "comment")),
	}
}

func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	query := `
		INSERT INTO comments (review_id, content, author, password)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		comment.ReviewID,
		comment.Content,
		comment.Author,
		comment.Password,
	).Scan(
		&comment.ID,
		&comment.CreatedAt,
		&comment.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create comment",
			zap.Error(err),
			zap.Int64("review_id", comment.ReviewID),
		)
		return fmt.Errorf("create comment for review %d: %w", comment.ReviewID, err)
	}

	return nil
}

func (r *commentRepository) FindByReviewID(ctx context.Context, reviewID int64) ([]*entity.Comment, error) {
	query := `
		SELECT id, review_id, content, author, password, created_at, updated_at
		FROM comments
		WHERE review_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, reviewID)
	if err != nil {
		r.log.Error("Failed to find comments by review ID",
			zap.Error(err),
			zap.Int64("review_id", reviewID),
		)
		return nil, fmt.Errorf("find comments by review ID %d: %w", reviewID, err)
	}
	defer rows.Close()

	var comments []*entity.Comment
	for rows.Next() {
		var comment entity.Comment
		err := rows.Scan(
			&comment.ID,
			&comment.ReviewID,
			&comment.Content,
			&comment.Author,
			&comment.Password,
			&comment.CreatedAt,
			&comment.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan comment row", zap.Error(err))
			return nil, fmt.Errorf("scan comment row: %w", err)
		}
		comments = append(comments, &comment)
	}

	return comments, nil
}

func (r *commentRepository) FindByID(ctx context.Context, reviewID, commentID int64) (*entity.Comment, error) {
	query := `
		SELECT id, review_id, content, author, password, created_at, updated_at
		FROM comments
		WHERE review_id = $1 AND id = $2
	`

	var comment entity.Comment
	err := r.db.QueryRow(ctx, query, reviewID, commentID).Scan(
		&comment.ID,
		&comment.ReviewID,
		&comment.Content,
		&comment.Author,
		&comment.Password,
		&comment.CreatedAt,
		&comment.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find comment by ID",
			zap.Error(err),
			zap.Int64("review_id", reviewID),
			zap.Int64("comment_id", commentID),
		)
		return nil, fmt.Errorf("find comment %d for review %d: %w", commentID, reviewID, err)
	}

	return &comment, nil
}

func (r *commentRepository) UpdateContent(ctx context.Context, comment *entity.Comment) error {
	query := `
		UPDATE comments
		SET content = $3, updated_at = now()
		WHERE review_id = $1 AND id = $2
	`

	result, err := r.db.Exec(ctx, query,
		comment.ReviewID,
		comment.ID,
		comment.Content,
	)

	if err != nil {
		r.log.Error("Failed to update comment",
			zap.Error(err),
			zap.Int64("comment_id", comment.ID),
		)
		return fmt.Errorf("update comment %d: %w", comment.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("comment %d not found", comment.ID)
	}

	return nil
}

func (r *commentRepository) Delete(ctx context.Context, reviewID, commentID int64) error {
	query := `DELETE FROM comments WHERE review_id = $1 AND id = $2`

	result, err := r.db.Exec(ctx, query, reviewID, commentID)
	if err != nil {
		r.log.Error("Failed to delete comment",
			zap.Error(err),
			zap.Int64("review_id", reviewID),
			zap.Int64("comment_id", commentID),
		)
		return fmt.Errorf("delete comment %d: %w", commentID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("comment %d not found", commentID)
	}

	r.log.Info("Comment deleted",
		zap.Int64("review_id", reviewID),
		zap.Int64("comment_id", commentID),
	)
	return nil
}
