package response

import (
	"time"

	"book-review-api/internal/data/entity"
)

// CommentResponse carries every comment column except the stored password.
type CommentResponse struct {
	ID        int64     `json:"id"`
	ReviewID  int64     `json:"reviewId"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func CommentToResponse(comment *entity.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		ReviewID:  comment.ReviewID,
		Content:   comment.Content,
		Author:    comment.Author,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}
