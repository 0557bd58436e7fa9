package wire

import (
	"book-review-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// The review segment reuses the {id} param name; chi requires one wildcard
// name per path position across all routes.
func wireComment(r chi.Router, commentHandler *adaptor.CommentHandler) {
	// POST /api/reviews/{id}/comments - add comment to a review
	r.Post("/api/reviews/{id}/comments", commentHandler.CreateComment)

	// GET /api/reviews/{id}/comments - list comments, newest first
	r.Get("/api/reviews/{id}/comments", commentHandler.ListComments)

	// PUT /api/reviews/{id}/comments/{commentId} - update comment content
	r.Put("/api/reviews/{id}/comments/{commentId}", commentHandler.UpdateComment)

	// DELETE /api/reviews/{id}/comments/{commentId} - delete comment
	r.Delete("/api/reviews/{id}/comments/{commentId}", commentHandler.DeleteComment)
}
