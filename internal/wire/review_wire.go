package wire

import (
	"book-review-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler) {
	// GET /api/reviews - list all reviews, newest first
	r.Get("/api/reviews", reviewHandler.ListReviews)

	// POST /api/reviews - create new review
	r.Post("/api/reviews", reviewHandler.CreateReview)

	// GET /api/reviews/{id} - review detail (content included)
	r.Get("/api/reviews/{id}", reviewHandler.GetReview)

	// PUT /api/reviews/{id} - update review, password as credential
	r.Put("/api/reviews/{id}", reviewHandler.UpdateReview)

	// DELETE /api/reviews/{id} - delete review, password as credential
	r.Delete("/api/reviews/{id}", reviewHandler.DeleteReview)
}
