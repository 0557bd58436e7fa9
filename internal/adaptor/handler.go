package adaptor

import (
	"net/http"

	"book-review-api/internal/usecase"
	"book-review-api/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Review  *ReviewHandler
	Comment *CommentHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Review:  NewReviewHandler(service.Review, log),
		Comment: NewCommentHandler(service.Comment, log),
	}
}

// NotFound handles unmatched routes
func NotFound(w http.ResponseWriter, r *http.Request) {
	utils.ResponseMessage(w, http.StatusNotFound, msgRouteNotFound)
}

// MethodNotAllowed handles known paths hit with the wrong method
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.ResponseMessage(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
}
