package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"book-review-api/internal/dto/request"
	"book-review-api/internal/usecase"
	"book-review-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CommentHandler struct {
	service usecase.CommentService
	log     *zap.Logger
}

func NewCommentHandler(service usecase.CommentService, log *zap.Logger) *CommentHandler {
	return &CommentHandler{
		service: service,
		log:     log.With(zap.String("handler", "comment")),
	}
}

// CreateComment handles POST /api/reviews/{reviewId}/comments
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	reviewID, err := utils.ParseInt64(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseMessage(w, http.StatusBadRequest, msgInvalidFormat)
		return
	}

	var req request.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseMessage(w, http.StatusBadRequest, msgInvalidFormat)
		return
	}

	if err := h.service.CreateComment(r.Context(), reviewID, &req); err != nil {
		h.handleServiceError(w, err, "create comment")
		return
	}

	utils.ResponseMessage(w, http.StatusCreated, msgCommentCreated)
}

// ListComments handles GET /api/reviews/{reviewId}/comments
func (h *CommentHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	reviewID, err := utils.ParseInt64(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseMessage(w, http.StatusBadRequest, msgInvalidFormat)
		return
	}

	comments, err := h.service.ListComments(r.Context(), reviewID)
	if err != nil {
		h.handleServiceError(w, err, "list comments")
		return
	}

	utils.ResponseData(w, http.StatusOK, comments)
}

// UpdateComment handles PUT /api/reviews/{reviewId}/comments/{commentId}
func (h *CommentHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	reviewID, err := utils.ParseInt64(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseMessage(w, http.StatusBadRequest, msgInvalidFormat)
		return
	}

	commentID, err := utils.ParseInt64(chi.URLParam(r, "commentId"))
	if err != nil {
		utils.ResponseMessage(w, http.StatusBadRequest, msgInvalidFormat)
		return
	}

	var req request.UpdateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseMessage(w, http.StatusBadRequest, msgInvalidFormat)
		return
	}

	if err := h.service.UpdateComment(r.Context(), reviewID, commentID, &req); err != nil {
		h.handleServiceError(w, err, "update comment")
		return
	}

	utils.ResponseMessage(w, http.StatusOK, msgCommentUpdated)
}

// DeleteComment handles DELETE /api/reviews/{reviewId}/comments/{commentId}
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	reviewID, err := utils.ParseInt64(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseMessage(w, http.StatusBadRequest, msgInvalidFormat)
		return
	}

	commentID, err := utils.ParseInt64(chi.URLParam(r, "commentId"))
	if err != nil {
		utils.ResponseMessage(w, http.StatusBadRequest, msgInvalidFormat)
		return
	}

	var req request.DeleteCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseMessage(w, http.StatusBadRequest, msgInvalidFormat)
		return
	}

	if err := h.service.DeleteComment(r.Context(), reviewID, commentID, req.Password); err != nil {
		h.handleServiceError(w, err, "delete comment")
		return
	}

	utils.ResponseMessage(w, http.StatusOK, msgCommentDeleted)
}

// handleServiceError maps service errors untuk comment operations
func (h *CommentHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "content required"):
		h.log.Warn(operation+" failed - empty content", zap.Error(err))
		utils.ResponseMessage(w, http.StatusBadRequest, msgCommentContent)

	case strings.Contains(errMsg, "review") && strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - review not found", zap.Error(err))
		utils.ResponseMessage(w, http.StatusNotFound, msgReviewNotFound)

	case strings.Contains(errMsg, "comment") && strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - comment not found", zap.Error(err))
		utils.ResponseMessage(w, http.StatusNotFound, msgCommentNotFound)

	case strings.Contains(errMsg, "password mismatch"):
		h.log.Warn(operation+" failed - password mismatch", zap.Error(err))
		utils.ResponseMessage(w, http.StatusUnauthorized, msgCommentPasswordWrong)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseMessage(w, http.StatusInternalServerError, msgServerError)
	}
}
