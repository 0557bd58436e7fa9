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

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// ListReviews handles GET /api/reviews
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.ListReviews(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list reviews")
		return
	}

	utils.ResponseData(w, http.StatusOK, reviews)
}

// CreateReview handles POST /api/reviews. Success answers 200 with a
// confirmation message, not the created entity.
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req request.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseErrorMessage(w, http.StatusBadRequest, msgInvalidFormat)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		h.log.Warn("Create review validation failed", zap.Any("errors", validationErrors))
		utils.ResponseErrorMessage(w, http.StatusBadRequest, msgInvalidFormat)
		return
	}

	if err := h.service.CreateReview(r.Context(), &req); err != nil {
		h.handleServiceError(w, err, "create review")
		return
	}

	utils.ResponseMessage(w, http.StatusOK, msgReviewCreated)
}

// GetReview handles GET /api/reviews/{id}. An unknown id still answers 200
// with {"data":null}.
func (h *ReviewHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseInt64(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseErrorMessage(w, http.StatusBadRequest, msgInvalidFormat)
		return
	}

	review, err := h.service.GetReview(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "get review")
		return
	}

	utils.ResponseData(w, http.StatusOK, review)
}

// UpdateReview handles PUT /api/reviews/{id}
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseInt64(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseErrorMessage(w, http.StatusBadRequest, msgInvalidFormat)
		return
	}

	var req request.UpdateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseErrorMessage(w, http.StatusBadRequest, msgInvalidFormat)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		h.log.Warn("Update review validation failed", zap.Any("errors", validationErrors))
		utils.ResponseErrorMessage(w, http.StatusBadRequest, msgInvalidFormat)
		return
	}

	if err := h.service.UpdateReview(r.Context(), id, &req); err != nil {
		h.handleServiceError(w, err, "update review")
		return
	}

	utils.ResponseMessage(w, http.StatusOK, msgReviewUpdated)
}

// DeleteReview handles DELETE /api/reviews/{id}
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseInt64(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseErrorMessage(w, http.StatusBadRequest, msgInvalidFormat)
		return
	}

	var req request.DeleteReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseErrorMessage(w, http.StatusBadRequest, msgInvalidFormat)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		h.log.Warn("Delete review validation failed", zap.Any("errors", validationErrors))
		utils.ResponseErrorMessage(w, http.StatusBadRequest, msgInvalidFormat)
		return
	}

	if err := h.service.DeleteReview(r.Context(), id, req.Password); err != nil {
		h.handleServiceError(w, err, "delete review")
		return
	}

	utils.ResponseMessage(w, http.StatusOK, msgReviewDeleted)
}

// handleServiceError maps service errors untuk review operations.
// A password mismatch answers 404 here, matching the shipped contract that
// clients already depend on; comments answer 401 for the same condition.
func (h *ReviewHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "out of range"):
		h.log.Warn(operation+" failed - star rating out of range", zap.Error(err))
		utils.ResponseMessage(w, http.StatusBadRequest, msgStarRatingRange)

	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseMessage(w, http.StatusNotFound, msgReviewNotFound)

	case strings.Contains(errMsg, "password mismatch"):
		h.log.Warn(operation+" failed - password mismatch", zap.Error(err))
		utils.ResponseMessage(w, http.StatusNotFound, msgReviewPasswordWrong)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseMessage(w, http.StatusInternalServerError, msgServerError)
	}
}
