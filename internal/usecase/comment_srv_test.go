package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"book-review-api/internal/data/entity"
	"book-review-api/internal/data/repository"
	"book-review-api/internal/dto/request"
	"book-review-api/internal/mocks"
	"book-review-api/internal/usecase"

	"go.uber.org/zap"
)

func setupCommentService() (usecase.CommentService, *mocks.MockReviewRepository, *mocks.MockCommentRepository) {
	mockReviews := mocks.NewMockReviewRepository()
	mockComments := mocks.NewMockCommentRepository()
	repo := &repository.Repository{
		Review:  mockReviews,
		Comment: mockComments,
	}
	return usecase.NewCommentService(repo, zap.NewNop()), mockReviews, mockComments
}

func seedReview(mockReviews *mocks.MockReviewRepository) {
	now := time.Now()
	mockReviews.Reviews[1] = &entity.Review{
		Base:      entity.Base{ID: 1, CreatedAt: now, UpdatedAt: now},
		BookTitle: "Dune", Title: "Review", Content: "Great",
		StarRating: 9, Author: "A", Password: "p",
	}
	mockReviews.NextID = 2
}

func TestCreateComment_Persists(t *testing.T) {
	svc, mockReviews, mockComments := setupCommentService()
	seedReview(mockReviews)

	err := svc.CreateComment(context.Background(), 1, &request.CreateCommentRequest{
		Content:  "영상미는 좋았다.",
		Author:   "B",
		Password: "1234",
	})
	if err != nil {
		t.Fatalf("CreateComment: %v", err)
	}

	if len(mockComments.Comments) != 1 {
		t.Fatalf("Expected 1 persisted comment, got %d", len(mockComments.Comments))
	}
	stored := mockComments.Comments[1]
	if stored.ReviewID != 1 || stored.Content != "영상미는 좋았다." {
		t.Errorf("Stored fields do not match request: %+v", stored)
	}
}

func TestCreateComment_MissingParentCreatesNothing(t *testing.T) {
	svc, _, mockComments := setupCommentService()

	err := svc.CreateComment(context.Background(), 9, &request.CreateCommentRequest{
		Content: "c", Author: "B", Password: "1234",
	})
	if err == nil || !strings.Contains(err.Error(), "review 9 not found") {
		t.Fatalf("Expected review not found, got %v", err)
	}
	if mockComments.CreateCalls != 0 {
		t.Errorf("No comment row may be created for a missing parent")
	}
}

func TestCreateComment_EmptyContent(t *testing.T) {
	svc, mockReviews, mockComments := setupCommentService()
	seedReview(mockReviews)

	err := svc.CreateComment(context.Background(), 1, &request.CreateCommentRequest{
		Author: "B", Password: "1234",
	})
	if err == nil || !strings.Contains(err.Error(), "content required") {
		t.Fatalf("Expected content required, got %v", err)
	}
	if mockComments.CreateCalls != 0 {
		t.Errorf("No comment row may be created without content")
	}
}

func TestListComments_MissingParent(t *testing.T) {
	svc, _, _ := setupCommentService()

	_, err := svc.ListComments(context.Background(), 9)
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("Expected review not found, got %v", err)
	}
}

func TestListComments_NewestFirst(t *testing.T) {
	svc, mockReviews, mockComments := setupCommentService()
	seedReview(mockReviews)

	now := time.Now()
	mockComments.Comments[1] = &entity.Comment{
		Base:     entity.Base{ID: 1, CreatedAt: now.Add(-time.Minute), UpdatedAt: now.Add(-time.Minute)},
		ReviewID: 1, Content: "older", Author: "B", Password: "1234",
	}
	mockComments.Comments[2] = &entity.Comment{
		Base:     entity.Base{ID: 2, CreatedAt: now, UpdatedAt: now},
		ReviewID: 1, Content: "newer", Author: "B", Password: "1234",
	}
	mockComments.NextID = 3

	items, err := svc.ListComments(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListComments: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("Expected 2 comments, got %d", len(items))
	}
	if items[0].ID != 2 || items[1].ID != 1 {
		t.Errorf("Expected newest first ordering, got %d then %d", items[0].ID, items[1].ID)
	}
}

func TestUpdateComment_WrongPasswordLeavesRecordUnchanged(t *testing.T) {
	svc, mockReviews, mockComments := setupCommentService()
	seedReview(mockReviews)

	if err := svc.CreateComment(context.Background(), 1, &request.CreateCommentRequest{
		Content: "original", Author: "B", Password: "1234",
	}); err != nil {
		t.Fatalf("CreateComment: %v", err)
	}

	err := svc.UpdateComment(context.Background(), 1, 1, &request.UpdateCommentRequest{
		Content: "changed", Password: "wrong",
	})
	if err == nil || !strings.Contains(err.Error(), "password mismatch") {
		t.Fatalf("Expected password mismatch, got %v", err)
	}

	if mockComments.UpdateCalls != 0 {
		t.Errorf("Update must not reach the repository on a password mismatch")
	}
	if mockComments.Comments[1].Content != "original" {
		t.Errorf("Record changed despite mismatch: %+v", mockComments.Comments[1])
	}
}

func TestUpdateComment_Success(t *testing.T) {
	svc, mockReviews, mockComments := setupCommentService()
	seedReview(mockReviews)

	if err := svc.CreateComment(context.Background(), 1, &request.CreateCommentRequest{
		Content: "original", Author: "B", Password: "1234",
	}); err != nil {
		t.Fatalf("CreateComment: %v", err)
	}

	err := svc.UpdateComment(context.Background(), 1, 1, &request.UpdateCommentRequest{
		Content: "changed", Password: "1234",
	})
	if err != nil {
		t.Fatalf("UpdateComment: %v", err)
	}
	if mockComments.Comments[1].Content != "changed" {
		t.Errorf("Update not applied: %+v", mockComments.Comments[1])
	}
}

func TestUpdateComment_WrongReviewPair(t *testing.T) {
	svc, mockReviews, mockComments := setupCommentService()
	seedReview(mockReviews)
	now := time.Now()
	mockReviews.Reviews[2] = &entity.Review{
		Base:      entity.Base{ID: 2, CreatedAt: now, UpdatedAt: now},
		BookTitle: "Other", Title: "t", Content: "c", StarRating: 5, Author: "A", Password: "p",
	}

	if err := svc.CreateComment(context.Background(), 1, &request.CreateCommentRequest{
		Content: "c", Author: "B", Password: "1234",
	}); err != nil {
		t.Fatalf("CreateComment: %v", err)
	}

	// Comment 1 belongs to review 1, addressed via review 2
	err := svc.UpdateComment(context.Background(), 2, 1, &request.UpdateCommentRequest{
		Content: "changed", Password: "1234",
	})
	if err == nil || !strings.Contains(err.Error(), "comment 1 not found") {
		t.Errorf("Expected comment not found for mismatched pair, got %v", err)
	}
	if mockComments.Comments[1].Content != "c" {
		t.Errorf("Record changed despite pair mismatch")
	}
}

func TestDeleteComment_FullFlow(t *testing.T) {
	svc, mockReviews, mockComments := setupCommentService()
	seedReview(mockReviews)

	if err := svc.CreateComment(context.Background(), 1, &request.CreateCommentRequest{
		Content: "c", Author: "B", Password: "1234",
	}); err != nil {
		t.Fatalf("CreateComment: %v", err)
	}

	if err := svc.DeleteComment(context.Background(), 1, 1, "wrong"); err == nil ||
		!strings.Contains(err.Error(), "password mismatch") {
		t.Fatalf("Expected password mismatch, got %v", err)
	}
	if len(mockComments.Comments) != 1 {
		t.Fatalf("Comment deleted despite mismatch")
	}

	if err := svc.DeleteComment(context.Background(), 1, 1, "1234"); err != nil {
		t.Fatalf("DeleteComment: %v", err)
	}
	if len(mockComments.Comments) != 0 {
		t.Errorf("Comment still present after delete")
	}

	err := svc.DeleteComment(context.Background(), 1, 1, "1234")
	if err == nil || !strings.Contains(err.Error(), "comment 1 not found") {
		t.Errorf("Second delete must report not found, got %v", err)
	}
}
