package adaptor_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"book-review-api/internal/dto/response"
)

func TestCreateComment_Success(t *testing.T) {
	router, _, mockComment := setupTestRouter()

	w := doRequest(t, router, "POST", "/api/reviews/1/comments", map[string]any{
		"content":  "영상미는 좋았다.",
		"author":   "B",
		"password": "1234",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	if mockComment.CreateCalls != 1 {
		t.Errorf("Expected 1 create call, got %d", mockComment.CreateCalls)
	}
	if !strings.Contains(w.Body.String(), "댓글을 등록하였습니다.") {
		t.Errorf("Unexpected body: %s", w.Body.String())
	}
}

func TestCreateComment_ParentReviewMissing(t *testing.T) {
	router, _, mockComment := setupTestRouter()
	mockComment.CreateErr = errors.New("review 9 not found")

	w := doRequest(t, router, "POST", "/api/reviews/9/comments", map[string]any{
		"content":  "c",
		"author":   "B",
		"password": "1234",
	})

	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "존재하지 않는 리뷰입니다.") {
		t.Errorf("Unexpected body: %s", w.Body.String())
	}
}

func TestCreateComment_EmptyContent(t *testing.T) {
	router, _, mockComment := setupTestRouter()
	mockComment.CreateErr = errors.New("comment content required")

	w := doRequest(t, router, "POST", "/api/reviews/1/comments", map[string]any{
		"author":   "B",
		"password": "1234",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "댓글 내용을 입력해주세요.") {
		t.Errorf("Unexpected body: %s", w.Body.String())
	}
}

func TestListComments(t *testing.T) {
	router, _, mockComment := setupTestRouter()
	mockComment.Comments = []response.CommentResponse{
		{ID: 2, ReviewID: 1, Content: "newer", Author: "B", CreatedAt: time.Now()},
		{ID: 1, ReviewID: 1, Content: "older", Author: "B", CreatedAt: time.Now().Add(-time.Minute)},
	}

	w := doRequest(t, router, "GET", "/api/reviews/1/comments", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var body struct {
		Data []response.CommentResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Data) != 2 {
		t.Fatalf("Expected 2 comments, got %d", len(body.Data))
	}
	if body.Data[0].ID != 2 {
		t.Errorf("Expected newest comment first, got id %d", body.Data[0].ID)
	}
	// Stored credential never leaves the API
	if strings.Contains(w.Body.String(), "password") {
		t.Errorf("Comment list must not expose passwords: %s", w.Body.String())
	}
}

func TestListComments_ParentReviewMissing(t *testing.T) {
	router, _, mockComment := setupTestRouter()
	mockComment.ListErr = errors.New("review 9 not found")

	w := doRequest(t, router, "GET", "/api/reviews/9/comments", nil)

	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", w.Code)
	}
}

func TestUpdateComment_Success(t *testing.T) {
	router, _, mockComment := setupTestRouter()

	w := doRequest(t, router, "PUT", "/api/reviews/1/comments/2", map[string]any{
		"content":  "영상미는 좋았었나?",
		"password": "1234",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if mockComment.UpdateCalls != 1 {
		t.Errorf("Expected 1 update call, got %d", mockComment.UpdateCalls)
	}
	if !strings.Contains(w.Body.String(), "댓글을 수정하였습니다.") {
		t.Errorf("Unexpected body: %s", w.Body.String())
	}
}

func TestUpdateComment_WrongPasswordAnswers401(t *testing.T) {
	router, _, mockComment := setupTestRouter()
	mockComment.UpdateErr = errors.New("comment 2 password mismatch")

	w := doRequest(t, router, "PUT", "/api/reviews/1/comments/2", map[string]any{
		"content":  "c",
		"password": "wrong",
	})

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected status 401, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "비밀번호가 일치하지 않습니다.") {
		t.Errorf("Unexpected body: %s", w.Body.String())
	}
}

func TestUpdateComment_CommentMissing(t *testing.T) {
	router, _, mockComment := setupTestRouter()
	mockComment.UpdateErr = errors.New("comment 5 not found")

	w := doRequest(t, router, "PUT", "/api/reviews/1/comments/5", map[string]any{
		"content":  "c",
		"password": "1234",
	})

	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "존재하지 않는 댓글입니다.") {
		t.Errorf("Unexpected body: %s", w.Body.String())
	}
}

func TestDeleteComment_Success(t *testing.T) {
	router, _, _ := setupTestRouter()

	w := doRequest(t, router, "DELETE", "/api/reviews/1/comments/2", map[string]any{
		"password": "1234",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "댓글을 삭제하였습니다.") {
		t.Errorf("Unexpected body: %s", w.Body.String())
	}
}

func TestDeleteComment_WrongPasswordAnswers401(t *testing.T) {
	router, _, mockComment := setupTestRouter()
	mockComment.DeleteErr = errors.New("comment 2 password mismatch")

	w := doRequest(t, router, "DELETE", "/api/reviews/1/comments/2", map[string]any{
		"password": "wrong",
	})

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected status 401, got %d", w.Code)
	}
}

func TestComment_InvalidReviewIDParam(t *testing.T) {
	router, _, mockComment := setupTestRouter()

	w := doRequest(t, router, "POST", "/api/reviews/abc/comments", map[string]any{
		"content": "c",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}
	if mockComment.CreateCalls != 0 {
		t.Errorf("Service must not be called for a bad path param")
	}
}
