package mocks

import (
	"context"

	"book-review-api/internal/dto/request"
	"book-review-api/internal/dto/response"
)

// MockReviewService is a canned-response implementation of ReviewService
type MockReviewService struct {
	ListItems []response.ReviewListItem
	Detail    *response.ReviewDetail

	ListErr   error
	CreateErr error
	GetErr    error
	UpdateErr error
	DeleteErr error

	CreateCalls int
	UpdateCalls int
	DeleteCalls int

	LastCreateReq *request.CreateReviewRequest
	LastUpdateID  int64
}

func NewMockReviewService() *MockReviewService {
	return &MockReviewService{}
}

func (m *MockReviewService) ListReviews(ctx context.Context) ([]response.ReviewListItem, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	if m.ListItems == nil {
		return []response.ReviewListItem{}, nil
	}
	return m.ListItems, nil
}

func (m *MockReviewService) CreateReview(ctx context.Context, req *request.CreateReviewRequest) error {
	m.CreateCalls++
	m.LastCreateReq = req
	return m.CreateErr
}

func (m *MockReviewService) GetReview(ctx context.Context, id int64) (*response.ReviewDetail, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.Detail, nil
}

func (m *MockReviewService) UpdateReview(ctx context.Context, id int64, req *request.UpdateReviewRequest) error {
	m.UpdateCalls++
	m.LastUpdateID = id
	return m.UpdateErr
}

func (m *MockReviewService) DeleteReview(ctx context.Context, id int64, password string) error {
	m.DeleteCalls++
	return m.DeleteErr
}

// MockCommentService is a canned-response implementation of CommentService
type MockCommentService struct {
	Comments []response.CommentResponse

	CreateErr error
	ListErr   error
	UpdateErr error
	DeleteErr error

	CreateCalls int
	UpdateCalls int
	DeleteCalls int
}

func NewMockCommentService() *MockCommentService {
	return &MockCommentService{}
}

func (m *MockCommentService) CreateComment(ctx context.Context, reviewID int64, req *request.CreateCommentRequest) error {
	m.CreateCalls++
	return m.CreateErr
}

func (m *MockCommentService) ListComments(ctx context.Context, reviewID int64) ([]response.CommentResponse, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	if m.Comments == nil {
		return []response.CommentResponse{}, nil
	}
	return m.Comments, nil
}

func (m *MockCommentService) UpdateComment(ctx context.Context, reviewID, commentID int64, req *request.UpdateCommentRequest) error {
	m.UpdateCalls++
	return m.UpdateErr
}

func (m *MockCommentService) DeleteComment(ctx context.Context, reviewID, commentID int64, password string) error {
	m.DeleteCalls++
	return m.DeleteErr
}
