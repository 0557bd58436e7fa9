package mocks

import (
	"context"
	"fmt"
	"sort"
	"time"

	"book-review-api/internal/data/entity"
)

// MockReviewRepository is an in-memory implementation of ReviewRepository
type MockReviewRepository struct {
	Reviews     map[int64]*entity.Review
	NextID      int64
	FindErr     error
	CreateErr   error
	CreateCalls int
	UpdateCalls int
	DeleteCalls int
}

func NewMockReviewRepository() *MockReviewRepository {
	return &MockReviewRepository{
		Reviews: make(map[int64]*entity.Review),
		NextID:  1,
	}
}

func (m *MockReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	m.CreateCalls++
	if m.CreateErr != nil {
		return m.CreateErr
	}
	review.ID = m.NextID
	m.NextID++
	review.CreatedAt = time.Now()
	review.UpdatedAt = review.CreatedAt
	copied := *review
	m.Reviews[review.ID] = &copied
	return nil
}

func (m *MockReviewRepository) FindAll(ctx context.Context) ([]*entity.Review, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	reviews := make([]*entity.Review, 0, len(m.Reviews))
	for _, review := range m.Reviews {
		reviews = append(reviews, review)
	}
	sort.Slice(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
	return reviews, nil
}

func (m *MockReviewRepository) FindByID(ctx context.Context, id int64) (*entity.Review, error) {
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	review, ok := m.Reviews[id]
	if !ok {
		return nil, nil
	}
	copied := *review
	return &copied, nil
}

func (m *MockReviewRepository) Update(ctx context.Context, review *entity.Review) error {
	m.UpdateCalls++
	existing, ok := m.Reviews[review.ID]
	if !ok {
		return fmt.Errorf("review %d not found", review.ID)
	}
	existing.BookTitle = review.BookTitle
	existing.Title = review.Title
	existing.Content = review.Content
	existing.StarRating = review.StarRating
	existing.UpdatedAt = time.Now()
	return nil
}

func (m *MockReviewRepository) Delete(ctx context.Context, id int64) error {
	m.DeleteCalls++
	if _, ok := m.Reviews[id]; !ok {
		return fmt.Errorf("review %d not found", id)
	}
	delete(m.Reviews, id)
	return nil
}

// MockCommentRepository is an in-memory implementation of CommentRepository
type MockCommentRepository struct {
	Comments    map[int64]*entity.Comment
	NextID      int64
	CreateErr   error
	CreateCalls int
	UpdateCalls int
	DeleteCalls int
}

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{
		Comments: make(map[int64]*entity.Comment),
		NextID:   1,
	}
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	m.CreateCalls++
	if m.CreateErr != nil {
		return m.CreateErr
	}
	comment.ID = m.NextID
	m.NextID++
	comment.CreatedAt = time.Now()
	comment.UpdatedAt = comment.CreatedAt
	copied := *comment
	m.Comments[comment.ID] = &copied
	return nil
}

func (m *MockCommentRepository) FindByReviewID(ctx context.Context, reviewID int64) ([]*entity.Comment, error) {
	comments := make([]*entity.Comment, 0)
	for _, comment := range m.Comments {
		if comment.ReviewID == reviewID {
			comments = append(comments, comment)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	return comments, nil
}

func (m *MockCommentRepository) FindByID(ctx context.Context, reviewID, commentID int64) (*entity.Comment, error) {
	comment, ok := m.Comments[commentID]
	if !ok || comment.ReviewID != reviewID {
		return nil, nil
	}
	copied := *comment
	return &copied, nil
}

func (m *MockCommentRepository) UpdateContent(ctx context.Context, comment *entity.Comment) error {
	m.UpdateCalls++
	existing, ok := m.Comments[comment.ID]
	if !ok || existing.ReviewID != comment.ReviewID {
		return fmt.Errorf("comment %d not found", comment.ID)
	}
	existing.Content = comment.Content
	existing.UpdatedAt = time.Now()
	return nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, reviewID, commentID int64) error {
	m.DeleteCalls++
	existing, ok := m.Comments[commentID]
	if !ok || existing.ReviewID != reviewID {
		return fmt.Errorf("comment %d not found", commentID)
	}
	delete(m.Comments, commentID)
	return nil
}
