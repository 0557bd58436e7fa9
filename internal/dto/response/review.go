package response

import (
	"time"

	"book-review-api/internal/data/entity"
)

// ReviewListItem is the list projection. Content is intentionally omitted.
type ReviewListItem struct {
	ID         int64     `json:"id"`
	BookTitle  string    `json:"bookTitle"`
	Title      string    `json:"title"`
	Author     string    `json:"author"`
	StarRating int       `json:"starRating"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type ReviewDetail struct {
	ID         int64     `json:"id"`
	BookTitle  string    `json:"bookTitle"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Author     string    `json:"author"`
	StarRating int       `json:"starRating"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Helper converters
func ReviewToListItem(review *entity.Review) ReviewListItem {
	return ReviewListItem{
		ID:         review.ID,
		BookTitle:  review.BookTitle,
		Title:      review.Title,
		Author:     review.Author,
		StarRating: review.StarRating,
		CreatedAt:  review.CreatedAt,
		UpdatedAt:  review.UpdatedAt,
	}
}

func ReviewToDetail(review *entity.Review) ReviewDetail {
	return ReviewDetail{
		ID:         review.ID,
		BookTitle:  review.BookTitle,
		Title:      review.Title,
		Content:    review.Content,
		Author:     review.Author,
		StarRating: review.StarRating,
		CreatedAt:  review.CreatedAt,
		UpdatedAt:  review.UpdatedAt,
	}
}
