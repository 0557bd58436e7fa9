package request

type CreateReviewRequest struct {
	BookTitle  string `json:"bookTitle" validate:"required"`
	Title      string `json:"title" validate:"required"`
	Content    string `json:"content" validate:"required"`
	StarRating int    `json:"starRating" validate:"required"`
	Author     string `json:"author" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type UpdateReviewRequest struct {
	BookTitle  string `json:"bookTitle" validate:"required"`
	Title      string `json:"title" validate:"required"`
	Content    string `json:"content" validate:"required"`
	StarRating int    `json:"starRating" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type DeleteReviewRequest struct {
	Password string `json:"password" validate:"required"`
}
