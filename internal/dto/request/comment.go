package request

type CreateCommentRequest struct {
	Content  string `json:"content"`
	Author   string `json:"author"`
	Password string `json:"password"`
}

type UpdateCommentRequest struct {
	Content  string `json:"content"`
	Password string `json:"password"`
}

type DeleteCommentRequest struct {
	Password string `json:"password"`
}
