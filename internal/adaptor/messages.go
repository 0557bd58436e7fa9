package adaptor

// User-facing messages. The API speaks Korean to clients; internal error
// strings stay English.
const (
	msgInvalidFormat   = "데이터 형식이 올바르지 않습니다."
	msgStarRatingRange = "별점은 1점에서 10점까지만 입력할 수 있습니다."

	msgReviewCreated       = "책 리뷰를 등록하였습니다."
	msgReviewUpdated       = "책 리뷰를 수정하였습니다."
	msgReviewDeleted       = "책 리뷰를 삭제하였습니다."
	msgReviewNotFound      = "존재하지 않는 리뷰입니다."
	msgReviewPasswordWrong = "비밀번호가 틀립니다."

	msgCommentContent       = "댓글 내용을 입력해주세요."
	msgCommentCreated       = "댓글을 등록하였습니다."
	msgCommentUpdated       = "댓글을 수정하였습니다."
	msgCommentDeleted       = "댓글을 삭제하였습니다."
	msgCommentNotFound      = "존재하지 않는 댓글입니다."
	msgCommentPasswordWrong = "비밀번호가 일치하지 않습니다."

	msgServerError      = "서버 내부 오류가 발생했습니다."
	msgRouteNotFound    = "요청하신 리소스를 찾을 수 없습니다."
	msgMethodNotAllowed = "허용되지 않은 메서드입니다."
)
