package dto

type CreateCommentRequest struct {
	PostID  string `json:"postId"`
	Email   string `json:"email"`
	Comment string `json:"comment"`
}

type ReportCommentRequest struct {
	Feedback string `json:"feedback"`
}
