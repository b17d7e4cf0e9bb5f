package types

type CreateCommentRequest struct {
	BlogID  uint64 `json:"blog_id" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type CreateReplyRequest struct {
	CommentID uint64 `json:"comment_id" binding:"required"`
	Content   string `json:"content" binding:"required"`
}

type UpdateReplyRequest struct {
	Content string `json:"content" binding:"required"`
}
