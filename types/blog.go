package types

import "Inkwell/models"

const DefaultPageSize = 20

type CreateBlogRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type UpdateBlogRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type ListBlogsRequest struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

type ListBlogsResponse struct {
	Blogs []*models.Blog `json:"blogs"`
	Total int64          `json:"total"`
}

type CommentDetail struct {
	*models.Comment
	Replies []*models.Reply `json:"replies"`
}

type BlogDetail struct {
	*models.Blog
	Comments []*CommentDetail `json:"comments"`
}
