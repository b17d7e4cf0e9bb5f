package handler

import (
	"net/http"

	"Inkwell/config"
	"Inkwell/middleware"
	"Inkwell/pkg/context"
	"Inkwell/pkg/response"
	"Inkwell/service"
	"Inkwell/types"

	"github.com/gin-gonic/gin"
)

type Comment struct {
	Config         *config.Config
	CommentService service.ICommentService
}

func (h *Comment) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	g := r.Group("/v1/comment")
	g.POST("", authorize, context.Wrap(h.CreateComment))
	g.PUT("/:comment_id", authorize, context.Wrap(h.UpdateComment))
	g.DELETE("/:comment_id", authorize, context.Wrap(h.DeleteComment))

	reply := r.Group("/v1/reply")
	reply.POST("", authorize, context.Wrap(h.CreateReply))
	reply.PUT("/:reply_id", authorize, context.Wrap(h.UpdateReply))
	reply.DELETE("/:reply_id", authorize, context.Wrap(h.DeleteReply))
}

// CreateComment 评论博客
func (h *Comment) CreateComment(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}

	comment, err := h.CommentService.CreateComment(c.Request.Context(), userID, context.GetUsername(c), req.BlogID, req.Content)
	if err != nil {
		return err
	}

	response.Success(c, comment)
	return nil
}

// UpdateComment 修改评论
func (h *Comment) UpdateComment(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	commentID, err := parseIDParam(c, "comment_id")
	if err != nil {
		return err
	}

	var req types.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}

	comment, err := h.CommentService.UpdateComment(c.Request.Context(), userID, context.GetUsername(c), commentID, req.Content)
	if err != nil {
		return err
	}

	response.Success(c, comment)
	return nil
}

// DeleteComment 删除评论
func (h *Comment) DeleteComment(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	commentID, err := parseIDParam(c, "comment_id")
	if err != nil {
		return err
	}

	if err := h.CommentService.DeleteComment(c.Request.Context(), userID, context.GetUsername(c), commentID); err != nil {
		return err
	}

	response.SuccessMsg(c, "删除成功", nil)
	return nil
}

// CreateReply 回复评论
func (h *Comment) CreateReply(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.CreateReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}

	reply, err := h.CommentService.CreateReply(c.Request.Context(), userID, context.GetUsername(c), req.CommentID, req.Content)
	if err != nil {
		return err
	}

	response.Success(c, reply)
	return nil
}

// UpdateReply 修改回复
func (h *Comment) UpdateReply(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	replyID, err := parseIDParam(c, "reply_id")
	if err != nil {
		return err
	}

	var req types.UpdateReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}

	reply, err := h.CommentService.UpdateReply(c.Request.Context(), userID, context.GetUsername(c), replyID, req.Content)
	if err != nil {
		return err
	}

	response.Success(c, reply)
	return nil
}

// DeleteReply 删除回复
func (h *Comment) DeleteReply(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	replyID, err := parseIDParam(c, "reply_id")
	if err != nil {
		return err
	}

	if err := h.CommentService.DeleteReply(c.Request.Context(), userID, context.GetUsername(c), replyID); err != nil {
		return err
	}

	response.SuccessMsg(c, "删除成功", nil)
	return nil
}
