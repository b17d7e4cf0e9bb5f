package handler

import (
	"fmt"
	"net/http"

	"Inkwell/config"
	"Inkwell/middleware"
	"Inkwell/pkg/context"
	"Inkwell/pkg/response"
	"Inkwell/service"
	"Inkwell/types"

	"github.com/gin-gonic/gin"
)

type Blog struct {
	Config      *config.Config
	BlogService service.IBlogService
}

func (b *Blog) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(b.Config.Jwt.Secret))
	g := r.Group("/v1/blog")
	g.POST("", authorize, context.Wrap(b.CreateBlog))
	g.PUT("/:blog_id", authorize, context.Wrap(b.UpdateBlog))
	g.DELETE("/:blog_id", authorize, context.Wrap(b.DeleteBlog))
	g.GET("/list", context.Wrap(b.ListBlogs))
	g.GET("/:blog_id", context.Wrap(b.GetBlog))
}

// CreateBlog 发布博客
func (b *Blog) CreateBlog(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}

	blog, err := b.BlogService.CreateBlog(c.Request.Context(), userID, context.GetUsername(c), context.GetRole(c), &req)
	if err != nil {
		return err
	}

	response.Success(c, blog)
	return nil
}

// UpdateBlog 修改博客
func (b *Blog) UpdateBlog(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	blogID, err := parseIDParam(c, "blog_id")
	if err != nil {
		return err
	}

	var req types.UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}

	blog, err := b.BlogService.UpdateBlog(c.Request.Context(), userID, context.GetUsername(c), blogID, &req)
	if err != nil {
		return err
	}

	response.Success(c, blog)
	return nil
}

// DeleteBlog 删除博客
func (b *Blog) DeleteBlog(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	blogID, err := parseIDParam(c, "blog_id")
	if err != nil {
		return err
	}

	if err := b.BlogService.DeleteBlog(c.Request.Context(), userID, context.GetUsername(c), blogID); err != nil {
		return err
	}

	response.SuccessMsg(c, "删除成功", nil)
	return nil
}

// GetBlog 博客详情
func (b *Blog) GetBlog(c *gin.Context) error {
	blogID, err := parseIDParam(c, "blog_id")
	if err != nil {
		return err
	}

	detail, err := b.BlogService.GetBlog(c.Request.Context(), blogID)
	if err != nil {
		return err
	}

	response.Success(c, detail)
	return nil
}

// ListBlogs 博客列表
func (b *Blog) ListBlogs(c *gin.Context) error {
	var req types.ListBlogsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = types.DefaultPageSize
	}

	resp, err := b.BlogService.ListBlogs(c.Request.Context(), req.Page, req.PageSize)
	if err != nil {
		return err
	}

	response.Success(c, resp)
	return nil
}

func parseIDParam(c *gin.Context, name string) (uint64, error) {
	param := c.Param(name)
	if param == "" {
		return 0, response.NewError(http.StatusBadRequest, "缺少 "+name)
	}
	var id uint64
	if _, err := fmt.Sscanf(param, "%d", &id); err != nil {
		return 0, response.NewError(http.StatusBadRequest, name+" 格式错误")
	}
	return id, nil
}
