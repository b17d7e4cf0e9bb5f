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

type Activity struct {
	Config          *config.Config
	ActivityService service.IActivityService
}

func (h *Activity) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/activity")
	g.GET("/list", authorize, context.Wrap(h.ListMyActivity))
}

// ListMyActivity 查询自己的操作流水
func (h *Activity) ListMyActivity(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.ListActivityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = types.DefaultPageSize
	}

	logs, err := h.ActivityService.ListByUser(c.Request.Context(), userID, req.PageSize, (req.Page-1)*req.PageSize)
	if err != nil {
		return err
	}

	response.Success(c, types.ListActivityResponse{Logs: logs})
	return nil
}
