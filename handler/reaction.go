package handler

import (
	"net/http"

	"Inkwell/config"
	"Inkwell/middleware"
	"Inkwell/pkg/context"
	"Inkwell/pkg/response"
	"Inkwell/service"

	"github.com/gin-gonic/gin"
)

type Reaction struct {
	Config          *config.Config
	ReactionService service.IReactionService
}

func (h *Reaction) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/reaction")
	// target_kind: blog | comment | reply，kind: like | dislike
	g.POST("/:target_kind/:target_id/:kind", authorize, context.Wrap(h.ApplyReaction))
}

// ApplyReaction 点赞/点踩开关
// 同一用户对同一目标重复提交同类反应等于取消，异类反应直接改写
func (h *Reaction) ApplyReaction(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	targetKind := c.Param("target_kind")
	kind := c.Param("kind")
	targetID, err := parseIDParam(c, "target_id")
	if err != nil {
		return err
	}

	result, err := h.ReactionService.ApplyReaction(c.Request.Context(), userID, context.GetUsername(c), targetKind, targetID, kind)
	if err != nil {
		return err
	}

	response.Success(c, result)
	return nil
}
