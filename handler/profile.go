package handler

import (
	"net/http"

	"Inkwell/config"
	"Inkwell/pkg/context"
	"Inkwell/pkg/response"
	"Inkwell/service"

	"github.com/gin-gonic/gin"
)

type Profile struct {
	Config         *config.Config
	ProfileService service.IProfileService
}

func (h *Profile) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/profile")
	g.GET("/:author", context.Wrap(h.GetWriterProfile))
}

// GetWriterProfile 作者主页统计
func (h *Profile) GetWriterProfile(c *gin.Context) error {
	author := c.Param("author")
	if author == "" {
		return response.NewError(http.StatusBadRequest, "缺少 author")
	}

	profile, err := h.ProfileService.WriterProfile(c.Request.Context(), author)
	if err != nil {
		return err
	}

	response.Success(c, profile)
	return nil
}
