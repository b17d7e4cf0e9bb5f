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

type Subscription struct {
	Config              *config.Config
	SubscriptionService service.ISubscriptionService
}

func (h *Subscription) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/subscription")
	g.POST("/:author", authorize, context.Wrap(h.Subscribe))
	g.DELETE("/:author", authorize, context.Wrap(h.Unsubscribe))
	g.GET("/:author", authorize, context.Wrap(h.GetStatus))
}

// Subscribe 订阅作者
func (h *Subscription) Subscribe(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	author := c.Param("author")
	if author == "" {
		return response.NewError(http.StatusBadRequest, "缺少 author")
	}

	subscription, err := h.SubscriptionService.Subscribe(c.Request.Context(), userID, context.GetUsername(c), author)
	if err != nil {
		return err
	}

	response.Success(c, subscription)
	return nil
}

// Unsubscribe 退订作者
func (h *Subscription) Unsubscribe(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	author := c.Param("author")
	if author == "" {
		return response.NewError(http.StatusBadRequest, "缺少 author")
	}

	record, err := h.SubscriptionService.Unsubscribe(c.Request.Context(), userID, context.GetUsername(c), author)
	if err != nil {
		return err
	}

	response.Success(c, record)
	return nil
}

// GetStatus 查询是否订阅
func (h *Subscription) GetStatus(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	author := c.Param("author")
	if author == "" {
		return response.NewError(http.StatusBadRequest, "缺少 author")
	}

	subscribed, err := h.SubscriptionService.IsSubscribed(c.Request.Context(), userID, author)
	if err != nil {
		return err
	}

	response.Success(c, gin.H{"subscribed": subscribed})
	return nil
}
