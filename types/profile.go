package types

import "Inkwell/models"

// WriterProfile 作者主页统计
type WriterProfile struct {
	UserID            uint64         `json:"user_id"`
	Username          string         `json:"username"`
	BlogCount         int64          `json:"blog_count"`
	ActiveSubscribers int64          `json:"active_subscribers"`
	UnsubscribeCount  int64          `json:"unsubscribe_count"`
	RecentBlogs       []*models.Blog `json:"recent_blogs"`
}
