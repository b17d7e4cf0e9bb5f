package models

import (
	"time"
)

const (
	ActivityStatusSubmitted int8 = 1
	ActivityStatusDeleted   int8 = 2
)

// ActivityLog 操作审计流水，只追加不物理删除
// 博客删除时相关条目只做状态翻转（status=2）
type ActivityLog struct {
	ID          uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	Action      string    `gorm:"column:action;type:varchar(100);not null" json:"action"`
	UserID      *uint64   `gorm:"column:user_id" json:"user_id,omitempty"` // 注册等场景允许为空
	TargetKind  string    `gorm:"column:target_kind;type:varchar(100);not null" json:"target_kind"`
	TargetID    uint64    `gorm:"column:target_id;not null" json:"target_id"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Status      int8      `gorm:"column:status;not null;default:1" json:"status"` // 1:正常 2:已删除
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

func (ActivityLog) TableName() string { return "activity_logs" }

// BlogActivityMap 博客与审计条目的索引表
// 只为博客删除时批量翻转状态服务
type BlogActivityMap struct {
	ID        uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	BlogID    uint64    `gorm:"column:blog_id;not null;uniqueIndex:uk_blog_id" json:"blog_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (BlogActivityMap) TableName() string { return "blog_activity_maps" }

// BlogActivityEntry 索引表到审计条目的关联记录
type BlogActivityEntry struct {
	ID        uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	MapID     uint64    `gorm:"column:map_id;not null;uniqueIndex:uk_map_log,priority:1" json:"map_id"`
	LogID     uint64    `gorm:"column:log_id;not null;uniqueIndex:uk_map_log,priority:2" json:"log_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (BlogActivityEntry) TableName() string { return "blog_activity_entries" }
