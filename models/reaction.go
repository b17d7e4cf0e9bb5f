package models

import (
	"time"
)

const (
	ReactionLike    = "like"
	ReactionDislike = "dislike"
)

// 可反应实体类型
const (
	TargetBlog    = "blog"
	TargetComment = "comment"
	TargetReply   = "reply"
)

// Reaction 点赞/点踩记录
// 对应表 reactions
// 唯一键: user_id + target_kind + target_id，一人对一个目标最多一条记录
type Reaction struct {
	ID         uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	UserID     uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_user_target,priority:1" json:"user_id"`
	TargetKind string    `gorm:"column:target_kind;type:varchar(16);not null;uniqueIndex:uk_user_target,priority:2" json:"target_kind"`
	TargetID   uint64    `gorm:"column:target_id;not null;uniqueIndex:uk_user_target,priority:3;index:idx_target" json:"target_id"`
	Kind       string    `gorm:"column:kind;type:varchar(10);not null" json:"kind"` // like | dislike
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Reaction) TableName() string { return "reactions" }
