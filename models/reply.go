package models

import (
	"time"
)

type Reply struct {
	ID        uint64    `gorm:"column:id;primary_key" json:"id"`
	CommentID uint64    `gorm:"column:comment_id;not null;index:idx_comment_id" json:"comment_id"`
	UserID    uint64    `gorm:"column:user_id;not null;index:idx_reply_user" json:"user_id"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	Likes     int64     `gorm:"column:likes;not null;default:0" json:"likes"`
	Dislikes  int64     `gorm:"column:dislikes;not null;default:0" json:"dislikes"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Reply) TableName() string {
	return "replies"
}
