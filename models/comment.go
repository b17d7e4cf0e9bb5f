package models

import (
	"time"
)

type Comment struct {
	ID        uint64    `gorm:"column:id;primary_key" json:"id"`
	BlogID    uint64    `gorm:"column:blog_id;not null;index:idx_blog_id" json:"blog_id"`
	UserID    uint64    `gorm:"column:user_id;not null;index:idx_comment_user" json:"user_id"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	Likes     int64     `gorm:"column:likes;not null;default:0" json:"likes"`
	Dislikes  int64     `gorm:"column:dislikes;not null;default:0" json:"dislikes"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Comment) TableName() string {
	return "comments"
}
