package models

import (
	"time"
)

type Blog struct {
	ID        uint64    `gorm:"column:id;primary_key" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;index:idx_blog_user" json:"user_id"`
	Title     string    `gorm:"column:title;type:varchar(120);not null" json:"title"`
	Content   string    `gorm:"column:content;type:text" json:"content"`
	Likes     int64     `gorm:"column:likes;not null;default:0" json:"likes"`       // 冗余计数，以 reactions 表重算结果为准
	Dislikes  int64     `gorm:"column:dislikes;not null;default:0" json:"dislikes"` // 同上
	CreatedAt time.Time `gorm:"column:created_at;index:idx_created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Blog) TableName() string {
	return "blogs"
}
