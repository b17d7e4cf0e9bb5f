package models

import (
	"time"
)

const (
	RoleWriter = "writer"
	RoleViewer = "viewer"
)

type Users struct {
	ID        uint64    `gorm:"column:id;primary_key" json:"id"`
	Username  string    `gorm:"column:username;type:varchar(64);not null;uniqueIndex:uk_username" json:"username"`
	Email     string    `gorm:"column:email;type:varchar(128);not null;default:''" json:"email"`
	Password  string    `gorm:"column:password;type:varchar(128);not null" json:"-"`
	Role      string    `gorm:"column:role;type:varchar(16);not null;default:'viewer'" json:"role"` // writer:可发博客 viewer:仅浏览
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Users) TableName() string {
	return "users"
}

// IsWriter 是否为作者角色
func (u *Users) IsWriter() bool {
	return u.Role == RoleWriter
}
