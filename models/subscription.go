package models

import (
	"time"
)

// Subscription 订阅关系
// 同一 (subscriber, author) 最多一条 is_active=true 的记录，退订后旧记录保留
type Subscription struct {
	ID           uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	SubscriberID uint64    `gorm:"column:subscriber_id;not null;index:idx_sub_author,priority:1" json:"subscriber_id"`
	AuthorID     uint64    `gorm:"column:author_id;not null;index:idx_sub_author,priority:2" json:"author_id"`
	IsActive     bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Subscription) TableName() string { return "subscriptions" }

// UnsubscribeRecord 退订流水，只追加
type UnsubscribeRecord struct {
	ID             uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	SubscriberID   uint64    `gorm:"column:subscriber_id;not null;index:idx_unsub_subscriber" json:"subscriber_id"`
	AuthorID       uint64    `gorm:"column:author_id;not null" json:"author_id"`
	SubscriptionID uint64    `gorm:"column:subscription_id;not null" json:"subscription_id"` // 被关闭的那条订阅
	UnsubscribedAt time.Time `gorm:"column:unsubscribed_at;autoCreateTime" json:"unsubscribed_at"`
}

func (UnsubscribeRecord) TableName() string { return "unsubscribe_records" }
