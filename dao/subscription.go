package dao

import (
	"context"

	"Inkwell/models"

	"gorm.io/gorm"
)

type SubscriptionDAO struct {
	Repo[models.Subscription]
}

func NewSubscriptionDAO(db *gorm.DB) *SubscriptionDAO {
	return &SubscriptionDAO{Repo: NewRepo[models.Subscription](db)}
}

// GetActive 查询当前生效的订阅，未命中返回 nil
func (d *SubscriptionDAO) GetActive(ctx context.Context, subscriberID, authorID uint64) (*models.Subscription, error) {
	var item models.Subscription
	err := d.Db.WithContext(ctx).
		Where("subscriber_id = ? AND author_id = ? AND is_active = ?", subscriberID, authorID, true).
		Limit(1).Find(&item).Error
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

// CountActive 统计 (subscriber, author) 当前生效的订阅数
func (d *SubscriptionDAO) CountActive(ctx context.Context, subscriberID, authorID uint64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Subscription{}).
		Where("subscriber_id = ? AND author_id = ? AND is_active = ?", subscriberID, authorID, true).
		Count(&count).Error
	return count, err
}

// CountActiveByAuthor 统计作者当前的生效订阅者总数
func (d *SubscriptionDAO) CountActiveByAuthor(ctx context.Context, authorID uint64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Subscription{}).
		Where("author_id = ? AND is_active = ?", authorID, true).
		Count(&count).Error
	return count, err
}

// ActiveSubscriberEmails 取作者全部生效订阅者的邮箱，用于新博客通知
func (d *SubscriptionDAO) ActiveSubscriberEmails(ctx context.Context, authorID uint64) ([]string, error) {
	var emails []string
	err := d.Db.WithContext(ctx).
		Table("subscriptions s").
		Joins("LEFT JOIN users u ON s.subscriber_id = u.id").
		Where("s.author_id = ? AND s.is_active = ?", authorID, true).
		Where("u.email <> ''").
		Pluck("u.email", &emails).Error
	return emails, err
}

type UnsubscribeRecordDAO struct {
	Repo[models.UnsubscribeRecord]
}

func NewUnsubscribeRecordDAO(db *gorm.DB) *UnsubscribeRecordDAO {
	return &UnsubscribeRecordDAO{Repo: NewRepo[models.UnsubscribeRecord](db)}
}

// FindBySubscriber 查询退订流水
func (d *UnsubscribeRecordDAO) FindBySubscriber(ctx context.Context, subscriberID uint64) ([]*models.UnsubscribeRecord, error) {
	var records []*models.UnsubscribeRecord
	err := d.Db.WithContext(ctx).
		Where("subscriber_id = ?", subscriberID).
		Order("unsubscribed_at ASC").
		Find(&records).Error
	return records, err
}

// CountByAuthor 统计作者历史上被退订的次数
func (d *UnsubscribeRecordDAO) CountByAuthor(ctx context.Context, authorID uint64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.UnsubscribeRecord{}).
		Where("author_id = ?", authorID).
		Count(&count).Error
	return count, err
}
